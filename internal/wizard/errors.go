package wizard

import (
	"errors"
	"fmt"
	"strings"
)

// Rule violation codes surfaced to callers of the publication flow.
const (
	CodePublishValidationFailed = "WIZARD_PUBLISH_VALIDATION_FAILED"
	CodeUnsupportedWizardType   = "UNSUPPORTED_WIZARD_TYPE"
)

// NotFoundError indicates that a draft does not exist.
type NotFoundError struct {
	Entity string
	ID     string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Entity, e.ID)
}

// UnauthorizedError indicates the acting user does not own the draft.
type UnauthorizedError struct {
	Reason string
}

func (e *UnauthorizedError) Error() string {
	return fmt.Sprintf("unauthorized: %s", e.Reason)
}

// ValidationError indicates malformed input when constructing or
// reconstituting a draft.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

// RuleViolationError carries a business rule code plus the individual
// reasons that caused the violation.
type RuleViolationError struct {
	Code    string
	Reasons []string
}

func (e *RuleViolationError) Error() string {
	if len(e.Reasons) == 0 {
		return e.Code
	}
	return fmt.Sprintf("%s: %s", e.Code, strings.Join(e.Reasons, "; "))
}

// IsNotFound reports whether the error indicates a missing draft.
func IsNotFound(err error) bool {
	var notFound *NotFoundError
	return errors.As(err, &notFound)
}

// IsUnauthorized reports whether the error indicates an ownership failure.
func IsUnauthorized(err error) bool {
	var unauthorized *UnauthorizedError
	return errors.As(err, &unauthorized)
}

// IsValidation reports whether the error indicates malformed draft input.
func IsValidation(err error) bool {
	var validation *ValidationError
	return errors.As(err, &validation)
}

// AsRuleViolation extracts a rule violation from an error chain.
func AsRuleViolation(err error) (*RuleViolationError, bool) {
	var violation *RuleViolationError
	if errors.As(err, &violation) {
		return violation, true
	}
	return nil, false
}
