package wizard

import "fmt"

// StepValidation is the outcome of validating one step's data.
type StepValidation struct {
	Valid  bool
	Errors []string
}

// ValidateStep checks the form data against the rules of a single step.
// It is pure with respect to the form data: nothing is mutated and no
// persisted state is read.
//
// An unknown step id is invalid with a single generic error. For a required
// step every mandatory field must be present and non-empty; for an optional
// step missing fields pass, but provided values are still checked against
// their declared kind.
func ValidateStep(stepID string, data FormData, steps []StepDefinition) StepValidation {
	step, ok := findStep(steps, stepID)
	if !ok {
		return StepValidation{Errors: []string{fmt.Sprintf("unknown step %q", stepID)}}
	}

	var errs []string
	for _, field := range step.Fields {
		if !data.HasValue(field.Key) {
			if step.Required && field.Required {
				errs = append(errs, fmt.Sprintf("field %q is required", field.Key))
			}
			continue
		}
		if !matchesKind(data[field.Key], field.Kind) {
			errs = append(errs, fmt.Sprintf("field %q must be of type %s", field.Key, field.Kind))
		}
	}

	return StepValidation{Valid: len(errs) == 0, Errors: errs}
}

// stepSatisfied reports whether the form data contains non-empty values for
// every required field of the step. Steps without required fields are
// trivially satisfied.
func stepSatisfied(step StepDefinition, data FormData) bool {
	for _, field := range step.Fields {
		if field.Required && !data.HasValue(field.Key) {
			return false
		}
	}
	return true
}
