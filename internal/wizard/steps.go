package wizard

import (
	"fmt"
	"strings"
)

// Type identifies which kind of wizard a draft belongs to. It is fixed at
// draft creation and selects both the step table and the publication path.
type Type string

const (
	TypeProperty Type = "property"
	TypeLand     Type = "land"
	TypeBlog     Type = "blog"
)

// Valid reports whether the type is one of the supported wizards.
func (t Type) Valid() bool {
	switch t {
	case TypeProperty, TypeLand, TypeBlog:
		return true
	}
	return false
}

// ParseType normalizes and validates a wizard type string.
func ParseType(raw string) (Type, error) {
	t := Type(strings.ToLower(strings.TrimSpace(raw)))
	if !t.Valid() {
		return "", &ValidationError{Field: "wizardType", Message: fmt.Sprintf("unsupported wizard type %q", raw)}
	}
	return t, nil
}

// DefaultConfigID is used when a draft does not reference a custom step set.
const DefaultConfigID = "default"

// FieldKind constrains the shape a form value must have when present.
type FieldKind string

const (
	FieldAny    FieldKind = ""
	FieldText   FieldKind = "text"
	FieldNumber FieldKind = "number"
	FieldList   FieldKind = "list"
	FieldObject FieldKind = "object"
)

// FieldRule describes one form field a step collects.
type FieldRule struct {
	Key      string
	Required bool
	Kind     FieldKind
}

// StepDefinition describes one page of a wizard: its identity, whether it is
// mandatory for publication, and the field rules it enforces.
type StepDefinition struct {
	ID       string
	Title    string
	Required bool
	Fields   []FieldRule
}

// StepProvider resolves the ordered step table for a wizard type and config.
// The config id is an opaque reference to a configurable step set; the
// built-in provider ignores it beyond accepting the default.
type StepProvider interface {
	Steps(wizardType Type, configID string) ([]StepDefinition, error)
}

// BuiltinSteps serves the hardcoded step tables per wizard type.
type BuiltinSteps struct{}

// Steps returns a copy of the step table for the given wizard type.
func (BuiltinSteps) Steps(wizardType Type, configID string) ([]StepDefinition, error) {
	var table []StepDefinition
	switch wizardType {
	case TypeProperty:
		table = propertySteps
	case TypeLand:
		table = landSteps
	case TypeBlog:
		table = blogSteps
	default:
		return nil, &RuleViolationError{
			Code:    CodeUnsupportedWizardType,
			Reasons: []string{fmt.Sprintf("no step table for wizard type %q", wizardType)},
		}
	}

	steps := make([]StepDefinition, len(table))
	copy(steps, table)
	return steps, nil
}

var propertySteps = []StepDefinition{
	{
		ID:       "general",
		Title:    "General Information",
		Required: true,
		Fields: []FieldRule{
			{Key: "title", Required: true, Kind: FieldText},
			{Key: "description", Required: true, Kind: FieldText},
			{Key: "price", Required: true, Kind: FieldNumber},
			{Key: "currency", Required: true, Kind: FieldText},
			{Key: "type", Required: true, Kind: FieldText},
			{Key: "bedrooms", Kind: FieldNumber},
			{Key: "bathrooms", Kind: FieldNumber},
			{Key: "area", Kind: FieldNumber},
			{Key: "amenities", Kind: FieldList},
		},
	},
	{
		ID:       "location",
		Title:    "Location",
		Required: true,
		Fields: []FieldRule{
			{Key: "address", Required: true, Kind: FieldObject},
		},
	},
	{
		ID:    "media",
		Title: "Photos & Media",
		Fields: []FieldRule{
			{Key: "images", Kind: FieldList},
		},
	},
	{
		ID:    "preview",
		Title: "Preview & Publish",
	},
}

var landSteps = []StepDefinition{
	{
		ID:       "general",
		Title:    "General Information",
		Required: true,
		Fields: []FieldRule{
			{Key: "name", Required: true, Kind: FieldText},
			{Key: "description", Required: true, Kind: FieldText},
			{Key: "area", Required: true, Kind: FieldNumber},
			{Key: "price", Required: true, Kind: FieldNumber},
			{Key: "currency", Required: true, Kind: FieldText},
			{Key: "type", Required: true, Kind: FieldText},
			{Key: "features", Kind: FieldList},
		},
	},
	{
		ID:       "location",
		Title:    "Location",
		Required: true,
		Fields: []FieldRule{
			{Key: "location", Required: true, Kind: FieldObject},
		},
	},
	{
		ID:    "media",
		Title: "Photos & Media",
		Fields: []FieldRule{
			{Key: "images", Kind: FieldList},
		},
	},
	{
		ID:    "preview",
		Title: "Preview & Publish",
	},
}

var blogSteps = []StepDefinition{
	{
		ID:       "content",
		Title:    "Content",
		Required: true,
		Fields: []FieldRule{
			{Key: "title", Required: true, Kind: FieldText},
			{Key: "content", Required: true, Kind: FieldText},
		},
	},
	{
		ID:    "settings",
		Title: "Settings & SEO",
		Fields: []FieldRule{
			{Key: "author", Kind: FieldText},
			{Key: "category", Kind: FieldText},
			{Key: "tags", Kind: FieldList},
			{Key: "excerpt", Kind: FieldText},
			{Key: "coverImage", Kind: FieldText},
			{Key: "seo", Kind: FieldObject},
		},
	},
	{
		ID:    "preview",
		Title: "Preview & Publish",
	},
}

func findStep(steps []StepDefinition, stepID string) (StepDefinition, bool) {
	for _, step := range steps {
		if step.ID == stepID {
			return step, true
		}
	}
	return StepDefinition{}, false
}
