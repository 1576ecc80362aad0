package wizard

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidateStepUnknownStep(t *testing.T) {
	steps := propertyTestSteps(t)

	result := ValidateStep("payment", FormData{"title": "x"}, steps)

	require.False(t, result.Valid)
	require.Len(t, result.Errors, 1)
	require.Contains(t, result.Errors[0], "unknown step")
}

func TestValidateStepRequiredFieldsMissing(t *testing.T) {
	steps := propertyTestSteps(t)

	result := ValidateStep("general", FormData{"title": "Casa Grande"}, steps)

	require.False(t, result.Valid)
	require.Contains(t, result.Errors, `field "description" is required`)
	require.Contains(t, result.Errors, `field "price" is required`)
}

func TestValidateStepEmptyValuesFail(t *testing.T) {
	steps := propertyTestSteps(t)

	data := FormData{
		"title":       "   ",
		"description": "ok",
		"price":       float64(100),
		"currency":    "USD",
		"type":        "house",
	}
	result := ValidateStep("general", data, steps)

	require.False(t, result.Valid)
	require.Contains(t, result.Errors, `field "title" is required`)
}

func TestValidateStepValid(t *testing.T) {
	steps := propertyTestSteps(t)

	data := FormData{
		"title":       "Casa Grande",
		"description": "Una casa grande",
		"price":       float64(250000),
		"currency":    "USD",
		"type":        "house",
	}
	result := ValidateStep("general", data, steps)

	require.True(t, result.Valid)
	require.Empty(t, result.Errors)
}

func TestValidateStepOptionalStepMissingFieldsPass(t *testing.T) {
	steps := propertyTestSteps(t)

	result := ValidateStep("media", FormData{}, steps)
	require.True(t, result.Valid)
}

func TestValidateStepOptionalStepChecksProvidedValues(t *testing.T) {
	steps := propertyTestSteps(t)

	result := ValidateStep("media", FormData{"images": "not-a-list"}, steps)

	require.False(t, result.Valid)
	require.Contains(t, result.Errors, `field "images" must be of type list`)
}

func TestValidateStepAcceptsNumericStrings(t *testing.T) {
	steps := propertyTestSteps(t)

	data := FormData{
		"title":       "Casa Grande",
		"description": "Una casa grande",
		"price":       "250000",
		"currency":    "USD",
		"type":        "house",
	}
	result := ValidateStep("general", data, steps)

	require.True(t, result.Valid)
}

func TestValidateStepDoesNotMutateFormData(t *testing.T) {
	steps := propertyTestSteps(t)
	data := FormData{"title": "Casa"}

	ValidateStep("general", data, steps)

	require.Equal(t, FormData{"title": "Casa"}, data)
}

func TestBuiltinStepsUnknownType(t *testing.T) {
	_, err := BuiltinSteps{}.Steps(Type("event"), DefaultConfigID)

	violation, ok := AsRuleViolation(err)
	require.True(t, ok)
	require.Equal(t, CodeUnsupportedWizardType, violation.Code)
}

func TestBuiltinStepsReturnsCopy(t *testing.T) {
	first, err := BuiltinSteps{}.Steps(TypeBlog, DefaultConfigID)
	require.NoError(t, err)
	first[0].ID = "mutated"

	second, err := BuiltinSteps{}.Steps(TypeBlog, DefaultConfigID)
	require.NoError(t, err)
	require.Equal(t, "content", second[0].ID)
}
