package wizard

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func propertyTestSteps(t *testing.T) []StepDefinition {
	t.Helper()
	steps, err := BuiltinSteps{}.Steps(TypeProperty, DefaultConfigID)
	require.NoError(t, err)
	return steps
}

func TestCompletionEmptyStepTable(t *testing.T) {
	require.Equal(t, 0, Completion(StepProgress{}, FormData{"title": "x"}, nil))
	require.Equal(t, 0, Completion(nil, nil, []StepDefinition{}))
}

func TestCompletionNoRequiredSteps(t *testing.T) {
	steps := []StepDefinition{
		{ID: "media", Fields: []FieldRule{{Key: "images", Kind: FieldList}}},
		{ID: "preview"},
	}

	require.Equal(t, 100, Completion(StepProgress{}, FormData{}, steps))
	require.Equal(t, 100, Completion(StepProgress{}, FormData{"anything": "at all"}, steps))
}

func TestCompletionContentSufficiency(t *testing.T) {
	steps := propertyTestSteps(t)

	data := FormData{}
	require.Equal(t, 0, Completion(StepProgress{}, data, steps))

	data = FormData{
		"title":       "Beautiful Property",
		"description": "Spacious house",
		"price":       float64(150000),
		"currency":    "USD",
		"type":        "house",
	}
	require.Equal(t, 50, Completion(StepProgress{}, data, steps))

	data["address"] = map[string]any{"city": "Santiago"}
	require.Equal(t, 100, Completion(StepProgress{}, data, steps))
}

func TestCompletionIgnoresStepProgress(t *testing.T) {
	steps := propertyTestSteps(t)
	progress := StepProgress{}
	progress["general"] = time.Now()
	progress["location"] = time.Now()

	// Clicking through steps without supplying content does not move the
	// percentage: the metric is content completeness.
	require.Equal(t, 0, Completion(progress, FormData{}, steps))
}

func TestCompletionMonotonicUnderAdditiveData(t *testing.T) {
	steps := propertyTestSteps(t)

	data := FormData{"title": "Casa"}
	before := Completion(StepProgress{}, data, steps)

	grown := data.Merge(FormData{
		"description": "Una casa",
		"price":       float64(250000),
		"currency":    "USD",
		"type":        "house",
	})
	after := Completion(StepProgress{}, grown, steps)

	require.GreaterOrEqual(t, after, before)
}

func TestCompletionRoundsToNearest(t *testing.T) {
	steps := []StepDefinition{
		{ID: "a", Required: true, Fields: []FieldRule{{Key: "a", Required: true}}},
		{ID: "b", Required: true, Fields: []FieldRule{{Key: "b", Required: true}}},
		{ID: "c", Required: true, Fields: []FieldRule{{Key: "c", Required: true}}},
	}

	require.Equal(t, 33, Completion(StepProgress{}, FormData{"a": "x"}, steps))
	require.Equal(t, 67, Completion(StepProgress{}, FormData{"a": "x", "b": "y"}, steps))
}
