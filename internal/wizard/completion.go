package wizard

import "math"

// Completion derives the 0-100 completion percentage of a draft.
//
// The rule is content sufficiency: a required step counts as satisfied when
// the form data carries non-empty values for all of its required fields,
// independent of whether the user clicked through it. The step progress is
// accepted for API symmetry and future weighting but does not influence the
// canonical calculation.
//
// The function is total: an empty step table yields 0, a table without
// required steps yields 100.
func Completion(progress StepProgress, data FormData, steps []StepDefinition) int {
	if len(steps) == 0 {
		return 0
	}

	required := 0
	satisfied := 0
	for _, step := range steps {
		if !step.Required {
			continue
		}
		required++
		if stepSatisfied(step, data) {
			satisfied++
		}
	}

	if required == 0 {
		return 100
	}
	return int(math.Round(float64(satisfied) / float64(required) * 100))
}
