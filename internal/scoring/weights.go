package scoring

import (
	"fmt"
	"math"
)

// weightSumTolerance absorbs float drift when validating weight groups
// that must sum to one.
const weightSumTolerance = 1e-6

// Weights holds every tunable of the scoring formulas. Values come from
// configuration; nothing in the engine hard-codes them.
type Weights struct {
	// Overall composite: skills + experience + education must sum to 1.
	Skills     float64 `json:"skills" mapstructure:"skills"`
	Experience float64 `json:"experience" mapstructure:"experience"`
	Education  float64 `json:"education" mapstructure:"education"`

	// Split inside the skills component: required + preferred must sum to 1.
	Required  float64 `json:"required" mapstructure:"required"`
	Preferred float64 `json:"preferred" mapstructure:"preferred"`

	// Points deducted per education level the candidate falls short.
	EducationPenalty float64 `json:"education_penalty" mapstructure:"education_penalty"`
}

// DefaultWeights returns the standard scoring profile.
func DefaultWeights() Weights {
	return Weights{
		Skills:           0.5,
		Experience:       0.3,
		Education:        0.2,
		Required:         0.7,
		Preferred:        0.3,
		EducationPenalty: 25,
	}
}

// Validate checks the weight groups. Component weights and the
// required/preferred split must each sum to one, every weight must be
// non-negative, and the penalty must stay within one score's range.
func (w Weights) Validate() error {
	for name, v := range map[string]float64{
		"skills":     w.Skills,
		"experience": w.Experience,
		"education":  w.Education,
		"required":   w.Required,
		"preferred":  w.Preferred,
	} {
		if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("scoring weight %s must be a non-negative number, got %v", name, v)
		}
	}
	if s := w.Skills + w.Experience + w.Education; math.Abs(s-1) > weightSumTolerance {
		return fmt.Errorf("component weights must sum to 1, got %v", s)
	}
	if s := w.Required + w.Preferred; math.Abs(s-1) > weightSumTolerance {
		return fmt.Errorf("required/preferred weights must sum to 1, got %v", s)
	}
	if w.EducationPenalty < 0 || w.EducationPenalty > 100 {
		return fmt.Errorf("education penalty must be between 0 and 100, got %v", w.EducationPenalty)
	}
	return nil
}
