// Package scoring grades one candidate's extracted features against one
// job's requirements and explains the result. The engine is pure over its
// inputs and safe to call from concurrent workers.
package scoring

import (
	"math"

	"github.com/jonathan/resume-ranker/internal/types"
)

// Engine applies a validated weight profile to candidate/job pairs.
type Engine struct {
	weights Weights
}

// NewEngine builds an engine after validating the weight profile.
func NewEngine(w Weights) (*Engine, error) {
	if err := w.Validate(); err != nil {
		return nil, err
	}
	return &Engine{weights: w}, nil
}

// Weights returns the profile the engine was built with.
func (e *Engine) Weights() Weights {
	return e.weights
}

// Score computes the sub-scores and the weighted overall for one
// candidate. Sub-scores and the overall are rounded to one decimal; the
// overall is computed from the rounded sub-scores so a reader can
// reproduce it from the printed breakdown.
func (e *Engine) Score(f *types.ResumeFeatures, req *types.JobRequirements) (types.ScoreBreakdown, error) {
	if f == nil {
		return types.ScoreBreakdown{}, &ScoringError{Message: "nil resume features"}
	}
	if req == nil {
		return types.ScoreBreakdown{}, &ScoringError{SourceID: f.SourceID, Message: "nil job requirements"}
	}
	if math.IsNaN(f.ExperienceYears) || math.IsInf(f.ExperienceYears, 0) || f.ExperienceYears < 0 {
		return types.ScoreBreakdown{}, &ScoringError{SourceID: f.SourceID, Message: "malformed experience years"}
	}

	b := types.ScoreBreakdown{
		SkillsMatch:     round1(e.skillsMatch(f, req)),
		ExperienceMatch: round1(e.experienceMatch(f.ExperienceYears, req.MinExperienceYears)),
		EducationMatch:  round1(e.educationMatch(f.EducationLevel, req.EducationRequirement)),
	}
	b.Overall = round1(e.weights.Skills*b.SkillsMatch +
		e.weights.Experience*b.ExperienceMatch +
		e.weights.Education*b.EducationMatch)
	return b, nil
}

// skillsMatch blends required and preferred coverage. A requirement set
// that the posting never filled contributes nothing and its weight is
// renormalized away, so a required-only posting with full coverage still
// scores 100. No requirements at all is vacuously satisfied.
func (e *Engine) skillsMatch(f *types.ResumeFeatures, req *types.JobRequirements) float64 {
	hasRequired := len(req.RequiredSkills) > 0
	hasPreferred := len(req.PreferredSkills) > 0
	if !hasRequired && !hasPreferred {
		return 100
	}

	have := make(map[string]struct{}, len(f.Skills))
	for _, s := range f.Skills {
		have[s] = struct{}{}
	}

	num, den := 0.0, 0.0
	if hasRequired {
		num += e.weights.Required * coverage(req.RequiredSkills, have)
		den += e.weights.Required
	}
	if hasPreferred {
		num += e.weights.Preferred * coverage(req.PreferredSkills, have)
		den += e.weights.Preferred
	}
	if den == 0 {
		return 0
	}
	return 100 * num / den
}

func coverage(wanted []string, have map[string]struct{}) float64 {
	if len(wanted) == 0 {
		return 0
	}
	matched := 0
	for _, s := range wanted {
		if _, ok := have[s]; ok {
			matched++
		}
	}
	return float64(matched) / float64(len(wanted))
}

// experienceMatch is the capped ratio of candidate years to required
// years. Overqualification earns no bonus.
func (e *Engine) experienceMatch(candidate, required float64) float64 {
	return 100 * math.Min(1, candidate/math.Max(1, required))
}

// educationMatch is 100 when the candidate meets or exceeds the required
// level, otherwise the penalty applies per level short, floored at zero.
func (e *Engine) educationMatch(candidate, required types.EducationLevel) float64 {
	gap := required.Rank() - candidate.Rank()
	if gap <= 0 {
		return 100
	}
	score := 100 - e.weights.EducationPenalty*float64(gap)
	if score < 0 {
		return 0
	}
	return score
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
