package scoring

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/jonathan/resume-ranker/internal/types"
)

// Narrative thresholds. A sub-score at or above strongThreshold reads as
// a strength; below weakThreshold it surfaces the specific gap.
const (
	strongThreshold      = 80.0
	weakThreshold        = 50.0
	exceptionalThreshold = 85.0

	maxRecommendations   = 3
	maxRecommendedSkills = 5
)

// Narrative carries the human-readable explanation lists for one
// candidate. All slices are non-nil so JSON renders arrays, not null.
type Narrative struct {
	Strengths       []string
	Weaknesses      []string
	Recommendations []string
}

// Explain derives strengths, weaknesses, and recommendations from a
// computed breakdown. Recommendations are keyed off the weaknesses that
// fired and capped at three.
func (e *Engine) Explain(f *types.ResumeFeatures, req *types.JobRequirements, b types.ScoreBreakdown) Narrative {
	n := Narrative{
		Strengths:       make([]string, 0, 4),
		Weaknesses:      make([]string, 0, 4),
		Recommendations: make([]string, 0, maxRecommendations),
	}
	if f == nil || req == nil {
		return n
	}

	if b.SkillsMatch >= strongThreshold {
		n.Strengths = append(n.Strengths, "Strong skills alignment")
	}
	if b.ExperienceMatch >= strongThreshold {
		n.Strengths = append(n.Strengths, "Strong experience fit")
	}
	if b.EducationMatch >= strongThreshold {
		n.Strengths = append(n.Strengths, "Strong educational background")
	}
	if b.Overall > exceptionalThreshold {
		n.Strengths = append(n.Strengths, "Exceptional overall match")
	}

	have := make(map[string]struct{}, len(f.Skills))
	for _, s := range f.Skills {
		have[s] = struct{}{}
	}

	if b.SkillsMatch < weakThreshold {
		if missing := missingFrom(req.RequiredSkills, have); len(missing) > 0 {
			n.Weaknesses = append(n.Weaknesses, "Missing required skills: "+joinNames(missing, len(missing)))
			n.Recommendations = append(n.Recommendations, "Develop missing skills: "+joinNames(missing, maxRecommendedSkills))
		} else if missing := missingFrom(req.PreferredSkills, have); len(missing) > 0 {
			n.Weaknesses = append(n.Weaknesses, "Missing preferred skills: "+joinNames(missing, len(missing)))
			n.Recommendations = append(n.Recommendations, "Develop missing skills: "+joinNames(missing, maxRecommendedSkills))
		}
	}

	if b.ExperienceMatch < weakThreshold {
		n.Weaknesses = append(n.Weaknesses, fmt.Sprintf("Experience below requirement: %s of %s years",
			formatYears(f.ExperienceYears), formatYears(req.MinExperienceYears)))
		if gap := math.Ceil(req.MinExperienceYears - f.ExperienceYears); gap > 0 {
			n.Recommendations = append(n.Recommendations,
				fmt.Sprintf("Gain %.0f more years of relevant experience", gap))
		}
	}

	if b.EducationMatch < weakThreshold {
		held := string(f.EducationLevel) + " held"
		if f.EducationLevel == types.EducationNone {
			held = "none found"
		}
		n.Weaknesses = append(n.Weaknesses, fmt.Sprintf("Education below requirement: %s needed, %s",
			req.EducationRequirement, held))
		n.Recommendations = append(n.Recommendations, "Consider pursuing a higher qualification")
	}

	if f.LowConfidenceExperience {
		n.Weaknesses = append(n.Weaknesses, "Experience could not be determined from resume text")
	}

	if len(n.Recommendations) > maxRecommendations {
		n.Recommendations = n.Recommendations[:maxRecommendations]
	}
	return n
}

// missingFrom returns the wanted names absent from have, keeping the
// wanted order (requirement lists are already sorted).
func missingFrom(wanted []string, have map[string]struct{}) []string {
	missing := make([]string, 0, len(wanted))
	for _, s := range wanted {
		if _, ok := have[s]; !ok {
			missing = append(missing, s)
		}
	}
	return missing
}

func joinNames(names []string, limit int) string {
	if len(names) > limit {
		names = names[:limit]
	}
	return strings.Join(names, ", ")
}

// formatYears renders 3 as "3" and 2.5 as "2.5".
func formatYears(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
