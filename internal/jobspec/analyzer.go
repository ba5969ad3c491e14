// Package jobspec analyzes job-description text into structured
// requirements: required and preferred skills, minimum experience,
// education requirement, sector, and a complexity score.
package jobspec

import (
	"math"
	"strings"

	"github.com/jonathan/resume-ranker/internal/extraction"
	"github.com/jonathan/resume-ranker/internal/taxonomy"
	"github.com/jonathan/resume-ranker/internal/types"
)

// Complexity composite ceilings: a posting at or above a ceiling saturates
// that component.
const (
	complexitySkillCeiling   = 12
	complexityRuneCeiling    = 3000
	complexitySectionCeiling = 4

	complexitySkillWeight   = 0.4
	complexityLengthWeight  = 0.3
	complexitySectionWeight = 0.3
)

// Analyzer turns one job description into a JobRequirements record.
// It is stateless over the compiled reference data and safe to share.
type Analyzer struct {
	tax   *taxonomy.Taxonomy
	vocab *taxonomy.Vocabulary
}

// New creates an analyzer over compiled reference data.
func New(tax *taxonomy.Taxonomy, vocab *taxonomy.Vocabulary) *Analyzer {
	return &Analyzer{tax: tax, vocab: vocab}
}

// Analyze extracts structured requirements from a job description.
// An empty or whitespace-only description is an error; every other
// degenerate input degrades to an empty requirement set.
func (a *Analyzer) Analyze(text string) (*types.JobRequirements, error) {
	if strings.TrimSpace(text) == "" {
		return nil, &AnalysisError{Message: "empty job description"}
	}

	tokens := taxonomy.Tokenize(text)
	required, preferred, sections := a.classifySkills(text)
	years, _ := extraction.StatedTenureYears(text)

	return &types.JobRequirements{
		RequiredSkills:       required,
		PreferredSkills:      preferred,
		MinExperienceYears:   years,
		EducationRequirement: extraction.DetectEducationLevel(tokens),
		Sector:               a.vocab.DetectSector(tokens),
		ComplexityScore:      complexityScore(len(required), len([]rune(text)), sections),
	}, nil
}

// complexityScore grades how demanding a posting is on a 0..10 scale from
// its distinct required skills, text length, and structured requirement
// sections, rounded to one decimal.
func complexityScore(requiredSkills, runes, sections int) float64 {
	skillTerm := math.Min(1, float64(requiredSkills)/complexitySkillCeiling)
	lengthTerm := math.Min(1, float64(runes)/complexityRuneCeiling)
	sectionTerm := math.Min(1, float64(sections)/complexitySectionCeiling)

	score := 10 * (complexitySkillWeight*skillTerm +
		complexityLengthWeight*lengthTerm +
		complexitySectionWeight*sectionTerm)
	return math.Round(score*10) / 10
}
