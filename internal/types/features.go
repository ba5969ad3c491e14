// Package types provides type definitions for structured data used throughout the resume-ranker system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// EducationLevel is an ordered education attainment level.
type EducationLevel string

// Education levels in ascending order of attainment.
const (
	EducationNone       EducationLevel = "None"
	EducationHighSchool EducationLevel = "High School"
	EducationBachelor   EducationLevel = "Bachelor"
	EducationMaster     EducationLevel = "Master"
	EducationDoctorate  EducationLevel = "Doctorate"
)

// educationRank maps levels to numeric ranks for comparison
var educationRank = map[EducationLevel]int{
	EducationNone:       0,
	EducationHighSchool: 1,
	EducationBachelor:   2,
	EducationMaster:     3,
	EducationDoctorate:  4,
}

// Rank returns the numeric ordinal of the level. Unknown values rank as None.
func (l EducationLevel) Rank() int {
	return educationRank[l]
}

// Meets reports whether the level satisfies the given requirement.
func (l EducationLevel) Meets(required EducationLevel) bool {
	return l.Rank() >= required.Rank()
}

// ResumeFeatures represents the structured feature set extracted from one resume.
// Created once per resume and immutable afterward. Skills hold canonical taxonomy
// names only, deduplicated and sorted so output is deterministic.
type ResumeFeatures struct {
	SourceID        string         `json:"source_id"`
	Skills          []string       `json:"skills"`
	ExperienceYears float64        `json:"experience_years"`
	EducationLevel  EducationLevel `json:"education_level"`
	Sector          string         `json:"sector"`
	RawTextLength   int            `json:"raw_text_length"`
	// LowConfidenceExperience is set when neither a date range nor a tenure
	// phrase was found in the text. Consumed only by weakness generation.
	LowConfidenceExperience bool `json:"low_confidence_experience,omitempty"`
}

// HasSkill reports whether the canonical skill name is present.
func (f *ResumeFeatures) HasSkill(name string) bool {
	for _, s := range f.Skills {
		if s == name {
			return true
		}
	}
	return false
}
