package types

// ScoreBreakdown holds the four match score components. Every component lies in
// [0,100]; Overall is a weighted composite of the other three rounded to one
// decimal, never set independently.
type ScoreBreakdown struct {
	SkillsMatch     float64 `json:"skills_match"`
	ExperienceMatch float64 `json:"experience_match"`
	EducationMatch  float64 `json:"education_match"`
	Overall         float64 `json:"overall"`
}

// CandidateScore represents one scored candidate within an analysis run. Rank
// is assigned only after the full batch is scored and sorted.
type CandidateScore struct {
	Rank            int            `json:"rank"`
	ID              string         `json:"id"`
	Filename        string         `json:"filename"`
	MatchPercentage float64        `json:"match_percentage"`
	Skills          []string       `json:"skills"`
	ExperienceYears float64        `json:"experience_years"`
	EducationLevel  EducationLevel `json:"education_level"`
	Sector          string         `json:"sector"`
	Strengths       []string       `json:"strengths"`
	Weaknesses      []string       `json:"weaknesses"`
	Recommendations []string       `json:"recommendations"`
	Score           ScoreBreakdown `json:"score"`
	// Degraded marks a candidate whose features could not be scored and who
	// received a zero score instead of aborting the batch.
	Degraded bool `json:"degraded,omitempty"`
}
