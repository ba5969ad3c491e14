package types

// JobRequirements represents the structured requirements extracted from a job
// description. Created once per analysis request. Required and preferred skill
// lists are canonical, sorted, and disjoint: a skill mentioned in both a
// required and a preferred section resolves to required.
type JobRequirements struct {
	RequiredSkills       []string       `json:"required_skills"`
	PreferredSkills      []string       `json:"preferred_skills"`
	MinExperienceYears   float64        `json:"min_experience_years"`
	EducationRequirement EducationLevel `json:"education_requirement"`
	Sector               string         `json:"sector"`
	// ComplexityScore grades how demanding/specific the posting is on a 0-10
	// scale, independent of any one candidate.
	ComplexityScore float64 `json:"complexity_score"`
}

// AllSkills returns required followed by preferred skills.
func (r *JobRequirements) AllSkills() []string {
	out := make([]string, 0, len(r.RequiredSkills)+len(r.PreferredSkills))
	out = append(out, r.RequiredSkills...)
	out = append(out, r.PreferredSkills...)
	return out
}
