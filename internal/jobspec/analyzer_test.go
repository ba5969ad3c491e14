package jobspec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-ranker/internal/taxonomy"
	"github.com/jonathan/resume-ranker/internal/types"
)

func newTestAnalyzer(t *testing.T) *Analyzer {
	t.Helper()
	tax, vocab, err := taxonomy.Default()
	require.NoError(t, err)
	return New(tax, vocab)
}

func TestAnalyzer_SingleLinePosting(t *testing.T) {
	a := newTestAnalyzer(t)

	req, err := a.Analyze("Senior Marketing Manager, 5+ years, Bachelor's required, skills: SEO, SEM, HubSpot, Salesforce")

	require.NoError(t, err)
	assert.Equal(t, []string{"HubSpot", "SEM", "SEO", "Salesforce"}, req.RequiredSkills)
	assert.Empty(t, req.PreferredSkills)
	assert.Equal(t, float64(5), req.MinExperienceYears)
	assert.Equal(t, types.EducationBachelor, req.EducationRequirement)
	assert.Equal(t, "Marketing", req.Sector)
	assert.Equal(t, 2.2, req.ComplexityScore)
}

func TestAnalyzer_SectionedPosting(t *testing.T) {
	a := newTestAnalyzer(t)
	text := "Marketing Analytics Lead\n" +
		"\n" +
		"Requirements:\n" +
		"- 3+ years of experience\n" +
		"- SEO and Google Analytics\n" +
		"- Bachelor's degree\n" +
		"\n" +
		"Nice to have:\n" +
		"- PPC\n" +
		"- HubSpot"

	req, err := a.Analyze(text)

	require.NoError(t, err)
	assert.Equal(t, []string{"Google Analytics", "SEO"}, req.RequiredSkills)
	assert.Equal(t, []string{"HubSpot", "PPC"}, req.PreferredSkills)
	assert.Equal(t, float64(3), req.MinExperienceYears)
	assert.Equal(t, types.EducationBachelor, req.EducationRequirement)
	assert.Equal(t, "Marketing", req.Sector)
	assert.Equal(t, 2.3, req.ComplexityScore)
}

func TestAnalyzer_UnmarkedSkillsAreRequired(t *testing.T) {
	a := newTestAnalyzer(t)

	req, err := a.Analyze("Looking for someone who knows Java and SQL.")

	require.NoError(t, err)
	assert.Equal(t, []string{"Java", "SQL"}, req.RequiredSkills)
	assert.Empty(t, req.PreferredSkills)
	assert.Zero(t, req.MinExperienceYears)
	assert.Equal(t, types.EducationNone, req.EducationRequirement)
	assert.Equal(t, "Information Technology", req.Sector)
	assert.Equal(t, 0.7, req.ComplexityScore)
}

func TestAnalyzer_MarkerSplitsMidLine(t *testing.T) {
	a := newTestAnalyzer(t)

	req, err := a.Analyze("We use Go daily. Nice to have: Kubernetes.")

	require.NoError(t, err)
	assert.Equal(t, []string{"Go"}, req.RequiredSkills)
	assert.Equal(t, []string{"Kubernetes"}, req.PreferredSkills)
}

func TestAnalyzer_RequiredWinsOverlap(t *testing.T) {
	a := newTestAnalyzer(t)

	req, err := a.Analyze("Requirements: SQL, Python\nPreferred: Python, Docker")

	require.NoError(t, err)
	assert.Equal(t, []string{"Python", "SQL"}, req.RequiredSkills)
	assert.Equal(t, []string{"Docker"}, req.PreferredSkills)
}

func TestAnalyzer_NoRecognizableContent(t *testing.T) {
	a := newTestAnalyzer(t)

	req, err := a.Analyze("We need a wonderful human")

	require.NoError(t, err)
	require.NotNil(t, req.RequiredSkills)
	assert.Empty(t, req.RequiredSkills)
	require.NotNil(t, req.PreferredSkills)
	assert.Empty(t, req.PreferredSkills)
	assert.Zero(t, req.MinExperienceYears)
	assert.Equal(t, types.EducationNone, req.EducationRequirement)
	assert.Equal(t, taxonomy.SectorGeneral, req.Sector)
	assert.Equal(t, 0.0, req.ComplexityScore)
}

func TestAnalyzer_EmptyDescription(t *testing.T) {
	a := newTestAnalyzer(t)

	for _, text := range []string{"", "   \n\t "} {
		req, err := a.Analyze(text)

		assert.Nil(t, req)
		var aerr *AnalysisError
		require.ErrorAs(t, err, &aerr)
		assert.Contains(t, aerr.Error(), "empty job description")
	}
}

func TestComplexityScore_Saturates(t *testing.T) {
	assert.Equal(t, 10.0, complexityScore(12, 3000, 4))
	assert.Equal(t, 10.0, complexityScore(40, 9000, 9))
	assert.Equal(t, 0.0, complexityScore(0, 0, 0))
}
