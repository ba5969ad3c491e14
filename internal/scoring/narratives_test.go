package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-ranker/internal/types"
)

func TestExplain_FullMatch(t *testing.T) {
	e := newTestEngine(t)
	f := &types.ResumeFeatures{
		SourceID:        "resume-a",
		Skills:          []string{"HubSpot", "SEM", "SEO", "Salesforce"},
		ExperienceYears: 8,
		EducationLevel:  types.EducationMaster,
	}
	b, err := e.Score(f, marketingJob())
	require.NoError(t, err)

	n := e.Explain(f, marketingJob(), b)

	assert.Equal(t, []string{
		"Strong skills alignment",
		"Strong experience fit",
		"Strong educational background",
		"Exceptional overall match",
	}, n.Strengths)
	assert.Empty(t, n.Weaknesses)
	assert.Empty(t, n.Recommendations)
}

func TestExplain_MissingRequiredSkills(t *testing.T) {
	e := newTestEngine(t)
	f := &types.ResumeFeatures{SourceID: "r", Skills: []string{"Java"}}
	req := &types.JobRequirements{
		RequiredSkills: []string{"Docker", "Python", "SQL"},
	}
	b, err := e.Score(f, req)
	require.NoError(t, err)

	n := e.Explain(f, req, b)

	assert.Contains(t, n.Weaknesses, "Missing required skills: Docker, Python, SQL")
	assert.Contains(t, n.Recommendations, "Develop missing skills: Docker, Python, SQL")
}

func TestExplain_RecommendationSkillListCapped(t *testing.T) {
	e := newTestEngine(t)
	f := &types.ResumeFeatures{SourceID: "r", Skills: []string{}}
	req := &types.JobRequirements{
		RequiredSkills: []string{"Angular", "Docker", "Git", "Java", "Python", "React", "SQL"},
	}
	b, err := e.Score(f, req)
	require.NoError(t, err)

	n := e.Explain(f, req, b)

	assert.Contains(t, n.Weaknesses,
		"Missing required skills: Angular, Docker, Git, Java, Python, React, SQL")
	assert.Contains(t, n.Recommendations,
		"Develop missing skills: Angular, Docker, Git, Java, Python")
}

func TestExplain_MissingPreferredSkillsOnly(t *testing.T) {
	e := newTestEngine(t)
	f := &types.ResumeFeatures{SourceID: "r", Skills: []string{}}
	req := &types.JobRequirements{
		PreferredSkills: []string{"Figma", "Sketch"},
	}
	b, err := e.Score(f, req)
	require.NoError(t, err)

	n := e.Explain(f, req, b)

	assert.Contains(t, n.Weaknesses, "Missing preferred skills: Figma, Sketch")
}

func TestExplain_ExperienceGap(t *testing.T) {
	e := newTestEngine(t)
	f := &types.ResumeFeatures{SourceID: "r", Skills: []string{}, ExperienceYears: 1}
	req := &types.JobRequirements{MinExperienceYears: 5}
	b, err := e.Score(f, req)
	require.NoError(t, err)

	n := e.Explain(f, req, b)

	assert.Contains(t, n.Weaknesses, "Experience below requirement: 1 of 5 years")
	assert.Contains(t, n.Recommendations, "Gain 4 more years of relevant experience")
}

func TestExplain_EducationGap(t *testing.T) {
	e := newTestEngine(t)

	t.Run("degree held but too low", func(t *testing.T) {
		f := &types.ResumeFeatures{SourceID: "r", Skills: []string{}, EducationLevel: types.EducationHighSchool}
		req := &types.JobRequirements{EducationRequirement: types.EducationDoctorate}
		b, err := e.Score(f, req)
		require.NoError(t, err)

		n := e.Explain(f, req, b)

		assert.Contains(t, n.Weaknesses, "Education below requirement: Doctorate needed, High School held")
		assert.Contains(t, n.Recommendations, "Consider pursuing a higher qualification")
	})

	t.Run("no degree found", func(t *testing.T) {
		f := &types.ResumeFeatures{SourceID: "r", Skills: []string{}, EducationLevel: types.EducationNone}
		req := &types.JobRequirements{EducationRequirement: types.EducationDoctorate}
		b, err := e.Score(f, req)
		require.NoError(t, err)

		n := e.Explain(f, req, b)

		assert.Contains(t, n.Weaknesses, "Education below requirement: Doctorate needed, none found")
	})
}

func TestExplain_LowConfidenceExperience(t *testing.T) {
	e := newTestEngine(t)
	f := &types.ResumeFeatures{
		SourceID:                "r",
		Skills:                  []string{},
		LowConfidenceExperience: true,
	}
	req := &types.JobRequirements{}
	b, err := e.Score(f, req)
	require.NoError(t, err)

	n := e.Explain(f, req, b)

	assert.Contains(t, n.Weaknesses, "Experience could not be determined from resume text")
}

func TestExplain_NilInputsYieldEmptyLists(t *testing.T) {
	e := newTestEngine(t)

	n := e.Explain(nil, nil, types.ScoreBreakdown{})

	require.NotNil(t, n.Strengths)
	require.NotNil(t, n.Weaknesses)
	require.NotNil(t, n.Recommendations)
	assert.Empty(t, n.Strengths)
	assert.Empty(t, n.Weaknesses)
	assert.Empty(t, n.Recommendations)
}
