package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEducationLevel_Rank_Ordering(t *testing.T) {
	levels := []EducationLevel{
		EducationNone,
		EducationHighSchool,
		EducationBachelor,
		EducationMaster,
		EducationDoctorate,
	}

	for i := 1; i < len(levels); i++ {
		assert.Greater(t, levels[i].Rank(), levels[i-1].Rank(),
			"%s should rank above %s", levels[i], levels[i-1])
	}
}

func TestEducationLevel_Rank_UnknownValue(t *testing.T) {
	assert.Equal(t, 0, EducationLevel("Bootcamp").Rank())
	assert.Equal(t, EducationNone.Rank(), EducationLevel("").Rank())
}

func TestEducationLevel_Meets(t *testing.T) {
	tests := []struct {
		name     string
		level    EducationLevel
		required EducationLevel
		want     bool
	}{
		{"exact match", EducationBachelor, EducationBachelor, true},
		{"exceeds requirement", EducationMaster, EducationBachelor, true},
		{"below requirement", EducationHighSchool, EducationMaster, false},
		{"no requirement", EducationNone, EducationNone, true},
		{"doctorate meets everything", EducationDoctorate, EducationMaster, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.level.Meets(tt.required))
		})
	}
}

func TestResumeFeatures_HasSkill(t *testing.T) {
	f := &ResumeFeatures{
		SourceID: "resume_1.txt",
		Skills:   []string{"HubSpot", "SEO", "Salesforce"},
	}

	assert.True(t, f.HasSkill("SEO"))
	assert.False(t, f.HasSkill("seo"), "lookup is by canonical name, not surface form")
	assert.False(t, f.HasSkill("Kubernetes"))
}
