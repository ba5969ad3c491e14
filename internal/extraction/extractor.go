// Package extraction converts raw resume text into structured features:
// canonical skills, experience years, education level, and detected sector.
// Extraction is pure and stateless over the read-only taxonomy, so one
// Extractor is safe to share across goroutines.
package extraction

import (
	"strings"
	"time"

	"github.com/jonathan/resume-ranker/internal/taxonomy"
	"github.com/jonathan/resume-ranker/internal/types"
)

// Extractor turns one resume's plain text into a ResumeFeatures record.
type Extractor struct {
	tax   *taxonomy.Taxonomy
	vocab *taxonomy.Vocabulary
	// nowYear resolves open-ended date ranges ("2019 - Present").
	nowYear int
}

// New creates an extractor over compiled reference data.
func New(tax *taxonomy.Taxonomy, vocab *taxonomy.Vocabulary) *Extractor {
	return &Extractor{
		tax:     tax,
		vocab:   vocab,
		nowYear: time.Now().Year(),
	}
}

// Extract builds the feature set for one resume. Empty or whitespace-only
// text yields a degraded-but-valid record (no skills, zero experience,
// education None, sector Unknown), never an error.
func (e *Extractor) Extract(sourceID, text string) *types.ResumeFeatures {
	if strings.TrimSpace(text) == "" {
		return &types.ResumeFeatures{
			SourceID:                sourceID,
			Skills:                  []string{},
			EducationLevel:          types.EducationNone,
			Sector:                  taxonomy.SectorUnknown,
			RawTextLength:           len(text),
			LowConfidenceExperience: true,
		}
	}

	tokens := taxonomy.Tokenize(text)

	years, confident := ExtractExperienceYears(text, e.nowYear)

	return &types.ResumeFeatures{
		SourceID:                sourceID,
		Skills:                  e.tax.MatchTokens(tokens),
		ExperienceYears:         years,
		EducationLevel:          DetectEducationLevel(tokens),
		Sector:                  e.vocab.DetectSector(tokens),
		RawTextLength:           len(text),
		LowConfidenceExperience: !confident,
	}
}
