package extraction

import (
	"github.com/jonathan/resume-ranker/internal/taxonomy"
	"github.com/jonathan/resume-ranker/internal/types"
)

// educationKeywords maps degree-level keyword groups, highest level first.
// Keywords are in normalized token form: "Ph.D." tokenizes to "ph.d",
// "M.B.A." to "m.b.a", and "high school" is matched as a bigram.
var educationKeywords = []struct {
	level    types.EducationLevel
	keywords []string
}{
	{types.EducationDoctorate, []string{
		"phd", "ph.d", "doctorate", "doctoral", "postdoctoral",
	}},
	{types.EducationMaster, []string{
		"master", "masters", "mba", "m.b.a",
		"ms", "m.s", "msc", "m.sc", "ma", "m.a", "mtech", "meng",
	}},
	{types.EducationBachelor, []string{
		"bachelor", "bachelors", "undergraduate",
		"bs", "b.s", "bsc", "b.sc", "ba", "b.a", "btech", "b.tech", "beng",
	}},
	{types.EducationHighSchool, []string{
		"high school", "ged", "diploma", "associate",
	}},
}

// DetectEducationLevel scans normalized tokens for degree keywords and
// returns the highest level mentioned anywhere in the text. No mention
// yields EducationNone rather than an error.
func DetectEducationLevel(tokens []string) types.EducationLevel {
	if len(tokens) == 0 {
		return types.EducationNone
	}
	grams := taxonomy.GramSet(tokens, 2)
	for _, group := range educationKeywords {
		for _, kw := range group.keywords {
			if _, ok := grams[kw]; ok {
				return group.level
			}
		}
	}
	return types.EducationNone
}
