package extraction

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// maxExperienceYears caps extracted totals; values above this are noise
// (phone numbers, street addresses) rather than real tenure.
const maxExperienceYears = 50

// earliestCareerYear bounds the left edge of a plausible employment range.
const earliestCareerYear = 1950

var (
	// yearRangePattern matches employment ranges like "2018-2022",
	// "2019 – Present" or "2016 to 2020".
	yearRangePattern = regexp.MustCompile(`(?i)\b((?:19|20)\d{2})\s*(?:[-–—]+|to|until|through)\s*((?:19|20)\d{2}|present|current|now|today)\b`)

	// tenurePattern matches stated totals like "8 years of experience",
	// "5+ yrs", "3-year track record". One pattern covers the phrasing
	// variants because only the leading number is captured.
	tenurePattern = regexp.MustCompile(`(?i)\b(\d{1,2})(?:\.\d+)?[\s-]*\+?[\s-]*(?:years?|yrs?)\b`)
)

type yearInterval struct {
	start int
	end   int
}

// ExtractExperienceYears estimates total professional experience from free
// text. Explicit employment ranges take precedence: their spans are merged
// so overlapping roles are not double counted. When only tenure phrases
// appear, the largest stated number wins. The second return reports whether
// any signal was found at all.
func ExtractExperienceYears(text string, nowYear int) (float64, bool) {
	if years, ok := yearsFromRanges(text, nowYear); ok {
		return capYears(years), true
	}
	if years, ok := yearsFromTenurePhrases(text); ok {
		return capYears(years), true
	}
	return 0, false
}

// StatedTenureYears reads only stated totals like "5+ years" or "3-year",
// ignoring employment date ranges. Job postings phrase minimums this way,
// and a date range in a posting is a program timeline, not tenure.
func StatedTenureYears(text string) (float64, bool) {
	years, ok := yearsFromTenurePhrases(text)
	if !ok {
		return 0, false
	}
	return capYears(years), true
}

func yearsFromRanges(text string, nowYear int) (float64, bool) {
	matches := yearRangePattern.FindAllStringSubmatch(text, -1)
	if len(matches) == 0 {
		return 0, false
	}

	intervals := make([]yearInterval, 0, len(matches))
	for _, m := range matches {
		start, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		end := nowYear
		if v, err := strconv.Atoi(m[2]); err == nil {
			end = v
		}
		if end > nowYear {
			end = nowYear
		}
		if start < earliestCareerYear || start > end {
			continue
		}
		intervals = append(intervals, yearInterval{start: start, end: end})
	}
	if len(intervals) == 0 {
		return 0, false
	}

	return float64(sumMergedSpans(intervals)), true
}

// sumMergedSpans merges overlapping or touching intervals and sums the
// year spans of the merged result.
func sumMergedSpans(intervals []yearInterval) int {
	sort.Slice(intervals, func(i, j int) bool {
		if intervals[i].start != intervals[j].start {
			return intervals[i].start < intervals[j].start
		}
		return intervals[i].end < intervals[j].end
	})

	total := 0
	cur := intervals[0]
	for _, iv := range intervals[1:] {
		if iv.start <= cur.end {
			if iv.end > cur.end {
				cur.end = iv.end
			}
			continue
		}
		total += cur.end - cur.start
		cur = iv
	}
	total += cur.end - cur.start
	return total
}

func yearsFromTenurePhrases(text string) (float64, bool) {
	matches := tenurePattern.FindAllStringSubmatch(text, -1)
	if len(matches) == 0 {
		return 0, false
	}

	best := -1
	for _, m := range matches {
		v, err := strconv.Atoi(strings.TrimSpace(m[1]))
		if err != nil {
			continue
		}
		if v > best {
			best = v
		}
	}
	if best < 0 {
		return 0, false
	}
	return float64(best), true
}

func capYears(years float64) float64 {
	if years > maxExperienceYears {
		return maxExperienceYears
	}
	return years
}
