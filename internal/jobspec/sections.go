package jobspec

import (
	"regexp"
	"sort"
	"strings"

	"github.com/jonathan/resume-ranker/internal/taxonomy"
)

type sectionKind int

const (
	sectionRequired sectionKind = iota
	sectionPreferred
)

// markerPattern finds phrases that open a requirement section. Group 1
// opens a required section, group 2 a preferred one.
var markerPattern = regexp.MustCompile(
	`(?i)\b(?:(required|requirements?|must[ -]have|essential|qualifications?)|` +
		`(preferred|nice[ -]to[ -]have|desired|desirable|bonus|a plus))\b`)

// classifySkills walks the description line by line and splits each line at
// its section markers. A marker classifies everything after it until the
// next marker, across line breaks; text before any marker counts as
// required. It returns sorted distinct skill names per bucket and the
// number of sections opened. A skill mentioned in both buckets resolves to
// required.
func (a *Analyzer) classifySkills(text string) (required, preferred []string, sections int) {
	reqSet := make(map[string]struct{})
	prefSet := make(map[string]struct{})

	mode := sectionRequired
	for _, line := range strings.Split(text, "\n") {
		start := 0
		for _, m := range markerPattern.FindAllStringSubmatchIndex(line, -1) {
			a.collectSkills(line[start:m[0]], mode, reqSet, prefSet)
			if m[2] >= 0 {
				mode = sectionRequired
			} else {
				mode = sectionPreferred
			}
			sections++
			start = m[1]
		}
		a.collectSkills(line[start:], mode, reqSet, prefSet)
	}

	for name := range prefSet {
		if _, both := reqSet[name]; both {
			delete(prefSet, name)
		}
	}
	return sortedNames(reqSet), sortedNames(prefSet), sections
}

func (a *Analyzer) collectSkills(segment string, mode sectionKind, reqSet, prefSet map[string]struct{}) {
	if strings.TrimSpace(segment) == "" {
		return
	}
	dst := reqSet
	if mode == sectionPreferred {
		dst = prefSet
	}
	for _, name := range a.tax.MatchTokens(taxonomy.Tokenize(segment)) {
		dst[name] = struct{}{}
	}
}

func sortedNames(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for name := range set {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
