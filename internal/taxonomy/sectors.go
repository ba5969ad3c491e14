package taxonomy

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jonathan/resume-ranker/internal/schemas"
	refschemas "github.com/jonathan/resume-ranker/schemas"
)

// Sector names assigned outside vocabulary detection: Unknown for empty
// input text, General for text that matches no cluster at all.
const (
	SectorUnknown = "Unknown"
	SectorGeneral = "General"
)

// SectorEntry maps one sector to its characteristic keyword cluster.
type SectorEntry struct {
	Name     string   `json:"name"`
	Keywords []string `json:"keywords"`
}

type sectorsFile struct {
	Sectors []SectorEntry `json:"sectors"`
}

type compiledSector struct {
	name  string
	keys  []string // normalized keyword gram keys, deduplicated
	total int
}

// Vocabulary is the compiled sector reference, built once and never mutated.
type Vocabulary struct {
	entries []SectorEntry
	sectors []compiledSector
	maxGram int
}

// CompileSectors validates sector vocabulary JSON against its schema and
// normalizes each keyword cluster into gram keys.
func CompileSectors(data []byte) (*Vocabulary, error) {
	if err := schemas.ValidateBytes(refschemas.SectorVocabulary, data); err != nil {
		return nil, &LoadError{Source: "sectors", Message: "schema validation failed", Cause: err}
	}

	var f sectorsFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, &LoadError{Source: "sectors", Message: "invalid JSON", Cause: err}
	}

	v := &Vocabulary{}
	seen := make(map[string]struct{}, len(f.Sectors))

	for _, entry := range f.Sectors {
		if _, dup := seen[entry.Name]; dup {
			return nil, &LoadError{Source: "sectors", Message: fmt.Sprintf("duplicate sector %q", entry.Name)}
		}
		seen[entry.Name] = struct{}{}
		v.entries = append(v.entries, entry)

		cs := compiledSector{name: entry.Name}
		keySeen := make(map[string]struct{}, len(entry.Keywords))
		for _, kw := range entry.Keywords {
			key := gramKey(kw)
			if key == "" {
				continue
			}
			if _, dup := keySeen[key]; dup {
				continue
			}
			keySeen[key] = struct{}{}
			cs.keys = append(cs.keys, key)
			if n := strings.Count(key, " ") + 1; n > v.maxGram {
				v.maxGram = n
			}
		}
		cs.total = len(cs.keys)
		if cs.total == 0 {
			return nil, &LoadError{Source: "sectors", Message: fmt.Sprintf("sector %q has no usable keywords", entry.Name)}
		}
		v.sectors = append(v.sectors, cs)
	}

	return v, nil
}

// DetectSector assigns the sector whose keyword cluster overlaps the token
// stream most. The overlap score is distinct matched keywords normalized by
// cluster size; ties break on more distinct matches, then on lexicographic
// sector name. Zero matches anywhere yields General; empty token streams
// yield Unknown.
func (v *Vocabulary) DetectSector(tokens []string) string {
	if len(tokens) == 0 {
		return SectorUnknown
	}

	set := GramSet(tokens, v.maxGram)

	best := ""
	bestScore := 0.0
	bestMatched := 0
	for _, cs := range v.sectors {
		matched := 0
		for _, key := range cs.keys {
			if _, ok := set[key]; ok {
				matched++
			}
		}
		if matched == 0 {
			continue
		}
		score := float64(matched) / float64(cs.total)
		switch {
		case score > bestScore:
		case score == bestScore && matched > bestMatched:
		case score == bestScore && matched == bestMatched && best != "" && cs.name < best:
		default:
			continue
		}
		best = cs.name
		bestScore = score
		bestMatched = matched
	}

	if best == "" {
		return SectorGeneral
	}
	return best
}

// Len returns the number of sectors.
func (v *Vocabulary) Len() int {
	return len(v.sectors)
}

// Sectors returns the vocabulary entries in data-file order.
func (v *Vocabulary) Sectors() []SectorEntry {
	out := make([]SectorEntry, len(v.entries))
	copy(out, v.entries)
	return out
}
