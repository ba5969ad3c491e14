// Package taxonomy provides the static reference data the engine matches
// against: canonical skills with their surface-form aliases, and sector
// keyword vocabularies. Both are compiled once at startup into immutable
// lookup structures and shared read-only across goroutines.
package taxonomy

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/jonathan/resume-ranker/internal/schemas"
	refschemas "github.com/jonathan/resume-ranker/schemas"
)

// SkillEntry is one canonical skill: its display name, the lowercase surface
// forms that resolve to it, and its category tag.
type SkillEntry struct {
	Name     string   `json:"name"`
	Aliases  []string `json:"aliases,omitempty"`
	Category string   `json:"category"`
}

type skillsFile struct {
	Skills []SkillEntry `json:"skills"`
}

// Taxonomy is the compiled skill reference. The alias index maps token
// n-grams to canonical names; it is built once and never mutated.
type Taxonomy struct {
	entries []SkillEntry
	byName  map[string]int
	grams   map[string]string
	maxGram int
}

// CompileSkills validates skill taxonomy JSON against its schema and builds
// the alias index. The canonical name itself always matches, in addition to
// any listed aliases; the first definition of a surface form wins.
func CompileSkills(data []byte) (*Taxonomy, error) {
	if err := schemas.ValidateBytes(refschemas.SkillTaxonomy, data); err != nil {
		return nil, &LoadError{Source: "skills", Message: "schema validation failed", Cause: err}
	}

	var f skillsFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, &LoadError{Source: "skills", Message: "invalid JSON", Cause: err}
	}

	t := &Taxonomy{
		byName: make(map[string]int, len(f.Skills)),
		grams:  make(map[string]string),
	}

	for _, entry := range f.Skills {
		if _, dup := t.byName[entry.Name]; dup {
			return nil, &LoadError{Source: "skills", Message: fmt.Sprintf("duplicate canonical skill %q", entry.Name)}
		}
		t.byName[entry.Name] = len(t.entries)
		t.entries = append(t.entries, entry)

		surfaces := make([]string, 0, len(entry.Aliases)+1)
		surfaces = append(surfaces, entry.Name)
		surfaces = append(surfaces, entry.Aliases...)

		for _, surface := range surfaces {
			key := gramKey(surface)
			if key == "" {
				continue
			}
			if _, exists := t.grams[key]; exists {
				continue
			}
			t.grams[key] = entry.Name
			if n := strings.Count(key, " ") + 1; n > t.maxGram {
				t.maxGram = n
			}
		}
	}

	return t, nil
}

// MatchTokens resolves every alias occurrence in the token stream to its
// canonical skill name. The result is deduplicated and sorted.
func (t *Taxonomy) MatchTokens(tokens []string) []string {
	set := GramSet(tokens, t.maxGram)

	found := make(map[string]struct{})
	for key, name := range t.grams {
		if _, ok := set[key]; ok {
			found[name] = struct{}{}
		}
	}

	out := make([]string, 0, len(found))
	for name := range found {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// MatchText tokenizes text and resolves skills in one call.
func (t *Taxonomy) MatchText(text string) []string {
	return t.MatchTokens(Tokenize(text))
}

// Category returns the category tag of a canonical skill, or "" when the
// name is not in the taxonomy.
func (t *Taxonomy) Category(name string) string {
	idx, ok := t.byName[name]
	if !ok {
		return ""
	}
	return t.entries[idx].Category
}

// Contains reports whether the canonical name is defined.
func (t *Taxonomy) Contains(name string) bool {
	_, ok := t.byName[name]
	return ok
}

// Len returns the number of canonical skills.
func (t *Taxonomy) Len() int {
	return len(t.entries)
}

// Skills returns the canonical entries in data-file order.
func (t *Taxonomy) Skills() []SkillEntry {
	out := make([]SkillEntry, len(t.entries))
	copy(out, t.entries)
	return out
}

// Categories returns category names with their canonical skill counts.
func (t *Taxonomy) Categories() map[string]int {
	out := make(map[string]int)
	for _, e := range t.entries {
		out[e.Category]++
	}
	return out
}
