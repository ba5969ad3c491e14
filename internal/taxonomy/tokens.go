package taxonomy

import "strings"

// Tokenize lowercases text and splits it into matching tokens. Letters,
// digits, '+', '#', and '.' count as token characters so "C++", "C#", and
// "Node.js" survive as single tokens; leading and trailing dots are trimmed
// so sentence punctuation and dotted abbreviations ("B.S.") normalize the
// same way on both the alias and the text side.
func Tokenize(text string) []string {
	var tokens []string
	var b strings.Builder

	flush := func() {
		if b.Len() == 0 {
			return
		}
		tok := strings.Trim(b.String(), ".")
		if tok != "" {
			tokens = append(tokens, tok)
		}
		b.Reset()
	}

	for _, r := range strings.ToLower(text) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '+', r == '#', r == '.':
			b.WriteRune(r)
		default:
			flush()
		}
	}
	flush()

	return tokens
}

// GramSet collects every token n-gram up to maxN into a membership set.
// Grams are space-joined token windows, the same key form alias indexes use.
func GramSet(tokens []string, maxN int) map[string]struct{} {
	set := make(map[string]struct{})
	for n := 1; n <= maxN; n++ {
		for i := 0; i+n <= len(tokens); i++ {
			set[strings.Join(tokens[i:i+n], " ")] = struct{}{}
		}
	}
	return set
}

// gramKey normalizes an alias or keyword phrase into its index key.
// Phrases that tokenize to nothing return the empty string.
func gramKey(phrase string) string {
	toks := Tokenize(phrase)
	if len(toks) == 0 {
		return ""
	}
	return strings.Join(toks, " ")
}
