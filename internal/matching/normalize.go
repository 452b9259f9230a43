package matching

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Normalize canonicalizes an ingredient name for comparison: lower-cased,
// trimmed, single-spaced, diacritics stripped, plural forms folded to
// singular. It never fails and returns "" for blank input. Both sides of
// every comparison in this package go through Normalize; normalizing one
// side only is the bug class the tests guard hardest against.
func Normalize(name string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, name)
	if err != nil {
		folded = name
	}

	folded = strings.ToLower(strings.TrimSpace(folded))
	if folded == "" {
		return ""
	}

	words := strings.Fields(folded)
	for i, w := range words {
		words[i] = singularize(w)
	}
	return strings.Join(words, " ")
}

// singularize folds common English plural endings. Deliberately crude: the
// goal is that "tomatoes" and "tomato" compare equal under substring
// containment, not linguistic correctness.
func singularize(word string) string {
	switch {
	case len(word) > 3 && strings.HasSuffix(word, "ies"):
		return strings.TrimSuffix(word, "ies") + "y"
	case len(word) > 3 && (strings.HasSuffix(word, "oes") ||
		strings.HasSuffix(word, "ches") ||
		strings.HasSuffix(word, "shes") ||
		strings.HasSuffix(word, "sses") ||
		strings.HasSuffix(word, "xes")):
		return strings.TrimSuffix(word, "es")
	case len(word) > 2 && strings.HasSuffix(word, "s") &&
		!strings.HasSuffix(word, "ss") && !strings.HasSuffix(word, "us"):
		return strings.TrimSuffix(word, "s")
	default:
		return word
	}
}

// wordSet splits text on non-letter runes into a lookup set. Used for
// whole-word checks like cooking-verb detection, where substring matching
// would be too eager ("serve" inside "preserved").
func wordSet(text string) map[string]struct{} {
	words := strings.FieldsFunc(text, func(r rune) bool {
		return !unicode.IsLetter(r)
	})
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}
