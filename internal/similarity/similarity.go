// Package similarity scores lexical overlap between two texts.
package similarity

import (
	"math"
	"strings"
	"unicode"
	"unicode/utf8"
)

// minTermLength is the shortest term the vectorizer keeps.
const minTermLength = 2

// Terms splits text into lowercase terms: maximal runs of letters, digits
// and underscores that are at least two runes long.
func Terms(text string) []string {
	fields := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !(unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_')
	})

	terms := fields[:0]
	for _, f := range fields {
		if utf8.RuneCountInString(f) >= minTermLength {
			terms = append(terms, f)
		}
	}
	return terms
}

// Counts returns the raw term frequencies of text.
func Counts(text string) map[string]int {
	counts := make(map[string]int)
	for _, term := range Terms(text) {
		counts[term]++
	}
	return counts
}

// Cosine returns the cosine of two count vectors over their shared vocabulary.
// A zero vector on either side yields 0.
func Cosine(a, b map[string]int) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}

	var dot, normA, normB float64
	for term, ca := range a {
		normA += float64(ca * ca)
		if cb, ok := b[term]; ok {
			dot += float64(ca * cb)
		}
	}
	for _, cb := range b {
		normB += float64(cb * cb)
	}

	if normA == 0 || normB == 0 {
		return 0
	}

	cos := dot / (math.Sqrt(normA) * math.Sqrt(normB))
	// Rounding can push identical vectors slightly past 1.
	return math.Min(cos, 1)
}

// Score returns the bag-of-words cosine similarity of a and b on a 0-100 scale.
// Texts without any term score 0.
func Score(a, b string) float64 {
	return Cosine(Counts(a), Counts(b)) * 100
}
