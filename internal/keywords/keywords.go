// Package keywords extracts content-noun lemmas from documents and compares
// the keyword sets of a job description and a resume.
package keywords

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/spigell/cv-analyzer/internal/document"
	"github.com/spigell/cv-analyzer/internal/nlp"
)

// minKeywordLength is exclusive: keywords have more runes than this.
const minKeywordLength = 2

// Set is a set of lowercase lemmas.
type Set map[string]struct{}

// NewSet builds a set from the given lemmas.
func NewSet(lemmas ...string) Set {
	s := make(Set, len(lemmas))
	for _, l := range lemmas {
		s[l] = struct{}{}
	}
	return s
}

// Has reports whether lemma is in the set.
func (s Set) Has(lemma string) bool {
	_, ok := s[lemma]
	return ok
}

// Sorted returns the lemmas in lexicographic order.
func (s Set) Sorted() []string {
	out := make([]string, 0, len(s))
	for l := range s {
		out = append(out, l)
	}
	sort.Strings(out)
	return out
}

// Intersect returns the lemmas present in both sets.
func (s Set) Intersect(other Set) Set {
	out := make(Set)
	for l := range s {
		if other.Has(l) {
			out[l] = struct{}{}
		}
	}
	return out
}

// Difference returns the lemmas of s missing from other.
func (s Set) Difference(other Set) Set {
	out := make(Set)
	for l := range s {
		if !other.Has(l) {
			out[l] = struct{}{}
		}
	}
	return out
}

// IsKeyword reports whether the token carries content: a common or proper
// noun that is not a stop word and is longer than two runes.
func IsKeyword(tok document.Token) bool {
	return tok.POS.IsContentNoun() &&
		!tok.IsStop &&
		utf8.RuneCountInString(tok.Text) > minKeywordLength
}

// FromDocument collects the lowercase lemmas of the keyword tokens.
func FromDocument(doc document.Document) Set {
	out := make(Set)
	for _, tok := range doc.Tokens {
		if IsKeyword(tok) {
			out[strings.ToLower(tok.Lemma)] = struct{}{}
		}
	}
	return out
}

// Extractor annotates text with a linguistic model and keeps the keywords.
type Extractor struct {
	model nlp.Model
}

// NewExtractor returns an extractor backed by model.
func NewExtractor(model nlp.Model) *Extractor {
	return &Extractor{model: model}
}

// Keywords annotates text and returns its keyword set together with the
// annotated document, which Compare needs to recover display words.
func (e *Extractor) Keywords(text string) (Set, document.Document) {
	doc := e.model.Annotate(text)
	return FromDocument(doc), doc
}
