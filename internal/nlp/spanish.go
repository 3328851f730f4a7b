package nlp

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"

	"github.com/spigell/cv-analyzer/internal/document"
)

// SpanishRulesName is the registry name of the lexicon and suffix-rule Spanish model.
const SpanishRulesName = "es_core_rules"

type spanishModel struct {
	verbs map[string]string
}

// NewSpanish returns the rule-based Spanish model.
func NewSpanish() Model {
	return &spanishModel{verbs: buildVerbForms()}
}

func (m *spanishModel) Name() string { return SpanishRulesName }

func (m *spanishModel) Annotate(text string) document.Document {
	text = norm.NFC.String(text)
	// Casers keep state, so one per call.
	lower := cases.Lower(language.Spanish)

	raw := tokenize(text)
	tokens := make([]document.Token, 0, len(raw))
	for _, rt := range raw {
		lw := lower.String(rt.text)
		pos := m.tag(rt, lw)
		tokens = append(tokens, document.Token{
			Text:   rt.text,
			Lemma:  m.lemmatize(lw, pos),
			POS:    pos,
			IsStop: isStopWord(lw),
		})
	}

	return document.Document{Text: text, Tokens: tokens}
}

func (m *spanishModel) tag(rt rawToken, lw string) document.POS {
	switch rt.kind {
	case kindPunct:
		return document.Punct
	case kindSymbol:
		return document.Symbol
	}

	if isNumber(lw) {
		return document.Number
	}
	if pos, ok := closedClass[lw]; ok {
		return pos
	}
	if _, ok := auxForms[lw]; ok {
		return document.Aux
	}
	if _, ok := nounLexicon[lw]; ok {
		return properOr(rt, document.Noun)
	}
	if _, ok := m.verbs[lw]; ok {
		return document.Verb
	}
	if _, ok := adjectiveLexicon[lw]; ok {
		return document.Adjective
	}
	if _, ok := adverbLexicon[lw]; ok {
		return document.Adverb
	}
	if strings.ContainsAny(lw, "+#.") {
		return document.ProperNoun
	}

	n := utf8.RuneCountInString(lw)
	switch {
	case n > 6 && strings.HasSuffix(lw, "mente"):
		return document.Adverb
	case n > 5 && hasAnySuffix(lw, "ando", "iendo", "yendo"):
		return document.Verb
	case n > 5 && hasAnySuffix(lw, "amos", "emos", "imos"):
		return document.Verb
	case n > 5 && hasAnySuffix(lw, "ado", "ada", "ados", "adas", "ido", "ida", "idos", "idas"):
		return document.Adjective
	case n > 4 && hasAnySuffix(lw, adjectiveSuffixes...):
		return document.Adjective
	}

	return properOr(rt, document.Noun)
}

// properOr promotes capitalized words that do not open a sentence and
// all-caps acronyms to proper nouns.
func properOr(rt rawToken, fallback document.POS) document.POS {
	first, _ := utf8.DecodeRuneInString(rt.text)
	if !unicode.IsUpper(first) {
		return fallback
	}
	if isAcronym(rt.text) || !rt.sentenceStart {
		return document.ProperNoun
	}
	return fallback
}

func (m *spanishModel) lemmatize(lw string, pos document.POS) string {
	if lemma, ok := lemmaLexicon[lw]; ok {
		return lemma
	}

	switch pos {
	case document.Verb:
		if inf, ok := m.verbs[lw]; ok {
			return inf
		}
		return guessInfinitive(lw)
	case document.Aux:
		if inf, ok := auxForms[lw]; ok {
			return inf
		}
	case document.Noun, document.Adjective:
		return singular(lw)
	}

	return lw
}

// singular undoes regular Spanish plural inflection.
func singular(w string) string {
	if _, ok := invariantWords[w]; ok {
		return w
	}

	runes := []rune(w)
	n := len(runes)
	if n <= 3 || runes[n-1] != 's' {
		return w
	}

	// A stressed vowel before the final s marks a singular: inglés, país.
	if strings.ContainsRune("áéíóú", runes[n-2]) {
		return w
	}

	switch {
	case strings.HasSuffix(w, "ces"):
		return string(runes[:n-3]) + "z"
	case strings.HasSuffix(w, "iones"):
		return string(runes[:n-5]) + "ión"
	case strings.HasSuffix(w, "ones"):
		return string(runes[:n-4]) + "ón"
	case strings.HasSuffix(w, "es") && n > 4 && strings.ContainsRune("lrndy", runes[n-3]):
		return string(runes[:n-2])
	case isVowel(runes[n-2]):
		return string(runes[:n-1])
	}

	return w
}

func guessInfinitive(w string) string {
	runes := []rune(w)
	cut := func(suffix, repl string) string {
		return string(runes[:len(runes)-utf8.RuneCountInString(suffix)]) + repl
	}

	switch {
	case strings.HasSuffix(w, "ando"):
		return cut("ando", "ar")
	case strings.HasSuffix(w, "iendo"):
		return cut("iendo", "er")
	case strings.HasSuffix(w, "amos"):
		return cut("amos", "ar")
	case strings.HasSuffix(w, "emos"):
		return cut("emos", "er")
	case strings.HasSuffix(w, "imos"):
		return cut("imos", "ir")
	}
	return w
}

func isVowel(r rune) bool {
	return strings.ContainsRune("aeiouáéíóú", r)
}

func isNumber(w string) bool {
	digits := 0
	for _, r := range w {
		switch {
		case unicode.IsDigit(r):
			digits++
		case r == '.' || r == ',':
		default:
			return false
		}
	}
	return digits > 0
}

func isAcronym(w string) bool {
	letters := 0
	for _, r := range w {
		if unicode.IsLetter(r) {
			if !unicode.IsUpper(r) {
				return false
			}
			letters++
		}
	}
	return letters >= 2
}

func hasAnySuffix(w string, suffixes ...string) bool {
	for _, s := range suffixes {
		if strings.HasSuffix(w, s) {
			return true
		}
	}
	return false
}

func isStopWord(w string) bool {
	_, ok := stopWords[w]
	return ok
}
