package nlp

import (
	"unicode"
)

type tokenKind int

const (
	kindWord tokenKind = iota
	kindPunct
	kindSymbol
)

type rawToken struct {
	text string
	kind tokenKind
	// sentenceStart is set for the first word after a sentence boundary.
	sentenceStart bool
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsMark(r) || r == '_'
}

// tokenize splits text into words and single-rune punctuation tokens.
// Dots, hyphens and apostrophes between word runes stay inside the word
// (node.js, full-stack) and trailing plus or hash signs are kept (c++, c#).
func tokenize(text string) []rawToken {
	runes := []rune(text)
	tokens := make([]rawToken, 0, len(runes)/4)

	start := -1
	sentenceStart := true

	flush := func(end int) {
		if start < 0 {
			return
		}
		tokens = append(tokens, rawToken{
			text:          string(runes[start:end]),
			kind:          kindWord,
			sentenceStart: sentenceStart,
		})
		sentenceStart = false
		start = -1
	}

	for i, r := range runes {
		next := rune(0)
		if i+1 < len(runes) {
			next = runes[i+1]
		}

		switch {
		case isWordRune(r):
			if start < 0 {
				start = i
			}
		case start >= 0 && (r == '.' || r == '-' || r == '\'' || r == '’') && isWordRune(next):
			// joiner inside a word
		case start >= 0 && (r == '+' || r == '#') && !isWordRune(next):
			// suffix of a technical term
		case unicode.IsSpace(r):
			flush(i)
		default:
			flush(i)
			kind := kindPunct
			if unicode.IsSymbol(r) {
				kind = kindSymbol
			}
			tokens = append(tokens, rawToken{text: string(r), kind: kind})
			if r == '.' || r == '!' || r == '?' || r == ';' || r == '\n' {
				sentenceStart = true
			}
		}
		if r == '\n' {
			sentenceStart = true
		}
	}
	flush(len(runes))

	return tokens
}
