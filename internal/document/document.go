package document

// POS is a coarse part-of-speech tag from the universal tag set.
type POS string

const (
	Noun       POS = "NOUN"
	ProperNoun POS = "PROPN"
	Verb       POS = "VERB"
	Aux        POS = "AUX"
	Adjective  POS = "ADJ"
	Adverb     POS = "ADV"
	Adposition POS = "ADP"
	Determiner POS = "DET"
	Pronoun    POS = "PRON"
	CConj      POS = "CCONJ"
	SConj      POS = "SCONJ"
	Number     POS = "NUM"
	Punct      POS = "PUNCT"
	Symbol     POS = "SYM"
	Other      POS = "X"
)

// IsContentNoun reports whether the tag is a common or proper noun.
func (p POS) IsContentNoun() bool {
	return p == Noun || p == ProperNoun
}

// Token is a single annotated word of a document.
type Token struct {
	Text   string `json:"text"`
	Lemma  string `json:"lemma"`
	POS    POS    `json:"pos"`
	IsStop bool   `json:"is_stop"`
}

// Document holds the raw text and its annotated tokens.
type Document struct {
	Text   string  `json:"text"`
	Tokens []Token `json:"tokens,omitempty"`
}

// Len returns the number of tokens.
func (d Document) Len() int {
	return len(d.Tokens)
}
