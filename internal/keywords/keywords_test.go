package keywords

import (
	"reflect"
	"strings"
	"testing"

	"github.com/spigell/cv-analyzer/internal/document"
	"github.com/spigell/cv-analyzer/internal/nlp"
)

// fakeModel tags every word as a noun and uses a fixed lemma table.
type fakeModel struct {
	lemmas map[string]string
	stops  map[string]bool
	calls  int
}

func (f *fakeModel) Name() string { return "fake" }

func (f *fakeModel) Annotate(text string) document.Document {
	f.calls++
	doc := document.Document{Text: text}
	for _, w := range strings.Fields(text) {
		lemma := w
		if l, ok := f.lemmas[w]; ok {
			lemma = l
		}
		doc.Tokens = append(doc.Tokens, document.Token{
			Text:   w,
			Lemma:  lemma,
			POS:    document.Noun,
			IsStop: f.stops[w],
		})
	}
	return doc
}

func TestIsKeyword(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		tok    document.Token
		expect bool
	}{
		{name: "noun", tok: document.Token{Text: "python", POS: document.Noun}, expect: true},
		{name: "proper noun", tok: document.Token{Text: "Docker", POS: document.ProperNoun}, expect: true},
		{name: "verb", tok: document.Token{Text: "buscamos", POS: document.Verb}, expect: false},
		{name: "stop word", tok: document.Token{Text: "vez", POS: document.Noun, IsStop: true}, expect: false},
		{name: "two runes", tok: document.Token{Text: "go", POS: document.Noun}, expect: false},
		{name: "three runes with accent", tok: document.Token{Text: "día", POS: document.Noun}, expect: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := IsKeyword(tt.tok); got != tt.expect {
				t.Fatalf("expected %v, got %v", tt.expect, got)
			}
		})
	}
}

func TestExtractorUsesInjectedModel(t *testing.T) {
	t.Parallel()

	model := &fakeModel{
		lemmas: map[string]string{"Bases": "Base", "datos": "dato"},
		stops:  map[string]bool{"con": true},
	}
	ex := NewExtractor(model)

	set, doc := ex.Keywords("Bases con datos go")
	if model.calls != 1 {
		t.Fatalf("expected a single annotation, got %d", model.calls)
	}
	if doc.Len() != 4 {
		t.Fatalf("expected 4 tokens, got %d", doc.Len())
	}
	if got := set.Sorted(); !reflect.DeepEqual(got, []string{"base", "dato"}) {
		t.Fatalf("unexpected keywords: %v", got)
	}
}

func TestKeywordsSpanishExample(t *testing.T) {
	t.Parallel()

	model, err := nlp.Load(nlp.DefaultModel)
	if err != nil {
		t.Fatalf("load model: %v", err)
	}

	set, _ := NewExtractor(model).Keywords(strings.ToLower("Buscamos un desarrollador con experiencia en SQL y Python"))

	for _, want := range []string{"desarrollador", "experiencia", "sql", "python"} {
		if !set.Has(want) {
			t.Fatalf("expected %q in %v", want, set.Sorted())
		}
	}
	for _, unwanted := range []string{"un", "con", "en", "y", "buscar", "buscamos"} {
		if set.Has(unwanted) {
			t.Fatalf("did not expect %q in %v", unwanted, set.Sorted())
		}
	}
}

func TestSetOperations(t *testing.T) {
	t.Parallel()

	job := NewSet("python", "sql", "docker")
	resume := NewSet("python", "java")

	if got := job.Intersect(resume).Sorted(); !reflect.DeepEqual(got, []string{"python"}) {
		t.Fatalf("unexpected intersection: %v", got)
	}
	if got := job.Difference(resume).Sorted(); !reflect.DeepEqual(got, []string{"docker", "sql"}) {
		t.Fatalf("unexpected difference: %v", got)
	}
	if got := NewSet().Sorted(); len(got) != 0 {
		t.Fatalf("expected empty set, got %v", got)
	}
}
