package keywords

import (
	"reflect"
	"strings"
	"testing"

	"github.com/spigell/cv-analyzer/internal/document"
	"github.com/spigell/cv-analyzer/internal/nlp"
)

func TestDisplayWordsFirstOccurrence(t *testing.T) {
	t.Parallel()

	tokens := []document.Token{
		{Text: "Desarrolladores", Lemma: "desarrollador"},
		{Text: "desarrollador", Lemma: "desarrollador"},
		{Text: "Bases", Lemma: "base"},
		{Text: "BASE", Lemma: "Base"},
	}

	got := DisplayWords(NewSet("desarrollador", "base", "ausente"), tokens)
	want := []string{"bases", "desarrolladores"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestDisplayWordsDeduplicates(t *testing.T) {
	t.Parallel()

	// Two lemmas whose first surface forms coincide after lowercasing.
	tokens := []document.Token{
		{Text: "Datos", Lemma: "dato"},
		{Text: "datos", Lemma: "datos"},
	}

	got := DisplayWords(NewSet("dato", "datos"), tokens)
	if !reflect.DeepEqual(got, []string{"datos"}) {
		t.Fatalf("expected a single display word, got %v", got)
	}
}

func TestComparePartition(t *testing.T) {
	t.Parallel()

	tokens := []document.Token{
		{Text: "python", Lemma: "python"},
		{Text: "sql", Lemma: "sql"},
		{Text: "docker", Lemma: "docker"},
	}
	job := NewSet("python", "sql", "docker")
	resume := NewSet("python", "java")

	found, missing := Compare(job, resume, tokens)
	if !reflect.DeepEqual(found, []string{"python"}) {
		t.Fatalf("unexpected found: %v", found)
	}
	if !reflect.DeepEqual(missing, []string{"docker", "sql"}) {
		t.Fatalf("unexpected missing: %v", missing)
	}

	found, missing = Compare(NewSet(), resume, nil)
	if len(found) != 0 || len(missing) != 0 {
		t.Fatalf("expected empty results for empty job set, got %v / %v", found, missing)
	}
}

func TestCompareEndToEnd(t *testing.T) {
	t.Parallel()

	model, err := nlp.Load(nlp.DefaultModel)
	if err != nil {
		t.Fatalf("load model: %v", err)
	}
	ex := NewExtractor(model)

	resumeSet, _ := ex.Keywords(strings.ToLower("Tengo experiencia en Python y bases de datos SQL"))
	jobSet, jobDoc := ex.Keywords(strings.ToLower("Buscamos desarrollador con experiencia en Python, SQL y Docker"))

	found, missing := Compare(jobSet, resumeSet, jobDoc.Tokens)

	if want := []string{"experiencia", "python", "sql"}; !reflect.DeepEqual(found, want) {
		t.Fatalf("expected found %v, got %v", want, found)
	}
	if want := []string{"desarrollador", "docker"}; !reflect.DeepEqual(missing, want) {
		t.Fatalf("expected missing %v, got %v", want, missing)
	}

	foundLemmas := jobSet.Intersect(resumeSet)
	missingLemmas := jobSet.Difference(resumeSet)
	for l := range foundLemmas {
		if missingLemmas.Has(l) {
			t.Fatalf("lemma %q is both found and missing", l)
		}
	}
	if len(foundLemmas)+len(missingLemmas) != len(jobSet) {
		t.Fatalf("found and missing do not cover the job keywords")
	}
}
