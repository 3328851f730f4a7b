package jobsource

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap/zaptest"

	"github.com/spigell/cv-analyzer/internal/headhunter"
)

type fakeHH struct {
	vacancies map[string]*headhunter.Vacancy
	calls     []string
}

func (f *fakeHH) GetVacancy(id string) (*headhunter.Vacancy, error) {
	f.calls = append(f.calls, id)
	v, ok := f.vacancies[id]
	if !ok {
		return nil, fmt.Errorf("get vacancy %s: bad status: 404 Not Found", id)
	}
	return v, nil
}

func TestParseRef(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "job.txt")
	if err := os.WriteFile(path, []byte("Desarrollador"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	tests := []struct {
		name string
		in   string
		want Ref
	}{
		{name: "hh id", in: "hh:93353083", want: Ref{Kind: KindHeadHunter, Value: "93353083"}},
		{name: "hh url", in: "https://hh.ru/vacancy/42?query=go", want: Ref{Kind: KindHeadHunter, Value: "42"}},
		{name: "url", in: " https://example.com/jobs/1 ", want: Ref{Kind: KindURL, Value: "https://example.com/jobs/1"}},
		{name: "file prefix", in: "file:/tmp/x.txt", want: Ref{Kind: KindFile, Value: "/tmp/x.txt"}},
		{name: "at prefix", in: "@job.txt", want: Ref{Kind: KindFile, Value: "job.txt"}},
		{name: "existing path", in: path, want: Ref{Kind: KindFile, Value: path}},
		{name: "stdin", in: "-", want: Ref{Kind: KindStdin}},
		{name: "inline", in: "Buscamos desarrollador", want: Ref{Kind: KindText, Value: "Buscamos desarrollador"}},
		{name: "missing path is text", in: filepath.Join(dir, "nope.txt"), want: Ref{Kind: KindText, Value: filepath.Join(dir, "nope.txt")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseRef(tt.in)
			if got != tt.want {
				t.Fatalf("expected %+v, got %+v", tt.want, got)
			}
		})
	}
}

func TestLoadText(t *testing.T) {
	t.Parallel()

	loader := NewLoader(nil, nil, 1024, zaptest.NewLogger(t))

	job, err := loader.Load(context.Background(), ParseRef("Buscamos desarrollador con experiencia en Python"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if job.Text != "Buscamos desarrollador con experiencia en Python" || job.Source != "inline text" {
		t.Fatalf("unexpected job %+v", job)
	}

	if _, err := loader.Load(context.Background(), Ref{Kind: KindText, Value: "  \n"}); !errors.Is(err, ErrEmptyReference) {
		t.Fatalf("expected ErrEmptyReference, got %v", err)
	}
}

func TestLoadFileAndStdin(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "job.txt")
	if err := os.WriteFile(path, []byte("Se requiere SQL"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	loader := NewLoader(nil, nil, 1024, zaptest.NewLogger(t)).WithStdin(strings.NewReader("desde stdin"))

	job, err := loader.Load(context.Background(), Ref{Kind: KindFile, Value: path})
	if err != nil {
		t.Fatalf("load file: %v", err)
	}
	if job.Text != "Se requiere SQL" {
		t.Fatalf("unexpected text %q", job.Text)
	}

	job, err = loader.Load(context.Background(), Ref{Kind: KindStdin})
	if err != nil {
		t.Fatalf("load stdin: %v", err)
	}
	if job.Text != "desde stdin" {
		t.Fatalf("unexpected text %q", job.Text)
	}

	small := NewLoader(nil, nil, 4, zaptest.NewLogger(t))
	if _, err := small.Load(context.Background(), Ref{Kind: KindFile, Value: path}); !errors.Is(err, ErrTooLarge) {
		t.Fatalf("expected ErrTooLarge, got %v", err)
	}
}

func TestLoadHeadHunter(t *testing.T) {
	t.Parallel()

	hh := &fakeHH{vacancies: map[string]*headhunter.Vacancy{
		"7": {ID: "7", Name: "Analista de datos", Description: "<p>Experiencia en SQL</p>"},
	}}
	loader := NewLoader(nil, hh, 1024, zaptest.NewLogger(t))

	job, err := loader.Load(context.Background(), ParseRef("hh:7"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if job.Title != "Analista de datos" || job.Text != "Analista de datos\n\nExperiencia en SQL" {
		t.Fatalf("unexpected job %+v", job)
	}
	if job.Source != "hh:7" {
		t.Fatalf("unexpected source %q", job.Source)
	}

	if _, err := loader.Load(context.Background(), ParseRef("hh:8")); err == nil {
		t.Fatal("expected error for unknown vacancy")
	}

	noHH := NewLoader(nil, nil, 1024, zaptest.NewLogger(t))
	if _, err := noHH.Load(context.Background(), ParseRef("hh:7")); err == nil {
		t.Fatal("expected error without hh client")
	}
}

func TestLoadURL(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/job":
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			_, _ = w.Write([]byte(`<html><head><title>Ingeniero de datos</title></head><body><p>Buscamos ingeniero con experiencia en Spark.</p></body></html>`))
		case "/plain":
			w.Header().Set("Content-Type", "text/plain")
			_, _ = w.Write([]byte("  Docker   y Kubernetes  "))
		case "/image":
			w.Header().Set("Content-Type", "image/png")
			_, _ = w.Write([]byte{0x89, 'P', 'N', 'G'})
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(srv.Close)

	logger := zaptest.NewLogger(t)
	loader := NewLoader(NewFetcher(5*time.Second, 1<<20, "", logger), nil, 1024, logger)

	job, err := loader.Load(context.Background(), ParseRef(srv.URL+"/job"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if job.Title != "Ingeniero de datos" || job.Text != "Buscamos ingeniero con experiencia en Spark." {
		t.Fatalf("unexpected job %+v", job)
	}

	job, err = loader.Load(context.Background(), ParseRef(srv.URL+"/plain"))
	if err != nil {
		t.Fatalf("load plain: %v", err)
	}
	if job.Text != "Docker y Kubernetes" {
		t.Fatalf("unexpected text %q", job.Text)
	}

	if _, err := loader.Load(context.Background(), ParseRef(srv.URL+"/image")); !errors.Is(err, ErrNotHTML) {
		t.Fatalf("expected ErrNotHTML, got %v", err)
	}

	if _, err := loader.Load(context.Background(), ParseRef(srv.URL+"/missing")); err == nil || !strings.Contains(err.Error(), "http status 404") {
		t.Fatalf("expected status error, got %v", err)
	}
}

func TestFetchSizeCap(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(strings.Repeat("a", 64)))
	}))
	t.Cleanup(srv.Close)

	fetcher := NewFetcher(5*time.Second, 16, "test-agent", zaptest.NewLogger(t))
	if _, err := fetcher.Fetch(context.Background(), srv.URL); !errors.Is(err, ErrTooLarge) {
		t.Fatalf("expected ErrTooLarge, got %v", err)
	}

	if _, err := fetcher.Fetch(context.Background(), "not a url"); err == nil {
		t.Fatal("expected invalid url error")
	}
}
