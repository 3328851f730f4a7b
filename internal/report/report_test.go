package report

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/spigell/cv-analyzer/internal/analyzer"
)

func sampleReport() Report {
	return Report{
		Resume:   "cv.pdf",
		Job:      "hh:7",
		JobTitle: "Desarrollador Python",
		Result: &analyzer.MatchResult{
			RequestID:      "req-1",
			Score:          55.123,
			Verdict:        analyzer.VerdictMedium,
			Found:          []string{"experiencia", "python", "sql"},
			Missing:        []string{"desarrollador", "docker"},
			JobKeywords:    5,
			ResumeKeywords: 4,
		},
	}
}

func TestRenderText(t *testing.T) {
	t.Parallel()

	r, err := NewRenderer(FormatText, true)
	if err != nil {
		t.Fatalf("renderer: %v", err)
	}

	var buf bytes.Buffer
	if err := r.Render(&buf, sampleReport()); err != nil {
		t.Fatalf("render: %v", err)
	}

	out := buf.String()
	for _, want := range []string{
		"Job:    Desarrollador Python (hh:7)",
		"ATS compatibility score: 55.12%",
		"Medium match.",
		"Keywords found (3)\nexperiencia, python, sql",
		"Keywords missing (2)\nConsider including some of these terms in your resume:\ndesarrollador, docker",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
	if strings.Contains(out, "\x1b[") {
		t.Fatalf("expected no escape codes when colors are disabled:\n%s", out)
	}
}

func TestRenderTextEmptySets(t *testing.T) {
	t.Parallel()

	rep := sampleReport()
	rep.JobTitle = ""
	rep.Result.Found = nil
	rep.Result.Missing = nil
	rep.Result.Verdict = analyzer.VerdictLow

	r, _ := NewRenderer("", true)

	var buf bytes.Buffer
	if err := r.Render(&buf, rep); err != nil {
		t.Fatalf("render: %v", err)
	}

	out := buf.String()
	for _, want := range []string{
		"Job:    hh:7\n",
		"No clear matches detected.",
		"Your resume covers every keyword of the job description.",
		"Low match.",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
}

func TestRenderJSON(t *testing.T) {
	t.Parallel()

	r, err := NewRenderer(FormatJSON, false)
	if err != nil {
		t.Fatalf("renderer: %v", err)
	}

	var buf bytes.Buffer
	if err := r.Render(&buf, sampleReport()); err != nil {
		t.Fatalf("render: %v", err)
	}

	var decoded struct {
		Resume string `json:"resume"`
		Result struct {
			Score   float64  `json:"score"`
			Verdict string   `json:"verdict"`
			Missing []string `json:"missing"`
		} `json:"result"`
	}
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("decode: %v", err)
	}

	if decoded.Resume != "cv.pdf" || decoded.Result.Verdict != "medium" || len(decoded.Result.Missing) != 2 {
		t.Fatalf("unexpected report %+v", decoded)
	}
}

func TestNewRendererUnknownFormat(t *testing.T) {
	t.Parallel()

	if _, err := NewRenderer("yaml", false); err == nil {
		t.Fatal("expected error for unknown format")
	}
}

func TestVerdictMessage(t *testing.T) {
	t.Parallel()

	seen := map[string]bool{}
	for _, v := range []analyzer.Verdict{analyzer.VerdictHigh, analyzer.VerdictMedium, analyzer.VerdictLow} {
		seen[VerdictMessage(v)] = true
	}
	if len(seen) != 3 {
		t.Fatalf("expected a distinct message per verdict")
	}
}
