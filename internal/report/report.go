// Package report renders analysis results for the terminal or as JSON.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/spigell/cv-analyzer/internal/analyzer"
)

const (
	FormatText = "text"
	FormatJSON = "json"
)

// Report is everything shown to the user after an analysis.
type Report struct {
	Resume   string                `json:"resume"`
	Job      string                `json:"job"`
	JobTitle string                `json:"job_title,omitempty"`
	Result   *analyzer.MatchResult `json:"result"`
}

type Renderer struct {
	format  string
	noColor bool
}

// NewRenderer returns a renderer for the given format. Colors are only
// used by the text format.
func NewRenderer(format string, noColor bool) (*Renderer, error) {
	switch format {
	case "", FormatText:
		format = FormatText
	case FormatJSON:
	default:
		return nil, fmt.Errorf("unknown report format %q (want %s or %s)", format, FormatText, FormatJSON)
	}

	return &Renderer{format: format, noColor: noColor}, nil
}

func (r *Renderer) Render(w io.Writer, rep Report) error {
	if r.format == FormatJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(rep)
	}

	return r.renderText(w, rep)
}

func (r *Renderer) paint(attrs ...color.Attribute) *color.Color {
	c := color.New(attrs...)
	if r.noColor {
		c.DisableColor()
	}
	return c
}

func (r *Renderer) renderText(w io.Writer, rep Report) error {
	res := rep.Result
	bold := r.paint(color.Bold)
	header := r.paint(color.FgCyan, color.Bold)

	var b strings.Builder

	job := rep.Job
	if rep.JobTitle != "" {
		job = fmt.Sprintf("%s (%s)", rep.JobTitle, rep.Job)
	}
	fmt.Fprintf(&b, "Resume: %s\n", rep.Resume)
	fmt.Fprintf(&b, "Job:    %s\n\n", job)

	fmt.Fprintf(&b, "%s %s\n", bold.Sprint("ATS compatibility score:"), r.verdictColor(res.Verdict).Sprintf("%.2f%%", res.Score))
	fmt.Fprintf(&b, "%s\n\n", r.verdictColor(res.Verdict).Sprint(VerdictMessage(res.Verdict)))

	fmt.Fprintf(&b, "%s\n", header.Sprintf("Keywords found (%d)", len(res.Found)))
	if len(res.Found) > 0 {
		fmt.Fprintf(&b, "%s\n\n", strings.Join(res.Found, ", "))
	} else {
		fmt.Fprintf(&b, "No clear matches detected.\n\n")
	}

	fmt.Fprintf(&b, "%s\n", header.Sprintf("Keywords missing (%d)", len(res.Missing)))
	if len(res.Missing) > 0 {
		fmt.Fprintf(&b, "Consider including some of these terms in your resume:\n%s\n", strings.Join(res.Missing, ", "))
	} else {
		fmt.Fprintf(&b, "%s\n", r.paint(color.FgGreen).Sprint("Your resume covers every keyword of the job description."))
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func (r *Renderer) verdictColor(v analyzer.Verdict) *color.Color {
	switch v {
	case analyzer.VerdictHigh:
		return r.paint(color.FgGreen, color.Bold)
	case analyzer.VerdictMedium:
		return r.paint(color.FgYellow, color.Bold)
	default:
		return r.paint(color.FgRed, color.Bold)
	}
}

// VerdictMessage is the advice shown under the score.
func VerdictMessage(v analyzer.Verdict) string {
	switch v {
	case analyzer.VerdictHigh:
		return "High match. Your profile fits this job well."
	case analyzer.VerdictMedium:
		return "Medium match. Consider optimizing your keywords."
	default:
		return "Low match. Automated screening systems (ATS) could discard your resume."
	}
}
