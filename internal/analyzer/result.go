package analyzer

import (
	"errors"
	"fmt"

	"github.com/spigell/cv-analyzer/internal/extractor"
)

// Verdict is a coarse reading of the score.
type Verdict string

const (
	VerdictHigh   Verdict = "high"
	VerdictMedium Verdict = "medium"
	VerdictLow    Verdict = "low"
)

// Thresholds are exclusive lower bounds of the high and medium verdicts.
type Thresholds struct {
	High   float64 `mapstructure:"high"`
	Medium float64 `mapstructure:"medium"`
}

// DefaultThresholds match the usual reading of ATS scores.
var DefaultThresholds = Thresholds{High: 70, Medium: 40}

// Verdict classifies a score.
func (t Thresholds) Verdict(score float64) Verdict {
	switch {
	case score > t.High:
		return VerdictHigh
	case score > t.Medium:
		return VerdictMedium
	default:
		return VerdictLow
	}
}

// Validate checks that the thresholds are strictly ordered and within 0-100.
// Equal bounds leave the medium verdict unreachable and are rejected, which
// also rules out the zero value.
func (t Thresholds) Validate() error {
	if t.Medium < 0 || t.High > 100 || t.Medium >= t.High {
		return fmt.Errorf("invalid thresholds: want 0 <= medium (%.2f) < high (%.2f) <= 100", t.Medium, t.High)
	}
	return nil
}

// MatchResult is the outcome of one analysis.
type MatchResult struct {
	RequestID      string   `json:"request_id"`
	Score          float64  `json:"score"`
	Verdict        Verdict  `json:"verdict"`
	Found          []string `json:"found"`
	Missing        []string `json:"missing"`
	JobKeywords    int      `json:"job_keywords"`
	ResumeKeywords int      `json:"resume_keywords"`
}

// UserMessage turns a pipeline error into a short message for the user.
func UserMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, extractor.ErrEmptyDocument):
		return "The resume seems to be empty or a scanned image: no text could be extracted."
	case errors.Is(err, extractor.ErrUnreadable):
		return fmt.Sprintf("Could not read the resume file: %v", err)
	case errors.Is(err, extractor.ErrUnsupportedType):
		return "Unsupported resume format. Use a PDF, DOCX or plain text file."
	case errors.Is(err, ErrEmptyJobDescription), errors.Is(err, ErrEmptyResume):
		return "Please provide both a resume and a job description."
	default:
		return fmt.Sprintf("Analysis failed: %v", err)
	}
}
