// Package analyzer runs the resume to job description matching pipeline.
package analyzer

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spigell/cv-analyzer/internal/extractor"
	"github.com/spigell/cv-analyzer/internal/keywords"
	"github.com/spigell/cv-analyzer/internal/logger"
	"github.com/spigell/cv-analyzer/internal/nlp"
	"github.com/spigell/cv-analyzer/internal/similarity"
)

const defaultMaxLogLength = 200

var (
	// ErrEmptyJobDescription is returned when the job description has no text.
	ErrEmptyJobDescription = errors.New("job description is empty")
	// ErrEmptyResume is returned when no resume data was supplied.
	ErrEmptyResume = errors.New("resume is empty")
)

// TextExtractor turns a resume file into plain text.
type TextExtractor interface {
	ExtractByType(mime string, data []byte) (string, error)
}

// Resume is an uploaded resume file.
type Resume struct {
	Name     string
	MimeType string
	Data     []byte
}

// Config tunes the analyzer.
type Config struct {
	Thresholds   Thresholds
	MaxLogLength int
}

// Analyzer wires the extractor, the scorer and the keyword stages together.
// It keeps no state between calls.
type Analyzer struct {
	extractor  TextExtractor
	keywords   *keywords.Extractor
	modelName  string
	thresholds Thresholds
	maxLogLen  int
	logger     *zap.Logger
	newID      func() string
}

// New creates an analyzer. The model is shared read-only across calls.
// Zero thresholds, which Validate rejects, mean DefaultThresholds.
func New(ex TextExtractor, model nlp.Model, cfg Config, log *zap.Logger) *Analyzer {
	if cfg.MaxLogLength <= 0 {
		cfg.MaxLogLength = defaultMaxLogLength
	}
	if cfg.Thresholds == (Thresholds{}) {
		cfg.Thresholds = DefaultThresholds
	}
	if log == nil {
		log = zap.NewNop()
	}

	return &Analyzer{
		extractor:  ex,
		keywords:   keywords.NewExtractor(model),
		modelName:  model.Name(),
		thresholds: cfg.Thresholds,
		maxLogLen:  cfg.MaxLogLength,
		logger:     log,
		newID:      uuid.NewString,
	}
}

// Analyze extracts the resume text and matches it against the job description.
func (a *Analyzer) Analyze(resume Resume, jobText string) (*MatchResult, error) {
	if strings.TrimSpace(jobText) == "" {
		return nil, ErrEmptyJobDescription
	}
	if len(resume.Data) == 0 {
		return nil, ErrEmptyResume
	}

	mime := resume.MimeType
	if mime == "" {
		mime = extractor.DetectType(resume.Name, resume.Data)
	}

	a.logger.Debug("extracting resume text",
		zap.String(logger.FieldSource, resume.Name),
		zap.String("mime", mime),
		zap.Int("bytes", len(resume.Data)),
	)

	text, err := a.extractor.ExtractByType(mime, resume.Data)
	if err != nil {
		return nil, fmt.Errorf("extract resume text: %w", err)
	}

	return a.AnalyzeText(text, jobText)
}

// AnalyzeText matches an already extracted resume text against the job description.
func (a *Analyzer) AnalyzeText(resumeText, jobText string) (*MatchResult, error) {
	if strings.TrimSpace(jobText) == "" {
		return nil, ErrEmptyJobDescription
	}
	if strings.TrimSpace(resumeText) == "" {
		return nil, ErrEmptyResume
	}

	id := a.newID()
	log := logger.ForRequest(a.logger, id, a.modelName)

	resumeText = strings.ToLower(resumeText)
	jobText = strings.ToLower(jobText)

	log.Debug("texts normalized",
		zap.Int("resume_length", utf8.RuneCountInString(resumeText)),
		zap.String("resume_preview", logger.TruncateForLog(resumeText, a.maxLogLen)),
		zap.Int("job_length", utf8.RuneCountInString(jobText)),
		zap.String("job_preview", logger.TruncateForLog(jobText, a.maxLogLen)),
	)

	score := similarity.Score(resumeText, jobText)

	resumeKeywords, _ := a.keywords.Keywords(resumeText)
	jobKeywords, jobDoc := a.keywords.Keywords(jobText)

	found, missing := keywords.Compare(jobKeywords, resumeKeywords, jobDoc.Tokens)

	result := &MatchResult{
		RequestID:      id,
		Score:          score,
		Verdict:        a.thresholds.Verdict(score),
		Found:          found,
		Missing:        missing,
		JobKeywords:    len(jobKeywords),
		ResumeKeywords: len(resumeKeywords),
	}

	log.Info("analysis finished",
		zap.Float64("score", score),
		zap.String("verdict", string(result.Verdict)),
		zap.Int("job_keywords", result.JobKeywords),
		zap.Int("resume_keywords", result.ResumeKeywords),
		zap.Int("found", len(found)),
		zap.Int("missing", len(missing)),
	)

	return result, nil
}
