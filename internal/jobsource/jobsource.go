// Package jobsource resolves a job description reference into text.
//
// A reference is one of:
//
//	hh:<id>               vacancy from the hh.ru API
//	https://hh.ru/vacancy/<id>
//	http(s)://...         any web page, markup stripped
//	file:<path> or @path  local text file
//	-                     standard input
//	anything else         inline job description text
package jobsource

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/spigell/cv-analyzer/internal/headhunter"
)

type Kind string

const (
	KindText       Kind = "text"
	KindFile       Kind = "file"
	KindStdin      Kind = "stdin"
	KindURL        Kind = "url"
	KindHeadHunter Kind = "hh"

	hhPrefix   = "hh:"
	filePrefix = "file:"
)

var (
	ErrEmptyReference = errors.New("empty job reference")
	ErrTooLarge       = errors.New("job description is too large")
	ErrNotHTML        = errors.New("non-html content")
)

type Ref struct {
	Kind  Kind
	Value string
}

func (r Ref) String() string {
	switch r.Kind {
	case KindText:
		return "inline text"
	case KindStdin:
		return "stdin"
	default:
		return fmt.Sprintf("%s:%s", r.Kind, r.Value)
	}
}

// ParseRef classifies a reference. Bare paths are recognized only when
// the file exists, otherwise the value is taken as inline text.
func ParseRef(s string) Ref {
	trimmed := strings.TrimSpace(s)

	switch {
	case trimmed == "-":
		return Ref{Kind: KindStdin}
	case strings.HasPrefix(trimmed, hhPrefix):
		return Ref{Kind: KindHeadHunter, Value: strings.TrimSpace(strings.TrimPrefix(trimmed, hhPrefix))}
	case strings.HasPrefix(trimmed, "http://"), strings.HasPrefix(trimmed, "https://"):
		if id, ok := headhunter.VacancyIDFromURL(trimmed); ok {
			return Ref{Kind: KindHeadHunter, Value: id}
		}
		return Ref{Kind: KindURL, Value: trimmed}
	case strings.HasPrefix(trimmed, filePrefix):
		return Ref{Kind: KindFile, Value: strings.TrimPrefix(trimmed, filePrefix)}
	case strings.HasPrefix(trimmed, "@"):
		return Ref{Kind: KindFile, Value: strings.TrimPrefix(trimmed, "@")}
	}

	if !strings.ContainsAny(trimmed, "\n") && trimmed != "" {
		if info, err := os.Stat(trimmed); err == nil && info.Mode().IsRegular() {
			return Ref{Kind: KindFile, Value: trimmed}
		}
	}

	return Ref{Kind: KindText, Value: s}
}

// Job is a resolved job description.
type Job struct {
	Source string `json:"source"`
	Title  string `json:"title,omitempty"`
	Text   string `json:"-"`
}

// VacancyGetter is satisfied by *headhunter.Client.
type VacancyGetter interface {
	GetVacancy(id string) (*headhunter.Vacancy, error)
}

type Loader struct {
	fetcher *Fetcher
	hh      VacancyGetter
	stdin   io.Reader
	maxSize int64
	logger  *zap.Logger
}

func NewLoader(fetcher *Fetcher, hh VacancyGetter, maxSize int64, logger *zap.Logger) *Loader {
	return &Loader{
		fetcher: fetcher,
		hh:      hh,
		stdin:   os.Stdin,
		maxSize: maxSize,
		logger:  logger,
	}
}

// WithStdin replaces the reader used for the "-" reference.
func (l *Loader) WithStdin(r io.Reader) *Loader {
	l.stdin = r
	return l
}

func (l *Loader) Load(ctx context.Context, ref Ref) (*Job, error) {
	l.logger.Debug("loading job description", zap.String("kind", string(ref.Kind)), zap.String("source", ref.String()))

	switch ref.Kind {
	case KindText:
		if strings.TrimSpace(ref.Value) == "" {
			return nil, ErrEmptyReference
		}
		return &Job{Source: ref.String(), Text: ref.Value}, nil

	case KindFile:
		text, err := l.readFile(ref.Value)
		if err != nil {
			return nil, fmt.Errorf("read job file %s: %w", ref.Value, err)
		}
		return &Job{Source: ref.String(), Text: text}, nil

	case KindStdin:
		text, err := l.readAll(l.stdin)
		if err != nil {
			return nil, fmt.Errorf("read job from stdin: %w", err)
		}
		return &Job{Source: ref.String(), Text: text}, nil

	case KindURL:
		if l.fetcher == nil {
			return nil, fmt.Errorf("fetch %s: http source is not configured", ref.Value)
		}
		page, err := l.fetcher.Fetch(ctx, ref.Value)
		if err != nil {
			return nil, fmt.Errorf("fetch %s: %w", ref.Value, err)
		}
		return &Job{Source: ref.String(), Title: page.Title, Text: page.Text}, nil

	case KindHeadHunter:
		if l.hh == nil {
			return nil, fmt.Errorf("get vacancy %s: hh.ru source is not configured", ref.Value)
		}
		vacancy, err := l.hh.GetVacancy(ref.Value)
		if err != nil {
			return nil, err
		}
		text, err := vacancy.Text()
		if err != nil {
			return nil, fmt.Errorf("render vacancy %s: %w", ref.Value, err)
		}
		return &Job{Source: ref.String(), Title: vacancy.Name, Text: text}, nil
	}

	return nil, fmt.Errorf("unknown job reference kind %q", ref.Kind)
}

func (l *Loader) readFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	return l.readAll(f)
}

func (l *Loader) readAll(r io.Reader) (string, error) {
	data, err := io.ReadAll(io.LimitReader(r, l.maxSize+1))
	if err != nil {
		return "", err
	}
	if int64(len(data)) > l.maxSize {
		return "", ErrTooLarge
	}
	return string(data), nil
}
