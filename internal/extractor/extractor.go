package extractor

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

const (
	BackendPDF  = "pdf"
	BackendFitz = "fitz"

	MimePDF  = "application/pdf"
	MimeDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	MimeText = "text/plain"
)

var (
	// ErrUnreadable is returned when a document cannot be parsed at all.
	ErrUnreadable = errors.New("unreadable document")
	// ErrUnreadablePDF is returned when a PDF stream is corrupt or unsupported.
	ErrUnreadablePDF = fmt.Errorf("%w: pdf", ErrUnreadable)
	// ErrUnreadableDOCX is returned when a DOCX archive cannot be opened.
	ErrUnreadableDOCX = fmt.Errorf("%w: docx", ErrUnreadable)
	// ErrEmptyDocument is returned when a document was parsed but no text was recovered.
	ErrEmptyDocument = errors.New("empty document")
	// ErrUnsupportedType is returned for documents that are neither PDF, DOCX nor plain text.
	ErrUnsupportedType = errors.New("unsupported file type")
)

// pagesFunc returns the text of every page in document order.
// Pages without a text layer are returned as empty strings.
type pagesFunc func(data []byte) ([]string, error)

var backends = map[string]pagesFunc{
	BackendPDF:  ledongthucPages,
	BackendFitz: fitzPages,
}

// Extractor turns resume files into plain text.
type Extractor struct {
	backend string
	pages   pagesFunc
	logger  *zap.Logger
}

// New creates an extractor that reads PDFs with the named backend.
// An empty backend selects the pure Go one.
func New(backend string, logger *zap.Logger) (*Extractor, error) {
	backend = strings.ToLower(strings.TrimSpace(backend))
	if backend == "" {
		backend = BackendPDF
	}

	pages, ok := backends[backend]
	if !ok {
		return nil, fmt.Errorf("unknown pdf backend %q (use %q or %q)", backend, BackendPDF, BackendFitz)
	}

	if logger == nil {
		logger = zap.NewNop()
	}

	return &Extractor{
		backend: backend,
		pages:   pages,
		logger:  logger.With(zap.String("pdf_backend", backend)),
	}, nil
}

// Backend returns the name of the PDF backend in use.
func (e *Extractor) Backend() string {
	return e.backend
}

// ExtractText reads a PDF and returns the trimmed text of all pages joined by spaces.
// It fails with ErrUnreadablePDF when the stream cannot be parsed and with
// ErrEmptyDocument when no page carries text.
func (e *Extractor) ExtractText(data []byte) (string, error) {
	pages, err := e.pages(data)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	withText := 0
	for _, page := range pages {
		if strings.TrimSpace(page) == "" {
			continue
		}
		withText++
		sb.WriteString(page)
		sb.WriteString(" ")
	}

	e.logger.Debug("pdf pages extracted",
		zap.Int("pages", len(pages)),
		zap.Int("pages_with_text", withText),
	)

	text := strings.TrimSpace(sb.String())
	if text == "" {
		return "", fmt.Errorf("%w: no text found in %d page(s), the pdf may be a scanned image", ErrEmptyDocument, len(pages))
	}

	return text, nil
}

// ExtractByType dispatches on the mime type. PDF goes through ExtractText.
func (e *Extractor) ExtractByType(mime string, data []byte) (string, error) {
	var (
		text string
		err  error
	)

	switch mime {
	case MimePDF:
		return e.ExtractText(data)
	case MimeDOCX:
		text, err = docxText(data)
	case MimeText:
		text = string(data)
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedType, mime)
	}
	if err != nil {
		return "", err
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return "", fmt.Errorf("%w: %s has no text", ErrEmptyDocument, mime)
	}

	return text, nil
}

// DetectType guesses the mime type from the file name, then from the content.
func DetectType(name string, data []byte) string {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".pdf":
		return MimePDF
	case ".docx":
		return MimeDOCX
	case ".txt", ".text", ".md":
		return MimeText
	}

	switch {
	case bytes.HasPrefix(data, []byte("%PDF-")):
		return MimePDF
	case bytes.HasPrefix(data, []byte("PK\x03\x04")):
		return MimeDOCX
	}

	if strings.HasPrefix(http.DetectContentType(data), MimeText) {
		return MimeText
	}

	return "application/octet-stream"
}
