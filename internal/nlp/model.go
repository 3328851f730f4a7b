// Package nlp provides linguistic models that annotate text with
// lemmas, part-of-speech tags and stop-word flags.
package nlp

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/spigell/cv-analyzer/internal/document"
)

// DefaultModel is the model used when none is configured.
const DefaultModel = SpanishRulesName

// ErrUnknownModel is returned by Load for names that are not registered.
var ErrUnknownModel = errors.New("unknown linguistic model")

// Model annotates raw text. Implementations are deterministic and safe to
// reuse across requests.
type Model interface {
	Name() string
	Annotate(text string) document.Document
}

var registry = map[string]func() Model{
	SpanishRulesName: func() Model { return NewSpanish() },
}

var aliases = map[string]string{
	"es":              SpanishRulesName,
	"spanish":         SpanishRulesName,
	"es_core_news_md": SpanishRulesName,
}

// Load builds the model registered under name.
func Load(name string) (Model, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" {
		key = DefaultModel
	}
	if target, ok := aliases[key]; ok {
		key = target
	}

	build, ok := registry[key]
	if !ok {
		return nil, fmt.Errorf("%w: %q (available: %s)", ErrUnknownModel, name, strings.Join(Available(), ", "))
	}

	return build(), nil
}

// Available lists registered model names in order.
func Available() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
