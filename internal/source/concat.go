package source

import (
	"context"
	"iter"
	"strings"

	"github.com/Geun-Oh/urlrank/internal/entry"
)

// MultiSource reads several sources one after another.
type MultiSource struct {
	sources []Source
}

// Concat returns a source yielding the lines of each source in order.
func Concat(sources ...Source) *MultiSource {
	return &MultiSource{sources: sources}
}

// Name returns the comma-separated names of the underlying sources.
func (m *MultiSource) Name() string {
	names := make([]string, len(m.sources))
	for i, s := range m.sources {
		names[i] = s.Name()
	}
	return strings.Join(names, ",")
}

// Lines yields the lines of every source, stopping at the first error.
func (m *MultiSource) Lines(ctx context.Context) iter.Seq2[entry.Line, error] {
	return func(yield func(entry.Line, error) bool) {
		for _, s := range m.sources {
			for l, err := range s.Lines(ctx) {
				if !yield(l, err) || err != nil {
					return
				}
			}
		}
	}
}
