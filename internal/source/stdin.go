package source

import (
	"context"
	"io"
	"iter"
	"os"

	"github.com/Geun-Oh/urlrank/internal/entry"
)

// StdinSource reads lines from os.Stdin (pipe mode).
type StdinSource struct {
	r io.Reader
}

// NewStdinSource creates a source that reads from stdin.
func NewStdinSource() *StdinSource {
	return &StdinSource{r: os.Stdin}
}

// NewReaderSource creates a stdin-style source over an arbitrary reader.
func NewReaderSource(r io.Reader) *StdinSource {
	return &StdinSource{r: r}
}

// Name returns the source identifier.
func (s *StdinSource) Name() string {
	return "stdin"
}

// Lines yields the lines read from stdin. Stdin is never segmented.
func (s *StdinSource) Lines(ctx context.Context) iter.Seq2[entry.Line, error] {
	return func(yield func(entry.Line, error) bool) {
		scan(ctx, s.r, s.Name(), 0, yield)
	}
}
