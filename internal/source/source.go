// Package source defines the Source interface and the line readers behind it.
package source

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"iter"
	"strings"

	"github.com/Geun-Oh/urlrank/internal/entry"
)

// ErrInputNotFound is returned when an input path does not resolve.
var ErrInputNotFound = errors.New("input not found")

// Source produces the raw lines of one or more inputs.
type Source interface {
	// Lines returns a lazy, forward-only sequence of lines. Iteration stops
	// after the first non-nil error, which is always the last element.
	// A cancelled ctx ends the sequence with ctx.Err().
	Lines(ctx context.Context) iter.Seq2[entry.Line, error]

	// Name returns a human-readable identifier for this source.
	Name() string
}

const (
	initialBufSize = 64 * 1024
	maxLineSize    = 1024 * 1024
)

// scan yields every line of r numbered from first+1. It returns false once the
// consumer has stopped or an error has been yielded.
func scan(ctx context.Context, r io.Reader, name string, first int, yield func(entry.Line, error) bool) bool {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, initialBufSize), maxLineSize)

	n := first
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			yield(entry.Line{}, err)
			return false
		}

		n++
		l := entry.Line{
			Source: name,
			Number: n,
			Text:   strings.TrimSuffix(scanner.Text(), "\r"),
		}
		if !yield(l, nil) {
			return false
		}
	}

	if err := scanner.Err(); err != nil {
		yield(entry.Line{}, fmt.Errorf("read %s: %w", name, err))
		return false
	}
	return true
}

// openError classifies a failure to open path.
func openError(path string, err error) error {
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: %s: %w", ErrInputNotFound, path, err)
	}
	return fmt.Errorf("open file %s: %w", path, err)
}

// Options controls how Open builds sources from input paths.
type Options struct {
	// SegmentLines is the line count above which a file is read through
	// temporary segments. Zero disables segmenting.
	SegmentLines int
	// TempDir holds segment files. Empty means os.TempDir().
	TempDir string
	// OnSegment, if set, is called after each segment has been consumed.
	OnSegment func(name string, done, total int)
}

// Open returns a single source reading paths in order. The path "-" reads
// standard input.
func Open(paths []string, opts Options) Source {
	sources := make([]Source, 0, len(paths))
	for _, p := range paths {
		if p == "-" {
			sources = append(sources, NewStdinSource())
			continue
		}
		seg := NewSegmentedSource(p, opts.SegmentLines, opts.TempDir)
		seg.OnSegment = opts.OnSegment
		sources = append(sources, seg)
	}
	if len(sources) == 1 {
		return sources[0]
	}
	return Concat(sources...)
}
