package source

import (
	"context"
	"fmt"
	"iter"
	"os"

	"github.com/Geun-Oh/urlrank/internal/entry"
)

// FileSource reads lines from a file.
type FileSource struct {
	path   string
	name   string
	offset int // lines preceding this file in the full input
}

// NewFileSource creates a source that reads from a file.
func NewFileSource(path string) *FileSource {
	return &FileSource{
		path: path,
		name: fmt.Sprintf("file:%s", path),
	}
}

// newSegmentFile reads a segment of a larger input, reporting lines under
// the full input's name and numbering.
func newSegmentFile(path, name string, offset int) *FileSource {
	return &FileSource{path: path, name: name, offset: offset}
}

// Name returns the source identifier.
func (s *FileSource) Name() string {
	return s.name
}

// Lines opens the file and yields its lines.
func (s *FileSource) Lines(ctx context.Context) iter.Seq2[entry.Line, error] {
	return func(yield func(entry.Line, error) bool) {
		f, err := os.Open(s.path)
		if err != nil {
			yield(entry.Line{}, openError(s.path, err))
			return
		}
		defer f.Close()

		scan(ctx, f, s.name, s.offset, yield)
	}
}
