package source

import (
	"bufio"
	"context"
	"fmt"
	"iter"
	"os"
	"path/filepath"

	"github.com/bitfield/script"
	"github.com/google/uuid"

	"github.com/Geun-Oh/urlrank/internal/entry"
)

// SegmentedSource reads a file that may be too large to process in one pass.
// Inputs longer than the threshold are copied, threshold lines at a time,
// into numbered temporary segment files. Each segment is read to the end and
// deleted before the next one is written, so at most one exists at a time.
type SegmentedSource struct {
	path      string
	threshold int
	tempDir   string
	runID     string

	// OnSegment, if set, is called after segment done of total is consumed.
	OnSegment func(name string, done, total int)
}

// NewSegmentedSource creates a source over path. A threshold of zero or less
// disables segmenting.
func NewSegmentedSource(path string, threshold int, tempDir string) *SegmentedSource {
	if tempDir == "" {
		tempDir = os.TempDir()
	}
	return &SegmentedSource{
		path:      path,
		threshold: threshold,
		tempDir:   tempDir,
		runID:     uuid.NewString(),
	}
}

// Name returns the source identifier. Segments report lines under this name.
func (s *SegmentedSource) Name() string {
	return fmt.Sprintf("file:%s", s.path)
}

// SegmentCount returns how many segments an input of the given line count
// is split into.
func SegmentCount(lines, threshold int) int {
	if threshold <= 0 || lines <= threshold {
		return 1
	}
	return (lines + threshold - 1) / threshold
}

// Lines yields the file's lines, going through segments when needed.
func (s *SegmentedSource) Lines(ctx context.Context) iter.Seq2[entry.Line, error] {
	return func(yield func(entry.Line, error) bool) {
		if s.threshold <= 0 {
			s.whole(ctx, yield)
			return
		}

		total, err := script.File(s.path).CountLines()
		if err != nil {
			yield(entry.Line{}, openError(s.path, err))
			return
		}
		if total <= s.threshold {
			s.whole(ctx, yield)
			return
		}

		s.segmented(ctx, SegmentCount(total, s.threshold), yield)
	}
}

func (s *SegmentedSource) whole(ctx context.Context, yield func(entry.Line, error) bool) {
	for l, err := range newSegmentFile(s.path, s.Name(), 0).Lines(ctx) {
		if !yield(l, err) || err != nil {
			return
		}
	}
	if s.OnSegment != nil {
		s.OnSegment(s.Name(), 1, 1)
	}
}

func (s *SegmentedSource) segmented(ctx context.Context, total int, yield func(entry.Line, error) bool) {
	f, err := os.Open(s.path)
	if err != nil {
		yield(entry.Line{}, openError(s.path, err))
		return
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, initialBufSize), maxLineSize)

	offset := 0
	for i := 0; ; i++ {
		if err := ctx.Err(); err != nil {
			yield(entry.Line{}, err)
			return
		}

		path, n, err := s.writeSegment(scanner, i)
		if err != nil {
			yield(entry.Line{}, err)
			return
		}
		if n == 0 {
			break
		}

		if !s.drain(ctx, path, offset, yield) {
			return
		}
		offset += n

		done := i + 1
		if done > total {
			// The file grew after it was counted.
			total = done
		}
		if s.OnSegment != nil {
			s.OnSegment(s.Name(), done, total)
		}
	}

	if err := scanner.Err(); err != nil {
		yield(entry.Line{}, fmt.Errorf("read %s: %w", s.Name(), err))
	}
}

// writeSegment copies up to threshold lines from scanner into segment index.
// A segment that received no lines is removed and reported with n == 0.
func (s *SegmentedSource) writeSegment(scanner *bufio.Scanner, index int) (string, int, error) {
	path := filepath.Join(s.tempDir, fmt.Sprintf("urlrank-%s-%d.seg", s.runID, index))
	f, err := os.Create(path)
	if err != nil {
		return "", 0, fmt.Errorf("create segment %s: %w", path, err)
	}

	n := 0
	w := bufio.NewWriter(f)
	for n < s.threshold && scanner.Scan() {
		if _, err = w.Write(scanner.Bytes()); err == nil {
			err = w.WriteByte('\n')
		}
		if err != nil {
			break
		}
		n++
	}
	if err == nil {
		err = w.Flush()
	}
	if cerr := f.Close(); err == nil {
		err = cerr
	}

	if err != nil || n == 0 {
		_ = os.Remove(path)
	}
	if err != nil {
		return "", 0, fmt.Errorf("write segment %s: %w", path, err)
	}
	return path, n, nil
}

// drain yields every line of one segment and deletes it afterwards.
func (s *SegmentedSource) drain(ctx context.Context, path string, offset int, yield func(entry.Line, error) bool) (ok bool) {
	defer func() {
		if err := os.Remove(path); err != nil && ok {
			yield(entry.Line{}, fmt.Errorf("remove segment %s: %w", path, err))
			ok = false
		}
	}()

	for l, err := range newSegmentFile(path, s.Name(), offset).Lines(ctx) {
		if !yield(l, err) || err != nil {
			return false
		}
	}
	return true
}
