// Package monitor collects run statistics and progress for the pipeline.
package monitor

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
)

// Stats counts what happened to every input line during a run.
// It is owned by the single pipeline goroutine and needs no locking.
type Stats struct {
	Lines     uint64 // lines read
	Blank     uint64 // empty lines skipped
	Records   uint64 // records counted
	Malformed uint64 // malformed lines skipped (skip mode only)
	Filtered  uint64 // records rejected by filters
	Segments  uint64 // segments consumed
	Days      int
	URLs      int

	startTime time.Time
	endTime   time.Time
}

// NewStats creates a new statistics collector.
func NewStats() *Stats {
	return &Stats{startTime: time.Now()}
}

// RecordSegment counts one consumed segment.
func (s *Stats) RecordSegment() {
	s.Segments++
}

// Finish stops the clock and stores the size of the result.
func (s *Stats) Finish(days, urls int) {
	s.endTime = time.Now()
	s.Days = days
	s.URLs = urls
}

// Elapsed returns the run duration, or the time since start if unfinished.
func (s *Stats) Elapsed() time.Duration {
	if s.endTime.IsZero() {
		return time.Since(s.startTime)
	}
	return s.endTime.Sub(s.startTime)
}

// Rate returns lines processed per second.
func (s *Stats) Rate() float64 {
	elapsed := s.Elapsed().Seconds()
	if elapsed == 0 {
		return 0
	}
	return float64(s.Lines) / elapsed
}

// Summary returns a formatted summary string.
func (s *Stats) Summary() string {
	return fmt.Sprintf(
		"── Summary ──\n"+
			"  Lines:      %s\n"+
			"  Records:    %s\n"+
			"  Blank:      %s\n"+
			"  Malformed:  %s\n"+
			"  Filtered:   %s\n"+
			"  Segments:   %s\n"+
			"  Days:       %s\n"+
			"  Day/URLs:   %s\n"+
			"  Duration:   %s\n"+
			"  Throughput: %s lines/s\n"+
			"─────────────",
		humanize.Comma(int64(s.Lines)),
		humanize.Comma(int64(s.Records)),
		humanize.Comma(int64(s.Blank)),
		humanize.Comma(int64(s.Malformed)),
		humanize.Comma(int64(s.Filtered)),
		humanize.Comma(int64(s.Segments)),
		humanize.Comma(int64(s.Days)),
		humanize.Comma(int64(s.URLs)),
		s.Elapsed().Round(time.Millisecond),
		humanize.CommafWithDigits(s.Rate(), 0),
	)
}
