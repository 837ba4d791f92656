package sink

import (
	"bufio"
	"io"
	"os"
	"strconv"

	"github.com/charmbracelet/lipgloss"

	"github.com/Geun-Oh/urlrank/internal/entry"
	"github.com/Geun-Oh/urlrank/internal/rank"
)

var dayStyle = lipgloss.NewStyle().Bold(true)

// TerminalSink writes the plain text report:
//
//	<MM-DD-YYYY>
//	<url> <count>
//	...
//
// Output is buffered until Flush, so a run that fails before flushing
// prints nothing.
type TerminalSink struct {
	w     *bufio.Writer
	color bool
}

// NewTerminalSink creates a sink that writes to the given writer.
// If color is true, day labels are rendered bold.
func NewTerminalSink(w io.Writer, color bool) *TerminalSink {
	if w == nil {
		w = os.Stdout
	}
	return &TerminalSink{w: bufio.NewWriter(w), color: color}
}

// WriteDay outputs one day block.
func (s *TerminalSink) WriteDay(day entry.Day, entries []rank.Entry) error {
	label := day.String()
	if s.color {
		label = dayStyle.Render(label)
	}
	if _, err := s.w.WriteString(label + "\n"); err != nil {
		return err
	}

	for _, e := range entries {
		s.w.WriteString(e.URL)
		s.w.WriteByte(' ')
		s.w.WriteString(strconv.Itoa(e.Count))
		if err := s.w.WriteByte('\n'); err != nil {
			return err
		}
	}
	return nil
}

// Flush writes buffered output to the underlying writer.
func (s *TerminalSink) Flush() error { return s.w.Flush() }

// Close flushes any remaining output.
func (s *TerminalSink) Close() error { return s.w.Flush() }

// Name returns the sink identifier.
func (s *TerminalSink) Name() string { return "terminal" }
