package monitor

import (
	"io"
	"os"

	"github.com/schollz/progressbar/v3"
)

// Progress draws one bar per segmented input on w.
type Progress struct {
	w    io.Writer
	bars map[string]*progressbar.ProgressBar
}

// NewProgress creates a progress reporter writing to w (stderr if nil).
func NewProgress(w io.Writer) *Progress {
	if w == nil {
		w = os.Stderr
	}
	return &Progress{w: w, bars: make(map[string]*progressbar.ProgressBar)}
}

// Segment advances the bar for name to done of total. Inputs read in a
// single segment never get a bar.
func (p *Progress) Segment(name string, done, total int) {
	if total <= 1 {
		return
	}

	bar, ok := p.bars[name]
	if !ok {
		bar = progressbar.NewOptions(total,
			progressbar.OptionSetWriter(p.w),
			progressbar.OptionSetDescription(name),
			progressbar.OptionShowCount(),
			progressbar.OptionClearOnFinish(),
		)
		p.bars[name] = bar
	}
	if bar.GetMax() < total {
		bar.ChangeMax(total)
	}
	_ = bar.Set(done)
}

// Close finishes every bar.
func (p *Progress) Close() {
	for _, bar := range p.bars {
		_ = bar.Finish()
	}
}
