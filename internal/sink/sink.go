// Package sink defines the Sink interface for report output.
package sink

import (
	"github.com/Geun-Oh/urlrank/internal/entry"
	"github.com/Geun-Oh/urlrank/internal/rank"
)

// Sink receives one day block at a time, in report order.
type Sink interface {
	// WriteDay outputs a day label followed by its ranked entries.
	WriteDay(day entry.Day, entries []rank.Entry) error

	// Flush ensures all buffered output is written.
	Flush() error

	// Close releases resources held by the sink.
	Close() error

	// Name returns a human-readable identifier for this sink.
	Name() string
}
