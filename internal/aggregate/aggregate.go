package aggregate

import (
	"fmt"

	"github.com/Geun-Oh/urlrank/internal/entry"
)

// Mode selects how records are grouped into days.
type Mode int

const (
	// ByDay counts every hit under the calendar day it happened on.
	ByDay Mode = iota
	// ByFirstSeen reports each URL once, under the earliest day it was seen,
	// with its total hit count across all days.
	ByFirstSeen
)

// String returns the flag spelling of the mode.
func (m Mode) String() string {
	switch m {
	case ByFirstSeen:
		return "first-seen"
	default:
		return "day"
	}
}

// ParseMode converts a flag value to a Mode.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "day", "":
		return ByDay, nil
	case "first-seen":
		return ByFirstSeen, nil
	default:
		return ByDay, fmt.Errorf("unknown grouping %q (want day or first-seen)", s)
	}
}

// Aggregator consumes records and produces a bucket once input is exhausted.
type Aggregator interface {
	Add(r entry.Record)
	Result() *Bucket
}

// New returns the aggregator for mode.
func New(mode Mode) Aggregator {
	if mode == ByFirstSeen {
		return NewFirstSeen()
	}
	return NewDaily()
}

// Daily counts hits per calendar day.
type Daily struct {
	bucket *Bucket
}

// NewDaily creates a per-day aggregator.
func NewDaily() *Daily {
	return &Daily{bucket: NewBucket()}
}

// Add counts one hit of r.URL on r's day.
func (a *Daily) Add(r entry.Record) {
	a.bucket.Add(r.Day(), r.URL, 1)
}

// Result returns the bucket built so far.
func (a *Daily) Result() *Bucket {
	return a.bucket
}

type history struct {
	first entry.Day
	hits  int
}

// FirstSeen groups each URL under the earliest day it appears on.
// Only the earliest day and the hit count are kept per URL; the full list
// of days would produce the same report.
type FirstSeen struct {
	urls map[string]*history
}

// NewFirstSeen creates a first-seen aggregator.
func NewFirstSeen() *FirstSeen {
	return &FirstSeen{urls: make(map[string]*history)}
}

// Add records a hit for r.URL, moving its first day earlier if needed.
func (a *FirstSeen) Add(r entry.Record) {
	day := r.Day()
	h, ok := a.urls[r.URL]
	if !ok {
		a.urls[r.URL] = &history{first: day, hits: 1}
		return
	}
	if day < h.first {
		h.first = day
	}
	h.hits++
}

// Result builds a bucket keyed by each URL's first day.
func (a *FirstSeen) Result() *Bucket {
	b := NewBucket()
	for url, h := range a.urls {
		b.Add(h.first, url, h.hits)
	}
	return b
}
