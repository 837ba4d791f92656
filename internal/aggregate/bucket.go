// Package aggregate folds parsed records into per-day URL hit counts.
package aggregate

import (
	"slices"

	"github.com/Geun-Oh/urlrank/internal/entry"
)

// Bucket maps each day to the hit count of every URL seen under it.
// Entries are created on first sight and only ever incremented.
type Bucket struct {
	days  map[entry.Day]map[string]int
	total int
}

// NewBucket creates an empty bucket.
func NewBucket() *Bucket {
	return &Bucket{days: make(map[entry.Day]map[string]int)}
}

// Add counts n hits for url under day. n must be positive.
func (b *Bucket) Add(day entry.Day, url string, n int) {
	urls, ok := b.days[day]
	if !ok {
		urls = make(map[string]int)
		b.days[day] = urls
	}
	urls[url] += n
	b.total += n
}

// Days returns every day present, in calendar order.
func (b *Bucket) Days() []entry.Day {
	days := make([]entry.Day, 0, len(b.days))
	for d := range b.days {
		days = append(days, d)
	}
	slices.Sort(days)
	return days
}

// Counts returns the url→count map for day, or nil if the day is absent.
// The map belongs to the bucket and must not be modified.
func (b *Bucket) Counts(day entry.Day) map[string]int {
	return b.days[day]
}

// Len returns the number of days in the bucket.
func (b *Bucket) Len() int {
	return len(b.days)
}

// Total returns the sum of all counts.
func (b *Bucket) Total() int {
	return b.total
}

// URLs returns the number of distinct (day, url) pairs.
func (b *Bucket) URLs() int {
	n := 0
	for _, urls := range b.days {
		n += len(urls)
	}
	return n
}
