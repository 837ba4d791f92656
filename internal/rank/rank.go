// Package rank orders one day's URLs by hit count.
package rank

import (
	"cmp"
	"slices"
	"strings"
)

// Entry is a URL and its hit count.
type Entry struct {
	URL   string
	Count int
}

// Compare orders entries by count, highest first. Equal counts are ordered
// by URL in reverse byte order, so the greater URL comes first.
func Compare(a, b Entry) int {
	if c := cmp.Compare(b.Count, a.Count); c != 0 {
		return c
	}
	return strings.Compare(b.URL, a.URL)
}

// Rank returns the entries of counts sorted with Compare.
func Rank(counts map[string]int) []Entry {
	entries := make([]Entry, 0, len(counts))
	for url, n := range counts {
		entries = append(entries, Entry{URL: url, Count: n})
	}
	slices.SortFunc(entries, Compare)
	return entries
}

// Top returns at most n leading entries. n <= 0 returns all of them.
func Top(entries []Entry, n int) []Entry {
	if n <= 0 || n >= len(entries) {
		return entries
	}
	return entries[:n]
}
