// Package filter selects which records take part in the ranking.
package filter

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/Geun-Oh/urlrank/internal/entry"
)

// Filter decides whether a record is counted.
type Filter interface {
	// Match returns true if the record should be counted.
	Match(r *entry.Record) bool

	// Name returns a human-readable description of this filter.
	Name() string
}

// Chain passes a record only if every filter in it does.
// An empty chain passes everything.
type Chain struct {
	filters []Filter
}

// NewChain creates a chain of the given filters.
func NewChain(filters ...Filter) *Chain {
	return &Chain{filters: filters}
}

// Add appends a filter to the chain.
func (c *Chain) Add(f Filter) {
	c.filters = append(c.filters, f)
}

// Match reports whether r passes all filters.
func (c *Chain) Match(r *entry.Record) bool {
	for _, f := range c.filters {
		if !f.Match(r) {
			return false
		}
	}
	return true
}

// Name lists the filters in the chain.
func (c *Chain) Name() string {
	names := make([]string, len(c.filters))
	for i, f := range c.filters {
		names[i] = f.Name()
	}
	return "all(" + strings.Join(names, " ") + ")"
}

// Len returns the number of filters in the chain.
func (c *Chain) Len() int {
	return len(c.filters)
}

// KeywordFilter passes URLs containing a substring.
type KeywordFilter struct {
	keyword string
}

// NewKeywordFilter creates a filter that passes URLs containing keyword.
func NewKeywordFilter(keyword string) *KeywordFilter {
	return &KeywordFilter{keyword: keyword}
}

func (f *KeywordFilter) Match(r *entry.Record) bool {
	return strings.Contains(r.URL, f.keyword)
}

func (f *KeywordFilter) Name() string {
	return "keyword:" + f.keyword
}

// RegexFilter passes URLs matching a regular expression compiled once up front.
type RegexFilter struct {
	re *regexp.Regexp
}

// NewRegexFilter compiles pattern. It fails on an invalid expression.
func NewRegexFilter(pattern string) (*RegexFilter, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid regex %q: %w", pattern, err)
	}
	return &RegexFilter{re: re}, nil
}

func (f *RegexFilter) Match(r *entry.Record) bool {
	return f.re.MatchString(r.URL)
}

func (f *RegexFilter) Name() string {
	return "regex:" + f.re.String()
}

// ExcludeFilter drops URLs containing any of its patterns.
type ExcludeFilter struct {
	patterns []string
}

// NewExcludeFilter creates a filter rejecting URLs that contain any pattern.
func NewExcludeFilter(patterns ...string) *ExcludeFilter {
	return &ExcludeFilter{patterns: patterns}
}

func (f *ExcludeFilter) Match(r *entry.Record) bool {
	for _, p := range f.patterns {
		if strings.Contains(r.URL, p) {
			return false
		}
	}
	return true
}

func (f *ExcludeFilter) Name() string {
	return "exclude:" + strings.Join(f.patterns, ",")
}

// Build assembles a chain from command-line style options. Empty options
// add no filter.
func Build(keyword, match string, exclude []string) (*Chain, error) {
	c := NewChain()
	if keyword != "" {
		c.Add(NewKeywordFilter(keyword))
	}
	if match != "" {
		re, err := NewRegexFilter(match)
		if err != nil {
			return nil, err
		}
		c.Add(re)
	}
	if len(exclude) > 0 {
		c.Add(NewExcludeFilter(exclude...))
	}
	return c, nil
}
