// Package parser turns raw input lines into records.
package parser

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/Geun-Oh/urlrank/internal/entry"
)

// Delimiter separates the timestamp from the URL in an input line.
const Delimiter = "|"

// ErrMalformedRecord is matched by every error Parse returns.
var ErrMalformedRecord = errors.New("malformed record")

// ParseError describes why a single line could not be parsed.
type ParseError struct {
	Source string
	Line   int
	Text   string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s:%d: %s: %s (%q)", e.Source, e.Line, ErrMalformedRecord, e.Reason, e.Text)
}

// Unwrap lets errors.Is match ErrMalformedRecord.
func (e *ParseError) Unwrap() error {
	return ErrMalformedRecord
}

// Parse splits a line of the form "<epoch_seconds>|<url>" into a record.
// The timestamp must be a non-negative base-10 integer without sign or
// padding; the URL is taken verbatim but may not be empty.
func Parse(l entry.Line) (entry.Record, error) {
	fields := strings.Split(l.Text, Delimiter)
	if len(fields) != 2 {
		if len(fields) == 1 {
			return entry.Record{}, malformed(l, "missing delimiter")
		}
		return entry.Record{}, malformed(l, fmt.Sprintf("want 2 fields, got %d", len(fields)))
	}

	ts, url := fields[0], fields[1]
	if !isDigits(ts) {
		return entry.Record{}, malformed(l, "timestamp is not a non-negative integer")
	}
	epoch, err := strconv.ParseInt(ts, 10, 64)
	if err != nil {
		return entry.Record{}, malformed(l, "timestamp out of range")
	}
	if url == "" {
		return entry.Record{}, malformed(l, "empty url")
	}

	return entry.Record{
		Epoch:  epoch,
		URL:    url,
		Source: l.Source,
		Line:   l.Number,
	}, nil
}

func malformed(l entry.Line, reason string) *ParseError {
	return &ParseError{Source: l.Source, Line: l.Number, Text: l.Text, Reason: reason}
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
