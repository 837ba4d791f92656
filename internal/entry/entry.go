// Package entry defines the core value types passed through the urlrank pipeline.
package entry

import (
	"fmt"
	"time"
)

// dayLayout formats a Day as MM-DD-YYYY using the calendar year.
const dayLayout = "01-02-2006"

const secondsPerDay = 24 * 60 * 60

// Day is a UTC calendar date, stored as whole days since the Unix epoch.
// Comparing two Days with < is comparing them on the calendar.
type Day int64

// DayOf returns the UTC calendar day containing the given Unix time in seconds.
func DayOf(epoch int64) Day {
	d := epoch / secondsPerDay
	if epoch%secondsPerDay < 0 {
		d--
	}
	return Day(d)
}

// Time returns midnight UTC at the start of the day.
func (d Day) Time() time.Time {
	return time.Unix(int64(d)*secondsPerDay, 0).UTC()
}

// String returns the zero-padded MM-DD-YYYY label of the day.
func (d Day) String() string {
	return d.Time().Format(dayLayout)
}

// ParseDay converts an MM-DD-YYYY label back to a Day.
func ParseDay(label string) (Day, error) {
	t, err := time.ParseInLocation(dayLayout, label, time.UTC)
	if err != nil {
		return 0, fmt.Errorf("parse day %q: %w", label, err)
	}
	return DayOf(t.Unix()), nil
}

// Line is one raw input line together with where it came from.
type Line struct {
	Source string // source identifier (file:path, stdin)
	Number int    // 1-based line number within the full input
	Text   string // line text without the trailing newline
}

// Record is one parsed (timestamp, url) input line.
type Record struct {
	Epoch  int64  // seconds since the Unix epoch
	URL    string // opaque, never validated
	Source string
	Line   int
}

// Day returns the UTC calendar day the record falls on.
func (r Record) Day() Day {
	return DayOf(r.Epoch)
}

// Format returns a short human-readable form of the record.
func (r *Record) Format() string {
	return fmt.Sprintf("[%s][%s:%d]: %s", r.Day(), r.Source, r.Line, r.URL)
}
