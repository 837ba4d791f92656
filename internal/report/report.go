// Package report turns an aggregated bucket into the ordered day report.
package report

import (
	"fmt"

	"github.com/Geun-Oh/urlrank/internal/aggregate"
	"github.com/Geun-Oh/urlrank/internal/entry"
	"github.com/Geun-Oh/urlrank/internal/rank"
	"github.com/Geun-Oh/urlrank/internal/sink"
)

// DayReport is one day's ranked URLs.
type DayReport struct {
	Day     entry.Day
	Entries []rank.Entry
}

// Report is the full output of a run, days in calendar order.
type Report []DayReport

// Build ranks every day of b. top limits the entries per day; zero keeps all.
func Build(b *aggregate.Bucket, top int) Report {
	days := b.Days()
	rep := make(Report, 0, len(days))
	for _, d := range days {
		rep = append(rep, DayReport{
			Day:     d,
			Entries: rank.Top(rank.Rank(b.Counts(d)), top),
		})
	}
	return rep
}

// Write sends every day block of rep to s and flushes it.
func Write(s sink.Sink, rep Report) error {
	for _, dr := range rep {
		if err := s.WriteDay(dr.Day, dr.Entries); err != nil {
			return fmt.Errorf("report: write to %s: %w", s.Name(), err)
		}
	}
	if err := s.Flush(); err != nil {
		return fmt.Errorf("report: flush %s: %w", s.Name(), err)
	}
	return nil
}

// Emit builds the report for b and writes it to s.
func Emit(s sink.Sink, b *aggregate.Bucket, top int) error {
	return Write(s, Build(b, top))
}
