// Package pipeline orchestrates Source → Parser → Filter → Aggregator → Report processing.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/Geun-Oh/urlrank/internal/aggregate"
	"github.com/Geun-Oh/urlrank/internal/filter"
	"github.com/Geun-Oh/urlrank/internal/monitor"
	"github.com/Geun-Oh/urlrank/internal/parser"
	"github.com/Geun-Oh/urlrank/internal/report"
	"github.com/Geun-Oh/urlrank/internal/sink"
	"github.com/Geun-Oh/urlrank/internal/source"
)

// DefaultSegmentLines is the line count above which a file is read through
// temporary segments.
const DefaultSegmentLines = 20000

// Config holds pipeline configuration.
type Config struct {
	Source        source.Source
	Mode          aggregate.Mode
	Filters       *filter.Chain // optional
	SkipMalformed bool
	Top           int // max entries per day, 0 = all
	Stats         *monitor.Stats
	Logger        *slog.Logger
}

// Aggregate reads the whole source and returns the filled bucket. It stops at
// the first read error, and at the first malformed record unless
// SkipMalformed is set.
func Aggregate(ctx context.Context, cfg *Config) (*aggregate.Bucket, error) {
	if cfg.Source == nil {
		return nil, fmt.Errorf("pipeline: source is required")
	}
	stats := cfg.Stats
	if stats == nil {
		stats = monitor.NewStats()
	}
	log := cfg.Logger
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	log.Debug("reading", "source", cfg.Source.Name(), "mode", cfg.Mode)
	agg := aggregate.New(cfg.Mode)

	for l, err := range cfg.Source.Lines(ctx) {
		if err != nil {
			return nil, fmt.Errorf("pipeline: %w", err)
		}
		stats.Lines++

		if l.Text == "" {
			stats.Blank++
			continue
		}

		r, err := parser.Parse(l)
		if err != nil {
			if cfg.SkipMalformed && errors.Is(err, parser.ErrMalformedRecord) {
				stats.Malformed++
				log.Warn("skipping malformed record", "err", err)
				continue
			}
			return nil, fmt.Errorf("pipeline: %w", err)
		}

		if cfg.Filters != nil && cfg.Filters.Len() > 0 && !cfg.Filters.Match(&r) {
			stats.Filtered++
			continue
		}

		agg.Add(r)
		stats.Records++
	}

	b := agg.Result()
	stats.Finish(b.Len(), b.URLs())
	log.Debug("aggregated", "lines", stats.Lines, "records", stats.Records, "days", b.Len())
	return b, nil
}

// Build runs Aggregate and ranks the result.
func Build(ctx context.Context, cfg *Config) (report.Report, error) {
	b, err := Aggregate(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return report.Build(b, cfg.Top), nil
}

// Run executes the pipeline and writes the report to s. Nothing reaches s
// unless every input was read and parsed successfully.
func Run(ctx context.Context, cfg *Config, s sink.Sink) error {
	if s == nil {
		return fmt.Errorf("pipeline: sink is required")
	}
	defer s.Close()

	rep, err := Build(ctx, cfg)
	if err != nil {
		return err
	}
	if err := report.Write(s, rep); err != nil {
		return fmt.Errorf("pipeline: %w", err)
	}
	return nil
}
