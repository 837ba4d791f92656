package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/Geun-Oh/urlrank/internal/aggregate"
	"github.com/Geun-Oh/urlrank/internal/filter"
	"github.com/Geun-Oh/urlrank/internal/monitor"
	"github.com/Geun-Oh/urlrank/internal/pipeline"
	"github.com/Geun-Oh/urlrank/internal/sink"
	"github.com/Geun-Oh/urlrank/internal/source"
	"github.com/Geun-Oh/urlrank/internal/tui"
)

type options struct {
	groupBy       string
	segmentLines  int
	tempDir       string
	skipMalformed bool
	keyword       string
	match         string
	exclude       []string
	top           int
	color         bool
	stats         bool
	progress      bool
	browse        bool
	verbose       bool
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   "urlrank [flags] <file>...",
		Short: "urlrank ranks URLs by hits for every day in pipe-delimited access logs",
		Long: `urlrank reads log files of "<unix_seconds>|<url>" lines and prints, for each
UTC calendar day in ascending order, the day as MM-DD-YYYY followed by one
"<url> <count>" line per URL, most hits first. Use "-" to read standard input.`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return nil
			}
			return run(cmd.Context(), args, &opts, stdout, stderr)
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.groupBy, "group-by", "day", `grouping: "day" counts hits per day, "first-seen" lists each URL under its first day`)
	f.IntVar(&opts.segmentLines, "segment-lines", pipeline.DefaultSegmentLines, "read files longer than this many lines through temporary segments (0 disables)")
	f.StringVar(&opts.tempDir, "temp-dir", "", "directory for temporary segments (default: system temp dir)")
	f.BoolVar(&opts.skipMalformed, "skip-malformed", false, "skip malformed records instead of aborting")
	f.StringVarP(&opts.keyword, "keyword", "k", "", "only count URLs containing this keyword")
	f.StringVar(&opts.match, "match", "", "only count URLs matching this regular expression")
	f.StringSliceVar(&opts.exclude, "exclude", nil, "drop URLs containing any of these strings")
	f.IntVar(&opts.top, "top", 0, "print at most N URLs per day (0 prints all)")
	f.BoolVar(&opts.color, "color", false, "style day labels")
	f.BoolVar(&opts.stats, "stats", false, "print a run summary to stderr")
	f.BoolVar(&opts.progress, "progress", false, "show segment progress on stderr")
	f.BoolVar(&opts.browse, "browse", false, "browse the report interactively instead of printing it")
	f.BoolVarP(&opts.verbose, "verbose", "v", false, "debug logging on stderr")

	return cmd
}

func run(ctx context.Context, args []string, opts *options, stdout, stderr io.Writer) error {
	level := slog.LevelWarn
	if opts.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	mode, err := aggregate.ParseMode(opts.groupBy)
	if err != nil {
		return err
	}
	if opts.segmentLines < 0 {
		return fmt.Errorf("--segment-lines must not be negative")
	}
	chain, err := filter.Build(opts.keyword, opts.match, opts.exclude)
	if err != nil {
		return err
	}

	stats := monitor.NewStats()
	var progress *monitor.Progress
	if opts.progress {
		progress = monitor.NewProgress(stderr)
		defer progress.Close()
	}

	src := source.Open(args, source.Options{
		SegmentLines: opts.segmentLines,
		TempDir:      opts.tempDir,
		OnSegment: func(name string, done, total int) {
			stats.RecordSegment()
			logger.Debug("segment done", "source", name, "segment", done, "of", total)
			if progress != nil {
				progress.Segment(name, done, total)
			}
		},
	})

	cfg := &pipeline.Config{
		Source:        src,
		Mode:          mode,
		Filters:       chain,
		SkipMalformed: opts.skipMalformed,
		Top:           opts.top,
		Stats:         stats,
		Logger:        logger,
	}

	if opts.browse {
		rep, err := pipeline.Build(ctx, cfg)
		if err != nil {
			return err
		}
		return tui.Run(ctx, rep, stats, src.Name())
	}

	if err := pipeline.Run(ctx, cfg, sink.NewTerminalSink(stdout, opts.color)); err != nil {
		return err
	}
	if opts.stats {
		fmt.Fprintln(stderr, stats.Summary())
	}
	return nil
}

// Execute runs the root command and returns the process exit code.
func Execute() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd(os.Stdout, os.Stderr).ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "urlrank:", err)
		return 1
	}
	return 0
}
