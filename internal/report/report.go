package report

import (
	"context"
	"errors"
	"log/slog"
	"math"
	"sort"
	"time"

	"github.com/pmattila/hostadm/internal/scan"
)

// ErrNoData indicates the collection step yielded zero entries. The
// invocation is over; callers surface this as a user-visible message.
var ErrNoData = errors.New("no usage data collected")

// Row is one report line: a measured entry plus its share of the total.
type Row struct {
	Size    int64
	Path    string
	ModTime time.Time
	Percent float64
}

// Report is the fully computed result of one generation. TotalSize is
// the sum of exactly the rows retained after threshold filtering, and
// every percentage is computed against that same total.
type Report struct {
	GeneratedAt time.Time
	Options     Options
	Rows        []Row
	TotalSize   int64
	Warnings    []string
}

// Generator produces disk usage reports. Each Generate call performs a
// fresh scan and an independent in-memory transformation; no state is
// shared between invocations.
type Generator struct {
	enum   scan.Enumerator
	files  scan.FileMeasurer
	finder scan.Finder
	cfg    Config
	logger *slog.Logger
	now    func() time.Time
}

// NewGenerator creates a Generator. enum supplies subtree measurements,
// files measures individual paths, and finder lists recently modified
// files for the modified-within collection strategy.
func NewGenerator(enum scan.Enumerator, files scan.FileMeasurer, finder scan.Finder, cfg Config, logger *slog.Logger) *Generator {
	return &Generator{
		enum:   enum,
		files:  files,
		finder: finder,
		cfg:    cfg,
		logger: logger,
		now:    time.Now,
	}
}

// Generate runs the collect, filter, sort and percentage steps and
// returns the computed report. Rendering is a separate step so callers
// can inspect rows and warnings before formatting.
func (g *Generator) Generate(ctx context.Context, opts Options) (*Report, error) {
	warnings := opts.normalize(g.cfg)
	for _, w := range warnings {
		g.logger.Warn("report option degraded", "warning", w)
	}

	entries, err := g.collect(ctx, opts)
	if err != nil {
		// A failed collaborator and an empty scan are the same
		// user-visible outcome: nothing to report.
		g.logger.Warn("collection failed", "target", opts.TargetDir, "error", err)
		return nil, ErrNoData
	}
	if len(entries) == 0 {
		return nil, ErrNoData
	}

	rows, total := filterEntries(entries, opts.SizeThreshold)
	if len(rows) == 0 {
		return nil, ErrNoData
	}

	sortRows(rows, opts.SortKey)

	for i := range rows {
		rows[i].Percent = percentage(rows[i].Size, total)
	}

	return &Report{
		GeneratedAt: g.now(),
		Options:     opts,
		Rows:        rows,
		TotalSize:   total,
		Warnings:    warnings,
	}, nil
}

// collect picks the collection strategy: a single subtree enumeration,
// or a recency-filtered file listing measured path by path.
func (g *Generator) collect(ctx context.Context, opts Options) ([]scan.Entry, error) {
	if opts.ModifiedWithinDays <= 0 {
		return g.enum.Measure(ctx, scan.MeasureRequest{
			Root:      opts.TargetDir,
			MaxDepth:  opts.MaxDepth,
			BlockSize: opts.Unit,
			Exclude:   g.cfg.Exclude,
		})
	}

	paths, err := g.finder.RecentFiles(ctx, opts.TargetDir, opts.MaxDepth, opts.ModifiedWithinDays)
	if err != nil {
		return nil, err
	}

	entries := make([]scan.Entry, 0, len(paths))
	for _, path := range paths {
		entry, err := g.files.MeasureFile(ctx, path, opts.Unit)
		if err != nil {
			g.logger.Warn("skipping unmeasurable file", "path", path, "error", err)
			continue
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// filterEntries keeps entries at or above the threshold and sums their
// sizes. Entries below the threshold contribute nothing to the total.
func filterEntries(entries []scan.Entry, threshold int64) ([]Row, int64) {
	rows := make([]Row, 0, len(entries))
	var total int64
	for _, e := range entries {
		if e.SizeUnits < threshold {
			continue
		}
		rows = append(rows, Row{Size: e.SizeUnits, Path: e.Path, ModTime: e.ModTime})
		total += e.SizeUnits
	}
	return rows, total
}

// sortRows orders rows by the requested key. All sorts are stable.
func sortRows(rows []Row, key SortKey) {
	switch key {
	case SortSizeAsc:
		sort.SliceStable(rows, func(i, j int) bool { return rows[i].Size < rows[j].Size })
	case SortSizeDesc:
		sort.SliceStable(rows, func(i, j int) bool { return rows[i].Size > rows[j].Size })
	case SortMTime:
		sort.SliceStable(rows, func(i, j int) bool { return rows[i].ModTime.Before(rows[j].ModTime) })
	default:
		sort.SliceStable(rows, func(i, j int) bool { return rows[i].Path < rows[j].Path })
	}
}

// percentage returns size's share of total, rounded to two decimals.
func percentage(size, total int64) float64 {
	if total <= 0 {
		return 0
	}
	return math.Round(10000*float64(size)/float64(total)) / 100
}
