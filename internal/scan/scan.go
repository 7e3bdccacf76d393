package scan

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Entry represents a single (size, path) measurement from a disk
// usage scan. Size is expressed in the block-size units the scan was
// requested with (K, M or G), not bytes.
type Entry struct {
	SizeUnits int64
	Path      string
	ModTime   time.Time
}

// MeasureRequest describes one enumeration over a directory tree.
type MeasureRequest struct {
	Root string

	// MaxDepth limits how deep below Root entries are reported.
	// 0 means unlimited.
	MaxDepth int

	// BlockSize is the unit sizes are scaled to: "K", "M" or "G".
	BlockSize string

	// Exclude lists paths that are skipped unconditionally.
	Exclude []string
}

// Enumerator measures disk usage under a root directory.
type Enumerator interface {
	// Name returns the enumerator name for logging.
	Name() string

	// Measure returns one entry per directory or file within the
	// requested depth, sizes scaled to the requested block size.
	Measure(ctx context.Context, req MeasureRequest) ([]Entry, error)
}

// FileMeasurer measures a single path.
type FileMeasurer interface {
	// MeasureFile returns one entry for path, scaled to blockSize.
	MeasureFile(ctx context.Context, path, blockSize string) (Entry, error)
}

// Finder lists regular files by modification recency.
type Finder interface {
	// Name returns the finder name for logging.
	Name() string

	// RecentFiles returns paths of regular files under root, bounded
	// by maxDepth (0 = unlimited), modified within the last
	// withinDays days.
	RecentFiles(ctx context.Context, root string, maxDepth, withinDays int) ([]string, error)
}

// duTimeLayout matches du --time --time-style=long-iso output.
const duTimeLayout = "2006-01-02 15:04"

// parseEntry parses one line of du --time output.
// Line format: "<size>\t<yyyy-mm-dd hh:mm>\t<path>".
func parseEntry(line string) (Entry, error) {
	fields := strings.SplitN(line, "\t", 3)
	if len(fields) != 3 {
		return Entry{}, fmt.Errorf("unexpected du line: %q", line)
	}

	size, err := strconv.ParseInt(strings.TrimSpace(fields[0]), 10, 64)
	if err != nil {
		return Entry{}, fmt.Errorf("parsing du size %q: %w", fields[0], err)
	}

	mtime, err := time.ParseInLocation(duTimeLayout, strings.TrimSpace(fields[1]), time.Local)
	if err != nil {
		return Entry{}, fmt.Errorf("parsing du mtime %q: %w", fields[1], err)
	}

	return Entry{SizeUnits: size, Path: fields[2], ModTime: mtime}, nil
}

// parseEntries parses full du --time output, one entry per line.
func parseEntries(output string) ([]Entry, error) {
	var entries []Entry
	for _, line := range strings.Split(output, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		entry, err := parseEntry(line)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, nil
}
