package report

import (
	"fmt"
	"strings"
)

// Format selects the report output format.
type Format string

const (
	FormatText Format = "text"
	FormatCSV  Format = "csv"
	FormatHTML Format = "html"
	FormatJSON Format = "json"
)

// SortKey selects the report entry ordering.
type SortKey string

const (
	SortName     SortKey = "name"
	SortSizeAsc  SortKey = "size_asc"
	SortSizeDesc SortKey = "size_desc"
	SortMTime    SortKey = "mtime"
)

// Options holds the full set of user-chosen parameters for one report
// generation. Construct once per invocation; normalize fills defaults
// and degrades invalid values to safe ones instead of aborting.
type Options struct {
	TargetDir string
	MaxDepth  int

	// Unit is the size scale: K, M or G (case-insensitive on input).
	Unit string

	Format  Format
	SortKey SortKey

	// SizeThreshold drops entries smaller than this many units.
	SizeThreshold int64

	// ModifiedWithinDays, when positive, restricts the report to
	// regular files modified within the last N days.
	ModifiedWithinDays int
}

// Config is the immutable generator configuration: defaults applied to
// empty option fields plus the unconditional exclusion list.
type Config struct {
	DefaultUnit   string
	DefaultFormat Format
	DefaultSort   SortKey

	// Exclude lists pseudo-filesystem paths skipped on every scan.
	Exclude []string
}

// DefaultConfig returns the built-in generator configuration.
func DefaultConfig() Config {
	return Config{
		DefaultUnit:   "M",
		DefaultFormat: FormatText,
		DefaultSort:   SortName,
		Exclude:       []string{"/proc", "/dev", "/sys", "/run"},
	}
}

// normalize applies defaults and validates the choice fields. Invalid
// format and unit values degrade to the configured defaults; each
// degradation is reported as a warning rather than an error.
func (o *Options) normalize(cfg Config) []string {
	var warnings []string

	if o.TargetDir == "" {
		o.TargetDir = "."
	}
	if o.Unit == "" {
		o.Unit = cfg.DefaultUnit
	}
	if o.Format == "" {
		o.Format = cfg.DefaultFormat
	}
	if o.SortKey == "" {
		o.SortKey = cfg.DefaultSort
	}
	if o.SizeThreshold < 0 {
		o.SizeThreshold = 0
	}

	o.Unit = strings.ToUpper(o.Unit)
	switch o.Unit {
	case "K", "M", "G":
	default:
		warnings = append(warnings, fmt.Sprintf("unknown unit %q, using %q", o.Unit, cfg.DefaultUnit))
		o.Unit = cfg.DefaultUnit
	}

	switch o.Format {
	case FormatText, FormatCSV, FormatHTML, FormatJSON:
	default:
		warnings = append(warnings, fmt.Sprintf("unknown format %q, using %q", o.Format, cfg.DefaultFormat))
		o.Format = cfg.DefaultFormat
	}

	switch o.SortKey {
	case SortName, SortSizeAsc, SortSizeDesc, SortMTime:
	default:
		warnings = append(warnings, fmt.Sprintf("unknown sort key %q, sorting by %q", o.SortKey, SortName))
		o.SortKey = SortName
	}

	return warnings
}

// depthLabel renders MaxDepth for report headers.
func (o Options) depthLabel() string {
	if o.MaxDepth == 0 {
		return "unlimited"
	}
	return fmt.Sprintf("%d", o.MaxDepth)
}
