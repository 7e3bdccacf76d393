package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeDefaults(t *testing.T) {
	opts := Options{}
	warnings := opts.normalize(DefaultConfig())

	assert.Empty(t, warnings)
	assert.Equal(t, ".", opts.TargetDir)
	assert.Equal(t, 0, opts.MaxDepth)
	assert.Equal(t, "M", opts.Unit)
	assert.Equal(t, FormatText, opts.Format)
	assert.Equal(t, SortName, opts.SortKey)
	assert.Equal(t, int64(0), opts.SizeThreshold)
}

func TestNormalizeUnitCaseInsensitive(t *testing.T) {
	opts := Options{Unit: "g"}
	warnings := opts.normalize(DefaultConfig())

	assert.Empty(t, warnings)
	assert.Equal(t, "G", opts.Unit)
}

func TestNormalizeInvalidUnitDegrades(t *testing.T) {
	opts := Options{Unit: "TB"}
	warnings := opts.normalize(DefaultConfig())

	assert.Len(t, warnings, 1)
	assert.Equal(t, "M", opts.Unit)
}

func TestNormalizeInvalidFormatDegrades(t *testing.T) {
	opts := Options{Format: "xml"}
	warnings := opts.normalize(DefaultConfig())

	assert.Len(t, warnings, 1)
	assert.Equal(t, FormatText, opts.Format)
}

func TestNormalizeInvalidSortDegrades(t *testing.T) {
	opts := Options{SortKey: "owner"}
	warnings := opts.normalize(DefaultConfig())

	assert.Len(t, warnings, 1)
	assert.Equal(t, SortName, opts.SortKey)
}

func TestNormalizeNegativeThresholdClamps(t *testing.T) {
	opts := Options{SizeThreshold: -5}
	opts.normalize(DefaultConfig())

	assert.Equal(t, int64(0), opts.SizeThreshold)
}

func TestDepthLabel(t *testing.T) {
	assert.Equal(t, "unlimited", Options{MaxDepth: 0}.depthLabel())
	assert.Equal(t, "3", Options{MaxDepth: 3}.depthLabel())
}
