package report

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testReport(format Format) *Report {
	opts := Options{Format: format}
	opts.normalize(DefaultConfig())
	return &Report{
		GeneratedAt: time.Date(2026, 8, 23, 12, 0, 0, 0, time.UTC),
		Options:     opts,
		Rows: []Row{
			{Size: 10, Path: "a", Percent: 25.00},
			{Size: 30, Path: "b", Percent: 75.00},
		},
		TotalSize: 40,
	}
}

func TestRenderText(t *testing.T) {
	out, err := testReport(FormatText).Render()
	require.NoError(t, err)

	assert.Contains(t, out, "Disk Usage Report")
	assert.Contains(t, out, "Generated: 2026-08-23T12:00:00Z")
	assert.Contains(t, out, "Target: . | Depth: unlimited | Unit: M | Sort: name | Threshold: 0")
	assert.Contains(t, out, "Total: 40 M\n10 M - a (25.00%)\n30 M - b (75.00%)\n")
}

func TestRenderCSV(t *testing.T) {
	out, err := testReport(FormatCSV).Render()
	require.NoError(t, err)

	assert.Equal(t, "Size (M),Path,Percentage\n10,a,25.00\n30,b,75.00\nTotal Space: 40 M\n", out)
}

func TestRenderHTML(t *testing.T) {
	rep := testReport(FormatHTML)
	rep.Rows = append(rep.Rows, Row{Size: 1, Path: "<weird>&path", Percent: 2.50})

	out, err := rep.Render()
	require.NoError(t, err)

	assert.Contains(t, out, "<!DOCTYPE html>")
	assert.Contains(t, out, "<th>Size (M)</th><th>Path</th><th>Percentage</th>")
	assert.Contains(t, out, "<tr><td>10</td><td>a</td><td>25.00%</td></tr>")
	assert.Contains(t, out, "<b>Total Space: 40 M</b>")
	// Paths are escaped, never injected raw into the document.
	assert.NotContains(t, out, "<weird>")
	assert.Contains(t, out, "&lt;weird&gt;&amp;path")
}

func TestRenderJSONIsOneWellFormedDocument(t *testing.T) {
	out, err := testReport(FormatJSON).Render()
	require.NoError(t, err)

	var doc struct {
		GeneratedAt string `json:"generated_at"`
		Target      string `json:"target"`
		Unit        string `json:"unit"`
		Entries     []struct {
			Size       int64   `json:"size"`
			Path       string  `json:"path"`
			Percentage float64 `json:"percentage"`
		} `json:"entries"`
		TotalSpace string `json:"total_space"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &doc))

	assert.Equal(t, "2026-08-23T12:00:00Z", doc.GeneratedAt)
	assert.Equal(t, ".", doc.Target)
	assert.Equal(t, "M", doc.Unit)
	require.Len(t, doc.Entries, 2)
	assert.Equal(t, int64(10), doc.Entries[0].Size)
	assert.Equal(t, "a", doc.Entries[0].Path)
	assert.Equal(t, 25.00, doc.Entries[0].Percentage)
	assert.Equal(t, "40 M", doc.TotalSpace)
}

func TestRenderEmptyRowsStillValid(t *testing.T) {
	rep := testReport(FormatCSV)
	rep.Rows = nil
	rep.TotalSize = 0

	out, err := rep.Render()
	require.NoError(t, err)
	assert.Equal(t, "Size (M),Path,Percentage\nTotal Space: 0 M\n", out)
}
