package report

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"html/template"
	"strings"
	"time"
)

// Render formats the report in the format chosen in its options and
// returns the complete output as a single text blob.
func (r *Report) Render() (string, error) {
	switch r.Options.Format {
	case FormatCSV:
		return r.renderCSV()
	case FormatHTML:
		return r.renderHTML()
	case FormatJSON:
		return r.renderJSON()
	default:
		return r.renderText(), nil
	}
}

// header is the title, timestamp and echoed-options block shared by the
// text and HTML renderers.
func (r *Report) header() string {
	return fmt.Sprintf(
		"Disk Usage Report\nGenerated: %s\nTarget: %s | Depth: %s | Unit: %s | Sort: %s | Threshold: %d",
		r.GeneratedAt.Format(time.RFC3339),
		r.Options.TargetDir,
		r.Options.depthLabel(),
		r.Options.Unit,
		r.Options.SortKey,
		r.Options.SizeThreshold,
	)
}

func (r *Report) renderText() string {
	var b strings.Builder
	b.WriteString(r.header())
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "Total: %d %s\n", r.TotalSize, r.Options.Unit)
	for _, row := range r.Rows {
		fmt.Fprintf(&b, "%d %s - %s (%.2f%%)\n", row.Size, r.Options.Unit, row.Path, row.Percent)
	}
	return b.String()
}

func (r *Report) renderCSV() (string, error) {
	var b strings.Builder
	w := csv.NewWriter(&b)

	if err := w.Write([]string{fmt.Sprintf("Size (%s)", r.Options.Unit), "Path", "Percentage"}); err != nil {
		return "", fmt.Errorf("writing csv header: %w", err)
	}
	for _, row := range r.Rows {
		record := []string{
			fmt.Sprintf("%d", row.Size),
			row.Path,
			fmt.Sprintf("%.2f", row.Percent),
		}
		if err := w.Write(record); err != nil {
			return "", fmt.Errorf("writing csv row: %w", err)
		}
	}
	if err := w.Write([]string{fmt.Sprintf("Total Space: %d %s", r.TotalSize, r.Options.Unit)}); err != nil {
		return "", fmt.Errorf("writing csv total: %w", err)
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("flushing csv: %w", err)
	}
	return b.String(), nil
}

var htmlTemplate = template.Must(template.New("report").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Disk Usage Report</title>
<style>
body { font-family: sans-serif; margin: 2em; }
table { border-collapse: collapse; }
th, td { border: 1px solid #999; padding: 4px 10px; text-align: left; }
th { background: #eee; }
</style>
</head>
<body>
<h1>Disk Usage Report</h1>
<p>Generated: {{.Generated}}</p>
<p>Target: {{.Target}} | Depth: {{.Depth}} | Unit: {{.Unit}} | Sort: {{.Sort}} | Threshold: {{.Threshold}}</p>
<table>
<tr><th>Size ({{.Unit}})</th><th>Path</th><th>Percentage</th></tr>
{{- range .Rows}}
<tr><td>{{.Size}}</td><td>{{.Path}}</td><td>{{printf "%.2f" .Percent}}%</td></tr>
{{- end}}
<tr><td colspan="3"><b>Total Space: {{.Total}} {{.Unit}}</b></td></tr>
</table>
</body>
</html>
`))

func (r *Report) renderHTML() (string, error) {
	data := struct {
		Generated string
		Target    string
		Depth     string
		Unit      string
		Sort      SortKey
		Threshold int64
		Rows      []Row
		Total     int64
	}{
		Generated: r.GeneratedAt.Format(time.RFC3339),
		Target:    r.Options.TargetDir,
		Depth:     r.Options.depthLabel(),
		Unit:      r.Options.Unit,
		Sort:      r.Options.SortKey,
		Threshold: r.Options.SizeThreshold,
		Rows:      r.Rows,
		Total:     r.TotalSize,
	}

	var b strings.Builder
	if err := htmlTemplate.Execute(&b, data); err != nil {
		return "", fmt.Errorf("rendering html: %w", err)
	}
	return b.String(), nil
}

type jsonEntry struct {
	Size       int64   `json:"size"`
	Path       string  `json:"path"`
	Percentage float64 `json:"percentage"`
}

type jsonReport struct {
	GeneratedAt string      `json:"generated_at"`
	Target      string      `json:"target"`
	Unit        string      `json:"unit"`
	Entries     []jsonEntry `json:"entries"`
	TotalSpace  string      `json:"total_space"`
}

// renderJSON emits a single well-formed JSON document.
func (r *Report) renderJSON() (string, error) {
	doc := jsonReport{
		GeneratedAt: r.GeneratedAt.Format(time.RFC3339),
		Target:      r.Options.TargetDir,
		Unit:        r.Options.Unit,
		Entries:     make([]jsonEntry, 0, len(r.Rows)),
		TotalSpace:  fmt.Sprintf("%d %s", r.TotalSize, r.Options.Unit),
	}
	for _, row := range r.Rows {
		doc.Entries = append(doc.Entries, jsonEntry{Size: row.Size, Path: row.Path, Percentage: row.Percent})
	}

	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("rendering json: %w", err)
	}
	return string(out) + "\n", nil
}
