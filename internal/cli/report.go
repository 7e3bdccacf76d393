package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pmattila/hostadm/internal/report"
)

var (
	reportDepth     int
	reportUnit      string
	reportFormat    string
	reportSort      string
	reportThreshold int64
	reportModified  int
)

var reportCmd = &cobra.Command{
	Use:   "report [path]",
	Short: "Generate a disk usage report",
	Long: `Scan a directory and render a disk usage report.

Examples:
  hostadm report /var
  hostadm report /var --depth 2 --unit G --sort size_desc
  hostadm report /home --modified-within 7 --format csv
  hostadm report --threshold 100 --format html`,
	Args: cobra.MaximumNArgs(1),
	RunE: runReport,
}

func init() {
	reportCmd.Flags().IntVar(&reportDepth, "depth", 0, "max scan depth (0 = unlimited)")
	reportCmd.Flags().StringVar(&reportUnit, "unit", "", "size unit: K, M or G")
	reportCmd.Flags().StringVar(&reportFormat, "format", "", "output format: text, csv, html or json")
	reportCmd.Flags().StringVar(&reportSort, "sort", "", "sort key: name, size_asc, size_desc or mtime")
	reportCmd.Flags().Int64Var(&reportThreshold, "threshold", 0, "drop entries smaller than this many units")
	reportCmd.Flags().IntVar(&reportModified, "modified-within", 0, "only files modified within the last N days")
}

func runReport(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}

	target := "."
	if len(args) == 1 {
		target = args[0]
	}

	opts := report.Options{
		TargetDir:          target,
		MaxDepth:           reportDepth,
		Unit:               reportUnit,
		Format:             report.Format(reportFormat),
		SortKey:            report.SortKey(reportSort),
		SizeThreshold:      reportThreshold,
		ModifiedWithinDays: reportModified,
	}

	out, _, err := a.GenerateReport(cmd.Context(), opts)
	if err != nil {
		if errors.Is(err, report.ErrNoData) {
			return fmt.Errorf("no usage data for %s (empty scan or everything filtered out)", target)
		}
		return err
	}

	fmt.Print(out)
	return nil
}
