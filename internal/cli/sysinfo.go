package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pmattila/hostadm/internal/sysadm"
)

var thresholdPercent float64

var sysinfoCmd = &cobra.Command{
	Use:   "sysinfo",
	Short: "Show system information",
}

var blockdevCmd = &cobra.Command{
	Use:   "blockdev",
	Short: "List block devices",
	RunE:  runBlockdev,
}

var mountsCmd = &cobra.Command{
	Use:   "mounts",
	Short: "Show mounted filesystems",
	RunE:  runMounts,
}

var iostatCmd = &cobra.Command{
	Use:   "iostat",
	Short: "Show device I/O statistics",
	RunE:  runIostat,
}

var thresholdCmd = &cobra.Command{
	Use:   "threshold [path]",
	Short: "Check filesystem usage against a threshold",
	Long: `Check usage of the filesystem containing path (default /) against a
percentage threshold.

Examples:
  hostadm sysinfo threshold
  hostadm sysinfo threshold /var --percent 90`,
	Args: cobra.MaximumNArgs(1),
	RunE: runThreshold,
}

func init() {
	thresholdCmd.Flags().Float64Var(&thresholdPercent, "percent", 0, "usage threshold percentage (default from config)")

	sysinfoCmd.AddCommand(blockdevCmd)
	sysinfoCmd.AddCommand(mountsCmd)
	sysinfoCmd.AddCommand(iostatCmd)
	sysinfoCmd.AddCommand(thresholdCmd)
}

func runBlockdev(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	out, err := a.BlockDevices(cmd.Context())
	if err != nil {
		return err
	}
	fmt.Print(out)
	return nil
}

func runMounts(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	out, err := a.Mounts(cmd.Context())
	if err != nil {
		return err
	}
	fmt.Print(out)
	return nil
}

func runIostat(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	out, err := a.IOStats(cmd.Context())
	if err != nil {
		return err
	}
	fmt.Print(out)
	return nil
}

func runThreshold(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}

	path := "/"
	if len(args) == 1 {
		path = args[0]
	}

	percent := a.Cfg.Disk.ThresholdPercent
	if cmd.Flags().Changed("percent") {
		percent = thresholdPercent
	}

	usage, err := sysadm.CheckDiskThreshold(path, percent)
	if err != nil {
		return err
	}

	fmt.Println(usage.String())
	return nil
}
