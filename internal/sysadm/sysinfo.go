package sysadm

import (
	"context"
	"fmt"

	"github.com/dustin/go-humanize"
	"golang.org/x/sys/unix"
)

// BlockDevices returns the lsblk listing.
func (m *Manager) BlockDevices(ctx context.Context) (string, error) {
	out, err := m.runner.Run(ctx, "", "lsblk", "-o", "NAME,SIZE,TYPE,FSTYPE,MOUNTPOINT")
	if err != nil {
		return "", fmt.Errorf("listing block devices: %w", err)
	}
	return string(out), nil
}

// Mounts returns the mount table.
func (m *Manager) Mounts(ctx context.Context) (string, error) {
	out, err := m.runner.Run(ctx, "", "mount")
	if err != nil {
		return "", fmt.Errorf("reading mount table: %w", err)
	}
	return string(out), nil
}

// IOStats returns extended I/O statistics.
func (m *Manager) IOStats(ctx context.Context) (string, error) {
	out, err := m.runner.Run(ctx, "", "iostat", "-x")
	if err != nil {
		return "", fmt.Errorf("reading io statistics: %w", err)
	}
	return string(out), nil
}

// statfs is swappable in tests.
var statfs = unix.Statfs

// DiskUsage is the result of a filesystem threshold check.
type DiskUsage struct {
	Path        string
	TotalBytes  uint64
	UsedBytes   uint64
	AvailBytes  uint64
	UsedPercent float64
	Threshold   float64
	Exceeded    bool
}

// String renders the check as a short human-readable summary.
func (d DiskUsage) String() string {
	state := "OK"
	if d.Exceeded {
		state = "EXCEEDED"
	}
	return fmt.Sprintf("%s: %s used of %s (%.1f%%, available %s) - threshold %.0f%% %s",
		d.Path,
		humanize.IBytes(d.UsedBytes),
		humanize.IBytes(d.TotalBytes),
		d.UsedPercent,
		humanize.IBytes(d.AvailBytes),
		d.Threshold,
		state,
	)
}

// CheckDiskThreshold reports usage of the filesystem containing path
// and whether it exceeds thresholdPercent. This reads statfs directly;
// no subprocess is involved.
func CheckDiskThreshold(path string, thresholdPercent float64) (DiskUsage, error) {
	var stat unix.Statfs_t
	if err := statfs(path, &stat); err != nil {
		return DiskUsage{}, fmt.Errorf("statfs %s: %w", path, err)
	}

	total := stat.Blocks * uint64(stat.Bsize)
	avail := stat.Bavail * uint64(stat.Bsize)
	used := total - avail

	usage := DiskUsage{
		Path:       path,
		TotalBytes: total,
		UsedBytes:  used,
		AvailBytes: avail,
		Threshold:  thresholdPercent,
	}
	if total > 0 {
		usage.UsedPercent = 100 * float64(used) / float64(total)
	}
	usage.Exceeded = usage.UsedPercent >= thresholdPercent
	return usage, nil
}
