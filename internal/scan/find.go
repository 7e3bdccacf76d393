package scan

import (
	"context"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
)

// FindFinder uses the find command to list recently modified files.
type FindFinder struct {
	findPath string
}

// NewFindFinder locates find on PATH.
func NewFindFinder() (*FindFinder, error) {
	findPath, err := exec.LookPath("find")
	if err != nil {
		return nil, fmt.Errorf("locating find: %w", err)
	}
	return &FindFinder{findPath: findPath}, nil
}

// Name returns the finder name.
func (f *FindFinder) Name() string {
	return "find"
}

// RecentFiles lists regular files under root modified within the last
// withinDays days. maxDepth bounds the search when positive.
func (f *FindFinder) RecentFiles(ctx context.Context, root string, maxDepth, withinDays int) ([]string, error) {
	args := []string{root}
	if maxDepth > 0 {
		args = append(args, "-maxdepth", strconv.Itoa(maxDepth))
	}
	args = append(args,
		"-type", "f",
		"-mtime", "-"+strconv.Itoa(withinDays),
	)

	cmd := exec.CommandContext(ctx, f.findPath, args...)
	output, err := cmd.Output()
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return nil, fmt.Errorf("find failed: %s", string(exitErr.Stderr))
		}
		return nil, fmt.Errorf("executing find: %w", err)
	}

	var paths []string
	for _, line := range strings.Split(string(output), "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		paths = append(paths, line)
	}
	return paths, nil
}
