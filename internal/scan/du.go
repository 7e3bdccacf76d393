package scan

import (
	"context"
	"fmt"
	"os/exec"
	"strconv"
)

// DuEnumerator uses the du command to measure disk usage.
type DuEnumerator struct {
	duPath string
}

// NewDuEnumerator locates du on PATH.
func NewDuEnumerator() (*DuEnumerator, error) {
	duPath, err := exec.LookPath("du")
	if err != nil {
		return nil, fmt.Errorf("locating du: %w", err)
	}
	return &DuEnumerator{duPath: duPath}, nil
}

// Name returns the enumerator name.
func (e *DuEnumerator) Name() string {
	return "du"
}

// Measure executes du over the requested root. Sizes are scaled to the
// requested block size and each line carries the entry's modification
// time (--time --time-style=long-iso).
func (e *DuEnumerator) Measure(ctx context.Context, req MeasureRequest) ([]Entry, error) {
	args := e.buildArgs(req)

	cmd := exec.CommandContext(ctx, e.duPath, args...)
	output, err := cmd.Output()
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return nil, fmt.Errorf("du failed: %s", string(exitErr.Stderr))
		}
		return nil, fmt.Errorf("executing du: %w", err)
	}

	return parseEntries(string(output))
}

// buildArgs assembles the du argument vector. Paths are passed as
// discrete arguments, never through a shell.
func (e *DuEnumerator) buildArgs(req MeasureRequest) []string {
	args := []string{
		"--block-size=1" + req.BlockSize,
		"--time",
		"--time-style=long-iso",
	}
	if req.MaxDepth > 0 {
		args = append(args, "--max-depth="+strconv.Itoa(req.MaxDepth))
	}
	for _, path := range req.Exclude {
		args = append(args, "--exclude="+path)
	}
	args = append(args, req.Root)
	return args
}

// MeasureFile measures a single path with du -s at the given block size.
func (e *DuEnumerator) MeasureFile(ctx context.Context, path, blockSize string) (Entry, error) {
	cmd := exec.CommandContext(ctx, e.duPath,
		"-s",
		"--block-size=1"+blockSize,
		"--time",
		"--time-style=long-iso",
		path,
	)
	output, err := cmd.Output()
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return Entry{}, fmt.Errorf("du failed: %s", string(exitErr.Stderr))
		}
		return Entry{}, fmt.Errorf("executing du: %w", err)
	}

	entries, err := parseEntries(string(output))
	if err != nil {
		return Entry{}, err
	}
	if len(entries) != 1 {
		return Entry{}, fmt.Errorf("expected one du entry for %s, got %d", path, len(entries))
	}
	return entries[0], nil
}
