package scan

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEntry(t *testing.T) {
	entry, err := parseEntry("142\t2026-08-20 14:02\t/var/log")
	require.NoError(t, err)

	assert.Equal(t, int64(142), entry.SizeUnits)
	assert.Equal(t, "/var/log", entry.Path)
	assert.Equal(t, time.Date(2026, 8, 20, 14, 2, 0, 0, time.Local), entry.ModTime)
}

func TestParseEntryPathWithSpaces(t *testing.T) {
	entry, err := parseEntry("7\t2026-01-02 03:04\t/home/bob/My Documents")
	require.NoError(t, err)
	assert.Equal(t, "/home/bob/My Documents", entry.Path)
}

func TestParseEntryMalformed(t *testing.T) {
	tests := []string{
		"",
		"/var/log",
		"abc\t2026-08-20 14:02\t/var/log",
		"142\tnot a date\t/var/log",
		"142 /var/log",
	}
	for _, line := range tests {
		_, err := parseEntry(line)
		assert.Error(t, err, "line %q", line)
	}
}

func TestParseEntries(t *testing.T) {
	output := "10\t2026-08-20 14:02\t/var/a\n30\t2026-08-21 09:30\t/var/b\n\n"

	entries, err := parseEntries(output)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "/var/a", entries[0].Path)
	assert.Equal(t, int64(30), entries[1].SizeUnits)
}

func TestParseEntriesPropagatesBadLine(t *testing.T) {
	_, err := parseEntries("10\t2026-08-20 14:02\t/var/a\ngarbage\n")
	assert.Error(t, err)
}

func TestDuBuildArgs(t *testing.T) {
	e := &DuEnumerator{duPath: "/usr/bin/du"}

	args := e.buildArgs(MeasureRequest{
		Root:      "/var",
		MaxDepth:  2,
		BlockSize: "M",
		Exclude:   []string{"/proc", "/sys"},
	})

	assert.Equal(t, []string{
		"--block-size=1M",
		"--time",
		"--time-style=long-iso",
		"--max-depth=2",
		"--exclude=/proc",
		"--exclude=/sys",
		"/var",
	}, args)
}

func TestDuBuildArgsUnlimitedDepth(t *testing.T) {
	e := &DuEnumerator{duPath: "/usr/bin/du"}

	args := e.buildArgs(MeasureRequest{Root: ".", BlockSize: "K"})

	assert.NotContains(t, args, "--max-depth=0")
	assert.Equal(t, ".", args[len(args)-1])
}
