package sysadm

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"
)

func TestBlockDevices(t *testing.T) {
	runner := &fakeRunner{outputs: map[string][]byte{
		"lsblk": []byte("NAME SIZE TYPE FSTYPE MOUNTPOINT\nsda 100G disk\n"),
	}}
	m := newTestManager(t, runner)

	out, err := m.BlockDevices(context.Background())
	require.NoError(t, err)

	assert.Contains(t, out, "sda 100G disk")
	assert.Equal(t, []string{"-o", "NAME,SIZE,TYPE,FSTYPE,MOUNTPOINT"}, runner.calls[0].args)
}

func TestMounts(t *testing.T) {
	runner := &fakeRunner{outputs: map[string][]byte{
		"mount": []byte("/dev/sda1 on / type ext4 (rw)\n"),
	}}
	m := newTestManager(t, runner)

	out, err := m.Mounts(context.Background())
	require.NoError(t, err)
	assert.Contains(t, out, "ext4")
}

func TestIOStats(t *testing.T) {
	runner := &fakeRunner{outputs: map[string][]byte{
		"iostat": []byte("Device r/s w/s\nsda 1.0 2.0\n"),
	}}
	m := newTestManager(t, runner)

	out, err := m.IOStats(context.Background())
	require.NoError(t, err)

	assert.Contains(t, out, "sda")
	assert.Equal(t, []string{"-x"}, runner.calls[0].args)
}

func TestCheckDiskThreshold(t *testing.T) {
	orig := statfs
	defer func() { statfs = orig }()

	statfs = func(path string, stat *unix.Statfs_t) error {
		stat.Blocks = 1000
		stat.Bavail = 100
		stat.Bsize = 4096
		return nil
	}

	usage, err := CheckDiskThreshold("/", 80)
	require.NoError(t, err)

	assert.Equal(t, uint64(1000*4096), usage.TotalBytes)
	assert.Equal(t, uint64(100*4096), usage.AvailBytes)
	assert.Equal(t, uint64(900*4096), usage.UsedBytes)
	assert.InDelta(t, 90.0, usage.UsedPercent, 0.001)
	assert.True(t, usage.Exceeded)
	assert.Contains(t, usage.String(), "EXCEEDED")
}

func TestCheckDiskThresholdBelow(t *testing.T) {
	orig := statfs
	defer func() { statfs = orig }()

	statfs = func(path string, stat *unix.Statfs_t) error {
		stat.Blocks = 1000
		stat.Bavail = 600
		stat.Bsize = 4096
		return nil
	}

	usage, err := CheckDiskThreshold("/var", 80)
	require.NoError(t, err)

	assert.False(t, usage.Exceeded)
	assert.Contains(t, usage.String(), "OK")
}
