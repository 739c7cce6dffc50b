package sysinfo_test

import (
	"context"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvkit/sysinfo"
)

func TestSnapshot(t *testing.T) {
	info, err := sysinfo.Snapshot(context.Background(), sysinfo.WithDiskPath(t.TempDir()))
	if err != nil {
		// Sandboxes may hide /proc entries; partial results are still returned.
		assert.ErrorIs(t, err, sysinfo.ErrProbe)
	}
	assert.Equal(t, runtime.GOOS, info.OS)
	assert.Equal(t, runtime.GOARCH, info.Arch)
	assert.Equal(t, runtime.Version(), info.GoVersion)
	assert.GreaterOrEqual(t, info.CPULogical, 1)
	assert.Positive(t, info.Goroutines)
	if info.DiskTotal > 0 {
		assert.LessOrEqual(t, info.DiskUsed, info.DiskTotal)
	}
}

func TestSnapshotCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	info, err := sysinfo.Snapshot(ctx, sysinfo.WithoutLoad())
	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, runtime.GOOS, info.OS)
	assert.Zero(t, info.MemoryTotal)
}

func TestPlatform(t *testing.T) {
	assert.Equal(t, runtime.GOOS == "linux", sysinfo.IsLinux())
	assert.Equal(t, runtime.GOOS == "windows", sysinfo.IsWindows())
	assert.Equal(t, runtime.GOOS == "darwin", sysinfo.IsMac())
	assert.Panics(t, func() { sysinfo.WithDiskPath("") })
}

func TestUser(t *testing.T) {
	t.Setenv("USER", "lvkit")
	name, err := sysinfo.User()
	require.NoError(t, err)
	assert.NotEmpty(t, name)
}
