// Package sysinfo reports facts about the host the process runs on:
// operating system, kernel, uptime, CPU, memory, disk and load. Probes
// are backed by github.com/shirou/gopsutil/v3.
package sysinfo

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/user"
	"runtime"
	"time"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/disk"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/load"
	"github.com/shirou/gopsutil/v3/mem"
)

// ErrProbe wraps the failure of an individual probe. Snapshot still
// returns every field it could collect.
var ErrProbe = errors.New("sysinfo: probe failed")

// Info is a point-in-time view of the host.
type Info struct {
	Hostname        string        `json:"hostname"`
	OS              string        `json:"os"`
	Arch            string        `json:"arch"`
	Platform        string        `json:"platform"`
	PlatformVersion string        `json:"platform_version"`
	Kernel          string        `json:"kernel"`
	Uptime          time.Duration `json:"uptime"`
	BootTime        time.Time     `json:"boot_time"`

	CPUModel    string `json:"cpu_model"`
	CPUPhysical int    `json:"cpu_physical"`
	CPULogical  int    `json:"cpu_logical"`

	MemoryTotal uint64  `json:"memory_total"`
	MemoryUsed  uint64  `json:"memory_used"`
	MemoryFree  uint64  `json:"memory_available"`
	MemoryPct   float64 `json:"memory_used_percent"`

	DiskPath  string  `json:"disk_path"`
	DiskTotal uint64  `json:"disk_total"`
	DiskUsed  uint64  `json:"disk_used"`
	DiskFree  uint64  `json:"disk_free"`
	DiskPct   float64 `json:"disk_used_percent"`

	Load1  float64 `json:"load1"`
	Load5  float64 `json:"load5"`
	Load15 float64 `json:"load15"`

	GoVersion  string `json:"go_version"`
	Goroutines int    `json:"goroutines"`
}

// Options selects what Snapshot measures.
type Options struct {
	DiskPath string
	SkipLoad bool
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions measures the root filesystem (the system drive on
// Windows) and collects load averages where the platform has them.
func DefaultOptions() Options {
	o := Options{DiskPath: "/"}
	if IsWindows() {
		drive := os.Getenv("SystemDrive")
		if drive == "" {
			drive = "C:"
		}
		o.DiskPath = drive + `\`
		o.SkipLoad = true
	}
	return o
}

// WithDiskPath measures the filesystem holding path. Panics on "".
func WithDiskPath(path string) Option {
	if path == "" {
		panic("sysinfo: empty disk path")
	}
	return func(o *Options) { o.DiskPath = path }
}

// WithoutLoad skips load averages.
func WithoutLoad() Option {
	return func(o *Options) { o.SkipLoad = true }
}

// Snapshot collects an Info. Probe failures are joined into the returned
// error, each wrapping ErrProbe; a cancelled ctx aborts before probing.
func Snapshot(ctx context.Context, opts ...Option) (Info, error) {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	s := Info{
		OS:         runtime.GOOS,
		Arch:       runtime.GOARCH,
		GoVersion:  runtime.Version(),
		Goroutines: runtime.NumGoroutine(),
		DiskPath:   o.DiskPath,
	}
	if err := ctx.Err(); err != nil {
		return s, err
	}

	var errs []error
	fail := func(probe string, err error) {
		errs = append(errs, fmt.Errorf("%w: %s: %w", ErrProbe, probe, err))
	}

	if hi, err := host.InfoWithContext(ctx); err != nil {
		fail("host", err)
	} else {
		s.Hostname = hi.Hostname
		s.Platform = hi.Platform
		s.PlatformVersion = hi.PlatformVersion
		s.Kernel = hi.KernelVersion
		s.Uptime = time.Duration(hi.Uptime) * time.Second
		s.BootTime = time.Unix(int64(hi.BootTime), 0).UTC()
	}
	if s.Hostname == "" {
		s.Hostname, _ = os.Hostname()
	}

	if n, err := cpu.CountsWithContext(ctx, true); err != nil {
		fail("cpu", err)
	} else {
		s.CPULogical = n
	}
	// Physical counts are unavailable in some containers; not an error.
	if n, err := cpu.CountsWithContext(ctx, false); err == nil {
		s.CPUPhysical = n
	}
	if infos, err := cpu.InfoWithContext(ctx); err == nil && len(infos) > 0 {
		s.CPUModel = infos[0].ModelName
	}
	if s.CPULogical == 0 {
		s.CPULogical = runtime.NumCPU()
	}

	if vm, err := mem.VirtualMemoryWithContext(ctx); err != nil {
		fail("memory", err)
	} else {
		s.MemoryTotal, s.MemoryUsed, s.MemoryFree, s.MemoryPct = vm.Total, vm.Used, vm.Available, vm.UsedPercent
	}

	if du, err := disk.UsageWithContext(ctx, o.DiskPath); err != nil {
		fail("disk", err)
	} else {
		s.DiskTotal, s.DiskUsed, s.DiskFree, s.DiskPct = du.Total, du.Used, du.Free, du.UsedPercent
	}

	if !o.SkipLoad {
		if avg, err := load.AvgWithContext(ctx); err != nil {
			fail("load", err)
		} else {
			s.Load1, s.Load5, s.Load15 = avg.Load1, avg.Load5, avg.Load15
		}
	}

	return s, errors.Join(errs...)
}

// IsWindows reports whether the process runs on Windows.
func IsWindows() bool { return runtime.GOOS == "windows" }

// IsLinux reports whether the process runs on Linux.
func IsLinux() bool { return runtime.GOOS == "linux" }

// IsMac reports whether the process runs on macOS.
func IsMac() bool { return runtime.GOOS == "darwin" }

// User returns the login name of the current user, falling back to
// $USER / $USERNAME when the user database is unavailable.
func User() (string, error) {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username, nil
	}
	for _, k := range []string{"USER", "USERNAME"} {
		if v := os.Getenv(k); v != "" {
			return v, nil
		}
	}
	return "", fmt.Errorf("%w: current user", ErrProbe)
}
