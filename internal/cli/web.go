package cli

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/katalvlaran/lvkit/jsonx"
	"github.com/katalvlaran/lvkit/seo"
	"github.com/katalvlaran/lvkit/sysinfo"
)

func sysinfoCmd(a *app) *cobra.Command {
	var asJSON bool
	var disk string
	cmd := &cobra.Command{
		Use:   "sysinfo",
		Short: "Show host, CPU, memory, disk and load information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := a.context(cmd)
			defer cancel()
			var opts []sysinfo.Option
			if disk != "" {
				opts = append(opts, sysinfo.WithDiskPath(disk))
			}
			info, err := sysinfo.Snapshot(ctx, opts...)
			if err != nil {
				if !errors.Is(err, sysinfo.ErrProbe) {
					return err
				}
				a.log.Warn("partial system information", zap.Error(err))
			}
			if asJSON {
				out, err := jsonx.Marshal(info, indent(a.cfg.Indent))
				if err != nil {
					return err
				}
				printf(cmd, "%s\n", out)
				return nil
			}
			user, _ := sysinfo.User()
			printf(cmd, "host      %s (%s)\n", info.Hostname, user)
			printf(cmd, "os        %s/%s %s %s, kernel %s\n", info.OS, info.Arch, info.Platform, info.PlatformVersion, info.Kernel)
			printf(cmd, "uptime    %s (since %s)\n", info.Uptime.Truncate(time.Second), humanize.Time(info.BootTime))
			printf(cmd, "cpu       %s, %d cores / %d threads\n", info.CPUModel, info.CPUPhysical, info.CPULogical)
			printf(cmd, "memory    %s of %s used (%.1f%%)\n", humanize.IBytes(info.MemoryUsed), humanize.IBytes(info.MemoryTotal), info.MemoryPct)
			printf(cmd, "disk      %s of %s used on %s (%.1f%%)\n", humanize.IBytes(info.DiskUsed), humanize.IBytes(info.DiskTotal), info.DiskPath, info.DiskPct)
			printf(cmd, "load      %.2f %.2f %.2f\n", info.Load1, info.Load5, info.Load15)
			printf(cmd, "go        %s, %d goroutines\n", info.GoVersion, info.Goroutines)
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON")
	cmd.Flags().StringVar(&disk, "disk", "", "filesystem path to measure (default / or the system drive)")
	return cmd
}

func seoCmd(a *app) *cobra.Command {
	var perSecond float64
	var workers int
	client := func() (*seo.Client, error) {
		if workers <= 0 {
			return nil, fmt.Errorf("--workers must be positive, got %d", workers)
		}
		opts := []seo.Option{
			seo.WithLogger(a.log),
			seo.WithTimeout(a.cfg.Timeout),
			seo.WithRate(rate.Limit(perSecond), max(1, int(perSecond))),
			seo.WithWorkers(workers),
		}
		if a.cfg.UserAgent != "" {
			opts = append(opts, seo.WithUserAgent(a.cfg.UserAgent))
		}
		return seo.NewClient(opts...), nil
	}

	cmd := &cobra.Command{
		Use:   "seo",
		Short: "Inspect page metadata and sitemaps",
	}
	cmd.PersistentFlags().Float64Var(&perSecond, "rate", 2, "requests per second (0 for unlimited)")
	cmd.PersistentFlags().IntVarP(&workers, "workers", "j", 4, "parallel fetches")

	meta := &cobra.Command{
		Use:   "meta URL...",
		Short: "Fetch pages and print their SEO metadata as JSON",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := a.context(cmd)
			defer cancel()
			c, err := client()
			if err != nil {
				return err
			}
			results, err := c.FetchAll(ctx, args)
			type row struct {
				URL   string    `json:"url"`
				Meta  *seo.Meta `json:"meta,omitempty"`
				Error string    `json:"error,omitempty"`
			}
			rows := make([]row, len(results))
			for i, r := range results {
				rows[i].URL = r.URL
				if r.Err != nil {
					rows[i].Error = r.Err.Error()
				} else {
					rows[i].Meta = &results[i].Meta
				}
			}
			out, merr := jsonx.Marshal(rows, indent(a.cfg.Indent))
			if merr != nil {
				return merr
			}
			printf(cmd, "%s\n", out)
			return err
		},
	}

	sitemap := &cobra.Command{
		Use:   "sitemap URL",
		Short: "List the page URLs of a sitemap, following sitemap indexes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := a.context(cmd)
			defer cancel()
			c, err := client()
			if err != nil {
				return err
			}
			pages, err := c.Sitemap(ctx, args[0])
			if err != nil {
				return err
			}
			for _, p := range pages {
				printf(cmd, "%s\n", strings.TrimSpace(p.Loc))
			}
			a.log.Debug("sitemap read", zap.String("url", args[0]), zap.Int("pages", len(pages)))
			return nil
		},
	}

	cmd.AddCommand(meta, sitemap)
	return cmd
}
