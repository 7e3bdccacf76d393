// Package app wires the toolkit's components together for the CLI and
// the interactive menu.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/pmattila/hostadm/internal/config"
	"github.com/pmattila/hostadm/internal/report"
	"github.com/pmattila/hostadm/internal/scan"
	"github.com/pmattila/hostadm/internal/sysadm"
)

// App holds the configured toolkit components.
type App struct {
	Cfg    *config.Config
	Gen    *report.Generator
	Mgr    *sysadm.Manager
	Logger *slog.Logger
}

// New builds an App from configuration: du/find adapters, the report
// generator and the account manager.
func New(cfg *config.Config, logger *slog.Logger) (*App, error) {
	enum, err := scan.NewDuEnumerator()
	if err != nil {
		return nil, err
	}
	finder, err := scan.NewFindFinder()
	if err != nil {
		return nil, err
	}

	gen := report.NewGenerator(enum, enum, finder, report.Config{
		DefaultUnit:   cfg.Report.Unit,
		DefaultFormat: report.Format(cfg.Report.Format),
		DefaultSort:   report.SortKey(cfg.Report.Sort),
		Exclude:       cfg.Report.Exclude,
	}, logger)

	mgr := sysadm.NewManager(nil, cfg.Accounts.ArchiveDir, logger)

	return &App{Cfg: cfg, Gen: gen, Mgr: mgr, Logger: logger}, nil
}

// GenerateReport runs one report generation and returns the rendered
// blob plus any degradation warnings.
func (a *App) GenerateReport(ctx context.Context, opts report.Options) (string, []string, error) {
	rep, err := a.Gen.Generate(ctx, opts)
	if err != nil {
		return "", nil, err
	}
	out, err := rep.Render()
	if err != nil {
		return "", rep.Warnings, err
	}
	return out, rep.Warnings, nil
}

// AddUser creates an account and returns a confirmation message.
func (a *App) AddUser(ctx context.Context, opts sysadm.AddUserOptions) (string, error) {
	if err := a.Mgr.AddUser(ctx, opts); err != nil {
		return "", err
	}
	return fmt.Sprintf("user %s created\n", opts.Username), nil
}

// DeleteUser removes an account and returns a confirmation message.
func (a *App) DeleteUser(ctx context.Context, opts sysadm.DeleteUserOptions) (string, error) {
	archive, err := a.Mgr.DeleteUser(ctx, opts)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	fmt.Fprintf(&b, "user %s deleted\n", opts.Username)
	if archive != "" {
		fmt.Fprintf(&b, "home archived to %s\n", archive)
	}
	return b.String(), nil
}

// UserInfo returns account details for username.
func (a *App) UserInfo(ctx context.Context, username string) (string, error) {
	return a.Mgr.UserInfo(ctx, username)
}

// BlockDevices returns the block device listing.
func (a *App) BlockDevices(ctx context.Context) (string, error) {
	return a.Mgr.BlockDevices(ctx)
}

// Mounts returns the mount table.
func (a *App) Mounts(ctx context.Context) (string, error) {
	return a.Mgr.Mounts(ctx)
}

// IOStats returns I/O statistics.
func (a *App) IOStats(ctx context.Context) (string, error) {
	return a.Mgr.IOStats(ctx)
}

// DiskThreshold checks filesystem usage at path against the configured
// threshold.
func (a *App) DiskThreshold(ctx context.Context, path string) (string, error) {
	if path == "" {
		path = "/"
	}
	usage, err := sysadm.CheckDiskThreshold(path, a.Cfg.Disk.ThresholdPercent)
	if err != nil {
		return "", err
	}
	return usage.String() + "\n", nil
}
