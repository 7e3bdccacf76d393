package sysadm

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Manager wraps the host's account management and system information
// tools. All commands go through the Runner seam.
type Manager struct {
	runner     Runner
	logger     *slog.Logger
	archiveDir string
	newID      func() string
}

// NewManager creates a Manager. archiveDir is where home directories
// are archived before deletion.
func NewManager(runner Runner, archiveDir string, logger *slog.Logger) *Manager {
	if runner == nil {
		runner = ExecRunner{}
	}
	return &Manager{
		runner:     runner,
		logger:     logger,
		archiveDir: archiveDir,
		newID:      func() string { return uuid.New().String() },
	}
}

// AddUserOptions describes one account creation.
type AddUserOptions struct {
	Username   string
	FullName   string
	Password   string
	CreateHome bool
}

// AddUser creates the account with useradd and, when a password is
// given, sets it via chpasswd on stdin so it never appears on argv.
func (m *Manager) AddUser(ctx context.Context, opts AddUserOptions) error {
	if opts.Username == "" {
		return fmt.Errorf("username is required")
	}

	var args []string
	if opts.CreateHome {
		args = append(args, "-m")
	}
	if opts.FullName != "" {
		args = append(args, "-c", opts.FullName)
	}
	args = append(args, opts.Username)

	if _, err := m.runner.Run(ctx, "", "useradd", args...); err != nil {
		return fmt.Errorf("creating user %s: %w", opts.Username, err)
	}

	if opts.Password != "" {
		stdin := opts.Username + ":" + opts.Password + "\n"
		if _, err := m.runner.Run(ctx, stdin, "chpasswd"); err != nil {
			return fmt.Errorf("setting password for %s: %w", opts.Username, err)
		}
	}

	m.logger.Info("user created", "username", opts.Username, "home", opts.CreateHome)
	return nil
}

// DeleteUserOptions describes one account deletion.
type DeleteUserOptions struct {
	Username    string
	RemoveHome  bool
	ArchiveHome bool
}

// DeleteUser removes the account, optionally archiving the home
// directory first. It returns the archive path when one was written.
func (m *Manager) DeleteUser(ctx context.Context, opts DeleteUserOptions) (string, error) {
	if opts.Username == "" {
		return "", fmt.Errorf("username is required")
	}

	var archivePath string
	if opts.ArchiveHome {
		var err error
		archivePath, err = m.archiveHome(ctx, opts.Username)
		if err != nil {
			return "", fmt.Errorf("archiving home of %s: %w", opts.Username, err)
		}
		m.logger.Info("home archived", "username", opts.Username, "archive", archivePath)
	}

	var args []string
	if opts.RemoveHome {
		args = append(args, "-r")
	}
	args = append(args, opts.Username)

	if _, err := m.runner.Run(ctx, "", "userdel", args...); err != nil {
		return archivePath, fmt.Errorf("deleting user %s: %w", opts.Username, err)
	}

	m.logger.Info("user deleted", "username", opts.Username, "removed_home", opts.RemoveHome)
	return archivePath, nil
}

// archiveHome tars the user's home directory into the archive dir.
func (m *Manager) archiveHome(ctx context.Context, username string) (string, error) {
	if err := os.MkdirAll(m.archiveDir, 0o750); err != nil {
		return "", fmt.Errorf("creating archive directory: %w", err)
	}

	archivePath := filepath.Join(m.archiveDir, fmt.Sprintf("%s-%s.tar.gz", username, m.newID()))
	_, err := m.runner.Run(ctx, "", "tar", "-czf", archivePath, "-C", "/home", username)
	if err != nil {
		return "", err
	}
	return archivePath, nil
}

// UserInfo returns the id output and passwd entry for username.
func (m *Manager) UserInfo(ctx context.Context, username string) (string, error) {
	if username == "" {
		return "", fmt.Errorf("username is required")
	}

	idOut, err := m.runner.Run(ctx, "", "id", username)
	if err != nil {
		return "", fmt.Errorf("looking up %s: %w", username, err)
	}

	passwdOut, err := m.runner.Run(ctx, "", "getent", "passwd", username)
	if err != nil {
		return "", fmt.Errorf("reading passwd entry for %s: %w", username, err)
	}

	var b strings.Builder
	b.WriteString(strings.TrimSpace(string(idOut)))
	b.WriteString("\n")
	b.WriteString(strings.TrimSpace(string(passwdOut)))
	b.WriteString("\n")
	return b.String(), nil
}
