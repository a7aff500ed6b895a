/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/urfave/cli/v3"

	apperrors "github.com/NVIDIA/version-organizer/pkg/errors"
	"github.com/NVIDIA/version-organizer/pkg/logging"
)

const (
	name           = "verorg"
	versionDefault = "dev"
)

// Process exit codes.
const (
	exitOK       = 0
	exitFatal    = 1
	exitCanceled = 2
)

var (
	// overridden during build with ldflags
	buildVersion = versionDefault
	commit       = "unknown"
	date         = "unknown"
)

type runIDKey struct{}

// runIDFrom returns the run identifier installed by the root command.
func runIDFrom(ctx context.Context) string {
	if id, ok := ctx.Value(runIDKey{}).(string); ok {
		return id
	}
	return ""
}

// Execute runs the CLI with os.Args and exits the process with the
// resulting exit code. SIGINT and SIGTERM cancel the run between files.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cmd := newRootCmd()
	cmd.Writer = stdout
	cmd.ErrWriter = stderr

	err := cmd.Run(ctx, args)
	code := exitCode(err)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
	}
	return code
}

// exitCode maps a command error to the process exit code: cancellation is
// 2, every other error is fatal.
func exitCode(err error) int {
	switch {
	case err == nil:
		return exitOK
	case apperrors.HasCode(err, apperrors.ErrCodeCanceled),
		stderrors.Is(err, context.Canceled):
		return exitCanceled
	default:
		return exitFatal
	}
}

func newRootCmd() *cli.Command {
	return &cli.Command{
		Name:                  name,
		Usage:                 "Organize files into folders by the version in their names",
		Version:               fmt.Sprintf("%s (commit %s, built %s)", buildVersion, commit, date),
		EnableShellCompletion: true,
		Description: `verorg detects version identifiers such as "v1.2.3" or "release-4.5" in
file names, groups files by compatibility (exact, major, minor or patch) and
moves them into v<group> folders under a base folder.

Existing files are never overwritten: name collisions get a _1, _2, ...
suffix. Use --dry-run to preview every move without touching the disk.`,
		Flags: []cli.Flag{
			configFlag(),
			logLevelFlag(),
		},
		Before: initLogger,
		Commands: []*cli.Command{
			organizeCmd(),
			scanCmd(),
			extractCmd(),
			compatCmd(),
		},
	}
}

// initLogger configures slog after flags are parsed so --log-level takes
// effect before any command executes, and tags the run with an id.
func initLogger(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	level := cmd.String("log-level")
	logging.SetDefaultStructuredLoggerWithLevel(name, buildVersion, level)

	runID := uuid.NewString()
	slog.SetDefault(slog.Default().With("run_id", runID))
	slog.Debug("starting",
		"name", name,
		"version", buildVersion,
		"commit", commit,
		"date", date,
		"logLevel", level)

	return context.WithValue(ctx, runIDKey{}, runID), nil
}
