/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	stderrors "errors"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/version-organizer/pkg/classifier"
	apperrors "github.com/NVIDIA/version-organizer/pkg/errors"
	"github.com/NVIDIA/version-organizer/pkg/header"
	"github.com/NVIDIA/version-organizer/pkg/relocator"
	"github.com/NVIDIA/version-organizer/pkg/report"
)

// organizeCmdOptions holds parsed options for the organize command.
type organizeCmdOptions struct {
	source      string
	format      string
	dryRun      bool
	reportPath  string
	outputPath  string
	metricsPath string
}

// parseOrganizeCmdOptions parses and validates command options.
func parseOrganizeCmdOptions(cmd *cli.Command) (*organizeCmdOptions, error) {
	source, err := sourceDir(cmd)
	if err != nil {
		return nil, err
	}
	format, err := parseOutputFormat(cmd)
	if err != nil {
		return nil, err
	}
	return &organizeCmdOptions{
		source:      source,
		format:      format,
		dryRun:      cmd.Bool("dry-run"),
		reportPath:  cmd.String("report"),
		outputPath:  cmd.String("output"),
		metricsPath: cmd.String("metrics-file"),
	}, nil
}

func organizeCmd() *cli.Command {
	flags := append(engineFlags(),
		&cli.BoolFlag{
			Name:    "dry-run",
			Aliases: []string{"n"},
			Usage:   "Resolve and report every move without changing the filesystem",
			Sources: cli.EnvVars("VERORG_DRY_RUN"),
		},
		&cli.StringFlag{
			Name:  "report",
			Usage: "Also write the text report to this file",
		},
		outputFlag(),
		metricsFileFlag(),
	)

	return &cli.Command{
		Name:                  "organize",
		EnableShellCompletion: true,
		Usage:                 "Move versioned files into v<group> folders",
		ArgsUsage:             "DIR",
		Description: `Scan DIR, detect the version in every file name and move each versioned
file to <base-folder>/v<group>/<name>. Files without a version stay where
they are.

# Examples

Preview a major-version layout:
  verorg organize --dry-run ./downloads

Group by minor version into ./releases, skipping VCS folders:
  verorg organize --mode minor --base-folder ./releases --skip .git ./downloads

Capture a machine readable summary:
  verorg organize --format json ./downloads > summary.json
  verorg organize --output summary.toml ./downloads`,
		Flags: flags,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			opts, err := parseOrganizeCmdOptions(cmd)
			if err != nil {
				return err
			}
			engine, err := loadEngineOptions(cmd)
			if err != nil {
				return err
			}

			res, scanErr := classifier.FromOptions(engine).Scan(ctx, opts.source)
			if res == nil {
				return scanErr
			}

			st := res.Stats
			var runErr error
			if scanErr != nil {
				runErr = scanErr
			} else {
				moved, orgErr := relocator.New(relocator.Options{
					BaseFolder:          engine.BaseFolder,
					DryRun:              opts.dryRun,
					GroupByExactVersion: engine.GroupByExactVersion,
				}).Organize(ctx, res.Records, res.Groups)
				st = st.Add(moved)
				runErr = orgErr
			}

			// a held lock or bad base folder leaves nothing worth reporting
			if runErr != nil && !apperrors.HasCode(runErr, apperrors.ErrCodeCanceled) {
				return runErr
			}

			warnOnErrors(st)
			summary := report.NewSummary(header.KindOrganizeSummary, buildVersion, res, engine.Mode.String(), st,
				report.WithRunID(runIDFrom(ctx)),
				report.WithBaseFolder(engine.BaseFolder, opts.dryRun),
				report.WithCanceled(runErr != nil),
			)
			if err := emitReport(ctx, cmd.Root().Writer, opts.format, res, st, summary); err != nil {
				return stderrors.Join(runErr, err)
			}
			if err := writeReportFile(opts.reportPath, res, st); err != nil {
				return stderrors.Join(runErr, err)
			}
			if err := writeSummaryFile(ctx, opts.outputPath, summary); err != nil {
				return stderrors.Join(runErr, err)
			}
			if err := writeMetricsFile(opts.metricsPath); err != nil {
				return stderrors.Join(runErr, err)
			}
			return runErr
		},
	}
}
