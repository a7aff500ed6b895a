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
	"github.com/NVIDIA/version-organizer/pkg/report"
)

func scanCmd() *cli.Command {
	return &cli.Command{
		Name:                  "scan",
		EnableShellCompletion: true,
		Usage:                 "Classify files by version without moving anything",
		ArgsUsage:             "DIR",
		Description: `Walk DIR and report the version groups that organize would create.
No folders are created and no files are moved.

# Examples

  verorg scan --mode patch ./artifacts
  verorg scan --pattern 'build-(\d+)' --format yaml ./ci-output
  verorg scan --output groups.json ./artifacts`,
		Flags: append(engineFlags(), outputFlag(), metricsFileFlag()),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			source, err := sourceDir(cmd)
			if err != nil {
				return err
			}
			format, err := parseOutputFormat(cmd)
			if err != nil {
				return err
			}
			engine, err := loadEngineOptions(cmd)
			if err != nil {
				return err
			}

			res, scanErr := classifier.FromOptions(engine).Scan(ctx, source)
			if res == nil {
				return scanErr
			}
			if scanErr != nil && !apperrors.HasCode(scanErr, apperrors.ErrCodeCanceled) {
				return scanErr
			}

			warnOnErrors(res.Stats)
			summary := report.NewSummary(header.KindScanSummary, buildVersion, res, engine.Mode.String(), res.Stats,
				report.WithRunID(runIDFrom(ctx)),
				report.WithCanceled(scanErr != nil),
			)
			if err := emitReport(ctx, cmd.Root().Writer, format, res, res.Stats, summary); err != nil {
				return stderrors.Join(scanErr, err)
			}
			if err := writeSummaryFile(ctx, cmd.String("output"), summary); err != nil {
				return stderrors.Join(scanErr, err)
			}
			if err := writeMetricsFile(cmd.String("metrics-file")); err != nil {
				return stderrors.Join(scanErr, err)
			}
			return scanErr
		},
	}
}
