/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/NVIDIA/version-organizer/pkg/classifier"
	"github.com/NVIDIA/version-organizer/pkg/defaults"
	"github.com/NVIDIA/version-organizer/pkg/report"
	"github.com/NVIDIA/version-organizer/pkg/serializer"
	"github.com/NVIDIA/version-organizer/pkg/stats"
)

// emitReport writes the outcome of a run to w. Text and table render the
// human report; json, yaml and toml serialize summary.
func emitReport(ctx context.Context, w io.Writer, format string, res *classifier.Result, st stats.Stats, summary *report.Summary) error {
	switch format {
	case formatText:
		_, err := io.WriteString(w, report.Render(res.Groups, res.Records, st))
		return err
	case formatTable:
		_, err := io.WriteString(w, report.RenderTable(res.Groups, res.Records, st))
		return err
	default:
		return serializer.NewWriter(serializer.Format(format), w).Serialize(ctx, summary)
	}
}

// writeReportFile saves the plain text report to path.
func writeReportFile(path string, res *classifier.Result, st stats.Stats) error {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil
	}
	if err := os.WriteFile(path, []byte(report.Render(res.Groups, res.Records, st)), defaults.FilePerm); err != nil {
		return fmt.Errorf("failed to write report to %s: %w", path, err)
	}
	slog.Info("report written", "path", path)
	return nil
}

// writeSummaryFile serializes summary to path in the format implied by its
// extension.
func writeSummaryFile(ctx context.Context, path string, summary *report.Summary) (err error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil
	}
	w := serializer.NewFileWriterOrStdout(serializer.FormatFromPath(path), path)
	defer func() {
		if cerr := w.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close summary file %s: %w", path, cerr)
		}
	}()
	if err := w.Serialize(ctx, summary); err != nil {
		return fmt.Errorf("failed to write summary to %s: %w", path, err)
	}
	slog.Info("summary written", "path", path)
	return nil
}

// warnOnErrors logs a run that completed but skipped some files.
func warnOnErrors(st stats.Stats) {
	if st.HasErrors() {
		slog.Warn("run completed with per-file errors", "errors", st.Errors)
	}
}

// writeMetricsFile dumps the default registry in Prometheus text format,
// suitable for the node exporter textfile collector.
func writeMetricsFile(path string) error {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil
	}
	if err := prometheus.WriteToTextfile(path, prometheus.DefaultGatherer); err != nil {
		return fmt.Errorf("failed to write metrics to %s: %w", path, err)
	}
	slog.Debug("metrics written", "path", path)
	return nil
}
