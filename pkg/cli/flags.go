/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"fmt"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/version-organizer/pkg/config"
	"github.com/NVIDIA/version-organizer/pkg/defaults"
	"github.com/NVIDIA/version-organizer/pkg/serializer"
	"github.com/NVIDIA/version-organizer/pkg/version"
)

// Output formats accepted by --format.
const (
	formatText  = "text"
	formatTable = string(serializer.FormatTable)
	formatJSON  = string(serializer.FormatJSON)
	formatYAML  = string(serializer.FormatYAML)
	formatTOML  = string(serializer.FormatTOML)
)

// text is rendered by the report package, everything else by the serializer.
var supportedOutputFormats = append([]string{formatText}, serializer.SupportedFormats()...)

func configFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "config",
		Aliases: []string{"c"},
		Usage:   fmt.Sprintf("Path to a YAML, JSON or TOML config file (default: ./%s if present)", defaults.ConfigFileName),
		Sources: cli.EnvVars("VERORG_CONFIG"),
	}
}

func logLevelFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "log-level",
		Usage:   "Log level (debug, info, warn, error)",
		Value:   "info",
		Sources: cli.EnvVars("VERORG_LOG_LEVEL", "LOG_LEVEL"),
	}
}

func formatFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"t"},
		Usage:   fmt.Sprintf("Output format (%s)", strings.Join(supportedOutputFormats, ", ")),
		Value:   formatText,
		Sources: cli.EnvVars("VERORG_FORMAT"),
	}
}

func modeFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "mode",
		Aliases: []string{"m"},
		Usage:   fmt.Sprintf("Compatibility mode (%s)", strings.Join(version.SupportedModes(), ", ")),
		Sources: cli.EnvVars("VERORG_MODE"),
	}
}

func outputFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "Also write the run summary to this file, format taken from the extension (.json, .yaml, .toml)",
		Sources: cli.EnvVars("VERORG_OUTPUT"),
	}
}

func metricsFileFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "metrics-file",
		Usage:   "Write Prometheus metrics in text format to this file after the run",
		Sources: cli.EnvVars("VERORG_METRICS_FILE"),
	}
}

// engineFlags override config file values for the scan and organize commands.
func engineFlags() []cli.Flag {
	return []cli.Flag{
		modeFlag(),
		&cli.StringFlag{
			Name:    "base-folder",
			Aliases: []string{"b"},
			Usage:   fmt.Sprintf("Folder that receives the version groups (default: %s)", defaults.BaseFolder),
			Sources: cli.EnvVars("VERORG_BASE_FOLDER"),
		},
		&cli.BoolFlag{
			Name:    "exact-version",
			Usage:   "Name folders after the full normalized version instead of the group key",
			Sources: cli.EnvVars("VERORG_EXACT_VERSION"),
		},
		&cli.StringSliceFlag{
			Name:    "skip",
			Usage:   "Skip directories whose path contains this substring (can be repeated)",
			Sources: cli.EnvVars("VERORG_SKIP"),
		},
		&cli.StringSliceFlag{
			Name:    "pattern",
			Usage:   "Regex tried before the built-in patterns, at most one capture group (can be repeated)",
			Sources: cli.EnvVars("VERORG_PATTERN"),
		},
		formatFlag(),
	}
}

// parseOutputFormat validates --format.
func parseOutputFormat(cmd *cli.Command) (string, error) {
	f := strings.ToLower(strings.TrimSpace(cmd.String("format")))
	for _, s := range supportedOutputFormats {
		if f == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown output format: %q (must be one of %s)", f, strings.Join(supportedOutputFormats, ", "))
}

// loadEngineOptions reads the config file and applies flag overrides.
// Flags that are not set leave the file value untouched.
func loadEngineOptions(cmd *cli.Command) (config.Options, error) {
	f, err := config.Load(cmd.String("config"))
	if err != nil {
		return config.Options{}, err
	}

	if cmd.IsSet("mode") {
		f.Version.Compatibility.Mode = cmd.String("mode")
	}
	if cmd.IsSet("base-folder") {
		f.Organization.BaseFolder = cmd.String("base-folder")
	}
	if cmd.IsSet("exact-version") {
		f.Organization.GroupByExactVersion = cmd.Bool("exact-version")
	}
	if cmd.IsSet("skip") {
		f.Scan.SkipPatterns = cmd.StringSlice("skip")
	}
	if cmd.IsSet("pattern") {
		f.Version.FilenamePatterns = cmd.StringSlice("pattern")
	}

	return f.Options()
}

// sourceDir returns the single directory argument.
func sourceDir(cmd *cli.Command) (string, error) {
	if cmd.NArg() != 1 {
		return "", fmt.Errorf("expected exactly one directory argument, got %d", cmd.NArg())
	}
	return cmd.Args().First(), nil
}
