/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/version-organizer/pkg/serializer"
	"github.com/NVIDIA/version-organizer/pkg/version"
)

// extraction is the result of running the extraction chain on one name.
type extraction struct {
	Name       string         `json:"name" yaml:"name" toml:"name"`
	Found      bool           `json:"found" yaml:"found" toml:"found"`
	Raw        string         `json:"raw,omitempty" yaml:"raw,omitempty" toml:"raw,omitempty"`
	Normalized string         `json:"normalized,omitempty" yaml:"normalized,omitempty" toml:"normalized,omitempty"`
	Numeric    bool           `json:"numeric" yaml:"numeric" toml:"numeric"`
	GroupKey   string         `json:"group_key,omitempty" yaml:"group_key,omitempty" toml:"group_key,omitempty"`
	Source     version.Source `json:"source,omitempty" yaml:"source,omitempty" toml:"source,omitempty"`
	Pattern    string         `json:"pattern,omitempty" yaml:"pattern,omitempty" toml:"pattern,omitempty"`
}

func extractCmd() *cli.Command {
	return &cli.Command{
		Name:                  "extract",
		EnableShellCompletion: true,
		Usage:                 "Show the version detected in one or more file names",
		ArgsUsage:             "NAME...",
		Description: `Run the extraction chain on each NAME without touching the filesystem and
print the raw match, its normalized form, the group key and the pattern
that matched.

# Examples

  verorg extract app-v1.2.3.tar.gz release-20.04.iso notes.txt
  verorg extract --mode minor --format json tool-v2.0.1_old1.0.0.txt`,
		Flags: []cli.Flag{
			modeFlag(),
			&cli.StringSliceFlag{
				Name:  "pattern",
				Usage: "Regex tried before the built-in patterns (can be repeated)",
			},
			formatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.NArg() == 0 {
				return fmt.Errorf("expected at least one file name")
			}
			format, err := parseOutputFormat(cmd)
			if err != nil {
				return err
			}
			engine, err := loadEngineOptions(cmd)
			if err != nil {
				return err
			}

			results := make([]extraction, 0, cmd.NArg())
			for _, n := range cmd.Args().Slice() {
				results = append(results, extractOne(engine.Extractor, engine.Mode, n))
			}

			w := cmd.Root().Writer
			switch format {
			case formatText:
				return writeExtractionsText(w, results)
			case formatTable:
				return writeExtractionsTable(w, results)
			case formatTOML:
				// toml documents cannot have an array at the top level
				doc := struct {
					Extractions []extraction `toml:"extractions"`
				}{results}
				return serializer.NewWriter(serializer.FormatTOML, w).Serialize(ctx, doc)
			default:
				return serializer.NewWriter(serializer.Format(format), w).Serialize(ctx, results)
			}
		},
	}
}

func extractOne(ex *version.Extractor, m version.Mode, filename string) extraction {
	out := extraction{Name: filename}
	x, ok := ex.ExtractDetail(filename)
	if !ok {
		return out
	}
	out.Found = true
	out.Raw = x.Raw
	out.Normalized = version.Normalize(x.Raw)
	out.Numeric = version.IsNumeric(out.Normalized)
	out.GroupKey = version.GroupKey(out.Normalized, m)
	out.Source = x.Source
	out.Pattern = x.Pattern
	return out
}

func writeExtractionsText(w io.Writer, results []extraction) error {
	for _, r := range results {
		var err error
		if r.Found {
			_, err = fmt.Fprintf(w, "%s: raw=%s normalized=%s group=%s (%s %s)\n",
				r.Name, r.Raw, r.Normalized, r.GroupKey, r.Source, r.Pattern)
		} else {
			_, err = fmt.Fprintf(w, "%s: no version\n", r.Name)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func writeExtractionsTable(w io.Writer, results []extraction) error {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"Name", "Raw", "Normalized", "Group", "Source", "Pattern"})
	for _, r := range results {
		if !r.Found {
			tw.AppendRow(table.Row{r.Name, "-", "-", "-", "-", "-"})
			continue
		}
		tw.AppendRow(table.Row{r.Name, r.Raw, r.Normalized, r.GroupKey, string(r.Source), r.Pattern})
	}
	_, err := io.WriteString(w, tw.Render()+"\n")
	return err
}
