/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/version-organizer/pkg/serializer"
	"github.com/NVIDIA/version-organizer/pkg/version"
)

// compatibility is the outcome of comparing two versions.
type compatibility struct {
	V1         string       `json:"v1" yaml:"v1" toml:"v1"`
	V2         string       `json:"v2" yaml:"v2" toml:"v2"`
	Mode       version.Mode `json:"mode" yaml:"mode" toml:"mode"`
	Compatible bool         `json:"compatible" yaml:"compatible" toml:"compatible"`
}

func compatCmd() *cli.Command {
	return &cli.Command{
		Name:                  "compat",
		EnableShellCompletion: true,
		Usage:                 "Check whether two versions fall in the same group",
		ArgsUsage:             "V1 V2",
		Description: `Compare two versions under a compatibility mode. Non-numeric versions are
compatible only when they are identical.

# Examples

  verorg compat 1.2.3 1.9.0            # compatible under major
  verorg compat --mode minor 1.2.3 1.3.0`,
		Flags: []cli.Flag{
			modeFlag(),
			formatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.NArg() != 2 {
				return fmt.Errorf("expected two versions, got %d", cmd.NArg())
			}
			format, err := parseOutputFormat(cmd)
			if err != nil {
				return err
			}
			engine, err := loadEngineOptions(cmd)
			if err != nil {
				return err
			}

			c := compatibility{
				V1:   version.Normalize(cmd.Args().Get(0)),
				V2:   version.Normalize(cmd.Args().Get(1)),
				Mode: engine.Mode,
			}
			c.Compatible = version.AreCompatible(c.V1, c.V2, c.Mode)

			w := cmd.Root().Writer
			switch format {
			case formatText:
				verdict := "incompatible"
				if c.Compatible {
					verdict = "compatible"
				}
				_, err = fmt.Fprintf(w, "%s and %s are %s under %s\n", c.V1, c.V2, verdict, c.Mode)
				return err
			default:
				return serializer.NewWriter(serializer.Format(format), w).Serialize(ctx, c)
			}
		},
	}
}
