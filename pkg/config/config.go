// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"regexp"
	"strings"

	"github.com/NVIDIA/version-organizer/pkg/defaults"
	apperrors "github.com/NVIDIA/version-organizer/pkg/errors"
	"github.com/NVIDIA/version-organizer/pkg/serializer"
	"github.com/NVIDIA/version-organizer/pkg/version"
)

// File mirrors the on-disk configuration document.
type File struct {
	Version      VersionSection      `json:"version" yaml:"version" toml:"version"`
	Organization OrganizationSection `json:"organization" yaml:"organization" toml:"organization"`
	Scan         ScanSection         `json:"scan" yaml:"scan" toml:"scan"`
}

// VersionSection configures extraction and grouping.
type VersionSection struct {
	FilenamePatterns []string             `json:"filename_patterns,omitempty" yaml:"filename_patterns,omitempty" toml:"filename_patterns,omitempty"`
	Compatibility    CompatibilitySection `json:"compatibility" yaml:"compatibility" toml:"compatibility"`
}

// CompatibilitySection holds the grouping granularity.
type CompatibilitySection struct {
	Mode string `json:"mode" yaml:"mode" toml:"mode"`
}

// OrganizationSection configures relocation.
type OrganizationSection struct {
	BaseFolder          string `json:"base_folder" yaml:"base_folder" toml:"base_folder"`
	GroupByExactVersion bool   `json:"group_by_exact_version" yaml:"group_by_exact_version" toml:"group_by_exact_version"`
}

// ScanSection configures the directory walk.
type ScanSection struct {
	SkipPatterns []string `json:"skip_patterns,omitempty" yaml:"skip_patterns,omitempty" toml:"skip_patterns,omitempty"`
}

// Options is the validated, typed form of File consumed by the engine.
type Options struct {
	Mode                version.Mode
	Extractor           *version.Extractor
	Patterns            []string
	BaseFolder          string
	GroupByExactVersion bool
	SkipPatterns        []string
}

// Default returns the built-in configuration.
func Default() File {
	return File{
		Version: VersionSection{
			Compatibility: CompatibilitySection{Mode: defaults.CompatibilityMode},
		},
		Organization: OrganizationSection{
			BaseFolder: defaults.BaseFolder,
		},
	}
}

// Load reads the configuration at path. An empty path looks for
// defaults.ConfigFileName in the working directory and falls back to
// Default when it does not exist. Keys missing from the file keep their
// default values.
func Load(path string) (File, error) {
	explicit := strings.TrimSpace(path) != ""
	if !explicit {
		path = defaults.ConfigFileName
	}

	if _, err := os.Stat(path); err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			slog.Debug("no config file found, using defaults", "path", path)
			return Default(), nil
		}
		return File{}, apperrors.WrapWithContext(apperrors.ErrCodeInvalidConfig,
			"cannot read config file", err, map[string]any{"path": path})
	}

	loaded, err := serializer.FromFile[File](path)
	if err != nil {
		return File{}, apperrors.WrapWithContext(apperrors.ErrCodeInvalidConfig,
			"cannot parse config file", err, map[string]any{"path": path})
	}

	f := *loaded
	f.applyDefaults()
	slog.Debug("config loaded", "path", path, "mode", f.Version.Compatibility.Mode,
		"base_folder", f.Organization.BaseFolder)
	return f, nil
}

func (f *File) applyDefaults() {
	if strings.TrimSpace(f.Version.Compatibility.Mode) == "" {
		f.Version.Compatibility.Mode = defaults.CompatibilityMode
	}
	if strings.TrimSpace(f.Organization.BaseFolder) == "" {
		f.Organization.BaseFolder = defaults.BaseFolder
	}
}

// Options validates f and translates it into engine options. All
// validation happens here; the engine never re-checks these values.
func (f File) Options() (Options, error) {
	mode, err := version.ParseMode(f.Version.Compatibility.Mode)
	if err != nil {
		return Options{}, invalid("version.compatibility.mode", err)
	}

	for i, p := range f.Version.FilenamePatterns {
		re, err := regexp.Compile(p)
		if err != nil {
			return Options{}, invalid(fmt.Sprintf("version.filename_patterns[%d]", i), err)
		}
		if re.NumSubexp() > 1 {
			return Options{}, invalid(fmt.Sprintf("version.filename_patterns[%d]", i),
				fmt.Errorf("pattern %q has %d capture groups, at most 1 is allowed", p, re.NumSubexp()))
		}
	}

	extractor, err := version.NewExtractor(f.Version.FilenamePatterns...)
	if err != nil {
		return Options{}, invalid("version.filename_patterns", err)
	}

	base := strings.TrimSpace(f.Organization.BaseFolder)
	if base == "" {
		return Options{}, invalid("organization.base_folder", errors.New("must not be empty"))
	}

	skips := make([]string, 0, len(f.Scan.SkipPatterns))
	for i, s := range f.Scan.SkipPatterns {
		if s == "" {
			return Options{}, invalid(fmt.Sprintf("scan.skip_patterns[%d]", i),
				errors.New("empty pattern would prune every directory"))
		}
		skips = append(skips, s)
	}

	return Options{
		Mode:                mode,
		Extractor:           extractor,
		Patterns:            append([]string(nil), f.Version.FilenamePatterns...),
		BaseFolder:          base,
		GroupByExactVersion: f.Organization.GroupByExactVersion,
		SkipPatterns:        skips,
	}, nil
}

func invalid(key string, cause error) error {
	return apperrors.WrapWithContext(apperrors.ErrCodeInvalidConfig,
		fmt.Sprintf("invalid value for %s", key), cause, map[string]any{"key": key})
}
