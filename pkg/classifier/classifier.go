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

package classifier

import (
	"context"
	stderrors "errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/NVIDIA/version-organizer/pkg/config"
	apperrors "github.com/NVIDIA/version-organizer/pkg/errors"
	"github.com/NVIDIA/version-organizer/pkg/version"
)

// Classifier walks a directory tree and attaches version data to each file.
type Classifier struct {
	extractor    *version.Extractor
	mode         version.Mode
	skipPatterns []string
}

// Option is a functional option for configuring Classifier instances.
type Option func(*Classifier)

// WithExtractor sets the extraction chain. The default chain holds only
// the fallback patterns.
func WithExtractor(e *version.Extractor) Option {
	return func(c *Classifier) {
		if e != nil {
			c.extractor = e
		}
	}
}

// WithMode sets the compatibility granularity used for group keys.
func WithMode(m version.Mode) Option {
	return func(c *Classifier) {
		if m.IsValid() {
			c.mode = m
		}
	}
}

// WithSkipPatterns sets substrings that prune matching subdirectories.
func WithSkipPatterns(patterns ...string) Option {
	return func(c *Classifier) {
		c.skipPatterns = append([]string(nil), patterns...)
	}
}

// New creates a Classifier with the provided options.
func New(opts ...Option) *Classifier {
	c := &Classifier{mode: version.ModeMajor}
	for _, opt := range opts {
		opt(c)
	}
	if c.extractor == nil {
		// fallback-only chain cannot fail to compile
		c.extractor, _ = version.NewExtractor()
	}
	return c
}

// FromOptions creates a Classifier from validated configuration.
func FromOptions(o config.Options) *Classifier {
	return New(
		WithExtractor(o.Extractor),
		WithMode(o.Mode),
		WithSkipPatterns(o.SkipPatterns...),
	)
}

// Mode returns the compatibility mode used for grouping.
func (c *Classifier) Mode() version.Mode {
	return c.mode
}

// Scan walks root and returns one Record per regular file. Only a missing
// or non-directory root is fatal; per-file failures are logged and counted
// in the returned stats. On cancellation the partial result is returned
// together with a CANCELED error.
func (c *Classifier) Scan(ctx context.Context, root string) (*Result, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, apperrors.WrapWithContext(apperrors.ErrCodeInternal,
			"failed to resolve source directory", err, map[string]any{"path": root})
	}
	if err := checkRoot(abs); err != nil {
		slog.Error("invalid source directory", "path", abs, "error", err)
		return nil, err
	}

	res := &Result{Root: abs, Groups: NewGroupIndex()}
	slog.Info("scanning directory", "path", abs, "mode", c.mode.String())

	walkErr := filepath.WalkDir(abs, func(path string, d fs.DirEntry, err error) error {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if err != nil {
			if path == abs {
				return err
			}
			slog.Warn("failed to read path", "path", path, "error", err)
			res.Stats.Errors++
			scanErrorsTotal.Inc()
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if d.IsDir() {
			if path != abs && c.skip(abs, path) {
				slog.Info("skipping directory", "path", path)
				dirsPrunedTotal.Inc()
				return filepath.SkipDir
			}
			return nil
		}

		info, ok := c.fileInfo(path, d, res)
		if !ok {
			return nil
		}
		res.Records = append(res.Records, c.classify(path, info, res))
		return nil
	})

	res.Stats.VersionGroupsCreated = res.Groups.Len()

	if walkErr != nil {
		if stderrors.Is(walkErr, context.Canceled) || stderrors.Is(walkErr, context.DeadlineExceeded) {
			slog.Warn("scan canceled", "path", abs, "files_scanned", res.Stats.FilesScanned)
			return res, apperrors.Wrap(apperrors.ErrCodeCanceled, "scan canceled", walkErr)
		}
		return res, apperrors.WrapWithContext(apperrors.ErrCodeInternal,
			"failed to walk source directory", walkErr, map[string]any{"path": abs})
	}

	slog.Info("scan complete",
		"path", abs,
		"files_scanned", res.Stats.FilesScanned,
		"files_with_versions", res.Stats.FilesWithVersions,
		"groups", res.Stats.VersionGroupsCreated,
		"errors", res.Stats.Errors)

	return res, nil
}

// fileInfo returns the stat data for a walked non-directory entry. Symlinks
// are followed; anything that does not resolve to a regular file is ignored.
func (c *Classifier) fileInfo(path string, d fs.DirEntry, res *Result) (fs.FileInfo, bool) {
	var (
		info fs.FileInfo
		err  error
	)
	switch {
	case d.Type().IsRegular():
		info, err = d.Info()
	case d.Type()&fs.ModeSymlink != 0:
		info, err = os.Stat(path)
	default:
		slog.Debug("ignoring non-regular file", "path", path, "type", d.Type().String())
		return nil, false
	}

	if err == nil && !info.Mode().IsRegular() {
		slog.Debug("ignoring non-regular file", "path", path, "type", info.Mode().Type().String())
		return nil, false
	}

	res.Stats.FilesScanned++
	filesScannedTotal.Inc()

	if err != nil {
		slog.Warn("failed to stat file", "path", path, "error", err)
		res.Stats.Errors++
		scanErrorsTotal.Inc()
		return nil, false
	}
	return info, true
}

func (c *Classifier) classify(path string, info fs.FileInfo, res *Result) Record {
	name := filepath.Base(path)
	rec := Record{
		Path:      path,
		Name:      name,
		SizeBytes: info.Size(),
	}
	res.Stats.BytesScanned += info.Size()

	x, ok := c.extractor.ExtractDetail(name)
	if !ok {
		slog.Debug("no version found", "file", name)
		return rec
	}

	normalized := version.Normalize(x.Raw)
	rec.RawVersion = x.Raw
	rec.NormalizedVersion = normalized
	rec.Numeric = version.IsNumeric(normalized)
	rec.GroupKey = version.GroupKey(normalized, c.mode)
	rec.HasVersion = true

	res.Stats.FilesWithVersions++
	filesVersionedTotal.WithLabelValues(string(x.Source)).Inc()

	if res.Groups.Add(rec.GroupKey, path) {
		slog.Debug("created version group", "group", rec.GroupKey)
	}
	slog.Debug("version extracted",
		"file", name,
		"raw", x.Raw,
		"normalized", normalized,
		"group", rec.GroupKey,
		"source", string(x.Source),
		"pattern", x.Pattern)

	return rec
}

// skip reports whether the directory at path, relative to root, contains
// any configured skip substring.
func (c *Classifier) skip(root, path string) bool {
	if len(c.skipPatterns) == 0 {
		return false
	}
	rel, err := filepath.Rel(root, path)
	if err != nil {
		rel = path
	}
	rel = filepath.ToSlash(rel)
	for _, p := range c.skipPatterns {
		if strings.Contains(rel, p) {
			return true
		}
	}
	return false
}

func checkRoot(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return apperrors.WrapWithContext(apperrors.ErrCodeNotFound,
				"source directory does not exist", err, map[string]any{"path": path})
		}
		return apperrors.WrapWithContext(apperrors.ErrCodeInternal,
			"failed to stat source directory", err, map[string]any{"path": path})
	}
	if !info.IsDir() {
		return apperrors.NewWithContext(apperrors.ErrCodeNotADirectory,
			"source path is not a directory", map[string]any{"path": path})
	}
	return nil
}
