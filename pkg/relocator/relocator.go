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

package relocator

import (
	"context"
	stderrors "errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/gofrs/flock"

	"github.com/NVIDIA/version-organizer/pkg/classifier"
	"github.com/NVIDIA/version-organizer/pkg/defaults"
	apperrors "github.com/NVIDIA/version-organizer/pkg/errors"
	"github.com/NVIDIA/version-organizer/pkg/stats"
)

// Options controls where and how files are relocated.
type Options struct {
	// BaseFolder is the root of the group folders. Relative paths resolve
	// against the working directory.
	BaseFolder string
	// DryRun resolves every destination and counts it without touching
	// the filesystem.
	DryRun bool
	// GroupByExactVersion names folders after the normalized version
	// instead of the group key.
	GroupByExactVersion bool
}

// Move describes one planned or completed relocation.
type Move struct {
	Source      string `json:"source" yaml:"source"`
	Destination string `json:"destination" yaml:"destination"`
	Group       string `json:"group" yaml:"group"`
	Collision   bool   `json:"collision" yaml:"collision"`
	CrossDevice bool   `json:"cross_device,omitempty" yaml:"cross_device,omitempty"`
}

// Relocator moves classified files into per-group folders.
type Relocator struct {
	opts   Options
	onMove func(Move)
}

// Option is a functional option for configuring Relocator instances.
type Option func(*Relocator)

// WithMoveHook registers fn to be called after every successful or
// simulated move.
func WithMoveHook(fn func(Move)) Option {
	return func(r *Relocator) {
		r.onMove = fn
	}
}

// New creates a Relocator.
func New(opts Options, options ...Option) *Relocator {
	r := &Relocator{opts: opts}
	for _, o := range options {
		o(r)
	}
	return r
}

// batch holds state for a single Organize call.
type batch struct {
	base    string
	dryRun  bool
	stats   stats.Stats
	claimed map[string]string // destination -> source that claimed it
	vacated map[string]bool   // sources already moved away in this run
	dirs    map[string]bool   // directories known to exist or planned
}

// Organize relocates every versioned record to
// <base>/v<group>/<name>. Records without a version are ignored. Files are
// processed in ascending path order. Per-file failures are logged and
// counted; only an unusable base folder, a held lock or cancellation
// return an error, together with the stats accumulated so far.
func (r *Relocator) Organize(ctx context.Context, records []classifier.Record, groups *classifier.GroupIndex) (stats.Stats, error) {
	start := time.Now()
	mode := modeLabel(r.opts.DryRun)
	defer func() {
		organizeDuration.WithLabelValues(mode).Observe(time.Since(start).Seconds())
	}()

	if strings.TrimSpace(r.opts.BaseFolder) == "" {
		return stats.Stats{}, apperrors.New(apperrors.ErrCodeInvalidConfig, "base folder is required")
	}
	base, err := filepath.Abs(r.opts.BaseFolder)
	if err != nil {
		return stats.Stats{}, apperrors.WrapWithContext(apperrors.ErrCodeInternal,
			"failed to resolve base folder", err, map[string]any{"path": r.opts.BaseFolder})
	}

	pending := versioned(records, groups)
	if len(pending) == 0 {
		slog.Info("no versioned files to organize")
		return stats.Stats{}, nil
	}

	b := &batch{
		base:    base,
		dryRun:  r.opts.DryRun,
		claimed: make(map[string]string),
		vacated: make(map[string]bool),
		dirs:    make(map[string]bool),
	}

	if !b.dryRun {
		if err := b.ensureDir(base); err != nil {
			return b.stats, apperrors.WrapWithContext(apperrors.ErrCodeInternal,
				"failed to create base folder", err, map[string]any{"path": base})
		}
		unlock, err := acquireLock(base)
		if err != nil {
			return b.stats, err
		}
		defer unlock()
	}

	slog.Info("organizing files",
		"base_folder", base,
		"files", len(pending),
		"dry_run", b.dryRun,
		"exact_version", r.opts.GroupByExactVersion)

	for _, rec := range pending {
		if ctxErr := ctx.Err(); ctxErr != nil {
			slog.Warn("organize canceled", "files_organized", b.stats.FilesOrganized)
			return b.stats, apperrors.Wrap(apperrors.ErrCodeCanceled, "organize canceled", ctxErr)
		}

		mv, ok := b.relocate(rec, r.folderKey(rec))
		if !ok {
			continue
		}
		filesMovedTotal.WithLabelValues(mode).Inc()
		if r.onMove != nil {
			r.onMove(mv)
		}
	}

	slog.Info("organize complete",
		"files_organized", b.stats.FilesOrganized,
		"files_in_place", b.stats.FilesInPlace,
		"collisions_resolved", b.stats.CollisionsResolved,
		"directories_created", b.stats.DirectoriesCreated,
		"errors", b.stats.Errors,
		"dry_run", b.dryRun)

	return b.stats, nil
}

func (r *Relocator) folderKey(rec classifier.Record) string {
	if r.opts.GroupByExactVersion && rec.NormalizedVersion != "" {
		return rec.NormalizedVersion
	}
	return rec.GroupKey
}

// relocate handles a single record and reports whether it was moved.
func (b *batch) relocate(rec classifier.Record, key string) (Move, bool) {
	srcInfo, err := os.Stat(rec.Path)
	if err != nil {
		b.fail("failed to stat source", rec.Path, err)
		return Move{}, false
	}

	dir := filepath.Join(b.base, defaults.GroupFolderPrefix+key)
	want := filepath.Join(dir, rec.Name)

	dest, inPlace, err := b.resolve(want, rec.Path, srcInfo)
	if err != nil {
		b.fail("failed to resolve destination", rec.Path, err)
		return Move{}, false
	}
	if inPlace {
		slog.Debug("file already in place", "path", rec.Path)
		b.stats.FilesInPlace++
		return Move{}, false
	}

	mv := Move{Source: rec.Path, Destination: dest, Group: key, Collision: dest != want}

	if err := b.ensureDir(dir); err != nil {
		b.fail("failed to create group folder", rec.Path, err)
		return Move{}, false
	}

	if b.dryRun {
		slog.Info("would move file", "source", rec.Path, "destination", dest, "group", key)
	} else {
		crossDevice, err := moveFile(rec.Path, dest)
		if err != nil {
			b.fail("failed to move file", rec.Path, err)
			return Move{}, false
		}
		mv.CrossDevice = crossDevice
		if crossDevice {
			crossDeviceMovesTotal.Inc()
		}
		slog.Info("moved file", "source", rec.Path, "destination", dest, "group", key)
	}

	if mv.Collision {
		b.stats.CollisionsResolved++
		collisionsResolvedTotal.Inc()
		slog.Info("resolved name collision", "wanted", want, "destination", dest)
	}
	b.claimed[dest] = rec.Path
	b.vacated[rec.Path] = true
	b.stats.FilesOrganized++
	return mv, true
}

// resolve returns the first free destination for source starting at want
// and then trying stem_1.ext, stem_2.ext and so on. A candidate is taken
// when another source claimed it earlier in the batch or when a different
// file exists there. inPlace is true when the candidate is source itself.
func (b *batch) resolve(want, source string, srcInfo fs.FileInfo) (dest string, inPlace bool, err error) {
	dir := filepath.Dir(want)
	name := filepath.Base(want)
	ext := filepath.Ext(name)
	stem := strings.TrimSuffix(name, ext)
	if stem == "" {
		stem, ext = name, ""
	}

	candidate := want
	for n := 1; ; n++ {
		taken, same, err := b.taken(candidate, source, srcInfo)
		if err != nil {
			return "", false, err
		}
		if same {
			return candidate, true, nil
		}
		if !taken {
			return candidate, false, nil
		}
		candidate = filepath.Join(dir, fmt.Sprintf("%s%s%d%s", stem, defaults.CollisionSeparator, n, ext))
	}
}

func (b *batch) taken(candidate, source string, srcInfo fs.FileInfo) (taken, same bool, err error) {
	if owner, ok := b.claimed[candidate]; ok {
		return owner != source, false, nil
	}
	if candidate == source {
		return false, true, nil
	}
	if b.vacated[candidate] {
		return false, false, nil
	}
	info, err := os.Stat(candidate)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return false, false, nil
		}
		return false, false, err
	}
	if os.SameFile(srcInfo, info) {
		return false, true, nil
	}
	return true, false, nil
}

// ensureDir creates dir and its parents, counting each directory that did
// not exist. In dry-run mode existence is only recorded.
func (b *batch) ensureDir(dir string) error {
	if b.dirs[dir] {
		return nil
	}

	var missing []string
	for p := dir; !b.dirs[p]; p = filepath.Dir(p) {
		info, err := os.Stat(p)
		if err == nil {
			if !info.IsDir() {
				return fmt.Errorf("%s exists and is not a directory", p)
			}
			break
		}
		if !stderrors.Is(err, fs.ErrNotExist) {
			return err
		}
		missing = append(missing, p)
		if parent := filepath.Dir(p); parent == p {
			break
		}
	}

	if !b.dryRun && len(missing) > 0 {
		if err := os.MkdirAll(dir, defaults.DirPerm); err != nil {
			return err
		}
	}
	for _, p := range missing {
		b.dirs[p] = true
		slog.Debug("created directory", "path", p, "dry_run", b.dryRun)
	}
	b.stats.DirectoriesCreated += len(missing)
	b.dirs[dir] = true
	return nil
}

func (b *batch) fail(msg, path string, err error) {
	slog.Warn(msg, "path", path, "error", err)
	b.stats.Errors++
	moveErrorsTotal.Inc()
}

// acquireLock takes an exclusive lock on the base folder so concurrent
// runs cannot race in the collision loop.
func acquireLock(base string) (func(), error) {
	lockPath := filepath.Join(base, defaults.LockFileName)
	fl := flock.New(lockPath)
	locked, err := fl.TryLock()
	if err != nil {
		return nil, apperrors.WrapWithContext(apperrors.ErrCodeInternal,
			"failed to lock base folder", err, map[string]any{"path": lockPath})
	}
	if !locked {
		return nil, apperrors.NewWithContext(apperrors.ErrCodeUnavailable,
			"base folder is locked by another run", map[string]any{"path": lockPath})
	}
	return func() {
		if err := fl.Unlock(); err != nil {
			slog.Warn("failed to release lock", "path", lockPath, "error", err)
		}
	}, nil
}

// versioned returns the records that belong to a group, sorted by path.
// A nil index accepts every record with a version.
func versioned(records []classifier.Record, groups *classifier.GroupIndex) []classifier.Record {
	var member map[string]bool
	if groups != nil {
		member = make(map[string]bool)
		for _, key := range groups.Keys() {
			for _, p := range groups.Members(key) {
				member[p] = true
			}
		}
	}

	out := make([]classifier.Record, 0, len(records))
	for _, rec := range records {
		if !rec.HasVersion {
			continue
		}
		if member != nil && !member[rec.Path] {
			continue
		}
		out = append(out, rec)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Path < out[j].Path })
	return out
}
