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

package report

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/NVIDIA/version-organizer/pkg/classifier"
	"github.com/NVIDIA/version-organizer/pkg/defaults"
	"github.com/NVIDIA/version-organizer/pkg/stats"
)

const title = "Version Organization Report"

var printer = message.NewPrinter(language.English)

// Group is the presentation form of one version group.
type Group struct {
	Key       string   `json:"key" yaml:"key" toml:"key"`
	Folder    string   `json:"folder" yaml:"folder" toml:"folder"`
	Count     int      `json:"count" yaml:"count" toml:"count"`
	SizeBytes int64    `json:"size_bytes" yaml:"size_bytes" toml:"size_bytes"`
	Sample    []string `json:"sample" yaml:"sample" toml:"sample"`
	Remaining int      `json:"remaining,omitempty" yaml:"remaining,omitempty" toml:"remaining,omitempty"`
}

// Groups returns one entry per group key in ascending key order, each with
// up to defaults.ReportSampleSize member file names.
func Groups(groups *classifier.GroupIndex, records []classifier.Record) []Group {
	if groups == nil {
		return nil
	}

	byPath := make(map[string]classifier.Record, len(records))
	for _, r := range records {
		byPath[r.Path] = r
	}

	keys := groups.SortedKeys()
	out := make([]Group, 0, len(keys))
	for _, key := range keys {
		members := groups.Members(key)
		g := Group{
			Key:    key,
			Folder: defaults.GroupFolderPrefix + key,
			Count:  len(members),
		}
		for i, p := range members {
			rec, ok := byPath[p]
			if ok {
				g.SizeBytes += rec.SizeBytes
			}
			if i >= defaults.ReportSampleSize {
				continue
			}
			name := rec.Name
			if !ok {
				name = filepath.Base(p)
			}
			g.Sample = append(g.Sample, name)
		}
		if g.Count > defaults.ReportSampleSize {
			g.Remaining = g.Count - defaults.ReportSampleSize
		}
		out = append(out, g)
	}
	return out
}

// Render returns the plain text report: run totals followed by every group
// in ascending key order with its member count and sampled file names.
func Render(groups *classifier.GroupIndex, records []classifier.Record, st stats.Stats) string {
	var b strings.Builder

	b.WriteString(title + "\n")
	b.WriteString(strings.Repeat("=", len(title)) + "\n\n")

	for _, line := range totals(st) {
		fmt.Fprintf(&b, "%-24s %s\n", line.label+":", line.value)
	}

	gs := Groups(groups, records)
	if len(gs) == 0 {
		b.WriteString("\nNo version groups found.\n")
		return b.String()
	}

	b.WriteString("\nGroups:\n")
	for _, g := range gs {
		fmt.Fprintf(&b, "\n%s (%s, %s)\n", g.Folder, plural(g.Count, "file"), humanize.Bytes(uint64(g.SizeBytes)))
		for _, name := range g.Sample {
			fmt.Fprintf(&b, "  - %s\n", name)
		}
		if g.Remaining > 0 {
			b.WriteString(printer.Sprintf("  ... and %d more\n", g.Remaining))
		}
	}
	return b.String()
}

type totalLine struct {
	label string
	value string
}

func totals(st stats.Stats) []totalLine {
	n := func(v int) string { return printer.Sprintf("%d", v) }
	return []totalLine{
		{"Files scanned", n(st.FilesScanned)},
		{"Files with versions", n(st.FilesWithVersions)},
		{"Files without version", n(st.FilesWithoutVersion())},
		{"Version groups", n(st.VersionGroupsCreated)},
		{"Files organized", n(st.FilesOrganized)},
		{"Files already in place", n(st.FilesInPlace)},
		{"Collisions resolved", n(st.CollisionsResolved)},
		{"Directories created", n(st.DirectoriesCreated)},
		{"Bytes scanned", humanize.Bytes(uint64(st.BytesScanned))},
		{"Errors", n(st.Errors)},
	}
}

func plural(n int, noun string) string {
	if n == 1 {
		return printer.Sprintf("%d %s", n, noun)
	}
	return printer.Sprintf("%d %ss", n, noun)
}
