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

// Package stats holds the counters produced by each organizer phase.
//
// Every phase returns its own Stats value; callers combine them with Add.
// Nothing is accumulated in package state.
package stats

// Stats tracks aggregate counters for a scan or organize pass.
type Stats struct {
	FilesScanned         int   `json:"files_scanned" yaml:"files_scanned" toml:"files_scanned"`
	FilesWithVersions    int   `json:"files_with_versions" yaml:"files_with_versions" toml:"files_with_versions"`
	VersionGroupsCreated int   `json:"version_groups_created" yaml:"version_groups_created" toml:"version_groups_created"`
	FilesOrganized       int   `json:"files_organized" yaml:"files_organized" toml:"files_organized"`
	FilesInPlace         int   `json:"files_in_place" yaml:"files_in_place" toml:"files_in_place"`
	CollisionsResolved   int   `json:"collisions_resolved" yaml:"collisions_resolved" toml:"collisions_resolved"`
	DirectoriesCreated   int   `json:"directories_created" yaml:"directories_created" toml:"directories_created"`
	BytesScanned         int64 `json:"bytes_scanned" yaml:"bytes_scanned" toml:"bytes_scanned"`
	Errors               int   `json:"errors" yaml:"errors" toml:"errors"`
}

// Add returns the field-wise sum of s and other.
func (s Stats) Add(other Stats) Stats {
	return Stats{
		FilesScanned:         s.FilesScanned + other.FilesScanned,
		FilesWithVersions:    s.FilesWithVersions + other.FilesWithVersions,
		VersionGroupsCreated: s.VersionGroupsCreated + other.VersionGroupsCreated,
		FilesOrganized:       s.FilesOrganized + other.FilesOrganized,
		FilesInPlace:         s.FilesInPlace + other.FilesInPlace,
		CollisionsResolved:   s.CollisionsResolved + other.CollisionsResolved,
		DirectoriesCreated:   s.DirectoriesCreated + other.DirectoriesCreated,
		BytesScanned:         s.BytesScanned + other.BytesScanned,
		Errors:               s.Errors + other.Errors,
	}
}

// FilesWithoutVersion is the number of scanned files excluded from grouping.
func (s Stats) FilesWithoutVersion() int {
	return s.FilesScanned - s.FilesWithVersions
}

// HasErrors reports whether any per-file failure was recorded.
func (s Stats) HasErrors() bool {
	return s.Errors > 0
}
