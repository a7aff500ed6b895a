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
	"sort"

	"github.com/NVIDIA/version-organizer/pkg/stats"
)

// Record describes one scanned file. Records are created once per scan
// and never modified afterwards.
type Record struct {
	Path              string `json:"path" yaml:"path"`
	Name              string `json:"name" yaml:"name"`
	RawVersion        string `json:"raw_version,omitempty" yaml:"raw_version,omitempty"`
	NormalizedVersion string `json:"normalized_version,omitempty" yaml:"normalized_version,omitempty"`
	GroupKey          string `json:"group_key,omitempty" yaml:"group_key,omitempty"`
	HasVersion        bool   `json:"has_version" yaml:"has_version"`
	Numeric           bool   `json:"numeric" yaml:"numeric"`
	SizeBytes         int64  `json:"size_bytes" yaml:"size_bytes"`
}

// GroupIndex maps group keys to member paths. Keys and members keep
// insertion order.
type GroupIndex struct {
	keys    []string
	members map[string][]string
}

// NewGroupIndex returns an empty index.
func NewGroupIndex() *GroupIndex {
	return &GroupIndex{members: make(map[string][]string)}
}

// Add appends path to the bucket for key and reports whether the bucket is new.
func (g *GroupIndex) Add(key, path string) bool {
	_, exists := g.members[key]
	if !exists {
		g.keys = append(g.keys, key)
	}
	g.members[key] = append(g.members[key], path)
	return !exists
}

// Keys returns group keys in first-seen order.
func (g *GroupIndex) Keys() []string {
	return append([]string(nil), g.keys...)
}

// SortedKeys returns group keys in ascending string order.
func (g *GroupIndex) SortedKeys() []string {
	keys := g.Keys()
	sort.Strings(keys)
	return keys
}

// Members returns the paths in the bucket for key in insertion order.
func (g *GroupIndex) Members(key string) []string {
	return append([]string(nil), g.members[key]...)
}

// Len returns the number of groups.
func (g *GroupIndex) Len() int {
	return len(g.keys)
}

// Result is the output of a scan.
type Result struct {
	Root    string
	Records []Record
	Groups  *GroupIndex
	Stats   stats.Stats
}
