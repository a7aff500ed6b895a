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
	"github.com/NVIDIA/version-organizer/pkg/classifier"
	"github.com/NVIDIA/version-organizer/pkg/header"
	"github.com/NVIDIA/version-organizer/pkg/stats"
)

// Summary is the machine readable form of a run, suitable for the
// serializer package.
type Summary struct {
	header.Header `json:",inline" yaml:",inline"`

	Source     string      `json:"source" yaml:"source" toml:"source"`
	BaseFolder string      `json:"base_folder,omitempty" yaml:"base_folder,omitempty" toml:"base_folder,omitempty"`
	Mode       string      `json:"mode" yaml:"mode" toml:"mode"`
	DryRun     bool        `json:"dry_run" yaml:"dry_run" toml:"dry_run"`
	Canceled   bool        `json:"canceled,omitempty" yaml:"canceled,omitempty" toml:"canceled,omitempty"`
	Stats      stats.Stats `json:"stats" yaml:"stats" toml:"stats"`
	Groups     []Group     `json:"groups" yaml:"groups" toml:"groups"`
}

// SummaryOption is a functional option for NewSummary.
type SummaryOption func(*Summary)

// WithRunID records the run identifier in the header metadata.
func WithRunID(id string) SummaryOption {
	return func(s *Summary) {
		header.WithMetadata(header.MetadataRunID, id)(&s.Header)
	}
}

// WithBaseFolder records where files were organized to.
func WithBaseFolder(path string, dryRun bool) SummaryOption {
	return func(s *Summary) {
		s.BaseFolder = path
		s.DryRun = dryRun
	}
}

// WithCanceled marks the summary as describing an interrupted run.
func WithCanceled(canceled bool) SummaryOption {
	return func(s *Summary) {
		s.Canceled = canceled
	}
}

// NewSummary builds a Summary of kind from a scan result and the combined
// stats. toolVersion is stamped into the header metadata.
func NewSummary(kind header.Kind, toolVersion string, res *classifier.Result, mode string, st stats.Stats, opts ...SummaryOption) *Summary {
	s := &Summary{
		Mode:  mode,
		Stats: st,
	}
	s.Init(kind, toolVersion)
	if res != nil {
		s.Source = res.Root
		s.Groups = Groups(res.Groups, res.Records)
	}
	if s.Groups == nil {
		s.Groups = []Group{}
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}
