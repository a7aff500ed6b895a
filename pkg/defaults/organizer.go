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

package defaults

import "os"

// Configuration defaults applied when a key is absent from the config file.
const (
	// CompatibilityMode is the grouping granularity used when none is configured.
	CompatibilityMode = "major"

	// BaseFolder is the destination root for organized files.
	// Relative values resolve against the working directory.
	BaseFolder = "organized"

	// ConfigFileName is looked up in the working directory when --config is not given.
	ConfigFileName = "verorg.yaml"
)

// Relocation defaults.
const (
	// GroupFolderPrefix is prepended to every group key to form its folder name.
	GroupFolderPrefix = "v"

	// CollisionSeparator joins a file stem and its collision counter (report_1.txt).
	CollisionSeparator = "_"

	// LockFileName is created inside the base folder while a real run is in progress.
	LockFileName = ".verorg.lock"

	// DirPerm is used when creating group folders.
	DirPerm os.FileMode = 0o755

	// FilePerm is used for report files written by the CLI.
	FilePerm os.FileMode = 0o644
)

// Report defaults.
const (
	// ReportSampleSize is the number of member names listed per group.
	ReportSampleSize = 5
)

// Metrics defaults.
const (
	// MetricsNamespace prefixes every exported metric name.
	MetricsNamespace = "verorg"
)

// OrganizeDurationBuckets are histogram buckets for a full organize pass.
var OrganizeDurationBuckets = []float64{0.01, 0.1, 0.5, 1, 5, 30, 120, 600}
