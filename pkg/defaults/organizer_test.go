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

import (
	"os"
	"sort"
	"testing"
)

func TestStringDefaults(t *testing.T) {
	tests := []struct {
		name  string
		value string
	}{
		{"CompatibilityMode", CompatibilityMode},
		{"BaseFolder", BaseFolder},
		{"ConfigFileName", ConfigFileName},
		{"GroupFolderPrefix", GroupFolderPrefix},
		{"CollisionSeparator", CollisionSeparator},
		{"LockFileName", LockFileName},
		{"MetricsNamespace", MetricsNamespace},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.value == "" {
				t.Errorf("%s should not be empty", tt.name)
			}
		})
	}
}

func TestReportSampleSize(t *testing.T) {
	if ReportSampleSize != 5 {
		t.Errorf("ReportSampleSize = %d, want 5", ReportSampleSize)
	}
}

func TestOrganizeDurationBucketsSorted(t *testing.T) {
	if !sort.Float64sAreSorted(OrganizeDurationBuckets) {
		t.Errorf("buckets must be ascending: %v", OrganizeDurationBuckets)
	}
}

func TestPermissions(t *testing.T) {
	tests := []struct {
		name string
		got  os.FileMode
		want os.FileMode
	}{
		{"DirPerm", DirPerm, 0o755},
		{"FilePerm", FilePerm, 0o644},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("%s = %o, want %o", tt.name, tt.got, tt.want)
			}
		})
	}
}
