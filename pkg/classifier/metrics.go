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
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/NVIDIA/version-organizer/pkg/defaults"
)

var (
	filesScannedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: defaults.MetricsNamespace,
			Name:      "files_scanned_total",
			Help:      "Total number of regular files visited by the scanner",
		},
	)

	filesVersionedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: defaults.MetricsNamespace,
			Name:      "files_versioned_total",
			Help:      "Total number of files with a detected version",
		},
		[]string{"source"}, // configured or fallback
	)

	scanErrorsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: defaults.MetricsNamespace,
			Name:      "scan_errors_total",
			Help:      "Total number of per-file errors during scanning",
		},
	)

	dirsPrunedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: defaults.MetricsNamespace,
			Name:      "dirs_pruned_total",
			Help:      "Total number of directories skipped by skip patterns",
		},
	)
)
