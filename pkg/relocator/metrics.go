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
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/NVIDIA/version-organizer/pkg/defaults"
)

const (
	modeReal   = "real"
	modeDryRun = "dry_run"
)

var (
	filesMovedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: defaults.MetricsNamespace,
			Name:      "files_moved_total",
			Help:      "Total number of files relocated into group folders",
		},
		[]string{"mode"}, // real or dry_run
	)

	moveErrorsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: defaults.MetricsNamespace,
			Name:      "move_errors_total",
			Help:      "Total number of per-file relocation failures",
		},
	)

	collisionsResolvedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: defaults.MetricsNamespace,
			Name:      "collisions_resolved_total",
			Help:      "Total number of destinations renamed with a counter suffix",
		},
	)

	crossDeviceMovesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: defaults.MetricsNamespace,
			Name:      "cross_device_moves_total",
			Help:      "Total number of moves completed by copy and verify",
		},
	)

	organizeDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: defaults.MetricsNamespace,
			Name:      "organize_duration_seconds",
			Help:      "Duration of organize runs in seconds",
			Buckets:   defaults.OrganizeDurationBuckets,
		},
		[]string{"mode"},
	)
)

func modeLabel(dryRun bool) string {
	if dryRun {
		return modeDryRun
	}
	return modeReal
}
