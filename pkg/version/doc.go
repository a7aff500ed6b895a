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

// Package version detects, normalizes and buckets version identifiers found
// in file names.
//
// # Overview
//
// Three pure functions make up the engine:
//
//   - Extractor.Extract finds a raw version in a file name. Configured
//     patterns are tried first, then the fixed table from FallbackPatterns.
//     The first pattern in that order that matches wins, regardless of
//     where in the name other candidates occur.
//   - Normalize reduces a raw version to dotted-numeric form ("v1.2" -> "1.2").
//   - GroupKey keeps the leading components selected by a Mode.
//
// # Usage
//
//	ex, err := version.NewExtractor(`release-(\d+\.\d+)`)
//	if err != nil {
//	    return err
//	}
//	raw, ok := ex.Extract("tool-v2.0.1_old1.0.0.txt") // "2.0.1", true
//	key := version.GroupKey(version.Normalize(raw), version.ModeMinor) // "2.0"
//
// # Comparison
//
// AreCompatible and Version.Compare pad the shorter version with zeros, so
// "1.2" and "1.2.0" are the same version. These are diagnostic helpers; the
// grouper itself only looks at the normalized string.
//
// Version ranges, constraints and dependency solving are out of scope.
package version
