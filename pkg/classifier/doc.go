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

// Package classifier scans a directory tree and classifies every regular
// file by the version embedded in its name.
//
// Each file becomes a Record carrying the raw version, its normalized form
// and the group key derived from the configured compatibility mode. Files
// without a version are still recorded so the caller can report them.
// Versioned files are also indexed by group key in a GroupIndex.
//
// Subdirectories whose path relative to the root contains any skip pattern
// are pruned. The root itself is never pruned.
//
// Usage:
//
//	c := classifier.New(
//	    classifier.WithMode(version.ModeMinor),
//	    classifier.WithSkipPatterns(".git", "node_modules"),
//	)
//	res, err := c.Scan(ctx, "/srv/releases")
//	if err != nil {
//	    return err
//	}
//	for _, key := range res.Groups.SortedKeys() {
//	    fmt.Println(key, len(res.Groups.Members(key)))
//	}
//
// Scan never fails because of a single file. Unreadable entries increment
// Stats.Errors and the walk continues.
package classifier
