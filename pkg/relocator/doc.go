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

// Package relocator moves classified files into version group folders.
//
// Every versioned record is placed at <base>/v<group>/<name>, or at
// <base>/v<normalized>/<name> when grouping by exact version. Existing
// files are never overwritten: a taken destination is retried as
// name_1.ext, name_2.ext and so on until a free name is found. Names
// claimed earlier in the same run count as taken, so a dry run predicts
// exactly the destinations a real run would use.
//
// Moves are renames. When the rename crosses filesystems the file is
// copied, synced and verified by SHA-256 before the source is removed.
//
// A real run holds an exclusive lock on <base>/.verorg.lock for its
// duration. A second run against the same base folder fails with
// ErrCodeUnavailable instead of racing.
package relocator
