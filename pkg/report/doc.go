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

// Package report formats the outcome of a scan or organize run.
//
// Render produces the plain text report, RenderTable the same content as
// terminal tables, and NewSummary a structured value for JSON or YAML
// output. Groups are always listed in ascending key order with at most
// five sampled file names each; larger groups end with "and N more".
//
// Nothing here touches the filesystem. Writing a report to disk is the
// caller's job.
package report
