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

// Package header provides the common header of documents emitted by verorg.
//
// Structured scan and organize summaries start with a Kind, an APIVersion
// and a metadata map holding the creation timestamp, the tool version and
// the run id, so saved output can be identified later:
//
//	kind: OrganizeSummary
//	apiVersion: verorg/v1alpha1
//	metadata:
//	  run_id: 3f0c...
//	  timestamp: "2025-03-01T12:00:00Z"
//	  version: v0.4.0
//
// Embed Header inline in the document type:
//
//	type Summary struct {
//	    header.Header `json:",inline" yaml:",inline"`
//	    ...
//	}
package header
