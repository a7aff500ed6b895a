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

// Package serializer converts structured values to and from JSON, YAML and
// TOML, and renders them as a flattened table.
//
// Configuration files are read with FromFile, which picks the decoder from
// the file extension:
//
//	cfg, err := serializer.FromFile[config.File]("verorg.yaml")
//
// Run summaries are written with a Writer:
//
//	w := serializer.NewFileWriterOrStdout(serializer.FormatJSON, "")
//	defer w.Close()
//	if err := w.Serialize(ctx, summary); err != nil {
//		return err
//	}
package serializer
