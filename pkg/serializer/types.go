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

package serializer

// Format represents the serialization format type
type Format string

const (
	// FormatJSON is JSON with two-space indentation
	FormatJSON Format = "json"
	// FormatYAML is YAML with two-space indentation
	FormatYAML Format = "yaml"
	// FormatTOML is TOML, used for configuration files and summaries
	FormatTOML Format = "toml"
	// FormatTable is a flattened FIELD/VALUE listing (write-only)
	FormatTable Format = "table"
)

// IsUnknown reports whether f is not one of the declared formats.
func (f Format) IsUnknown() bool {
	switch f {
	case FormatJSON, FormatYAML, FormatTOML, FormatTable:
		return false
	default:
		return true
	}
}

// SupportedFormats returns a list of all supported output formats
// for serialization.
func SupportedFormats() []string {
	return []string{
		string(FormatJSON),
		string(FormatYAML),
		string(FormatTOML),
		string(FormatTable),
	}
}
