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

package version

import (
	"fmt"
	"strings"
)

// Mode is the compatibility granularity that decides how many leading
// components of a normalized version form its group key.
type Mode uint8

const (
	// ModeExact groups by the full normalized version.
	ModeExact Mode = iota + 1
	// ModeMajor groups by the first component.
	ModeMajor
	// ModeMinor groups by the first two components.
	ModeMinor
	// ModePatch groups by the first three components.
	ModePatch
)

var modeNames = map[Mode]string{
	ModeExact: "exact",
	ModeMajor: "major",
	ModeMinor: "minor",
	ModePatch: "patch",
}

// SupportedModes returns the accepted mode names in granularity order.
func SupportedModes() []string {
	return []string{"exact", "major", "minor", "patch"}
}

// ParseMode converts a configuration value into a Mode. Matching is
// case-insensitive and ignores surrounding whitespace.
func ParseMode(s string) (Mode, error) {
	needle := strings.ToLower(strings.TrimSpace(s))
	for m, name := range modeNames {
		if name == needle {
			return m, nil
		}
	}
	return 0, fmt.Errorf("unknown compatibility mode %q (supported: %s)",
		s, strings.Join(SupportedModes(), ", "))
}

// IsValid reports whether m is one of the declared modes.
func (m Mode) IsValid() bool {
	_, ok := modeNames[m]
	return ok
}

// String returns the configuration name of the mode.
func (m Mode) String() string {
	if name, ok := modeNames[m]; ok {
		return name
	}
	return fmt.Sprintf("Mode(%d)", uint8(m))
}

// MarshalText implements encoding.TextMarshaler.
func (m Mode) MarshalText() ([]byte, error) {
	if !m.IsValid() {
		return nil, fmt.Errorf("invalid compatibility mode %d", uint8(m))
	}
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Mode) UnmarshalText(text []byte) error {
	parsed, err := ParseMode(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// significant is the number of leading components the mode keeps;
// 0 means all of them.
func (m Mode) significant() int {
	switch m {
	case ModeMajor:
		return 1
	case ModeMinor:
		return 2
	case ModePatch:
		return 3
	default:
		return 0
	}
}
