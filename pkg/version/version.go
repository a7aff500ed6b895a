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
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Error types for version parsing failures
var (
	ErrEmptyVersion      = errors.New("version string is empty")
	ErrNonNumeric        = errors.New("version component is not numeric")
	ErrNegativeComponent = errors.New("version component cannot be negative")
)

// Version is a dotted-numeric version with any number of components.
// Missing trailing components compare as 0, so "1.2" equals "1.2.0".
type Version struct {
	Components []int `json:"components" yaml:"components"`
}

// Parse parses a normalized dotted-numeric string such as "1", "1.2" or
// "10.4.0.7". It does not strip prefixes; run Normalize first for raw input.
func Parse(s string) (Version, error) {
	if s == "" {
		return Version{}, ErrEmptyVersion
	}

	parts := strings.Split(s, ".")
	v := Version{Components: make([]int, 0, len(parts))}
	for _, part := range parts {
		if part == "" {
			return Version{}, fmt.Errorf("%w: empty component", ErrNonNumeric)
		}
		num, err := strconv.Atoi(part)
		if err != nil {
			return Version{}, fmt.Errorf("%w: %q", ErrNonNumeric, part)
		}
		if num < 0 {
			return Version{}, fmt.Errorf("%w: %d", ErrNegativeComponent, num)
		}
		v.Components = append(v.Components, num)
	}
	return v, nil
}

// Segment returns the i-th component, or 0 when the version is shorter.
func (v Version) Segment(i int) int {
	if i < 0 || i >= len(v.Components) {
		return 0
	}
	return v.Components[i]
}

// String renders the components joined by dots.
func (v Version) String() string {
	parts := make([]string, len(v.Components))
	for i, c := range v.Components {
		parts[i] = strconv.Itoa(c)
	}
	return strings.Join(parts, ".")
}

// Compare returns -1, 0 or 1 comparing v to other. The shorter version is
// padded with zeros, so "1.2" and "1.2.0" compare equal.
func (v Version) Compare(other Version) int {
	return v.comparePrefix(other, max(len(v.Components), len(other.Components)))
}

// comparePrefix compares the first n components with zero padding.
func (v Version) comparePrefix(other Version, n int) int {
	for i := 0; i < n; i++ {
		a, b := v.Segment(i), other.Segment(i)
		if a < b {
			return -1
		}
		if a > b {
			return 1
		}
	}
	return 0
}

// Equals reports whether v and other compare equal after zero padding.
func (v Version) Equals(other Version) bool {
	return v.Compare(other) == 0
}
