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
	"regexp"
	"strings"
)

var (
	dottedNumeric    = regexp.MustCompile(`^\d+(\.\d+)*$`)
	dottedNumericRun = regexp.MustCompile(`\d+(\.\d+)*`)
)

// Normalize converts a raw version into dotted-numeric form.
//
// Surrounding whitespace and at most one leading v/V/r/R are removed. If
// the rest is already dotted-numeric it is returned; otherwise the first
// dotted-numeric run inside it is. Input with no digits at all is returned
// as stripped, so grouping falls back to plain string equality.
//
// Normalize is idempotent on dotted-numeric results only. Non-numeric input
// loses one prefix letter per pass, so "vrabc" becomes "rabc" and then "abc".
func Normalize(raw string) string {
	s := strings.TrimSpace(raw)
	if s != "" {
		switch s[0] {
		case 'v', 'V', 'r', 'R':
			s = s[1:]
		}
	}
	if dottedNumeric.MatchString(s) {
		return s
	}
	if run := dottedNumericRun.FindString(s); run != "" {
		return run
	}
	return s
}

// IsNumeric reports whether s is dotted-numeric.
func IsNumeric(s string) bool {
	return dottedNumeric.MatchString(s)
}
