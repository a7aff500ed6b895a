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

import "strings"

// GroupKey maps a normalized version to its bucket under m. When the
// version has fewer components than m needs, the full string is the key.
func GroupKey(normalized string, m Mode) string {
	n := m.significant()
	if n == 0 {
		return normalized
	}
	parts := strings.Split(normalized, ".")
	if len(parts) < n {
		return normalized
	}
	return strings.Join(parts[:n], ".")
}

// AreCompatible reports whether v1 and v2 share the components m considers
// significant. Missing components count as 0. If either value is not
// dotted-numeric the two strings must be equal.
func AreCompatible(v1, v2 string, m Mode) bool {
	a, errA := Parse(v1)
	b, errB := Parse(v2)
	if errA != nil || errB != nil {
		return v1 == v2
	}
	n := m.significant()
	if n == 0 {
		return a.Equals(b)
	}
	return a.comparePrefix(b, n) == 0
}
