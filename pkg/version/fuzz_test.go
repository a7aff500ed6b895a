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
	"testing"
)

// FuzzNormalize checks that normalization never panics and that numeric
// results are stable under a second pass.
func FuzzNormalize(f *testing.F) {
	f.Add("1")
	f.Add("v1")
	f.Add("1.2.3")
	f.Add("V1.2.3")
	f.Add("r10")
	f.Add("  v2.0  ")
	f.Add("release-3.4-beta")
	f.Add("")
	f.Add(".")
	f.Add("1..2")
	f.Add("abc")

	f.Fuzz(func(t *testing.T, input string) {
		n := Normalize(input)
		if IsNumeric(n) {
			if again := Normalize(n); again != n {
				t.Errorf("Normalize(%q) = %q, second pass = %q", input, n, again)
			}
		}
	})
}

// FuzzGroupKey checks that keys are deterministic and are a prefix of the input.
func FuzzGroupKey(f *testing.F) {
	f.Add("1.2.3")
	f.Add("1")
	f.Add("")
	f.Add("abc")
	f.Add("1.2.3.4.5")

	f.Fuzz(func(t *testing.T, input string) {
		for _, m := range []Mode{ModeExact, ModeMajor, ModeMinor, ModePatch} {
			k1 := GroupKey(input, m)
			k2 := GroupKey(input, m)
			if k1 != k2 {
				t.Errorf("GroupKey(%q, %s) not deterministic: %q vs %q", input, m, k1, k2)
			}
			if len(k1) > len(input) || input[:len(k1)] != k1 {
				t.Errorf("GroupKey(%q, %s) = %q is not a prefix", input, m, k1)
			}
		}
	})
}
