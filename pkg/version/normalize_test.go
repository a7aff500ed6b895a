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

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"1.2.3", "1.2.3"},
		{"v1.2.3", "1.2.3"},
		{"V1.2", "1.2"},
		{"r10", "10"},
		{"R2.0", "2.0"},
		{"  v3  ", "3"},
		{"vv1.2", "1.2"},
		{"rv1", "1"},
		{"1.2.3-beta", "1.2.3"},
		{"release-3.4-rc1", "3.4"},
		{"2024-05", "2024"},
		{"abc", "abc"},
		{"vabc", "abc"},
		{"", ""},
		{"v", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := Normalize(tt.in); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"1.2.3", "v1.2.3", "V2", "r7.1", " 4.5 ", "1.2.3-beta",
		"release-3.4", "build42", "abc", "", "2.0.0.1",
	}

	for _, in := range inputs {
		once := Normalize(in)
		twice := Normalize(once)
		if once != twice {
			t.Errorf("Normalize not idempotent for %q: %q then %q", in, once, twice)
		}
	}
}

func TestNormalizeStripsOnePrefixPerPass(t *testing.T) {
	once := Normalize("vrabc")
	if once != "rabc" {
		t.Fatalf("Normalize(%q) = %q, want %q", "vrabc", once, "rabc")
	}
	if twice := Normalize(once); twice != "abc" {
		t.Errorf("Normalize(%q) = %q, want %q", once, twice, "abc")
	}
}

func TestIsNumeric(t *testing.T) {
	tests := map[string]bool{
		"1":     true,
		"1.2.3": true,
		"":      false,
		"1.":    false,
		"v1":    false,
		"abc":   false,
	}
	for in, want := range tests {
		if got := IsNumeric(in); got != want {
			t.Errorf("IsNumeric(%q) = %v, want %v", in, got, want)
		}
	}
}
