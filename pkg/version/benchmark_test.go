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

func BenchmarkExtractFallback(b *testing.B) {
	ex, err := NewExtractor()
	if err != nil {
		b.Fatal(err)
	}
	names := []string{
		"app-v1.2.3.bin",
		"tool_2.0.tar",
		"libfoo-10.bin",
		"readme.txt",
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = ex.Extract(names[i%len(names)])
	}
}

func BenchmarkNormalize(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = Normalize("release-3.4.1-beta")
	}
}

func BenchmarkGroupKey(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = GroupKey("1.2.3.4", ModeMinor)
	}
}
