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
	"path/filepath"
	"regexp"
	"strings"
)

// fallbackPatterns is tried after any configured pattern, in this order,
// stopping at the first match.
var fallbackPatterns = []string{
	`v(\d+\.\d+\.\d+)`,
	`v(\d+\.\d+)`,
	`v(\d+)`,
	`[-_](\d+\.\d+\.\d+)`,
	`[-_](\d+\.\d+)`,
	`[-_](\d+)`,
	`(\d+\.\d+\.\d+)`,
	`(\d+\.\d+)`,
}

var fallbackMatchers = mustCompileMatchers(SourceFallback, fallbackPatterns)

// FallbackPatterns returns a copy of the built-in pattern table in priority order.
func FallbackPatterns() []string {
	out := make([]string, len(fallbackPatterns))
	copy(out, fallbackPatterns)
	return out
}

// Source tells whether a matcher came from configuration or the built-in table.
type Source string

const (
	// SourceConfigured marks user supplied patterns.
	SourceConfigured Source = "configured"
	// SourceFallback marks the built-in table.
	SourceFallback Source = "fallback"
)

// Matcher is a single compiled pattern in the extraction chain.
type Matcher struct {
	Pattern string
	Source  Source
	re      *regexp.Regexp
}

// Match returns the first capture group of the pattern in s when the group
// participated in the match, otherwise the whole match. Empty results never
// count as a match.
func (m Matcher) Match(s string) (string, bool) {
	loc := m.re.FindStringSubmatchIndex(s)
	if loc == nil {
		return "", false
	}
	start, end := loc[0], loc[1]
	if len(loc) > 3 && loc[2] >= 0 {
		start, end = loc[2], loc[3]
	}
	if start == end {
		return "", false
	}
	return s[start:end], true
}

// Extractor finds a raw version string in a file name.
type Extractor struct {
	matchers []Matcher
}

// Extraction describes a successful match.
type Extraction struct {
	Raw     string
	Pattern string
	Source  Source
}

// NewExtractor compiles the configured patterns and appends the fallback
// table. An invalid pattern is returned as an error naming its position.
func NewExtractor(patterns ...string) (*Extractor, error) {
	configured, err := compileMatchers(SourceConfigured, patterns)
	if err != nil {
		return nil, err
	}
	matchers := make([]Matcher, 0, len(configured)+len(fallbackMatchers))
	matchers = append(matchers, configured...)
	matchers = append(matchers, fallbackMatchers...)
	return &Extractor{matchers: matchers}, nil
}

// Matchers returns the chain in evaluation order.
func (e *Extractor) Matchers() []Matcher {
	out := make([]Matcher, len(e.matchers))
	copy(out, e.matchers)
	return out
}

// Extract returns the raw version found in filename, or false when no
// pattern matches. The extension is stripped first and never matched.
func (e *Extractor) Extract(filename string) (string, bool) {
	x, ok := e.ExtractDetail(filename)
	return x.Raw, ok
}

// ExtractDetail is Extract plus the pattern that produced the match.
func (e *Extractor) ExtractDetail(filename string) (Extraction, bool) {
	stem := Stem(filename)
	for _, m := range e.matchers {
		if raw, ok := m.Match(stem); ok {
			return Extraction{Raw: raw, Pattern: m.Pattern, Source: m.Source}, true
		}
	}
	return Extraction{}, false
}

// Stem returns the file name without its final extension. Dot files such
// as ".bashrc" have no extension and are returned unchanged.
func Stem(filename string) string {
	base := filepath.Base(filename)
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)
	if stem == "" {
		return base
	}
	return stem
}

func compileMatchers(src Source, patterns []string) ([]Matcher, error) {
	out := make([]Matcher, 0, len(patterns))
	for i, p := range patterns {
		re, err := regexp.Compile(p)
		if err != nil {
			return nil, fmt.Errorf("pattern %d %q: %w", i, p, err)
		}
		out = append(out, Matcher{Pattern: p, Source: src, re: re})
	}
	return out, nil
}

func mustCompileMatchers(src Source, patterns []string) []Matcher {
	m, err := compileMatchers(src, patterns)
	if err != nil {
		panic(err)
	}
	return m
}
