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

package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NVIDIA/version-organizer/pkg/defaults"
	apperrors "github.com/NVIDIA/version-organizer/pkg/errors"
)

func writeFixture(t *testing.T, root string, names ...string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(root, 0o755))
	for _, n := range names {
		require.NoError(t, os.WriteFile(filepath.Join(root, n), []byte(n), 0o644))
	}
}

func listDir(t *testing.T, root string) []string {
	t.Helper()
	var out []string
	_ = filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil || d.IsDir() || d.Name() == ".verorg.lock" {
			return nil
		}
		rel, _ := filepath.Rel(root, path)
		out = append(out, filepath.ToSlash(rel))
		return nil
	})
	sort.Strings(out)
	return out
}

func runCLI(t *testing.T, ctx context.Context, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(ctx, append([]string{name}, args...), &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, exitOK},
		{"plain error", errors.New("boom"), exitFatal},
		{"not found", apperrors.New(apperrors.ErrCodeNotFound, "missing"), exitFatal},
		{"locked", apperrors.New(apperrors.ErrCodeUnavailable, "locked"), exitFatal},
		{"canceled code", apperrors.Wrap(apperrors.ErrCodeCanceled, "stop", context.Canceled), exitCanceled},
		{"context canceled", fmt.Errorf("walk: %w", context.Canceled), exitCanceled},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, exitCode(tt.err))
		})
	}
}

func TestOrganizeCommand(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	src := filepath.Join(dir, "src")
	out := filepath.Join(dir, "out")
	writeFixture(t, src, "app-v1.0.0.bin", "app-v1.2.0.bin", "app-v2.0.0.bin", "notes.txt")
	reportPath := filepath.Join(dir, "report.txt")
	metricsPath := filepath.Join(dir, "verorg.prom")

	code, stdout, stderr := runCLI(t, context.Background(),
		"organize", "--base-folder", out, "--report", reportPath, "--metrics-file", metricsPath, src)
	require.Equal(t, exitOK, code, stderr)

	assert.Contains(t, stdout, "Version Organization Report")
	assert.Contains(t, stdout, "v1 (2 files")
	assert.Equal(t, []string{"v1/app-v1.0.0.bin", "v1/app-v1.2.0.bin", "v2/app-v2.0.0.bin"}, listDir(t, out))
	assert.Equal(t, []string{"notes.txt"}, listDir(t, src))

	saved, err := os.ReadFile(reportPath)
	require.NoError(t, err)
	assert.Equal(t, stdout, string(saved))
	info, err := os.Stat(reportPath)
	require.NoError(t, err)
	assert.Zero(t, info.Mode().Perm()&^defaults.FilePerm, "report file mode %v", info.Mode().Perm())

	metrics, err := os.ReadFile(metricsPath)
	require.NoError(t, err)
	assert.Contains(t, string(metrics), "verorg_files_scanned_total")
	assert.Contains(t, string(metrics), "verorg_files_moved_total")
}

func TestOrganizeCommand_DryRunJSON(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	src := filepath.Join(dir, "src")
	out := filepath.Join(dir, "out")
	writeFixture(t, src, "lib-1.2.3.so", "lib-1.4.0.so", "readme.txt")

	code, stdout, stderr := runCLI(t, context.Background(),
		"organize", "--dry-run", "--mode", "minor", "--base-folder", out, "--format", "json", src)
	require.Equal(t, exitOK, code, stderr)

	var summary struct {
		Kind     string            `json:"kind"`
		Metadata map[string]string `json:"metadata"`
		Mode     string            `json:"mode"`
		DryRun   bool              `json:"dry_run"`
		Stats    struct {
			FilesScanned   int `json:"files_scanned"`
			FilesOrganized int `json:"files_organized"`
		} `json:"stats"`
		Groups []struct {
			Key string `json:"key"`
		} `json:"groups"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &summary))
	assert.Equal(t, "OrganizeSummary", summary.Kind)
	assert.NotEmpty(t, summary.Metadata["run_id"])
	assert.Equal(t, versionDefault, summary.Metadata["version"])
	assert.Equal(t, "minor", summary.Mode)
	assert.True(t, summary.DryRun)
	assert.Equal(t, 3, summary.Stats.FilesScanned)
	assert.Equal(t, 2, summary.Stats.FilesOrganized)
	require.Len(t, summary.Groups, 2)
	assert.Equal(t, "1.2", summary.Groups[0].Key)

	assert.Equal(t, []string{"lib-1.2.3.so", "lib-1.4.0.so", "readme.txt"}, listDir(t, src))
	_, err := os.Stat(out)
	assert.True(t, os.IsNotExist(err))
}

func TestOrganizeCommand_Failures(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	src := filepath.Join(dir, "src")
	writeFixture(t, src, "a-1.0.bin")

	tests := []struct {
		name string
		args []string
	}{
		{"missing directory", []string{"organize", filepath.Join(dir, "nope")}},
		{"file instead of directory", []string{"organize", filepath.Join(src, "a-1.0.bin")}},
		{"no argument", []string{"organize"}},
		{"bad mode", []string{"organize", "--mode", "fuzzy", src}},
		{"bad format", []string{"organize", "--format", "xml", src}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, _, stderr := runCLI(t, context.Background(), tt.args...)
			assert.Equal(t, exitFatal, code)
			assert.Contains(t, stderr, "Error:")
		})
	}
	assert.Equal(t, []string{"a-1.0.bin"}, listDir(t, src))
}

func TestOrganizeCommand_Canceled(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	src := filepath.Join(dir, "src")
	writeFixture(t, src, "a-1.0.bin")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	code, stdout, _ := runCLI(t, ctx, "organize", "--base-folder", filepath.Join(dir, "out"), "--format", "json", src)
	assert.Equal(t, exitCanceled, code)
	assert.Contains(t, stdout, `"canceled": true`)
	assert.Equal(t, []string{"a-1.0.bin"}, listDir(t, src))
}

func TestScanCommand(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	src := filepath.Join(dir, "src")
	writeFixture(t, src, "tool-3.1.tgz", "tool-3.2.tgz")

	code, stdout, stderr := runCLI(t, context.Background(), "scan", "--format", "table", src)
	require.Equal(t, exitOK, code, stderr)
	assert.Contains(t, stdout, "v3")
	assert.Equal(t, []string{"tool-3.1.tgz", "tool-3.2.tgz"}, listDir(t, src))
	_, err := os.Stat(filepath.Join(dir, "organized"))
	assert.True(t, os.IsNotExist(err))
}

func TestOrganizeCommand_OutputFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	src := filepath.Join(dir, "src")
	writeFixture(t, src, "app-v1.0.0.bin", "app-v2.0.0.bin", "notes.txt")

	tests := []struct {
		name   string
		file   string
		decode func([]byte, any) error
	}{
		{"json", "summary.json", json.Unmarshal},
		{"toml", "summary.toml", toml.Unmarshal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			outputPath := filepath.Join(dir, tt.file)
			code, stdout, stderr := runCLI(t, context.Background(),
				"organize", "--dry-run", "--base-folder", filepath.Join(dir, "out"), "--output", outputPath, src)
			require.Equal(t, exitOK, code, stderr)
			assert.Contains(t, stdout, "Version Organization Report")

			data, err := os.ReadFile(outputPath)
			require.NoError(t, err)
			var doc map[string]any
			require.NoError(t, tt.decode(data, &doc), string(data))
			assert.Equal(t, "OrganizeSummary", doc["kind"])
			assert.Equal(t, true, doc["dry_run"])
			require.IsType(t, map[string]any{}, doc["stats"])
			assert.EqualValues(t, 2, doc["stats"].(map[string]any)["files_organized"])
			require.IsType(t, []any{}, doc["groups"])
			assert.Len(t, doc["groups"], 2)
		})
	}
}

func TestScanCommand_TOMLAndOutput(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	src := filepath.Join(dir, "src")
	writeFixture(t, src, "tool-3.1.tgz", "tool-3.2.tgz", "tool-4.0.tgz")
	outputPath := filepath.Join(dir, "groups.yaml")

	code, stdout, stderr := runCLI(t, context.Background(),
		"scan", "--format", "toml", "--output", outputPath, src)
	require.Equal(t, exitOK, code, stderr)

	var doc map[string]any
	require.NoError(t, toml.Unmarshal([]byte(stdout), &doc), stdout)
	assert.Equal(t, "ScanSummary", doc["kind"])
	assert.Equal(t, "verorg/v1alpha1", doc["apiVersion"])
	require.IsType(t, map[string]any{}, doc["metadata"])
	assert.NotEmpty(t, doc["metadata"].(map[string]any)["run_id"])

	data, err := os.ReadFile(outputPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "kind: ScanSummary")
	assert.Contains(t, string(data), "version_groups_created: 2")
}

func TestExtractCommand(t *testing.T) {
	t.Chdir(t.TempDir())

	code, stdout, stderr := runCLI(t, context.Background(),
		"extract", "--format", "json", "tool-v2.0.1_old1.0.0.txt", "notes.txt")
	require.Equal(t, exitOK, code, stderr)

	var got []extraction
	require.NoError(t, json.Unmarshal([]byte(stdout), &got))
	require.Len(t, got, 2)
	assert.True(t, got[0].Found)
	assert.Equal(t, "2.0.1", got[0].Raw)
	assert.Equal(t, "2", got[0].GroupKey)
	assert.False(t, got[1].Found)

	code, stdout, _ = runCLI(t, context.Background(), "extract", "notes.txt")
	require.Equal(t, exitOK, code)
	assert.Equal(t, "notes.txt: no version\n", stdout)

	code, stdout, stderr = runCLI(t, context.Background(), "extract", "--format", "toml", "app-v1.2.3.bin")
	require.Equal(t, exitOK, code, stderr)
	var doc struct {
		Extractions []extraction `toml:"extractions"`
	}
	require.NoError(t, toml.Unmarshal([]byte(stdout), &doc), stdout)
	require.Len(t, doc.Extractions, 1)
	assert.Equal(t, "1.2.3", doc.Extractions[0].Normalized)
}

func TestCompatCommand(t *testing.T) {
	t.Chdir(t.TempDir())

	tests := []struct {
		args []string
		want string
	}{
		{[]string{"compat", "1.2.3", "1.9.0"}, "1.2.3 and 1.9.0 are compatible under major\n"},
		{[]string{"compat", "--mode", "minor", "1.2.3", "1.3.0"}, "1.2.3 and 1.3.0 are incompatible under minor\n"},
		{[]string{"compat", "--mode", "exact", "v1.0", "1.0.0"}, "1.0 and 1.0.0 are compatible under exact\n"},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprint(tt.args), func(t *testing.T) {
			code, stdout, stderr := runCLI(t, context.Background(), tt.args...)
			require.Equal(t, exitOK, code, stderr)
			assert.Equal(t, tt.want, stdout)
		})
	}

	code, _, _ := runCLI(t, context.Background(), "compat", "1.0")
	assert.Equal(t, exitFatal, code)
}

func TestCompatCommand_Table(t *testing.T) {
	t.Chdir(t.TempDir())

	code, stdout, stderr := runCLI(t, context.Background(), "compat", "--format", "table", "--mode", "minor", "1.2.3", "1.2.9")
	require.Equal(t, exitOK, code, stderr)

	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	require.Len(t, lines, 6, stdout)
	assert.Equal(t, []string{"FIELD", "VALUE"}, strings.Fields(lines[0]))
	assert.Equal(t, []string{"compatible", "true"}, strings.Fields(lines[2]))
	assert.Equal(t, []string{"mode", "minor"}, strings.Fields(lines[3]))
	assert.Equal(t, []string{"v1", "1.2.3"}, strings.Fields(lines[4]))
	assert.Equal(t, []string{"v2", "1.2.9"}, strings.Fields(lines[5]))
}
