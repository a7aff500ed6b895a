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

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path string
		want Format
	}{
		{"config.json", FormatJSON},
		{"CONFIG.JSON", FormatJSON},
		{"config.yaml", FormatYAML},
		{"config.yml", FormatYAML},
		{"config.toml", FormatTOML},
		{"config", FormatYAML},
		{"/etc/verorg/config.conf", FormatYAML},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatFromPath(tt.path))
		})
	}
}

func TestNewReader(t *testing.T) {
	_, err := NewReader(FormatTable, strings.NewReader(""))
	assert.Error(t, err)

	_, err = NewReader("xml", strings.NewReader(""))
	assert.Error(t, err)

	r, err := NewReader(FormatJSON, strings.NewReader(`{"name":"a","value":1}`))
	require.NoError(t, err)
	var got testConfig
	require.NoError(t, r.Deserialize(&got))
	assert.Equal(t, testConfig{Name: "a", Value: 1}, got)
	assert.NoError(t, r.Close())
}

func TestReader_DeserializeFormats(t *testing.T) {
	tests := []struct {
		name   string
		format Format
		input  string
	}{
		{"json", FormatJSON, `{"name":"x","value":5}`},
		{"yaml", FormatYAML, "name: x\nvalue: 5\n"},
		{"toml", FormatTOML, "name = 'x'\nvalue = 5\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := NewReader(tt.format, strings.NewReader(tt.input))
			require.NoError(t, err)

			var got testConfig
			require.NoError(t, r.Deserialize(&got))
			assert.Equal(t, testConfig{Name: "x", Value: 5}, got)
		})
	}
}

func TestReader_UnknownFieldsRejected(t *testing.T) {
	tests := []struct {
		format Format
		input  string
	}{
		{FormatYAML, "name: x\nbogus: 1\n"},
		{FormatTOML, "name = 'x'\nbogus = 1\n"},
	}

	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			r, err := NewReader(tt.format, strings.NewReader(tt.input))
			require.NoError(t, err)
			var got testConfig
			assert.Error(t, r.Deserialize(&got))
		})
	}
}

func TestReader_EmptyYAML(t *testing.T) {
	r, err := NewReader(FormatYAML, strings.NewReader(""))
	require.NoError(t, err)

	got := testConfig{Name: "keep"}
	require.NoError(t, r.Deserialize(&got))
	assert.Equal(t, "keep", got.Name)
}

func TestReader_NilChecks(t *testing.T) {
	var r *Reader
	assert.Error(t, r.Deserialize(&testConfig{}))
	assert.NoError(t, r.Close())

	empty := &Reader{format: FormatJSON}
	assert.Error(t, empty.Deserialize(&testConfig{}))
}

func TestFromFile(t *testing.T) {
	dir := t.TempDir()

	yamlPath := filepath.Join(dir, "c.yaml")
	require.NoError(t, os.WriteFile(yamlPath, []byte("name: y\nvalue: 2\n"), 0o600))
	got, err := FromFile[testConfig](yamlPath)
	require.NoError(t, err)
	assert.Equal(t, testConfig{Name: "y", Value: 2}, *got)

	tomlPath := filepath.Join(dir, "c.toml")
	require.NoError(t, os.WriteFile(tomlPath, []byte("name = 't'\nvalue = 3\n"), 0o600))
	got, err = FromFile[testConfig](tomlPath)
	require.NoError(t, err)
	assert.Equal(t, testConfig{Name: "t", Value: 3}, *got)

	_, err = FromFile[testConfig](filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)

	badPath := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(badPath, []byte("{not json"), 0o600))
	_, err = FromFile[testConfig](badPath)
	assert.Error(t, err)
}
