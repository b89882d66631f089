// Copyright 2025 Naren Yellavula
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

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "avltree.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	t.Setenv(configEnvVar, path)
	return path
}

func TestLoadConfigMissingFile(t *testing.T) {
	t.Setenv(configEnvVar, filepath.Join(t.TempDir(), "missing.yaml"))

	config, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, defaultConfig, *config)
}

func TestLoadConfigPartialFile(t *testing.T) {
	writeConfig(t, "shell:\n  prompt: \"tree> \"\n  print_format: tree\nbench:\n  keys: 100\n  deletes: 10\n")

	config, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "tree> ", config.Shell.Prompt)
	assert.Equal(t, "tree", config.Shell.PrintFormat)
	assert.Equal(t, 100, config.Bench.Keys)
	assert.Equal(t, 10, config.Bench.Deletes)

	// untouched fields keep their defaults
	assert.Equal(t, defaultConfig.Bench.Lookups, config.Bench.Lookups)
	assert.Equal(t, defaultConfig.Log, config.Log)
}

func TestLoadConfigInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"broken yaml", "shell: [unclosed"},
		{"bad print format", "shell:\n  print_format: svg\n"},
		{"bad log level", "log:\n  level: loud\n"},
		{"too many deletes", "bench:\n  keys: 5\n  deletes: 6\n"},
		{"empty bloom", "bench:\n  bloom_bits: 0\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			writeConfig(t, tt.content)

			config, err := LoadConfig()
			assert.Error(t, err)
			require.NotNil(t, config)
			assert.Equal(t, defaultConfig, *config)
		})
	}
}

func TestLoadConfigDoesNotLeakIntoDefaults(t *testing.T) {
	writeConfig(t, "shell:\n  prompt: \"x \"\n")

	_, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "avl> ", defaultConfig.Shell.Prompt)
}

func TestDisplaySettingsCreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	t.Setenv(configEnvVar, path)

	var out bytes.Buffer
	require.NoError(t, displaySettings(&out))
	assert.Contains(t, out.String(), "newly created")
	assert.Contains(t, out.String(), "print_format")

	_, err := os.Stat(path)
	require.NoError(t, err)

	config, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, defaultConfig, *config)

	out.Reset()
	require.NoError(t, displaySettings(&out))
	assert.NotContains(t, out.String(), "newly created")
}
