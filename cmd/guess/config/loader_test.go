// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package config

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "guess.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestDefaultPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path, err := DefaultPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".guess", "guess.yaml"), path)
}

// TestLoad_MissingDefaultFile verifies defaults are used and nothing is written.
func TestLoad_MissingDefaultFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)

	_, err = os.Stat(filepath.Join(home, ".guess"))
	assert.ErrorIs(t, err, fs.ErrNotExist, "loading must not create a config directory")
}

func TestLoad_DefaultFileIsRead(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	dir := filepath.Join(home, ".guess")
	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "guess.yaml"), []byte("range:\n  max: 10\n"), 0644))

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, uint64(1), cfg.Range.Min)
	assert.Equal(t, uint64(10), cfg.Range.Max)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, fs.ErrNotExist)
	assert.Contains(t, err.Error(), "failed to read the config file")
}

func TestLoad_OverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
range:
  min: 10
  max: 20
logging:
  level: debug
  json: true
  dir: /tmp/guess-logs
ux:
  personality: minimal
  show_hints: false
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, RangeConfig{Min: 10, Max: 20}, cfg.Range)
	assert.Equal(t, LoggingConfig{Level: "debug", JSON: true, Dir: "/tmp/guess-logs"}, cfg.Logging)
	assert.Equal(t, UXConfig{Personality: "minimal", ShowHints: false}, cfg.UX)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := writeConfig(t, "ux:\n  personality: machine\n")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "machine", cfg.UX.Personality)
	assert.True(t, cfg.UX.ShowHints)
	assert.Equal(t, DefaultConfig().Range, cfg.Range)
	assert.Equal(t, "warn", cfg.Logging.Level)
}

func TestLoad_EmptyFile(t *testing.T) {
	cfg, err := Load(writeConfig(t, ""))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoad_MalformedYAML(t *testing.T) {
	_, err := Load(writeConfig(t, "range: [1, 2\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse the config file")
}

func TestLoad_NegativeBound(t *testing.T) {
	_, err := Load(writeConfig(t, "range:\n  min: -1\n"))
	require.Error(t, err)
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"min above max", "range:\n  min: 50\n  max: 5\n", "Range.Max"},
		{"unknown level", "logging:\n  level: loud\n", "Logging.Level"},
		{"unknown personality", "ux:\n  personality: chatty\n", "UX.Personality"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, tt.body)
			_, err := Load(path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "invalid config")
			assert.Contains(t, err.Error(), tt.want)
			assert.Contains(t, err.Error(), path)
		})
	}
}
