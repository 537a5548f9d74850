package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-theft-auto/shader/backend/opengl"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "triangle.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
	assert.NoError(t, cfg.Validate())
}

func TestLoadConfigOverrides(t *testing.T) {
	path := writeConfig(t, `
texture = "res/wall.png"

[window]
width = 1024
title = "triangle"

[shaders]
hot_reload = true
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 1024, cfg.Window.Width)
	assert.Equal(t, 600, cfg.Window.Height, "unset keys keep their defaults")
	assert.Equal(t, "triangle", cfg.Window.Title)
	assert.Equal(t, "res/wall.png", cfg.Texture)
	assert.True(t, cfg.Shaders.HotReload)
	assert.Equal(t, "shaders/triangle.vert", cfg.Shaders.Vertex)

	wc := cfg.windowConfig()
	assert.Equal(t, 1024, wc.Width)
	assert.Equal(t, 4, wc.GLMajor)
}

func TestLoadConfigShippedFile(t *testing.T) {
	cfg, err := LoadConfig("triangle.toml")
	require.NoError(t, err)
	assert.Equal(t, "shaders/triangle.vert", cfg.Shaders.Vertex)
	assert.Equal(t, [4]float32{0.2, 0.3, 0.3, 1.0}, cfg.ClearColor)

	// The shipped texture must decode so the textured path runs.
	img, err := opengl.DecodeTexture(cfg.Texture)
	require.NoError(t, err)
	assert.Equal(t, 64, img.Bounds().Dx())
	assert.Equal(t, 64, img.Bounds().Dy())
}

func TestLoadConfigRejectsUnknownKeys(t *testing.T) {
	_, err := LoadConfig(writeConfig(t, "[window]\nwidht = 10\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "widht")
}

func TestLoadConfigInvalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"zero width", "[window]\nwidth = 0\n"},
		{"old context", "[gl]\nmajor = 3\nminor = 2\n"},
		{"no fragment", "[shaders]\nfragment = \"\"\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig(writeConfig(t, tt.body))
			assert.Error(t, err)
		})
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
