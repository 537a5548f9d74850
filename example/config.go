package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/go-theft-auto/shader/backend/opengl"
)

// Config is the example's settings file.
type Config struct {
	Window     WindowConfig  `toml:"window"`
	GL         GLConfig      `toml:"gl"`
	Shaders    ShadersConfig `toml:"shaders"`
	Texture    string        `toml:"texture"`
	ClearColor [4]float32    `toml:"clear_color"`
}

type WindowConfig struct {
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
	Title  string `toml:"title"`
	VSync  bool   `toml:"vsync"`
}

type GLConfig struct {
	Major int `toml:"major"`
	Minor int `toml:"minor"`
}

type ShadersConfig struct {
	Vertex    string `toml:"vertex"`
	Fragment  string `toml:"fragment"`
	HotReload bool   `toml:"hot_reload"`
}

// DefaultConfig returns the settings used when no file is given.
func DefaultConfig() Config {
	return Config{
		Window: WindowConfig{
			Width:  800,
			Height: 600,
			Title:  "LearnOpenGL",
			VSync:  true,
		},
		GL: GLConfig{Major: 4, Minor: 1},
		Shaders: ShadersConfig{
			Vertex:   "shaders/triangle.vert",
			Fragment: "shaders/triangle.frag",
		},
		ClearColor: [4]float32{0.2, 0.3, 0.3, 1.0},
	}
}

// LoadConfig reads path over the defaults. An empty path returns the
// defaults. Unknown keys are rejected.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	if err := toml.NewDecoder(f).DisallowUnknownFields().Decode(&cfg); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return Config{}, fmt.Errorf("config %s: %s", path, strict.String())
		}
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate reports settings that cannot produce a window or a program.
func (c Config) Validate() error {
	switch {
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height)
	case c.GL.Major < 3 || (c.GL.Major == 3 && c.GL.Minor < 3):
		return fmt.Errorf("gl %d.%d: a 3.3 or newer core profile is required", c.GL.Major, c.GL.Minor)
	case c.Shaders.Vertex == "" || c.Shaders.Fragment == "":
		return errors.New("both shader paths are required")
	}
	return nil
}

func (c Config) windowConfig() opengl.WindowConfig {
	return opengl.WindowConfig{
		Width:   c.Window.Width,
		Height:  c.Window.Height,
		Title:   c.Window.Title,
		GLMajor: c.GL.Major,
		GLMinor: c.GL.Minor,
		VSync:   c.Window.VSync,
	}
}
