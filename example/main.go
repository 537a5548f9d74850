// Example draws a vertex-colored, optionally textured quad whose opacity
// pulses over time, using the shader package with the OpenGL backend.
//
// Prerequisites:
//
//	Install devbox: https://www.jetify.com/devbox
//	devbox shell              # enter the dev environment (provides Go + OpenGL/X11 headers)
//	cd example && go run .    # run this example
//
// Settings come from triangle.toml (see -config). With hot_reload enabled,
// saving either shader file rebuilds the program; a broken edit is logged
// and the last good program keeps drawing.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/shader"
	"github.com/go-theft-auto/shader/backend/opengl"
)

func init() {
	// GLFW and the GL context must stay on the main thread.
	runtime.LockOSThread()
}

func main() {
	configPath := flag.String("config", "triangle.toml", "settings file; empty for defaults")
	verbose := flag.Bool("v", false, "log debug messages")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if err := run(*configPath, logger); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(configPath string, logger *slog.Logger) error {
	cfg, err := LoadConfig(configPath)
	if err != nil {
		return err
	}

	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	window, err := opengl.OpenWindow(cfg.windowConfig())
	if err != nil {
		return err
	}
	defer window.Destroy()

	scene, err := newScene(cfg, logger)
	if err != nil {
		return err
	}
	defer scene.Delete()

	var changed <-chan struct{}
	if cfg.Shaders.HotReload {
		watcher, err := shader.NewWatcher(logger, cfg.Shaders.Vertex, cfg.Shaders.Fragment)
		if err != nil {
			return fmt.Errorf("watch shaders: %w", err)
		}
		defer watcher.Close()
		changed = watcher.Changed()
	}

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)

	c := cfg.ClearColor
	for !window.ShouldClose() {
		opengl.ProcessInput(window)

		select {
		case <-changed:
			reload(scene, logger)
		default:
		}

		gl.ClearColor(c[0], c[1], c[2], c[3])
		gl.Clear(gl.COLOR_BUFFER_BIT)

		scene.Render(glfw.GetTime())

		window.SwapBuffers()
		glfw.PollEvents()
	}

	return nil
}

// newScene builds the program, mesh and texture. A texture that cannot be
// loaded is logged and the quad is drawn with vertex colors only.
func newScene(cfg Config, logger *slog.Logger) (*opengl.Scene, error) {
	prog := shader.New(opengl.NewDriver(), shader.WithLogger(logger))
	if err := prog.Init(cfg.Shaders.Vertex, cfg.Shaders.Fragment); err != nil {
		return nil, fmt.Errorf("shader program: %w", err)
	}

	var tex uint32
	if cfg.Texture != "" {
		var err error
		tex, err = opengl.LoadTexture(cfg.Texture)
		if err != nil {
			logger.Warn("failed to load texture", "err", err)
		}
	}

	mesh := opengl.NewMesh(opengl.QuadVertices, opengl.QuadIndices)
	return opengl.NewScene(prog, mesh, tex), nil
}

func reload(scene *opengl.Scene, logger *slog.Logger) {
	next, err := scene.Program().Reload()
	if err != nil {
		logger.Error("shader reload failed, keeping previous program", "err", err)
		return
	}
	scene.SwapProgram(next)
	logger.Info("shaders reloaded", "program", next.Handle())
}
