// Command gen renders the example scene into a hidden window at a few points
// of the blend animation and saves the frames as PNGs in doc/imgs/.
//
// Usage:
//
//	devbox shell
//	go run ./doc/gen/
package main

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"runtime"

	"github.com/disintegration/imaging"
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/shader"
	"github.com/go-theft-auto/shader/backend/opengl"
)

const (
	width  = 400
	height = 300
)

func init() {
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// frame is one captured point of the animation.
type frame struct {
	name string  // filename without extension
	t    float64 // scene time in seconds
}

var frames = []frame{
	{name: "pulse-mid", t: 0},
	{name: "pulse-peak", t: math.Pi / 2},
	{name: "pulse-trough", t: 3 * math.Pi / 2},
}

func run() error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.Visible, glfw.False)
	window, err := opengl.OpenWindow(opengl.WindowConfig{
		Width:   width,
		Height:  height,
		Title:   "frame-gen",
		GLMajor: 4,
		GLMinor: 1,
	})
	if err != nil {
		return err
	}
	defer window.Destroy()

	prog := shader.New(opengl.NewDriver())
	if err := prog.Init(
		filepath.Join("example", "shaders", "triangle.vert"),
		filepath.Join("example", "shaders", "triangle.frag"),
	); err != nil {
		return fmt.Errorf("shader program: %w", err)
	}
	tex, err := opengl.LoadTexture(filepath.Join("example", "res", "container.png"))
	if err != nil {
		return fmt.Errorf("texture: %w", err)
	}
	scene := opengl.NewScene(prog, opengl.NewMesh(opengl.QuadVertices, opengl.QuadIndices), tex)
	defer scene.Delete()

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	outDir := filepath.Join("doc", "imgs")
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}

	for _, f := range frames {
		// Render into the back buffer and read it before swapping.
		gl.Viewport(0, 0, width, height)
		gl.ClearColor(0.2, 0.3, 0.3, 1.0)
		gl.Clear(gl.COLOR_BUFFER_BIT)
		scene.Render(f.t)

		path := filepath.Join(outDir, f.name+".png")
		if err := imaging.Save(opengl.ReadFramebuffer(width, height), path); err != nil {
			return fmt.Errorf("save %s: %w", f.name, err)
		}
		fmt.Printf("  %s.png (blend %.2f)\n", f.name, opengl.Pulse(f.t))
	}

	fmt.Printf("\nGenerated %d frames in %s/\n", len(frames), outDir)
	return nil
}
