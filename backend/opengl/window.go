package opengl

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// WindowConfig describes the window and the context requested for it.
type WindowConfig struct {
	Width  int
	Height int
	Title  string
	// GLMajor and GLMinor select the core-profile context version.
	GLMajor int
	GLMinor int
	VSync   bool
}

// OpenWindow creates a window with a forward-compatible core-profile context,
// makes the context current and loads the GL entry points. glfw.Init must
// have been called on the main thread.
func OpenWindow(cfg WindowConfig) (*glfw.Window, error) {
	glfw.WindowHint(glfw.ContextVersionMajor, cfg.GLMajor)
	glfw.WindowHint(glfw.ContextVersionMinor, cfg.GLMinor)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()
	if cfg.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	if err := gl.Init(); err != nil {
		window.Destroy()
		return nil, fmt.Errorf("gl init: %w", err)
	}

	// The framebuffer can differ from the window size on HiDPI displays.
	w, h := window.GetFramebufferSize()
	gl.Viewport(0, 0, int32(w), int32(h))
	window.SetFramebufferSizeCallback(resizeCallback)

	return window, nil
}

func resizeCallback(w *glfw.Window, width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
}

// ProcessInput polls per-frame input. Escape requests the window to close.
func ProcessInput(window *glfw.Window) {
	if window.GetKey(glfw.KeyEscape) == glfw.Press {
		window.SetShouldClose(true)
	}
}
