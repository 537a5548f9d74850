package opengl

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/go-theft-auto/shader"
)

// Uniform names the scene sets each frame.
const (
	UniformBlend      = "blend"
	UniformTexture    = "ourTexture"
	UniformUseTexture = "useTexture"
)

// Pulse maps time in seconds to a blend factor oscillating in [0, 1].
func Pulse(t float64) float32 {
	return math32.Sin(float32(t))/2 + 0.5
}

// Scene owns the GPU state of one frame: the program, the mesh and the
// optional texture.
type Scene struct {
	program *shader.Program
	mesh    *Mesh
	texture uint32
}

// NewScene takes ownership of program, mesh and texture (0 for none).
func NewScene(program *shader.Program, mesh *Mesh, texture uint32) *Scene {
	return &Scene{program: program, mesh: mesh, texture: texture}
}

// Program returns the current program.
func (s *Scene) Program() *shader.Program {
	return s.program
}

// SwapProgram replaces the program and deletes the previous one.
func (s *Scene) SwapProgram(p *shader.Program) {
	if s.program != nil && s.program != p {
		s.program.Delete()
	}
	s.program = p
}

// Render draws one frame at time t (seconds).
func (s *Scene) Render(t float64) {
	s.program.Bind()

	s.program.SetFloat(UniformBlend, Pulse(t))
	s.program.SetBool(UniformUseTexture, s.texture != 0)
	if s.texture != 0 {
		gl.ActiveTexture(gl.TEXTURE0)
		gl.BindTexture(gl.TEXTURE_2D, s.texture)
		s.program.SetInt(UniformTexture, 0)
	}

	s.mesh.Draw()

	if s.texture != 0 {
		gl.BindTexture(gl.TEXTURE_2D, 0)
	}
	s.program.Unbind()
}

// Delete releases everything the scene owns.
func (s *Scene) Delete() {
	if s.texture != 0 {
		gl.DeleteTextures(1, &s.texture)
		s.texture = 0
	}
	if s.mesh != nil {
		s.mesh.Delete()
	}
	if s.program != nil {
		s.program.Delete()
	}
}
