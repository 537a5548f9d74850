// Package opengl provides the OpenGL 4.1 core backend for the shader package:
// a shader.Driver over go-gl, GLFW window setup, a small indexed mesh, texture
// loading and the Scene that ties them into a render loop.
package opengl

import (
	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/go-theft-auto/shader"
)

// Driver implements shader.Driver with go-gl. gl.Init must have been called
// with the context current before any method is used.
type Driver struct{}

var _ shader.Driver = Driver{}

// NewDriver returns the OpenGL driver.
func NewDriver() Driver {
	return Driver{}
}

func (Driver) CreateProgram() uint32 {
	return gl.CreateProgram()
}

func (Driver) CreateShader(stage shader.Stage) uint32 {
	switch stage {
	case shader.StageVertex:
		return gl.CreateShader(gl.VERTEX_SHADER)
	case shader.StageFragment:
		return gl.CreateShader(gl.FRAGMENT_SHADER)
	default:
		return 0
	}
}

func (Driver) CompileShader(sh uint32, source string) bool {
	csource, free := gl.Strs(source + "\x00")
	gl.ShaderSource(sh, 1, csource, nil)
	free()
	gl.CompileShader(sh)

	var status int32
	gl.GetShaderiv(sh, gl.COMPILE_STATUS, &status)
	return status != gl.FALSE
}

func (Driver) ShaderInfoLog(sh uint32, max int) string {
	if max <= 0 {
		return ""
	}
	var length int32
	log := make([]byte, max)
	gl.GetShaderInfoLog(sh, int32(max), &length, &log[0])
	return string(log[:length])
}

func (Driver) AttachShader(program, sh uint32) {
	gl.AttachShader(program, sh)
}

func (Driver) LinkProgram(program uint32) bool {
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	return status != gl.FALSE
}

func (Driver) ProgramInfoLog(program uint32, max int) string {
	if max <= 0 {
		return ""
	}
	var length int32
	log := make([]byte, max)
	gl.GetProgramInfoLog(program, int32(max), &length, &log[0])
	return string(log[:length])
}

func (Driver) DeleteShader(sh uint32) {
	gl.DeleteShader(sh)
}

func (Driver) DeleteProgram(program uint32) {
	gl.DeleteProgram(program)
}

func (Driver) UseProgram(program uint32) {
	gl.UseProgram(program)
}

func (Driver) UniformLocation(program uint32, name string) int32 {
	return gl.GetUniformLocation(program, gl.Str(name+"\x00"))
}

func (Driver) ProgramUniform1i(program uint32, location int32, value int32) {
	gl.ProgramUniform1i(program, location, value)
}

func (Driver) ProgramUniform1f(program uint32, location int32, value float32) {
	gl.ProgramUniform1f(program, location, value)
}
