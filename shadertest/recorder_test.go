package shadertest_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-theft-auto/shader"
	"github.com/go-theft-auto/shader/shadertest"
)

const (
	vert = "#version 330 core\nout vec3 c;\nuniform float k;\nvoid main() { c = vec3(k); }\n"
	frag = "#version 330 core\nin vec3 c;\nout vec4 o;\nvoid main() { o = vec4(c, 1.0); }\n"
)

func link(t *testing.T, r *shadertest.Recorder) uint32 {
	t.Helper()
	p := r.CreateProgram()
	vs := r.CreateShader(shader.StageVertex)
	fs := r.CreateShader(shader.StageFragment)
	require.True(t, r.CompileShader(vs, vert))
	require.True(t, r.CompileShader(fs, frag))
	r.AttachShader(p, vs)
	r.AttachShader(p, fs)
	require.True(t, r.LinkProgram(p))
	return p
}

func TestRecorderUseProgramRequiresLink(t *testing.T) {
	r := shadertest.NewRecorder()
	p := r.CreateProgram()

	r.UseProgram(p)
	assert.Zero(t, r.Active())
	assert.Len(t, r.Errors, 1)
}

func TestRecorderUniforms(t *testing.T) {
	r := shadertest.NewRecorder()
	p := link(t, r)

	loc := r.UniformLocation(p, "k")
	assert.Equal(t, int32(0), loc)
	assert.Equal(t, int32(-1), r.UniformLocation(p, "missing"))

	// Writes land in the named program whether or not it is current.
	r.ProgramUniform1f(p, loc, 2)
	r.ProgramUniform1i(p, -1, 9)
	v, ok := r.Uniform(p, "k")
	require.True(t, ok)
	assert.Equal(t, float32(2), v)
	assert.Zero(t, r.Active())
	assert.Empty(t, r.Errors)

	r.ProgramUniform1f(p, 7, 1)
	assert.Len(t, r.Errors, 1)

	unlinked := r.CreateProgram()
	r.ProgramUniform1i(unlinked, 0, 1)
	assert.Len(t, r.Errors, 2)
}

func TestRecorderDeleteActiveProgram(t *testing.T) {
	r := shadertest.NewRecorder()
	p := link(t, r)
	r.UseProgram(p)

	r.DeleteProgram(p)
	assert.Zero(t, r.Active())
	assert.True(t, r.Program(p).Deleted)

	_, programs := r.Live()
	assert.Zero(t, programs)
}

func TestRecorderInfoLogTruncation(t *testing.T) {
	r := shadertest.NewRecorder()
	vs := r.CreateShader(shader.StageVertex)
	require.False(t, r.CompileShader(vs, "void main() {}"))

	full := r.ShaderInfoLog(vs, 4096)
	require.NotEmpty(t, full)
	assert.Equal(t, full[:3], r.ShaderInfoLog(vs, 4))
	assert.Empty(t, r.ShaderInfoLog(vs, 0))
}

func TestRecorderCalls(t *testing.T) {
	r := shadertest.NewRecorder()
	p := link(t, r)
	r.Reset()

	r.UseProgram(p)
	r.UseProgram(0)

	assert.Equal(t, []string{"UseProgram", "UseProgram"}, r.CallNames())
	assert.Equal(t, "UseProgram(0)", r.Calls[1].String())
	assert.Equal(t, 2, r.Count("UseProgram"))
}
