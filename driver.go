package shader

// InfoLogSize bounds the compile and link diagnostics captured by Init.
const InfoLogSize = 512

// Stage identifies a pipeline stage of a Program.
type Stage int

const (
	StageVertex Stage = iota
	StageFragment
)

// String returns the lower-case stage name.
func (s Stage) String() string {
	switch s {
	case StageVertex:
		return "vertex"
	case StageFragment:
		return "fragment"
	default:
		return "unknown"
	}
}

// Driver is the graphics API used by Program. Handles are the API's object
// names; 0 never names a live object. Implementations assume the context is
// current on the calling thread.
type Driver interface {
	CreateProgram() uint32
	CreateShader(stage Stage) uint32
	// CompileShader sets the shader's source, compiles it and reports the
	// compile status.
	CompileShader(shader uint32, source string) bool
	// ShaderInfoLog returns at most max bytes of the shader's info log.
	ShaderInfoLog(shader uint32, max int) string
	AttachShader(program, shader uint32)
	// LinkProgram links the program and reports the link status.
	LinkProgram(program uint32) bool
	// ProgramInfoLog returns at most max bytes of the program's info log.
	ProgramInfoLog(program uint32, max int) string
	DeleteShader(shader uint32)
	DeleteProgram(program uint32)
	UseProgram(program uint32)
	// UniformLocation returns -1 if name is not an active uniform.
	UniformLocation(program uint32, name string) int32
	// ProgramUniform1i and ProgramUniform1f write a uniform of program
	// whether or not it is the current program.
	ProgramUniform1i(program uint32, location int32, value int32)
	ProgramUniform1f(program uint32, location int32, value float32)
}
