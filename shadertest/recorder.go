// Package shadertest provides a recording shader.Driver for tests that have
// no graphics context.
//
// Recorder keeps the object model of a GL implementation (shader and program
// names, the active program, per-program uniform storage) and runs a small
// GLSL front-end so that sources behave plausibly: a stage without a
// #version directive or a main function does not compile, and a program
// whose fragment inputs are not all written by the vertex stage does not
// link. Uniforms are active when they are declared and referenced.
package shadertest

import (
	"fmt"
	"sort"
	"strings"

	"github.com/go-theft-auto/shader"
)

// Call is one recorded driver call.
type Call struct {
	Name string
	Args []any
}

func (c Call) String() string {
	parts := make([]string, len(c.Args))
	for i, a := range c.Args {
		parts[i] = fmt.Sprint(a)
	}
	return c.Name + "(" + strings.Join(parts, ", ") + ")"
}

// Shader is a shader object as seen by the Recorder.
type Shader struct {
	Stage    shader.Stage
	Source   string
	Compiled bool
	Deleted  bool

	log  string
	decl declarations
}

// Program is a program object as seen by the Recorder.
type Program struct {
	Attached []uint32
	Linked   bool
	Deleted  bool

	// Values holds the last value uploaded per uniform name: int32 for
	// ProgramUniform1i, float32 for ProgramUniform1f.
	Values map[string]any

	log       string
	locations map[string]int32
}

// Recorder is a shader.Driver that records every call.
type Recorder struct {
	// ForceCompileError makes compiling the given stage fail with the log.
	ForceCompileError map[shader.Stage]string
	// ForceLinkError, if non-empty, makes every link fail with this log.
	ForceLinkError string

	// Calls lists every driver call in order.
	Calls []Call
	// Errors lists GL errors raised by invalid calls, such as binding a
	// program that is not linked.
	Errors []string

	next     uint32
	active   uint32
	shaders  map[uint32]*Shader
	programs map[uint32]*Program
}

var _ shader.Driver = (*Recorder)(nil)

// NewRecorder returns an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{
		ForceCompileError: make(map[shader.Stage]string),
		shaders:           make(map[uint32]*Shader),
		programs:          make(map[uint32]*Program),
	}
}

func (r *Recorder) record(name string, args ...any) {
	r.Calls = append(r.Calls, Call{Name: name, Args: args})
}

func (r *Recorder) glError(format string, args ...any) {
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}

func (r *Recorder) newName() uint32 {
	r.next++
	return r.next
}

// CallNames returns the names of the recorded calls in order.
func (r *Recorder) CallNames() []string {
	names := make([]string, len(r.Calls))
	for i, c := range r.Calls {
		names[i] = c.Name
	}
	return names
}

// Count returns how many times the named call was recorded.
func (r *Recorder) Count(name string) int {
	n := 0
	for _, c := range r.Calls {
		if c.Name == name {
			n++
		}
	}
	return n
}

// Reset forgets recorded calls and errors but keeps the object state.
func (r *Recorder) Reset() {
	r.Calls = nil
	r.Errors = nil
}

// Active returns the current program, 0 for none.
func (r *Recorder) Active() uint32 {
	return r.active
}

// Shader returns the shader object named h, or nil.
func (r *Recorder) Shader(h uint32) *Shader {
	return r.shaders[h]
}

// Program returns the program object named h, or nil.
func (r *Recorder) Program(h uint32) *Program {
	return r.programs[h]
}

// Live returns the number of shader and program objects not yet deleted.
func (r *Recorder) Live() (shaders, programs int) {
	for _, s := range r.shaders {
		if !s.Deleted {
			shaders++
		}
	}
	for _, p := range r.programs {
		if !p.Deleted {
			programs++
		}
	}
	return shaders, programs
}

// Uniform returns the last value uploaded to the named uniform of program h.
func (r *Recorder) Uniform(h uint32, name string) (any, bool) {
	p := r.programs[h]
	if p == nil {
		return nil, false
	}
	v, ok := p.Values[name]
	return v, ok
}

// CreateProgram allocates an empty program object.
func (r *Recorder) CreateProgram() uint32 {
	h := r.newName()
	r.programs[h] = &Program{Values: make(map[string]any)}
	r.record("CreateProgram")
	return h
}

// CreateShader allocates a shader object for stage.
func (r *Recorder) CreateShader(stage shader.Stage) uint32 {
	h := r.newName()
	r.shaders[h] = &Shader{Stage: stage}
	r.record("CreateShader", stage)
	return h
}

// CompileShader stores source and checks it with the GLSL front-end unless
// a failure is forced for the shader's stage.
func (r *Recorder) CompileShader(h uint32, source string) bool {
	r.record("CompileShader", h)
	s := r.liveShader(h)
	if s == nil {
		return false
	}
	s.Source = source
	s.decl = scan(source)
	if forced, ok := r.ForceCompileError[s.Stage]; ok {
		s.Compiled, s.log = false, forced
		return false
	}
	s.log = check(source)
	s.Compiled = s.log == ""
	return s.Compiled
}

// ShaderInfoLog returns the compile log, truncated the way GL truncates it.
func (r *Recorder) ShaderInfoLog(h uint32, max int) string {
	r.record("ShaderInfoLog", h, max)
	s := r.shaders[h]
	if s == nil {
		r.glError("GL_INVALID_VALUE: ShaderInfoLog(%d)", h)
		return ""
	}
	return truncate(s.log, max)
}

// AttachShader adds a live shader to a live program.
func (r *Recorder) AttachShader(program, h uint32) {
	r.record("AttachShader", program, h)
	p := r.liveProgram(program)
	if p == nil || r.liveShader(h) == nil {
		return
	}
	p.Attached = append(p.Attached, h)
}

// LinkProgram requires one compiled shader per stage and a matching
// vertex/fragment interface. On success every active uniform gets a
// location, assigned in name order from 0.
func (r *Recorder) LinkProgram(program uint32) bool {
	r.record("LinkProgram", program)
	p := r.liveProgram(program)
	if p == nil {
		return false
	}
	p.Linked, p.log, p.locations = false, "", nil

	var vertex, fragment *Shader
	for _, h := range p.Attached {
		s := r.shaders[h]
		switch {
		case s == nil || !s.Compiled:
			p.log = fmt.Sprintf("error: shader %d is not compiled\n", h)
			return false
		case s.Stage == shader.StageVertex:
			vertex = s
		case s.Stage == shader.StageFragment:
			fragment = s
		}
	}
	switch {
	case r.ForceLinkError != "":
		p.log = r.ForceLinkError
	case vertex == nil:
		p.log = "error: program lacks a vertex shader\n"
	case fragment == nil:
		p.log = "error: program lacks a fragment shader\n"
	default:
		p.log = linkInterface(vertex.decl, fragment.decl)
	}
	if p.log != "" {
		return false
	}

	active := make(map[string]bool)
	for _, s := range []*Shader{vertex, fragment} {
		for _, name := range s.decl.activeUniforms {
			active[name] = true
		}
	}
	names := make([]string, 0, len(active))
	for name := range active {
		names = append(names, name)
	}
	sort.Strings(names)
	p.locations = make(map[string]int32, len(names))
	for i, name := range names {
		p.locations[name] = int32(i)
	}
	p.Linked = true
	return true
}

// ProgramInfoLog returns the link log, truncated the way GL truncates it.
func (r *Recorder) ProgramInfoLog(program uint32, max int) string {
	r.record("ProgramInfoLog", program, max)
	p := r.programs[program]
	if p == nil {
		r.glError("GL_INVALID_VALUE: ProgramInfoLog(%d)", program)
		return ""
	}
	return truncate(p.log, max)
}

// DeleteShader marks the shader deleted.
func (r *Recorder) DeleteShader(h uint32) {
	r.record("DeleteShader", h)
	if s := r.shaders[h]; s != nil {
		s.Deleted = true
	}
}

// DeleteProgram marks the program deleted and clears it if it is current.
func (r *Recorder) DeleteProgram(program uint32) {
	r.record("DeleteProgram", program)
	if p := r.programs[program]; p != nil {
		p.Deleted = true
	}
	if r.active == program {
		r.active = 0
	}
}

// UseProgram makes a linked program current. 0 clears the current program.
func (r *Recorder) UseProgram(program uint32) {
	r.record("UseProgram", program)
	if program == 0 {
		r.active = 0
		return
	}
	p := r.liveProgram(program)
	if p == nil || !p.Linked {
		r.glError("GL_INVALID_OPERATION: UseProgram(%d) on unlinked program", program)
		return
	}
	r.active = program
}

// UniformLocation returns the location assigned at link, or -1.
func (r *Recorder) UniformLocation(program uint32, name string) int32 {
	r.record("UniformLocation", program, name)
	p := r.liveProgram(program)
	if p == nil || !p.Linked {
		r.glError("GL_INVALID_OPERATION: UniformLocation(%d) on unlinked program", program)
		return -1
	}
	if loc, ok := p.locations[name]; ok {
		return loc
	}
	return -1
}

// ProgramUniform1i stores value in the uniform of program at location.
func (r *Recorder) ProgramUniform1i(program uint32, location int32, value int32) {
	r.record("ProgramUniform1i", program, location, value)
	r.upload(program, location, value)
}

// ProgramUniform1f stores value in the uniform of program at location.
func (r *Recorder) ProgramUniform1f(program uint32, location int32, value float32) {
	r.record("ProgramUniform1f", program, location, value)
	r.upload(program, location, value)
}

func (r *Recorder) upload(program uint32, location int32, value any) {
	if location == -1 {
		return
	}
	p := r.liveProgram(program)
	if p == nil {
		return
	}
	if !p.Linked {
		r.glError("GL_INVALID_OPERATION: uniform upload to unlinked program %d", program)
		return
	}
	for name, loc := range p.locations {
		if loc == location {
			p.Values[name] = value
			return
		}
	}
	r.glError("GL_INVALID_OPERATION: no uniform at location %d", location)
}

func (r *Recorder) liveShader(h uint32) *Shader {
	s := r.shaders[h]
	if s == nil || s.Deleted {
		r.glError("GL_INVALID_VALUE: no shader %d", h)
		return nil
	}
	return s
}

func (r *Recorder) liveProgram(h uint32) *Program {
	p := r.programs[h]
	if p == nil || p.Deleted {
		r.glError("GL_INVALID_VALUE: no program %d", h)
		return nil
	}
	return p
}

// truncate mimics GL info log queries: max includes the terminating NUL.
func truncate(log string, max int) string {
	if max <= 0 {
		return ""
	}
	if len(log) > max-1 {
		return log[:max-1]
	}
	return log
}
