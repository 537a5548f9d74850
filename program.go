package shader

import (
	"io/fs"
	"log/slog"
	"os"
	"unicode/utf8"
)

// State is the lifecycle state of a Program.
type State int

const (
	Uninitialized State = iota
	Initializing
	Linked
	Failed
	Deleted
)

func (s State) String() string {
	switch s {
	case Uninitialized:
		return "uninitialized"
	case Initializing:
		return "initializing"
	case Linked:
		return "linked"
	case Failed:
		return "failed"
	case Deleted:
		return "deleted"
	default:
		return "unknown"
	}
}

// stageSlot holds one stage's transient shader handle and its source text.
type stageSlot struct {
	path   string
	handle uint32
	source string
}

// Program is a linked vertex + fragment shader program.
//
// A Program is not safe for concurrent use and must only be used while its
// graphics context is current.
type Program struct {
	driver Driver
	fsys   fs.FS
	logger *slog.Logger

	handle   uint32
	state    State
	vertex   stageSlot
	fragment stageSlot

	// Uniform locations by name, including misses (-1).
	uniforms map[string]int32
}

// New creates an uninitialized Program that issues graphics calls through
// driver.
func New(driver Driver, opts ...Option) *Program {
	p := &Program{
		driver: driver,
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Init loads, compiles and links the two stages. It must be called exactly
// once, with the context current. On failure every handle Init allocated is
// released and the Program is left in the Failed state.
func (p *Program) Init(vertexPath, fragmentPath string) error {
	if p.state != Uninitialized {
		return ErrAlreadyInitialized
	}
	p.state = Initializing
	p.vertex.path = vertexPath
	p.fragment.path = fragmentPath

	p.vertex.handle = p.driver.CreateShader(StageVertex)
	p.fragment.handle = p.driver.CreateShader(StageFragment)
	p.handle = p.driver.CreateProgram()

	if err := p.build(); err != nil {
		p.fail()
		return err
	}

	p.driver.DeleteShader(p.vertex.handle)
	p.driver.DeleteShader(p.fragment.handle)
	p.vertex.handle = 0
	p.fragment.handle = 0
	p.uniforms = make(map[string]int32)
	p.state = Linked

	p.logger.Debug("shader program linked",
		"program", p.handle, "vertex", vertexPath, "fragment", fragmentPath)
	return nil
}

func (p *Program) build() error {
	if err := p.load(StageVertex, &p.vertex); err != nil {
		return err
	}
	if err := p.load(StageFragment, &p.fragment); err != nil {
		return err
	}

	if err := p.compile(StageVertex, &p.vertex); err != nil {
		return err
	}
	if err := p.compile(StageFragment, &p.fragment); err != nil {
		return err
	}

	p.driver.AttachShader(p.handle, p.vertex.handle)
	p.driver.AttachShader(p.handle, p.fragment.handle)
	if !p.driver.LinkProgram(p.handle) {
		log := boundLog(p.driver.ProgramInfoLog(p.handle, InfoLogSize))
		p.logger.Error("shader program link failed",
			"vertex", p.vertex.path, "fragment", p.fragment.path, "log", log)
		return &LinkError{Log: log}
	}
	return nil
}

func (p *Program) load(stage Stage, slot *stageSlot) error {
	var (
		data []byte
		err  error
	)
	if p.fsys != nil {
		data, err = fs.ReadFile(p.fsys, slot.path)
	} else {
		data, err = os.ReadFile(slot.path)
	}
	if err != nil {
		return &SourceError{Stage: stage, Path: slot.path, Err: err}
	}
	slot.source = string(data)
	return nil
}

func (p *Program) compile(stage Stage, slot *stageSlot) error {
	if p.driver.CompileShader(slot.handle, slot.source) {
		return nil
	}
	log := boundLog(p.driver.ShaderInfoLog(slot.handle, InfoLogSize))
	p.logger.Error("shader compilation failed",
		"stage", stage.String(), "path", slot.path, "log", log)
	return &CompileError{Stage: stage, Log: log}
}

// fail releases everything Init allocated. Loaded sources are kept for
// inspection through Shader.
func (p *Program) fail() {
	if p.vertex.handle != 0 {
		p.driver.DeleteShader(p.vertex.handle)
		p.vertex.handle = 0
	}
	if p.fragment.handle != 0 {
		p.driver.DeleteShader(p.fragment.handle)
		p.fragment.handle = 0
	}
	if p.handle != 0 {
		p.driver.DeleteProgram(p.handle)
		p.handle = 0
	}
	p.state = Failed
}

// boundLog trims a driver log to at most InfoLogSize bytes. A trailing UTF-8
// sequence cut short by the driver's buffer or by this limit is dropped.
func boundLog(log string) string {
	if len(log) > InfoLogSize {
		log = log[:InfoLogSize]
	}
	for i := len(log) - 1; i >= 0 && i >= len(log)-utf8.UTFMax; i-- {
		if utf8.RuneStart(log[i]) {
			if !utf8.FullRuneInString(log[i:]) {
				log = log[:i]
			}
			break
		}
	}
	return log
}

// Bind makes the program current for subsequent draw calls. It does nothing
// unless the program is linked.
func (p *Program) Bind() {
	if p.state != Linked {
		return
	}
	p.driver.UseProgram(p.handle)
}

// Unbind clears the current program.
func (p *Program) Unbind() {
	if p.state != Linked {
		return
	}
	p.driver.UseProgram(0)
}

// SetBool uploads value as an int uniform (0 or 1).
func (p *Program) SetBool(name string, value bool) {
	var v int32
	if value {
		v = 1
	}
	p.SetInt(name, v)
}

// SetInt uploads an int uniform. Names that are not active uniforms are
// ignored. The value is written to this program even when another program
// is bound.
func (p *Program) SetInt(name string, value int32) {
	if loc := p.location(name); loc >= 0 {
		p.driver.ProgramUniform1i(p.handle, loc, value)
	}
}

// SetFloat uploads a float uniform. Names that are not active uniforms are
// ignored. The value is written to this program even when another program
// is bound.
func (p *Program) SetFloat(name string, value float32) {
	if loc := p.location(name); loc >= 0 {
		p.driver.ProgramUniform1f(p.handle, loc, value)
	}
}

func (p *Program) location(name string) int32 {
	if p.state != Linked {
		return -1
	}
	if loc, ok := p.uniforms[name]; ok {
		return loc
	}
	loc := p.driver.UniformLocation(p.handle, name)
	p.uniforms[name] = loc
	return loc
}

// Shader returns the source text loaded for stage, or "" if that stage was
// never loaded.
func (p *Program) Shader(stage Stage) string {
	switch stage {
	case StageVertex:
		return p.vertex.source
	case StageFragment:
		return p.fragment.source
	default:
		return ""
	}
}

// Handle returns the program handle, or 0 unless the program is linked.
func (p *Program) Handle() uint32 {
	return p.handle
}

// State returns the lifecycle state.
func (p *Program) State() State {
	return p.state
}

// Paths returns the stage source paths given to Init.
func (p *Program) Paths() (vertex, fragment string) {
	return p.vertex.path, p.fragment.path
}

// Delete releases the program handle. The Program cannot be bound afterwards.
// Calling Delete more than once is safe.
func (p *Program) Delete() {
	if p.handle != 0 {
		p.driver.DeleteProgram(p.handle)
		p.handle = 0
	}
	if p.state == Linked {
		p.state = Deleted
	}
	p.uniforms = nil
}

// Reload builds a new Program from the same source paths, driver, filesystem
// and logger. The receiver is not modified; on success the caller swaps in
// the returned Program and deletes the old one.
func (p *Program) Reload() (*Program, error) {
	next := &Program{
		driver: p.driver,
		fsys:   p.fsys,
		logger: p.logger,
	}
	if err := next.Init(p.vertex.path, p.fragment.path); err != nil {
		return nil, err
	}
	return next, nil
}
