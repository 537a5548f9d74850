package shader

import (
	"errors"
	"fmt"
)

// ErrAlreadyInitialized is returned by Init on a Program that has already
// been initialized, successfully or not.
var ErrAlreadyInitialized = errors.New("shader: program already initialized")

// SourceError reports a stage source file that could not be read.
type SourceError struct {
	Stage Stage
	Path  string
	Err   error
}

func (e *SourceError) Error() string {
	return fmt.Sprintf("shader: load %s source %q: %v", e.Stage, e.Path, e.Err)
}

func (e *SourceError) Unwrap() error { return e.Err }

// CompileError reports a stage rejected by the compiler.
type CompileError struct {
	Stage Stage
	Log   string
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("shader: %s shader compilation failed: %s", e.Stage, e.Log)
}

// LinkError reports a program that failed to link.
type LinkError struct {
	Log string
}

func (e *LinkError) Error() string {
	return fmt.Sprintf("shader: program linking failed: %s", e.Log)
}
