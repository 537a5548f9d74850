/*
Package shader wraps a two-stage (vertex + fragment) GLSL program: loading the
stage sources from disk, compiling, linking, reporting diagnostics and setting
uniforms.

# Overview

A Program is created once per shader pair and initialized while a graphics
context is current on the calling goroutine's thread. All graphics calls go
through a Driver, so the same Program runs against OpenGL (see
backend/opengl) or against the recording fake in shadertest.

# Quick Start

	// Setup, with the context current
	prog := shader.New(opengl.NewDriver(), shader.WithLogger(logger))
	if err := prog.Init("shaders/triangle.vert", "shaders/triangle.frag"); err != nil {
	    return err
	}
	defer prog.Delete()

	// Render loop
	for !window.ShouldClose() {
	    prog.Bind()
	    prog.SetFloat("blend", blend)
	    mesh.Draw()
	    prog.Unbind()
	    window.SwapBuffers()
	}

# Lifecycle

A Program moves Uninitialized -> Initializing -> Linked or Failed. Only a
Linked program can be bound or receive uniforms; on anything else Bind and the
setters do nothing. Init may be called once. The stage shaders are deleted as
soon as the program links, but the program itself is owned by the caller and
is released only by Delete, which moves it to Deleted.

# Errors

Init reports failures as *SourceError (a stage file could not be read),
*CompileError (the stage was rejected; carries the compiler log) or *LinkError
(carries the linker log). Logs are bounded to InfoLogSize bytes.

Setting a uniform that is not declared, or is declared but optimized out by the
compiler, is not an error: the location lookup yields -1 and the upload is
skipped. Uniforms are written to the Program they are set on, whichever
program is bound at the time.

# Hot Reload

Watcher reports changes to the stage files. Because graphics calls must stay
on the render thread, the loop polls Watcher.Changed and calls Program.Reload,
swapping in the new program only if it linked:

	select {
	case <-watcher.Changed():
	    if next, err := prog.Reload(); err == nil {
	        prog.Delete()
	        prog = next
	    }
	default:
	}
*/
package shader
