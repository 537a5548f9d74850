package main

import (
	"bytes"
	"log/slog"
	"os"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-theft-auto/shader"
	"github.com/go-theft-auto/shader/backend/opengl"
	"github.com/go-theft-auto/shader/shadertest"
)

func TestReloadKeepsProgramOnFailure(t *testing.T) {
	cfg := DefaultConfig()
	vert, err := os.ReadFile(cfg.Shaders.Vertex)
	require.NoError(t, err)
	frag, err := os.ReadFile(cfg.Shaders.Fragment)
	require.NoError(t, err)

	fsys := fstest.MapFS{
		cfg.Shaders.Vertex:   {Data: vert},
		cfg.Shaders.Fragment: {Data: frag},
	}
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	rec := shadertest.NewRecorder()
	prog := shader.New(rec, shader.WithFS(fsys), shader.WithLogger(logger))
	require.NoError(t, prog.Init(cfg.Shaders.Vertex, cfg.Shaders.Fragment))
	scene := opengl.NewScene(prog, nil, 0)

	// A save that leaves the vertex stage unterminated.
	fsys[cfg.Shaders.Vertex] = &fstest.MapFile{Data: []byte("#version 330 core\nvoid main() {\n")}
	rec.Reset()
	reload(scene, logger)

	assert.Same(t, prog, scene.Program())
	assert.Equal(t, shader.Linked, prog.State())
	assert.False(t, rec.Program(prog.Handle()).Deleted)
	assert.Contains(t, buf.String(), "shader reload failed")
	_, programs := rec.Live()
	assert.Equal(t, 1, programs)

	// The next good save replaces the program and releases the old one.
	fsys[cfg.Shaders.Vertex] = &fstest.MapFile{Data: vert}
	rec.Reset()
	reload(scene, logger)

	assert.NotSame(t, prog, scene.Program())
	assert.Equal(t, shader.Deleted, prog.State())
	assert.Equal(t, shader.Linked, scene.Program().State())
	assert.Equal(t, 1, rec.Count("DeleteProgram"))
	assert.Contains(t, buf.String(), "shaders reloaded")
	_, programs = rec.Live()
	assert.Equal(t, 1, programs)
}
