package opengl

import (
	"math"
	"testing"
	"testing/fstest"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-theft-auto/shader"
	"github.com/go-theft-auto/shader/shadertest"
)

const (
	testVertex   = "#version 330 core\nout vec3 c;\nuniform float blend;\nvoid main() { c = vec3(blend); }\n"
	testFragment = "#version 330 core\nin vec3 c;\nout vec4 o;\nvoid main() { o = vec4(c, 1.0); }\n"
)

func linkedProgram(t *testing.T, rec *shadertest.Recorder) *shader.Program {
	t.Helper()
	fsys := fstest.MapFS{
		"a.vert": {Data: []byte(testVertex)},
		"a.frag": {Data: []byte(testFragment)},
	}
	p := shader.New(rec, shader.WithFS(fsys))
	require.NoError(t, p.Init("a.vert", "a.frag"))
	return p
}

func TestPulse(t *testing.T) {
	assert.InDelta(t, 0.5, Pulse(0), 1e-5)
	assert.InDelta(t, 1.0, Pulse(math.Pi/2), 1e-5)
	assert.InDelta(t, 0.0, Pulse(3*math.Pi/2), 1e-5)

	for i := 0; i < 1000; i++ {
		v := Pulse(float64(i) * 0.037)
		assert.GreaterOrEqual(t, v, float32(0))
		assert.LessOrEqual(t, v, float32(1))
	}
}

func TestVertexLayout(t *testing.T) {
	assert.Equal(t, uintptr(32), unsafe.Sizeof(Vertex{}))
	assert.Equal(t, uintptr(0), unsafe.Offsetof(Vertex{}.Pos))
	assert.Equal(t, uintptr(12), unsafe.Offsetof(Vertex{}.Color))
	assert.Equal(t, uintptr(24), unsafe.Offsetof(Vertex{}.TexCoord))

	locs := map[int]bool{AttribPosition: true, AttribColor: true, AttribTexCoord: true}
	assert.Len(t, locs, 3, "attribute locations must be distinct")
}

func TestQuadIndicesInRange(t *testing.T) {
	assert.Len(t, QuadIndices, 6)
	for _, idx := range QuadIndices {
		assert.Less(t, int(idx), len(QuadVertices))
	}
}

func TestSceneSwapProgram(t *testing.T) {
	rec := shadertest.NewRecorder()
	old := linkedProgram(t, rec)
	scene := NewScene(old, nil, 0)

	next, err := old.Reload()
	require.NoError(t, err)
	rec.Reset()

	scene.SwapProgram(next)
	scene.SwapProgram(next)

	assert.Same(t, next, scene.Program())
	assert.Equal(t, 1, rec.Count("DeleteProgram"))
	assert.Equal(t, shader.Deleted, old.State())
	assert.Equal(t, shader.Linked, next.State())
	_, programs := rec.Live()
	assert.Equal(t, 1, programs)

	scene.Delete()
	assert.Equal(t, shader.Deleted, next.State())
	_, programs = rec.Live()
	assert.Zero(t, programs)
}
