package opengl

import (
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Attribute locations used by Mesh. Shaders declare them with
// layout (location = N).
const (
	AttribPosition = 0
	AttribColor    = 1
	AttribTexCoord = 2
)

// Vertex is one interleaved mesh vertex.
type Vertex struct {
	Pos      [3]float32
	Color    [3]float32
	TexCoord [2]float32
}

// QuadVertices is a unit quad centered on the origin with a distinct color
// per corner.
var QuadVertices = []Vertex{
	{Pos: [3]float32{0.5, 0.5, 0}, Color: [3]float32{1, 0, 0}, TexCoord: [2]float32{1, 1}},   // top right
	{Pos: [3]float32{0.5, -0.5, 0}, Color: [3]float32{0, 1, 0}, TexCoord: [2]float32{1, 0}},  // bottom right
	{Pos: [3]float32{-0.5, -0.5, 0}, Color: [3]float32{0, 0, 1}, TexCoord: [2]float32{0, 0}}, // bottom left
	{Pos: [3]float32{-0.5, 0.5, 0}, Color: [3]float32{1, 1, 0}, TexCoord: [2]float32{0, 1}},  // top left
}

// QuadIndices draws QuadVertices as two triangles.
var QuadIndices = []uint32{
	0, 1, 3,
	1, 2, 3,
}

// Mesh is an indexed triangle list uploaded to a VAO.
type Mesh struct {
	vao, vbo, ebo uint32
	count         int32
}

// NewMesh uploads vertices and indices. The context must be current.
func NewMesh(vertices []Vertex, indices []uint32) *Mesh {
	m := &Mesh{count: int32(len(indices))}

	// Create VAO
	gl.GenVertexArrays(1, &m.vao)
	gl.BindVertexArray(m.vao)

	// Create VBO and upload vertices
	gl.GenBuffers(1, &m.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*int(unsafe.Sizeof(Vertex{})),
		gl.Ptr(vertices), gl.STATIC_DRAW)

	// Create EBO and upload indices
	gl.GenBuffers(1, &m.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*4,
		gl.Ptr(indices), gl.STATIC_DRAW)

	// Vertex layout: Pos (3 floats) + Color (3 floats) + TexCoord (2 floats)
	stride := int32(unsafe.Sizeof(Vertex{}))

	// Position attribute
	gl.VertexAttribPointerWithOffset(AttribPosition, 3, gl.FLOAT, false, stride, unsafe.Offsetof(Vertex{}.Pos))
	gl.EnableVertexAttribArray(AttribPosition)

	// Color attribute
	gl.VertexAttribPointerWithOffset(AttribColor, 3, gl.FLOAT, false, stride, unsafe.Offsetof(Vertex{}.Color))
	gl.EnableVertexAttribArray(AttribColor)

	// TexCoord attribute
	gl.VertexAttribPointerWithOffset(AttribTexCoord, 2, gl.FLOAT, false, stride, unsafe.Offsetof(Vertex{}.TexCoord))
	gl.EnableVertexAttribArray(AttribTexCoord)

	// The EBO binding is VAO state, so only the VAO is unbound.
	gl.BindVertexArray(0)

	return m
}

// Draw issues the indexed draw call. A program must be bound.
func (m *Mesh) Draw() {
	gl.BindVertexArray(m.vao)
	gl.DrawElementsWithOffset(gl.TRIANGLES, m.count, gl.UNSIGNED_INT, 0)
	gl.BindVertexArray(0)
}

// Delete releases the mesh buffers.
func (m *Mesh) Delete() {
	if m.ebo != 0 {
		gl.DeleteBuffers(1, &m.ebo)
		m.ebo = 0
	}
	if m.vbo != 0 {
		gl.DeleteBuffers(1, &m.vbo)
		m.vbo = 0
	}
	if m.vao != 0 {
		gl.DeleteVertexArrays(1, &m.vao)
		m.vao = 0
	}
}
