package mesh

import (
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Mesh is uploaded geometry with one texture per group.
type Mesh struct {
	Name   string
	Bounds Bounds

	vao        uint32
	vbo        uint32
	ebo        uint32
	indexCount int32
	groups     []Group
	textures   []uint32
}

// Upload creates GPU buffers for data. textures holds one texture per
// group, in group order.
func Upload(name string, data *Data, textures []uint32) *Mesh {
	m := &Mesh{
		Name:       name,
		Bounds:     data.Bounds,
		groups:     data.Groups,
		textures:   textures,
		indexCount: int32(len(data.Indices)),
	}
	if len(data.Vertices) == 0 || len(data.Indices) == 0 {
		return m
	}

	gl.GenVertexArrays(1, &m.vao)
	gl.BindVertexArray(m.vao)

	gl.GenBuffers(1, &m.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	vertexSize := int(unsafe.Sizeof(Vertex{}))
	gl.BufferData(gl.ARRAY_BUFFER, len(data.Vertices)*vertexSize, unsafe.Pointer(&data.Vertices[0]), gl.STATIC_DRAW)

	// Position
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, int32(vertexSize), 0)
	gl.EnableVertexAttribArray(0)
	// Normal
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, int32(vertexSize), 3*4)
	gl.EnableVertexAttribArray(1)
	// TexCoord
	gl.VertexAttribPointerWithOffset(2, 2, gl.FLOAT, false, int32(vertexSize), 6*4)
	gl.EnableVertexAttribArray(2)

	gl.GenBuffers(1, &m.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(data.Indices)*4, unsafe.Pointer(&data.Indices[0]), gl.STATIC_DRAW)

	gl.BindVertexArray(0)
	return m
}

// Draw issues one draw call per group with its texture on unit 0.
// The caller binds the program and sets the per-object uniforms.
func (m *Mesh) Draw() {
	if m.vao == 0 {
		return
	}
	gl.BindVertexArray(m.vao)
	gl.ActiveTexture(gl.TEXTURE0)
	for i, g := range m.groups {
		if i < len(m.textures) {
			gl.BindTexture(gl.TEXTURE_2D, m.textures[i])
		}
		gl.DrawElementsWithOffset(gl.TRIANGLES, g.IndexCount, gl.UNSIGNED_INT, uintptr(g.StartIndex)*4)
	}
	gl.BindVertexArray(0)
}

// IndexCount returns the number of indices uploaded.
func (m *Mesh) IndexCount() int32 {
	return m.indexCount
}

// Delete releases the GPU buffers. Textures are owned by the loader cache.
func (m *Mesh) Delete() {
	if m.vao != 0 {
		gl.DeleteVertexArrays(1, &m.vao)
	}
	if m.vbo != 0 {
		gl.DeleteBuffers(1, &m.vbo)
	}
	if m.ebo != 0 {
		gl.DeleteBuffers(1, &m.ebo)
	}
	m.vao, m.vbo, m.ebo = 0, 0, 0
}
