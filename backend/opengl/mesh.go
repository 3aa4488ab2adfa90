package opengl

import (
	"github.com/go-gl/gl/v4.1-core/gl"
)

const float32Size = 4

// Mesh is static geometry uploaded once: a VAO with one interleaved float
// VBO and an optional index buffer.
type Mesh struct {
	vao, vbo, ebo uint32
	count         int32
	indexed       bool
}

// NewMesh uploads vertices laid out as consecutive float attributes.
// layout gives the component count of each attribute, in location order;
// {3, 2} is a vec3 position followed by a vec2 texture coordinate.
// indices may be nil, in which case Draw uses glDrawArrays.
func NewMesh(vertices []float32, indices []uint32, layout []int32) *Mesh {
	m := &Mesh{}

	var stride int32
	for _, n := range layout {
		stride += n
	}

	gl.GenVertexArrays(1, &m.vao)
	gl.BindVertexArray(m.vao)

	gl.GenBuffers(1, &m.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*float32Size, gl.Ptr(vertices), gl.STATIC_DRAW)

	if len(indices) > 0 {
		gl.GenBuffers(1, &m.ebo)
		gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.ebo)
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*4, gl.Ptr(indices), gl.STATIC_DRAW)
		m.count = int32(len(indices))
		m.indexed = true
	} else if stride > 0 {
		m.count = int32(len(vertices)) / stride
	}

	var offset uintptr
	for i, n := range layout {
		gl.VertexAttribPointerWithOffset(uint32(i), n, gl.FLOAT, false, stride*float32Size, offset)
		gl.EnableVertexAttribArray(uint32(i))
		offset += uintptr(n) * float32Size
	}

	gl.BindVertexArray(0)
	return m
}

// Draw binds the mesh and draws it as triangles.
func (m *Mesh) Draw() {
	gl.BindVertexArray(m.vao)
	if m.indexed {
		gl.DrawElementsWithOffset(gl.TRIANGLES, m.count, gl.UNSIGNED_INT, 0)
	} else {
		gl.DrawArrays(gl.TRIANGLES, 0, m.count)
	}
}

// Delete releases the GL buffers.
func (m *Mesh) Delete() {
	if m.ebo != 0 {
		gl.DeleteBuffers(1, &m.ebo)
	}
	if m.vbo != 0 {
		gl.DeleteBuffers(1, &m.vbo)
	}
	if m.vao != 0 {
		gl.DeleteVertexArrays(1, &m.vao)
	}
	*m = Mesh{}
}
