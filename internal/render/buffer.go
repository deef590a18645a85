package render

import (
	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/irfansharif/huewheel/internal/mesh"
)

const (
	bytesPerFloat   = 4
	vertexBytes     = mesh.Stride * bytesPerFloat
	minVertexBuffer = 1024 // vertices
)

// VertexBuffer is a VAO/VBO pair holding one frame's interleaved vertices.
// The buffer only grows; uploads that fit reuse the existing storage.
type VertexBuffer struct {
	vao, vbo uint32
	capacity int // in vertices
	count    int
}

// NewVertexBuffer allocates a buffer with room for minVertexBuffer vertices.
func NewVertexBuffer() *VertexBuffer {
	vb := &VertexBuffer{}
	gl.GenVertexArrays(1, &vb.vao)
	gl.GenBuffers(1, &vb.vbo)
	vb.allocate(minVertexBuffer)
	return vb
}

// allocate (re)creates the storage with room for n vertices and rebinds the
// attribute layout: position (2), color (4), uv (2).
func (vb *VertexBuffer) allocate(n int) {
	gl.BindVertexArray(vb.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, vb.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, n*vertexBytes, nil, gl.DYNAMIC_DRAW)

	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, vertexBytes, gl.PtrOffset(0))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 4, gl.FLOAT, false, vertexBytes, gl.PtrOffset(2*bytesPerFloat))
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointer(2, 2, gl.FLOAT, false, vertexBytes, gl.PtrOffset(6*bytesPerFloat))

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)
	vb.capacity = n
}

// Upload replaces the buffer contents, growing the storage if needed. It
// reports whether the storage was reallocated.
func (vb *VertexBuffer) Upload(vertices []float32) (grown bool) {
	n := mesh.Count(vertices)
	if n > vb.capacity {
		vb.allocate(growCapacity(vb.capacity, n))
		grown = true
	}
	vb.count = n
	if n == 0 {
		return grown
	}
	gl.BindBuffer(gl.ARRAY_BUFFER, vb.vbo)
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, n*vertexBytes, gl.Ptr(vertices))
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	return grown
}

// Draw issues one triangle draw for the vertex range.
func (vb *VertexBuffer) Draw(first, count int) {
	if count <= 0 || first+count > vb.count {
		return
	}
	gl.BindVertexArray(vb.vao)
	gl.DrawArrays(gl.TRIANGLES, int32(first), int32(count))
	gl.BindVertexArray(0)
}

// Bytes is the size of the GPU storage.
func (vb *VertexBuffer) Bytes() int { return vb.capacity * vertexBytes }

// Delete releases the GPU objects.
func (vb *VertexBuffer) Delete() {
	gl.DeleteVertexArrays(1, &vb.vao)
	gl.DeleteBuffers(1, &vb.vbo)
	vb.capacity, vb.count = 0, 0
}

// growCapacity doubles current until it holds needed.
func growCapacity(current, needed int) int {
	c := max(current, minVertexBuffer)
	for c < needed {
		c *= 2
	}
	return c
}
