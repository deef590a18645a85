// Package render draws an explorer frame with OpenGL.
//
// A frame is a single interleaved vertex buffer (see package mesh) split
// into batches. Each batch is drawn with one call and may:
//   - sample one of the renderer's textures (the wheel and slider pixel
//     buffers), tinted by the vertex color
//   - restrict drawing to a scissor rectangle (the preview pane)
//
// Geometry is in window pixels with Y down; the renderer maps it to NDC.
// Everything here must run on the thread that owns the GL context.
package render

import (
	"fmt"
	"image"
	"math"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/irfansharif/huewheel/internal/geom"
	"github.com/irfansharif/huewheel/internal/mesh"
)

type Renderer struct {
	w, h     int // window size, in the units of the frame geometry
	fbW, fbH int // framebuffer size, in device pixels

	shaderManager *ShaderManager
	buffer        *VertexBuffer
	textures      map[int]*Texture
	batches       []mesh.Batch
	stats         Stats
}

// Stats tracks rendering metrics.
type Stats struct {
	Vertices          int
	DrawCalls         int     // in the last Draw
	GPUBytes          int     // vertex buffer plus textures
	BufferGrowths     int     // vertex buffer reallocations so far
	Uploads           int     // frames uploaded so far
	LastUploadTimeUs  float64 // time spent in the last Upload
	LastTextureTimeUs float64 // time spent in the last SetTexture
	LastDrawTimeUs    float64 // time spent in the last Draw
}

// NewRenderer compiles the shaders and allocates the vertex buffer. It needs a
// current GL context.
func NewRenderer() (*Renderer, error) {
	sm, err := NewShaderManager()
	if err != nil {
		return nil, err
	}
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	return &Renderer{
		shaderManager: sm,
		buffer:        NewVertexBuffer(),
		textures:      make(map[int]*Texture),
	}, nil
}

// SetView records the window size (the frame's coordinate space) and the
// framebuffer size (for the viewport and scissor rectangles).
func (r *Renderer) SetView(w, h, fbW, fbH int) {
	r.w, r.h = w, h
	r.fbW, r.fbH = fbW, fbH
}

// Upload replaces the geometry drawn by subsequent Draw calls.
func (r *Renderer) Upload(frame mesh.Frame) error {
	startTime := time.Now()

	for _, b := range frame.Batches {
		if b.First < 0 || b.Count < 0 || b.First+b.Count > frame.VertexCount() {
			return fmt.Errorf("batch [%d,+%d) outside %d vertices", b.First, b.Count, frame.VertexCount())
		}
	}
	if r.buffer.Upload(frame.Vertices) {
		r.stats.BufferGrowths++
	}
	r.batches = append(r.batches[:0], frame.Batches...)

	r.stats.Vertices = frame.VertexCount()
	r.stats.Uploads++
	r.stats.GPUBytes = r.gpuBytes()
	r.stats.LastUploadTimeUs = float64(time.Since(startTime).Microseconds())
	return nil
}

// SetTexture uploads img into texture slot, creating the slot on first use.
// Slot 0 is reserved for untextured batches.
func (r *Renderer) SetTexture(slot int, img *image.RGBA) error {
	if slot <= 0 {
		return fmt.Errorf("invalid texture slot %d", slot)
	}
	startTime := time.Now()
	t, ok := r.textures[slot]
	if !ok {
		t = NewTexture()
		r.textures[slot] = t
	}
	t.Upload(img)
	r.stats.GPUBytes = r.gpuBytes()
	r.stats.LastTextureTimeUs = float64(time.Since(startTime).Microseconds())
	return nil
}

// Draw clears the framebuffer to bg and draws every batch.
func (r *Renderer) Draw(bg [4]float32) {
	startTime := time.Now()

	gl.Viewport(0, 0, int32(r.fbW), int32(r.fbH))
	gl.ClearColor(bg[0], bg[1], bg[2], bg[3])
	gl.Clear(gl.COLOR_BUFFER_BIT)

	if r.w <= 0 || r.h <= 0 {
		return
	}
	r.shaderManager.SetTransform(r.computeTransformMatrix())

	draws := 0
	for _, b := range r.batches {
		if b.Count == 0 {
			continue
		}
		textured := false
		if b.Texture != 0 {
			t, ok := r.textures[b.Texture]
			if !ok {
				continue // not uploaded yet
			}
			t.Bind()
			textured = true
		}
		r.shaderManager.SetTextured(textured)

		if clipped := b.Clip != (geom.Box{}); clipped {
			x, y, w, h := r.scissor(b.Clip)
			gl.Enable(gl.SCISSOR_TEST)
			gl.Scissor(x, y, w, h)
		}
		r.buffer.Draw(b.First, b.Count)
		gl.Disable(gl.SCISSOR_TEST)
		draws++
	}

	r.stats.DrawCalls = draws
	r.stats.LastDrawTimeUs = float64(time.Since(startTime).Microseconds())
}

// Stats returns the current performance statistics.
func (r *Renderer) Stats() Stats {
	return r.stats
}

// Delete releases every GPU object.
func (r *Renderer) Delete() {
	for _, t := range r.textures {
		t.Delete()
	}
	r.buffer.Delete()
	r.shaderManager.Delete()
}

func (r *Renderer) gpuBytes() int {
	n := r.buffer.Bytes()
	for _, t := range r.textures {
		n += t.Bytes()
	}
	return n
}

// scissor converts a window-space box (Y down) to a framebuffer rectangle
// (Y up, device pixels).
func (r *Renderer) scissor(b geom.Box) (x, y, w, h int32) {
	sx := float64(r.fbW) / float64(r.w)
	sy := float64(r.fbH) / float64(r.h)
	x0 := math.Floor(b.X * sx)
	x1 := math.Ceil((b.X + b.W) * sx)
	y0 := math.Floor(float64(r.fbH) - (b.Y+b.H)*sy)
	y1 := math.Ceil(float64(r.fbH) - b.Y*sy)
	return int32(x0), int32(y0), int32(x1 - x0), int32(y1 - y0)
}

// computeTransformMatrix maps window coordinates to OpenGL NDC.
func (r *Renderer) computeTransformMatrix() [16]float32 {
	screenToNDC := geom.MakeAffine(
		2.0/float64(r.w), 0, -1,
		0, -2.0/float64(r.h), 1,
	)
	return affineToMatrix4(screenToNDC)
}

// affineToMatrix4 converts an affine transform to a column-major 4x4 matrix.
func affineToMatrix4(transform geom.Affine) [16]float32 {
	return [16]float32{
		float32(transform.A), float32(transform.D), 0, 0,
		float32(transform.B), float32(transform.E), 0, 0,
		0, 0, 1, 0,
		float32(transform.C), float32(transform.F), 0, 1,
	}
}
