package mesh

import (
	"image/color"

	"github.com/irfansharif/huewheel/internal/geom"
)

// Batch is a run of consecutive vertices drawn with the same state.
type Batch struct {
	First, Count int      // in vertices
	Texture      int      // 0 draws vertex colors only
	Clip         geom.Box // scissor rectangle; zero means unclipped
}

// Frame is everything drawn in one pass: a single interleaved vertex buffer
// and the batches that partition it.
type Frame struct {
	Vertices []float32
	Batches  []Batch
}

// Begin starts a new batch. Empty batches are dropped.
func (f *Frame) Begin(texture int, clip geom.Box) {
	f.trim()
	f.Batches = append(f.Batches, Batch{First: Count(f.Vertices), Texture: texture, Clip: clip})
}

// Polygon appends a flat-colored polygon to the current batch.
func (f *Frame) Polygon(poly []geom.Point, c color.RGBA) error {
	f.ensure()
	vertices, err := AppendPolygon(f.Vertices, poly, c)
	if err != nil {
		return err
	}
	f.Vertices = vertices
	f.close()
	return nil
}

// Rect appends a rectangle to the current batch.
func (f *Frame) Rect(box geom.Box, c color.RGBA, textured bool) {
	f.ensure()
	f.Vertices = Rect(f.Vertices, box, c, textured)
	f.close()
}

// Outline appends a rectangular frame of the given width around box.
func (f *Frame) Outline(box geom.Box, width float64, c color.RGBA) {
	outer := geom.MakeBox(box.X-width, box.Y-width, box.W+2*width, box.H+2*width)
	f.Rect(geom.MakeBox(outer.X, outer.Y, outer.W, width), c, false)
	f.Rect(geom.MakeBox(outer.X, box.Y+box.H, outer.W, width), c, false)
	f.Rect(geom.MakeBox(outer.X, box.Y, width, box.H), c, false)
	f.Rect(geom.MakeBox(box.X+box.W, box.Y, width, box.H), c, false)
}

// VertexCount is the number of vertices in the frame.
func (f *Frame) VertexCount() int { return Count(f.Vertices) }

// Reset empties the frame, keeping its storage.
func (f *Frame) Reset() {
	f.Vertices = f.Vertices[:0]
	f.Batches = f.Batches[:0]
}

func (f *Frame) ensure() {
	if len(f.Batches) == 0 {
		f.Batches = append(f.Batches, Batch{First: Count(f.Vertices)})
	}
}

func (f *Frame) close() {
	b := &f.Batches[len(f.Batches)-1]
	b.Count = Count(f.Vertices) - b.First
}

func (f *Frame) trim() {
	if n := len(f.Batches); n > 0 && f.Batches[n-1].Count == 0 {
		f.Batches = f.Batches[:n-1]
	}
}
