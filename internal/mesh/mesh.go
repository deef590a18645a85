// Package mesh turns 2D polygons into interleaved triangle vertex data for the
// GPU. Each vertex is 8 float32s:
//
//	x, y, r, g, b, a, u, v
//
// Position is in the caller's drawing space and color is straight (not
// premultiplied) alpha in [0,1]. (u, v) addresses a texture and is zero for
// untextured geometry.
package mesh

import (
	"fmt"
	"image/color"

	"github.com/rclancey/earcut"

	"github.com/irfansharif/huewheel/internal/geom"
)

// Stride is the number of float32s per vertex.
const Stride = 8

// Triangulate splits a simple polygon into triangles using ear clipping.
// Winding doesn't matter.
func Triangulate(poly []geom.Point) ([][3]geom.Point, error) {
	if len(poly) < 3 {
		return nil, fmt.Errorf("degenerate polygon (%d vertices < 3)", len(poly))
	}

	// Format: [x0, y0, x1, y1, ..., xn, yn]
	coords := make([]float64, len(poly)*2)
	for i, p := range poly {
		coords[i*2] = p.X
		coords[i*2+1] = p.Y
	}

	indices, err := earcut.Earcut(coords, nil /* holeIndices */, 2 /* dim */)
	if err != nil {
		return nil, fmt.Errorf("triangulating %d-vertex polygon: %w", len(poly), err)
	}
	if len(indices)%3 != 0 {
		return nil, fmt.Errorf("invalid triangle count (indices: %d, not divisible by 3)", len(indices))
	}

	tris := make([][3]geom.Point, len(indices)/3)
	for i := range tris {
		for k := 0; k < 3; k++ {
			v := indices[i*3+k]
			tris[i][k] = geom.Point{X: coords[v*2], Y: coords[v*2+1]}
		}
	}
	return tris, nil
}

// AppendPolygon triangulates poly and appends one vertex per triangle corner
// in a flat color.
func AppendPolygon(vertices []float32, poly []geom.Point, c color.RGBA) ([]float32, error) {
	tris, err := Triangulate(poly)
	if err != nil {
		return vertices, err
	}
	r, g, b, a := unit(c)
	for _, tri := range tris {
		for _, p := range tri {
			vertices = append(vertices, float32(p.X), float32(p.Y), r, g, b, a, 0, 0)
		}
	}
	return vertices, nil
}

// Rect appends two triangles covering box. With textured set the corners carry
// (u, v) from (0, 0) at the box origin to (1, 1) at the opposite corner and the
// color is used as a tint.
func Rect(vertices []float32, box geom.Box, c color.RGBA, textured bool) []float32 {
	r, g, b, a := unit(c)
	x0, y0 := float32(box.X), float32(box.Y)
	x1, y1 := float32(box.X+box.W), float32(box.Y+box.H)

	var u1, v1 float32
	if textured {
		u1, v1 = 1, 1
	}
	quad := [6][4]float32{
		{x0, y0, 0, 0},
		{x1, y0, u1, 0},
		{x1, y1, u1, v1},
		{x0, y0, 0, 0},
		{x1, y1, u1, v1},
		{x0, y1, 0, v1},
	}
	for _, q := range quad {
		vertices = append(vertices, q[0], q[1], r, g, b, a, q[2], q[3])
	}
	return vertices
}

// Count returns the number of vertices in an interleaved buffer.
func Count(vertices []float32) int { return len(vertices) / Stride }

func unit(c color.RGBA) (r, g, b, a float32) {
	return float32(c.R) / 255, float32(c.G) / 255, float32(c.B) / 255, float32(c.A) / 255
}
