// Package geom provides 2D geometric primitives and affine transformations:
// - Point arithmetic and the polar convention used by the color wheel
// - Axis-aligned boxes (hit testing, fitting one box into another)
// - 2D affine transformations (translation, rotation, scaling) and their
//   composition and inversion
package geom

import (
	"fmt"
	"math"
)

// Point represents a 2D point or vector in Cartesian coordinates. Screen
// coordinates grow rightwards in X and downwards in Y.
type Point struct {
	X float64
	Y float64
}

// Box represents an axis-aligned rectangle.
type Box struct {
	X float64
	Y float64
	W float64
	H float64
}

// Affine represents a 2D affine transform in row-major form:
// [ a b c ]
// [ d e f ]
// where (x', y') = (a*x + b*y + c, d*x + e*y + f)
type Affine struct {
	A float64
	B float64
	C float64
	D float64
	E float64
	F float64
}

func MakePoint(x, y float64) Point               { return Point{X: x, Y: y} }
func MakeBox(x, y, w, h float64) Box             { return Box{X: x, Y: y, W: w, H: h} }
func MakeAffine(a, b, c, d, e, f float64) Affine { return Affine{A: a, B: b, C: c, D: d, E: e, F: f} }

func (p Point) Add(q Point) Point     { return Point{p.X + q.X, p.Y + q.Y} }
func (p Point) Sub(q Point) Point     { return Point{p.X - q.X, p.Y - q.Y} }
func (p Point) Scale(s float64) Point { return Point{p.X * s, p.Y * s} }
func (p Point) Len() float64          { return math.Hypot(p.X, p.Y) }

func Dist(p, q Point) float64 { return p.Sub(q).Len() }

// Polar returns the length of p and its wheel angle in degrees. The angle is
// atan2(y, x) rotated by +90° and normalized to [0,360), so a vector pointing
// straight up the screen (negative Y) has angle 0 and angles grow clockwise.
func Polar(p Point) (radius, angle float64) {
	radius = p.Len()
	angle = math.Atan2(p.Y, p.X)*180/math.Pi + 90
	angle = math.Mod(angle, 360)
	if angle < 0 {
		angle += 360
	}
	if angle >= 360 {
		angle = 0
	}
	return radius, angle
}

// FromPolar is the inverse of Polar.
func FromPolar(radius, angle float64) Point {
	rad := (angle - 90) * math.Pi / 180
	return Point{X: math.Cos(rad) * radius, Y: math.Sin(rad) * radius}
}

// Contains reports whether p lies inside b (left/top edges inclusive).
func (b Box) Contains(p Point) bool {
	return p.X >= b.X && p.Y >= b.Y && p.X < b.X+b.W && p.Y < b.Y+b.H
}

// Origin is the top-left corner of b.
func (b Box) Origin() Point { return Point{X: b.X, Y: b.Y} }

// Center is the midpoint of b.
func (b Box) Center() Point { return Point{X: b.X + 0.5*b.W, Y: b.Y + 0.5*b.H} }

// Corners returns the four corners of b, clockwise from the top-left.
func (b Box) Corners() []Point {
	return []Point{
		{X: b.X, Y: b.Y},
		{X: b.X + b.W, Y: b.Y},
		{X: b.X + b.W, Y: b.Y + b.H},
		{X: b.X, Y: b.Y + b.H},
	}
}

// Identity returns the identity transform.
func Identity() Affine { return MakeAffine(1, 0, 0, 0, 1, 0) }

// Translate returns a translation by (dx, dy).
func Translate(dx, dy float64) Affine { return MakeAffine(1, 0, dx, 0, 1, dy) }

// Scale returns a non-uniform scaling about the origin.
func Scale(sx, sy float64) Affine { return MakeAffine(sx, 0, 0, 0, sy, 0) }

// Rotate returns a counter-clockwise rotation (in a Y-up frame) by theta
// radians about the origin.
func Rotate(theta float64) Affine {
	s, c := math.Sincos(theta)
	return MakeAffine(c, -s, 0, s, c, 0)
}

// MulPoint applies the affine transform to a point.
func (t Affine) MulPoint(p Point) Point {
	return Point{
		X: t.A*p.X + t.B*p.Y + t.C,
		Y: t.D*p.X + t.E*p.Y + t.F,
	}
}

// Mul composes two affine transforms (applies u then t).
func (t Affine) Mul(u Affine) Affine {
	return MakeAffine(
		t.A*u.A+t.B*u.D,
		t.A*u.B+t.B*u.E,
		t.A*u.C+t.B*u.F+t.C,
		t.D*u.A+t.E*u.D,
		t.D*u.B+t.E*u.E,
		t.D*u.C+t.E*u.F+t.F,
	)
}

// Inv returns the inverse of the affine transform.
// Returns an error if the transform is not invertible (determinant is zero).
func (t Affine) Inv() (Affine, error) {
	det := t.A*t.E - t.B*t.D
	if math.Abs(det) < 1e-10 {
		return Affine{}, fmt.Errorf("affine transform is not invertible (determinant ≈ 0)")
	}
	return MakeAffine(
		t.E/det, -t.B/det, (t.B*t.F-t.C*t.E)/det,
		-t.D/det, t.A/det, (t.C*t.D-t.A*t.F)/det,
	), nil
}

// FillBox returns a transform that maps box b1 into b2, preserving aspect ratio
// and centering the result. With flipY the source is treated as Y-up (scene
// space) and mapped onto a Y-down destination (screen space).
func FillBox(b1, b2 Box, flipY bool) (Affine, error) {
	if b1.W <= 0 || b1.H <= 0 {
		return Affine{}, fmt.Errorf("source box must have positive width and height, got W=%v H=%v", b1.W, b1.H)
	}
	if b2.W <= 0 || b2.H <= 0 {
		return Affine{}, fmt.Errorf("destination box must have positive width and height, got W=%v H=%v", b2.W, b2.H)
	}

	sc := math.Min(b2.W/b1.W, b2.H/b1.H)
	sy := sc
	if flipY {
		sy = -sc
	}
	centerDst := Translate(b2.X+0.5*b2.W, b2.Y+0.5*b2.H)
	centerSrc := Translate(-(b1.X + 0.5*b1.W), -(b1.Y + 0.5*b1.H))
	return centerDst.Mul(Scale(sc, sy)).Mul(centerSrc), nil
}
