// Package preview lays out the decorative scene shown behind the palette: a
// background pane in the first palette color and a handful of rotated quads
// colored from the palette. Layouts are a pure function of two seeds and a
// palette type, so the same inputs always produce the same scene.
//
// Scene units are Y-up with the origin at the center of Frame.
package preview

import (
	"cmp"
	"math"
	"slices"
	"strings"

	"github.com/irfansharif/huewheel/internal/geom"
	"github.com/irfansharif/huewheel/internal/palette"
)

// BaseColors are the seed colors a layout picks its base from.
var BaseColors = []string{
	"#0B5BFF", // blue
	"#FF006E", // pink
	"#06FFA5", // green
	"#FFBE0B", // yellow
	"#8338EC", // purple
	"#FB5607", // orange
	"#3A86FF", // bright blue
	"#06D6A0", // teal
}

// Frame is the visible region of the scene.
var Frame = geom.MakeBox(-4.5, -2.5, 9, 5)

// ShapeCount is the number of quads in every layout.
const ShapeCount = 5

const (
	shapeSeedStride = 123.456
	backgroundDepth = -0.3
	backgroundSize  = 20
)

// Preset is a named starting point: a palette type and a color seed.
type Preset struct {
	Name          string       `yaml:"name"`
	Type          palette.Type `yaml:"type"`
	SeedOffset    float64      `yaml:"seed"`
	PreviewColors []string     `yaml:"preview"`
}

// Presets is the toolbar, in display order.
var Presets = []Preset{
	{Name: "Rainbow", Type: palette.Triadic, SeedOffset: 100, PreviewColors: []string{"#FF006E", "#8338EC", "#0B5BFF", "#06FFA5", "#FFBE0B", "#FB5607"}},
	{Name: "Purple Pink", Type: palette.Analogous, SeedOffset: 200, PreviewColors: []string{"#8338EC", "#FF006E", "#FB5607"}},
	{Name: "Blue Green", Type: palette.Complementary, SeedOffset: 300, PreviewColors: []string{"#0B5BFF", "#06FFA5"}},
	{Name: "Orange Red", Type: palette.Analogous, SeedOffset: 400, PreviewColors: []string{"#FB5607", "#FF006E"}},
	{Name: "Black", Type: palette.Monochromatic, SeedOffset: 500, PreviewColors: []string{"#000000", "#1A1A1A", "#333333"}},
	{Name: "White", Type: palette.Monochromatic, SeedOffset: 600, PreviewColors: []string{"#FFFFFF", "#F0F0F0", "#E0E0E0"}},
	{Name: "B&W Gradient", Type: palette.Complementary, SeedOffset: 700, PreviewColors: []string{"#000000", "#FFFFFF"}},
	{Name: "Green Yellow", Type: palette.Analogous, SeedOffset: 800, PreviewColors: []string{"#06FFA5", "#FFBE0B"}},
	{Name: "Orange Brown", Type: palette.Monochromatic, SeedOffset: 900, PreviewColors: []string{"#FB5607", "#8B4513", "#654321"}},
	{Name: "Blue Gradient", Type: palette.Monochromatic, SeedOffset: 1000, PreviewColors: []string{"#3A86FF", "#0B5BFF", "#001F7F"}},
}

// FindPreset looks a preset up by name, ignoring case and surrounding space.
func FindPreset(name string) (Preset, bool) {
	name = strings.TrimSpace(name)
	for _, p := range Presets {
		if strings.EqualFold(p.Name, name) {
			return p, true
		}
	}
	return Preset{}, false
}

// SeededRandom is a stable pseudo-random value in [0,1) for seed.
func SeededRandom(seed float64) float64 {
	x := math.Sin(seed) * 10000
	return x - math.Floor(x)
}

// Shape is one quad of the layout: a unit square scaled, rotated about its
// center and moved to Position.
type Shape struct {
	Position [3]float64 `yaml:"position"` // z orders shapes back to front
	Scale    [2]float64 `yaml:"scale"`
	Rotation float64    `yaml:"rotation"` // radians, counter-clockwise
	Color    string     `yaml:"color"`
}

// Transform maps the unit square centered at the origin onto the shape.
func (s Shape) Transform() geom.Affine {
	return geom.Translate(s.Position[0], s.Position[1]).
		Mul(geom.Rotate(s.Rotation)).
		Mul(geom.Scale(s.Scale[0], s.Scale[1]))
}

// Corners returns the shape's four corners in scene units, counter-clockwise.
func (s Shape) Corners() []geom.Point {
	t := s.Transform()
	unit := []geom.Point{{X: -0.5, Y: -0.5}, {X: 0.5, Y: -0.5}, {X: 0.5, Y: 0.5}, {X: -0.5, Y: 0.5}}
	out := make([]geom.Point, len(unit))
	for i, p := range unit {
		out[i] = t.MulPoint(p)
	}
	return out
}

// Scene is a full layout.
type Scene struct {
	Base       string          `yaml:"base"`
	Type       palette.Type    `yaml:"type"`
	Palette    palette.Palette `yaml:"palette"`
	Background Shape           `yaml:"background"`
	Shapes     []Shape         `yaml:"shapes"`
}

// BaseColor picks the layout's base color for colorSeed.
func BaseColor(colorSeed float64) string {
	i := int(math.Floor(SeededRandom(colorSeed*0.1) * float64(len(BaseColors))))
	return BaseColors[min(max(i, 0), len(BaseColors)-1)]
}

// Layout builds the scene for the given seeds and palette type. The color seed
// selects the base color; the shape seed alone drives placement, so changing
// palette type or color seed recolors the shapes without moving them.
func Layout(colorSeed, shapeSeed float64, t palette.Type) (Scene, error) {
	return LayoutFrom(BaseColor(colorSeed), shapeSeed, t)
}

// LayoutFrom builds the scene around an explicit base color.
func LayoutFrom(base string, shapeSeed float64, t palette.Type) (Scene, error) {
	p, err := palette.Generate(base, t)
	if err != nil {
		return Scene{}, err
	}

	scene := Scene{
		Base:    p[0],
		Type:    t,
		Palette: p,
		Background: Shape{
			Position: [3]float64{0, 0, backgroundDepth},
			Scale:    [2]float64{backgroundSize, backgroundSize},
			Color:    p[0],
		},
		Shapes: make([]Shape, ShapeCount),
	}
	for i := range scene.Shapes {
		seed := float64(i)*shapeSeedStride + shapeSeed
		var r [6]float64
		for k := range r {
			r[k] = SeededRandom(seed + float64(k))
		}
		idx := int(math.Floor(r[5] * float64(len(p))))
		scene.Shapes[i] = Shape{
			Position: [3]float64{(r[0] - 0.5) * 6, (r[1] - 0.5) * 3.5, -0.2 - float64(i)*0.01},
			Scale:    [2]float64{3 + 4*r[2], 3 + 4*r[3]},
			Rotation: r[4] * math.Pi,
			Color:    p[min(idx, len(p)-1)],
		}
	}
	return scene, nil
}

// Painted returns the background and the shapes in painter's order, back to
// front by depth.
func (s Scene) Painted() []Shape {
	out := make([]Shape, 0, len(s.Shapes)+1)
	out = append(out, s.Background)
	out = append(out, s.Shapes...)
	slices.SortStableFunc(out, func(a, b Shape) int {
		return cmp.Compare(a.Position[2], b.Position[2])
	})
	return out
}
