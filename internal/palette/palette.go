// Package palette derives color harmonies from a base color. Each harmony rule
// rotates the base hue and/or scales its lightness by fixed offsets; the output
// is an ordered list of hex colors whose length depends only on the rule.
package palette

import (
	"errors"
	"fmt"
	"image/color"
	"strings"

	"github.com/irfansharif/huewheel/internal/colormodel"
)

// ErrUnknownType is returned by ParseType for names that aren't a harmony
// rule.
var ErrUnknownType = errors.New("unknown palette type")

// Type selects a harmony rule.
type Type string

const (
	Complementary Type = "complementary"
	Split         Type = "split"
	Monochromatic Type = "monochromatic"
	Analogous     Type = "analogous"
	Triadic       Type = "triadic"
	Square        Type = "square"
)

// slot is one output color of a rule: a hue rotation in degrees and a
// lightness multiplier.
type slot struct {
	hue   float64
	light float64
}

var rules = map[Type][]slot{
	Complementary: {{0, 1}, {180, 1}},
	Split:         {{0, 1}, {150, 1}, {210, 1}},
	Monochromatic: {{0, 1}, {0, 0.6}, {0, 1.4}},
	Analogous:     {{0, 1}, {30, 1}, {-30, 1}},
	Triadic:       {{0, 1}, {120, 1}, {240, 1}},
	Square:        {{0, 1}, {90, 1}, {180, 1}, {270, 1}},
}

// order is the presentation order of the rules.
var order = []Type{Complementary, Split, Monochromatic, Analogous, Triadic, Square}

// Types returns every harmony rule in presentation order.
func Types() []Type {
	out := make([]Type, len(order))
	copy(out, order)
	return out
}

// ParseType resolves a (case-insensitive) rule name.
func ParseType(name string) (Type, error) {
	t := Type(strings.ToLower(strings.TrimSpace(name)))
	if _, ok := rules[t]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownType, name)
	}
	return t, nil
}

// Valid reports whether t names a harmony rule.
func (t Type) Valid() bool {
	_, ok := rules[t]
	return ok
}

// Size is the number of colors the rule produces.
func (t Type) Size() int { return len(rules[t]) }

// Label is the human-readable selector text, e.g. "Triadic (3)".
func (t Type) Label() string {
	name := string(t)
	if name == "" {
		return ""
	}
	return fmt.Sprintf("%s%s (%d)", strings.ToUpper(name[:1]), name[1:], t.Size())
}

// Next returns the rule following t in presentation order, wrapping around.
func (t Type) Next() Type {
	for i, o := range order {
		if o == t {
			return order[(i+1)%len(order)]
		}
	}
	return order[0]
}

// Palette is an ordered list of canonical hex colors. Index 0 derives from
// the base color.
type Palette []string

// Generate derives the palette for baseHex under rule t. The base is converted
// to HSL once; each slot rotates the hue (mod 360) and scales the lightness
// (clamped to [0,100]) before converting back to hex. Grayscale bases and
// lightness extremes produce valid, if visually identical, colors.
func Generate(baseHex string, t Type) (Palette, error) {
	slots, ok := rules[t]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownType, string(t))
	}
	base, err := colormodel.HexToHSL(baseHex)
	if err != nil {
		return nil, err
	}

	out := make(Palette, len(slots))
	for i, hsl := range HSLs(base, t) {
		out[i] = hsl.Hex()
	}
	return out, nil
}

// HSLs returns the unrounded HSL value of every slot of rule t applied to
// base. It returns nil for unknown rules.
func HSLs(base colormodel.HSL, t Type) []colormodel.HSL {
	slots := rules[t]
	if slots == nil {
		return nil
	}
	out := make([]colormodel.HSL, len(slots))
	for i, s := range slots {
		out[i] = colormodel.HSL{
			H: base.H + s.hue,
			S: base.S,
			L: base.L * s.light,
		}.Normalize()
	}
	return out
}

// Swatch pairs a palette color with its legible overlay text color.
type Swatch struct {
	Hex  string
	Text colormodel.Contrast
}

// Swatches annotates each palette entry with its contrast color.
func (p Palette) Swatches() []Swatch {
	out := make([]Swatch, 0, len(p))
	for _, hex := range p {
		rgb, err := colormodel.HexToRGB(hex)
		if err != nil {
			continue // palettes only ever hold canonical hex
		}
		out = append(out, Swatch{Hex: hex, Text: colormodel.ContrastFor(rgb)})
	}
	return out
}

// RGBA converts the palette for rendering.
func (p Palette) RGBA() []color.RGBA {
	out := make([]color.RGBA, 0, len(p))
	for _, hex := range p {
		rgb, err := colormodel.HexToRGB(hex)
		if err != nil {
			continue
		}
		r, g, b := rgb.Colorful().RGB255()
		out = append(out, color.RGBA{R: r, G: g, B: b, A: 255})
	}
	return out
}
