// Package colormodel converts between hexadecimal, RGB and HSL color
// representations and classifies colors by the overlay text color that stays
// legible on top of them.
//
// Hex strings are accepted in 3- or 6-digit form, optionally prefixed with '#'
// and in any case. Output is always the canonical "#RRGGBB" uppercase form.
package colormodel

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// ErrInvalidFormat is returned (wrapped in a *FormatError) when a string is
// not a 3- or 6-digit hex color.
var ErrInvalidFormat = errors.New("invalid hex color format")

// FormatError records the input that failed to parse.
type FormatError struct {
	Input string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("%v: %q", ErrInvalidFormat, e.Input)
}

// Unwrap exposes ErrInvalidFormat to errors.Is.
func (e *FormatError) Unwrap() error { return ErrInvalidFormat }

// RGB is an sRGB triple with each channel in [0,255].
type RGB struct {
	R, G, B int
}

// HSL holds hue in degrees [0,360), saturation and lightness in percent
// [0,100].
type HSL struct {
	H, S, L float64
}

// Contrast is the overlay text color recommended for a background.
type Contrast int

const (
	White Contrast = iota
	Black
)

func (c Contrast) String() string {
	if c == Black {
		return "black"
	}
	return "white"
}

// Hex returns the canonical hex form of the contrast color.
func (c Contrast) Hex() string {
	if c == Black {
		return "#000000"
	}
	return "#FFFFFF"
}

// contrastThreshold splits the 0-255 luma range; brighter backgrounds get
// black text.
const contrastThreshold = 128

// HexToRGB parses a 3- or 6-digit hex color. Three-digit colors expand each
// nibble by duplication ("#F0A" is "#FF00AA").
func HexToRGB(hex string) (RGB, error) {
	digits := strings.TrimPrefix(hex, "#")
	switch len(digits) {
	case 3:
		digits = string([]byte{
			digits[0], digits[0],
			digits[1], digits[1],
			digits[2], digits[2],
		})
	case 6:
	default:
		return RGB{}, &FormatError{Input: hex}
	}

	var ch [3]int
	for i := range ch {
		hi, ok1 := nibble(digits[2*i])
		lo, ok2 := nibble(digits[2*i+1])
		if !ok1 || !ok2 {
			return RGB{}, &FormatError{Input: hex}
		}
		ch[i] = hi<<4 | lo
	}
	return RGB{R: ch[0], G: ch[1], B: ch[2]}, nil
}

func nibble(c byte) (int, bool) {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0'), true
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10, true
	case c >= 'A' && c <= 'F':
		return int(c-'A') + 10, true
	}
	return 0, false
}

// RGBToHex encodes rgb as "#RRGGBB". Channels outside [0,255] are clamped.
func RGBToHex(rgb RGB) string {
	return fmt.Sprintf("#%02X%02X%02X", clampChannel(rgb.R), clampChannel(rgb.G), clampChannel(rgb.B))
}

// Canonical parses hex and re-encodes it in canonical form.
func Canonical(hex string) (string, error) {
	rgb, err := HexToRGB(hex)
	if err != nil {
		return "", err
	}
	return RGBToHex(rgb), nil
}

// HexToHSL converts hex to HSL using the min/max channel construction.
func HexToHSL(hex string) (HSL, error) {
	rgb, err := HexToRGB(hex)
	if err != nil {
		return HSL{}, err
	}
	return rgb.HSL(), nil
}

// HSL converts the triple to HSL. Achromatic colors (max == min) get hue and
// saturation 0.
func (c RGB) HSL() HSL {
	r := float64(clampChannel(c.R)) / 255
	g := float64(clampChannel(c.G)) / 255
	b := float64(clampChannel(c.B)) / 255

	hi := math.Max(r, math.Max(g, b))
	lo := math.Min(r, math.Min(g, b))
	l := (hi + lo) / 2
	if hi == lo {
		return HSL{H: 0, S: 0, L: l * 100}
	}

	d := hi - lo
	s := d / (1 - math.Abs(2*l-1))

	var h float64
	switch hi {
	case r:
		h = math.Mod((g-b)/d, 6)
	case g:
		h = (b-r)/d + 2
	default:
		h = (r-g)/d + 4
	}
	return HSL{H: NormalizeHue(h * 60), S: clampPercent(s * 100), L: l * 100}
}

// HSLToHex converts an HSL triple to hex. Hue wraps modulo 360; saturation and
// lightness are clamped to [0,100].
func HSLToHex(h, s, l float64) string {
	return RGBToHex(HSL{H: h, S: s, L: l}.RGB())
}

// Hex is shorthand for HSLToHex(c.H, c.S, c.L).
func (c HSL) Hex() string {
	return RGBToHex(c.RGB())
}

// RGB converts c using the chroma/intermediate/match construction.
func (c HSL) RGB() RGB {
	c = c.Normalize()
	s := c.S / 100
	l := c.L / 100

	chroma := (1 - math.Abs(2*l-1)) * s
	x := chroma * (1 - math.Abs(math.Mod(c.H/60, 2)-1))
	m := l - chroma/2

	var r, g, b float64
	switch {
	case c.H < 60:
		r, g, b = chroma, x, 0
	case c.H < 120:
		r, g, b = x, chroma, 0
	case c.H < 180:
		r, g, b = 0, chroma, x
	case c.H < 240:
		r, g, b = 0, x, chroma
	case c.H < 300:
		r, g, b = x, 0, chroma
	default:
		r, g, b = chroma, 0, x
	}

	return RGB{
		R: clampChannel(int(math.Round((r + m) * 255))),
		G: clampChannel(int(math.Round((g + m) * 255))),
		B: clampChannel(int(math.Round((b + m) * 255))),
	}
}

// Normalize wraps the hue into [0,360) and clamps saturation and lightness
// into [0,100].
func (c HSL) Normalize() HSL {
	return HSL{H: NormalizeHue(c.H), S: clampPercent(c.S), L: clampPercent(c.L)}
}

// Rotate returns c with its hue shifted by deg degrees.
func (c HSL) Rotate(deg float64) HSL {
	c.H = NormalizeHue(c.H + deg)
	return c
}

// NormalizeHue wraps h into [0,360).
func NormalizeHue(h float64) float64 {
	if math.IsNaN(h) || math.IsInf(h, 0) {
		return 0
	}
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	if h >= 360 { // -1e-15 + 360 rounds up to 360
		h = 0
	}
	return h
}

// HueDistance is the shortest angular distance between two hues.
func HueDistance(a, b float64) float64 {
	d := math.Abs(NormalizeHue(a) - NormalizeHue(b))
	if d > 180 {
		d = 360 - d
	}
	return d
}

// Luma is the perceptual-weight brightness of c on the 0-255 scale.
func (c RGB) Luma() float64 {
	return 0.299*float64(c.R) + 0.587*float64(c.G) + 0.114*float64(c.B)
}

// ContrastFor returns Black when the luma of c exceeds the mid-range
// threshold, White otherwise.
func ContrastFor(c RGB) Contrast {
	if c.Luma() > contrastThreshold {
		return Black
	}
	return White
}

// ContrastColor returns the overlay text color for hex.
func ContrastColor(hex string) (Contrast, error) {
	rgb, err := HexToRGB(hex)
	if err != nil {
		return White, err
	}
	return ContrastFor(rgb), nil
}

// RGBA returns the opaque image/color form of c.
func (c RGB) RGBA() color.RGBA {
	return color.RGBA{R: uint8(clampChannel(c.R)), G: uint8(clampChannel(c.G)), B: uint8(clampChannel(c.B)), A: 255}
}

// Colorful returns c as a go-colorful color for blending.
func (c RGB) Colorful() colorful.Color {
	return colorful.Color{
		R: float64(clampChannel(c.R)) / 255,
		G: float64(clampChannel(c.G)) / 255,
		B: float64(clampChannel(c.B)) / 255,
	}
}

// FromColorful rounds a go-colorful color to the nearest RGB triple.
func FromColorful(c colorful.Color) RGB {
	r, g, b := c.Clamped().RGB255()
	return RGB{R: int(r), G: int(g), B: int(b)}
}

func clampChannel(v int) int {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}

func clampPercent(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
