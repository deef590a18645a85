package explorer

import (
	"math"

	"github.com/irfansharif/huewheel/internal/geom"
	"github.com/irfansharif/huewheel/internal/preview"
	"github.com/irfansharif/huewheel/internal/wheel"
)

const (
	padding       = 16.0
	gap           = 12.0
	swatchHeight  = 40.0
	presetColumns = 5
)

// Layout places the widgets in a window, in window pixels (Y down). The
// controls form a left column: wheel, slider, palette swatches and the
// preset toolbar. The preview fills the rest.
type Layout struct {
	Width, Height int
	Wheel         geom.Box
	Slider        geom.Box
	Swatches      []geom.Box
	Presets       []geom.Box
	Preview       geom.Box
}

// NewLayout arranges a window of the given size for g and a palette of
// swatches colors.
func NewLayout(width, height int, g wheel.Geometry, swatches int) Layout {
	l := Layout{Width: width, Height: height}
	column := math.Max(float64(g.Size), float64(g.SliderWidth))

	l.Wheel = geom.MakeBox(padding, padding, float64(g.Size), float64(g.Size))
	l.Slider = geom.MakeBox(padding, l.Wheel.Y+l.Wheel.H+gap, float64(g.SliderWidth), float64(g.SliderHeight))

	y := l.Slider.Y + l.Slider.H + gap
	if swatches > 0 {
		w := (column - gap*float64(swatches-1)) / float64(swatches)
		for i := 0; i < swatches; i++ {
			l.Swatches = append(l.Swatches, geom.MakeBox(padding+float64(i)*(w+gap), y, w, swatchHeight))
		}
		y += swatchHeight + gap
	}

	size := (column - gap*(presetColumns-1)) / presetColumns
	for i := range preview.Presets {
		row, col := i/presetColumns, i%presetColumns
		l.Presets = append(l.Presets, geom.MakeBox(padding+float64(col)*(size+gap), y+float64(row)*(size+gap), size, size))
	}

	x := padding + column + padding
	l.Preview = geom.MakeBox(x, padding, math.Max(0, float64(width)-x-padding), math.Max(0, float64(height)-2*padding))
	return l
}

// Target is the wheel widget under p.
func (l Layout) Target(p geom.Point) wheel.Target {
	switch {
	case l.Wheel.Contains(p):
		return wheel.Wheel
	case l.Slider.Contains(p):
		return wheel.Slider
	default:
		return wheel.None
	}
}

// Event converts a pointer update at window position (x, y) into a wheel
// event with widget-relative positions.
func (l Layout) Event(kind wheel.Kind, x, y float64) wheel.Event {
	p := geom.MakePoint(x, y)
	return wheel.Event{
		Kind:   kind,
		Target: l.Target(p),
		Wheel:  p.Sub(l.Wheel.Origin()),
		Slider: p.Sub(l.Slider.Origin()),
	}
}

// PresetAt returns the preset button under p.
func (l Layout) PresetAt(p geom.Point) (int, bool) { return hit(l.Presets, p) }

// SwatchAt returns the palette swatch under p.
func (l Layout) SwatchAt(p geom.Point) (int, bool) { return hit(l.Swatches, p) }

// PreviewTransform maps scene units onto the preview box.
func (l Layout) PreviewTransform() (geom.Affine, error) {
	return geom.FillBox(preview.Frame, l.Preview, true /* flipY */)
}

func hit(boxes []geom.Box, p geom.Point) (int, bool) {
	for i, b := range boxes {
		if b.Contains(p) {
			return i, true
		}
	}
	return 0, false
}
