package wheel

import (
	"math"

	"github.com/irfansharif/huewheel/internal/colormodel"
	"github.com/irfansharif/huewheel/internal/geom"
)

// PickWheel maps a pointer offset from the wheel center to a color. On the
// ring saturation is 100; inside the inner disk it is (distance/inner)*100.
// Lightness comes from current. Outside the outer radius nothing is picked and
// current is returned with ok=false.
func (g Geometry) PickWheel(current colormodel.HSL, offset geom.Point) (colormodel.HSL, bool) {
	distance, angle := geom.Polar(offset)
	if distance > g.OuterRadius {
		return current, false
	}

	saturation := 100.0
	if distance < g.InnerRadius {
		saturation = distance / g.InnerRadius * 100
	}
	return colormodel.HSL{H: angle, S: saturation, L: current.L}.Normalize(), true
}

// PickSlider maps a pointer x offset from the slider's left edge to a
// lightness, clamped to [0,100]. Hue and saturation come from current.
func (g Geometry) PickSlider(current colormodel.HSL, x float64) colormodel.HSL {
	l := x / float64(g.SliderWidth) * 100
	l = math.Max(0, math.Min(100, l))
	return colormodel.HSL{H: current.H, S: current.S, L: l}.Normalize()
}

// IndicatorPosition is where the selection ring is drawn for c, in wheel-canvas
// coordinates. Colors below 60% saturation sit in the inner disk at their
// saturation radius; the rest sit in the middle of the ring.
func (g Geometry) IndicatorPosition(c colormodel.HSL) geom.Point {
	radius := g.RingRadius()
	if c.S < 60 {
		radius = c.S / 100 * g.InnerRadius
	}
	return g.Center().Add(geom.FromPolar(radius, c.H))
}

// SliderIndicatorX is the x position of the slider marker for c.
func (g Geometry) SliderIndicatorX(c colormodel.HSL) float64 {
	return c.L / 100 * float64(g.SliderWidth)
}
