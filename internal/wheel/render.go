package wheel

import (
	"image"
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/irfansharif/huewheel/internal/colormodel"
	"github.com/irfansharif/huewheel/internal/geom"
)

// ringLightness is the fixed lightness of the hue ring.
const ringLightness = 50

// sliderStops is the number of gradient segments across the slider; stops sit
// every 100/sliderStops lightness units and are blended linearly in RGB.
const sliderStops = 10

var (
	indicatorOuter = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	indicatorInner = color.RGBA{A: 255}
)

// RenderWheel paints the wheel for the current color c: the ring at lightness
// 50, the inner disk at c's lightness, transparent pixels outside the outer
// radius and the selection ring at IndicatorPosition(c).
func (g Geometry) RenderWheel(c colormodel.HSL) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, g.Size, g.Size))
	center := g.Center()
	c = c.Normalize()

	for y := 0; y < g.Size; y++ {
		for x := 0; x < g.Size; x++ {
			distance, angle := geom.Polar(geom.MakePoint(float64(x), float64(y)).Sub(center))

			var px colormodel.HSL
			switch {
			case distance > g.OuterRadius:
				continue // image.NewRGBA is zeroed, i.e. transparent
			case distance >= g.InnerRadius:
				px = colormodel.HSL{H: angle, S: 100, L: ringLightness}
			default:
				px = colormodel.HSL{H: angle, S: distance / g.InnerRadius * 100, L: c.L}
			}
			img.SetRGBA(x, y, px.RGB().RGBA())
		}
	}

	strokeRing(img, g.IndicatorPosition(c), g.IndicatorRadius)
	return img
}

// RenderSlider paints the lightness gradient from 0 to 100 at c's hue and
// saturation, with a vertical marker at SliderIndicatorX(c).
func (g Geometry) RenderSlider(c colormodel.HSL) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, g.SliderWidth, g.SliderHeight))
	c = c.Normalize()

	var stops [sliderStops + 1]colorful.Color
	for i := range stops {
		stop := colormodel.HSL{H: c.H, S: c.S, L: float64(i * 100 / sliderStops)}
		stops[i] = stop.RGB().Colorful()
	}

	marker := g.SliderIndicatorX(c)
	for x := 0; x < g.SliderWidth; x++ {
		cx := float64(x) + 0.5
		px := gradientAt(stops[:], cx/float64(g.SliderWidth))
		switch d := math.Abs(cx - marker); {
		case d <= 0.5:
			px = indicatorInner
		case d <= 1.5:
			px = indicatorOuter
		}
		for y := 0; y < g.SliderHeight; y++ {
			img.SetRGBA(x, y, px)
		}
	}
	return img
}

// gradientAt samples evenly spaced stops at t in [0,1].
func gradientAt(stops []colorful.Color, t float64) color.RGBA {
	segments := float64(len(stops) - 1)
	pos := math.Max(0, math.Min(1, t)) * segments
	i := int(pos)
	if i >= len(stops)-1 {
		i = len(stops) - 2
	}
	blended := stops[i].BlendRgb(stops[i+1], pos-float64(i))
	return colormodel.FromColorful(blended).RGBA()
}

// strokeRing draws a two-tone circle outline (black core, white halo) centered
// on at with the given radius, clipped to img.
func strokeRing(img *image.RGBA, at geom.Point, radius float64) {
	reach := radius + 2
	b := img.Bounds()
	x0 := max(b.Min.X, int(math.Floor(at.X-reach)))
	x1 := min(b.Max.X, int(math.Ceil(at.X+reach)))
	y0 := max(b.Min.Y, int(math.Floor(at.Y-reach)))
	y1 := min(b.Max.Y, int(math.Ceil(at.Y+reach)))

	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			d := math.Abs(geom.Dist(geom.MakePoint(float64(x)+0.5, float64(y)+0.5), at) - radius)
			switch {
			case d <= 0.5:
				img.SetRGBA(x, y, indicatorInner)
			case d <= 1.5:
				img.SetRGBA(x, y, indicatorOuter)
			}
		}
	}
}
