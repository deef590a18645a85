// Package wheel maps pointer positions on a circular color picker and its
// lightness slider to HSL values, and renders the pixel buffers that paint
// both widgets.
//
// The wheel is an outer ring of pure hues (saturation 100) around an inner
// disk whose saturation grows linearly with the distance from the center.
// Hue is the pointer angle measured clockwise from "up". Lightness is owned by
// the slider and carried over unchanged by wheel interaction.
//
// Everything here is a pure function of (geometry, HSL, pointer): there is no
// retained state beyond the State value the caller threads through Reduce.
package wheel

import (
	"fmt"

	"github.com/irfansharif/huewheel/internal/geom"
)

// Geometry is the fixed layout of the wheel and slider widgets, in pixels.
type Geometry struct {
	Size            int     // wheel canvas is Size x Size
	OuterRadius     float64 // edge of the hue ring
	InnerRadius     float64 // edge of the saturation disk
	SliderWidth     int
	SliderHeight    int
	IndicatorRadius float64 // radius of the selection ring
}

const (
	defaultSize         = 200
	defaultMargin       = 10
	defaultInnerRatio   = 0.6
	defaultSliderWidth  = 200
	defaultSliderHeight = 20
	defaultIndicator    = 6
)

// DefaultGeometry is a 200px wheel with a 10px margin, an inner disk at 60% of
// the outer radius and a 200x20 slider.
func DefaultGeometry() Geometry {
	g, _ := NewGeometry(defaultSize, defaultMargin, defaultInnerRatio, defaultSliderWidth, defaultSliderHeight)
	return g
}

// NewGeometry derives a geometry from the canvas size, the margin between the
// ring and the canvas edge and the inner/outer radius ratio.
func NewGeometry(size int, margin, innerRatio float64, sliderWidth, sliderHeight int) (Geometry, error) {
	outer := float64(size)/2 - margin
	g := Geometry{
		Size:            size,
		OuterRadius:     outer,
		InnerRadius:     outer * innerRatio,
		SliderWidth:     sliderWidth,
		SliderHeight:    sliderHeight,
		IndicatorRadius: defaultIndicator,
	}
	return g, g.Validate()
}

// Validate checks that the widgets have a non-empty domain.
func (g Geometry) Validate() error {
	switch {
	case g.Size <= 0:
		return fmt.Errorf("wheel size must be positive, got %d", g.Size)
	case g.OuterRadius <= 0 || g.OuterRadius > float64(g.Size)/2:
		return fmt.Errorf("outer radius %v must be in (0, %v]", g.OuterRadius, float64(g.Size)/2)
	case g.InnerRadius <= 0 || g.InnerRadius >= g.OuterRadius:
		return fmt.Errorf("inner radius %v must be in (0, %v)", g.InnerRadius, g.OuterRadius)
	case g.SliderWidth <= 0 || g.SliderHeight <= 0:
		return fmt.Errorf("slider must have positive extent, got %dx%d", g.SliderWidth, g.SliderHeight)
	}
	return nil
}

// Center is the wheel center in wheel-canvas coordinates.
func (g Geometry) Center() geom.Point {
	c := float64(g.Size) / 2
	return geom.MakePoint(c, c)
}

// RingRadius is the radius midway through the hue ring.
func (g Geometry) RingRadius() float64 {
	return (g.OuterRadius + g.InnerRadius) / 2
}
