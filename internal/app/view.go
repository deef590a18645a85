package app

import (
	"github.com/irfansharif/huewheel/internal/explorer"
	"github.com/irfansharif/huewheel/internal/wheel"
)

// View tracks the window and framebuffer sizes and the widget layout derived
// from them.
type View struct {
	Width, Height     int // window size, the coordinate space of cursor events
	FBWidth, FBHeight int // framebuffer size in device pixels
	Layout            explorer.Layout

	geometry wheel.Geometry
	swatches int
}

// NewView lays out a window of the given sizes.
func NewView(width, height, fbWidth, fbHeight int, g wheel.Geometry, swatches int) *View {
	v := &View{geometry: g, swatches: swatches}
	v.SetViewport(width, height, fbWidth, fbHeight)
	return v
}

// SetViewport updates the sizes and relayouts.
func (v *View) SetViewport(width, height, fbWidth, fbHeight int) {
	v.Width, v.Height = width, height
	v.FBWidth, v.FBHeight = fbWidth, fbHeight
	v.relayout()
}

// SetSwatches relayouts for a palette of n colors. It reports whether the
// layout changed.
func (v *View) SetSwatches(n int) bool {
	if n == v.swatches {
		return false
	}
	v.swatches = n
	v.relayout()
	return true
}

func (v *View) relayout() {
	v.Layout = explorer.NewLayout(v.Width, v.Height, v.geometry, v.swatches)
}
