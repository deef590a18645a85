package explorer

import (
	"fmt"
	"image/color"

	"github.com/irfansharif/huewheel/internal/colormodel"
	"github.com/irfansharif/huewheel/internal/geom"
	"github.com/irfansharif/huewheel/internal/mesh"
	"github.com/irfansharif/huewheel/internal/preview"
)

// Texture slots referenced by the frame's batches.
const (
	TextureWheel  = 1
	TextureSlider = 2
)

const outlineWidth = 2

var (
	white = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	panel = color.RGBA{R: 30, G: 30, B: 30, A: 242}
)

// Frame assembles everything the window draws for the current session, in
// window pixels: the preview scene clipped to its box, the palette swatches,
// the preset toolbar and the two textured widgets.
func (e *Explorer) Frame(l Layout) (mesh.Frame, error) {
	var f mesh.Frame
	if err := e.appendPreview(&f, l); err != nil {
		return mesh.Frame{}, err
	}

	f.Begin(0, geom.Box{})
	for i, sw := range e.Swatches() {
		if i >= len(l.Swatches) {
			break
		}
		c, err := rgba(sw.Hex)
		if err != nil {
			return mesh.Frame{}, err
		}
		f.Rect(l.Swatches[i], c, false)
	}
	if err := e.appendPresets(&f, l); err != nil {
		return mesh.Frame{}, err
	}

	f.Begin(TextureWheel, geom.Box{})
	f.Rect(l.Wheel, white, true)
	f.Begin(TextureSlider, geom.Box{})
	f.Rect(l.Slider, white, true)
	return f, nil
}

func (e *Explorer) appendPreview(f *mesh.Frame, l Layout) error {
	if l.Preview.W <= 0 || l.Preview.H <= 0 {
		return nil
	}
	toScreen, err := l.PreviewTransform()
	if err != nil {
		return err
	}

	f.Begin(0, l.Preview)
	for _, s := range e.scene.Painted() {
		c, err := rgba(s.Color)
		if err != nil {
			return err
		}
		corners := s.Corners()
		for i, p := range corners {
			corners[i] = toScreen.MulPoint(p)
		}
		if err := f.Polygon(corners, c); err != nil {
			return fmt.Errorf("preview shape: %w", err)
		}
	}
	return nil
}

// appendPresets draws each preset button as vertical bands of its preview
// colors, with an outline around the active one.
func (e *Explorer) appendPresets(f *mesh.Frame, l Layout) error {
	_, active, ok := e.Preset()
	if ok && active < len(l.Presets) {
		f.Outline(l.Presets[active], outlineWidth, white)
	}
	for i, p := range preview.Presets {
		if i >= len(l.Presets) {
			break
		}
		box := l.Presets[i]
		f.Rect(box, panel, false)
		band := box.W / float64(len(p.PreviewColors))
		for k, hex := range p.PreviewColors {
			c, err := rgba(hex)
			if err != nil {
				return err
			}
			f.Rect(geom.MakeBox(box.X+float64(k)*band, box.Y, band, box.H), c, false)
		}
	}
	return nil
}

func rgba(hex string) (color.RGBA, error) {
	rgb, err := colormodel.HexToRGB(hex)
	if err != nil {
		return color.RGBA{}, err
	}
	return rgb.RGBA(), nil
}
