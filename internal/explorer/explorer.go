// Package explorer is the interactive palette session behind the explore
// window: the wheel state, the selected harmony rule, the preset toolbar and
// the seeds of the decorative preview. It owns no window or GPU resources;
// callers feed it events and read back what to draw.
//
// An Explorer is not safe for concurrent use. The window loop owns it.
package explorer

import (
	"fmt"

	"github.com/irfansharif/huewheel/internal/colormodel"
	"github.com/irfansharif/huewheel/internal/config"
	"github.com/irfansharif/huewheel/internal/logger"
	"github.com/irfansharif/huewheel/internal/palette"
	"github.com/irfansharif/huewheel/internal/preview"
	"github.com/irfansharif/huewheel/internal/wheel"
)

// noPreset marks a session whose colors no longer match any preset.
const noPreset = -1

// Explorer is one palette session. Derived values (the palette and the
// preview scene) are recomputed synchronously whenever an input changes.
type Explorer struct {
	geometry  wheel.Geometry
	state     wheel.State
	ptype     palette.Type
	colorSeed float64
	shapeSeed float64
	preset    int

	palette palette.Palette
	scene   preview.Scene

	log *logger.Logger
}

// New starts a session from cfg. cfg is expected to be validated; a nil log
// discards.
func New(cfg config.Config, log *logger.Logger) (*Explorer, error) {
	g, err := cfg.Geometry()
	if err != nil {
		return nil, err
	}
	state, err := wheel.NewState(cfg.BaseColor)
	if err != nil {
		return nil, err
	}
	t, err := palette.ParseType(cfg.PaletteType)
	if err != nil {
		return nil, err
	}

	e := &Explorer{
		geometry:  g,
		state:     state,
		ptype:     t,
		colorSeed: cfg.ColorSeed,
		preset:    noPreset,
		log:       log,
	}
	if err := e.recompute(); err != nil {
		return nil, err
	}
	return e, nil
}

// Geometry is the wheel and slider layout.
func (e *Explorer) Geometry() wheel.Geometry { return e.geometry }

// Base is the current base color as canonical hex.
func (e *Explorer) Base() string { return e.state.Hex() }

// HSL is the current base color, unrounded.
func (e *Explorer) HSL() colormodel.HSL { return e.state.HSL }

// Type is the selected harmony rule.
func (e *Explorer) Type() palette.Type { return e.ptype }

// Dragging is the widget currently being dragged, if any.
func (e *Explorer) Dragging() wheel.Target { return e.state.Dragging }

// Seeds returns the color and shape seeds.
func (e *Explorer) Seeds() (color, shape float64) { return e.colorSeed, e.shapeSeed }

// Palette returns a copy of the current palette.
func (e *Explorer) Palette() palette.Palette {
	return append(palette.Palette(nil), e.palette...)
}

// Swatches annotates the current palette with legible text colors.
func (e *Explorer) Swatches() []palette.Swatch { return e.palette.Swatches() }

// Scene is the decorative layout for the current palette.
func (e *Explorer) Scene() preview.Scene { return e.scene }

// Preset returns the active preset, if the session still matches one.
func (e *Explorer) Preset() (preview.Preset, int, bool) {
	if e.preset == noPreset {
		return preview.Preset{}, noPreset, false
	}
	return preview.Presets[e.preset], e.preset, true
}

// SetBase replaces the base color. On error the session is unchanged.
func (e *Explorer) SetBase(hex string) error {
	hsl, err := colormodel.HexToHSL(hex)
	if err != nil {
		return err
	}
	prev := e.state.HSL
	e.state.HSL = hsl
	if err := e.recompute(); err != nil {
		e.state.HSL = prev
		return err
	}
	e.preset = noPreset
	return nil
}

// SetPaletteType selects a harmony rule.
func (e *Explorer) SetPaletteType(t palette.Type) error {
	if !t.Valid() {
		return fmt.Errorf("%w: %q", palette.ErrUnknownType, string(t))
	}
	if t == e.ptype {
		return nil
	}
	prev := e.ptype
	e.ptype = t
	if err := e.recompute(); err != nil {
		e.ptype = prev
		return err
	}
	e.preset = noPreset
	return nil
}

// CycleType advances to the next harmony rule.
func (e *Explorer) CycleType() {
	_ = e.SetPaletteType(e.ptype.Next())
}

// ApplyPreset switches to preset i: its harmony rule, its color seed (and the
// base color that seed selects) and a fresh shape seed.
func (e *Explorer) ApplyPreset(i int, shapeSeed float64) error {
	if i < 0 || i >= len(preview.Presets) {
		return fmt.Errorf("preset index %d out of range [0,%d)", i, len(preview.Presets))
	}
	p := preview.Presets[i]
	hsl, err := colormodel.HexToHSL(preview.BaseColor(p.SeedOffset))
	if err != nil {
		return err
	}

	saved := *e
	e.ptype = p.Type
	e.colorSeed = p.SeedOffset
	e.shapeSeed = shapeSeed
	e.state.HSL = hsl
	if err := e.recompute(); err != nil {
		*e = saved
		return err
	}
	e.preset = i
	return nil
}

// NextPreset applies the preset after the active one (the first if none is
// active).
func (e *Explorer) NextPreset(shapeSeed float64) error {
	return e.ApplyPreset((e.preset+1)%len(preview.Presets), shapeSeed)
}

// Refresh moves the preview shapes while keeping every color.
func (e *Explorer) Refresh(shapeSeed float64) {
	e.shapeSeed = shapeSeed
	if err := e.recompute(); err != nil {
		e.log.Errorf(err, "refreshing preview")
	}
}

// HandleWheel feeds a pointer event through the wheel reducer and reports
// whether the base color changed.
func (e *Explorer) HandleWheel(ev wheel.Event) bool {
	next, changed := e.geometry.Reduce(e.state, ev)
	if !changed {
		e.state = next
		return false
	}

	prev := e.state
	e.state = next
	if err := e.recompute(); err != nil {
		e.log.Errorf(err, "recomputing palette")
		e.state = prev
		return false
	}
	e.preset = noPreset
	return true
}

// recompute derives the palette and the scene from the inputs.
func (e *Explorer) recompute() error {
	p, err := palette.Generate(e.Base(), e.ptype)
	if err != nil {
		return err
	}
	scene, err := preview.LayoutFrom(e.Base(), e.shapeSeed, e.ptype)
	if err != nil {
		return err
	}
	e.palette, e.scene = p, scene
	e.log.Debugf("palette %s %s -> %v", e.ptype, e.Base(), []string(p))
	return nil
}
