package explorer

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/irfansharif/huewheel/internal/colormodel"
	"github.com/irfansharif/huewheel/internal/config"
	"github.com/irfansharif/huewheel/internal/geom"
	"github.com/irfansharif/huewheel/internal/palette"
	"github.com/irfansharif/huewheel/internal/preview"
	"github.com/irfansharif/huewheel/internal/wheel"
)

func newExplorer(t *testing.T) *Explorer {
	t.Helper()
	e, err := New(config.Default(), nil)
	require.NoError(t, err)
	return e
}

func TestNew(t *testing.T) {
	t.Parallel()

	e := newExplorer(t)
	require.Equal(t, "#0B5BFF", e.Base())
	require.Equal(t, palette.Triadic, e.Type())
	require.Equal(t, wheel.None, e.Dragging())

	want, err := palette.Generate("#0B5BFF", palette.Triadic)
	require.NoError(t, err)
	require.Equal(t, want, e.Palette())
	require.Equal(t, want, e.Scene().Palette)
	require.Equal(t, want[0], e.Scene().Background.Color)

	_, _, ok := e.Preset()
	require.False(t, ok)

	cfg := config.Default()
	cfg.BaseColor = "nope"
	_, err = New(cfg, nil)
	require.ErrorIs(t, err, colormodel.ErrInvalidFormat)
}

func TestPaletteIsCopy(t *testing.T) {
	t.Parallel()

	e := newExplorer(t)
	p := e.Palette()
	p[0] = "#000000"
	require.Equal(t, "#0B5BFF", e.Palette()[0])
}

func TestSetBase(t *testing.T) {
	t.Parallel()

	e := newExplorer(t)
	require.NoError(t, e.SetBase("f00"))
	require.Equal(t, "#FF0000", e.Base())
	require.Equal(t, palette.Palette{"#FF0000", "#00FF00", "#0000FF"}, e.Palette())

	before := e.Palette()
	require.ErrorIs(t, e.SetBase("#GG0000"), colormodel.ErrInvalidFormat)
	require.Equal(t, "#FF0000", e.Base())
	require.Equal(t, before, e.Palette())
}

func TestSetPaletteType(t *testing.T) {
	t.Parallel()

	e := newExplorer(t)
	require.NoError(t, e.SetPaletteType(palette.Square))
	require.Len(t, e.Palette(), 4)
	require.Len(t, e.Swatches(), 4)

	require.ErrorIs(t, e.SetPaletteType("pentadic"), palette.ErrUnknownType)
	require.Equal(t, palette.Square, e.Type())

	e.CycleType()
	require.Equal(t, palette.Complementary, e.Type())
	require.Len(t, e.Palette(), 2)
}

func TestApplyPreset(t *testing.T) {
	t.Parallel()

	e := newExplorer(t)
	require.NoError(t, e.ApplyPreset(2, 77)) // Blue Green

	p, i, ok := e.Preset()
	require.True(t, ok)
	require.Equal(t, 2, i)
	require.Equal(t, "Blue Green", p.Name)
	require.Equal(t, palette.Complementary, e.Type())
	require.Equal(t, preview.BaseColor(300), e.Base())

	colorSeed, shapeSeed := e.Seeds()
	require.Equal(t, 300.0, colorSeed)
	require.Equal(t, 77.0, shapeSeed)

	want, err := preview.Layout(300, 77, palette.Complementary)
	require.NoError(t, err)
	require.Equal(t, want, e.Scene())

	require.Error(t, e.ApplyPreset(len(preview.Presets), 0))
	_, i, _ = e.Preset()
	require.Equal(t, 2, i)

	// Editing the color leaves the preset.
	require.NoError(t, e.SetBase("#123456"))
	_, _, ok = e.Preset()
	require.False(t, ok)
}

func TestNextPresetWraps(t *testing.T) {
	t.Parallel()

	e := newExplorer(t)
	require.NoError(t, e.NextPreset(1))
	_, i, _ := e.Preset()
	require.Equal(t, 0, i)

	require.NoError(t, e.ApplyPreset(len(preview.Presets)-1, 1))
	require.NoError(t, e.NextPreset(1))
	_, i, _ = e.Preset()
	require.Equal(t, 0, i)
}

func TestRefreshKeepsColors(t *testing.T) {
	t.Parallel()

	e := newExplorer(t)
	before := e.Scene()
	e.Refresh(4321)
	after := e.Scene()

	require.Equal(t, before.Palette, after.Palette)
	require.Equal(t, before.Background, after.Background)
	require.NotEqual(t, before.Shapes[0].Position, after.Shapes[0].Position)
}

func TestHandleWheel(t *testing.T) {
	t.Parallel()

	e := newExplorer(t)
	g := e.Geometry()

	// Press at the right side of the ring: hue 90, full saturation.
	changed := e.HandleWheel(wheel.Event{Kind: wheel.Down, Target: wheel.Wheel, Wheel: g.Center().Add(geom.MakePoint(g.RingRadius(), 0))})
	require.True(t, changed)
	require.Equal(t, wheel.Wheel, e.Dragging())
	require.InDelta(t, 90, e.HSL().H, 1e-9)
	require.Equal(t, e.Base(), e.Palette()[0])

	// Release.
	require.False(t, e.HandleWheel(wheel.Event{Kind: wheel.Up}))
	require.Equal(t, wheel.None, e.Dragging())

	// Slider to black.
	require.True(t, e.HandleWheel(wheel.Event{Kind: wheel.Down, Target: wheel.Slider}))
	require.Equal(t, "#000000", e.Base())
	require.Equal(t, palette.Palette{"#000000", "#000000", "#000000"}, e.Palette())
}
