package explorer

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/irfansharif/huewheel/internal/geom"
	"github.com/irfansharif/huewheel/internal/preview"
	"github.com/irfansharif/huewheel/internal/wheel"
)

func TestNewLayout(t *testing.T) {
	t.Parallel()

	l := NewLayout(960, 640, wheel.DefaultGeometry(), 3)
	require.Equal(t, geom.MakeBox(16, 16, 200, 200), l.Wheel)
	require.Equal(t, geom.MakeBox(16, 228, 200, 20), l.Slider)

	require.Len(t, l.Swatches, 3)
	require.Equal(t, 260.0, l.Swatches[0].Y)
	require.InDelta(t, 216, l.Swatches[2].X+l.Swatches[2].W, 1e-9)

	require.Len(t, l.Presets, len(preview.Presets))
	require.Equal(t, 312.0, l.Presets[0].Y)
	require.InDelta(t, 30.4, l.Presets[0].W, 1e-9)
	require.Greater(t, l.Presets[presetColumns].Y, l.Presets[0].Y)

	require.Equal(t, geom.MakeBox(232, 16, 712, 608), l.Preview)
}

func TestLayoutEvent(t *testing.T) {
	t.Parallel()

	l := NewLayout(960, 640, wheel.DefaultGeometry(), 3)

	ev := l.Event(wheel.Down, 116, 31)
	require.Equal(t, wheel.Wheel, ev.Target)
	require.Equal(t, geom.MakePoint(100, 15), ev.Wheel)

	ev = l.Event(wheel.Down, 66, 238)
	require.Equal(t, wheel.Slider, ev.Target)
	require.Equal(t, geom.MakePoint(50, 10), ev.Slider)

	// Positions stay relative to both widgets regardless of the target.
	ev = l.Event(wheel.Move, 500, 500)
	require.Equal(t, wheel.None, ev.Target)
	require.Equal(t, geom.MakePoint(484, 484), ev.Wheel)
	require.Equal(t, geom.MakePoint(484, 272), ev.Slider)
}

func TestLayoutEventDrivesExplorer(t *testing.T) {
	t.Parallel()

	e := newExplorer(t)
	l := NewLayout(960, 640, e.Geometry(), len(e.Palette()))

	// Top of the ring.
	require.True(t, e.HandleWheel(l.Event(wheel.Down, 116, 31)))
	require.InDelta(t, 0, e.HSL().H, 1e-9)
	require.Equal(t, 100.0, e.HSL().S)

	// Dragging off the widget onto the slider row keeps the wheel drag and
	// picks nothing outside the ring.
	require.False(t, e.HandleWheel(l.Event(wheel.Move, 66, 238)))
	require.Equal(t, wheel.Wheel, e.Dragging())
	require.False(t, e.HandleWheel(l.Event(wheel.Up, 66, 238)))
}

func TestLayoutHits(t *testing.T) {
	t.Parallel()

	l := NewLayout(960, 640, wheel.DefaultGeometry(), 4)

	i, ok := l.SwatchAt(l.Swatches[3].Center())
	require.True(t, ok)
	require.Equal(t, 3, i)

	i, ok = l.PresetAt(l.Presets[7].Center())
	require.True(t, ok)
	require.Equal(t, 7, i)

	_, ok = l.PresetAt(l.Preview.Center())
	require.False(t, ok)
	_, ok = l.SwatchAt(geom.MakePoint(0, 0))
	require.False(t, ok)
}

func TestPreviewTransform(t *testing.T) {
	t.Parallel()

	l := NewLayout(960, 640, wheel.DefaultGeometry(), 3)
	tr, err := l.PreviewTransform()
	require.NoError(t, err)

	// Scene origin lands on the preview center; scene Y is up.
	c := tr.MulPoint(geom.MakePoint(0, 0))
	require.InDelta(t, l.Preview.Center().X, c.X, 1e-9)
	require.InDelta(t, l.Preview.Center().Y, c.Y, 1e-9)
	up := tr.MulPoint(geom.MakePoint(0, 1))
	require.Less(t, up.Y, c.Y)

	empty := NewLayout(100, 100, wheel.DefaultGeometry(), 3)
	_, err = empty.PreviewTransform()
	require.Error(t, err)
}
