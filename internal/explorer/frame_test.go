package explorer

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/irfansharif/huewheel/internal/mesh"
	"github.com/irfansharif/huewheel/internal/preview"
)

func TestFrame(t *testing.T) {
	t.Parallel()

	e := newExplorer(t)
	l := NewLayout(960, 640, e.Geometry(), len(e.Palette()))
	f, err := e.Frame(l)
	require.NoError(t, err)
	require.Len(t, f.Batches, 4)

	// Preview: background plus shapes, two triangles each, clipped.
	previewBatch := f.Batches[0]
	require.Equal(t, l.Preview, previewBatch.Clip)
	require.Equal(t, (preview.ShapeCount+1)*6, previewBatch.Count)

	// Flat controls: one rect per swatch, a backing rect per preset plus one
	// per preview color.
	rects := len(e.Palette())
	for _, p := range preview.Presets {
		rects += 1 + len(p.PreviewColors)
	}
	require.Equal(t, rects*6, f.Batches[1].Count)
	require.Zero(t, f.Batches[1].Texture)

	require.Equal(t, mesh.Batch{First: f.VertexCount() - 12, Count: 6, Texture: TextureWheel}, f.Batches[2])
	require.Equal(t, mesh.Batch{First: f.VertexCount() - 6, Count: 6, Texture: TextureSlider}, f.Batches[3])

	// The first swatch carries the base color.
	first := f.Batches[1].First * mesh.Stride
	require.InDelta(t, float32(0x0B)/255, f.Vertices[first+2], 1e-6)
	require.InDelta(t, float32(0x5B)/255, f.Vertices[first+3], 1e-6)
	require.InDelta(t, float32(1), f.Vertices[first+4], 1e-6)
}

func TestFrameActivePresetOutline(t *testing.T) {
	t.Parallel()

	e := newExplorer(t)
	l := NewLayout(960, 640, e.Geometry(), 3)
	before, err := e.Frame(l)
	require.NoError(t, err)

	require.NoError(t, e.ApplyPreset(0, 1))
	l = NewLayout(960, 640, e.Geometry(), len(e.Palette()))
	after, err := e.Frame(l)
	require.NoError(t, err)
	require.Equal(t, before.Batches[1].Count+4*6, after.Batches[1].Count)
}

func TestFrameWithoutPreview(t *testing.T) {
	t.Parallel()

	e := newExplorer(t)
	f, err := e.Frame(NewLayout(200, 200, e.Geometry(), 3))
	require.NoError(t, err)
	require.Len(t, f.Batches, 3)
	require.Zero(t, f.Batches[0].Texture)
}
