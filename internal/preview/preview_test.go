package preview

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/irfansharif/huewheel/internal/colormodel"
	"github.com/irfansharif/huewheel/internal/palette"
)

func TestSeededRandom(t *testing.T) {
	t.Parallel()

	require.Equal(t, 0.0, SeededRandom(0))
	require.InDelta(t, 0.70984807, SeededRandom(1), 1e-6)
	require.Equal(t, SeededRandom(42), SeededRandom(42))

	for seed := -50.0; seed < 50; seed += 0.37 {
		r := SeededRandom(seed)
		require.GreaterOrEqual(t, r, 0.0)
		require.Less(t, r, 1.0)
	}
}

func TestBaseColor(t *testing.T) {
	t.Parallel()

	for seed, want := range map[float64]string{
		0:    "#0B5BFF",
		100:  "#3A86FF",
		200:  "#FFBE0B",
		300:  "#FB5607",
		500:  "#06FFA5",
		1000: "#06FFA5",
	} {
		require.Equal(t, want, BaseColor(seed), "seed=%v", seed)
	}
}

func TestPresets(t *testing.T) {
	t.Parallel()

	require.Len(t, Presets, 10)
	seen := map[string]bool{}
	for _, p := range Presets {
		require.True(t, p.Type.Valid(), p.Name)
		require.NotEmpty(t, p.PreviewColors, p.Name)
		for _, hex := range p.PreviewColors {
			_, err := colormodel.HexToRGB(hex)
			require.NoError(t, err, "%s: %s", p.Name, hex)
		}
		require.False(t, seen[p.Name], "duplicate preset %s", p.Name)
		seen[p.Name] = true
	}

	p, ok := FindPreset("  blue GREEN ")
	require.True(t, ok)
	require.Equal(t, palette.Complementary, p.Type)
	require.Equal(t, 300.0, p.SeedOffset)

	p, ok = FindPreset("b&w gradient")
	require.True(t, ok)
	require.Equal(t, 700.0, p.SeedOffset)

	_, ok = FindPreset("sepia")
	require.False(t, ok)
}

func TestLayout(t *testing.T) {
	t.Parallel()

	scene, err := Layout(100, 42, palette.Triadic)
	require.NoError(t, err)
	require.Equal(t, "#3A86FF", scene.Base)
	require.Len(t, scene.Palette, 3)
	require.Equal(t, scene.Palette[0], scene.Background.Color)
	require.Len(t, scene.Shapes, ShapeCount)

	for i, s := range scene.Shapes {
		require.Contains(t, []string(scene.Palette), s.Color)
		require.InDelta(t, -0.2-float64(i)*0.01, s.Position[2], 1e-12)
		require.True(t, s.Position[0] >= -3 && s.Position[0] < 3, "x=%v", s.Position[0])
		require.True(t, s.Position[1] >= -1.75 && s.Position[1] < 1.75, "y=%v", s.Position[1])
		for _, sc := range s.Scale {
			require.True(t, sc >= 3 && sc < 7, "scale=%v", sc)
		}
		require.True(t, s.Rotation >= 0 && s.Rotation < math.Pi)
	}

	// First shape is seeded directly by the shape seed.
	first := scene.Shapes[0]
	require.InDelta(t, (SeededRandom(42)-0.5)*6, first.Position[0], 1e-12)
	require.InDelta(t, 3+4*SeededRandom(44), first.Scale[0], 1e-12)
	require.InDelta(t, SeededRandom(46)*math.Pi, first.Rotation, 1e-12)
}

func TestLayoutFrom(t *testing.T) {
	t.Parallel()

	viaSeed, err := Layout(300, 5, palette.Analogous)
	require.NoError(t, err)
	direct, err := LayoutFrom("#fb5607", 5, palette.Analogous)
	require.NoError(t, err)
	require.Equal(t, viaSeed, direct)

	_, err = LayoutFrom("orange", 5, palette.Analogous)
	require.ErrorIs(t, err, colormodel.ErrInvalidFormat)
}

func TestLayoutDeterministic(t *testing.T) {
	t.Parallel()

	a, err := Layout(700, 1234.5, palette.Square)
	require.NoError(t, err)
	b, err := Layout(700, 1234.5, palette.Square)
	require.NoError(t, err)
	require.Equal(t, a, b)
}

func TestLayoutPaletteTypeKeepsPlacement(t *testing.T) {
	t.Parallel()

	a, err := Layout(300, 99, palette.Complementary)
	require.NoError(t, err)
	b, err := Layout(800, 99, palette.Monochromatic)
	require.NoError(t, err)
	for i := range a.Shapes {
		require.Equal(t, a.Shapes[i].Position, b.Shapes[i].Position)
		require.Equal(t, a.Shapes[i].Scale, b.Shapes[i].Scale)
		require.Equal(t, a.Shapes[i].Rotation, b.Shapes[i].Rotation)
	}
}

func TestLayoutUnknownType(t *testing.T) {
	t.Parallel()

	_, err := Layout(1, 1, palette.Type("pentadic"))
	require.ErrorIs(t, err, palette.ErrUnknownType)
}

func TestShapeCorners(t *testing.T) {
	t.Parallel()

	s := Shape{Position: [3]float64{1, 2, 0}, Scale: [2]float64{4, 2}}
	corners := s.Corners()
	require.Len(t, corners, 4)
	require.InDelta(t, -1, corners[0].X, 1e-12)
	require.InDelta(t, 1, corners[0].Y, 1e-12)
	require.InDelta(t, 3, corners[2].X, 1e-12)
	require.InDelta(t, 3, corners[2].Y, 1e-12)

	// A quarter turn swaps the extents.
	s.Rotation = math.Pi / 2
	corners = s.Corners()
	require.InDelta(t, 2, corners[0].X, 1e-12)
	require.InDelta(t, 0, corners[0].Y, 1e-12)
	require.InDelta(t, 0, corners[2].X, 1e-12)
	require.InDelta(t, 4, corners[2].Y, 1e-12)
}

func TestPaintedOrder(t *testing.T) {
	t.Parallel()

	scene, err := Layout(200, 7, palette.Split)
	require.NoError(t, err)
	painted := scene.Painted()
	require.Len(t, painted, ShapeCount+1)
	require.Equal(t, scene.Background, painted[0])
	require.Equal(t, scene.Shapes[ShapeCount-1], painted[1])
	require.Equal(t, scene.Shapes[0], painted[ShapeCount])
}
