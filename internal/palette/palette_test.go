package palette

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/irfansharif/huewheel/internal/colormodel"
)

func hueOf(t *testing.T, hex string) float64 {
	t.Helper()
	hsl, err := colormodel.HexToHSL(hex)
	require.NoError(t, err)
	return hsl.H
}

func TestGenerateCardinality(t *testing.T) {
	t.Parallel()

	want := map[Type]int{
		Complementary: 2,
		Split:         3,
		Monochromatic: 3,
		Analogous:     3,
		Triadic:       3,
		Square:        4,
	}
	require.Len(t, Types(), len(want))

	for _, base := range []string{"#0B5BFF", "#000000", "#FFFFFF", "#808080", "#F0A"} {
		for _, typ := range Types() {
			p, err := Generate(base, typ)
			require.NoError(t, err)
			require.Len(t, p, want[typ], "%s/%s", base, typ)
			require.Equal(t, want[typ], typ.Size())
			for _, hex := range p {
				_, err := colormodel.HexToRGB(hex)
				require.NoError(t, err)
			}
		}
	}
}

func TestGenerateSlotZeroIsBase(t *testing.T) {
	t.Parallel()

	for _, base := range []string{"#0B5BFF", "#ff006e", "#06FFA5", "#123456"} {
		canonical, err := colormodel.Canonical(base)
		require.NoError(t, err)
		for _, typ := range Types() {
			p, err := Generate(base, typ)
			require.NoError(t, err)
			require.Equal(t, canonical, p[0], "%s/%s", base, typ)
		}
	}
}

func TestGenerateComplementaryHue(t *testing.T) {
	t.Parallel()

	for _, base := range []string{"#0B5BFF", "#FF006E", "#06FFA5", "#FFBE0B", "#8338EC"} {
		p, err := Generate(base, Complementary)
		require.NoError(t, err)
		want := colormodel.NormalizeHue(hueOf(t, base) + 180)
		require.LessOrEqual(t, colormodel.HueDistance(want, hueOf(t, p[1])), 1.0, base)
	}
}

func TestGenerateTriadicScenario(t *testing.T) {
	t.Parallel()

	base, err := colormodel.HexToHSL("#0B5BFF")
	require.NoError(t, err)

	p, err := Generate("#0B5BFF", Triadic)
	require.NoError(t, err)
	require.Len(t, p, 3)

	for i, wantHue := range []float64{221, 341, 101} {
		got, err := colormodel.HexToHSL(p[i])
		require.NoError(t, err)
		require.LessOrEqual(t, colormodel.HueDistance(wantHue, got.H), 1.5, "slot %d", i)
		require.InDelta(t, base.S, got.S, 1.0, "slot %d saturation", i)
		require.InDelta(t, base.L, got.L, 1.0, "slot %d lightness", i)
	}
}

func TestGenerateHueOffsets(t *testing.T) {
	t.Parallel()

	base := colormodel.HSL{H: 200, S: 80, L: 50}
	cases := map[Type][]float64{
		Split:     {200, 350, 50},
		Analogous: {200, 230, 170},
		Square:    {200, 290, 20, 110},
	}
	for typ, hues := range cases {
		got := HSLs(base, typ)
		require.Len(t, got, len(hues))
		for i, h := range hues {
			require.InDelta(t, h, got[i].H, 1e-9, "%s slot %d", typ, i)
			require.Equal(t, base.L, got[i].L)
			require.Equal(t, base.S, got[i].S)
		}
	}
}

func TestGenerateMonochromaticLightness(t *testing.T) {
	t.Parallel()

	got := HSLs(colormodel.HSL{H: 10, S: 50, L: 50}, Monochromatic)
	require.InDelta(t, 50, got[0].L, 1e-9)
	require.InDelta(t, 30, got[1].L, 1e-9)
	require.InDelta(t, 70, got[2].L, 1e-9)

	// 1.4x lightness clamps at 100.
	got = HSLs(colormodel.HSL{H: 10, S: 50, L: 90}, Monochromatic)
	require.Equal(t, 100.0, got[2].L)

	p, err := Generate("#FFFFFF", Monochromatic)
	require.NoError(t, err)
	require.Equal(t, Palette{"#FFFFFF", "#999999", "#FFFFFF"}, p)

	p, err = Generate("#000000", Monochromatic)
	require.NoError(t, err)
	require.Equal(t, Palette{"#000000", "#000000", "#000000"}, p)
}

func TestGenerateIsDeterministic(t *testing.T) {
	t.Parallel()

	for _, typ := range Types() {
		a, err := Generate("#3A86FF", typ)
		require.NoError(t, err)
		b, err := Generate("#3a86ff", typ)
		require.NoError(t, err)
		require.Equal(t, a, b)
	}
}

func TestGenerateErrors(t *testing.T) {
	t.Parallel()

	_, err := Generate("#XYZ", Triadic)
	require.ErrorIs(t, err, colormodel.ErrInvalidFormat)

	_, err = Generate("#0B5BFF", Type("pentadic"))
	require.ErrorIs(t, err, ErrUnknownType)
}

func TestParseType(t *testing.T) {
	t.Parallel()

	got, err := ParseType(" Triadic ")
	require.NoError(t, err)
	require.Equal(t, Triadic, got)

	_, err = ParseType("rainbow")
	require.ErrorIs(t, err, ErrUnknownType)

	require.Equal(t, "Square (4)", Square.Label())
	require.Equal(t, Complementary, Square.Next())
	require.Equal(t, Split, Complementary.Next())
	require.True(t, Analogous.Valid())
	require.False(t, Type("").Valid())
}

func TestSwatchesAndRGBA(t *testing.T) {
	t.Parallel()

	p := Palette{"#000000", "#FFFFFF", "#0B5BFF"}
	sw := p.Swatches()
	require.Equal(t, []Swatch{
		{Hex: "#000000", Text: colormodel.White},
		{Hex: "#FFFFFF", Text: colormodel.Black},
		{Hex: "#0B5BFF", Text: colormodel.White},
	}, sw)

	rgba := p.RGBA()
	require.Len(t, rgba, 3)
	require.Equal(t, uint8(11), rgba[2].R)
	require.Equal(t, uint8(255), rgba[1].A)
}
