package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/irfansharif/huewheel/internal/palette"
)

func TestDefaultIsValid(t *testing.T) {
	t.Parallel()

	cfg := Default()
	require.NoError(t, cfg.Validate())
	require.Equal(t, palette.Triadic, cfg.Type())

	g, err := cfg.Geometry()
	require.NoError(t, err)
	assert.Equal(t, 200, g.Size)
	assert.Equal(t, 90.0, g.OuterRadius)
	assert.InDelta(t, 54.0, g.InnerRadius, 1e-9)
	assert.Equal(t, 200, g.SliderWidth)
	assert.Equal(t, 20, g.SliderHeight)
	assert.Equal(t, 6.0, g.IndicatorRadius)
}

func TestParseOverridesDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := Parse([]byte(`
base_color: "#f06"
palette_type: Square
wheel:
  size: 300
log:
  level: debug
`))
	require.NoError(t, err)
	assert.Equal(t, "#f06", cfg.BaseColor)
	assert.Equal(t, palette.Square, cfg.Type())
	assert.Equal(t, 300, cfg.Wheel.Size)
	assert.Equal(t, 0.6, cfg.Wheel.InnerRatio)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, 960, cfg.Window.Width)
}

func TestParseEmpty(t *testing.T) {
	t.Parallel()

	cfg, err := Parse(nil)
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
}

func TestParseErrors(t *testing.T) {
	t.Parallel()

	_, err := Parse([]byte("wheel:\n\tsize: 3\n"))
	var pe *ParseError
	require.ErrorAs(t, err, &pe)
	require.Positive(t, pe.Line)

	_, err = Parse([]byte("colour: red\n"))
	require.ErrorAs(t, err, &pe)
	require.Contains(t, err.Error(), "colour")
}

func TestValidationErrors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		yaml  string
		field string
	}{
		{name: "bad hex", yaml: `base_color: "#12345"`, field: "base_color"},
		{name: "empty hex", yaml: `base_color: ""`, field: "base_color"},
		{name: "unknown palette", yaml: `palette_type: pentadic`, field: "palette_type"},
		{name: "inner ratio", yaml: "wheel:\n  inner_ratio: 1.2", field: "wheel.inner_ratio"},
		{name: "tiny window", yaml: "window:\n  width: 10", field: "window.width"},
		{name: "log level", yaml: "log:\n  level: chatty", field: "log.level"},
		{name: "margin swallows ring", yaml: "wheel:\n  size: 40\n  margin: 20", field: "wheel"},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := Parse([]byte(tc.yaml))
			var ve *ValidationError
			require.ErrorAs(t, err, &ve)
			require.Equal(t, tc.field, ve.Field)
			require.NotEmpty(t, ve.Message)
		})
	}
}

func TestLoad(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "huewheel.yaml")
	require.NoError(t, os.WriteFile(path, []byte("palette_type: split\ncolor_seed: 300\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, palette.Split, cfg.Type())
	require.Equal(t, 300.0, cfg.ColorSeed)

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("window: [\n"), 0o644))
	_, err = Load(bad)
	var pe *ParseError
	require.ErrorAs(t, err, &pe)
	require.Equal(t, bad, pe.Path)

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	require.ErrorAs(t, err, &pe)
	require.ErrorIs(t, err, os.ErrNotExist)
}

// Environment tests can't run in parallel.

func TestApplyEnv(t *testing.T) {
	t.Setenv("HUEWHEEL_BASE_COLOR", "#00FF00")
	t.Setenv("HUEWHEEL_PALETTE_TYPE", "analogous")
	t.Setenv("HUEWHEEL_LOG_LEVEL", "DEBUG")
	t.Setenv("HUEWHEEL_SEED", "42")
	t.Setenv("HUEWHEEL_DEBUG_RUNTIME", "true")
	t.Setenv("HUEWHEEL_COLOR_SEED", "12.5")

	cfg, err := Default().ApplyEnv()
	require.NoError(t, err)
	assert.Equal(t, "#00FF00", cfg.BaseColor)
	assert.Equal(t, palette.Analogous, cfg.Type())
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, int64(42), cfg.Seed)
	assert.True(t, cfg.Log.DebugRuntime)
	assert.Equal(t, 12.5, cfg.ColorSeed)
}

func TestApplyEnvUnsetKeepsValues(t *testing.T) {
	cfg := Default()
	cfg.Seed = 7
	got, err := cfg.ApplyEnv()
	require.NoError(t, err)
	require.Equal(t, cfg, got)
}

func TestApplyEnvInvalid(t *testing.T) {
	t.Setenv("HUEWHEEL_BASE_COLOR", "blue")
	_, err := Default().ApplyEnv()
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	require.Equal(t, "base_color", ve.Field)

	t.Setenv("HUEWHEEL_BASE_COLOR", "")
	t.Setenv("HUEWHEEL_SEED", "soon")
	_, err = Default().ApplyEnv()
	require.ErrorAs(t, err, &ve)
	require.Equal(t, "env", ve.Field)
}
