// Package config holds the explorer's settings: built-in defaults, an
// optional YAML file and HUEWHEEL_* environment overrides, in that order of
// precedence (lowest first). Every source is validated before use.
package config

import (
	"github.com/irfansharif/huewheel/internal/palette"
	"github.com/irfansharif/huewheel/internal/wheel"
)

// Config is the full settings tree.
type Config struct {
	Window      Window  `yaml:"window"`
	Wheel       Wheel   `yaml:"wheel"`
	Slider      Slider  `yaml:"slider"`
	BaseColor   string  `yaml:"base_color" validate:"required,hexcolor6"`
	PaletteType string  `yaml:"palette_type" validate:"required,palettetype"`
	ColorSeed   float64 `yaml:"color_seed"`
	Seed        int64   `yaml:"seed"` // source for refreshed shape seeds; 0 uses the clock
	Log         Log     `yaml:"log"`
}

// Window is the explorer window.
type Window struct {
	Width  int    `yaml:"width" validate:"gte=320,lte=8192"`
	Height int    `yaml:"height" validate:"gte=240,lte=8192"`
	Title  string `yaml:"title" validate:"required"`
}

// Wheel is the color wheel widget.
type Wheel struct {
	Size       int     `yaml:"size" validate:"gte=20,lte=2048"`
	Margin     float64 `yaml:"margin" validate:"gte=0"`
	InnerRatio float64 `yaml:"inner_ratio" validate:"gt=0,lt=1"`
	Indicator  float64 `yaml:"indicator" validate:"gt=0"`
}

// Slider is the lightness slider widget.
type Slider struct {
	Width  int `yaml:"width" validate:"gte=1,lte=4096"`
	Height int `yaml:"height" validate:"gte=1,lte=512"`
}

// Log configures the logger.
type Log struct {
	Level         string `yaml:"level" validate:"oneof=trace debug info warn error"`
	HumanReadable bool   `yaml:"human"`
	DebugRuntime  bool   `yaml:"debug_runtime"` // per-second frame statistics
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Window:      Window{Width: 960, Height: 640, Title: "Huewheel"},
		Wheel:       Wheel{Size: 200, Margin: 10, InnerRatio: 0.6, Indicator: 6},
		Slider:      Slider{Width: 200, Height: 20},
		BaseColor:   "#0B5BFF",
		PaletteType: string(palette.Triadic),
		Log:         Log{Level: "info", HumanReadable: true},
	}
}

// Geometry derives the widget geometry.
func (c Config) Geometry() (wheel.Geometry, error) {
	g, err := wheel.NewGeometry(c.Wheel.Size, c.Wheel.Margin, c.Wheel.InnerRatio, c.Slider.Width, c.Slider.Height)
	if err != nil {
		return wheel.Geometry{}, err
	}
	g.IndicatorRadius = c.Wheel.Indicator
	return g, nil
}

// Type returns the configured palette type. It assumes c has been validated.
func (c Config) Type() palette.Type {
	t, err := palette.ParseType(c.PaletteType)
	if err != nil {
		return palette.Triadic
	}
	return t
}
