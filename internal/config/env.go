package config

import (
	"strings"

	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix namespaces the environment overrides, e.g. HUEWHEEL_BASE_COLOR.
const EnvPrefix = "HUEWHEEL"

// overrides are the settings the environment may replace. Unset variables
// leave the corresponding setting alone. Names are derived from the field
// names so only prefixed variables are consulted.
type overrides struct {
	Seed         *int64   `split_words:"true"`
	LogLevel     string   `split_words:"true"`
	BaseColor    string   `split_words:"true"`
	PaletteType  string   `split_words:"true"`
	DebugRuntime *bool    `split_words:"true"`
	ColorSeed    *float64 `split_words:"true"`
}

// ApplyEnv overlays HUEWHEEL_* variables onto c and validates the result.
func (c Config) ApplyEnv() (Config, error) {
	var o overrides
	if err := envconfig.Process(EnvPrefix, &o); err != nil {
		return Config{}, &ValidationError{Field: "env", Message: err.Error(), Err: err}
	}

	if o.Seed != nil {
		c.Seed = *o.Seed
	}
	if o.LogLevel != "" {
		c.Log.Level = strings.ToLower(o.LogLevel)
	}
	if o.BaseColor != "" {
		c.BaseColor = o.BaseColor
	}
	if o.PaletteType != "" {
		c.PaletteType = o.PaletteType
	}
	if o.DebugRuntime != nil {
		c.Log.DebugRuntime = *o.DebugRuntime
	}
	if o.ColorSeed != nil {
		c.ColorSeed = *o.ColorSeed
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}
