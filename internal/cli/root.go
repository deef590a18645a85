// Package cli holds the huewheel command tree. The windowed explore command
// lives with the binary; everything here runs headless.
package cli

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/irfansharif/huewheel/internal/config"
	"github.com/irfansharif/huewheel/internal/logger"
)

// Options are the persistent flags shared by every subcommand.
type Options struct {
	ConfigPath string
	LogLevel   string
	Verbose    bool
}

// NewRootCmd builds the command tree. extra commands (the explore window) are
// attached by the caller.
func NewRootCmd(opts *Options, extra ...*cobra.Command) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "huewheel",
		Short:         "Explore color harmonies from a base color",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVarP(&opts.ConfigPath, "config", "c", "", "YAML configuration file")
	cmd.PersistentFlags().StringVar(&opts.LogLevel, "log-level", "", "Log level (trace, debug, info, warn, error)")
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "Enable debug logging")

	cmd.AddCommand(newPaletteCmd(opts))
	cmd.AddCommand(newConvertCmd())
	cmd.AddCommand(newWheelCmd(opts))
	cmd.AddCommand(newPresetsCmd())
	cmd.AddCommand(newSceneCmd(opts))
	cmd.AddCommand(newVersionCmd())
	for _, c := range extra {
		cmd.AddCommand(c)
	}
	return cmd
}

// Load resolves the configuration: defaults, then the --config file, then
// HUEWHEEL_* variables, then the logging flags.
func (o *Options) Load() (config.Config, error) {
	cfg := config.Default()
	if o.ConfigPath != "" {
		loaded, err := config.Load(o.ConfigPath)
		if err != nil {
			return config.Config{}, err
		}
		cfg = loaded
	}
	cfg, err := cfg.ApplyEnv()
	if err != nil {
		return config.Config{}, err
	}
	if o.LogLevel != "" {
		cfg.Log.Level = o.LogLevel
	}
	if o.Verbose {
		cfg.Log.Level = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// Logger builds the logger cfg describes, writing to w.
func Logger(cfg config.Config, w io.Writer) (*logger.Logger, error) {
	return logger.New(logger.Options{
		Level:         cfg.Log.Level,
		HumanReadable: cfg.Log.HumanReadable,
		Writer:        w,
	})
}
