package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/irfansharif/huewheel/internal/palette"
	"github.com/irfansharif/huewheel/internal/preview"
)

type sceneFlags struct {
	preset      string
	paletteType string
	colorSeed   float64
	shapeSeed   float64
}

func newSceneCmd(opts *Options) *cobra.Command {
	flags := &sceneFlags{}

	cmd := &cobra.Command{
		Use:   "scene",
		Short: "Print the decorative preview layout as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.Load()
			if err != nil {
				return err
			}

			t, colorSeed := cfg.Type(), cfg.ColorSeed
			if flags.preset != "" {
				p, ok := preview.FindPreset(flags.preset)
				if !ok {
					return fmt.Errorf("unknown preset %q", flags.preset)
				}
				t, colorSeed = p.Type, p.SeedOffset
			}
			if flags.paletteType != "" {
				if t, err = palette.ParseType(flags.paletteType); err != nil {
					return err
				}
			}
			if cmd.Flags().Changed("color-seed") {
				colorSeed = flags.colorSeed
			}

			scene, err := preview.Layout(colorSeed, flags.shapeSeed, t)
			if err != nil {
				return err
			}
			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			if err := enc.Encode(scene); err != nil {
				return err
			}
			return enc.Close()
		},
	}

	cmd.Flags().StringVarP(&flags.preset, "preset", "p", "", "Start from a named preset")
	cmd.Flags().StringVarP(&flags.paletteType, "type", "t", "", "Harmony rule, overriding the preset")
	cmd.Flags().Float64Var(&flags.colorSeed, "color-seed", 0, "Seed selecting the base color")
	cmd.Flags().Float64Var(&flags.shapeSeed, "shape-seed", 0, "Seed placing the shapes")
	return cmd
}
