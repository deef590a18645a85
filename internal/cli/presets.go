package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/irfansharif/huewheel/internal/preview"
)

func newPresetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "presets",
		Short: "List the color presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			for _, p := range preview.Presets {
				var colors []string
				for _, hex := range p.PreviewColors {
					colors = append(colors, swatch(hex, "  "))
				}
				fmt.Fprintf(w, "%-14s %-14s seed %-5g base %s  %s\n",
					p.Name, p.Type, p.SeedOffset, preview.BaseColor(p.SeedOffset), strings.Join(colors, ""))
			}
			return nil
		},
	}
}
