package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/irfansharif/huewheel/internal/palette"
)

type paletteFlags struct {
	paletteType string
	all         bool
	plain       bool
}

func newPaletteCmd(opts *Options) *cobra.Command {
	flags := &paletteFlags{}

	cmd := &cobra.Command{
		Use:   "palette [hex]",
		Short: "Generate a color harmony from a base color",
		Long: "Generate a color harmony from a base color. The base defaults to the " +
			"configured base color and the harmony to the configured palette type.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.Load()
			if err != nil {
				return err
			}
			base := cfg.BaseColor
			if len(args) == 1 {
				base = args[0]
			}

			types := []palette.Type{cfg.Type()}
			switch {
			case flags.all:
				types = palette.Types()
			case flags.paletteType != "":
				t, err := palette.ParseType(flags.paletteType)
				if err != nil {
					return err
				}
				types = []palette.Type{t}
			}

			for _, t := range types {
				p, err := palette.Generate(base, t)
				if err != nil {
					return err
				}
				writePalette(cmd.OutOrStdout(), t, p, flags.plain)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&flags.paletteType, "type", "t", "", "Harmony rule ("+typeList()+")")
	cmd.Flags().BoolVarP(&flags.all, "all", "a", false, "Print every harmony rule")
	cmd.Flags().BoolVar(&flags.plain, "plain", false, "Print bare hex values, one per line")
	return cmd
}

func writePalette(w io.Writer, t palette.Type, p palette.Palette, plain bool) {
	if plain {
		for _, hex := range p {
			fmt.Fprintln(w, hex)
		}
		return
	}
	fmt.Fprintln(w, headerStyle.Render(t.Label()))
	for _, sw := range p.Swatches() {
		fmt.Fprintf(w, "  %s  %s text\n", swatch(sw.Hex, sw.Hex), sw.Text)
	}
}

func typeList() string {
	var names []string
	for _, t := range palette.Types() {
		names = append(names, string(t))
	}
	return strings.Join(names, ", ")
}
