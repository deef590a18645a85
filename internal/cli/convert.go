package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/irfansharif/huewheel/internal/colormodel"
)

func newConvertCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "convert <hex>",
		Short: "Show a color as hex, RGB and HSL with its contrast color",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rgb, err := colormodel.HexToRGB(args[0])
			if err != nil {
				return err
			}
			hsl := rgb.HSL()
			hex := colormodel.RGBToHex(rgb)

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "%s %s\n", labelStyle.Render("hex"), swatch(hex, hex))
			fmt.Fprintf(w, "%s %d, %d, %d\n", labelStyle.Render("rgb"), rgb.R, rgb.G, rgb.B)
			fmt.Fprintf(w, "%s %.2f, %.2f%%, %.2f%%\n", labelStyle.Render("hsl"), hsl.H, hsl.S, hsl.L)
			fmt.Fprintf(w, "%s %.1f\n", labelStyle.Render("luma"), rgb.Luma())
			fmt.Fprintf(w, "%s %s\n", labelStyle.Render("contrast"), colormodel.ContrastFor(rgb))
			return nil
		},
	}
}
