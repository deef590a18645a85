package cli

import (
	"fmt"
	"image"
	"image/png"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/image/draw"

	"github.com/irfansharif/huewheel/internal/colormodel"
)

type wheelFlags struct {
	hex    string
	out    string
	slider string
	scale  int
}

func newWheelCmd(opts *Options) *cobra.Command {
	flags := &wheelFlags{}

	cmd := &cobra.Command{
		Use:   "wheel",
		Short: "Render the color wheel and lightness slider as PNG",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.Load()
			if err != nil {
				return err
			}
			log, err := Logger(cfg, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			if flags.scale < 1 {
				return fmt.Errorf("--scale must be at least 1, got %d", flags.scale)
			}

			hex := cfg.BaseColor
			if flags.hex != "" {
				hex = flags.hex
			}
			hsl, err := colormodel.HexToHSL(hex)
			if err != nil {
				return err
			}
			g, err := cfg.Geometry()
			if err != nil {
				return err
			}

			if err := writePNG(flags.out, g.RenderWheel(hsl), flags.scale); err != nil {
				return err
			}
			log.With("path", flags.out).Infof("wrote wheel for %s", hsl.Hex())
			if flags.slider != "" {
				if err := writePNG(flags.slider, g.RenderSlider(hsl), flags.scale); err != nil {
					return err
				}
				log.With("path", flags.slider).Infof("wrote slider for %s", hsl.Hex())
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&flags.hex, "hex", "", "Color to render (defaults to the configured base color)")
	cmd.Flags().StringVarP(&flags.out, "out", "o", "wheel.png", "Wheel output path")
	cmd.Flags().StringVar(&flags.slider, "slider", "", "Slider output path (skipped when empty)")
	cmd.Flags().IntVar(&flags.scale, "scale", 1, "Integer upscale factor")
	return cmd
}

// writePNG encodes img to path, upscaled by scale with Catmull-Rom
// resampling.
func writePNG(path string, img *image.RGBA, scale int) (err error) {
	var out image.Image = img
	if scale > 1 {
		b := img.Bounds()
		dst := image.NewRGBA(image.Rect(0, 0, b.Dx()*scale, b.Dy()*scale))
		draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
		out = dst
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	if err := png.Encode(f, out); err != nil {
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	return nil
}
