/*
Copyright © 2025 Hans Bonini
*/
package cmd

import (
	"fmt"

	"github.com/hansbonini/agbtools/pkg"
	"github.com/hansbonini/agbtools/pkg/common"
	"github.com/spf13/cobra"
)

// gfxCmd represents the gfx command group
var gfxCmd = &cobra.Command{
	Use:   "gfx",
	Short: "Convert images to and from packed pattern data",
}

// gfxEncodeCmd converts an editable image into packed pattern data
var gfxEncodeCmd = &cobra.Command{
	Use:   "encode [input_image] [output_file]",
	Short: "Encode an image as packed AGB/NTR pattern data",
	Long: `Encode a PNG or BMP image as packed pattern data.

Indexed formats (4bpp, 8bpp, 8bpp-chunky) resolve a palette for the image:
a stock CLUT if --clut is given, the image's own palette if it is a
paletted PNG, or a median cut quantization otherwise. Every pixel is then
matched to its nearest palette entry. Direct color formats (16bpp, ntr16)
pack each pixel as a 15-bit color word in raster order.

For tiled formats the image width and height must be multiples of 8.

Example:
  agbtools gfx encode sprite.png sprite.4bpp --format 4bpp --palette sprite.pal`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		format, _ := cmd.Flags().GetString("format")
		paletteFile, _ := cmd.Flags().GetString("palette")
		clut, _ := cmd.Flags().GetString("clut")
		maxColors, _ := cmd.Flags().GetInt("colors")

		processor := pkg.NewGfxProcessor()

		fmt.Printf("Encoding image: %s\n", args[0])
		if err := processor.Encode(pkg.EncodeOptions{
			Format:      format,
			InputFile:   args[0],
			OutputFile:  args[1],
			PaletteFile: paletteFile,
			Clut:        clut,
			MaxColors:   maxColors,
		}); err != nil {
			return fmt.Errorf("failed to encode graphics: %w", err)
		}

		fmt.Printf("Pattern data written to: %s\n", args[1])
		return nil
	},
}

// gfxDecodeCmd renders packed index data as an editable grayscale image
var gfxDecodeCmd = &cobra.Command{
	Use:   "decode [input_file] [output_png]",
	Short: "Render packed index data as a grayscale PNG",
	Long: `Render packed index data as a grayscale PNG for editing.

Each palette index becomes a gray level, with tiles laid out left-to-right,
top-to-bottom. Without an explicit --size the smallest roughly square tile
grid that fits the data is used; a larger canvas leaves the uncovered
region fully transparent.

Example:
  agbtools gfx decode sprite.4bpp sprite.png --format 4bpp --size 64x64`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		format, _ := cmd.Flags().GetString("format")
		tile, _ := cmd.Flags().GetString("tile")
		size, _ := cmd.Flags().GetString("size")

		tw, th, err := parseDimensions(tile)
		if err != nil {
			return fmt.Errorf("invalid --tile value: %w", err)
		}

		opts := pkg.DecodeOptions{
			Format:     format,
			InputFile:  args[0],
			OutputFile: args[1],
			TileWidth:  tw,
			TileHeight: th,
		}
		if size != "" {
			if opts.Width, opts.Height, err = parseDimensions(size); err != nil {
				return fmt.Errorf("invalid --size value: %w", err)
			}
		}

		processor := pkg.NewGfxProcessor()
		if err := processor.Decode(opts); err != nil {
			return fmt.Errorf("failed to decode graphics: %w", err)
		}

		fmt.Printf("Rendered image written to: %s\n", args[1])
		return nil
	},
}

// parseDimensions parses a WxH string such as "8x8" or "64x32"
func parseDimensions(s string) (int, int, error) {
	var w, h int
	if _, err := fmt.Sscanf(s, "%dx%d", &w, &h); err != nil {
		return 0, 0, fmt.Errorf("%q is not of the form WxH", s)
	}
	if w <= 0 || h <= 0 {
		return 0, 0, fmt.Errorf("%q must have positive dimensions", s)
	}
	if _, err := common.SafeIntToUint16(w); err != nil {
		return 0, 0, err
	}
	if _, err := common.SafeIntToUint16(h); err != nil {
		return 0, 0, err
	}
	return w, h, nil
}

func init() {
	rootCmd.AddCommand(gfxCmd)
	gfxCmd.AddCommand(gfxEncodeCmd)
	gfxCmd.AddCommand(gfxDecodeCmd)

	gfxEncodeCmd.Flags().String("format", pkg.Format4bpp, "Output format: 4bpp, 8bpp, 8bpp-chunky, 16bpp, ntr16")
	gfxEncodeCmd.Flags().String("palette", "", "Also write the resolved palette to this file")
	gfxEncodeCmd.Flags().String("clut", "", "Use a stock palette instead of the image's colors (sprite, ui)")
	gfxEncodeCmd.Flags().Int("colors", 0, "Cap the quantized palette below the format limit")

	gfxDecodeCmd.Flags().String("format", pkg.Format4bpp, "Input format: 4bpp, 8bpp")
	gfxDecodeCmd.Flags().String("tile", "8x8", "Tile size as WxH")
	gfxDecodeCmd.Flags().String("size", "", "Explicit canvas size as WxH")
}
