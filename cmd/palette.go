/*
Copyright © 2025 Hans Bonini
*/
package cmd

import (
	"fmt"

	"github.com/hansbonini/agbtools/pkg"
	"github.com/spf13/cobra"
)

// paletteCmd represents the palette command group
var paletteCmd = &cobra.Command{
	Use:   "palette",
	Short: "Convert between palette manifests and packed palette data",
}

// palettePackCmd converts a YAML manifest into packed color words
var palettePackCmd = &cobra.Command{
	Use:   "pack [manifest.yaml] [output_file]",
	Short: "Pack a YAML palette manifest as binary color words",
	Long: `Pack a YAML palette manifest as 16-bit little-endian color words.

The manifest lists colors as "#RRGGBB" or "#RRGGBBAA" strings in palette
index order. When use_alpha is true the packed words carry the NTR
transparency bit taken from the alpha channel.

Example:
  agbtools palette pack palette.yaml palette.pal`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		processor := pkg.NewGfxProcessor()
		if err := processor.PackPalette(args[0], args[1]); err != nil {
			return fmt.Errorf("failed to pack palette: %w", err)
		}

		fmt.Printf("Palette written to: %s\n", args[1])
		return nil
	},
}

// paletteDumpCmd converts packed color words back into a YAML manifest
var paletteDumpCmd = &cobra.Command{
	Use:   "dump [input_file] [manifest.yaml]",
	Short: "Dump binary palette data as a YAML manifest",
	Long: `Dump packed 16-bit color words as an editable YAML manifest.

Example:
  agbtools palette dump palette.pal palette.yaml --alpha`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		useAlpha, _ := cmd.Flags().GetBool("alpha")

		processor := pkg.NewGfxProcessor()
		if err := processor.DumpPalette(args[0], args[1], useAlpha); err != nil {
			return fmt.Errorf("failed to dump palette: %w", err)
		}

		fmt.Printf("Manifest written to: %s\n", args[1])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(paletteCmd)
	paletteCmd.AddCommand(palettePackCmd)
	paletteCmd.AddCommand(paletteDumpCmd)

	paletteDumpCmd.Flags().Bool("alpha", false, "Interpret bit 15 as the NTR transparency flag")
}
