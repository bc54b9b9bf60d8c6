// Package cmd provides command-line interface functionality for AGBTools.
// AGBTools is a collection of utilities for converting images to and from
// the packed tile and palette formats of the AGB and NTR handheld consoles.
package cmd

import (
	"os"

	"github.com/hansbonini/agbtools/pkg/common"
	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands.
// It provides the main entry point for the AGBTools application.
var rootCmd = &cobra.Command{
	Use:   "agbtools",
	Short: "Tools for converting AGB/NTR graphics data",
	Long: `AGBTools - A collection of utilities for converting images to and from
the packed tile and palette formats of the AGB and NTR handheld consoles.

Currently supports:
  - 4bpp and 8bpp indexed tile patterns (tiled and chunky addressing)
  - 15-bit direct color bitmaps (AGB and NTR alpha conventions)
  - Packed palette data and YAML palette manifests
  - Rendering index data as editable grayscale images

Examples:
  agbtools gfx encode sprite.png sprite.4bpp --format 4bpp --palette sprite.pal
  agbtools gfx encode backdrop.png backdrop.bin --format 16bpp
  agbtools gfx decode sprite.4bpp sprite.png --format 4bpp
  agbtools palette pack palette.yaml palette.pal
  agbtools palette dump palette.pal palette.yaml

Use 'agbtools [command] --help' for more information about a command.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		verbose, _ := cmd.Flags().GetBool("verbose")
		common.SetVerboseMode(verbose)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main() and serves as the entry point for command execution.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		common.LogError("%v", err)
		os.Exit(1)
	}
}

// init initializes the root command with flags and configuration settings.
func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose debug output")
}
