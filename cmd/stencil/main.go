// Package main implements the stencil CLI.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "stencil",
	Short: "Build-time source generation driver",
	Long: `Stencil discovers input files by extension, regenerates stale
outputs through a named processor, and locks results read-only.`,
	// Failures are rendered by the core reporter; cobra must not print them
	// a second time.
	SilenceErrors: true,
	SilenceUsage:  true,
}

func main() {
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(processorsCmd)

	rootCmd.PersistentFlags().String("config", "", "path to a .stencil.yaml project file")
	rootCmd.PersistentFlags().String("color", "auto", "colorize diagnostics (auto|on|off)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "print per-file decisions")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
