// Package main is the entry point for the floater CLI.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "floater",
		Short:        "Floater: floating menu positioning for terminal UIs",
		Version:      version,
		SilenceUsage: true,
	}
	root.PersistentFlags().String("config", "", "path to floater.toml (default: search upward from cwd)")

	root.AddCommand(
		demoCmd(),
		placeCmd(),
		previewCmd(),
		initCmd(),
		traceCmd(),
	)

	return root
}
