package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "aedt",
		Short: "Inspect electronics desktop project files",
	}

	rootCmd.AddCommand(newDumpCmd())
	rootCmd.AddCommand(newGetCmd())
	rootCmd.AddCommand(newPreviewCmd())
	rootCmd.AddCommand(newLSPCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
