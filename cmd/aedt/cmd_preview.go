package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/edatools/aedtkit/preview"
	"github.com/spf13/cobra"
)

func newPreviewCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "preview <file>",
		Short: "Extract the embedded thumbnail image from a project file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			img, err := preview.FromFile(args[0])
			if err != nil {
				return fmt.Errorf("extract preview: %w", err)
			}
			if output == "" {
				output = strings.TrimSuffix(args[0], ".aedt") + ".png"
			}
			if err := os.WriteFile(output, img, 0o644); err != nil {
				return fmt.Errorf("write image: %w", err)
			}
			fmt.Printf("Wrote %d bytes to %s\n", len(img), output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output image path (default: <file>.png)")

	return cmd
}
