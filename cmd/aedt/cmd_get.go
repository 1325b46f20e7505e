package main

import (
	"fmt"

	"github.com/edatools/aedtkit/aedt"
	"github.com/spf13/cobra"
)

func newGetCmd() *cobra.Command {
	var compact bool

	cmd := &cobra.Command{
		Use:   "get <file> <keyword>",
		Short: "Parse only the named top-level block of a project file",
		Long: `Parse only the named top-level block, skipping every other
top-level sibling. Useful for pulling one section, such as ProjectPreview
or AnsoftProject, out of a large file.

A file without the requested block prints an empty object.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := aedt.LoadKeyword(args[0], args[1])
			if err != nil {
				return fmt.Errorf("parse project file: %w", err)
			}
			return printJSON(root, compact)
		},
	}

	cmd.Flags().BoolVarP(&compact, "compact", "c", false, "print without indentation")

	return cmd
}
