package main

import (
	"archive/zip"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/edatools/aedtkit/aedt"
	"github.com/spf13/cobra"
)

func newDumpCmd() *cobra.Command {
	var compact bool

	cmd := &cobra.Command{
		Use:   "dump <file>",
		Short: "Parse a project file and print it as JSON",
		Long: `Parse a project, material library or related file and print the
decoded structure as JSON. Keys keep their file order.

Archived projects (.aedtz) are zip files; the project text inside is
located and parsed in place.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := loadAny(args[0])
			if err != nil {
				return err
			}
			return printJSON(root, compact)
		},
	}

	cmd.Flags().BoolVarP(&compact, "compact", "c", false, "print without indentation")

	return cmd
}

// loadAny parses either a plain project file or an .aedtz archive.
func loadAny(filename string) (*aedt.Dict, error) {
	if filepath.Ext(filename) == ".aedtz" {
		data, err := projectFromArchive(filename)
		if err != nil {
			return nil, err
		}
		return aedt.Parse(data), nil
	}
	root, err := aedt.LoadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("parse project file: %w", err)
	}
	return root, nil
}

// projectFromArchive returns the bytes of the project text inside an
// .aedtz archive: the first .aedt entry, or failing that the first entry
// at all.
func projectFromArchive(filename string) ([]byte, error) {
	r, err := zip.OpenReader(filename)
	if err != nil {
		return nil, fmt.Errorf("open archive: %w", err)
	}
	defer r.Close()

	var fallback *zip.File
	for _, f := range r.File {
		if f.FileInfo().IsDir() {
			continue
		}
		if strings.EqualFold(filepath.Ext(f.Name), ".aedt") {
			return readArchiveEntry(f)
		}
		if fallback == nil {
			fallback = f
		}
	}
	if fallback == nil {
		return nil, fmt.Errorf("archive %s has no entries", filename)
	}
	return readArchiveEntry(fallback)
}

func readArchiveEntry(f *zip.File) ([]byte, error) {
	rc, err := f.Open()
	if err != nil {
		return nil, fmt.Errorf("open archive entry %s: %w", f.Name, err)
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("read archive entry %s: %w", f.Name, err)
	}
	return data, nil
}

func printJSON(root *aedt.Dict, compact bool) error {
	var (
		out []byte
		err error
	)
	if compact {
		out, err = json.Marshal(root)
	} else {
		out, err = json.MarshalIndent(root, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	fmt.Fprintln(os.Stdout, string(out))
	return nil
}
