// Package preview extracts the thumbnail image embedded in a project
// file's preview block. The parser hands the payload over as an opaque
// base64 string; decoding it into image bytes happens here.
package preview

import (
	"encoding/base64"
	"fmt"

	"github.com/edatools/aedtkit/aedt"
)

// Keyword is the top-level block that carries the project thumbnail.
const Keyword = "ProjectPreview"

// imageKeys are the field names the thumbnail has appeared under across
// product versions, in the order they should be tried.
var imageKeys = []string{"Image64", "Thumbnail64"}

// FromFile loads only the preview block of the project file at path and
// returns the decoded thumbnail bytes.
func FromFile(path string) ([]byte, error) {
	root, err := aedt.LoadKeyword(path, Keyword)
	if err != nil {
		return nil, err
	}
	return FromDict(root)
}

// FromDict extracts the thumbnail from an already parsed mapping. The
// mapping may be a whole document or the result of a single-keyword load;
// either way it must contain the preview block.
func FromDict(root *aedt.Dict) ([]byte, error) {
	block := root.Dict(Keyword)
	if block == nil {
		return nil, fmt.Errorf("no %s block in project", Keyword)
	}
	for _, key := range imageKeys {
		encoded := block.String(key)
		if encoded == "" {
			continue
		}
		img, err := base64.StdEncoding.DecodeString(encoded)
		if err != nil {
			return nil, fmt.Errorf("decode %s: %w", key, err)
		}
		return img, nil
	}
	return nil, fmt.Errorf("%s block has no image field", Keyword)
}
