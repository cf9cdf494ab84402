// SPDX-License-Identifier: MPL-2.0

package launchfile

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/gantrylabs/gantry/pkg/cueutil"
)

//go:embed launchfile_schema.cue
var launchfileSchema string

// Parse reads and parses a launchfile from the given path.
func Parse(path string) (*Launchfile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read launchfile at %s: %w", path, err)
	}
	return ParseBytes(data, path)
}

// ParseBytes parses launchfile content from bytes: the document is unified
// with the embedded schema, validated, and decoded. Structural validation
// (reserved keys, duplicate flags, tier lists) runs after decoding and
// collects all errors.
func ParseBytes(data []byte, path string) (*Launchfile, error) {
	decoded, err := cueutil.DecodeFile[Launchfile](
		launchfileSchema,
		data,
		"#Launchfile",
		cueutil.WithFilename(path),
	)
	if err != nil {
		return nil, err
	}

	lf := decoded.Value
	lf.FilePath = path

	if err := lf.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return lf, nil
}
