// Package metadata loads the starter's deepgram.toml description file
// served by the metadata endpoint.
package metadata

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// DefaultPath is where the metadata file lives relative to the working
// directory.
const DefaultPath = "deepgram.toml"

// Load reads the [meta] table from the TOML file at path
func Load(path string) (map[string]any, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read metadata file: %w", err)
	}

	var doc struct {
		Meta map[string]any `toml:"meta"`
	}
	if err := toml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse metadata file: %w", err)
	}

	if doc.Meta == nil {
		doc.Meta = map[string]any{}
	}

	return doc.Meta, nil
}
