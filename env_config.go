package sash

import (
	"fmt"
	"io"

	"github.com/pelletier/go-toml/v2"
)

// Theme files describe per-class defaults in TOML:
//
//	[panel]
//	border = 1.0
//
//	[panel.options]
//	fill = "#202020"
//
// Each top-level table is a class name; the nested options table becomes the
// class's option bag as a map[string]any.

type classEntry struct {
	Border  float64        `toml:"border"`
	Options map[string]any `toml:"options"`
}

// LoadClassDefaults parses a TOML theme into a defaults map suitable for
// WithClassDefaults.
func LoadClassDefaults(r io.Reader) (map[string]ClassDefaults, error) {
	raw := make(map[string]classEntry)
	dec := toml.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("theme: %w", err)
	}

	defaults := make(map[string]ClassDefaults, len(raw))
	for class, entry := range raw {
		d := ClassDefaults{Border: entry.Border}
		if len(entry.Options) > 0 {
			d.Options = entry.Options
		}
		defaults[class] = d
	}
	return defaults, nil
}
