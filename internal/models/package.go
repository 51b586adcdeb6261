package models

import (
	"encoding/json"
	"fmt"
)

// Package represents one binary package entry from a branch manifest.
// Core fields are lifted into struct members; every other manifest field
// is kept byte for byte in Extra so it survives into the report.
// A Package is never mutated after it is decoded.
type Package struct {
	Name    string
	Epoch   int
	Version string
	Release string
	Arch    string

	// Extra holds the passthrough manifest fields (buildtime, source,
	// disttag, ...) exactly as they appeared in the input.
	Extra map[string]json.RawMessage
}

// UnmarshalJSON implements json.Unmarshaler
func (p *Package) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}

	for key, raw := range fields {
		var err error
		switch key {
		case "name":
			err = json.Unmarshal(raw, &p.Name)
		case "epoch":
			err = json.Unmarshal(raw, &p.Epoch)
		case "version":
			err = json.Unmarshal(raw, &p.Version)
		case "release":
			err = json.Unmarshal(raw, &p.Release)
		case "arch":
			err = json.Unmarshal(raw, &p.Arch)
		default:
			if p.Extra == nil {
				p.Extra = make(map[string]json.RawMessage)
			}
			p.Extra[key] = raw
			continue
		}
		if err != nil {
			return fmt.Errorf("package field %q: %w", key, err)
		}
	}

	return nil
}

// MarshalJSON implements json.Marshaler. Known and passthrough fields are
// flattened back into a single object; encoding/json sorts the keys, so
// the output is deterministic.
func (p Package) MarshalJSON() ([]byte, error) {
	fields := make(map[string]json.RawMessage, len(p.Extra)+5)
	for key, raw := range p.Extra {
		fields[key] = raw
	}

	known := map[string]interface{}{
		"name":    p.Name,
		"epoch":   p.Epoch,
		"version": p.Version,
		"release": p.Release,
		"arch":    p.Arch,
	}
	for key, value := range known {
		raw, err := json.Marshal(value)
		if err != nil {
			return nil, err
		}
		fields[key] = raw
	}

	return json.Marshal(fields)
}
