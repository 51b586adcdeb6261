package models

import (
	"encoding/json"
	"io"
)

// Manifest is the shape of one branch export from the package database:
// {"length": N, "packages": [...]}. Unknown top-level fields are ignored.
type Manifest struct {
	Length   int       `json:"length"`
	Packages []Package `json:"packages"`
}

// DecodeManifest reads a branch manifest from r
func DecodeManifest(r io.Reader) (*Manifest, error) {
	var manifest Manifest
	if err := json.NewDecoder(r).Decode(&manifest); err != nil {
		return nil, err
	}
	return &manifest, nil
}
