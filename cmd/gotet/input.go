package main

import (
	"fmt"

	"github.com/philipparndt/gotet/pkg/geometry"
	"github.com/philipparndt/gotet/pkg/tetfile"
)

const sampleName = "unit corner"

// loadDocument reads the tetrahedron named by args, or returns the
// built-in sample when no file is given.
func loadDocument(args []string) (*tetfile.Document, error) {
	if len(args) == 0 {
		return tetfile.NewDocument(sampleName, geometry.UnitCorner()), nil
	}

	doc, err := tetfile.Parse(args[0])
	if err != nil {
		return nil, fmt.Errorf("error parsing tetrahedron file: %w", err)
	}
	return doc, nil
}
