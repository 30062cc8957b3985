package tetfile

import (
	"path/filepath"
	"strings"

	"github.com/philipparndt/gotet/pkg/geometry"
)

// Format selects the on-disk representation of a tetrahedron
type Format int

const (
	// FormatText is the keyword based "tetrahedron ... endtetrahedron" layout
	FormatText Format = iota
	// FormatYAML is a YAML mapping with name, vertices and opposite
	FormatYAML
)

func (f Format) String() string {
	switch f {
	case FormatYAML:
		return "yaml"
	default:
		return "text"
	}
}

// FormatForPath picks the format from a file extension. Anything that is
// not .yaml or .yml is read as text.
func FormatForPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatText
	}
}

// Document is a named tetrahedron with an optional face selection
type Document struct {
	Name        string
	Tetrahedron geometry.Tetrahedron
	// Opposite is nil when the file does not select a face
	Opposite *int
}

// NewDocument creates a document without a face selection
func NewDocument(name string, t geometry.Tetrahedron) *Document {
	return &Document{
		Name:        name,
		Tetrahedron: t,
	}
}

// OppositeOr returns the selected face, or fallback when none is set
func (d *Document) OppositeOr(fallback int) int {
	if d.Opposite == nil {
		return fallback
	}
	return *d.Opposite
}

// SetOpposite selects the face opposite the given vertex
func (d *Document) SetOpposite(opposite int) {
	d.Opposite = &opposite
}
