package tetfile

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Write encodes a document in the given format
func Write(w io.Writer, doc *Document, format Format) error {
	switch format {
	case FormatYAML:
		return writeYAML(w, doc)
	default:
		return writeText(w, doc)
	}
}

func writeText(w io.Writer, doc *Document) error {
	bw := bufio.NewWriter(w)

	if doc.Name != "" {
		fmt.Fprintf(bw, "tetrahedron %s\n", doc.Name)
	} else {
		fmt.Fprintln(bw, "tetrahedron")
	}
	for _, v := range doc.Tetrahedron {
		fmt.Fprintf(bw, "  vertex %s %s %s\n", formatFloat(v.X), formatFloat(v.Y), formatFloat(v.Z))
	}
	if doc.Opposite != nil {
		fmt.Fprintf(bw, "  opposite %d\n", *doc.Opposite)
	}
	fmt.Fprintln(bw, "endtetrahedron")

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to write tetrahedron: %w", err)
	}
	return nil
}

func writeYAML(w io.Writer, doc *Document) error {
	raw := yamlDocument{
		Name:     doc.Name,
		Vertices: make([][]float64, 0, len(doc.Tetrahedron)),
		Opposite: doc.Opposite,
	}
	for _, v := range doc.Tetrahedron {
		raw.Vertices = append(raw.Vertices, []float64{v.X, v.Y, v.Z})
	}

	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(raw); err != nil {
		return fmt.Errorf("failed to write tetrahedron: %w", err)
	}
	return encoder.Close()
}

// formatFloat uses the shortest representation that parses back exactly
func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
