package tetfile

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/philipparndt/gotet/pkg/geometry"
	"gopkg.in/yaml.v3"
)

var (
	// ErrVertexCount is returned when a file does not list exactly four vertices
	ErrVertexCount = errors.New("tetrahedron needs exactly 4 vertices")
	// ErrNonFinite is returned for NaN or infinite coordinates
	ErrNonFinite = errors.New("coordinates must be finite")
)

// Parse reads a tetrahedron file, choosing the format from its extension
func Parse(filename string) (*Document, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	return Read(file, FormatForPath(filename))
}

// Read decodes a tetrahedron document in the given format
func Read(reader io.Reader, format Format) (*Document, error) {
	switch format {
	case FormatYAML:
		return parseYAML(reader)
	default:
		return parseText(reader)
	}
}

// parseText parses the keyword layout:
//
//	tetrahedron <name>
//	  vertex x y z
//	  opposite n
//	endtetrahedron
//
// Blank lines and lines starting with '#' are ignored.
func parseText(reader io.Reader) (*Document, error) {
	scanner := bufio.NewScanner(reader)
	doc := &Document{}

	var vertices []geometry.Vector3
	started, ended, hasOpposite := false, false, false
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		fields := strings.Fields(line)

		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}
		if ended {
			return nil, fmt.Errorf("line %d: content after endtetrahedron", lineNo)
		}
		if !started && fields[0] != "tetrahedron" {
			return nil, fmt.Errorf("line %d: expected \"tetrahedron\", got %q", lineNo, fields[0])
		}

		switch fields[0] {
		case "tetrahedron":
			if started {
				return nil, fmt.Errorf("line %d: nested tetrahedron", lineNo)
			}
			started = true
			// Keep the name verbatim, inner whitespace included
			doc.Name = strings.TrimSpace(strings.TrimPrefix(line, fields[0]))

		case "vertex":
			if len(fields) != 4 {
				return nil, fmt.Errorf("line %d: vertex needs 3 coordinates, got %d", lineNo, len(fields)-1)
			}
			var coords [3]float64
			for i := range coords {
				value, err := strconv.ParseFloat(fields[i+1], 64)
				if err != nil {
					return nil, fmt.Errorf("line %d: invalid coordinate: %w", lineNo, err)
				}
				coords[i] = value
			}
			vertices = append(vertices, geometry.NewVector3(coords[0], coords[1], coords[2]))

		case "opposite":
			if hasOpposite {
				return nil, fmt.Errorf("line %d: opposite given more than once", lineNo)
			}
			if len(fields) != 2 {
				return nil, fmt.Errorf("line %d: opposite needs one index", lineNo)
			}
			hasOpposite = true
			opposite, err := strconv.Atoi(fields[1])
			if err != nil {
				return nil, fmt.Errorf("line %d: invalid opposite index: %w", lineNo, err)
			}
			doc.SetOpposite(opposite)

		case "endtetrahedron":
			ended = true

		default:
			return nil, fmt.Errorf("line %d: unknown keyword %q", lineNo, fields[0])
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading tetrahedron: %w", err)
	}
	if !ended {
		return nil, fmt.Errorf("missing endtetrahedron")
	}

	return finish(doc, vertices)
}

type yamlDocument struct {
	Name     string      `yaml:"name,omitempty"`
	Vertices [][]float64 `yaml:"vertices"`
	Opposite *int        `yaml:"opposite,omitempty"`
}

func parseYAML(reader io.Reader) (*Document, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("error reading tetrahedron: %w", err)
	}

	var raw yamlDocument
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&raw); err != nil {
		return nil, fmt.Errorf("parse tetrahedron yaml: %w", err)
	}

	vertices := make([]geometry.Vector3, 0, len(raw.Vertices))
	for i, v := range raw.Vertices {
		if len(v) != 3 {
			return nil, fmt.Errorf("vertex %d: needs 3 coordinates, got %d", i, len(v))
		}
		vertices = append(vertices, geometry.NewVector3(v[0], v[1], v[2]))
	}

	doc := &Document{Name: raw.Name, Opposite: raw.Opposite}
	return finish(doc, vertices)
}

func finish(doc *Document, vertices []geometry.Vector3) (*Document, error) {
	if len(vertices) != 4 {
		return nil, fmt.Errorf("%w, got %d", ErrVertexCount, len(vertices))
	}
	for i, v := range vertices {
		if !v.IsFinite() {
			return nil, fmt.Errorf("vertex %d: %w", i, ErrNonFinite)
		}
	}
	doc.Tetrahedron = geometry.NewTetrahedron(vertices[0], vertices[1], vertices[2], vertices[3])

	if doc.Opposite != nil {
		if _, err := geometry.FaceIndices(*doc.Opposite); err != nil {
			return nil, err
		}
	}

	return doc, nil
}
