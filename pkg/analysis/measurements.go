package analysis

import (
	"fmt"
	"math"
	"sort"

	"github.com/philipparndt/gotet/pkg/geometry"
)

// EdgeInfo contains information about an edge of the tetrahedron
type EdgeInfo struct {
	Start  geometry.Vector3
	End    geometry.Vector3
	Length float64
	From   int
	To     int
}

// FaceInfo describes the face opposite one vertex
type FaceInfo struct {
	Opposite  int
	Vertices  [3]int
	Area      float64
	Perimeter float64
	Centroid  geometry.Vector3
	Normal    geometry.Vector3
}

// Report contains the measurements of a tetrahedron
type Report struct {
	Tetrahedron   geometry.Tetrahedron
	BoundingBox   geometry.BoundingBox
	Dimensions    geometry.Vector3
	Centroid      geometry.Vector3
	Volume        float64
	SignedVolume  float64
	SurfaceArea   float64
	Faces         [4]FaceInfo
	Edges         []EdgeInfo
	MinEdgeLength float64
	MaxEdgeLength float64
	AvgEdgeLength float64
}

// AnalyzeTetrahedron measures a tetrahedron. It fails only when a face
// normal cannot be resolved at the given tolerance.
func AnalyzeTetrahedron(t geometry.Tetrahedron, tolerance float64) (*Report, error) {
	report := &Report{
		Tetrahedron:  t,
		BoundingBox:  t.BoundingBox(),
		Centroid:     t.Centroid(),
		Volume:       t.Volume(),
		SignedVolume: t.SignedVolume(),
		SurfaceArea:  t.SurfaceArea(),
		Edges:        make([]EdgeInfo, 0, len(geometry.Edges)),
	}
	report.Dimensions = report.BoundingBox.Size()

	for opposite := range report.Faces {
		indices, err := geometry.FaceIndices(opposite)
		if err != nil {
			return nil, err
		}

		tri, err := t.Face(opposite, tolerance)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve face normal: %w", err)
		}

		report.Faces[opposite] = FaceInfo{
			Opposite:  opposite,
			Vertices:  indices,
			Area:      tri.Area(),
			Perimeter: tri.Perimeter(),
			Centroid:  tri.Center(),
			Normal:    tri.Normal,
		}
	}

	minLength := math.MaxFloat64
	maxLength := 0.0
	totalLength := 0.0

	for i, length := range t.EdgeLengths() {
		from, to := geometry.Edges[i][0], geometry.Edges[i][1]
		report.Edges = append(report.Edges, EdgeInfo{
			Start:  t[from],
			End:    t[to],
			Length: length,
			From:   from,
			To:     to,
		})

		totalLength += length
		if length < minLength {
			minLength = length
		}
		if length > maxLength {
			maxLength = length
		}
	}

	report.MinEdgeLength = minLength
	report.MaxEdgeLength = maxLength
	report.AvgEdgeLength = totalLength / float64(len(report.Edges))

	return report, nil
}

// LongestEdges returns the N longest edges
func LongestEdges(report *Report, count int) []EdgeInfo {
	return sortedEdges(report, count, func(a, b EdgeInfo) bool {
		return a.Length > b.Length
	})
}

// ShortestEdges returns the N shortest edges
func ShortestEdges(report *Report, count int) []EdgeInfo {
	return sortedEdges(report, count, func(a, b EdgeInfo) bool {
		return a.Length < b.Length
	})
}

func sortedEdges(report *Report, count int, less func(a, b EdgeInfo) bool) []EdgeInfo {
	edges := make([]EdgeInfo, len(report.Edges))
	copy(edges, report.Edges)

	sort.SliceStable(edges, func(i, j int) bool {
		return less(edges[i], edges[j])
	})

	if count > len(edges) {
		count = len(edges)
	}

	return edges[:count]
}

// FormatMeasurement formats a measurement with appropriate units
func FormatMeasurement(value float64, precision int, unit string) string {
	if unit == "" {
		unit = "units"
	}
	return fmt.Sprintf("%.*f %s", precision, value, unit)
}

// FormatVector formats a 3D vector
func FormatVector(v geometry.Vector3, precision int) string {
	v = positiveZero(v)
	return fmt.Sprintf("(%.*f, %.*f, %.*f)", precision, v.X, precision, v.Y, precision, v.Z)
}

// FormatNormal formats a vector as three space separated columns
func FormatNormal(v geometry.Vector3, precision int) string {
	v = positiveZero(v)
	return fmt.Sprintf("%.*f   %.*f   %.*f", precision, v.X, precision, v.Y, precision, v.Z)
}

// positiveZero turns -0 components, which flipped normals produce,
// into 0 so they do not print as "-0.000000".
func positiveZero(v geometry.Vector3) geometry.Vector3 {
	return v.Add(geometry.Vector3{})
}
