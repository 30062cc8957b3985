package geometry

import (
	"errors"
	"fmt"
	"math"
)

// DegenerateEpsilon is the default lower bound on the sine of the angle
// between two face edges. The bound is relative to the edge lengths, so
// it does not depend on the scale of the tetrahedron.
const DegenerateEpsilon = 1e-12

var (
	// ErrInvalidSelector is returned when the opposite vertex index is
	// outside [0,3].
	ErrInvalidSelector = errors.New("invalid face selector")
	// ErrDegenerateFace is returned when the selected face has no area.
	ErrDegenerateFace = errors.New("degenerate face")
)

// Tetrahedron is an ordered set of four vertices. Vertex order decides
// which face a selector refers to.
type Tetrahedron [4]Vector3

// NewTetrahedron creates a tetrahedron from four vertices
func NewTetrahedron(a, b, c, d Vector3) Tetrahedron {
	return Tetrahedron{a, b, c, d}
}

// UnitCorner returns the tetrahedron spanned by the origin and the three
// unit axis points.
func UnitCorner() Tetrahedron {
	return Tetrahedron{
		NewVector3(0, 0, 0),
		NewVector3(1, 0, 0),
		NewVector3(0, 1, 0),
		NewVector3(0, 0, 1),
	}
}

// FaceIndices returns, in ascending order, the indices of the three
// vertices forming the face opposite the given vertex.
func FaceIndices(opposite int) ([3]int, error) {
	if opposite < 0 || opposite > 3 {
		return [3]int{}, fmt.Errorf("%w: %d (must be 0..3)", ErrInvalidSelector, opposite)
	}

	var face [3]int
	n := 0
	for i := 0; i < 4; i++ {
		if i != opposite {
			face[n] = i
			n++
		}
	}
	return face, nil
}

// FaceNormal returns the outward unit normal of the face opposite the
// given vertex, rejecting nearly collinear faces at DegenerateEpsilon.
func (t Tetrahedron) FaceNormal(opposite int) (Vector3, error) {
	return t.FaceNormalTol(opposite, DegenerateEpsilon)
}

// FaceNormalTol is FaceNormal with a caller-chosen degeneracy bound.
// A face is rejected when |ab x ac| <= tolerance * |ab| * |ac|, so a
// tolerance of zero only rejects faces with an exactly zero normal.
//
// The cross product of the face edges is oriented against the vector
// towards the opposite vertex: a positive projection means it points
// into the solid, so the divisor takes the negative sign and the same
// division both flips and normalizes.
func (t Tetrahedron) FaceNormalTol(opposite int, tolerance float64) (Vector3, error) {
	face, err := FaceIndices(opposite)
	if err != nil {
		return Vector3{}, err
	}

	a, b, c := t[face[0]], t[face[1]], t[face[2]]
	d := t[opposite]

	ab := b.Sub(a)
	ac := c.Sub(a)
	ad := d.Sub(a)

	normal := ab.Cross(ac)
	norm := normal.Length()
	if !(norm > tolerance*ab.Length()*ac.Length()) {
		return Vector3{}, fmt.Errorf("%w: face opposite vertex %d has normal length %g",
			ErrDegenerateFace, opposite, norm)
	}

	inner := normal.Dot(ad)
	if inner > 0 {
		norm = -norm
	}

	return normal.Div(norm), nil
}

// Face returns the face opposite the given vertex with its outward normal
// filled in. Vertices appear in ascending index order.
func (t Tetrahedron) Face(opposite int, tolerance float64) (Triangle, error) {
	face, err := FaceIndices(opposite)
	if err != nil {
		return Triangle{}, err
	}

	normal, err := t.FaceNormalTol(opposite, tolerance)
	if err != nil {
		return Triangle{}, err
	}

	return NewTriangle(normal, t[face[0]], t[face[1]], t[face[2]]), nil
}

// SignedVolume returns the oriented volume of the tetrahedron.
//
// This is the cofactor expansion of the 4x4 determinant with rows
// (x, y, z, 1) along the x column, divided by 6.
func (t Tetrahedron) SignedVolume() float64 {
	x0, x1, x2, x3 := t[0], t[1], t[2], t[3]

	v := x0.X*(x1.Y*x2.Z+x3.Y*x1.Z+x2.Y*x3.Z-
		x2.Y*x1.Z-x1.Y*x3.Z-x3.Y*x2.Z) -
		x1.X*(x0.Y*x2.Z+x3.Y*x0.Z+x2.Y*x3.Z-
			x2.Y*x0.Z-x0.Y*x3.Z-x3.Y*x2.Z) +
		x2.X*(x0.Y*x1.Z+x3.Y*x0.Z+x1.Y*x3.Z-
			x1.Y*x0.Z-x0.Y*x3.Z-x3.Y*x1.Z) -
		x3.X*(x0.Y*x1.Z+x1.Y*x2.Z+x2.Y*x0.Z-
			x1.Y*x0.Z-x2.Y*x1.Z-x0.Y*x2.Z)

	return v / 6.0
}

// Volume returns the unsigned volume of the tetrahedron. Coplanar
// vertices give zero.
func (t Tetrahedron) Volume() float64 {
	return math.Abs(t.SignedVolume())
}

// Centroid returns the mean of the four vertices
func (t Tetrahedron) Centroid() Vector3 {
	return t[0].Add(t[1]).Add(t[2]).Add(t[3]).Mul(0.25)
}

// BoundingBox returns the axis-aligned box around the four vertices
func (t Tetrahedron) BoundingBox() BoundingBox {
	bbox := NewBoundingBox()
	for _, v := range t {
		bbox.Extend(v)
	}
	return bbox
}

// Edges lists the six vertex index pairs in lexical order
var Edges = [6][2]int{{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {2, 3}}

// EdgeLengths returns the lengths of the six edges in Edges order
func (t Tetrahedron) EdgeLengths() [6]float64 {
	var lengths [6]float64
	for i, e := range Edges {
		lengths[i] = t[e[0]].Distance(t[e[1]])
	}
	return lengths
}

// SurfaceArea returns the summed area of the four faces. It does not
// need outward normals and so never fails.
func (t Tetrahedron) SurfaceArea() float64 {
	total := 0.0
	for opposite := 0; opposite < 4; opposite++ {
		face, _ := FaceIndices(opposite)
		total += NewTriangle(Vector3{}, t[face[0]], t[face[1]], t[face[2]]).Area()
	}
	return total
}

// Volume returns the unsigned volume of the tetrahedron spanned by points
func Volume(points Tetrahedron) float64 {
	return points.Volume()
}

// FaceNormal returns the outward unit normal of the face of points that
// does not contain points[opposite].
func FaceNormal(points Tetrahedron, opposite int) (Vector3, error) {
	return points.FaceNormal(opposite)
}
