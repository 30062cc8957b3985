package geometry

import (
	"math"
	"testing"
)

func approxEqual(a, b Vector3, tol float64) bool {
	return math.Abs(a.X-b.X) <= tol &&
		math.Abs(a.Y-b.Y) <= tol &&
		math.Abs(a.Z-b.Z) <= tol
}

func TestVector3EdgeVectors(t *testing.T) {
	tet := skewTetrahedron()

	tests := []struct {
		name string
		got  Vector3
		want Vector3
	}{
		{"ab", tet[1].Sub(tet[0]), NewVector3(3, -2, -2)},
		{"ac", tet[2].Sub(tet[0]), NewVector3(1, 3, -3)},
		{"ad", tet[3].Sub(tet[0]), NewVector3(-1, -1, 3)},
		{"a+ab", tet[0].Add(NewVector3(3, -2, -2)), tet[1]},
		{"half ab", NewVector3(3, -2, -2).Mul(0.5), NewVector3(1.5, -1, -1)},
		{"ab/2", NewVector3(3, -2, -2).Div(2), NewVector3(1.5, -1, -1)},
	}

	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s failed: expected %v, got %v", tt.name, tt.want, tt.got)
		}
	}
}

func TestVector3CrossOfFaceEdges(t *testing.T) {
	tet := skewTetrahedron()
	ac := tet[2].Sub(tet[0])
	ad := tet[3].Sub(tet[0])

	result := ac.Cross(ad)
	expected := NewVector3(6, 0, 2)
	if result != expected {
		t.Errorf("Cross failed: expected %v, got %v", expected, result)
	}

	// The cross product is orthogonal to both edges
	if result.Dot(ac) != 0 || result.Dot(ad) != 0 {
		t.Errorf("Cross %v not orthogonal to %v and %v", result, ac, ad)
	}
}

func TestVector3TripleProduct(t *testing.T) {
	tet := skewTetrahedron()
	ab := tet[1].Sub(tet[0])
	ac := tet[2].Sub(tet[0])
	ad := tet[3].Sub(tet[0])

	result := ab.Dot(ac.Cross(ad))
	expected := 14.0 // 3*6 + -2*0 + -2*2
	if math.Abs(result-expected) > 1e-10 {
		t.Errorf("Dot failed: expected %v, got %v", expected, result)
	}
}

func TestVector3EdgeLength(t *testing.T) {
	corner := UnitCorner()

	length := corner[1].Sub(corner[2]).Length()
	if math.Abs(length-math.Sqrt2) > 1e-10 {
		t.Errorf("Length failed: expected %v, got %v", math.Sqrt2, length)
	}

	distance := corner[0].Distance(corner[3])
	if math.Abs(distance-1) > 1e-10 {
		t.Errorf("Distance failed: expected 1, got %v", distance)
	}
}

func TestVector3MinMax(t *testing.T) {
	tet := skewTetrahedron()

	if got := tet[1].Min(tet[3]); got != NewVector3(0, 0, 1) {
		t.Errorf("Min failed: got %v", got)
	}
	if got := tet[1].Max(tet[3]); got != NewVector3(4, 1, 6) {
		t.Errorf("Max failed: got %v", got)
	}
}

func TestVector3IsFinite(t *testing.T) {
	tests := []struct {
		v    Vector3
		want bool
	}{
		{UnitCorner()[3], true},
		{NewVector3(math.NaN(), 0, 0), false},
		{NewVector3(0, math.Inf(1), 0), false},
		{NewVector3(0, 0, math.Inf(-1)), false},
		{NewVector3(1, 0, 0).Div(0), false},
	}

	for _, tt := range tests {
		if got := tt.v.IsFinite(); got != tt.want {
			t.Errorf("IsFinite(%v) = %v, want %v", tt.v, got, tt.want)
		}
	}
}
