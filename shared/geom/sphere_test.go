package geom

import (
	"math"
	"testing"
)

func TestSphereIntersectionMiss(t *testing.T) {
	s := Sphere{Center: Vector{0, 10, 0}, Radius: 1}
	r := Ray{Origin: Vector{0, 0, 0}, Dir: Vector{0, 0, 1}}

	if _, _, hit := s.Intersection(r); hit {
		t.Error("expected a ray pointing away from the sphere to miss")
	}
}

func TestSphereIntersectionTangent(t *testing.T) {
	// The ray passes exactly 2 units from the center of a radius-2
	// sphere, so the discriminant is exactly zero.
	s := Sphere{Center: Vector{2, 0, 5}, Radius: 2}
	r := Ray{Origin: Vector{0, 0, 0}, Dir: Vector{0, 0, 1}}

	t1, t2, hit := s.Intersection(r)
	if !hit {
		t.Fatal("expected a tangent ray to report an intersection")
	}
	if t1 != t2 {
		t.Errorf("expected equal tangent roots, got t1=%v t2=%v", t1, t2)
	}
	if math.Abs(t1-5.0) > 1e-12 {
		t.Errorf("expected tangent root 5, got %v", t1)
	}
}

func TestSphereIntersectionRoots(t *testing.T) {
	// Both roots must lie on the sphere's surface.
	s := Sphere{Center: Vector{0, -1, 3}, Radius: 1}
	r := Ray{Origin: Vector{0, 0, 0}, Dir: Vector{0, -1.0 / 800.0, 1}}

	t1, t2, hit := s.Intersection(r)
	if !hit {
		t.Fatal("expected the ray to hit the sphere")
	}
	for _, root := range []float64{t1, t2} {
		if d := r.At(root).Sub(s.Center).Len(); math.Abs(d-s.Radius) > 1e-9 {
			t.Errorf("root %v lands %v from the center, expected %v", root, d, s.Radius)
		}
	}
	if t1 == t2 {
		t.Errorf("expected two distinct roots, got %v twice", t1)
	}
}

func TestSphereIntersectionBehindRay(t *testing.T) {
	// Roots are reported regardless of sign; filtering is the caller's job.
	s := Sphere{Center: Vector{0, 0, -5}, Radius: 1}
	r := Ray{Origin: Vector{0, 0, 0}, Dir: Vector{0, 0, 1}}

	t1, t2, hit := s.Intersection(r)
	if !hit {
		t.Fatal("expected roots for a sphere behind the ray")
	}
	if t1 >= 0 || t2 >= 0 {
		t.Errorf("expected both roots negative, got t1=%v t2=%v", t1, t2)
	}
}

func TestSphereNormal(t *testing.T) {
	s := Sphere{Center: Vector{1, 2, 3}, Radius: 4}
	if got, want := s.Normal(Vector{5, 2, 3}), (Vector{4, 0, 0}); got != want {
		t.Errorf("expected normal %v, got %v", want, got)
	}
}
