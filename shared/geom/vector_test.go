package geom

import (
	"math"
	"testing"
)

func TestVectorOps(t *testing.T) {
	a := Vector{1, 2, 3}
	b := Vector{-4, 5, 0.5}

	if got, want := a.Add(b), (Vector{-3, 7, 3.5}); got != want {
		t.Errorf("Add: expected %v, got %v", want, got)
	}
	if got, want := a.Sub(b), (Vector{5, -3, 2.5}); got != want {
		t.Errorf("Sub: expected %v, got %v", want, got)
	}
	if got, want := a.Scale(-2), (Vector{-2, -4, -6}); got != want {
		t.Errorf("Scale: expected %v, got %v", want, got)
	}
	if got, want := a.Dot(b), 1*(-4.0)+2*5.0+3*0.5; got != want {
		t.Errorf("Dot: expected %v, got %v", want, got)
	}
}

func TestVectorLen(t *testing.T) {
	if got := (Vector{3, 4, 0}).Len(); math.Abs(got-5.0) > 1e-12 {
		t.Errorf("Len: expected 5, got %v", got)
	}
}

func TestVectorZero(t *testing.T) {
	if !(Vector{}).Zero() {
		t.Error("Zero: expected the zero vector to report true")
	}
	if (Vector{0, 1e-12, 0}).Zero() {
		t.Error("Zero: expected a non-zero vector to report false")
	}
}
