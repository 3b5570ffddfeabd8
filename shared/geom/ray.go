// Package geom provides shared geometry functionality for use by the tracer and its hosts.
package geom

// Ray represents a parametric ray in 3-dimensional space.
// Points along the ray take the form Origin + t * Dir for t >= 0.
// Dir is not required to be unit length; callers choose the scale of t
// by choosing the scale of Dir.
type Ray struct {
	Origin Vector
	Dir    Vector
}

// At returns the point along the ray r at parameter t.
func (r Ray) At(t float64) Vector {
	return r.Origin.Add(r.Dir.Scale(t))
}
