// Package geom provides shared geometry functionality for use by the tracer and its hosts.
package geom

import "math"

// Sphere represents a sphere in 3-dimensional space.
// The radius must be positive; behaviour for Radius <= 0 is undefined.
type Sphere struct {
	Center Vector
	Radius float64
}

// Intersection returns both roots of the ray/sphere quadratic (and true) if an intersection exists.
// If the ray misses the sphere entirely, false is returned instead of true.
// A tangent ray reports two equal roots rather than a distinguished single hit.
// The roots are unconstrained in sign and ordering; callers filter them against their own t-range.
func (s Sphere) Intersection(r Ray) (float64, float64, bool) {
	// Solve a*t^2 + b*t + c = 0, where the coefficients come from
	// substituting the ray's parametric form into the sphere equation.
	co := r.Origin.Sub(s.Center)
	a := r.Dir.Dot(r.Dir)
	b := 2.0 * co.Dot(r.Dir)
	c := co.Dot(co) - s.Radius * s.Radius

	discriminant := b * b - 4.0 * a * c
	if discriminant < 0.0 {
		return 0.0, 0.0, false
	}

	// A non-degenerate ray direction gives a > 0, so the divisions are well-defined.
	t1 := (-b + math.Sqrt(discriminant)) / (2.0 * a)
	t2 := (-b - math.Sqrt(discriminant)) / (2.0 * a)
	return t1, t2, true
}

// Normal returns the (un-normalized) outward surface normal of the sphere s at the point p.
func (s Sphere) Normal(p Vector) Vector {
	return p.Sub(s.Center)
}
