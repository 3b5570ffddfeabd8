// Package tracer provides the ray-tracing core: projection, intersection search, and shading.
package tracer

import (
	"github.com/NPatch/ComputerGraphicsFromScratch/shared/geom"
	"github.com/NPatch/ComputerGraphicsFromScratch/shared/colour"
	"github.com/NPatch/ComputerGraphicsFromScratch/shared/state"
)

// closestIntersection scans every object in the scene for the nearest
// root of the ray/sphere quadratic within the closed range [tmin, tmax].
// Both roots of every object are candidates.  The comparison is a strict
// less-than, so when two candidates are equally near, the first object
// in scene order (and the first root of that object) wins.
// The last return value is whether any candidate was in range.
func closestIntersection(env *state.Scene, r geom.Ray, tmin, tmax float64) (*state.Object, float64, bool) {
	hasNearest := false
	var nearestT float64
	var nearestObj *state.Object
	for i := range env.Objs {
		if t1, t2, hit := env.Objs[i].Shape.Intersection(r); hit {
			if t1 >= tmin && t1 <= tmax && (!hasNearest || t1 < nearestT) {
				hasNearest = true
				nearestT = t1
				nearestObj = &env.Objs[i]
			}
			if t2 >= tmin && t2 <= tmax && (!hasNearest || t2 < nearestT) {
				hasNearest = true
				nearestT = t2
				nearestObj = &env.Objs[i]
			}
		}
	}

	return nearestObj, nearestT, hasNearest
}

// diffuse computes one light's cosine-weighted contribution at a point
// with surface normal normal, where beam points from the point towards
// the light.  Neither vector needs to be unit length: the denominator
// normalizes the dot product, so the result is a true cosine term.
// A negative cosine (light behind the surface) subtracts intensity; it
// is not clamped to zero.
// If either vector has zero length the cosine is undefined, and the
// light is skipped rather than contributing NaN.
func diffuse(normal, beam geom.Vector, intensity float64) float64 {
	denominator := normal.Len() * beam.Len()
	if denominator == 0.0 {
		return 0.0
	}
	return intensity * normal.Dot(beam) / denominator
}

// computeLighting sums the contribution of every light in the scene at
// the given point with the given surface normal.  There is no shadow or
// occlusion test against other objects; this is a local model.
func computeLighting(env *state.Scene, point, normal geom.Vector) float64 {
	intensity := 0.0
	for _, l := range env.Lights {
		switch light := l.(type) {
		case state.AmbientLight:
			intensity += light.Intensity
		case state.PointLight:
			intensity += diffuse(normal, light.Pos.Sub(point), light.Intensity)
		case state.DirectionalLight:
			intensity += diffuse(normal, light.Dir, light.Intensity)
		}
	}
	return intensity
}

// TraceRay traces a single ray through the scene and returns the colour
// it produces.  Hits are only accepted within the closed range
// [tmin, tmax]; if no object is hit in range, the scene's background
// colour is returned.  A miss is a normal outcome, not an error.
func TraceRay(env *state.Scene, r geom.Ray, tmin, tmax float64) colour.RGB {
	obj, t, hit := closestIntersection(env, r, tmin, tmax)
	if !hit {
		return env.Background
	}

	point := r.At(t)
	return obj.Col.Scale(computeLighting(env, point, obj.Shape.Normal(point)))
}
