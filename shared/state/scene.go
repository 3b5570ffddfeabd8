// Package state provides shared scene state for use by the tracer and its hosts.
package state

import (
	"github.com/NPatch/ComputerGraphicsFromScratch/shared/geom"
	"github.com/NPatch/ComputerGraphicsFromScratch/shared/colour"
)

// Scene represents a 3-dimensional space full of spheres and lights.
// A scene is constructed once and never mutated afterwards; the tracer
// only ever reads it, so it can be shared freely between goroutines.
// The order of Objs and Lights is significant: the tracer breaks
// nearest-hit ties in favour of earlier objects.
type Scene struct {
	Objs []Object
	Lights []Light
	Cam Camera
	Background colour.RGB
}

// Default returns the built-in demo scene: three unit spheres lit by an
// ambient, a point, and a directional light, viewed from the origin.
func Default() Scene {
	return Scene{
		Objs: []Object{
			Object{Shape: geom.Sphere{Center: geom.Vector{X: 0, Y: -1, Z: 3}, Radius: 1}, Col: colour.NewRGB(255, 0, 0)},
			Object{Shape: geom.Sphere{Center: geom.Vector{X: 2, Y: 0, Z: 4}, Radius: 1}, Col: colour.NewRGB(0, 0, 255)},
			Object{Shape: geom.Sphere{Center: geom.Vector{X: -2, Y: 0, Z: 4}, Radius: 1}, Col: colour.NewRGB(0, 255, 0)},
		},
		Lights: []Light{
			AmbientLight{Intensity: 0.2},
			PointLight{Pos: geom.Vector{X: 2, Y: 1, Z: 0}, Intensity: 0.6},
			DirectionalLight{Dir: geom.Vector{X: 1, Y: 4, Z: 4}, Intensity: 0.2},
		},
		Cam: NewCamera(geom.Vector{X: 0, Y: 0, Z: 0}, 1.0, 1.0, 1.0),
		Background: colour.NewRGB(0, 0, 0),
	}
}
