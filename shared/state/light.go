// Package state provides shared scene state for use by the tracer and its hosts.
package state

import "github.com/NPatch/ComputerGraphicsFromScratch/shared/geom"

// Light is the closed set of light variants in a scene.
// Each variant carries only the fields meaningful to it; the lighting
// evaluator dispatches on the concrete type.
type Light interface {
	light()
}

// AmbientLight contributes its intensity at every point, unconditionally.
type AmbientLight struct {
	Intensity float64
}

// PointLight radiates from a fixed position in space.
type PointLight struct {
	Pos       geom.Vector
	Intensity float64
}

// DirectionalLight shines along a fixed direction from infinitely far away.
// Dir points towards the light and is not required to be unit length.
type DirectionalLight struct {
	Dir       geom.Vector
	Intensity float64
}

func (AmbientLight) light()     {}
func (PointLight) light()       {}
func (DirectionalLight) light() {}
