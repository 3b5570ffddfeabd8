// Package state provides shared scene state for use by the tracer and its hosts.
package state

import (
	"github.com/NPatch/ComputerGraphicsFromScratch/shared/geom"
	"fmt"
)

// Camera represents a fixed camera looking down the +z axis.
// The viewport is a ViewportWidth x ViewportHeight plane held Dist units
// in front of the camera; canvas coordinates project onto it.
type Camera struct {
	Pos geom.Vector
	ViewportWidth, ViewportHeight float64
	Dist float64
}

// NewCamera initializes a new camera with the given viewport geometry.
// If any of the viewport dimensions or the viewport distance are not positive, this function panics.
func NewCamera(pos geom.Vector, viewportWidth, viewportHeight, dist float64) Camera {
	if viewportWidth <= 0.0 || viewportHeight <= 0.0 || dist <= 0.0 {
		panic(fmt.Sprintf("Camera viewport parameters (%v, %v, %v) must be positive.", viewportWidth, viewportHeight, dist))
	}else{
		return Camera{Pos: pos, ViewportWidth: viewportWidth, ViewportHeight: viewportHeight, Dist: dist}
	}
}
