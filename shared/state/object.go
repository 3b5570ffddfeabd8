// Package state provides shared scene state for use by the tracer and its hosts.
package state

import (
	"github.com/NPatch/ComputerGraphicsFromScratch/shared/geom"
	"github.com/NPatch/ComputerGraphicsFromScratch/shared/colour"
)

// Object represents a coloured sphere in a scene.
type Object struct {
	Shape geom.Sphere
	Col colour.RGB
}
