// Package tracer provides the ray-tracing core: projection, intersection search, and shading.
package tracer

import (
	"github.com/NPatch/ComputerGraphicsFromScratch/shared/geom"
	"github.com/NPatch/ComputerGraphicsFromScratch/shared/state"
)

// Projection ties a camera's viewport to a discrete canvas.
// Canvas coordinates are centred on the origin with the y-axis pointing
// up; screen coordinates are raster coordinates with the y-axis pointing
// down.  The two are related by a bijection over the canvas rectangle
// cx in [-W/2, W/2), cy in (-H/2, H/2].
type Projection struct {
	Cam state.Camera
	CanvasWidth, CanvasHeight int
}

// CanvasToViewport maps the canvas coordinate (cx, cy) to the
// corresponding point on the viewport plane, relative to the camera.
// The point sits Dist units down the camera's forward (+z) axis.
func (p Projection) CanvasToViewport(cx, cy int) geom.Vector {
	return geom.Vector{
		X: float64(cx) * (p.Cam.ViewportWidth / float64(p.CanvasWidth)),
		Y: float64(cy) * (p.Cam.ViewportHeight / float64(p.CanvasHeight)),
		Z: p.Cam.Dist,
	}
}

// CanvasToScreen maps the canvas coordinate (cx, cy) to its raster pixel.
// The y-axis is flipped because raster rows grow downward.
func (p Projection) CanvasToScreen(cx, cy int) (int, int) {
	return p.CanvasWidth / 2 + cx, p.CanvasHeight / 2 - cy
}

// ScreenToCanvas is the inverse of CanvasToScreen.
func (p Projection) ScreenToCanvas(sx, sy int) (int, int) {
	return sx - p.CanvasWidth / 2, p.CanvasHeight / 2 - sy
}

// PrimaryRay builds the world-space ray from the camera through the
// canvas coordinate (cx, cy).  The direction is deliberately left
// un-normalized: it spans exactly from the camera to the viewport plane,
// so t is measured in viewport distances and t = 1 lies on the plane
// itself.  That makes [1, +inf) the natural range for primary rays.
func (p Projection) PrimaryRay(cx, cy int) geom.Ray {
	return geom.Ray{Origin: p.Cam.Pos, Dir: p.CanvasToViewport(cx, cy)}
}
