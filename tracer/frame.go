// Package tracer provides the ray-tracing core: projection, intersection search, and shading.
package tracer

import (
	"github.com/NPatch/ComputerGraphicsFromScratch/shared/state"
	"image"
	"image/color"
	"math"
)

// TMin is the lower bound of the valid t-range for primary rays.
// It excludes the near-degenerate region between the camera and the
// viewport plane (PrimaryRay directions reach the plane at t = 1).
const TMin float64 = 1.0

// Render allocates a fresh raster and renders one full frame of env into it.
func Render(env *state.Scene, proj Projection) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, proj.CanvasWidth, proj.CanvasHeight))
	RenderInto(env, proj, img)
	return img
}

// RenderInto renders one full frame into img, writing every raster pixel
// exactly once.  The whole canvas is recomputed from scratch: there is
// no caching or partial update, so repeated calls with the same scene
// produce byte-identical rasters.
// The raster must be at least CanvasWidth x CanvasHeight pixels.
func RenderInto(env *state.Scene, proj Projection, img *image.RGBA) {
	renderRows(env, proj, img, 0, proj.CanvasHeight)
}

// renderRows renders the raster rows [syMin, syMax) in raster order.
func renderRows(env *state.Scene, proj Projection, img *image.RGBA, syMin, syMax int) {
	for sy := syMin; sy < syMax; sy++ {
		for sx := 0; sx < proj.CanvasWidth; sx++ {
			cx, cy := proj.ScreenToCanvas(sx, sy)
			col := TraceRay(env, proj.PrimaryRay(cx, cy), TMin, math.Inf(1))

			r, g, b := col.RGB()
			img.SetRGBA(sx, sy, color.RGBA{R: r, G: g, B: b, A: 0xff})
		}
	}
}
