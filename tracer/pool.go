// Package tracer provides the ray-tracing core: projection, intersection search, and shading.
package tracer

import (
	"github.com/NPatch/ComputerGraphicsFromScratch/shared/state"
	"image"
	"runtime"
	"sync"
)

// bandHeight is the number of raster rows handed to a worker at a time.
// Small bands keep the workers evenly loaded near the end of a frame.
const bandHeight int = 8

// band represents a half-open range of raster rows assigned to one worker.
type band struct {
	syMin, syMax int
}

// RenderParallelInto renders one full frame into img using the given
// number of worker goroutines (or one per CPU if workers <= 0).
// Every pixel is a pure function of its coordinate and the read-only
// scene, and the workers write disjoint rows of the raster, so the
// result is byte-identical to RenderInto regardless of scheduling.
func RenderParallelInto(env *state.Scene, proj Projection, img *image.RGBA, workers int) {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	// Queue up every row band in advance, then let the workers drain the queue.
	bands := make(chan band, proj.CanvasHeight / bandHeight + 1)
	for syMin := 0; syMin < proj.CanvasHeight; syMin += bandHeight {
		syMax := syMin + bandHeight
		if syMax > proj.CanvasHeight {
			syMax = proj.CanvasHeight
		}
		bands <- band{syMin: syMin, syMax: syMax}
	}
	close(bands)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for b := range bands {
				renderRows(env, proj, img, b.syMin, b.syMax)
			}
		}()
	}
	wg.Wait()
}

// RenderParallel allocates a fresh raster and renders one full frame of env into it in parallel.
func RenderParallel(env *state.Scene, proj Projection, workers int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, proj.CanvasWidth, proj.CanvasHeight))
	RenderParallelInto(env, proj, img, workers)
	return img
}
