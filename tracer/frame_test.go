package tracer

import (
	"github.com/NPatch/ComputerGraphicsFromScratch/shared/colour"
	"github.com/NPatch/ComputerGraphicsFromScratch/shared/geom"
	"github.com/NPatch/ComputerGraphicsFromScratch/shared/state"
	"bytes"
	"image"
	"image/color"
	"testing"
)

func TestRenderWritesEveryPixelOnce(t *testing.T) {
	// Render an empty scene over a sentinel-filled raster: if the frame
	// driver's canvas/screen mapping is a bijection, no sentinel pixel
	// survives and every pixel holds the background colour.
	env := state.Scene{
		Cam: state.NewCamera(geom.Vector{X: 0, Y: 0, Z: 0}, 1.0, 1.0, 1.0),
		Background: colour.NewRGB(0, 0, 255),
	}
	proj := Projection{Cam: env.Cam, CanvasWidth: 17, CanvasHeight: 9}

	img := image.NewRGBA(image.Rect(0, 0, proj.CanvasWidth, proj.CanvasHeight))
	sentinel := color.RGBA{R: 1, G: 2, B: 3, A: 4}
	for sy := 0; sy < proj.CanvasHeight; sy++ {
		for sx := 0; sx < proj.CanvasWidth; sx++ {
			img.SetRGBA(sx, sy, sentinel)
		}
	}

	RenderInto(&env, proj, img)

	want := color.RGBA{R: 0, G: 0, B: 255, A: 0xff}
	for sy := 0; sy < proj.CanvasHeight; sy++ {
		for sx := 0; sx < proj.CanvasWidth; sx++ {
			if got := img.RGBAAt(sx, sy); got != want {
				t.Fatalf("pixel (%d, %d) is %v, expected %v", sx, sy, got, want)
			}
		}
	}
}

func TestRenderDeterministic(t *testing.T) {
	env := state.Default()
	proj := Projection{Cam: env.Cam, CanvasWidth: 64, CanvasHeight: 64}

	first := Render(&env, proj)
	second := Render(&env, proj)
	if !bytes.Equal(first.Pix, second.Pix) {
		t.Error("expected repeated renders of the same scene to be byte-identical")
	}
}

func TestRenderParallelMatchesSequential(t *testing.T) {
	env := state.Default()
	proj := Projection{Cam: env.Cam, CanvasWidth: 80, CanvasHeight: 60}

	sequential := Render(&env, proj)
	for _, workers := range []int{1, 3, 0} {
		parallel := RenderParallel(&env, proj, workers)
		if !bytes.Equal(sequential.Pix, parallel.Pix) {
			t.Errorf("parallel render with %d workers differs from the sequential render", workers)
		}
	}
}

func TestRenderOpaqueAlpha(t *testing.T) {
	env := state.Default()
	proj := Projection{Cam: env.Cam, CanvasWidth: 32, CanvasHeight: 32}

	img := Render(&env, proj)
	for sy := 0; sy < proj.CanvasHeight; sy++ {
		for sx := 0; sx < proj.CanvasWidth; sx++ {
			if a := img.RGBAAt(sx, sy).A; a != 0xff {
				t.Fatalf("pixel (%d, %d) has alpha %d, expected 255", sx, sy, a)
			}
		}
	}
}

func TestRenderHitsDefaultSceneSpheres(t *testing.T) {
	// The centre column of the default scene looks straight at the red
	// sphere; the pixel there must not be the background.
	env := state.Default()
	proj := Projection{Cam: env.Cam, CanvasWidth: 100, CanvasHeight: 100}

	img := Render(&env, proj)

	// Canvas (0, -25) aims below the horizon into the red sphere at (0, -1, 3).
	sx, sy := proj.CanvasToScreen(0, -25)
	hit := img.RGBAAt(sx, sy)
	if hit.R == 0 {
		t.Errorf("expected a red-dominated pixel at (%d, %d), got %v", sx, sy, hit)
	}
	if hit.B != 0 || hit.G != 0 {
		t.Errorf("expected a pure red pixel at (%d, %d), got %v", sx, sy, hit)
	}

	// The top-left corner misses everything.
	br, bg, bb := env.Background.RGB()
	corner := img.RGBAAt(0, 0)
	if corner.R != br || corner.G != bg || corner.B != bb {
		t.Errorf("expected the background at (0, 0), got %v", corner)
	}
}
