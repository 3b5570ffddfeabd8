package main

import (
	"github.com/veandco/go-sdl2/sdl"
	"github.com/NPatch/ComputerGraphicsFromScratch/shared/state"
	"github.com/NPatch/ComputerGraphicsFromScratch/shared/screen"
	"github.com/NPatch/ComputerGraphicsFromScratch/shared/input"
	"github.com/NPatch/ComputerGraphicsFromScratch/tracer"
	"github.com/NPatch/ComputerGraphicsFromScratch/capture"
	"image"
	"strconv"
	"log"
	"os"
)

func main() {
	// Make sure we have enough parameters.
	if len(os.Args) != 4 {
		log.Fatalln("Improper parameters.  This program requires the parameters:"+
			"\n\t(1) window width"+
			"\n\t(2) window height"+
			"\n\t(3) worker count (0 selects one worker per CPU)")
	}

	// Parse the command line parameters.
	width, err := strconv.ParseUint(os.Args[1], 10, 64)
	if err != nil {
		log.Fatalf("Could not parse window width \"%s\": %v.\n", os.Args[1], err)
	}
	height, err := strconv.ParseUint(os.Args[2], 10, 64)
	if err != nil {
		log.Fatalf("Could not parse window height \"%s\": %v.\n", os.Args[2], err)
	}
	workers, err := strconv.ParseUint(os.Args[3], 10, 64)
	if err != nil {
		log.Fatalf("Could not parse worker count \"%s\": %v.\n", os.Args[3], err)
	}

	// Set up the scene and its projection onto the window.
	env := state.Default()
	proj := tracer.Projection{Cam: env.Cam, CanvasWidth: int(width), CanvasHeight: int(height)}

	// Start the screen.
	window, surface, err := screen.StartScreen("Computer Graphics from Scratch", int(width), int(height))
	if err != nil {
		log.Fatalf("Could not start screen: %v.\n", err)
	}
	defer screen.StopScreen(window)

	// The raster is reused across frames; every frame overwrites all of it.
	img := image.NewRGBA(image.Rect(0, 0, int(width), int(height)))
	recorder := &capture.PNGRecorder{Dir: "."}
	notifs := overlay{}

	// Run the input/render loop.
	var prevUpdate, currentUpdate uint32
	for running, frame := true, uint(0); running; frame++ {
		prevUpdate = sdl.GetTicks()

		// Handle new inputs.
		var snap bool
		running, snap = input.HandleInputs()
		if snap {
			recorder.Arm()
		}

		// Render the frame, bracketed by the capture hook.
		recorder.BeginFrame(frame)
		tracer.RenderParallelInto(&env, proj, img, int(workers))
		recorder.EndFrame(frame, img)

		if snap {
			if path := recorder.LastCapture(); path != "" {
				notifs.push("Captured " + path)
			}else{
				notifs.push("Capture failed")
			}
		}

		// The overlay is drawn after the capture hook so captures stay clean.
		notifs.draw(img)

		// Present the frame.
		screen.Blit(surface, img)
		window.UpdateSurface()

		// If there's still time before the next frame needs to be drawn, wait.
		currentUpdate = sdl.GetTicks()
		if currentUpdate - prevUpdate < screen.MsPerFrame {
			sdl.Delay(screen.MsPerFrame - (currentUpdate - prevUpdate))
		}
	}
}
