package main

import (
	"github.com/fogleman/gg"
	"github.com/NPatch/ComputerGraphicsFromScratch/shared/state"
	"github.com/NPatch/ComputerGraphicsFromScratch/tracer"
	"strconv"
	"time"
	"log"
	"os"
)

func main() {
	// Make sure we have enough parameters.
	if len(os.Args) != 5 {
		log.Fatalln("Improper parameters.  This program requires the parameters:"+
			"\n\t(1) canvas width"+
			"\n\t(2) canvas height"+
			"\n\t(3) worker count (0 selects one worker per CPU)"+
			"\n\t(4) output PNG path")
	}

	// Parse the command line parameters.
	width, err := strconv.ParseUint(os.Args[1], 10, 64)
	if err != nil {
		log.Fatalf("Could not parse canvas width \"%s\": %v.\n", os.Args[1], err)
	}
	height, err := strconv.ParseUint(os.Args[2], 10, 64)
	if err != nil {
		log.Fatalf("Could not parse canvas height \"%s\": %v.\n", os.Args[2], err)
	}
	workers, err := strconv.ParseUint(os.Args[3], 10, 64)
	if err != nil {
		log.Fatalf("Could not parse worker count \"%s\": %v.\n", os.Args[3], err)
	}
	outPath := os.Args[4]

	// Render a single frame of the built-in scene.
	env := state.Default()
	proj := tracer.Projection{Cam: env.Cam, CanvasWidth: int(width), CanvasHeight: int(height)}

	start := time.Now()
	img := tracer.RenderParallel(&env, proj, int(workers))
	log.Printf("Rendered %dx%d frame in %v.\n", width, height, time.Since(start))

	// Save the raster.
	if err := gg.SavePNG(outPath, img); err != nil {
		log.Fatalf("Could not save \"%s\": %v.\n", outPath, err)
	}
}
