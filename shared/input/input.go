// Package input provides functionality for event parsing.
package input

import "github.com/veandco/go-sdl2/sdl"

// HandleInputs parses all input events waiting in the queue.
// This function returns: (running, capture requested).
func HandleInputs() (bool, bool) {
	running := true	// We assume this to be true.
	capture := false

	// Pull every event out of the queue and evaluate/apply it.
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch event.(type) {
		case *sdl.QuitEvent:
			running = false
			break
		case *sdl.KeyboardEvent:
			keyEvent := event.(*sdl.KeyboardEvent)
			if keyEvent.Type == sdl.KEYDOWN && keyEvent.Keysym.Mod == sdl.KMOD_NONE {
				switch keyEvent.Keysym.Sym {
				case sdl.K_ESCAPE:
					running = false
					break
				case sdl.K_c:
					capture = true
					break
				}
			}
			break
		}
	}
	return running, capture
}
