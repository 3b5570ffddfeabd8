// Package capture provides a frame-capture hook that brackets a frame's computation.
// The renderer calls the hook around every frame and is indifferent to
// whether anything is actually recording.
package capture

import (
	"github.com/fogleman/gg"
	"image"
	"fmt"
	"path/filepath"
)

// Hook receives begin/end signals around each frame's computation.
type Hook interface {
	// BeginFrame is called before any pixel of the frame is computed.
	BeginFrame(frame uint)
	// EndFrame is called with the completed raster for the frame.
	EndFrame(frame uint, img *image.RGBA)
}

// Nop is a Hook that records nothing.
type Nop struct{}

// BeginFrame does nothing.
func (Nop) BeginFrame(frame uint) {}

// EndFrame does nothing.
func (Nop) EndFrame(frame uint, img *image.RGBA) {}

// PNGRecorder is a Hook that saves armed frames as PNG files in a directory.
// It records only frames explicitly armed via Arm, so the render loop can
// run with the hook permanently attached.
// A PNGRecorder is not safe for concurrent use; arm and render from the same goroutine.
type PNGRecorder struct {
	Dir string

	armed bool
	capturing bool
	lastPath string
}

// Arm marks the next frame for capture.
func (r *PNGRecorder) Arm() {
	r.armed = true
}

// BeginFrame latches the armed flag, so arming mid-frame affects the next frame only.
func (r *PNGRecorder) BeginFrame(frame uint) {
	r.capturing = r.armed
	r.armed = false
}

// EndFrame writes the completed raster to a PNG file if this frame was armed.
// The write error, if any, is reported by LastCapture.
func (r *PNGRecorder) EndFrame(frame uint, img *image.RGBA) {
	if !r.capturing {
		return
	}
	r.capturing = false

	path := filepath.Join(r.Dir, fmt.Sprintf("frame-%06d.png", frame))
	if err := gg.SavePNG(path, img); err != nil {
		r.lastPath = ""
		return
	}
	r.lastPath = path
}

// LastCapture returns the path of the most recently written capture,
// or "" if no capture has succeeded yet.
func (r *PNGRecorder) LastCapture() string {
	return r.lastPath
}
