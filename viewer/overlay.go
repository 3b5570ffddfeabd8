package main

import (
	"github.com/fogleman/gg"
	"github.com/NPatch/ComputerGraphicsFromScratch/shared/screen"
	"image"
)

// notifDuration is how many frames a notification stays on screen.
const notifDuration uint32 = screen.FPS

// notification is a timed text message shown in the window's corner.
type notification struct {
	text string
	framesLeft uint32
}

// overlay holds the queued notifications and the watermark drawn over every presented frame.
// Notifications are shown one at a time, oldest first.
type overlay struct {
	notifs []notification
}

// push queues a new notification.
func (o *overlay) push(text string) {
	o.notifs = append(o.notifs, notification{text: text, framesLeft: notifDuration})
}

// draw draws the watermark and the front notification (if any) onto the raster.
func (o *overlay) draw(img *image.RGBA) {
	ctx := gg.NewContextForRGBA(img)
	ctx.SetRGB255(255, 0, 0)

	// Watermark in the bottom-right corner.
	ctx.DrawStringAnchored("Watermark", float64(img.Bounds().Dx()) - 10.0, float64(img.Bounds().Dy()) - 10.0, 1.0, 0.0)

	// Show the front of the notification queue until its time runs out.
	if len(o.notifs) > 0 {
		front := &o.notifs[0]
		if front.framesLeft > 0 {
			ctx.DrawString(front.text, 10.0, 20.0)
			front.framesLeft--
		}else{
			o.notifs = o.notifs[1:]
		}
	}
}
