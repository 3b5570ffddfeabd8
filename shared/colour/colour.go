// Package colour provides a shared colour object for use by the tracer and its hosts.
package colour

import "math"

// RGB represents a colour with red, green, and blue channels.
// All channels are normalized so they're within the range [0, 1].
// Alpha is implicit: an RGB colour is always fully opaque.
type RGB struct {
	r, g, b float64
}

// NewRGB returns a new RGB object with the specified colours.
func NewRGB(r, g, b uint8) RGB {
	return RGB{r: float64(r) / 255.0, g: float64(g) / 255.0, b: float64(b) / 255.0}
}

// Scale returns the RGB object a scaled channel-wise by the scalar s.
// Each resulting channel is clamped back to the range [0, 1], so a
// negative s yields black and a large s saturates at full intensity.
func (a RGB) Scale(s float64) RGB {
	return RGB{r: math.Max(0.0, math.Min(s * a.r, 1.0)), g: math.Max(0.0, math.Min(s * a.g, 1.0)), b: math.Max(0.0, math.Min(s * a.b, 1.0))}
}

// RGBA returns the colour channels of an RGB object in the range [0, 0xffff].
// The alpha channel is always fully opaque.
// This function allows RGB objects to be used with the Color (image/color) interface.
func (rgb RGB) RGBA() (uint32, uint32, uint32, uint32) {
	return uint32(0xffff * rgb.r), uint32(0xffff * rgb.g), uint32(0xffff * rgb.b), uint32(0xffff)
}

// RGB returns the three colour channels of an RGB object in the range [0, 255].
func (rgb RGB) RGB() (uint8, uint8, uint8) {
	return uint8(255 * rgb.r), uint8(255 * rgb.g), uint8(255 * rgb.b)
}
