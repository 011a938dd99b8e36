package render

import "math"

// Color holds one pixel's channels. Values are nominally 0..255 but are never
// clamped here; interpolation may push them outside that range.
type Color struct{ R, G, B float64 }

// Frame is one full set of pixel colors for the strip.
type Frame []Color

// Fill returns a frame of n copies of c. Negative n gives an empty frame.
func Fill(c Color, n int) Frame {
	if n < 0 {
		n = 0
	}
	f := make(Frame, n)
	for i := range f {
		f[i] = c
	}
	return f
}

// Black returns an all-off frame of n pixels.
func Black(n int) Frame { return Fill(Color{}, n) }

// RGB8 converts to wire bytes, rounding and clamping each channel to 0..255.
func (c Color) RGB8() (r, g, b uint8) {
	return clamp255(c.R), clamp255(c.G), clamp255(c.B)
}

func clamp255(x float64) uint8 {
	if x <= 0 || math.IsNaN(x) {
		return 0
	}
	if x >= 255 {
		return 255
	}
	return uint8(x + 0.5)
}
