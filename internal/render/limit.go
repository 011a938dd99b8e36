package render

// Limiter bounds the light a frame asks for before it reaches a physical
// strip. The zero value changes nothing.
type Limiter struct {
	// Brightness scales every channel; 0 is treated as 1.
	Brightness float64
	// WhiteCap caps R+G+B of a single LED, in units of one full channel
	// (3 is white at full scale). 0 disables the cap.
	WhiteCap float64
	// ChanMilliamps is the draw of one channel at 255. WS2812 is about 20.
	ChanMilliamps float64
	// BudgetMilliamps caps the estimated draw of the whole frame. 0 disables.
	BudgetMilliamps float64
}

// Enabled reports whether Apply can change a frame.
func (l Limiter) Enabled() bool {
	return (l.Brightness > 0 && l.Brightness < 1) ||
		(l.WhiteCap > 0 && l.WhiteCap < 3) ||
		l.BudgetMilliamps > 0
}

// Current estimates the draw of f in milliamps.
func (l Limiter) Current(f Frame) float64 {
	chanmA := l.ChanMilliamps
	if chanmA <= 0 {
		chanmA = 20
	}
	var sum float64
	for _, c := range f {
		r, g, b := c.RGB8()
		sum += float64(r) + float64(g) + float64(b)
	}
	return sum / 255 * chanmA
}

// Apply returns a limited copy of f: brightness, then the per LED white cap,
// then a uniform scale down to the current budget.
func (l Limiter) Apply(f Frame) Frame {
	out := make(Frame, len(f))
	copy(out, f)

	if l.Brightness > 0 && l.Brightness < 1 {
		scaleFrame(out, l.Brightness)
	}

	if l.WhiteCap > 0 && l.WhiteCap < 3 {
		limit := l.WhiteCap * 255
		for i, c := range out {
			s := c.R + c.G + c.B
			if s > limit {
				out[i] = scale(c, limit/s)
			}
		}
	}

	if l.BudgetMilliamps > 0 {
		if total := l.Current(out); total > l.BudgetMilliamps {
			scaleFrame(out, l.BudgetMilliamps/total)
		}
	}
	return out
}

func scale(c Color, s float64) Color {
	return Color{R: c.R * s, G: c.G * s, B: c.B * s}
}

func scaleFrame(f Frame, s float64) {
	for i := range f {
		f[i] = scale(f[i], s)
	}
}
