package pattern

import "github.com/coreman2200/opcstrip/internal/render"

// FadeSteps is the number of ticks spent moving from one color to the next.
const FadeSteps = 10

// Fade cross-fades the whole strip through its colors in order, wrapping from
// the last color back to the first.
//
// Tick k shows Lerp(colors[i], colors[i+1], (k mod FadeSteps)/FadeSteps) with
// i = (k / FadeSteps) mod len(colors). The first frame is exactly colors[0].
type Fade struct {
	numLEDs int
	speed   int
	colors  []render.Color
	tick    int
}

var _ Dynamic = (*Fade)(nil)

func NewFade(colors []string, speed, numLEDs int) (*Fade, error) {
	parsed, err := validateColorList(colors)
	if err != nil {
		return nil, err
	}
	if err := validateSpeed(speed); err != nil {
		return nil, err
	}
	return &Fade{numLEDs: numLEDs, speed: speed, colors: parsed}, nil
}

func (f *Fade) NumLEDs() int { return f.numLEDs }
func (f *Fade) Speed() int { return f.speed }

// Current returns the color of the next frame without advancing.
func (f *Fade) Current() render.Color {
	n := len(f.colors)
	i := (f.tick / FadeSteps) % n
	p := float64(f.tick%FadeSteps) / FadeSteps
	return render.Lerp(f.colors[i], f.colors[(i+1)%n], p)
}

func (f *Fade) Advance() render.Frame {
	frame := render.Fill(f.Current(), f.numLEDs)
	// keep the counter bounded; the schedule repeats every cycle
	f.tick = (f.tick + 1) % (FadeSteps * len(f.colors))
	return frame
}
