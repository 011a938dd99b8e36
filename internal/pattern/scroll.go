package pattern

import "github.com/coreman2200/opcstrip/internal/render"

// Scroll moves a multi-colored line along the strip one LED per tick.
type Scroll struct {
	numLEDs int
	speed   int
	colors  []render.Color
	pixels  render.Frame
}

var _ Dynamic = (*Scroll)(nil)

// NewScroll spreads colors evenly across the strip; each Advance rotates the
// line right by one LED.
func NewScroll(colors []string, speed, numLEDs int) (*Scroll, error) {
	parsed, err := validateColorList(colors)
	if err != nil {
		return nil, err
	}
	if err := validateSpeed(speed); err != nil {
		return nil, err
	}
	pixels, err := render.EvenSpread(parsed, clampLEDs(numLEDs))
	if err != nil {
		return nil, err
	}
	return &Scroll{numLEDs: numLEDs, speed: speed, colors: parsed, pixels: pixels}, nil
}

func (s *Scroll) NumLEDs() int { return s.numLEDs }
func (s *Scroll) Speed() int { return s.speed }

// Pixels returns a copy of the current line without advancing it.
func (s *Scroll) Pixels() render.Frame {
	return append(render.Frame{}, s.pixels...)
}

func (s *Scroll) Advance() render.Frame {
	if len(s.pixels) == 0 {
		return render.Frame{}
	}
	// pixels is non-empty so rotation cannot fail.
	s.pixels, _ = render.RotateRight(s.pixels, 1)
	return s.Pixels()
}
