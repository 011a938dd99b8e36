package pattern

import "github.com/coreman2200/opcstrip/internal/render"

// Strobe alternates the frames of another pattern with blackout frames.
//
// The inner pattern is only advanced on lit calls, so a dynamic inner pattern
// moves at half its usual rate under a strobe.
type Strobe struct {
	inner Pattern
	lit   bool
	speed int
}

var _ Dynamic = (*Strobe)(nil)

// NewStrobe wraps inner. A speed of 0 takes the inner pattern's speed when it
// is dynamic, or DefaultSpeed otherwise.
func NewStrobe(inner Pattern, speed int) (*Strobe, error) {
	if inner == nil {
		return nil, newValidationError("pattern", "strobe needs a pattern to wrap", nil)
	}
	if speed == 0 {
		speed = DefaultSpeed
		if d, ok := inner.(Dynamic); ok {
			speed = d.Speed()
		}
	}
	if err := validateSpeed(speed); err != nil {
		return nil, err
	}
	return &Strobe{inner: inner, lit: true, speed: speed}, nil
}

func (s *Strobe) NumLEDs() int { return s.inner.NumLEDs() }
func (s *Strobe) Speed() int { return s.speed }
func (s *Strobe) Inner() Pattern { return s.inner }

func (s *Strobe) Advance() render.Frame {
	lit := s.lit
	s.lit = !s.lit
	if lit {
		return s.inner.Advance()
	}
	return render.Black(s.inner.NumLEDs())
}
