package pattern

import "github.com/coreman2200/opcstrip/internal/render"

// SolidColor displays a single color on every LED.
type SolidColor struct {
	numLEDs int
	color   render.Color
}

var _ Static = (*SolidColor)(nil)

// NewSolidColor validates color ("#RRGGBB") and returns the pattern.
func NewSolidColor(color string, numLEDs int) (*SolidColor, error) {
	c, err := validateColor(color)
	if err != nil {
		return nil, err
	}
	return &SolidColor{numLEDs: numLEDs, color: c}, nil
}

func (s *SolidColor) NumLEDs() int { return s.numLEDs }
func (s *SolidColor) Render() render.Frame { return render.Fill(s.color, s.numLEDs) }
func (s *SolidColor) Advance() render.Frame { return s.Render() }

// Off turns every LED off.
type Off struct {
	numLEDs int
}

var _ Static = (*Off)(nil)

func NewOff(numLEDs int) *Off { return &Off{numLEDs: numLEDs} }

func (o *Off) NumLEDs() int { return o.numLEDs }
func (o *Off) Render() render.Frame { return render.Black(o.numLEDs) }
func (o *Off) Advance() render.Frame { return o.Render() }

// Stripes lays its colors along the strip in repeating bands of a fixed width.
type Stripes struct {
	numLEDs int
	width   int
	colors  []render.Color
}

var _ Static = (*Stripes)(nil)

// NewStripes validates colors and width. Width is the number of LEDs per band
// and must be positive.
func NewStripes(colors []string, width, numLEDs int) (*Stripes, error) {
	parsed, err := validateColorList(colors)
	if err != nil {
		return nil, err
	}
	if width < 0 {
		return nil, newValidationError("width", "width cannot be negative", render.ErrNegativeLength)
	}
	if width == 0 {
		return nil, newValidationError("width", "width must be at least one LED", nil)
	}
	return &Stripes{numLEDs: numLEDs, width: width, colors: parsed}, nil
}

func (s *Stripes) NumLEDs() int { return s.numLEDs }

func (s *Stripes) Render() render.Frame {
	// colors and width were checked in NewStripes and length is clamped, so
	// Spread cannot fail here.
	f, _ := render.Spread(s.colors, s.width, clampLEDs(s.numLEDs))
	return f
}

func (s *Stripes) Advance() render.Frame { return s.Render() }
