package pattern

import (
	"sort"
)

// Options is the uniform option record accepted by every constructor.
// Each pattern reads only the fields it needs and ignores the rest.
type Options struct {
	Color     string   `yaml:"color,omitempty" validate:"omitempty,colorhex"`
	ColorList []string `yaml:"color_list,omitempty" validate:"omitempty,dive,colorhex"`
	Speed     *int     `yaml:"speed,omitempty" validate:"omitempty,gt=0"`
	Strobe    bool     `yaml:"strobe,omitempty"`
	Width     *int     `yaml:"width,omitempty" validate:"omitempty,gt=0"`
}

func (o Options) speed() int {
	if o.Speed == nil {
		return DefaultSpeed
	}
	return *o.Speed
}

func (o Options) width() int {
	if o.Width == nil {
		return DefaultWidth
	}
	return *o.Width
}

// Constructor builds a pattern for a strip of numLEDs from opts.
type Constructor func(numLEDs int, opts Options) (Pattern, error)

// Registry maps pattern names to constructors. Build it once at start up;
// lookups do not lock.
type Registry struct{ m map[string]Constructor }

// NewRegistry returns a registry holding the built-in patterns.
func NewRegistry() *Registry {
	r := &Registry{m: map[string]Constructor{}}
	r.Register("solid_color", func(n int, o Options) (Pattern, error) {
		return NewSolidColor(o.Color, n)
	})
	r.Register("off", func(n int, _ Options) (Pattern, error) {
		return NewOff(n), nil
	})
	r.Register("stripes", func(n int, o Options) (Pattern, error) {
		return NewStripes(o.ColorList, o.width(), n)
	})
	r.Register("scroll", func(n int, o Options) (Pattern, error) {
		return NewScroll(o.ColorList, o.speed(), n)
	})
	r.Register("fade", func(n int, o Options) (Pattern, error) {
		return NewFade(o.ColorList, o.speed(), n)
	})
	return r
}

// Register adds or replaces a constructor.
func (r *Registry) Register(name string, c Constructor) {
	if c == nil {
		return
	}
	r.m[name] = c
}

// Get returns the constructor registered under name.
func (r *Registry) Get(name string) (Constructor, bool) {
	c, ok := r.m[name]
	return c, ok
}

// Names lists registered patterns in sorted order.
func (r *Registry) Names() []string {
	out := make([]string, 0, len(r.m))
	for k := range r.m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Create builds the named pattern and wraps it in a Strobe when opts.Strobe
// is set. Constructor errors are returned unchanged.
func (r *Registry) Create(name string, numLEDs int, opts Options) (Pattern, error) {
	c, ok := r.Get(name)
	if !ok {
		return nil, &UnknownPatternError{Name: name}
	}
	p, err := c(numLEDs, opts)
	if err != nil {
		return nil, err
	}
	if !opts.Strobe {
		return p, nil
	}
	speed := 0
	if opts.Speed != nil {
		speed = *opts.Speed
	}
	s, err := NewStrobe(p, speed)
	if err != nil {
		return nil, err
	}
	return s, nil
}
