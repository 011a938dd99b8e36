// Package pattern turns a named configuration into a stream of frames.
//
// Every pattern satisfies Pattern. Static patterns always produce the same
// frame; dynamic patterns change their frame on each Advance and report how
// many times per second they want to be advanced.
package pattern

import "github.com/coreman2200/opcstrip/internal/render"

const (
	// DefaultNumLEDs is the strip length used when none is configured.
	DefaultNumLEDs = 512
	// DefaultSpeed is the tick rate of dynamic patterns when none is given.
	DefaultSpeed = 8
	// DefaultWidth is the band width of Stripes when none is given.
	DefaultWidth = 10
)

// Pattern produces the next frame to push to the strip.
type Pattern interface {
	Advance() render.Frame
	NumLEDs() int
}

// Static patterns render a single unchanging frame; Advance is idempotent.
type Static interface {
	Pattern
	Render() render.Frame
}

// Dynamic patterns mutate their state on every Advance.
type Dynamic interface {
	Pattern
	// Speed is the number of Advance calls per second.
	Speed() int
}
