// Package fake provides a headless sink for simulation runs and tests.
package fake

import (
	"sync"

	"github.com/rs/zerolog"

	"github.com/coreman2200/opcstrip/internal/driver"
	"github.com/coreman2200/opcstrip/internal/render"
)

// Driver counts frames and logs a compact summary of each one (first pixel
// and average) at debug level. It keeps a copy of the last frame.
type Driver struct {
	Log zerolog.Logger
	// Err, if set, is returned from every PutPixels call.
	Err error

	mu    sync.Mutex
	count int
	last  render.Frame
}

var _ driver.Sink = (*Driver)(nil)

func New(log zerolog.Logger) *Driver { return &Driver{Log: log} }

func (d *Driver) PutPixels(frame render.Frame) error {
	if d.Err != nil {
		return d.Err
	}
	d.mu.Lock()
	d.count++
	d.last = append(d.last[:0], frame...)
	n := d.count
	d.mu.Unlock()

	if e := d.Log.Debug(); e.Enabled() {
		var avg render.Color
		for _, c := range frame {
			avg.R += c.R
			avg.G += c.G
			avg.B += c.B
		}
		div := float64(max(len(frame), 1))
		e = e.Int("frame", n).Int("pixels", len(frame)).
			Floats64("avg", []float64{avg.R / div, avg.G / div, avg.B / div})
		if len(frame) > 0 {
			e = e.Floats64("first", []float64{frame[0].R, frame[0].G, frame[0].B})
		}
		e.Msg("frame")
	}
	return nil
}

// Count is the number of frames received.
func (d *Driver) Count() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.count
}

// Last returns a copy of the most recent frame.
func (d *Driver) Last() render.Frame {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append(render.Frame{}, d.last...)
}
