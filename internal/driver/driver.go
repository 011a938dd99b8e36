// Package driver defines the pixel sink that frames are pushed to.
package driver

import (
	"errors"
	"fmt"

	"github.com/coreman2200/opcstrip/internal/render"
)

// Sink abstracts the LED transport (OPC socket, SPI, preview, etc.).
// PutPixels is never called concurrently by the player.
type Sink interface {
	PutPixels(frame render.Frame) error
}

// ErrSinkUnavailable is matched by every *UnavailableError.
var ErrSinkUnavailable = errors.New("sink unavailable")

// UnavailableError reports a sink that could not be opened or connected.
type UnavailableError struct {
	Kind    string
	Address string
	Err     error
}

func (e *UnavailableError) Error() string {
	if e == nil {
		return ""
	}
	if e.Address != "" {
		return fmt.Sprintf("%s sink at %s unavailable: %v", e.Kind, e.Address, e.Err)
	}
	return fmt.Sprintf("%s sink unavailable: %v", e.Kind, e.Err)
}

func (e *UnavailableError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

func (e *UnavailableError) Is(target error) bool {
	return target == ErrSinkUnavailable
}

// Encode packs a frame as consecutive R, G, B bytes.
func Encode(frame render.Frame) []byte {
	rgb := make([]byte, len(frame)*3)
	for i, c := range frame {
		rgb[i*3+0], rgb[i*3+1], rgb[i*3+2] = c.RGB8()
	}
	return rgb
}

type limited struct {
	Sink
	lim render.Limiter
}

func (l *limited) PutPixels(frame render.Frame) error {
	return l.Sink.PutPixels(l.lim.Apply(frame))
}

// Limit wraps s so every frame passes through lim first. s is returned as is
// when lim cannot change anything.
func Limit(s Sink, lim render.Limiter) Sink {
	if !lim.Enabled() {
		return s
	}
	return &limited{Sink: s, lim: lim}
}
