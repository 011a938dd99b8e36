// Package term draws frames into a terminal, one cell per pixel.
package term

import (
	"context"

	"github.com/gdamore/tcell/v2"

	"github.com/coreman2200/opcstrip/internal/driver"
	"github.com/coreman2200/opcstrip/internal/render"
)

const cell = ' '

type Sink struct {
	screen tcell.Screen
}

// Open initialises the controlling terminal.
func Open() (*Sink, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, &driver.UnavailableError{Kind: "term", Err: err}
	}
	if err := screen.Init(); err != nil {
		return nil, &driver.UnavailableError{Kind: "term", Err: err}
	}
	return New(screen), nil
}

// New wraps an already initialised screen.
func New(screen tcell.Screen) *Sink {
	screen.HideCursor()
	return &Sink{screen: screen}
}

// PutPixels lays pixels out left to right, wrapping at the screen width.
// Pixels past the last row are not drawn.
func (s *Sink) PutPixels(frame render.Frame) error {
	w, h := s.screen.Size()
	if w <= 0 || h <= 0 {
		return nil
	}
	s.screen.Clear()
	for i, c := range frame {
		x, y := i%w, i/w
		if y >= h {
			break
		}
		s.screen.SetContent(x, y, cell, nil, Style(c))
	}
	s.screen.Show()
	return nil
}

// Style is the cell style used for a pixel.
func Style(c render.Color) tcell.Style {
	r, g, b := c.RGB8()
	return tcell.StyleDefault.Background(tcell.NewRGBColor(int32(r), int32(g), int32(b)))
}

// Watch cancels when the user presses Escape, Ctrl-C or q. The terminal is
// in raw mode while the sink is open, so these never arrive as signals.
// It returns once the screen is finalised.
func (s *Sink) Watch(cancel context.CancelFunc) {
	for {
		ev := s.screen.PollEvent()
		if ev == nil {
			return
		}
		if key, ok := ev.(*tcell.EventKey); ok && isQuit(key) {
			cancel()
		}
	}
}

func isQuit(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q'
	}
	return false
}

func (s *Sink) Close() error {
	s.screen.Fini()
	return nil
}
