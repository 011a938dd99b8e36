// Package app wires configuration, patterns, sinks and the player together.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"periph.io/x/conn/v3/physic"

	"github.com/coreman2200/opcstrip/internal/config"
	"github.com/coreman2200/opcstrip/internal/driver"
	"github.com/coreman2200/opcstrip/internal/driver/fake"
	"github.com/coreman2200/opcstrip/internal/driver/nrz"
	"github.com/coreman2200/opcstrip/internal/driver/opc"
	"github.com/coreman2200/opcstrip/internal/driver/preview"
	"github.com/coreman2200/opcstrip/internal/driver/term"
	"github.com/coreman2200/opcstrip/internal/logger"
	"github.com/coreman2200/opcstrip/internal/pattern"
	"github.com/coreman2200/opcstrip/internal/playback"
)

// ErrUnknownDriver is returned for a driver name no sink is registered under.
var ErrUnknownDriver = errors.New("unknown driver")

type App struct {
	Config   *config.Config
	Log      zerolog.Logger
	Registry *pattern.Registry
}

func New(cfg *config.Config, log zerolog.Logger) *App {
	return &App{Config: cfg, Log: log, Registry: pattern.NewRegistry()}
}

// Output is an opened sink together with whatever must be released after.
type Output struct {
	driver.Sink
	io.Closer
	// Hold keeps the sink open after a static pattern until the context ends.
	Hold bool
}

type closerFunc func() error

func (f closerFunc) Close() error { return f() }

// BuildPattern creates the configured pattern through the registry.
func (a *App) BuildPattern() (pattern.Pattern, error) {
	p := a.Config.Pattern
	pat, err := a.Registry.Create(p.Name, a.Config.NumLEDs, p.Options)
	if err != nil {
		return nil, fmt.Errorf("build pattern %q: %w", p.Name, err)
	}
	return pat, nil
}

// OpenSink connects the configured output. The returned context is done
// when the sink itself asks to stop (a quit key on the terminal).
func (a *App) OpenSink(ctx context.Context) (context.Context, *Output, error) {
	kind := a.Config.Driver
	log := logger.Component(a.Log, kind)

	switch kind {
	case "opc":
		c, err := opc.Dial(ctx, a.Config.Address)
		if err != nil {
			return ctx, nil, err
		}
		log.Info().Str("address", c.Address()).Msg("connected")
		return ctx, &Output{Sink: a.limit(c), Closer: c}, nil

	case "sim":
		return ctx, &Output{Sink: fake.New(log), Closer: closerFunc(func() error { return nil })}, nil

	case "spi":
		freq := physic.Frequency(a.Config.SPI.SpeedHz) * physic.Hertz
		d, err := nrz.Open(a.Config.SPI.Dev, a.Config.NumLEDs, freq)
		if err != nil {
			return ctx, nil, err
		}
		log.Info().Stringer("device", d).Msg("opened")
		return ctx, &Output{Sink: a.limit(d), Closer: d}, nil

	case "preview":
		out, err := a.openPreview(log)
		return ctx, out, err

	case "term":
		s, err := term.Open()
		if err != nil {
			return ctx, nil, err
		}
		ctx, cancel := context.WithCancel(ctx)
		go s.Watch(cancel)
		closer := closerFunc(func() error {
			cancel()
			return s.Close()
		})
		return ctx, &Output{Sink: s, Closer: closer, Hold: true}, nil
	}
	return ctx, nil, &driver.UnavailableError{Kind: kind, Err: ErrUnknownDriver}
}

// limit applies the power section to sinks that drive real LEDs.
func (a *App) limit(s driver.Sink) driver.Sink {
	lim := a.Config.Power.Limiter()
	if lim.Enabled() {
		a.Log.Debug().
			Float64("brightness", lim.Brightness).
			Float64("white_cap", lim.WhiteCap).
			Float64("budget_ma", lim.BudgetMilliamps).
			Msg("power limiter on")
	}
	return driver.Limit(s, lim)
}

func (a *App) openPreview(log zerolog.Logger) (*Output, error) {
	addr := a.Config.Preview.Addr
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, &driver.UnavailableError{Kind: "preview", Address: addr, Err: err}
	}

	s := preview.New(log)
	srv := &http.Server{
		Handler:      s.Handler(),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	go func() {
		log.Info().Str("addr", ln.Addr().String()).Msg("preview server starting")
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("preview server stopped")
		}
	}()

	closer := closerFunc(func() error {
		_ = s.Close()
		return srv.Close()
	})
	return &Output{Sink: s, Closer: closer, Hold: true}, nil
}

// Run plays the configured pattern until ctx is done. Cancellation is a
// clean stop and returns nil.
func (a *App) Run(ctx context.Context) error {
	pat, err := a.BuildPattern()
	if err != nil {
		return err
	}

	ctx, out, err := a.OpenSink(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err := out.Close(); err != nil {
			a.Log.Warn().Err(err).Msg("close sink")
		}
	}()

	player := playback.New(out, logger.Component(a.Log, "player"))
	player.FadeIn = a.Config.FadeIn()

	a.Log.Info().
		Str("pattern", a.Config.Pattern.Name).
		Str("driver", a.Config.Driver).
		Int("leds", pat.NumLEDs()).
		Msg("playing")

	err = player.Run(ctx, pat)
	if err == nil && out.Hold {
		<-ctx.Done()
	}
	if err != nil && !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	a.Log.Info().Uint64("frames", player.Pushed()).Msg("stopped")
	return nil
}
