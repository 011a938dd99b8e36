// Package playback drives a pattern into a sink: blank the strip, pause,
// then either push one static frame or keep pushing dynamic frames at the
// pattern's speed until the context is done.
package playback

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/coreman2200/opcstrip/internal/driver"
	"github.com/coreman2200/opcstrip/internal/pattern"
	"github.com/coreman2200/opcstrip/internal/render"
)

// DefaultFadeIn is the pause after blanking, before the first pattern frame.
const DefaultFadeIn = 500 * time.Millisecond

const blankFrames = 2

// Player pushes one pattern's frames to a sink.
type Player struct {
	FadeIn time.Duration

	sink driver.Sink
	log  zerolog.Logger

	now    func() time.Time
	sleep  func(context.Context, time.Duration) error
	pushed uint64
}

// New returns a player with DefaultFadeIn and the wall clock.
func New(sink driver.Sink, log zerolog.Logger) *Player {
	return &Player{
		FadeIn: DefaultFadeIn,
		sink:   sink,
		log:    log,
		now:    time.Now,
		sleep:  sleepCtx,
	}
}

// Pushed reports how many frames reached the sink.
func (p *Player) Pushed() uint64 { return p.pushed }

// Run plays pat. A static pattern returns nil after its single frame; a
// dynamic one only returns on cancellation (ctx.Err()) or a sink failure.
func (p *Player) Run(ctx context.Context, pat pattern.Pattern) error {
	n := pat.NumLEDs()
	p.log.Debug().Int("leds", n).Msg("blanking strip")
	for i := 0; i < blankFrames; i++ {
		if err := p.push(render.Black(n)); err != nil {
			return err
		}
	}

	p.log.Debug().Dur("fade_in", p.FadeIn).Msg("fade in")
	if err := p.sleep(ctx, p.FadeIn); err != nil {
		return err
	}

	dyn, ok := pat.(pattern.Dynamic)
	if !ok {
		if err := p.push(pat.Advance()); err != nil {
			return err
		}
		p.log.Debug().Msg("static frame pushed")
		return nil
	}
	return p.loop(ctx, pat, interval(dyn.Speed()))
}

func (p *Player) loop(ctx context.Context, pat pattern.Pattern, tick time.Duration) error {
	p.log.Debug().Dur("interval", tick).Msg("dynamic loop")

	start := p.now()
	var k time.Duration
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := p.push(pat.Advance()); err != nil {
			return err
		}

		k++
		wait := start.Add(k * tick).Sub(p.now())
		if wait < -tick {
			p.log.Debug().Dur("behind", -wait).Msg("resync")
			start, k, wait = p.now(), 0, 0
		}
		if err := p.sleep(ctx, wait); err != nil {
			return err
		}
	}
}

func (p *Player) push(frame render.Frame) error {
	if err := p.sink.PutPixels(frame); err != nil {
		return fmt.Errorf("push frame %d: %w", p.pushed+1, err)
	}
	p.pushed++
	return nil
}

func interval(speed int) time.Duration {
	if speed <= 0 {
		speed = pattern.DefaultSpeed
	}
	return time.Second / time.Duration(speed)
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
