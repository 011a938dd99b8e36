package playback

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coreman2200/opcstrip/internal/pattern"
	"github.com/coreman2200/opcstrip/internal/render"
)

type fakeClock struct {
	t      time.Time
	sleeps []time.Duration
}

func (c *fakeClock) now() time.Time { return c.t }

func (c *fakeClock) sleep(ctx context.Context, d time.Duration) error {
	c.sleeps = append(c.sleeps, d)
	if err := ctx.Err(); err != nil {
		return err
	}
	if d > 0 {
		c.t = c.t.Add(d)
	}
	return nil
}

// recordingSink keeps every frame and runs onPush after storing it.
type recordingSink struct {
	frames []render.Frame
	onPush func(n int) error
}

func (s *recordingSink) PutPixels(f render.Frame) error {
	s.frames = append(s.frames, append(render.Frame(nil), f...))
	if s.onPush != nil {
		return s.onPush(len(s.frames))
	}
	return nil
}

func newTestPlayer(sink *recordingSink) (*Player, *fakeClock) {
	clock := &fakeClock{t: time.Unix(1700000000, 0)}
	p := New(sink, zerolog.Nop())
	p.now = clock.now
	p.sleep = clock.sleep
	return p, clock
}

func mustScroll(t *testing.T, speed int) *pattern.Scroll {
	t.Helper()
	s, err := pattern.NewScroll([]string{"#FF0000", "#00FF00", "#0000FF"}, speed, 6)
	require.NoError(t, err)
	return s
}

func TestRunStatic(t *testing.T) {
	sink := &recordingSink{}
	p, clock := newTestPlayer(sink)

	solid, err := pattern.NewSolidColor("#ABCDEF", 4)
	require.NoError(t, err)

	require.NoError(t, p.Run(context.Background(), solid))

	require.Len(t, sink.frames, 3)
	assert.Equal(t, render.Black(4), sink.frames[0])
	assert.Equal(t, render.Black(4), sink.frames[1])
	assert.Equal(t, render.Fill(render.Color{R: 171, G: 205, B: 239}, 4), sink.frames[2])
	assert.Equal(t, []time.Duration{DefaultFadeIn}, clock.sleeps)
	assert.EqualValues(t, 3, p.Pushed())
}

func TestRunDynamicPacing(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sink := &recordingSink{onPush: func(n int) error {
		if n == 5 {
			cancel()
		}
		return nil
	}}
	p, clock := newTestPlayer(sink)
	p.FadeIn = time.Second

	err := p.Run(ctx, mustScroll(t, 4))
	require.ErrorIs(t, err, context.Canceled)

	want := mustScroll(t, 4)
	require.Len(t, sink.frames, 5)
	assert.Equal(t, render.Black(6), sink.frames[0])
	assert.Equal(t, render.Black(6), sink.frames[1])
	for i := 2; i < 5; i++ {
		assert.Equal(t, want.Advance(), sink.frames[i], "frame %d", i)
	}

	tick := 250 * time.Millisecond
	assert.Equal(t, []time.Duration{time.Second, tick, tick, tick}, clock.sleeps)
}

func TestRunSubtractsRenderTime(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sink := &recordingSink{}
	p, clock := newTestPlayer(sink)
	sink.onPush = func(n int) error {
		clock.t = clock.t.Add(100 * time.Millisecond)
		if n == 6 {
			cancel()
		}
		return nil
	}

	require.ErrorIs(t, p.Run(ctx, mustScroll(t, 4)), context.Canceled)

	require.Len(t, clock.sleeps, 5)
	for _, d := range clock.sleeps[1:] {
		assert.Equal(t, 150*time.Millisecond, d)
	}
}

func TestRunResyncsWhenBehind(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sink := &recordingSink{}
	p, clock := newTestPlayer(sink)
	sink.onPush = func(n int) error {
		if n == 3 {
			clock.t = clock.t.Add(2 * time.Second)
		}
		if n == 6 {
			cancel()
		}
		return nil
	}

	require.ErrorIs(t, p.Run(ctx, mustScroll(t, 4)), context.Canceled)

	tick := 250 * time.Millisecond
	assert.Equal(t, []time.Duration{DefaultFadeIn, 0, tick, tick, tick}, clock.sleeps)
}

func TestRunStrobeUsesStrobeSpeed(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sink := &recordingSink{onPush: func(n int) error {
		if n == 4 {
			cancel()
		}
		return nil
	}}
	p, clock := newTestPlayer(sink)

	off := pattern.NewOff(3)
	strobe, err := pattern.NewStrobe(off, 20)
	require.NoError(t, err)

	require.ErrorIs(t, p.Run(ctx, strobe), context.Canceled)
	assert.Equal(t, 50*time.Millisecond, clock.sleeps[1])
}

func TestRunSinkError(t *testing.T) {
	boom := errors.New("connection reset")
	sink := &recordingSink{onPush: func(n int) error {
		if n == 3 {
			return boom
		}
		return nil
	}}
	p, _ := newTestPlayer(sink)

	err := p.Run(context.Background(), mustScroll(t, 8))
	require.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "push frame 3")
	assert.Len(t, sink.frames, 3)
	assert.EqualValues(t, 2, p.Pushed(), "the failed frame never reached the sink")
}

func TestRunBlankingError(t *testing.T) {
	boom := errors.New("closed")
	sink := &recordingSink{onPush: func(int) error { return boom }}
	p, clock := newTestPlayer(sink)

	err := p.Run(context.Background(), pattern.NewOff(2))
	require.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "push frame 1")
	assert.Zero(t, p.Pushed())
	assert.Len(t, sink.frames, 1)
	assert.Empty(t, clock.sleeps)
}

func TestRunCancelledDuringFadeIn(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	sink := &recordingSink{}
	p := New(sink, zerolog.Nop())

	solid, err := pattern.NewSolidColor("#FFFFFF", 2)
	require.NoError(t, err)

	require.ErrorIs(t, p.Run(ctx, solid), context.Canceled)
	assert.Len(t, sink.frames, 2)
}

func TestRunRealClock(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	sink := &recordingSink{}
	p := New(sink, zerolog.Nop())
	p.FadeIn = 0

	err := p.Run(ctx, mustScroll(t, 200))
	require.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Greater(t, len(sink.frames), 3)
}

func TestSleepCtx(t *testing.T) {
	assert.NoError(t, sleepCtx(context.Background(), 0))
	assert.NoError(t, sleepCtx(context.Background(), time.Millisecond))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, sleepCtx(ctx, time.Hour), context.Canceled)
}
