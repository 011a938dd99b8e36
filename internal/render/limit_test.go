package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var white = Color{R: 255, G: 255, B: 255}

func TestLimiterZeroValue(t *testing.T) {
	var l Limiter
	assert.False(t, l.Enabled())

	in := Frame{white, {R: 10}}
	out := l.Apply(in)
	assert.Equal(t, in, out)

	out[0] = Color{}
	assert.Equal(t, white, in[0], "Apply must not alias its input")
}

func TestLimiterBrightness(t *testing.T) {
	l := Limiter{Brightness: 0.5}
	require.True(t, l.Enabled())
	assert.Equal(t, Frame{{R: 127.5, G: 50, B: 0}}, l.Apply(Frame{{R: 255, G: 100}}))
}

func TestLimiterWhiteCap(t *testing.T) {
	l := Limiter{WhiteCap: 1.5}
	out := l.Apply(Frame{white, {R: 255}})

	sum := out[0].R + out[0].G + out[0].B
	assert.InDelta(t, 1.5*255, sum, 1e-9)
	assert.Equal(t, Color{R: 255}, out[1], "single channel is under the cap")
}

func TestLimiterBudget(t *testing.T) {
	l := Limiter{ChanMilliamps: 20, BudgetMilliamps: 300}
	in := Fill(white, 10)
	require.InDelta(t, 600, l.Current(in), 1e-9)

	out := l.Apply(in)
	// rounding to 8 bits can add up to half a step per channel
	assert.InDelta(t, 300, l.Current(out), 2)
	assert.Len(t, out, 10)
}

func TestLimiterUnderBudget(t *testing.T) {
	l := Limiter{BudgetMilliamps: 1000}
	in := Fill(Color{R: 100}, 4)
	assert.Equal(t, in, l.Apply(in))
}
