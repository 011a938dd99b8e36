package fake

import (
	"bytes"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coreman2200/opcstrip/internal/render"
)

func TestDriverCountsAndLogs(t *testing.T) {
	var buf bytes.Buffer
	d := New(zerolog.New(&buf).Level(zerolog.DebugLevel))

	require.NoError(t, d.PutPixels(render.Frame{{R: 10}, {R: 30, B: 4}}))
	require.NoError(t, d.PutPixels(render.Black(3)))

	assert.Equal(t, 2, d.Count())
	assert.Equal(t, render.Black(3), d.Last())
	assert.Contains(t, buf.String(), `"frame":1`)
	assert.Contains(t, buf.String(), `"avg":[20,0,2]`)
	assert.Contains(t, buf.String(), `"first":[10,0,0]`)
}

func TestDriverEmptyFrame(t *testing.T) {
	d := New(zerolog.Nop())
	require.NoError(t, d.PutPixels(render.Frame{}))
	assert.Equal(t, 1, d.Count())
	assert.Empty(t, d.Last())
}

func TestDriverLastIsCopy(t *testing.T) {
	d := New(zerolog.Nop())
	frame := render.Frame{{R: 1}}
	require.NoError(t, d.PutPixels(frame))
	frame[0].R = 99
	assert.Equal(t, render.Frame{{R: 1}}, d.Last())
}

func TestDriverError(t *testing.T) {
	boom := errors.New("boom")
	d := &Driver{Log: zerolog.Nop(), Err: boom}
	assert.ErrorIs(t, d.PutPixels(render.Black(1)), boom)
	assert.Equal(t, 0, d.Count())
}
