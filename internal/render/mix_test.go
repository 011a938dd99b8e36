package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLerp(t *testing.T) {
	var cases = []struct {
		Current Color
		Goal    Color
		P       float64
		Expect  Color
	}{
		{Color{0, 0, 0}, Color{100, 100, 100}, 0.5, Color{50, 50, 50}},
		{Color{0, 0, 0}, Color{100, 100, 100}, 0.1, Color{10, 10, 10}},
		{Color{0, 50, 100}, Color{100, 100, 100}, 0.5, Color{50, 75, 100}},
		{Color{0, 0, 0}, Color{100, 100, 100}, 1.2, Color{120, 120, 120}},
		{Color{0, 0, 0}, Color{100, 100, 100}, -0.5, Color{-50, -50, -50}},
		{Color{10, 20, 30}, Color{200, 100, 0}, 0, Color{10, 20, 30}},
		{Color{10, 20, 30}, Color{200, 100, 0}, 1, Color{200, 100, 0}},
	}
	for _, v := range cases {
		got := Lerp(v.Current, v.Goal, v.P)
		assert.InDelta(t, v.Expect.R, got.R, 1e-9)
		assert.InDelta(t, v.Expect.G, got.G, 1e-9)
		assert.InDelta(t, v.Expect.B, got.B, 1e-9)
	}
}

func TestFillAndBlack(t *testing.T) {
	assert.Equal(t, Frame{{1, 2, 3}, {1, 2, 3}}, Fill(Color{1, 2, 3}, 2))
	assert.Equal(t, Frame{{}, {}, {}}, Black(3))
	assert.Empty(t, Black(0))
	assert.Empty(t, Black(-4))
}

func TestRGB8(t *testing.T) {
	r, g, b := Color{-20, 127.6, 300}.RGB8()
	assert.Equal(t, uint8(0), r)
	assert.Equal(t, uint8(128), g)
	assert.Equal(t, uint8(255), b)
}
