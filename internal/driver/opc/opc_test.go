package opc

import (
	"context"
	"io"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coreman2200/opcstrip/internal/driver"
	"github.com/coreman2200/opcstrip/internal/render"
)

func TestMessage(t *testing.T) {
	msg, err := Message(0, render.Frame{{R: 255, G: 0, B: 22}, {R: 1, G: 2, B: 3}})
	require.NoError(t, err)
	assert.Equal(t, []byte{0, 0, 0, 6, 255, 0, 22, 1, 2, 3}, msg)

	msg, err = Message(2, render.Frame{})
	require.NoError(t, err)
	assert.Equal(t, []byte{2, 0, 0, 0}, msg)

	_, err = Message(0, render.Black(maxPayload/3+1))
	assert.Error(t, err)
}

func TestWithDefaultPort(t *testing.T) {
	assert.Equal(t, "localhost:7890", withDefaultPort(""))
	assert.Equal(t, "localhost:7890", withDefaultPort("localhost"))
	assert.Equal(t, "10.0.0.2:7890", withDefaultPort("10.0.0.2"))
	assert.Equal(t, "10.0.0.2:9000", withDefaultPort("10.0.0.2:9000"))
}

func TestClientPutPixels(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()

	got := make(chan []byte, 1)
	go func() {
		conn, err := ln.Accept()
		if err != nil {
			return
		}
		defer conn.Close()
		buf := make([]byte, 4+3*3)
		if _, err := io.ReadFull(conn, buf); err != nil {
			return
		}
		got <- buf
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	c, err := Dial(ctx, ln.Addr().String())
	require.NoError(t, err)
	defer c.Close()
	assert.Equal(t, ln.Addr().String(), c.Address())

	frame := render.Frame{{R: 255}, {G: 255}, {B: 255}}
	require.NoError(t, c.PutPixels(frame))

	select {
	case buf := <-got:
		assert.Equal(t, []byte{0, 0, 0, 9, 255, 0, 0, 0, 255, 0, 0, 0, 255}, buf)
	case <-ctx.Done():
		t.Fatal("server never received the frame")
	}
}

func TestDialUnavailable(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := ln.Addr().String()
	require.NoError(t, ln.Close())

	_, err = Dial(context.Background(), addr)
	require.Error(t, err)
	assert.ErrorIs(t, err, driver.ErrSinkUnavailable)

	var unavailable *driver.UnavailableError
	require.ErrorAs(t, err, &unavailable)
	assert.Equal(t, addr, unavailable.Address)
}
