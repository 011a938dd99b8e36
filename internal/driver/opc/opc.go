// Package opc pushes frames to an Open Pixel Control server such as fcserver.
package opc

import (
	"context"
	"encoding/binary"
	"fmt"
	"net"
	"strconv"

	"github.com/coreman2200/opcstrip/internal/driver"
	"github.com/coreman2200/opcstrip/internal/render"
)

const (
	// DefaultPort is the port fcserver listens on.
	DefaultPort = 7890

	cmdSetPixels byte = 0
	headerLen         = 4
	maxPayload        = 0xFFFF
)

// Client is a connected OPC sink writing to a single channel.
type Client struct {
	conn    net.Conn
	address string
	channel byte
}

var _ driver.Sink = (*Client)(nil)

// Dial connects to address ("host" or "host:port"). Connection failures are
// reported as *driver.UnavailableError.
func Dial(ctx context.Context, address string) (*Client, error) {
	addr := withDefaultPort(address)
	var d net.Dialer
	conn, err := d.DialContext(ctx, "tcp", addr)
	if err != nil {
		return nil, &driver.UnavailableError{Kind: "opc", Address: addr, Err: err}
	}
	return &Client{conn: conn, address: addr}, nil
}

func withDefaultPort(address string) string {
	if address == "" {
		address = "localhost"
	}
	if _, _, err := net.SplitHostPort(address); err == nil {
		return address
	}
	return net.JoinHostPort(address, strconv.Itoa(DefaultPort))
}

// Address is the resolved host:port the client dialed.
func (c *Client) Address() string { return c.address }

// PutPixels sends one "set pixel colours" message.
func (c *Client) PutPixels(frame render.Frame) error {
	msg, err := Message(c.channel, frame)
	if err != nil {
		return err
	}
	if _, err := c.conn.Write(msg); err != nil {
		return fmt.Errorf("opc write to %s: %w", c.address, err)
	}
	return nil
}

func (c *Client) Close() error {
	return c.conn.Close()
}

// Message encodes frame as an OPC packet: channel, command, big-endian
// payload length, then one R, G, B triple per pixel.
func Message(channel byte, frame render.Frame) ([]byte, error) {
	payload := driver.Encode(frame)
	if len(payload) > maxPayload {
		return nil, fmt.Errorf("opc frame of %d pixels exceeds the %d byte message limit", len(frame), maxPayload)
	}
	msg := make([]byte, headerLen, headerLen+len(payload))
	msg[0] = channel
	msg[1] = cmdSetPixels
	binary.BigEndian.PutUint16(msg[2:4], uint16(len(payload)))
	return append(msg, payload...), nil
}
