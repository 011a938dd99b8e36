// Package nrz drives WS281x strips directly from an SPI port using the NRZ
// encoder in periph.io.
package nrz

import (
	"fmt"

	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
	"periph.io/x/conn/v3/spi/spireg"
	"periph.io/x/devices/v3/nrzled"
	"periph.io/x/host/v3"

	"github.com/coreman2200/opcstrip/internal/driver"
	"github.com/coreman2200/opcstrip/internal/render"
)

// DefaultFreq suits WS2812 strips (800 kHz data rate, 3 SPI bits per bit).
const DefaultFreq = 2400 * physic.KiloHertz

// Driver writes frames to an nrzled device.
type Driver struct {
	dev     *nrzled.Dev
	closer  func() error
	numLEDs int
}

var _ driver.Sink = (*Driver)(nil)

// Open initialises the host, opens the named SPI port ("" for the first one)
// and prepares an encoder for numLEDs pixels.
func Open(dev string, numLEDs int, freq physic.Frequency) (*Driver, error) {
	if _, err := host.Init(); err != nil {
		return nil, &driver.UnavailableError{Kind: "spi", Address: dev, Err: err}
	}
	p, err := spireg.Open(dev)
	if err != nil {
		return nil, &driver.UnavailableError{Kind: "spi", Address: dev, Err: err}
	}
	d, err := New(p, numLEDs, freq)
	if err != nil {
		_ = p.Close()
		return nil, &driver.UnavailableError{Kind: "spi", Address: dev, Err: err}
	}
	d.closer = p.Close
	return d, nil
}

// New wraps an already opened port.
func New(p spi.Port, numLEDs int, freq physic.Frequency) (*Driver, error) {
	if freq == 0 {
		freq = DefaultFreq
	}
	n := max(numLEDs, 0)
	dev, err := nrzled.NewSPI(p, &nrzled.Opts{NumPixels: n, Channels: 3, Freq: freq})
	if err != nil {
		return nil, fmt.Errorf("nrzled: %w", err)
	}
	return &Driver{dev: dev, numLEDs: n}, nil
}

func (d *Driver) String() string { return d.dev.String() }

func (d *Driver) PutPixels(frame render.Frame) error {
	if len(frame) != d.numLEDs {
		return fmt.Errorf("frame of %d pixels does not match strip of %d", len(frame), d.numLEDs)
	}
	if _, err := d.dev.Write(driver.Encode(frame)); err != nil {
		return fmt.Errorf("nrzled write: %w", err)
	}
	return nil
}

// Close turns the strip off and releases the port if Open acquired it.
func (d *Driver) Close() error {
	err := d.dev.Halt()
	if d.closer != nil {
		if cerr := d.closer(); err == nil {
			err = cerr
		}
	}
	return err
}
