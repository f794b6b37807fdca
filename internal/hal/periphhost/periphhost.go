// Package periphhost backs internal/hal with real periph.io/x/conn
// connections on a host that has GPIO/SPI/I2C exposed (e.g. a Linux
// SBC bridging to the actual controller-port electrical lines). It is
// the production counterpart to internal/hal/hostsim.
package periphhost

import (
	"fmt"
	"time"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
	"periph.io/x/conn/v3/spi/spireg"
	"periph.io/x/host/v3"

	"github.com/retrowired/wiredcore/internal/hal"
)

// Init loads all periph.io host drivers. Call once before opening any
// pin/bus by name.
func Init() error {
	_, err := host.Init()
	return err
}

// pin adapts a periph.io/x/conn/v3/gpio.PinIO to hal.Pin.
type pin struct {
	p gpio.PinIO
}

// OpenPin resolves a GPIO line by its periph.io name (e.g. "GPIO17")
// and returns it as a hal.Pin.
func OpenPin(name string) (hal.Pin, error) {
	p := gpioreg.ByName(name)
	if p == nil {
		return nil, fmt.Errorf("periphhost: unknown pin %q", name)
	}
	return &pin{p: p}, nil
}

func (g *pin) Out(l hal.Level) error {
	return g.p.Out(gpio.Level(l))
}

func (g *pin) Read() hal.Level {
	return hal.Level(g.p.Read())
}

func (g *pin) WaitForEdge(edge hal.Edge, timeout time.Duration) bool {
	var e gpio.Edge
	switch edge {
	case hal.RisingEdge:
		e = gpio.RisingEdge
	case hal.FallingEdge:
		e = gpio.FallingEdge
	default:
		e = gpio.BothEdges
	}
	if err := g.p.In(gpio.PullNoChange, e); err != nil {
		return false
	}
	return g.p.WaitForEdge(timeout)
}

// spiSlave adapts a periph.io/x/conn/v3/spi.Conn for the engines that
// need to stage a reply buffer ahead of a host-driven transaction.
type spiSlave struct {
	conn spi.Conn
	last []byte
}

// OpenSPI resolves an SPI port by its periph.io name and opens it in
// the given mode/speed/bits.
func OpenSPI(name string, speedHz int64, bits int) (hal.SPISlave, error) {
	port, err := spireg.Open(name)
	if err != nil {
		return nil, err
	}
	conn, err := port.Connect(physic.Frequency(speedHz)*physic.Hertz, spi.Mode0, bits)
	if err != nil {
		return nil, err
	}
	return &spiSlave{conn: conn}, nil
}

func (s *spiSlave) Load(data []byte) error {
	s.last = append([]byte(nil), data...)
	return nil
}

func (s *spiSlave) RecvFrame(timeout time.Duration) ([]byte, bool) {
	rx := make([]byte, len(s.last))
	if err := s.conn.Tx(s.last, rx); err != nil {
		return nil, false
	}
	return rx, true
}

// i2cSlave adapts a periph.io/x/conn/v3/i2c.Dev for the Wii engine's
// register-mapped slave contract.
type i2cSlave struct {
	dev *i2c.Dev

	onWrite func(reg, val uint8)
	onRead  func(reg uint8) uint8
}

// OpenI2C resolves an I2C bus by its periph.io name and binds a device
// address to it.
func OpenI2C(name string, addr uint16) (hal.I2CSlave, error) {
	bus, err := i2creg.Open(name)
	if err != nil {
		return nil, err
	}
	return &i2cSlave{dev: &i2c.Dev{Bus: bus, Addr: addr}}, nil
}

func (s *i2cSlave) OnWrite(reg uint8, val uint8) {
	if s.onWrite != nil {
		s.onWrite(reg, val)
	}
}

func (s *i2cSlave) OnRead(reg uint8) uint8 {
	if s.onRead != nil {
		return s.onRead(reg)
	}
	return 0xFF
}
