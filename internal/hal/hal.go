// Package hal defines the abstract peripheral contract the protocol
// engines are written against. The MCU peripheral
// programming details (RMT, SPI slave, I2C slave, UART, GPIO) are out
// of scope as implementations; only the contract — edge-triggered
// interrupts, byte/frame DMA, precise delay primitives — appears here.
// Production backends (internal/hal/periphhost) satisfy it with real
// periph.io/x/conn connections; internal/hal/hostsim satisfies it with
// an in-memory double used by tests and the cmd/wiredbench harness.
package hal

import "time"

// Level is a GPIO line level.
type Level bool

const (
	Low  Level = false
	High Level = true
)

// Edge identifies which GPIO transition an engine wants to wait for.
type Edge int

const (
	NoEdge Edge = iota
	RisingEdge
	FallingEdge
	BothEdges
)

// Pin is the GPIO contract a bit-banged engine drives directly:
// direction/level control and edge-triggered interrupt waiting. Shaped
// to be trivially backed by periph.io/x/conn/v3/gpio.PinIO
// (Out/Read/WaitForEdge) in the periphhost backend.
type Pin interface {
	Out(l Level) error
	Read() Level
	// WaitForEdge blocks until edge occurs or timeout elapses, returning
	// false on timeout — the edge-triggered-interrupt contract.
	WaitForEdge(edge Edge, timeout time.Duration) bool
}

// SPISlave is the contract for peripheral-assisted engines (PSX, PCFX,
// Dreamcast, SNES) that load a reply buffer for the host to clock out.
// Shaped to be backed by periph.io/x/conn/v3/spi in the periphhost
// backend.
type SPISlave interface {
	// Load stages bytes to be returned on the next host-driven
	// transaction.
	Load(data []byte) error
	// RecvFrame blocks until the host completes a transaction, returning
	// the bytes the host clocked in.
	RecvFrame(timeout time.Duration) ([]byte, bool)
}

// I2CSlave is the contract for the Wii engine's register-mapped I2C
// slave device (OnWrite/OnRead register hooks). Shaped to be
// backed by periph.io/x/conn/v3/i2c in the periphhost backend.
type I2CSlave interface {
	OnWrite(reg uint8, val uint8)
	OnRead(reg uint8) uint8
}

// RMTItem is one (low,high) pulse pair of an RMT-class DMA transmission
// matching the N64 pulse-pair bit encoding.
type RMTItem struct {
	LowUs, HighUs uint32
}

// RMTChannel is the contract for the N64/GC engines' DMA-driven pulse
// encoding.
type RMTChannel interface {
	Send(items []RMTItem) error
}

// UART is the byte-serial contract for the C-di/JVS engines.
type UART interface {
	RecvByte(timeout time.Duration) (b byte, ok bool)
	SendByte(b byte)
}

// Delay is the precise timing contract every engine needs: a spin-wait
// primitive and the "stall the other core" primitive used by
// bit-banged engines to guarantee deterministic cycle counts for one
// protocol frame. Stall must be released between frames.
type Delay interface {
	DelayUs(n uint32)
	CoreStallStart()
	CoreStallEnd()
}

// Clock returns the current monotonic time, used by engines to
// implement POLL_TIMEOUT-style iteration counters.
type Clock interface {
	Now() time.Time
}
