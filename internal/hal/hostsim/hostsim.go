// Package hostsim is an in-memory implementation of internal/hal used
// by tests and the cmd/wiredbench harness to drive protocol engines
// without real hardware. Timing primitives are still real: DelayUs
// spins against a monotonic clock via golang.org/x/sys/unix instead of
// time.Sleep, and CoreStall is a real mutual-exclusion primitive via
// golang.org/x/sync/semaphore, matching the production shape of
// internal/hal/periphhost closely enough that engine code never knows
// which backend it's driving.
package hostsim

import (
	"context"
	"time"

	"golang.org/x/sync/semaphore"
	"golang.org/x/sys/unix"

	"github.com/retrowired/wiredcore/internal/hal"
)

// Pin is a software GPIO line: the host and the device side of a
// bit-banged protocol each hold one end and flip/observe Level.
type Pin struct {
	level  hal.Level
	edgeCh chan hal.Edge
}

// NewPin returns a pin idle at Low.
func NewPin() *Pin {
	return &Pin{edgeCh: make(chan hal.Edge, 8)}
}

func (p *Pin) Out(l hal.Level) error {
	if p.level != l {
		if l == hal.High {
			p.signal(hal.RisingEdge)
		} else {
			p.signal(hal.FallingEdge)
		}
	}
	p.level = l
	return nil
}

func (p *Pin) Read() hal.Level { return p.level }

func (p *Pin) signal(e hal.Edge) {
	select {
	case p.edgeCh <- e:
	default:
	}
}

// WaitForEdge blocks until the requested edge (or either edge, for
// BothEdges) occurs or timeout elapses.
func (p *Pin) WaitForEdge(edge hal.Edge, timeout time.Duration) bool {
	deadline := time.After(timeout)
	for {
		select {
		case e := <-p.edgeCh:
			if edge == hal.BothEdges || e == edge {
				return true
			}
		case <-deadline:
			return false
		}
	}
}

// Delay is a host-simulated implementation of hal.Delay: DelayUs
// busy-waits against CLOCK_MONOTONIC so it is accurate independent of
// goroutine scheduling jitter, and CoreStallStart/End acquire a binary
// semaphore modeling "the other core is paused for this frame"; the
// stall must be released between frames.
type Delay struct {
	stall *semaphore.Weighted
}

// NewDelay returns a ready-to-use Delay.
func NewDelay() *Delay {
	return &Delay{stall: semaphore.NewWeighted(1)}
}

// DelayUs busy-waits for n microseconds using a monotonic clock read
// via golang.org/x/sys/unix, matching the spin-wait contract of
// delay_us (a cooperative bit-banged loop cannot block on a
// scheduler timer without risking missed edges).
func (d *Delay) DelayUs(n uint32) {
	var ts unix.Timespec
	_ = unix.ClockGettime(unix.CLOCK_MONOTONIC, &ts)
	start := time.Duration(ts.Sec)*time.Second + time.Duration(ts.Nsec)
	target := start + time.Duration(n)*time.Microsecond
	for {
		_ = unix.ClockGettime(unix.CLOCK_MONOTONIC, &ts)
		now := time.Duration(ts.Sec)*time.Second + time.Duration(ts.Nsec)
		if now >= target {
			return
		}
	}
}

// CoreStallStart blocks the non-wire core for the duration of one
// protocol frame. The stall is released by CoreStallEnd.
func (d *Delay) CoreStallStart() {
	_ = d.stall.Acquire(context.Background(), 1)
}

// CoreStallEnd releases a stall started by CoreStallStart.
func (d *Delay) CoreStallEnd() {
	d.stall.Release(1)
}

// Clock is the hal.Clock implementation used alongside Delay.
type Clock struct{}

func (Clock) Now() time.Time { return time.Now() }
