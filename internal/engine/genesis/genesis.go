// Package genesis is the Genesis/Mega Drive protocol engine: a
// bit-banged, TH-level-multiplexed target. The device is
// level-triggered, not clocked — whichever bank matches the host's
// current TH level is presented immediately, plus the four-rising-edge
// six-button detection window.
package genesis

import (
	"time"

	"github.com/retrowired/wiredcore/internal/ctrlmodel"
	"github.com/retrowired/wiredcore/internal/hal"
	wgenesis "github.com/retrowired/wiredcore/internal/wired/genesis"
)

// sixButtonWindow is the time budget within which four TH rising edges
// must land to arm the six-button extension cycle.
const sixButtonWindow = 1600 * time.Microsecond

// IdleGPIOWord is the shadow GPIO register value with no buttons
// pressed on either port: every signal line released (active-low, 1 =
// released) except a shared bus-strap bit (bit 1 / bit 17) that has
// nothing to do with controller state.
const IdleGPIOWord uint32 = 0xFFFDFFFD

// portBase is the bit offset of port p's six Genesis signal lines
// within one 16-bit half of the shadow register. Bit 1 of each half is
// reserved for the strap, so ports start at bit 8.
func portBase(port int) uint { return 8 + uint(port)*16 }

// P1TRPin is the absolute bit position of port 1's TR line in the
// low half of the shadow register.
const P1TRPin = 8 + int(wgenesis.SigTR)

type sixButtonDetector struct {
	edges       int
	windowStart time.Time
	armed       bool
}

func (d *sixButtonDetector) onRisingEdge(now time.Time) {
	if d.edges == 0 || now.Sub(d.windowStart) > sixButtonWindow {
		d.edges = 0
		d.windowStart = now
	}
	d.edges++
	if d.edges >= 4 {
		d.armed = true
	}
}

func (d *sixButtonDetector) reset() { d.edges = 0; d.armed = false }

// Engine drives the Genesis bit-banged protocol for up to two physical
// ports (a third/fourth via TeamPlayer/EA-4Way are multiplexed by the
// same per-port translation at the adapter layer, not here).
type Engine struct {
	delay hal.Delay
	clock hal.Clock

	sixBtn [2]sixButtonDetector
	cycle  [2]int
}

// New returns an engine bound to the given HAL delay/clock primitives.
func New(delay hal.Delay, clock hal.Clock) *Engine {
	return &Engine{delay: delay, clock: clock}
}

// PortCfg satisfies adapter.Engine; Genesis has no per-port peripheral
// allocation beyond the GPIO lines configured at Init.
func (e *Engine) PortCfg(mask uint32) {}

// Reset clears six-button detection state for port, called by the
// supervisor on WIRED_RST.
func (e *Engine) Reset(port int) {
	e.sixBtn[port].reset()
	e.cycle[port] = 0
}

// Poll reproduces one TH-driven half-cycle for port, returning the
// updated 32-bit shadow GPIO register. thHigh is the level the host is
// currently driving; risingEdge reports whether this call represents a
// TH low-to-high transition since the previous poll.
func (e *Engine) Poll(port int, wd *ctrlmodel.WiredData, thHigh, risingEdge bool, now time.Time) uint32 {
	if risingEdge {
		e.sixBtn[port].onRisingEdge(now)
		e.cycle[port]++
	}

	liveHigh := wd.Output[wgenesis.BankTHHigh] | wd.OutputMask[wgenesis.BankTHHigh]
	liveLow := wd.Output[wgenesis.BankTHLow] | wd.OutputMask[wgenesis.BankTHLow]
	liveSix := wd.Output[wgenesis.BankSix] | wd.OutputMask[wgenesis.BankSix]

	var bank uint8
	switch {
	case !thHigh && e.sixBtn[port].armed && e.cycle[port]%4 == 2:
		bank = liveSix & 0x0F
	case !thHigh && e.cycle[port]%4 == 1:
		bank = liveLow &^ 0x0F // cycle 2, TH low: low nibble forced 0000, signals 6BT capability
	case thHigh:
		bank = liveHigh
	default:
		bank = liveLow
	}

	word := IdleGPIOWord
	base := portBase(port)
	word &^= 0x3F << base
	word |= uint32(bank&0x3F) << base
	wd.FrameCnt++
	return word
}
