// Package snes is the SNES/Famicom npiso shift-register protocol
// engine: a latch-then-clock bit-banged state machine, plus the
// slot-2 multitap controller-select sequencing.
package snes

import "github.com/retrowired/wiredcore/internal/ctrlmodel"

// wordBits is the number of clock pulses a real pad's shift register
// answers before idling high; most emulators clock 16 even though only
// 12 buttons are defined (npiso_map.buttons is a uint16).
const wordBits = 16

// Engine drives the SNES/Famicom latch/clock line protocol for up to 5
// logical ports (direct port + 4 multitap sub-ports).
type Engine struct {
	bit       [5]int
	tapSelect int // addressed multitap sub-port (1..4), or 0 for the direct port
}

func New() *Engine { return &Engine{} }

// PortCfg satisfies adapter.Engine; SNES has no per-port peripheral
// allocation beyond the GPIO lines configured at Init.
func (e *Engine) PortCfg(mask uint32) {}

// Latch resets port's bit cursor to the start of the word, mirroring
// the real pad's behavior on the host's latch pulse (the button state
// is re-sampled and frozen for the upcoming clock sequence).
func (e *Engine) Latch(port int) {
	e.bit[port] = 0
}

// SelectTap addresses one of the four multitap sub-ports (1..4); a
// direct-connected port ignores this.
func (e *Engine) SelectTap(sub int) {
	if sub < 0 || sub > 4 {
		return
	}
	e.tapSelect = sub
}

// Clock returns the next data-line level for port and advances its bit
// cursor. Past wordBits clocks, the line idles high (real
// hardware keeps shifting out 1s once CntMask-defined buttons run out).
func (e *Engine) Clock(port int, wd *ctrlmodel.WiredData) bool {
	bit := e.bit[port]
	e.bit[port]++
	if bit >= wordBits {
		e.bit[port] = wordBits + 1
		return true
	}
	if e.bit[port] == wordBits {
		wd.FrameCnt++
	}
	// Active-low word: OR-combine with the turbo overlay.
	word := (uint16(wd.Output[0]) | uint16(wd.Output[1])<<8) |
		(uint16(wd.OutputMask[0]) | uint16(wd.OutputMask[1])<<8)
	return word&(1<<uint(bit)) != 0
}

// ClockMultitap is the multitap variant of Clock: it reads from
// whichever sub-pad SelectTap last addressed, out of up to 4 tap
// buffers plus the direct port's own buffer at index 0.
func (e *Engine) ClockMultitap(direct *ctrlmodel.WiredData, taps [4]*ctrlmodel.WiredData) bool {
	if e.tapSelect == 0 {
		return e.Clock(0, direct)
	}
	return e.Clock(e.tapSelect, taps[e.tapSelect-1])
}
