// Package jaguar is the wire-protocol engine for the Atari Jaguar
// controller port: the console strobes one of four row-select lines
// and reads back a
// nibble of the currently-selected bank on the shared data lines. The
// engine holds the four full 32-bit bank words prepared by
// wired/jaguar's translator and exposes them nibble-at-a-time the way
// the real GPIO table does, instead of the translator's whole-bank view.
package jaguar

import "github.com/retrowired/wiredcore/internal/ctrlmodel"

// Engine answers a Jaguar pad's row-strobe/nibble-read cycle.
type Engine struct {
	bank int
}

func New() *Engine { return &Engine{} }

// PortCfg satisfies adapter.Engine; the Jaguar pad has no per-port
// peripheral allocation.
func (e *Engine) PortCfg(mask uint32) {}

// SelectBank latches which of the four output banks subsequent Nibble
// calls read from, mirroring the row-strobe GPIO lines in jag_io.c.
func (e *Engine) SelectBank(bank int) {
	if bank < 0 || bank > 3 {
		return
	}
	e.bank = bank
}

// Nibble returns the low or high half-byte of the selected bank's
// combined (Output OR-ed with the turbo overlay in OutputMask, active-low)
// 32-bit word, matching the real pad's 4-bit-wide data bus.
func (e *Engine) Nibble(wd *ctrlmodel.WiredData, high bool) byte {
	off := e.bank * 4
	b := wd.Output[off] | wd.OutputMask[off]
	if high {
		b = wd.Output[off+1] | wd.OutputMask[off+1]
		return (b >> 4) & 0x0F
	}
	return b & 0x0F
}

// Poll returns all four banks' combined words as a 16-byte frame, for
// callers (tests, cmd/wiredbench) that want the whole-port view rather
// than the real hardware's nibble-serial one.
func (e *Engine) Poll(wd *ctrlmodel.WiredData) []byte {
	wd.FrameCnt++
	out := make([]byte, 16)
	for bank := 0; bank < 4; bank++ {
		off := bank * 4
		for i := 0; i < 4; i++ {
			out[off+i] = wd.Output[off+i] | wd.OutputMask[off+i]
		}
	}
	return out
}
