// Package pce is the PC Engine / TurboGrafx protocol engine: the
// host-driven SEL/CLR cycle selector that multiplexes the translator's
// three button banks onto one data nibble, plus the 5-port multitap
// selector.
package pce

import (
	"github.com/retrowired/wiredcore/internal/ctrlmodel"
	wpce "github.com/retrowired/wiredcore/internal/wired/pce"
)

// Engine drives the PCE SEL/CLR-multiplexed data nibble for up to 5
// logical ports (direct port + 4 multitap sub-ports).
type Engine struct {
	bank    wpce.Bank
	tapPort int
}

func New() *Engine { return &Engine{} }

// PortCfg satisfies adapter.Engine; PCE has no per-port peripheral
// allocation beyond the GPIO lines configured at Init.
func (e *Engine) PortCfg(mask uint32) {}

// SelectTap addresses one of up to 5 multitap sub-ports; a
// direct-connected pad ignores this.
func (e *Engine) SelectTap(port int) {
	e.tapPort = port
}

// SetLines updates the host-driven SEL/CLR select lines, returning the
// bank the next nibble read should answer with (the 2-line
// cycle selector: SEL low + CLR low selects the extension cycle on a
// 6-button pad; SEL toggling alone alternates the standard two banks).
func (e *Engine) SetLines(sel, clr bool) wpce.Bank {
	switch {
	case !clr:
		e.bank = wpce.Bank3456
	case sel:
		e.bank = wpce.BankURDL
	default:
		e.bank = wpce.Bank12SR
	}
	return e.bank
}

// Nibble returns the lower 4 bits of wd's currently-selected bank,
// combined with its turbo overlay, for the host to read. The 12SR
// nibble is the last read of a standard poll cycle, so it advances the
// port's frame counter.
func (e *Engine) Nibble(wd *ctrlmodel.WiredData) byte {
	if e.bank == wpce.Bank12SR {
		wd.FrameCnt++
	}
	return (wd.Output[e.bank] | wd.OutputMask[e.bank]) & 0x0F
}
