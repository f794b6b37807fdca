// Package n64 is the Nintendo 64 protocol engine (RMT-class):
// command dispatch for identity/status, button+stick polling, and the
// memory-pak/rumble-pak accessory block read/write protocol, including
// the bank-select slot-status latch.
package n64

import (
	"github.com/retrowired/wiredcore/internal/ctrlmodel"
	"github.com/retrowired/wiredcore/internal/feedback"
	"github.com/retrowired/wiredcore/internal/memcard"
)

// AccMode selects which accessory, if any, is emulated in the
// controller pak slot.
type AccMode int

const (
	AccNone AccMode = iota
	AccRumble
	AccMemPak
)

// Identity and status bytes.
const (
	IDLo         byte = 0x05
	IDHi         byte = 0x00
	SlotOccupied byte = 0x01
	SlotEmpty    byte = 0x02
	SlotChange   byte = 0x03
)

// rumbleProbeAddr is the special accessory-probe write address used to
// toggle rumble state when AccRumble is selected.
const rumbleProbeAddr = 0xC000

// Engine drives the N64 RMT-class protocol for up to 4 physical ports.
type Engine struct {
	mc *memcard.Store
	fb *feedback.Router

	bank          uint8
	accMode       [4]AccMode
	pendingChange [4]bool
}

// New returns an engine backed by the given memory-card store and
// feedback router.
func New(mc *memcard.Store, fb *feedback.Router) *Engine {
	return &Engine{mc: mc, fb: fb}
}

// PortCfg satisfies adapter.Engine; N64 has no per-port peripheral
// allocation beyond the RMT channel configured at Init.
func (e *Engine) PortCfg(mask uint32) {}

// SetAccMode changes port's accessory; a transition to AccNone latches
// a one-shot SlotChange status on the next identity poll. Removal is
// reported as CHANGE once; insertion is reflected immediately as the
// new steady status.
func (e *Engine) SetAccMode(port int, mode AccMode) {
	old := e.accMode[port]
	if mode == AccNone && old != AccNone {
		e.pendingChange[port] = true
	}
	e.accMode[port] = mode
}

// SetBank changes the global mempak bank-select (0..3); any change
// latches a pending CHANGE status on every port so the console
// re-probes the pak.
func (e *Engine) SetBank(bank uint8) {
	bank &= memcard.NumBanks - 1
	if bank != e.bank {
		for p := range e.pendingChange {
			e.pendingChange[p] = true
		}
	}
	e.bank = bank
}

func (e *Engine) status(port int) byte {
	if e.pendingChange[port] {
		e.pendingChange[port] = false
		return SlotChange
	}
	if e.accMode[port] == AccNone {
		return SlotEmpty
	}
	return SlotOccupied
}

// cardOffset maps a bus address onto the selected 32 KiB bank. The
// address bus is wider than the pak: bit 15 is a mirror/command bit
// the real hardware ignores for storage, so only the low 15 bits
// select a card byte.
func (e *Engine) cardOffset(addr uint32) uint32 {
	return uint32(e.bank)*memcard.BankSize + (addr & (memcard.BankSize - 1))
}

// mempakCRC implements the documented N64 controller-pak data CRC8
// (polynomial 0x85): every accessory block read/write reply carries one
// of these as its final byte.
func mempakCRC(data []byte) byte {
	var crc byte
	for i := 0; i <= len(data); i++ {
		for m := byte(0x80); m != 0; m >>= 1 {
			var xorTap byte
			if crc&0x80 != 0 {
				xorTap = 0x85
			}
			crc <<= 1
			if i < len(data) && data[i]&m != 0 {
				crc |= 1
			}
			crc ^= xorTap
		}
	}
	return crc
}

// HandleCommand dispatches one command byte sequence for port against
// wd (the translator-maintained button/stick buffer). Returns the reply
// payload (CRC already appended where the protocol calls for one) and
// whether a reply should be transmitted at all — 0x1D (game-ID capture)
// sends no reply.
func (e *Engine) HandleCommand(port int, wd *ctrlmodel.WiredData, cmd []byte) ([]byte, bool) {
	if len(cmd) == 0 {
		return nil, false
	}
	switch cmd[0] {
	case 0x00, 0xFF:
		return []byte{IDLo, IDHi, e.status(port)}, true

	case 0x01:
		wd.FrameCnt++
		// Button bytes are active-high: AND-combine with the turbo overlay.
		return []byte{wd.Output[0] & wd.OutputMask[0], wd.Output[1] & wd.OutputMask[1], wd.Output[2], wd.Output[3]}, true

	case 0x02:
		if len(cmd) < 3 {
			return []byte{0xFF}, true
		}
		addr := (uint32(cmd[1])<<8 | uint32(cmd[2])) &^ 0x1F
		data := make([]byte, 32)
		if e.accMode[port] != AccRumble {
			e.mc.Read(e.cardOffset(addr), data)
		}
		// Rumble mode reads back zeros; the rumble-pak identification
		// probe addresses are left unanswered.
		return append(data, mempakCRC(data)), true

	case 0x03:
		if len(cmd) < 35 {
			return []byte{0xFF}, true
		}
		addr := (uint32(cmd[1])<<8 | uint32(cmd[2])) &^ 0x1F
		data := cmd[3:35]
		if e.accMode[port] == AccRumble && addr == rumbleProbeAddr {
			state := byte(0)
			if data[0] != 0 {
				state = 1
			}
			e.fb.Push(feedback.RawFeedback{WiredID: port, Kind: feedback.KindRumble, Data: []byte{state}})
		} else {
			e.mc.Write(e.cardOffset(addr), data)
		}
		return []byte{mempakCRC(data)}, true

	case 0x1D:
		if len(cmd) > 1 {
			e.fb.Push(feedback.RawFeedback{WiredID: port, Kind: feedback.KindGameID, Data: append([]byte(nil), cmd[1:]...)})
		}
		return nil, false

	default:
		// UnknownCommand recovery: "N64: occupied-slot stub".
		return []byte{IDLo, IDHi, SlotOccupied}, true
	}
}
