// Package generic is a consolidated, descriptor-driven translator:
// rather than N near-identical bespoke packages for every
// single-cycle digital pad, one parameterized Descriptor (cycle
// count of one, bank bit-width, axis layout, idle frame) drives the
// shared 32-bit-or-less wire-word mapping algorithm, including its
// collision-mask release rule (releasing one source button must not
// free a target bit another still-held source aliases). Concrete
// per-system Descriptor values live in
// sibling packages (wired/parallel, wired/real3do, wired/gc, wired/wii,
// wired/cdi, wired/pcfx, wired/jvs).
package generic

import (
	"encoding/binary"

	"github.com/retrowired/wiredcore/internal/ctrlmodel"
	"github.com/retrowired/wiredcore/internal/remap"
	"github.com/retrowired/wiredcore/internal/wired"
)

// Unmapped marks a normalized bit with no representation on this target.
const Unmapped uint32 = 0xFFFFFFFF

// highWord is the high-nibble convention: a btns_mask
// entry with this bit set targets the second 32-bit output word
// ("buttons_high"/the GPIO high bank) instead of the first.
const highWord uint32 = 0xF0000000

// AxisSlot places one normalized axis at a fixed byte offset past the
// button word(s), so step 3. OffsetUnused marks an axis this
// target doesn't expose.
const OffsetUnused uint8 = 0xFF

type AxisSlot struct {
	Offset uint8
	Meta   ctrlmodel.CtrlMeta
}

// NoAxes returns an all-unused axis table for digital-only targets; the
// zero value of AxisSlot is Offset 0, which would alias the button
// word, so descriptors with no axes must use this explicitly.
func NoAxes() (out [int(ctrlmodel.AxisCount)]AxisSlot) {
	for i := range out {
		out[i].Offset = OffsetUnused
	}
	return out
}

// Descriptor parameterizes one target's single-cycle digital+analog
// wire layout.
type Descriptor struct {
	Mask ctrlmodel.TargetMask

	// BtnsMask[i] is the target bit normalized bit i asserts: 0..31 for
	// the low word, highWord|0..31 for the high word, or Unmapped.
	BtnsMask [32]uint32

	// ActiveHigh selects the press/release and turbo-combine polarity
	// (OR-combined on active-low wires, AND-combined on
	// active-high wires). false (active-low, press clears the bit) is
	// the more common console convention in this corpus.
	ActiveHigh bool

	HasHigh  bool
	IdleLow  uint32
	IdleHigh uint32

	Axes [int(ctrlmodel.AxisCount)]AxisSlot
}

// Translator is the generic single-cycle translator driven by Descriptor.
type Translator struct {
	Desc Descriptor
}

func New(d Descriptor) *Translator { return &Translator{Desc: d} }

func (t *Translator) MetaInit(ctrl []ctrlmodel.WiredCtrl) {
	for i := range ctrl {
		ctrl[i].Mask = &t.Desc.Mask
		for a := range ctrl[i].Axes {
			if a < len(t.Desc.Axes) && t.Desc.Axes[a].Offset != OffsetUnused {
				ctrl[i].Axes[a].Meta = t.Desc.Axes[a].Meta
			}
		}
	}
}

func (t *Translator) InitBuffer(mode ctrlmodel.DevMode, wd *ctrlmodel.WiredData) {
	// Idle overlay is the combine identity for this polarity: all-1s
	// for AND-combine (active-high), all-0s for OR-combine (active-low).
	var idleMask uint32
	if t.Desc.ActiveHigh {
		idleMask = 0xFFFFFFFF
	}
	binary.LittleEndian.PutUint32(wd.Output[0:4], t.Desc.IdleLow)
	binary.LittleEndian.PutUint32(wd.OutputMask[0:4], idleMask)
	if t.Desc.HasHigh {
		binary.LittleEndian.PutUint32(wd.Output[4:8], t.Desc.IdleHigh)
		binary.LittleEndian.PutUint32(wd.OutputMask[4:8], idleMask)
	}
	for _, slot := range t.Desc.Axes {
		if slot.Offset == OffsetUnused {
			continue
		}
		wd.Output[slot.Offset] = byte(int32(slot.Meta.Neutral))
		wd.OutputMask[slot.Offset] = 0
	}
}

// assertBit applies the press polarity of the descriptor to word's bit b.
func assertBit(word uint32, b uint, activeHigh bool) uint32 {
	if activeHigh {
		return word | (1 << b)
	}
	return word &^ (1 << b)
}

// releaseBit applies the idle polarity.
func releaseBit(word uint32, b uint, activeHigh bool) uint32 {
	if activeHigh {
		return word &^ (1 << b)
	}
	return word | (1 << b)
}

func (t *Translator) FromGeneric(mode ctrlmodel.DevMode, ctrl *ctrlmodel.WiredCtrl, wd *ctrlmodel.WiredData) {
	d := &t.Desc
	low := binary.LittleEndian.Uint32(wd.Output[0:4])
	var high uint32
	if d.HasHigh {
		high = binary.LittleEndian.Uint32(wd.Output[4:8])
	}

	// collideLow/collideHigh: a bit starts "free" (claimable); once a
	// held source asserts it, it stays claimed so a different source
	// releasing its own bit cannot free it out from under the first
	// (step 2's running collision mask).
	var collideLow, collideHigh uint32 = 0xFFFFFFFF, 0xFFFFFFFF

	value := ctrl.Btns[0].Value
	live := ctrl.MapMask[0]
	for bit := uint(0); bit < 32; bit++ {
		tb := d.BtnsMask[bit]
		if tb == Unmapped || live&(1<<bit) == 0 {
			continue
		}
		toHigh := tb&highWord == highWord
		b := uint(tb &^ highWord)
		pressed := value&(1<<bit) != 0

		if pressed {
			wd.CntMask[bit] = ctrl.Btns[0].CntMask[bit]
			if toHigh {
				high = assertBit(high, b, d.ActiveHigh)
				collideHigh &^= 1 << b
			} else {
				low = assertBit(low, b, d.ActiveHigh)
				collideLow &^= 1 << b
			}
			continue
		}
		wd.CntMask[bit] = 0
		if toHigh {
			if collideHigh&(1<<b) != 0 {
				high = releaseBit(high, b, d.ActiveHigh)
			}
		} else {
			if collideLow&(1<<b) != 0 {
				low = releaseBit(low, b, d.ActiveHigh)
			}
		}
	}

	binary.LittleEndian.PutUint32(wd.Output[0:4], low)
	if d.HasHigh {
		binary.LittleEndian.PutUint32(wd.Output[4:8], high)
	}

	for a := range d.Axes {
		slot := d.Axes[a]
		if slot.Offset == OffsetUnused || a >= len(ctrl.Axes) {
			continue
		}
		axis := &ctrl.Axes[a]
		v := slot.Meta.Clamp(axis.TakeDelta())
		wd.Output[slot.Offset] = byte(v)
	}
}

func (t *Translator) GenTurboMask(wd *ctrlmodel.WiredData) {
	d := &t.Desc
	var maskLow, maskHigh uint32
	if d.ActiveHigh {
		// AND-combined: start all-1s, clear asserted-turbo-off bits.
		maskLow, maskHigh = 0xFFFFFFFF, 0xFFFFFFFF
	}
	for bit := uint(0); bit < 32; bit++ {
		tb := d.BtnsMask[bit]
		if tb == Unmapped {
			continue
		}
		if !remap.TurboAsserted(wd.CntMask[bit], wd.FrameCnt) {
			continue
		}
		toHigh := tb&highWord == highWord
		b := uint(tb &^ highWord)
		if d.ActiveHigh {
			if toHigh {
				maskHigh &^= 1 << b
			} else {
				maskLow &^= 1 << b
			}
		} else {
			if toHigh {
				maskHigh |= 1 << b
			} else {
				maskLow |= 1 << b
			}
		}
	}
	binary.LittleEndian.PutUint32(wd.OutputMask[0:4], maskLow)
	if d.HasHigh {
		binary.LittleEndian.PutUint32(wd.OutputMask[4:8], maskHigh)
	}
}

var _ wired.Translator = (*Translator)(nil)
