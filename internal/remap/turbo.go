// Package remap implements the remap & turbo engine:
// applying the user remap table, generating the turbo/autofire overlay,
// and detecting button-combo macros and the device-mode toggle special
// input. It is invoked by the adapter context between the normalized
// control model and per-system translator dispatch.
package remap

import "github.com/retrowired/wiredcore/internal/ctrlmodel"

// TurboAsserted implements the cadence test:
//
//	m = cnt_mask >> 1 (7-bit pattern), p = cnt_mask & 1
//	asserted if m != 0 AND:
//	  p == 1 and (m & frame_cnt) == 0, or
//	  p == 0 and (m & frame_cnt) != m
//
// "Asserted" means the turbo overlay should force this button's bit to
// its off-phase for the current frame.
func TurboAsserted(cntMask uint8, frameCnt uint32) bool {
	m := uint32(cntMask >> 1)
	p := cntMask & 1
	if m == 0 {
		return false
	}
	if p == 1 {
		return (m & frameCnt) == 0
	}
	return (m & frameCnt) != m
}

// GenTurboMaskBtns16 paints the turbo overlay for a single 16-bit target
// button word, named after the original wired_gen_turbo_mask_btns16_pos
// / _neg pair: negative (active-low) wires combine the mask with OR,
// positive (active-high) wires combine it with AND. btnsMask[i] gives
// the target bit position asserted by normalized bit i, or 0xFF if bit i
// has no representation on this target.
func GenTurboMaskBtns16(wd *ctrlmodel.WiredData, buttons *uint16, btnsMask *[32]uint8, negative bool) {
	var mask uint16
	if negative {
		mask = 0x0000
	} else {
		mask = 0xFFFF
	}
	for i := 0; i < 32; i++ {
		b := btnsMask[i]
		if b == 0xFF {
			continue
		}
		if TurboAsserted(wd.CntMask[i], wd.FrameCnt) {
			if negative {
				mask |= 1 << b
			} else {
				mask &^= 1 << b
			}
		}
	}
	if negative {
		*buttons |= mask
	} else {
		*buttons &= mask
	}
}

// GenTurboMaskBtns32 is the multi-bank flavour for wire protocols that
// cycle through several output banks per poll (Genesis 6-button, PCE
// six-button): btnsMask is indexed [bank][normalized-bit].
func GenTurboMaskBtns32(wd *ctrlmodel.WiredData, buttons []uint32, btnsMask [][32]uint8, negative bool) {
	for j := range buttons {
		var mask uint32
		if negative {
			mask = 0
		} else {
			mask = 0xFFFFFFFF
		}
		for i := 0; i < 32; i++ {
			b := btnsMask[j][i]
			if b == 0xFF {
				continue
			}
			if TurboAsserted(wd.CntMask[i], wd.FrameCnt) {
				if negative {
					mask |= 1 << b
				} else {
					mask &^= 1 << b
				}
			}
		}
		if negative {
			buttons[j] |= mask
		} else {
			buttons[j] &= mask
		}
	}
}

// GenTurboMaskAxes8 reverts an axis to its neutral value on the on-phase
// of its associated turbo counter, so "axes with an
// associated turbo counter on their direction-bit revert to neutral on
// the on-phase".
func GenTurboMaskAxes8(wd *ctrlmodel.WiredData, axes []uint8, axesIdx [6]uint8, axesMeta [6]uint8, dirBit [6]uint8) {
	for a := 0; a < len(dirBit) && a < len(axesIdx); a++ {
		bit := dirBit[a]
		if bit == 0xFF {
			continue
		}
		if TurboAsserted(wd.CntMask[bit], wd.FrameCnt) {
			idx := axesIdx[a]
			if int(idx) < len(axes) {
				axes[idx] = axesMeta[a]
			}
		}
	}
}
