// Package jaguar is the Atari Jaguar controller translator,
// standard-pad mode: four 32-bit output banks, each carrying the full
// d-pad nibble plus Pause/A/B/C/Option on distinct bits so the engine
// can present all four banks atomically regardless of which nibble
// line the host is currently strobing — the cycling protocol demands
// every bank be presented atomically. The
// numeric-keypad six-button mode is intentionally not carried into
// this package, matching the precedent set for SNES mouse and PCE
// keyboard modes.
package jaguar

import (
	"github.com/retrowired/wiredcore/internal/ctrlmodel"
	"github.com/retrowired/wiredcore/internal/remap"
	"github.com/retrowired/wiredcore/internal/wired"
)

// bankCount is the number of 32-bit output banks a standard Jaguar pad
// answers with; only the signal bits actually used by this translator
// vary between them (the real pad physically ties the same GPIO lines
// across the four bank reads, so each bank's output differs only where
// the host-visible nibble changes).
const bankCount = 4

// Signal is a bit position within one of the four output banks.
const (
	SigUp uint8 = iota
	SigDown
	SigLeft
	SigRight
	SigPause
	SigA
	SigB
	SigC
	SigOption
)

const unmapped = 0xFF

var btnsMask = [bankCount][32]uint8{
	0: maskTable(map[ctrlmodel.Button]uint8{
		ctrlmodel.HatUp: SigUp, ctrlmodel.HatDown: SigDown,
		ctrlmodel.HatLeft: SigLeft, ctrlmodel.HatRight: SigRight,
		ctrlmodel.FaceRight: SigC, ctrlmodel.Start: SigPause,
	}),
	1: maskTable(map[ctrlmodel.Button]uint8{
		ctrlmodel.HatUp: SigUp, ctrlmodel.HatDown: SigDown,
		ctrlmodel.HatLeft: SigLeft, ctrlmodel.HatRight: SigRight,
		ctrlmodel.FaceDown: SigC,
	}),
	2: maskTable(map[ctrlmodel.Button]uint8{
		ctrlmodel.HatUp: SigUp, ctrlmodel.HatDown: SigDown,
		ctrlmodel.HatLeft: SigLeft, ctrlmodel.HatRight: SigRight,
		ctrlmodel.FaceLeft: SigB,
	}),
	3: maskTable(map[ctrlmodel.Button]uint8{
		ctrlmodel.HatUp: SigUp, ctrlmodel.HatDown: SigDown,
		ctrlmodel.HatLeft: SigLeft, ctrlmodel.HatRight: SigRight,
		ctrlmodel.Select: SigOption,
	}),
}

func maskTable(m map[ctrlmodel.Button]uint8) [32]uint8 {
	var t [32]uint8
	for i := range t {
		t[i] = unmapped
	}
	for b, v := range m {
		t[b] = v
	}
	return t
}

var mask = ctrlmodel.TargetMask{
	Mask: [4]uint32{
		1<<ctrlmodel.HatUp | 1<<ctrlmodel.HatDown | 1<<ctrlmodel.HatLeft | 1<<ctrlmodel.HatRight |
			1<<ctrlmodel.FaceRight | 1<<ctrlmodel.FaceDown | 1<<ctrlmodel.FaceLeft |
			1<<ctrlmodel.Start | 1<<ctrlmodel.Select,
	},
}

// idleBank is the released-line value for a bank with no input live:
// every signal bit high (active-low), matching jag.c's all_set
// (0xFFFDFFFD) restricted to the bits this translator actually defines.
const idleBank uint32 = 0xFFFFFFFF

// Translator implements wired.Translator for the Jaguar standard pad.
type Translator struct{}

func New() *Translator { return &Translator{} }

func (t *Translator) MetaInit(ctrl []ctrlmodel.WiredCtrl) {
	for i := range ctrl {
		ctrl[i].Mask = &mask
	}
}

func (t *Translator) InitBuffer(mode ctrlmodel.DevMode, wd *ctrlmodel.WiredData) {
	for b := 0; b < bankCount; b++ {
		putU32(wd.Output[b*4:], idleBank)
		putU32(wd.OutputMask[b*4:], 0)
	}
}

func (t *Translator) FromGeneric(mode ctrlmodel.DevMode, ctrl *ctrlmodel.WiredCtrl, wd *ctrlmodel.WiredData) {
	value := ctrl.Btns[0].Value
	live := ctrl.MapMask[0]
	for bank := 0; bank < bankCount; bank++ {
		word := getU32(wd.Output[bank*4:])
		var collide uint32 = 0xFFFFFFFF
		for bit := 0; bit < 32; bit++ {
			sig := btnsMask[bank][bit]
			if sig == unmapped || live&(1<<uint(bit)) == 0 {
				continue
			}
			pressed := value&(1<<uint(bit)) != 0
			if pressed {
				word &^= 1 << sig
				collide &^= 1 << sig
				wd.CntMask[bit] = ctrl.Btns[0].CntMask[bit]
			} else {
				if collide&(1<<sig) != 0 {
					word |= 1 << sig
				}
				wd.CntMask[bit] = 0
			}
		}
		putU32(wd.Output[bank*4:], word)
	}
}

func (t *Translator) GenTurboMask(wd *ctrlmodel.WiredData) {
	for bank := 0; bank < bankCount; bank++ {
		var m uint32
		for bit := 0; bit < 32; bit++ {
			sig := btnsMask[bank][bit]
			if sig == unmapped {
				continue
			}
			if remap.TurboAsserted(wd.CntMask[bit], wd.FrameCnt) {
				m |= 1 << sig
			}
		}
		putU32(wd.OutputMask[bank*4:], m)
	}
}

func putU32(b []byte, v uint32) {
	b[0] = byte(v)
	b[1] = byte(v >> 8)
	b[2] = byte(v >> 16)
	b[3] = byte(v >> 24)
}

func getU32(b []byte) uint32 {
	return uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24
}

var _ wired.Translator = (*Translator)(nil)
