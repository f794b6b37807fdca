// Package pce is the PC Engine / TurboGrafx controller translator: a
// three-cycle SEL/CLR-multiplexed active-low target, the standard
// 2-button cycle plus the Avenue Pad 6 extension cycle, each cycle
// exposing its own button bank.
package pce

import (
	"github.com/retrowired/wiredcore/internal/ctrlmodel"
	"github.com/retrowired/wiredcore/internal/remap"
	"github.com/retrowired/wiredcore/internal/wired"
)

// Bank identifies one of the three SEL/CLR-selected nibble cycles a PCE
// pad answers with (the "URDL"/"12SR"/"3456" banks).
type Bank int

const (
	BankURDL Bank = iota // standard cycle: D-pad
	Bank12SR             // standard cycle: I/II + Select/Run
	Bank3456             // Avenue Pad 6 extension cycle only
	bankCount
)

// Signal is a bit position within one cycle's nibble.
const (
	SigUp uint8 = iota
	SigRight
	SigDown
	SigLeft
)

const unmapped = 0xFF

var btnsMask = [bankCount][32]uint8{
	BankURDL: maskTable(map[ctrlmodel.Button]uint8{
		ctrlmodel.HatUp: SigUp, ctrlmodel.HatRight: SigRight,
		ctrlmodel.HatDown: SigDown, ctrlmodel.HatLeft: SigLeft,
	}),
	Bank12SR: maskTable(map[ctrlmodel.Button]uint8{
		ctrlmodel.FaceRight: SigUp, ctrlmodel.FaceDown: SigRight,
		ctrlmodel.Select: SigDown, ctrlmodel.Start: SigLeft,
	}),
	Bank3456: maskTable(map[ctrlmodel.Button]uint8{
		ctrlmodel.LShoulder: SigUp, ctrlmodel.RShoulder: SigLeft,
		ctrlmodel.FaceUp: SigDown, ctrlmodel.FaceLeft: SigRight,
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

var mask6btn = ctrlmodel.TargetMask{
	Mask: [4]uint32{
		1<<ctrlmodel.HatUp | 1<<ctrlmodel.HatRight | 1<<ctrlmodel.HatDown | 1<<ctrlmodel.HatLeft |
			1<<ctrlmodel.FaceRight | 1<<ctrlmodel.FaceDown | 1<<ctrlmodel.Select | 1<<ctrlmodel.Start |
			1<<ctrlmodel.LShoulder | 1<<ctrlmodel.RShoulder | 1<<ctrlmodel.FaceUp | 1<<ctrlmodel.FaceLeft,
	},
}

// Translator implements wired.Translator for PC Engine pads. DevModePad
// is the standard 2-button pad; DevModePadAlt is the Avenue Pad 6,
// which additionally answers the Bank3456 cycle.
type Translator struct{}

func New() *Translator { return &Translator{} }

// MetaInit assigns the 6-button superset mask to every port; a port
// actually running the 2-button dev mode simply never sees its
// Bank3456 bits live (FromGeneric only visits up to Bank12SR for it).
func (t *Translator) MetaInit(ctrl []ctrlmodel.WiredCtrl) {
	for i := range ctrl {
		ctrl[i].Mask = &mask6btn
	}
}

// InitBuffer writes the idle frame for all three cycles: bank bytes
// released (active-low, all 1s) plus an all-pass OR-combine turbo
// overlay.
func (t *Translator) InitBuffer(mode ctrlmodel.DevMode, wd *ctrlmodel.WiredData) {
	for b := Bank(0); b < bankCount; b++ {
		wd.Output[b] = 0xFF
		wd.OutputMask[b] = 0x00
	}
}

func (t *Translator) FromGeneric(mode ctrlmodel.DevMode, ctrl *ctrlmodel.WiredCtrl, wd *ctrlmodel.WiredData) {
	lastBank := Bank12SR
	if mode == ctrlmodel.DevModePadAlt {
		lastBank = Bank3456
	}
	value := ctrl.Btns[0].Value
	live := ctrl.MapMask[0]
	for bank := BankURDL; bank <= lastBank; bank++ {
		out := byte(0x0F)
		for bit := 0; bit < 32; bit++ {
			sig := btnsMask[bank][bit]
			if sig == unmapped || live&(1<<uint(bit)) == 0 {
				continue
			}
			wd.CntMask[bit] = ctrl.Btns[0].CntMask[bit]
			if value&(1<<uint(bit)) != 0 {
				out &^= 1 << sig
			}
		}
		wd.Output[bank] = out
	}
}

func (t *Translator) GenTurboMask(wd *ctrlmodel.WiredData) {
	for bank := Bank(0); bank < bankCount; bank++ {
		var m byte
		for bit := 0; bit < 32; bit++ {
			sig := btnsMask[bank][bit]
			if sig == unmapped {
				continue
			}
			if remap.TurboAsserted(wd.CntMask[bit], wd.FrameCnt) {
				m |= 1 << sig
			}
		}
		wd.OutputMask[bank] = m
	}
}

var _ wired.Translator = (*Translator)(nil)
