// Package genesis is the Genesis/Mega Drive translator: a multi-cycle
// target whose two TH-driven banks physically tie
// the same two pins to different buttons (pin 6 = B on TH-high, A on
// TH-low; pin 9 = C on TH-high, Start on TH-low). The mapping is
// preserved as-is since real hardware ties the pins.
package genesis

import (
	"github.com/retrowired/wiredcore/internal/ctrlmodel"
	"github.com/retrowired/wiredcore/internal/remap"
	"github.com/retrowired/wiredcore/internal/wired"
)

// Bank selects which TH-driven half of the multiplexed frame a
// normalized bit targets ("multi-cycle wires").
type Bank int

const (
	BankTHHigh Bank = iota // Up/Down/Left/Right + B + C
	BankTHLow              // Up/Down/Left/Right + A + Start
	BankSix                // six-button extension cycle: X/Y/Z/Mode low nibble
	bankCount
)

// Signal is a bit position within a bank's 6-wire (or 4-wire, BankSix)
// data byte; the engine maps these onto real GPIO lines.
const (
	SigUp uint8 = iota
	SigDown
	SigLeft
	SigRight
	SigTL
	SigTR
)

const unmapped = 0xFF

var btnsMask = [bankCount][32]uint8{
	BankTHHigh: maskTable(map[ctrlmodel.Button]uint8{
		ctrlmodel.HatUp: SigUp, ctrlmodel.HatDown: SigDown,
		ctrlmodel.HatLeft: SigLeft, ctrlmodel.HatRight: SigRight,
		ctrlmodel.FaceDown: SigTL, ctrlmodel.FaceRight: SigTR, // B, C
	}),
	BankTHLow: maskTable(map[ctrlmodel.Button]uint8{
		ctrlmodel.HatUp: SigUp, ctrlmodel.HatDown: SigDown,
		ctrlmodel.HatLeft: SigLeft, ctrlmodel.HatRight: SigRight,
		ctrlmodel.FaceLeft: SigTL, ctrlmodel.Start: SigTR, // A, Start
	}),
	BankSix: maskTable(map[ctrlmodel.Button]uint8{
		ctrlmodel.FaceUp:    0, // X
		ctrlmodel.RShoulder: 1, // Y
		ctrlmodel.LShoulder: 2, // Z
		ctrlmodel.Select:    3, // Mode
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

// mask is the static capability table (mask[4]/desc[4]): every
// normalized bit this translator represents somewhere across the three
// banks.
var mask = ctrlmodel.TargetMask{
	Mask: [4]uint32{
		1<<ctrlmodel.HatUp | 1<<ctrlmodel.HatDown | 1<<ctrlmodel.HatLeft | 1<<ctrlmodel.HatRight |
			1<<ctrlmodel.FaceDown | 1<<ctrlmodel.FaceRight | 1<<ctrlmodel.FaceLeft | 1<<ctrlmodel.Start |
			1<<ctrlmodel.FaceUp | 1<<ctrlmodel.RShoulder | 1<<ctrlmodel.LShoulder | 1<<ctrlmodel.Select,
	},
}

// Translator implements wired.Translator for Genesis/Mega Drive pads,
// including the TeamPlayer/EA-4Way multitap sub-ports (which reuse this
// same per-port translation, aggregated by the engine).
type Translator struct{}

func New() *Translator { return &Translator{} }

func (t *Translator) MetaInit(ctrl []ctrlmodel.WiredCtrl) {
	for i := range ctrl {
		ctrl[i].Mask = &mask
	}
}

// InitBuffer writes the idle frame: every signal line released (0xFF)
// and an all-pass (identity-for-OR) turbo overlay of 0x00, since
// Genesis data lines are active-low and the overlay is OR-combined
// with the live frame.
func (t *Translator) InitBuffer(mode ctrlmodel.DevMode, wd *ctrlmodel.WiredData) {
	for b := Bank(0); b < bankCount; b++ {
		wd.Output[b] = 0xFF
		wd.OutputMask[b] = 0x00
	}
}

func (t *Translator) FromGeneric(mode ctrlmodel.DevMode, ctrl *ctrlmodel.WiredCtrl, wd *ctrlmodel.WiredData) {
	value := ctrl.Btns[0].Value
	live := ctrl.MapMask[0]
	for bank := Bank(0); bank < bankCount; bank++ {
		var out uint8 = 0xFF
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

// GenTurboMask paints the OR-combine overlay: a set bit forces the
// corresponding signal line released (high) for this frame's on-phase,
// per the active-low turbo combine rule
func (t *Translator) GenTurboMask(wd *ctrlmodel.WiredData) {
	for bank := Bank(0); bank < bankCount; bank++ {
		var m uint8
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
