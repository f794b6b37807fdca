// Package saturn is the Sega Saturn controller translator:
// packs the normalized button word into the two active-low data bytes
// carried by both the two-TH-cycle digital frame and the three-wire
// handshake (TWH) frame, and also builds the six-button extended frame.
package saturn

import (
	"github.com/retrowired/wiredcore/internal/ctrlmodel"
	"github.com/retrowired/wiredcore/internal/remap"
	"github.com/retrowired/wiredcore/internal/wired"
)

// Bit is a position within the Saturn pad's two active-low data bytes.
const (
	Bit0Up uint8 = 7 - iota
	Bit0Down
	Bit0Left
	Bit0Right
	Bit0Start
	Bit0A
	Bit0C
	Bit0B
)

const (
	Bit1R uint8 = 7 - iota
	Bit1X
	Bit1Y
	Bit1Z
	Bit1L
)

const unmapped = 0xFF

var btnsMask = [2][32]uint8{
	0: maskTable(map[ctrlmodel.Button]uint8{
		ctrlmodel.HatUp: Bit0Up, ctrlmodel.HatDown: Bit0Down,
		ctrlmodel.HatLeft: Bit0Left, ctrlmodel.HatRight: Bit0Right,
		ctrlmodel.Start: Bit0Start, ctrlmodel.FaceDown: Bit0A,
		ctrlmodel.FaceRight: Bit0C, ctrlmodel.FaceLeft: Bit0B,
	}),
	1: maskTable(map[ctrlmodel.Button]uint8{
		ctrlmodel.RShoulder: Bit1R, ctrlmodel.FaceUp: Bit1X,
		ctrlmodel.RTrigDigital: Bit1Y, ctrlmodel.LTrigDigital: Bit1Z,
		ctrlmodel.LShoulder: Bit1L,
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
			1<<ctrlmodel.Start | 1<<ctrlmodel.FaceDown | 1<<ctrlmodel.FaceRight | 1<<ctrlmodel.FaceLeft |
			1<<ctrlmodel.RShoulder | 1<<ctrlmodel.FaceUp | 1<<ctrlmodel.RTrigDigital | 1<<ctrlmodel.LTrigDigital |
			1<<ctrlmodel.LShoulder,
	},
}

// Translator implements wired.Translator for Saturn pads (3-button,
// 6-button extension, and the per-sub-device frame used by multitap
// aggregation in internal/engine/saturn).
type Translator struct{}

func New() *Translator { return &Translator{} }

func (t *Translator) MetaInit(ctrl []ctrlmodel.WiredCtrl) {
	for i := range ctrl {
		ctrl[i].Mask = &mask
	}
}

// InitBuffer writes the idle frame: both data bytes fully released
// (active-low, 0xFF) and an all-pass OR-combine turbo overlay (0x00).
func (t *Translator) InitBuffer(mode ctrlmodel.DevMode, wd *ctrlmodel.WiredData) {
	wd.Output[0], wd.Output[1] = 0xFF, 0xFF
	wd.OutputMask[0], wd.OutputMask[1] = 0x00, 0x00
}

func (t *Translator) FromGeneric(mode ctrlmodel.DevMode, ctrl *ctrlmodel.WiredCtrl, wd *ctrlmodel.WiredData) {
	out := [2]byte{0xFF, 0xFF}
	value := ctrl.Btns[0].Value
	live := ctrl.MapMask[0]
	for bank := 0; bank < 2; bank++ {
		for bit := 0; bit < 32; bit++ {
			tb := btnsMask[bank][bit]
			if tb == unmapped || live&(1<<uint(bit)) == 0 {
				continue
			}
			wd.CntMask[bit] = ctrl.Btns[0].CntMask[bit]
			if value&(1<<uint(bit)) != 0 {
				out[bank] &^= 1 << tb
			}
		}
	}
	wd.Output[0], wd.Output[1] = out[0], out[1]
}

func (t *Translator) GenTurboMask(wd *ctrlmodel.WiredData) {
	m := [2]byte{}
	for bank := 0; bank < 2; bank++ {
		for bit := 0; bit < 32; bit++ {
			tb := btnsMask[bank][bit]
			if tb == unmapped {
				continue
			}
			if remap.TurboAsserted(wd.CntMask[bit], wd.FrameCnt) {
				m[bank] |= 1 << tb
			}
		}
	}
	wd.OutputMask[0], wd.OutputMask[1] = m[0], m[1]
}

var _ wired.Translator = (*Translator)(nil)
