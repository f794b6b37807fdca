// Package dc is the Dreamcast (Maple bus) controller translator: packs the normalized button word into the active-low 2-byte
// condition report plus two analog trigger bytes and two centered stick
// bytes, matching the real Maple GET_CONDITION payload shape.
package dc

import (
	"github.com/retrowired/wiredcore/internal/ctrlmodel"
	"github.com/retrowired/wiredcore/internal/remap"
	"github.com/retrowired/wiredcore/internal/wired"
)

// Bit is a position within the two active-low data bytes of the Maple
// GET_CONDITION button report.
const (
	Bit0C uint8 = 7 - iota
	Bit0B
	Bit0A
	Bit0Start
	Bit0Up
	Bit0Down
	Bit0Left
	Bit0Right
)

const (
	Bit1Z uint8 = 7 - iota
	Bit1Y
	Bit1X
	Bit1D
)

const unmapped = 0xFF

var btnsMask = [2][32]uint8{
	0: maskTable(map[ctrlmodel.Button]uint8{
		ctrlmodel.FaceRight: Bit0C, ctrlmodel.FaceDown: Bit0B, ctrlmodel.FaceLeft: Bit0A,
		ctrlmodel.Start: Bit0Start, ctrlmodel.HatUp: Bit0Up, ctrlmodel.HatDown: Bit0Down,
		ctrlmodel.HatLeft: Bit0Left, ctrlmodel.HatRight: Bit0Right,
	}),
	1: maskTable(map[ctrlmodel.Button]uint8{
		ctrlmodel.LShoulder: Bit1Z, ctrlmodel.RShoulder: Bit1Y, ctrlmodel.FaceUp: Bit1X,
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

// Trigger/stick byte offsets within wd.Output, matching Maple's
// {L,R,X,Y} condition tail.
const (
	OffL = 2
	OffR = 3
	OffX = 4
	OffY = 5
)

var axisMeta = ctrlmodel.CtrlMeta{SizeMin: -128, SizeMax: 127, Neutral: 128}
var trigMeta = ctrlmodel.CtrlMeta{SizeMin: 0, SizeMax: 255, Neutral: 0}

var mask = ctrlmodel.TargetMask{
	Mask: [4]uint32{
		1<<ctrlmodel.FaceRight | 1<<ctrlmodel.FaceDown | 1<<ctrlmodel.FaceLeft | 1<<ctrlmodel.Start |
			1<<ctrlmodel.HatUp | 1<<ctrlmodel.HatDown | 1<<ctrlmodel.HatLeft | 1<<ctrlmodel.HatRight |
			1<<ctrlmodel.LShoulder | 1<<ctrlmodel.RShoulder | 1<<ctrlmodel.FaceUp,
	},
	Desc: [4]uint32{1<<ctrlmodel.AxisLX | 1<<ctrlmodel.AxisLY | 1<<ctrlmodel.AxisLT | 1<<ctrlmodel.AxisRT},
}

// Translator implements wired.Translator for Dreamcast controllers.
type Translator struct{}

func New() *Translator { return &Translator{} }

func (t *Translator) MetaInit(ctrl []ctrlmodel.WiredCtrl) {
	for i := range ctrl {
		ctrl[i].Mask = &mask
		ctrl[i].Axes[ctrlmodel.AxisLX].Meta = axisMeta
		ctrl[i].Axes[ctrlmodel.AxisLY].Meta = axisMeta
		ctrl[i].Axes[ctrlmodel.AxisLT].Meta = trigMeta
		ctrl[i].Axes[ctrlmodel.AxisRT].Meta = trigMeta
	}
}

func (t *Translator) InitBuffer(mode ctrlmodel.DevMode, wd *ctrlmodel.WiredData) {
	wd.Output[0], wd.Output[1] = 0xFF, 0xFF
	wd.Output[OffL], wd.Output[OffR] = 0, 0
	wd.Output[OffX], wd.Output[OffY] = 0x80, 0x80
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

	wd.Output[OffL] = byte(uint8(ctrl.Axes[ctrlmodel.AxisLT].Meta.Clamp(ctrl.Axes[ctrlmodel.AxisLT].Value)))
	wd.Output[OffR] = byte(uint8(ctrl.Axes[ctrlmodel.AxisRT].Meta.Clamp(ctrl.Axes[ctrlmodel.AxisRT].Value)))
	wd.Output[OffX] = byte(int8(ctrl.Axes[ctrlmodel.AxisLX].Meta.Clamp(ctrl.Axes[ctrlmodel.AxisLX].Value)))
	wd.Output[OffY] = byte(int8(ctrl.Axes[ctrlmodel.AxisLY].Meta.Clamp(ctrl.Axes[ctrlmodel.AxisLY].Value)))
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
