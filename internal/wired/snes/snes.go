// Package snes is the SNES/Famicom-class npiso shift-register
// controller translator: packs the normalized button word
// into the 16-bit active-low word a real SNES pad shifts out one bit
// per clock pulse.
package snes

import (
	"github.com/retrowired/wiredcore/internal/ctrlmodel"
	"github.com/retrowired/wiredcore/internal/remap"
	"github.com/retrowired/wiredcore/internal/wired"
)

// Bit is a position within the 16-bit active-low shift-register word,
// in the real pad's B/Y/Select/Start/Up/Down/Left/Right/A/X/L/R/0/0/0/0
// clock order.
const (
	BitB uint8 = iota
	BitY
	BitSelect
	BitStart
	BitUp
	BitDown
	BitLeft
	BitRight
	BitA
	BitX
	BitL
	BitR
)

const unmapped = 0xFF

var btnsMask = func() [32]uint8 {
	var t [32]uint8
	for i := range t {
		t[i] = unmapped
	}
	t[ctrlmodel.FaceDown] = BitB
	t[ctrlmodel.FaceUp] = BitY
	t[ctrlmodel.Select] = BitSelect
	t[ctrlmodel.Start] = BitStart
	t[ctrlmodel.HatUp] = BitUp
	t[ctrlmodel.HatDown] = BitDown
	t[ctrlmodel.HatLeft] = BitLeft
	t[ctrlmodel.HatRight] = BitRight
	t[ctrlmodel.FaceRight] = BitA
	t[ctrlmodel.FaceLeft] = BitX
	t[ctrlmodel.LShoulder] = BitL
	t[ctrlmodel.RShoulder] = BitR
	return t
}()

var mask = ctrlmodel.TargetMask{
	Mask: [4]uint32{
		1<<ctrlmodel.FaceDown | 1<<ctrlmodel.FaceUp | 1<<ctrlmodel.Select | 1<<ctrlmodel.Start |
			1<<ctrlmodel.HatUp | 1<<ctrlmodel.HatDown | 1<<ctrlmodel.HatLeft | 1<<ctrlmodel.HatRight |
			1<<ctrlmodel.FaceRight | 1<<ctrlmodel.FaceLeft | 1<<ctrlmodel.LShoulder | 1<<ctrlmodel.RShoulder,
	},
}

// Translator implements wired.Translator for SNES/Famicom pads. The
// 16-bit word is stored little-endian across wd.Output[0:2], bits 12-15
// always idle-high as the real shift register clocks out past the
// last defined button.
type Translator struct{}

func New() *Translator { return &Translator{} }

func (t *Translator) MetaInit(ctrl []ctrlmodel.WiredCtrl) {
	for i := range ctrl {
		ctrl[i].Mask = &mask
	}
}

func (t *Translator) InitBuffer(mode ctrlmodel.DevMode, wd *ctrlmodel.WiredData) {
	wd.Output[0], wd.Output[1] = 0xFF, 0xFF
	wd.OutputMask[0], wd.OutputMask[1] = 0x00, 0x00
}

func (t *Translator) FromGeneric(mode ctrlmodel.DevMode, ctrl *ctrlmodel.WiredCtrl, wd *ctrlmodel.WiredData) {
	word := uint16(0xFFFF)
	value := ctrl.Btns[0].Value
	live := ctrl.MapMask[0]
	for bit := 0; bit < 32; bit++ {
		tb := btnsMask[bit]
		if tb == unmapped || live&(1<<uint(bit)) == 0 {
			continue
		}
		wd.CntMask[bit] = ctrl.Btns[0].CntMask[bit]
		if value&(1<<uint(bit)) != 0 {
			word &^= 1 << tb
		}
	}
	wd.Output[0] = byte(word)
	wd.Output[1] = byte(word >> 8)
}

func (t *Translator) GenTurboMask(wd *ctrlmodel.WiredData) {
	var m uint16
	for bit := 0; bit < 32; bit++ {
		tb := btnsMask[bit]
		if tb == unmapped {
			continue
		}
		if remap.TurboAsserted(wd.CntMask[bit], wd.FrameCnt) {
			m |= 1 << tb
		}
	}
	wd.OutputMask[0] = byte(m)
	wd.OutputMask[1] = byte(m >> 8)
}

var _ wired.Translator = (*Translator)(nil)
