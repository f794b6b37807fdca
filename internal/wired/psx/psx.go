// Package psx is the PS1/PS2 controller translator: packs
// the normalized button word into the active-low 2-byte PSX report and,
// when the port's device mode is the analog variant, four centered
// analog axis bytes.
package psx

import (
	"github.com/retrowired/wiredcore/internal/ctrlmodel"
	"github.com/retrowired/wiredcore/internal/remap"
	"github.com/retrowired/wiredcore/internal/wired"
)

// Bit is a position within the two-byte active-low PSX button report.
const (
	BitSelect uint8 = iota
	BitL3
	BitR3
	BitStart
	BitUp
	BitRight
	BitDown
	BitLeft
	BitL2
	BitR2
	BitL1
	BitR1
	BitTriangle
	BitCircle
	BitCross
	BitSquare
)

const unmapped = 0xFF

var btnsMask = func() [32]uint8 {
	var t [32]uint8
	for i := range t {
		t[i] = unmapped
	}
	t[ctrlmodel.Select] = BitSelect
	t[ctrlmodel.LStickClick] = BitL3
	t[ctrlmodel.RStickClick] = BitR3
	t[ctrlmodel.Start] = BitStart
	t[ctrlmodel.HatUp] = BitUp
	t[ctrlmodel.HatRight] = BitRight
	t[ctrlmodel.HatDown] = BitDown
	t[ctrlmodel.HatLeft] = BitLeft
	t[ctrlmodel.LTrigAnalog] = BitL2
	t[ctrlmodel.RTrigAnalog] = BitR2
	t[ctrlmodel.LShoulder] = BitL1
	t[ctrlmodel.RShoulder] = BitR1
	t[ctrlmodel.FaceUp] = BitTriangle
	t[ctrlmodel.FaceRight] = BitCircle
	t[ctrlmodel.FaceDown] = BitCross
	t[ctrlmodel.FaceLeft] = BitSquare
	return t
}()

// Analog axis byte offsets within wd.Output, following the RX/RY/LX/LY
// ordering of the real PSX analog report.
const (
	OffRX = 2
	OffRY = 3
	OffLX = 4
	OffLY = 5
)

var axisMeta = ctrlmodel.CtrlMeta{SizeMin: -128, SizeMax: 127, Neutral: 128}

var mask = ctrlmodel.TargetMask{
	Mask: [4]uint32{
		1<<ctrlmodel.Select | 1<<ctrlmodel.LStickClick | 1<<ctrlmodel.RStickClick | 1<<ctrlmodel.Start |
			1<<ctrlmodel.HatUp | 1<<ctrlmodel.HatRight | 1<<ctrlmodel.HatDown | 1<<ctrlmodel.HatLeft |
			1<<ctrlmodel.LTrigAnalog | 1<<ctrlmodel.RTrigAnalog | 1<<ctrlmodel.LShoulder | 1<<ctrlmodel.RShoulder |
			1<<ctrlmodel.FaceUp | 1<<ctrlmodel.FaceRight | 1<<ctrlmodel.FaceDown | 1<<ctrlmodel.FaceLeft,
	},
	Desc: [4]uint32{1<<ctrlmodel.AxisLX | 1<<ctrlmodel.AxisLY | 1<<ctrlmodel.AxisRX | 1<<ctrlmodel.AxisRY},
}

// Translator implements wired.Translator for PSX pads. Analog-vs-digital
// and pressure-sensitive reporting are engine-level concerns (they key
// off the port's DevMode and the 0x43/0x44 config sequence), not
// translator concerns — the translator always maintains both the
// digital word and the analog bytes so the engine can pick whichever
// the current mode calls for: the engine reads whichever subset it
// needs without the translator caring which mode is active.
type Translator struct{}

func New() *Translator { return &Translator{} }

func (t *Translator) MetaInit(ctrl []ctrlmodel.WiredCtrl) {
	for i := range ctrl {
		ctrl[i].Mask = &mask
		for _, a := range []ctrlmodel.Axis{ctrlmodel.AxisLX, ctrlmodel.AxisLY, ctrlmodel.AxisRX, ctrlmodel.AxisRY} {
			ctrl[i].Axes[a].Meta = axisMeta
		}
	}
}

// InitBuffer writes the idle frame: buttons released (active-low, all
// 1s) and sticks centered at 0x80, with an all-pass OR-combine turbo
// overlay (identity 0x00 for active-low wires).
func (t *Translator) InitBuffer(mode ctrlmodel.DevMode, wd *ctrlmodel.WiredData) {
	wd.Output[0], wd.Output[1] = 0xFF, 0xFF
	wd.Output[OffRX], wd.Output[OffRY], wd.Output[OffLX], wd.Output[OffLY] = 0x80, 0x80, 0x80, 0x80
	wd.OutputMask[0], wd.OutputMask[1] = 0x00, 0x00
}

func (t *Translator) FromGeneric(mode ctrlmodel.DevMode, ctrl *ctrlmodel.WiredCtrl, wd *ctrlmodel.WiredData) {
	out := [2]byte{0xFF, 0xFF}
	value := ctrl.Btns[0].Value
	live := ctrl.MapMask[0]
	for bit := 0; bit < 32; bit++ {
		tb := btnsMask[bit]
		if tb == unmapped || live&(1<<uint(bit)) == 0 {
			continue
		}
		wd.CntMask[bit] = ctrl.Btns[0].CntMask[bit]
		if value&(1<<uint(bit)) != 0 {
			out[tb/8] &^= 1 << (tb % 8) // pressed: clear (active-low)
		}
	}
	wd.Output[0], wd.Output[1] = out[0], out[1]

	wd.Output[OffRX] = byte(int8(ctrl.Axes[ctrlmodel.AxisRX].Meta.Clamp(ctrl.Axes[ctrlmodel.AxisRX].Value)))
	wd.Output[OffRY] = byte(int8(ctrl.Axes[ctrlmodel.AxisRY].Meta.Clamp(ctrl.Axes[ctrlmodel.AxisRY].Value)))
	wd.Output[OffLX] = byte(int8(ctrl.Axes[ctrlmodel.AxisLX].Meta.Clamp(ctrl.Axes[ctrlmodel.AxisLX].Value)))
	wd.Output[OffLY] = byte(int8(ctrl.Axes[ctrlmodel.AxisLY].Meta.Clamp(ctrl.Axes[ctrlmodel.AxisLY].Value)))
}

func (t *Translator) GenTurboMask(wd *ctrlmodel.WiredData) {
	m := [2]uint8{}
	for bit := 0; bit < 32; bit++ {
		tb := btnsMask[bit]
		if tb == unmapped {
			continue
		}
		if remap.TurboAsserted(wd.CntMask[bit], wd.FrameCnt) {
			m[tb/8] |= 1 << (tb % 8)
		}
	}
	wd.OutputMask[0], wd.OutputMask[1] = m[0], m[1]
}

var _ wired.Translator = (*Translator)(nil)
