// Package n64 is the Nintendo 64 controller translator:
// packs the normalized button word into the two-byte N64 report plus
// two signed, ±85-clamped analog axis bytes.
package n64

import (
	"github.com/retrowired/wiredcore/internal/ctrlmodel"
	"github.com/retrowired/wiredcore/internal/remap"
	"github.com/retrowired/wiredcore/internal/wired"
)

// Bit is a position within the two-byte N64 button report.
const (
	BitA uint8 = iota
	BitB
	BitZ
	BitStart
	BitDUp
	BitDDown
	BitDLeft
	BitDRight
	BitReset
	bitUnused
	BitL
	BitR
	BitCUp
	BitCDown
	BitCLeft
	BitCRight
)

const unmapped = 0xFF

var btnsMask = func() [32]uint8 {
	var t [32]uint8
	for i := range t {
		t[i] = unmapped
	}
	t[ctrlmodel.FaceDown] = BitA
	t[ctrlmodel.FaceRight] = BitB
	t[ctrlmodel.LTrigDigital] = BitZ
	t[ctrlmodel.Start] = BitStart
	t[ctrlmodel.HatUp] = BitDUp
	t[ctrlmodel.HatDown] = BitDDown
	t[ctrlmodel.HatLeft] = BitDLeft
	t[ctrlmodel.HatRight] = BitDRight
	t[ctrlmodel.Home] = BitReset
	t[ctrlmodel.LShoulder] = BitL
	t[ctrlmodel.RShoulder] = BitR
	t[ctrlmodel.RStickUp] = BitCUp
	t[ctrlmodel.RStickDown] = BitCDown
	t[ctrlmodel.RStickLeft] = BitCLeft
	t[ctrlmodel.RStickRight] = BitCRight
	return t
}()

var axisMeta = ctrlmodel.CtrlMeta{SizeMin: -32768, SizeMax: 32767, AbsMax: 85, AbsMin: -85}

var mask = ctrlmodel.TargetMask{
	Mask: [4]uint32{
		1<<ctrlmodel.FaceDown | 1<<ctrlmodel.FaceRight | 1<<ctrlmodel.LTrigDigital | 1<<ctrlmodel.Start |
			1<<ctrlmodel.HatUp | 1<<ctrlmodel.HatDown | 1<<ctrlmodel.HatLeft | 1<<ctrlmodel.HatRight |
			1<<ctrlmodel.Home | 1<<ctrlmodel.LShoulder | 1<<ctrlmodel.RShoulder |
			1<<ctrlmodel.RStickUp | 1<<ctrlmodel.RStickDown | 1<<ctrlmodel.RStickLeft | 1<<ctrlmodel.RStickRight,
	},
	Desc: [4]uint32{1<<ctrlmodel.AxisLX | 1<<ctrlmodel.AxisLY},
}

// Translator implements wired.Translator for the N64 controller report
// (button word + stick bytes); command dispatch and accessory emulation
// live in internal/engine/n64.
type Translator struct{}

func New() *Translator { return &Translator{} }

func (t *Translator) MetaInit(ctrl []ctrlmodel.WiredCtrl) {
	for i := range ctrl {
		ctrl[i].Mask = &mask
		ctrl[i].Axes[ctrlmodel.AxisLX].Meta = axisMeta
		ctrl[i].Axes[ctrlmodel.AxisLY].Meta = axisMeta
	}
}

// InitBuffer writes the idle frame: no buttons held, stick centered,
// and an all-pass AND-combine turbo overlay (N64 button bits are
// active-high, so the combine identity is 0xFF).
func (t *Translator) InitBuffer(mode ctrlmodel.DevMode, wd *ctrlmodel.WiredData) {
	wd.Output[0], wd.Output[1], wd.Output[2], wd.Output[3] = 0, 0, 0, 0
	wd.OutputMask[0], wd.OutputMask[1] = 0xFF, 0xFF
}

func clampAxisByte(v int32) byte {
	if v > 85 {
		v = 85
	}
	if v < -85 {
		v = -85
	}
	return byte(int8(v))
}

func (t *Translator) FromGeneric(mode ctrlmodel.DevMode, ctrl *ctrlmodel.WiredCtrl, wd *ctrlmodel.WiredData) {
	var out [2]byte
	value := ctrl.Btns[0].Value
	live := ctrl.MapMask[0]
	for bit := 0; bit < 32; bit++ {
		tb := btnsMask[bit]
		if tb == unmapped || live&(1<<uint(bit)) == 0 {
			continue
		}
		wd.CntMask[bit] = ctrl.Btns[0].CntMask[bit]
		if value&(1<<uint(bit)) != 0 {
			out[tb/8] |= 1 << (tb % 8)
		}
	}
	wd.Output[0], wd.Output[1] = out[0], out[1]

	x := ctrl.Axes[ctrlmodel.AxisLX].Meta.Clamp(ctrl.Axes[ctrlmodel.AxisLX].Value)
	y := ctrl.Axes[ctrlmodel.AxisLY].Meta.Clamp(ctrl.Axes[ctrlmodel.AxisLY].Value)
	wd.Output[2] = clampAxisByte(x)
	wd.Output[3] = clampAxisByte(y)
}

func (t *Translator) GenTurboMask(wd *ctrlmodel.WiredData) {
	m := [2]uint8{0xFF, 0xFF}
	for bit := 0; bit < 32; bit++ {
		tb := btnsMask[bit]
		if tb == unmapped {
			continue
		}
		if remap.TurboAsserted(wd.CntMask[bit], wd.FrameCnt) {
			m[tb/8] &^= 1 << (tb % 8)
		}
	}
	wd.OutputMask[0], wd.OutputMask[1] = m[0], m[1]
}

var _ wired.Translator = (*Translator)(nil)
