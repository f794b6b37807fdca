// Package wii is the Wii Classic Controller (I2C peripheral)
// translator: an active-low 16-bit button word and six-axis layout,
// built on the consolidated generic.Descriptor translator.
package wii

import (
	"github.com/retrowired/wiredcore/internal/ctrlmodel"
	"github.com/retrowired/wiredcore/internal/wired/generic"
)

const (
	bitR = iota + 1
	bitPlus
	bitHome
	bitMinus
	bitL
	bitDown
	bitRight
	bitUp
	bitLeft
	bitZR
	bitX
	bitA
	bitY
	bitB
	bitZL
)

var mask = ctrlmodel.TargetMask{
	Mask: [4]uint32{0xFFFFFFFF},
}

var btnsMask = func() [32]uint32 {
	var t [32]uint32
	for i := range t {
		t[i] = generic.Unmapped
	}
	t[ctrlmodel.HatLeft] = bitLeft
	t[ctrlmodel.HatRight] = bitRight
	t[ctrlmodel.HatDown] = bitDown
	t[ctrlmodel.HatUp] = bitUp
	t[ctrlmodel.FaceDown] = bitB
	t[ctrlmodel.FaceRight] = bitA
	t[ctrlmodel.FaceLeft] = bitY
	t[ctrlmodel.FaceUp] = bitX
	t[ctrlmodel.Start] = bitPlus
	t[ctrlmodel.Select] = bitMinus
	t[ctrlmodel.Home] = bitHome
	t[ctrlmodel.LShoulder] = bitL
	t[ctrlmodel.RShoulder] = bitR
	t[ctrlmodel.LTrigAnalog] = bitZL
	t[ctrlmodel.RTrigAnalog] = bitZR
	return t
}()

var axisMeta = ctrlmodel.CtrlMeta{SizeMin: -128, SizeMax: 127, Neutral: 0x80, AbsMax: 0x66}
var trigMeta = ctrlmodel.CtrlMeta{SizeMin: 0, SizeMax: 255, Neutral: 0x16, AbsMax: 0xDA}

// Descriptor is active-low/OR-combine: all 16 button bits idle high.
var Descriptor = generic.Descriptor{
	Mask:     mask,
	BtnsMask: btnsMask,
	IdleLow:  0x0000FFFF,
	Axes: [int(ctrlmodel.AxisCount)]generic.AxisSlot{
		ctrlmodel.AxisLX: {Offset: 8, Meta: axisMeta},
		ctrlmodel.AxisRX: {Offset: 9, Meta: axisMeta},
		ctrlmodel.AxisLY: {Offset: 10, Meta: axisMeta},
		ctrlmodel.AxisRY: {Offset: 11, Meta: axisMeta},
		ctrlmodel.AxisLT: {Offset: 12, Meta: trigMeta},
		ctrlmodel.AxisRT: {Offset: 13, Meta: trigMeta},
	},
}

func New() *generic.Translator { return generic.New(Descriptor) }
