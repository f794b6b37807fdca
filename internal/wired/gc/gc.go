// Package gc is the GameCube controller translator, covering the
// digital button word, six analog axes, and the active-high/
// AND-combine turbo convention, built on the consolidated
// generic.Descriptor translator.
// The keyboard dev_mode variant is intentionally not carried
// into this package; internal/kbmon already owns the make/break/
// typematic contract a future GC keyboard translator would drive.
package gc

import (
	"github.com/retrowired/wiredcore/internal/ctrlmodel"
	"github.com/retrowired/wiredcore/internal/wired/generic"
)

const (
	bitA = iota
	bitB
	bitX
	bitY
	bitStart
	_
	_
	_
	bitLeft
	bitRight
	bitDown
	bitUp
	bitZ
	bitR
	bitL
)

var mask = ctrlmodel.TargetMask{
	Mask: [4]uint32{
		1<<ctrlmodel.HatUp | 1<<ctrlmodel.HatDown | 1<<ctrlmodel.HatLeft | 1<<ctrlmodel.HatRight |
			1<<ctrlmodel.FaceDown | 1<<ctrlmodel.FaceRight | 1<<ctrlmodel.FaceLeft | 1<<ctrlmodel.FaceUp |
			1<<ctrlmodel.Start | 1<<ctrlmodel.LShoulder | 1<<ctrlmodel.RShoulder | 1<<ctrlmodel.Select,
	},
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
	t[ctrlmodel.FaceLeft] = bitX
	t[ctrlmodel.FaceRight] = bitA
	t[ctrlmodel.FaceUp] = bitY
	t[ctrlmodel.Start] = bitStart
	t[ctrlmodel.Select] = bitZ
	t[ctrlmodel.LShoulder] = bitL
	t[ctrlmodel.RShoulder] = bitR
	return t
}()

var axisMeta = ctrlmodel.CtrlMeta{SizeMin: -128, SizeMax: 127, Neutral: 0x80, AbsMax: 0x64, AbsMin: 0x64}
var trigMeta = ctrlmodel.CtrlMeta{SizeMin: 0, SizeMax: 255, Neutral: 0x20, AbsMax: 0xD0, AbsMin: 0x00}

// Descriptor is active-high/AND-combine (the "active-high
// wires"): idle buttons word 0x8020, idle overlay all-1s.
var Descriptor = generic.Descriptor{
	Mask:       mask,
	BtnsMask:   btnsMask,
	ActiveHigh: true,
	IdleLow:    0x8020,
	Axes: [int(ctrlmodel.AxisCount)]generic.AxisSlot{
		ctrlmodel.AxisLX: {Offset: 8, Meta: axisMeta},
		ctrlmodel.AxisLY: {Offset: 9, Meta: axisMeta},
		ctrlmodel.AxisRX: {Offset: 10, Meta: axisMeta},
		ctrlmodel.AxisRY: {Offset: 11, Meta: axisMeta},
		ctrlmodel.AxisLT: {Offset: 12, Meta: trigMeta},
		ctrlmodel.AxisRT: {Offset: 13, Meta: trigMeta},
	},
}

func New() *generic.Translator { return generic.New(Descriptor) }
