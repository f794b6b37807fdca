// Package cdi is the Philips CD-i controller translator: a two-button
// digital layout plus dual analog axes, built on the consolidated
// generic.Descriptor translator. Keyboard modifier composition
// (shift/ctrl/alt) belongs to a keyboard dev_mode this translator
// does not implement, matching the
// SNES-mouse/PCE-keyboard precedent of leaving secondary dev_modes to a
// future translator built on the same internal/kbmon contract.
package cdi

import (
	"github.com/retrowired/wiredcore/internal/ctrlmodel"
	"github.com/retrowired/wiredcore/internal/wired/generic"
)

const (
	bit1 = iota
	bit2
)

var mask = ctrlmodel.TargetMask{
	Mask: [4]uint32{1<<ctrlmodel.FaceDown | 1<<ctrlmodel.FaceRight},
}

var btnsMask = func() [32]uint32 {
	var t [32]uint32
	for i := range t {
		t[i] = generic.Unmapped
	}
	t[ctrlmodel.FaceDown] = bit1
	t[ctrlmodel.FaceRight] = bit2
	return t
}()

var axisMetaX = ctrlmodel.CtrlMeta{SizeMin: -128, SizeMax: 127, Neutral: 0x00, AbsMax: 127, AbsMin: 128}
var axisMetaY = ctrlmodel.CtrlMeta{SizeMin: -128, SizeMax: 127, Neutral: 0x00, AbsMax: 127, AbsMin: 128, Polarity: true}

// Descriptor is active-low/OR-combine, two buttons plus one analog
// stick (LX/LY only; the original's second port reuses the same axes
// index, which this translator does not model).
var Descriptor = generic.Descriptor{
	Mask:     mask,
	BtnsMask: btnsMask,
	IdleLow:  0x00000003,
	Axes: [int(ctrlmodel.AxisCount)]generic.AxisSlot{
		ctrlmodel.AxisLX: {Offset: 8, Meta: axisMetaX},
		ctrlmodel.AxisLY: {Offset: 9, Meta: axisMetaY},
		ctrlmodel.AxisRX: {Offset: generic.OffsetUnused},
		ctrlmodel.AxisRY: {Offset: generic.OffsetUnused},
		ctrlmodel.AxisLT: {Offset: generic.OffsetUnused},
		ctrlmodel.AxisRT: {Offset: generic.OffsetUnused},
	},
}

func New() *generic.Translator { return generic.New(Descriptor) }
