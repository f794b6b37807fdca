// Package real3do is the REAL 3DO controller translator, covering the
// digital-pad bit layout (A/B/C/X/P/L/R + d-pad), built on the
// consolidated generic.Descriptor translator. The mouse and
// flight-stick dev_mode variants are intentionally not carried into
// this package, matching the precedent set for SNES mouse mode and
// PCE keyboard mode.
package real3do

import (
	"github.com/retrowired/wiredcore/internal/ctrlmodel"
	"github.com/retrowired/wiredcore/internal/wired/generic"
)

var mask = ctrlmodel.TargetMask{
	Mask: [4]uint32{
		1<<ctrlmodel.HatUp | 1<<ctrlmodel.HatDown | 1<<ctrlmodel.HatLeft | 1<<ctrlmodel.HatRight |
			1<<ctrlmodel.FaceDown | 1<<ctrlmodel.FaceRight | 1<<ctrlmodel.FaceLeft |
			1<<ctrlmodel.LShoulder | 1<<ctrlmodel.RShoulder | 1<<ctrlmodel.Select | 1<<ctrlmodel.Start,
	},
}

const (
	bitA = iota
	bitLeft
	bitRight
	bitUp
	bitDown
	_
	_
	_
	_
	_
	bitL
	bitR
	bitX
	bitP
	bitC
	bitB
)

var btnsMask = func() [32]uint32 {
	var t [32]uint32
	for i := range t {
		t[i] = generic.Unmapped
	}
	t[ctrlmodel.HatLeft] = bitLeft
	t[ctrlmodel.HatRight] = bitRight
	t[ctrlmodel.HatUp] = bitUp
	t[ctrlmodel.HatDown] = bitDown
	t[ctrlmodel.FaceDown] = bitA
	t[ctrlmodel.FaceRight] = bitC
	t[ctrlmodel.FaceLeft] = bitB
	t[ctrlmodel.LShoulder] = bitL
	t[ctrlmodel.RShoulder] = bitR
	t[ctrlmodel.Select] = bitX
	t[ctrlmodel.Start] = bitP
	return t
}()

// Descriptor is the active-high digital pad: idle buttons word is
// 0x0080 (bit 7, outside every mapped button bit, is high at idle),
// all-pass AND-combine overlay.
var Descriptor = generic.Descriptor{
	Mask:       mask,
	BtnsMask:   btnsMask,
	ActiveHigh: true,
	IdleLow:    0x0080,
	Axes:       generic.NoAxes(),
}

func New() *generic.Translator { return generic.New(Descriptor) }
