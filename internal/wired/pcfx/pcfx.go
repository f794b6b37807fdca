// Package pcfx is the PC-FX controller translator, a serial pad with
// a six-face-button digital layout (I-VI, Select/Run, d-pad,
// Mode1/Mode2), built on the consolidated generic.Descriptor
// translator. The mouse dev_mode variant is intentionally not carried
// into this package, per the same precedent set for SNES/PCE/3DO.
package pcfx

import (
	"github.com/retrowired/wiredcore/internal/ctrlmodel"
	"github.com/retrowired/wiredcore/internal/wired/generic"
)

const (
	bitI = iota
	bitII
	bitIII
	bitIV
	bitV
	bitVI
	bitSelect
	bitRun
	bitUp
	bitRight
	bitDown
	bitLeft
	bitMode1
)

var mask = ctrlmodel.TargetMask{
	Mask: [4]uint32{
		1<<ctrlmodel.HatUp | 1<<ctrlmodel.HatDown | 1<<ctrlmodel.HatLeft | 1<<ctrlmodel.HatRight |
			1<<ctrlmodel.FaceDown | 1<<ctrlmodel.FaceRight | 1<<ctrlmodel.FaceLeft | 1<<ctrlmodel.FaceUp |
			1<<ctrlmodel.LShoulder | 1<<ctrlmodel.RShoulder | 1<<ctrlmodel.Select | 1<<ctrlmodel.Start,
	},
}

var btnsMask = func() [32]uint32 {
	var t [32]uint32
	for i := range t {
		t[i] = generic.Unmapped
	}
	t[ctrlmodel.HatUp] = bitUp
	t[ctrlmodel.HatRight] = bitRight
	t[ctrlmodel.HatDown] = bitDown
	t[ctrlmodel.HatLeft] = bitLeft
	t[ctrlmodel.FaceDown] = bitI
	t[ctrlmodel.FaceRight] = bitII
	t[ctrlmodel.FaceLeft] = bitIV
	t[ctrlmodel.FaceUp] = bitV
	t[ctrlmodel.LShoulder] = bitIII
	t[ctrlmodel.RShoulder] = bitVI
	t[ctrlmodel.Select] = bitSelect
	t[ctrlmodel.Start] = bitRun
	return t
}()

// Descriptor is active-low/OR-combine, digital-only (no axes).
var Descriptor = generic.Descriptor{
	Mask:     mask,
	BtnsMask: btnsMask,
	IdleLow:  0x00003FFF,
	Axes:     generic.NoAxes(),
}

func New() *generic.Translator { return generic.New(Descriptor) }
