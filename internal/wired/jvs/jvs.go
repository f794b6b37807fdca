// Package jvs is the JAMMA Video Standard (arcade I/O board)
// translator: a ten-button-plus-d-pad digital layout, built on the
// consolidated generic.Descriptor translator. JVS's command/poll
// framing (node assignment, coin counters) is an engine/transport
// concern, out of scope for the translator itself.
package jvs

import (
	"github.com/retrowired/wiredcore/internal/ctrlmodel"
	"github.com/retrowired/wiredcore/internal/wired/generic"
)

const (
	bit2 = iota
	bit1
	bitRight
	bitLeft
	bitDown
	bitUp
	bitService
	bitStart
	bit10
	bit9
	bit8
	bit7
	bit6
	bit5
	bit4
	bit3
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
	t[ctrlmodel.HatDown] = bitDown
	t[ctrlmodel.HatLeft] = bitLeft
	t[ctrlmodel.HatRight] = bitRight
	t[ctrlmodel.FaceDown] = bit1
	t[ctrlmodel.FaceRight] = bit2
	t[ctrlmodel.FaceLeft] = bit3
	t[ctrlmodel.FaceUp] = bit4
	t[ctrlmodel.LShoulder] = bit5
	t[ctrlmodel.RShoulder] = bit6
	t[ctrlmodel.Select] = bitService
	t[ctrlmodel.Start] = bitStart
	return t
}()

// Descriptor is active-low/OR-combine, digital-only.
var Descriptor = generic.Descriptor{
	Mask:     mask,
	BtnsMask: btnsMask,
	IdleLow:  0x0000FFFF,
	Axes:     generic.NoAxes(),
}

func New() *generic.Translator { return generic.New(Descriptor) }
