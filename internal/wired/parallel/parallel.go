// Package parallel is the NES/Atari-class parallel-port translator:
// a single active-low digital word, d-pad plus two fire buttons.
// Built on the consolidated generic.Descriptor translator rather than
// a bespoke package, since both ports share one layout; the per-port
// GPIO pin tie is a wiring-level detail outside this core.
package parallel

import (
	"github.com/retrowired/wiredcore/internal/ctrlmodel"
	"github.com/retrowired/wiredcore/internal/wired/generic"
)

var mask = ctrlmodel.TargetMask{
	Mask: [4]uint32{
		1<<ctrlmodel.HatUp | 1<<ctrlmodel.HatDown | 1<<ctrlmodel.HatLeft | 1<<ctrlmodel.HatRight |
			1<<ctrlmodel.FaceDown | 1<<ctrlmodel.FaceRight,
	},
}

var btnsMask = func() [32]uint32 {
	var t [32]uint32
	for i := range t {
		t[i] = generic.Unmapped
	}
	t[ctrlmodel.HatUp] = 0
	t[ctrlmodel.HatDown] = 1
	t[ctrlmodel.HatLeft] = 2
	t[ctrlmodel.HatRight] = 3
	t[ctrlmodel.FaceDown] = 4 // button 1 (TL)
	t[ctrlmodel.FaceRight] = 5 // button 2 (TR)
	return t
}()

// Descriptor is the single-cycle, active-low, no-axis layout shared by
// both controller ports of a two-player parallel adapter.
var Descriptor = generic.Descriptor{
	Mask:     mask,
	BtnsMask: btnsMask,
	IdleLow:  0x0000003F,
	Axes:     generic.NoAxes(),
}

func New() *generic.Translator { return generic.New(Descriptor) }
