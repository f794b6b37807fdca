// Package generic is the consolidated protocol engine companion to
// wired/generic: single-cycle digital(+analog) targets have
// no bank-cycling or handshake state of their own, so one engine type
// parameterized only by frame shape serves all of them, instead of N
// near-identical per-system engine packages.
package generic

import "github.com/retrowired/wiredcore/internal/ctrlmodel"

// Engine answers a poll with the live frame: the button word(s)
// combined with their turbo overlay per the descriptor's polarity
// (OR-combine active-low, AND-combine active-high), followed
// by any analog axis bytes copied straight through (axis overlay bytes
// are always zero — turbo-on-axis instead reverts the axis to neutral
// at the translator layer).
type Engine struct {
	// ButtonBytes is how many leading bytes of wd.Output/OutputMask are
	// the button word(s) (4, or 8 if the descriptor uses the high word).
	ButtonBytes int
	// FrameBytes is the total length of the frame this target answers
	// with (ButtonBytes plus any axis bytes).
	FrameBytes int
	ActiveHigh bool
}

func New(buttonBytes, frameBytes int, activeHigh bool) *Engine {
	return &Engine{ButtonBytes: buttonBytes, FrameBytes: frameBytes, ActiveHigh: activeHigh}
}

// PortCfg satisfies adapter.Engine; these targets have no per-port
// peripheral allocation beyond what Init configures once.
func (e *Engine) PortCfg(mask uint32) {}

// Poll returns the FrameBytes-long live frame for wd.
func (e *Engine) Poll(wd *ctrlmodel.WiredData) []byte {
	wd.FrameCnt++
	out := make([]byte, e.FrameBytes)
	for i := 0; i < e.FrameBytes; i++ {
		if i < e.ButtonBytes {
			if e.ActiveHigh {
				out[i] = wd.Output[i] & wd.OutputMask[i]
			} else {
				out[i] = wd.Output[i] | wd.OutputMask[i]
			}
			continue
		}
		out[i] = wd.Output[i]
	}
	return out
}
