package remap

import (
	"github.com/retrowired/wiredcore/internal/ctrlmodel"
	"github.com/retrowired/wiredcore/internal/wired"
)

// Apply runs one remap cycle for a port: macro/combo detection over the
// meta-key word (btns[3].value), then dispatch to the target's
// translator. The returned command, if non-zero, must be forwarded to
// the adapter supervisor's system-manager bus.
func Apply(t wired.Translator, mode ctrlmodel.DevMode, ctrl *ctrlmodel.WiredCtrl, wd *ctrlmodel.WiredData, ms *MacroState) SysMgrCmd {
	cmd := ms.Evaluate(ctrl.Btns[3].Value, wd, DefaultMacros)
	t.FromGeneric(mode, ctrl, wd)
	return cmd
}

// ApplyMapping rewrites ctrl's first button word through the user
// remap table (the persisted mapping[set][src] = dst) ahead of macro
// evaluation and translator dispatch. The
// liveness mask and per-bit turbo descriptors follow their source bit
// to its destination. Meta keys (word 3) are never remapped.
func ApplyMapping(table *[32]uint8, ctrl *ctrlmodel.WiredCtrl) {
	var value, live uint32
	var cnt [32]uint8
	for src := uint8(0); src < 32; src++ {
		dst := table[src] & 31
		if ctrl.Btns[0].Value&(1<<src) != 0 {
			value |= 1 << dst
		}
		if ctrl.MapMask[0]&(1<<src) != 0 {
			live |= 1 << dst
		}
		if ctrl.Btns[0].CntMask[src] != 0 {
			cnt[dst] = ctrl.Btns[0].CntMask[src]
		}
	}
	ctrl.Btns[0].Value = value
	ctrl.MapMask[0] = live
	ctrl.Btns[0].CntMask = cnt
}
