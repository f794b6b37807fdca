package jvs

import (
	"encoding/binary"
	"testing"

	"github.com/retrowired/wiredcore/internal/ctrlmodel"
)

func TestIdleWord(t *testing.T) {
	tr := New()
	var wd ctrlmodel.WiredData
	tr.InitBuffer(ctrlmodel.DevModePad, &wd)
	if got := binary.LittleEndian.Uint32(wd.Output[0:4]); got != 0x0000FFFF {
		t.Fatalf("idle word = %#x, want 0xffff", got)
	}
}

func TestStartClearsBitStart(t *testing.T) {
	tr := New()
	var wd ctrlmodel.WiredData
	tr.InitBuffer(ctrlmodel.DevModePad, &wd)

	ctrl := ctrlmodel.WiredCtrl{}
	ctrl.Btns[0].Value = 1 << ctrlmodel.Start
	ctrl.MapMask[0] = 1 << ctrlmodel.Start
	tr.FromGeneric(ctrlmodel.DevModePad, &ctrl, &wd)

	low := binary.LittleEndian.Uint32(wd.Output[0:4])
	if low&(1<<bitStart) != 0 {
		t.Fatalf("Start bit should clear, got %#x", low)
	}
}
