package gc

import (
	"encoding/binary"
	"testing"

	"github.com/retrowired/wiredcore/internal/ctrlmodel"
)

func TestIdleWordAndOverlay(t *testing.T) {
	tr := New()
	var wd ctrlmodel.WiredData
	tr.InitBuffer(ctrlmodel.DevModePad, &wd)
	if got := binary.LittleEndian.Uint32(wd.Output[0:4]); got != 0x8020 {
		t.Fatalf("idle word = %#x, want 0x8020", got)
	}
	if got := binary.LittleEndian.Uint32(wd.OutputMask[0:4]); got != 0xFFFFFFFF {
		t.Fatalf("idle overlay = %#x, want all-1s", got)
	}
}

func TestAxisNeutralAtIdle(t *testing.T) {
	tr := New()
	var wd ctrlmodel.WiredData
	tr.InitBuffer(ctrlmodel.DevModePad, &wd)
	if wd.Output[8] != 0x80 {
		t.Fatalf("LX neutral = %#x, want 0x80", wd.Output[8])
	}
	if wd.Output[12] != 0x20 {
		t.Fatalf("L trigger neutral = %#x, want 0x20", wd.Output[12])
	}
}

func TestFaceRightSetsBitA(t *testing.T) {
	tr := New()
	var wd ctrlmodel.WiredData
	tr.InitBuffer(ctrlmodel.DevModePad, &wd)

	ctrl := ctrlmodel.WiredCtrl{}
	ctrl.Btns[0].Value = 1 << ctrlmodel.FaceRight
	ctrl.MapMask[0] = 1 << ctrlmodel.FaceRight
	tr.FromGeneric(ctrlmodel.DevModePad, &ctrl, &wd)

	low := binary.LittleEndian.Uint32(wd.Output[0:4])
	if low&(1<<bitA) == 0 {
		t.Fatalf("A bit should set, got %#x", low)
	}
}
