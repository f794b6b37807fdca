package saturn

import (
	"testing"

	"github.com/retrowired/wiredcore/internal/ctrlmodel"
)

func TestIdleFrame(t *testing.T) {
	tr := New()
	var wd ctrlmodel.WiredData
	tr.InitBuffer(ctrlmodel.DevModePad, &wd)
	if wd.Output[0] != 0xFF || wd.Output[1] != 0xFF {
		t.Fatalf("data bytes = %#x %#x, want 0xFF 0xFF", wd.Output[0], wd.Output[1])
	}
	if wd.OutputMask[0] != 0x00 || wd.OutputMask[1] != 0x00 {
		t.Fatalf("turbo overlay not all-pass: %#x %#x", wd.OutputMask[0], wd.OutputMask[1])
	}
}

func TestButtonMapping(t *testing.T) {
	tests := []struct {
		name string
		btn  ctrlmodel.Button
		want [2]byte
	}{
		{"Up", ctrlmodel.HatUp, [2]byte{0x7F, 0xFF}},
		{"Start", ctrlmodel.Start, [2]byte{0xF7, 0xFF}},
		{"A", ctrlmodel.FaceDown, [2]byte{0xFB, 0xFF}},
		{"B", ctrlmodel.FaceLeft, [2]byte{0xFE, 0xFF}},
		{"C", ctrlmodel.FaceRight, [2]byte{0xFD, 0xFF}},
		{"X", ctrlmodel.FaceUp, [2]byte{0xFF, 0xBF}},
		{"Z", ctrlmodel.LTrigDigital, [2]byte{0xFF, 0xEF}},
		{"L", ctrlmodel.LShoulder, [2]byte{0xFF, 0xF7}},
		{"R", ctrlmodel.RShoulder, [2]byte{0xFF, 0x7F}},
	}
	tr := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var wd ctrlmodel.WiredData
			tr.InitBuffer(ctrlmodel.DevModePad, &wd)
			var ctrl ctrlmodel.WiredCtrl
			ctrl.Btns[0].Value = 1 << tt.btn
			ctrl.MapMask[0] = 1 << tt.btn
			tr.FromGeneric(ctrlmodel.DevModePad, &ctrl, &wd)
			if wd.Output[0] != tt.want[0] || wd.Output[1] != tt.want[1] {
				t.Fatalf("data = %#x %#x, want %#x %#x", wd.Output[0], wd.Output[1], tt.want[0], tt.want[1])
			}
		})
	}
}

func TestReleaseReturnsToIdle(t *testing.T) {
	tr := New()
	var wd ctrlmodel.WiredData
	tr.InitBuffer(ctrlmodel.DevModePad, &wd)
	ctrl := ctrlmodel.WiredCtrl{}
	ctrl.Btns[0].Value = 1<<ctrlmodel.HatUp | 1<<ctrlmodel.FaceDown
	ctrl.MapMask[0] = mask.Mask[0]
	tr.FromGeneric(ctrlmodel.DevModePad, &ctrl, &wd)

	ctrl.Btns[0].Value = 0
	tr.FromGeneric(ctrlmodel.DevModePad, &ctrl, &wd)
	if wd.Output[0] != 0xFF || wd.Output[1] != 0xFF {
		t.Fatalf("release did not restore idle: %#x %#x", wd.Output[0], wd.Output[1])
	}
}

func TestTurboOverlay(t *testing.T) {
	tr := New()
	var wd ctrlmodel.WiredData
	tr.InitBuffer(ctrlmodel.DevModePad, &wd)
	wd.CntMask[ctrlmodel.FaceDown] = (0b0100000 << 1) | 0

	wd.FrameCnt = 0 // on-phase forces A released on the active-low wire
	tr.GenTurboMask(&wd)
	if wd.OutputMask[0] != 1<<Bit0A {
		t.Fatalf("overlay = %#x, want A bit", wd.OutputMask[0])
	}
	wd.FrameCnt = 0x20
	tr.GenTurboMask(&wd)
	if wd.OutputMask[0] != 0 {
		t.Fatalf("off-phase overlay = %#x, want 0", wd.OutputMask[0])
	}
}
