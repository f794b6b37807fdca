package psx

import (
	"testing"

	"github.com/retrowired/wiredcore/internal/ctrlmodel"
)

func TestIdleFrame(t *testing.T) {
	tr := New()
	var wd ctrlmodel.WiredData
	tr.InitBuffer(ctrlmodel.DevModePad, &wd)
	if wd.Output[0] != 0xFF || wd.Output[1] != 0xFF {
		t.Fatalf("buttons = %#x %#x, want 0xFF 0xFF (active-low idle)", wd.Output[0], wd.Output[1])
	}
	for _, off := range []int{OffRX, OffRY, OffLX, OffLY} {
		if wd.Output[off] != 0x80 {
			t.Fatalf("axis byte %d = %#x, want centered 0x80", off, wd.Output[off])
		}
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
		{"Select", ctrlmodel.Select, [2]byte{0xFE, 0xFF}},
		{"Start", ctrlmodel.Start, [2]byte{0xF7, 0xFF}},
		{"Up", ctrlmodel.HatUp, [2]byte{0xEF, 0xFF}},
		{"Cross", ctrlmodel.FaceDown, [2]byte{0xFF, 0xBF}},
		{"Square", ctrlmodel.FaceLeft, [2]byte{0xFF, 0x7F}},
		{"L1", ctrlmodel.LShoulder, [2]byte{0xFF, 0xFB}},
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
				t.Fatalf("report = %#x %#x, want %#x %#x", wd.Output[0], wd.Output[1], tt.want[0], tt.want[1])
			}
		})
	}
}

func TestAnalogAxesBiasedToUnsigned(t *testing.T) {
	tr := New()
	ctrls := make([]ctrlmodel.WiredCtrl, 1)
	tr.MetaInit(ctrls)
	ctrl := &ctrls[0]
	ctrl.Axes[ctrlmodel.AxisLX].Value = 0
	ctrl.Axes[ctrlmodel.AxisLY].Value = 127
	ctrl.Axes[ctrlmodel.AxisRX].Value = -128
	ctrl.Axes[ctrlmodel.AxisRY].Value = 500 // clamps to 127

	var wd ctrlmodel.WiredData
	tr.InitBuffer(ctrlmodel.DevModePad, &wd)
	tr.FromGeneric(ctrlmodel.DevModePad, ctrl, &wd)
	if wd.Output[OffLX] != 0x80 {
		t.Fatalf("LX = %#x, want centered 0x80", wd.Output[OffLX])
	}
	if wd.Output[OffLY] != 0xFF {
		t.Fatalf("LY = %#x, want 0xFF", wd.Output[OffLY])
	}
	if wd.Output[OffRX] != 0x00 {
		t.Fatalf("RX = %#x, want 0x00", wd.Output[OffRX])
	}
	if wd.Output[OffRY] != 0xFF {
		t.Fatalf("RY = %#x, want clamped 0xFF", wd.Output[OffRY])
	}
}

func TestTurboOverlayTargetsMappedBit(t *testing.T) {
	tr := New()
	var wd ctrlmodel.WiredData
	tr.InitBuffer(ctrlmodel.DevModePad, &wd)
	wd.CntMask[ctrlmodel.FaceDown] = (0b0100000 << 1) | 0

	wd.FrameCnt = 0 // on-phase
	tr.GenTurboMask(&wd)
	if wd.OutputMask[1] != 1<<(BitCross-8) {
		t.Fatalf("overlay = %#x, want Cross bit", wd.OutputMask[1])
	}

	wd.FrameCnt = 0x20 // off-phase
	tr.GenTurboMask(&wd)
	if wd.OutputMask[1] != 0 {
		t.Fatalf("off-phase overlay = %#x, want 0", wd.OutputMask[1])
	}
}
