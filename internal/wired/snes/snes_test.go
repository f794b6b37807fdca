package snes

import (
	"testing"

	"github.com/retrowired/wiredcore/internal/ctrlmodel"
)

func press(tr *Translator, wd *ctrlmodel.WiredData, btn ctrlmodel.Button) {
	ctrl := ctrlmodel.WiredCtrl{}
	ctrl.Btns[0].Value = 1 << btn
	ctrl.MapMask[0] = 1 << btn
	tr.FromGeneric(ctrlmodel.DevModePad, &ctrl, wd)
}

func TestIdleFrameAllReleased(t *testing.T) {
	tr := New()
	var wd ctrlmodel.WiredData
	tr.InitBuffer(ctrlmodel.DevModePad, &wd)
	if wd.Output[0] != 0xFF || wd.Output[1] != 0xFF {
		t.Fatalf("idle word = %02x%02x, want ffff", wd.Output[1], wd.Output[0])
	}
}

func TestStartClearsBit3(t *testing.T) {
	tr := New()
	var wd ctrlmodel.WiredData
	tr.InitBuffer(ctrlmodel.DevModePad, &wd)
	press(tr, &wd, ctrlmodel.Start)

	word := uint16(wd.Output[0]) | uint16(wd.Output[1])<<8
	if word&(1<<BitStart) != 0 {
		t.Fatalf("Start bit should be cleared (active-low) in word %#04x", word)
	}
	if word|1<<BitStart != 0xFFFF {
		t.Fatalf("every other bit should remain released, word = %#04x", word)
	}
}

func TestUnusedHighBitsAlwaysReleased(t *testing.T) {
	tr := New()
	var wd ctrlmodel.WiredData
	tr.InitBuffer(ctrlmodel.DevModePad, &wd)
	press(tr, &wd, ctrlmodel.FaceDown)
	press(tr, &wd, ctrlmodel.FaceUp)
	press(tr, &wd, ctrlmodel.HatLeft)

	word := uint16(wd.Output[0]) | uint16(wd.Output[1])<<8
	if word&0xF000 != 0xF000 {
		t.Fatalf("bits 12-15 should stay released, word = %#04x", word)
	}
}
