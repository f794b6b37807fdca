package remap

import (
	"testing"

	"github.com/retrowired/wiredcore/internal/ctrlmodel"
)

func TestTurboAssertedZeroMaskIsIdentity(t *testing.T) {
	for frame := uint32(0); frame < 128; frame++ {
		if TurboAsserted(0, frame) {
			t.Fatalf("cnt_mask=0 asserted at frame %d", frame)
		}
	}
}

// TestTurboCadence50Duty checks the single-bit 0b0100000 pattern used by
// the 30 Hz autofire preset: over a 128-frame cycle the on-phase covers
// exactly 64 frames, in alternating groups of 32.
func TestTurboCadence50Duty(t *testing.T) {
	cnt := uint8((0b0100000 << 1) | 0)
	asserted := 0
	for frame := uint32(0); frame < 128; frame++ {
		on := TurboAsserted(cnt, frame)
		if on {
			asserted++
		}
		want := frame&0x20 == 0
		if on != want {
			t.Fatalf("frame %d: asserted = %v, want %v", frame, on, want)
		}
	}
	if asserted != 64 {
		t.Fatalf("asserted %d of 128 frames, want 64", asserted)
	}
}

// TestTurboPolarity distinguishes the two polarities with a multi-bit
// pattern, where press-phase and release-phase cadence genuinely differ.
func TestTurboPolarity(t *testing.T) {
	m := uint32(0b11)
	p1 := uint8(m<<1) | 1
	p0 := uint8(m << 1)
	on1, on0 := 0, 0
	for frame := uint32(0); frame < 128; frame++ {
		if TurboAsserted(p1, frame) {
			if frame&m != 0 {
				t.Fatalf("p=1 asserted at frame %d", frame)
			}
			on1++
		}
		if TurboAsserted(p0, frame) {
			if frame&m == m {
				t.Fatalf("p=0 asserted at frame %d", frame)
			}
			on0++
		}
	}
	if on1 != 32 || on0 != 96 {
		t.Fatalf("on-phase counts = %d/%d, want 32/96", on1, on0)
	}
}

func TestGenTurboMaskBtns16Identity(t *testing.T) {
	var table [32]uint8
	for i := range table {
		table[i] = 0xFF
	}
	table[ctrlmodel.FaceDown] = 4

	var wd ctrlmodel.WiredData // all cnt_mask zero

	neg := uint16(0x0000)
	GenTurboMaskBtns16(&wd, &neg, &table, true)
	if neg != 0x0000 {
		t.Fatalf("negative identity mask = %#x, want 0", neg)
	}

	pos := uint16(0xFFFF)
	GenTurboMaskBtns16(&wd, &pos, &table, false)
	if pos != 0xFFFF {
		t.Fatalf("positive identity mask = %#x, want 0xFFFF", pos)
	}
}

func TestGenTurboMaskBtns32MultiBank(t *testing.T) {
	tables := make([][32]uint8, 2)
	for j := range tables {
		for i := range tables[j] {
			tables[j][i] = 0xFF
		}
	}
	// The same normalized bit lands on different target bits per bank,
	// the Genesis/PCE multi-cycle shape.
	tables[0][ctrlmodel.FaceDown] = 2
	tables[1][ctrlmodel.FaceDown] = 5

	var wd ctrlmodel.WiredData
	wd.CntMask[ctrlmodel.FaceDown] = (0b0100000 << 1) | 0
	wd.FrameCnt = 0

	buttons := []uint32{0, 0}
	GenTurboMaskBtns32(&wd, buttons, tables, true)
	if buttons[0] != 1<<2 || buttons[1] != 1<<5 {
		t.Fatalf("banks = %#x %#x, want bit2/bit5", buttons[0], buttons[1])
	}

	buttons = []uint32{0xFFFFFFFF, 0xFFFFFFFF}
	GenTurboMaskBtns32(&wd, buttons, tables, false)
	if buttons[0] != ^uint32(1<<2) || buttons[1] != ^uint32(1<<5) {
		t.Fatalf("active-high banks = %#x %#x", buttons[0], buttons[1])
	}
}

func TestGenTurboMaskAxes8RevertsToNeutral(t *testing.T) {
	var wd ctrlmodel.WiredData
	wd.CntMask[ctrlmodel.LStickRight] = (0b0100000 << 1) | 0
	wd.FrameCnt = 0 // on-phase

	axes := []uint8{0xF0, 0x22}
	axesIdx := [6]uint8{0, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF}
	axesMeta := [6]uint8{0x80}
	dirBit := [6]uint8{ctrlmodel.LStickRight, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF}

	GenTurboMaskAxes8(&wd, axes, axesIdx, axesMeta, dirBit)
	if axes[0] != 0x80 {
		t.Fatalf("axis byte = %#x, want reverted to neutral 0x80", axes[0])
	}
	if axes[1] != 0x22 {
		t.Fatalf("unrelated axis byte disturbed: %#x", axes[1])
	}

	// Off-phase leaves the axis alone.
	axes[0] = 0xF0
	wd.FrameCnt = 0x20
	GenTurboMaskAxes8(&wd, axes, axesIdx, axesMeta, dirBit)
	if axes[0] != 0xF0 {
		t.Fatalf("off-phase axis byte = %#x, want untouched 0xF0", axes[0])
	}
}

func TestGenTurboMaskBtns16Overlay(t *testing.T) {
	var table [32]uint8
	for i := range table {
		table[i] = 0xFF
	}
	table[ctrlmodel.FaceDown] = 4

	var wd ctrlmodel.WiredData
	wd.CntMask[ctrlmodel.FaceDown] = (0b0100000 << 1) | 0
	wd.FrameCnt = 0 // bit 5 clear: on-phase

	neg := uint16(0x0000)
	GenTurboMaskBtns16(&wd, &neg, &table, true)
	if neg != 1<<4 {
		t.Fatalf("negative overlay = %#x, want bit 4", neg)
	}

	pos := uint16(0xFFFF)
	GenTurboMaskBtns16(&wd, &pos, &table, false)
	if pos != ^uint16(1<<4) {
		t.Fatalf("positive overlay = %#x, want all-but-bit-4", pos)
	}
}
