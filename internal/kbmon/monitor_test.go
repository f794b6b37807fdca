package kbmon

import (
	"testing"

	"github.com/retrowired/wiredcore/internal/ctrlmodel"
)

// scancodeEcho returns a deterministic one-byte "event log" so tests
// can reconstruct ordering and make/break counts from the ring alone.
func scancodeEcho(makes, breaks *[]ctrlmodel.KBMIndex) Callback {
	return func(_ int, make bool, idx ctrlmodel.KBMIndex) []byte {
		if make {
			*makes = append(*makes, idx)
		} else {
			*breaks = append(*breaks, idx)
		}
		return []byte{byte(idx)}
	}
}

func TestMonitorMakeBreakCounts(t *testing.T) {
	var makes, breaks []ctrlmodel.KBMIndex
	m := New(0, scancodeEcho(&makes, &breaks))

	// press bit 2 and bit 5
	m.Update([4]uint32{1<<2 | 1<<5, 0, 0, 0}, 0)
	// release bit 2, leave bit 5 held, press bit 9
	m.Update([4]uint32{1 << 5, 1 << 9, 0, 0}, 100)
	// no change
	m.Update([4]uint32{1 << 5, 1 << 9, 0, 0}, 200)
	// release everything
	m.Update([4]uint32{0, 0, 0, 0}, 300)

	if len(makes) != 3 {
		t.Fatalf("expected 3 MAKE callbacks, got %d (%v)", len(makes), makes)
	}
	if len(breaks) != 3 {
		t.Fatalf("expected 3 BREAK callbacks, got %d (%v)", len(breaks), breaks)
	}
}

func TestMonitorOrderingWithinWord(t *testing.T) {
	var makes, breaks []ctrlmodel.KBMIndex
	m := New(0, scancodeEcho(&makes, &breaks))

	m.Update([4]uint32{1<<7 | 1<<3 | 1<<20, 0, 0, 0}, 0)

	want := []ctrlmodel.KBMIndex{3, 7, 20}
	if len(makes) != len(want) {
		t.Fatalf("got %v want %v", makes, want)
	}
	for i, w := range want {
		if makes[i] != w {
			t.Fatalf("event %d: got bit %d want bit %d (low-to-high ordering required)", i, makes[i], w)
		}
	}
}

func TestMonitorNoSpuriousEvents(t *testing.T) {
	var makes, breaks []ctrlmodel.KBMIndex
	m := New(0, scancodeEcho(&makes, &breaks))

	m.Update([4]uint32{1 << 4, 0, 0, 0}, 0)
	makes = nil
	breaks = nil
	m.Update([4]uint32{1 << 4, 0, 0, 0}, 10) // unchanged
	if len(makes) != 0 || len(breaks) != 0 {
		t.Fatalf("unchanged state fired spurious events: makes=%v breaks=%v", makes, breaks)
	}
}

func TestRingMessageGranularity(t *testing.T) {
	var r Ring
	if err := r.Push([]byte{0x01, 0x02}); err != nil {
		t.Fatal(err)
	}
	if err := r.Push([]byte{0xAA}); err != nil {
		t.Fatal(err)
	}
	out := make([]byte, 4)
	n, err := r.Pop(out)
	if err != nil || n != 2 || out[0] != 0x01 || out[1] != 0x02 {
		t.Fatalf("first message corrupted: n=%d out=%v err=%v", n, out[:n], err)
	}
	n, err = r.Pop(out)
	if err != nil || n != 1 || out[0] != 0xAA {
		t.Fatalf("second message corrupted: n=%d out=%v err=%v", n, out[:n], err)
	}
	if !r.Empty() {
		t.Fatal("ring should be empty after draining both messages")
	}
}

func TestRingOverflowDropsNewest(t *testing.T) {
	var r Ring
	big := make([]byte, ringCapacityBytes)
	if err := r.Push(big); err != nil {
		t.Fatalf("exact-capacity push should succeed: %v", err)
	}
	if err := r.Push([]byte{0x01}); err != ErrRingFull {
		t.Fatalf("expected ErrRingFull, got %v", err)
	}
}

func TestTypematicRepeat(t *testing.T) {
	var makes, breaks []ctrlmodel.KBMIndex
	m := New(0, scancodeEcho(&makes, &breaks))
	m.SetTypematic(true, 500, 100)

	m.Update([4]uint32{1 << 1, 0, 0, 0}, 0) // MAKE at t=0
	makes = nil

	m.Tick(400) // before delay elapses
	if len(makes) != 0 {
		t.Fatalf("repeat fired before delay elapsed: %v", makes)
	}
	m.Tick(500) // delay elapsed: first repeat
	m.Tick(600) // one rate interval later: second repeat
	m.Tick(690) // not yet another interval
	if len(makes) != 2 {
		t.Fatalf("expected 2 synthesized repeats, got %d", len(makes))
	}

	m.Update([4]uint32{0, 0, 0, 0}, 700) // BREAK stops repeat
	makes = nil
	m.Tick(10000)
	if len(makes) != 0 {
		t.Fatalf("repeat continued after BREAK: %v", makes)
	}
}
