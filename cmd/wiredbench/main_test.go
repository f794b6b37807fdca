package main

import "testing"

func TestBenchEverySystemProducesAFrame(t *testing.T) {
	systems := []string{
		"genesis", "n64", "psx", "saturn", "dc", "snes", "pce", "jaguar",
		"parallel", "real3do", "gc", "wii", "cdi", "pcfx", "jvs",
	}
	for _, sys := range systems {
		frame, err := bench(sys, 0)
		if err != nil {
			t.Fatalf("%s: bench returned error: %v", sys, err)
		}
		if len(frame) == 0 {
			t.Fatalf("%s: bench returned an empty frame", sys)
		}
	}
}

func TestBenchUnknownSystem(t *testing.T) {
	if _, err := bench("nonexistent", 0); err == nil {
		t.Fatal("expected an error for an unknown system")
	}
}

func TestParseButtonsRejectsUnknownName(t *testing.T) {
	if _, err := parseButtons("NotAButton"); err == nil {
		t.Fatal("expected an error for an unknown button name")
	}
}

func TestParseButtonsCombinesMultiple(t *testing.T) {
	mask, err := parseButtons("HatUp,Start")
	if err != nil {
		t.Fatalf("parseButtons: %v", err)
	}
	if mask == 0 {
		t.Fatal("expected a non-zero mask")
	}
}
