package feedback

import "testing"

type fakeSink struct {
	events  []GenericFeedback
	started map[int]uint32
	stopped []int
}

func newFakeSink() *fakeSink {
	return &fakeSink{started: map[int]uint32{}}
}

func (f *fakeSink) QueueFeedback(g GenericFeedback) { f.events = append(f.events, g) }
func (f *fakeSink) StartRumbleStopTimer(wiredID int, durationUs uint32) {
	f.started[wiredID] = durationUs
}
func (f *fakeSink) StopRumbleStopTimer(wiredID int) { f.stopped = append(f.stopped, wiredID) }

func TestRouterDrainRumbleOnStartsTimer(t *testing.T) {
	var r Router
	r.Push(RawFeedback{WiredID: 2, Kind: KindRumble, Data: []byte{0x01}})
	sink := newFakeSink()
	r.Drain(sink, DecodeN64Rumble)

	if len(sink.events) != 1 || sink.events[0].State != 1 {
		t.Fatalf("expected one rumble-on event, got %+v", sink.events)
	}
	if _, ok := sink.started[2]; !ok {
		t.Fatal("expected rumble stop-timer to be started for port 2")
	}
	if r.Pending() != 0 {
		t.Fatal("queue should be drained")
	}
}

func TestRouterDrainRumbleOffCancelsTimer(t *testing.T) {
	var r Router
	r.Push(RawFeedback{WiredID: 1, Kind: KindRumble, Data: []byte{0xFE}})
	sink := newFakeSink()
	r.Drain(sink, DecodeN64Rumble)

	if len(sink.stopped) != 1 || sink.stopped[0] != 1 {
		t.Fatalf("expected rumble stop-timer cancellation for port 1, got %v", sink.stopped)
	}
}

func TestRouterOverflowDropsOldest(t *testing.T) {
	var r Router
	for i := 0; i < queueCapacity+5; i++ {
		r.Push(RawFeedback{WiredID: i, Kind: KindGameID, Data: []byte{byte(i)}})
	}
	if r.Pending() != queueCapacity {
		t.Fatalf("expected queue capped at %d, got %d", queueCapacity, r.Pending())
	}
	sink := newFakeSink()
	r.Drain(sink, nil)
	if sink.events[0].WiredID != 5 {
		t.Fatalf("expected oldest 5 events dropped, first remaining WiredID=%d", sink.events[0].WiredID)
	}
}

func TestDCRumbleDurationFormula(t *testing.T) {
	p := DCRumbleParams{Mag0: 10, Mag1: 20, Freq: 4, Duration: 2, Flags1: 0x88, Flags2: 0}
	got := p.DurationUs()
	want := uint32(1_000_000 * 2 * 20 / 4)
	if got != want {
		t.Fatalf("got %d want %d", got, want)
	}

	p2 := DCRumbleParams{Mag0: 10, Mag1: 20, Freq: 5, Duration: 2, Flags1: 0, Flags2: 1}
	got2 := p2.DurationUs()
	want2 := uint32(1_000_000 / 5)
	if got2 != want2 {
		t.Fatalf("got %d want %d", got2, want2)
	}
}

func TestPSRumbleMotorBytes(t *testing.T) {
	if state, _ := DecodePSRumble([]byte{0x00, 0x00}); state != 0 {
		t.Fatal("both motors off should be state 0")
	}
	if state, _ := DecodePSRumble([]byte{0x00, 0x40}); state != 1 {
		t.Fatal("either motor non-zero should be state 1")
	}
}
