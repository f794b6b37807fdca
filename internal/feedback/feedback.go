// Package feedback implements the feedback router:
// normalizing inbound console->controller events (rumble, LEDs,
// memory-pak writes, game-ID sniffing) captured by a protocol engine
// into a uniform event queued for the Bluetooth side.
package feedback

// Kind identifies the feedback event category.
type Kind int

const (
	KindRumble Kind = iota
	KindGameID
	KindMemWrite
	KindLED
)

// RawFeedback is what a protocol engine pushes: the wire-native bytes,
// untouched.
type RawFeedback struct {
	WiredID int
	Kind    Kind
	Data    []byte
}

// GenericFeedback is the normalized event forwarded to the Bluetooth
// side. State/Cycles/Start carry the rumble tuple
// (state, duration) once converted; Data carries the raw payload for
// GAME_ID/MEM_WRITE/LED events, which have no natural (state,duration)
// shape.
type GenericFeedback struct {
	WiredID int
	Kind    Kind
	State   uint8
	Cycles  uint32 // duration_us for rumble
	Start   uint32 // reserved for address-bearing feedback (mem-write offset)
	Data    []byte
}

// queueCapacity bounds the feedback queue; the oldest event is dropped
// on overflow (the next poll re-asserts any lost state).
const queueCapacity = 64

// Router is the single consumer of engine-produced RawFeedback. It runs
// in the adapter context or a lower-priority task, never the wire
// interrupt context.
type Router struct {
	queue []RawFeedback
}

// Push enqueues a raw feedback event, dropping the oldest queued event
// if the bounded ring is full.
func (r *Router) Push(raw RawFeedback) {
	if len(r.queue) >= queueCapacity {
		r.queue = r.queue[1:]
	}
	r.queue = append(r.queue, raw)
}

// Pending reports the number of queued-but-undrained events.
func (r *Router) Pending() int { return len(r.queue) }

// BluetoothSink is the Bluetooth-side collaborator the router forwards
// to: a feedback queue plus the rumble-off stop-timer pair.
type BluetoothSink interface {
	QueueFeedback(GenericFeedback)
	StartRumbleStopTimer(wiredID int, durationUs uint32)
	StopRumbleStopTimer(wiredID int)
}

// RumbleDecoder converts a source-specific raw rumble payload into the
// normalized {state, duration_us} tuple. Each engine that
// produces KindRumble feedback supplies its own decoder (N64 boolean,
// DC duration/magnitude/frequency, PS1/PS2 dual motor byte).
type RumbleDecoder func(data []byte) (state uint8, durationUs uint32)

// Drain converts and forwards every queued event to sink. decode is
// consulted only for KindRumble events; other kinds pass their raw
// bytes through unconverted.
func (r *Router) Drain(sink BluetoothSink, decode RumbleDecoder) {
	for _, raw := range r.queue {
		g := GenericFeedback{WiredID: raw.WiredID, Kind: raw.Kind, Data: raw.Data}
		if raw.Kind == KindRumble && decode != nil {
			state, dur := decode(raw.Data)
			g.State = state
			g.Cycles = dur
			if state == 1 {
				sink.StartRumbleStopTimer(raw.WiredID, dur)
			} else {
				sink.StopRumbleStopTimer(raw.WiredID)
			}
		}
		sink.QueueFeedback(g)
	}
	r.queue = r.queue[:0]
}
