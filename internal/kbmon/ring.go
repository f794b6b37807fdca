package kbmon

import "errors"

// ErrRingFull is returned when a scancode message cannot fit in the
// remaining ring capacity. Monitor drops such a sequence without
// logging it; SetCode hands the error back to its caller.
var ErrRingFull = errors.New("kbmon: ring buffer full")

// ErrRingEmpty is returned by Pop when no message is queued.
var ErrRingEmpty = errors.New("kbmon: ring buffer empty")

// ringCapacityBytes is the fixed byte budget shared by all queued
// messages; a sequence is never split across two dequeues.
const ringCapacityBytes = 64

// message is one queued scancode sequence (1..N bytes depending on the
// owning translator's scancode width).
type message struct {
	data []byte
}

// Ring is a single-producer/single-consumer message-granularity queue:
// it stores whole scancode sequences, never splitting one across two
// dequeues, matching the design-note preference for SPSC message queues
// over byte-stream queues.
type Ring struct {
	messages []message
	usedB    int
}

// Push enqueues a scancode sequence. If it would exceed the 64-byte
// budget, the message is dropped and ErrRingFull is returned so the
// caller can log once (Overflow).
func (r *Ring) Push(data []byte) error {
	if r.usedB+len(data) > ringCapacityBytes {
		return ErrRingFull
	}
	cp := make([]byte, len(data))
	copy(cp, data)
	r.messages = append(r.messages, message{data: cp})
	r.usedB += len(cp)
	return nil
}

// Pop dequeues the oldest message into out, returning the number of
// bytes written. Returns ErrRingEmpty if nothing is queued.
func (r *Ring) Pop(out []byte) (int, error) {
	if len(r.messages) == 0 {
		return 0, ErrRingEmpty
	}
	m := r.messages[0]
	r.messages = r.messages[1:]
	r.usedB -= len(m.data)
	n := copy(out, m.data)
	return n, nil
}

// Empty reports whether the ring has no queued messages.
func (r *Ring) Empty() bool { return len(r.messages) == 0 }
