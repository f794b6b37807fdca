// Package kbmon implements the keyboard monitor: a
// per-port key-state tracker that detects make/break transitions, feeds
// a translator-supplied scancode callback, queues the resulting wire
// bytes on a bounded ring, and synthesizes typematic repeat.
package kbmon

import (
	"github.com/retrowired/wiredcore/internal/ctrlmodel"
	"github.com/retrowired/wiredcore/pkg/bits"
)

// Callback converts a KBM-index make/break event into a queued wire
// scancode sequence of 1..N bytes.
// A nil/empty return means the translator doesn't queue anything for
// that transition (e.g. a modifier key folded into the next byte).
type Callback func(devID int, make bool, kbmIndex ctrlmodel.KBMIndex) []byte

// Monitor is the per-dev_id state: { callback, ring_buffer,
// last_key_state[4] }. The 4x32-bit last-state words cover the 128-key
// KBMIndex space (ctrlmodel.KBMMax).
type Monitor struct {
	devID int
	cb    Callback
	ring  Ring
	last  [4]uint32

	typematicOn    bool
	delayUs        uint64
	rateUs         uint64
	repeatKey      ctrlmodel.KBMIndex
	repeating      bool
	nextRepeatAtUs uint64
}

// New returns a monitor for the given device id, driven by cb.
func New(devID int, cb Callback) *Monitor {
	return &Monitor{devID: devID, cb: cb}
}

// Update XORs the new 128-bit key state against the last observed
// state and fires MAKE/BREAK callbacks for every changed bit, in bit
// order within each word (bit i fires before bit i+1). nowUs is used
// to arm the typematic timer for held keys.
func (m *Monitor) Update(state [4]uint32, nowUs uint64) {
	for w := 0; w < 4; w++ {
		changed := state[w] ^ m.last[w]
		if changed == 0 {
			continue
		}
		for i := 0; i < 32; i++ {
			if !bits.Test(changed, uint8(i)) {
				continue
			}
			idx := ctrlmodel.KBMIndex(w*32 + i)
			m.fire(idx, bits.Test(state[w], uint8(i)), nowUs)
		}
	}
	m.last = state
}

func (m *Monitor) fire(idx ctrlmodel.KBMIndex, make bool, nowUs uint64) {
	if seq := m.cb(m.devID, make, idx); len(seq) > 0 {
		_ = m.ring.Push(seq) // overflow drops the newest sequence
	}
	if make {
		m.repeatKey = idx
		m.repeating = true
		m.nextRepeatAtUs = nowUs + m.delayUs
	} else if idx == m.repeatKey {
		m.repeating = false
	}
}

// SetTypematic configures (or disables) synthesized repeat: delayUs
// after a MAKE with no intervening BREAK, then every rateUs until
// BREAK.
func (m *Monitor) SetTypematic(enable bool, delayUs, rateUs uint64) {
	m.typematicOn = enable
	m.delayUs = delayUs
	m.rateUs = rateUs
	if !enable {
		m.repeating = false
	}
}

// Tick advances the typematic timer; call it once per poll with the
// current monotonic microsecond clock. Fires a synthesized MAKE
// callback (and queues its scancode bytes) for each repeat interval
// elapsed.
func (m *Monitor) Tick(nowUs uint64) {
	if !m.typematicOn || !m.repeating {
		return
	}
	for nowUs >= m.nextRepeatAtUs {
		if seq := m.cb(m.devID, true, m.repeatKey); len(seq) > 0 {
			_ = m.ring.Push(seq)
		}
		m.nextRepeatAtUs += m.rateUs
	}
}

// SetCode enqueues a pre-built scancode sequence directly, used by
// translators that synthesize bytes outside the
// normal make/break path (e.g. CapsLock XOR composition).
func (m *Monitor) SetCode(data []byte) error {
	return m.ring.Push(data)
}

// GetCode dequeues the oldest scancode sequence into out, returning the
// number of bytes written (get_code). Drained by the
// protocol engine at poll time.
func (m *Monitor) GetCode(out []byte) (int, error) {
	return m.ring.Pop(out)
}

// HasCode reports whether a scancode sequence is queued.
func (m *Monitor) HasCode() bool {
	return !m.ring.Empty()
}
