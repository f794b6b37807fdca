package feedback

// DecodeN64Rumble implements the N64 boolean rumble-pak write command:
// 0x01 means on, 0xFE means off, with no natural duration
// (the motor runs until the next write refreshes or cancels it).
func DecodeN64Rumble(data []byte) (state uint8, durationUs uint32) {
	if len(data) == 0 {
		return 0, 0
	}
	if data[0] == 0x01 {
		return 1, 0
	}
	return 0, 0
}

// DecodePSRumble implements the PS1/PS2 dual-motor-byte-per-poll
// semantics: either motor non-zero means "on", refreshed
// every poll, so duration is likewise left at 0 (continuous refresh by
// the next poll takes the place of a timed stop).
func DecodePSRumble(data []byte) (state uint8, durationUs uint32) {
	for _, b := range data {
		if b != 0 {
			return 1, 0
		}
	}
	return 0, 0
}

// DCRumbleParams is the Maple VIBSET parameter block the Dreamcast
// engine captures: a magnitude pair, a frequency, a duration byte and
// two flag bytes.
type DCRumbleParams struct {
	Mag0, Mag1 uint8
	Freq       uint8
	Duration   uint8
	Flags1     uint8
	Flags2     uint8
}

// DurationUs derives the stop-timer interval:
//
//	dur_us = 1_000_000 * duration * max(mag0,mag1) / freq
//	  when flags1&0x88 or !flags2&1; otherwise dur_us = 1_000_000 / freq
func (p DCRumbleParams) DurationUs() uint32 {
	if p.Freq == 0 {
		return 0
	}
	if p.Flags1&0x88 != 0 || p.Flags2&1 == 0 {
		maxMag := p.Mag0
		if p.Mag1 > maxMag {
			maxMag = p.Mag1
		}
		return 1_000_000 * uint32(p.Duration) * uint32(maxMag) / uint32(p.Freq)
	}
	return 1_000_000 / uint32(p.Freq)
}

// DecodeDCRumble decodes a raw 6-byte Maple VIBSET payload
// (mag0, mag1, freq, duration, flags1, flags2) into the normalized
// {state, duration_us} tuple. State is on whenever either magnitude is
// non-zero.
func DecodeDCRumble(data []byte) (state uint8, durationUs uint32) {
	if len(data) < 6 {
		return 0, 0
	}
	p := DCRumbleParams{
		Mag0:     data[0],
		Mag1:     data[1],
		Freq:     data[2],
		Duration: data[3],
		Flags1:   data[4],
		Flags2:   data[5],
	}
	if p.Mag0 == 0 && p.Mag1 == 0 {
		return 0, 0
	}
	return 1, p.DurationUs()
}
