package ctrlmodel

import "sync/atomic"

// CtrlMeta is the per-axis calibration described Signed
// int32 input is clamped to [SizeMin, SizeMax] then biased by Neutral
// before being packed into the wire width by a translator.
type CtrlMeta struct {
	SizeMin  int32
	SizeMax  int32
	Neutral  int32
	AbsMax   int32
	AbsMin   int32
	Polarity bool // true flips sign for axes whose on-console "up" is negative
}

// Clamp clamps and biases a raw axis value per Meta, the shared first
// half of the "mapping algorithm for a 32-bit-or-less wire word", before a translator packs it at its target bit width.
func (m CtrlMeta) Clamp(v int32) int32 {
	if v < m.SizeMin {
		v = m.SizeMin
	}
	if v > m.SizeMax {
		v = m.SizeMax
	}
	v += m.Neutral
	if m.Polarity {
		v = -v
	}
	return v
}

// ButtonWord is one of the four 32-bit words in a control bundle. Word 0
// carries the normalized buttons defined in buttons.go; word 3 is
// reserved for meta-key macro matching.
type ButtonWord struct {
	Value uint32
	// CntMask holds the per-bit turbo descriptor: low bit
	// selects polarity, upper 7 bits the cadence pattern.
	CntMask [32]uint8
}

// AxisState is one normalized analog axis.
type AxisState struct {
	Value    int32
	Relative bool // true: value is a delta, consumed via TakeDelta
	CntMask  uint8
	Meta     CtrlMeta

	accum int32 // relative-axis accumulator, cleared on read
}

// AccumulateDelta adds d to a relative axis accumulator (Bluetooth-side
// producer call).
func (a *AxisState) AccumulateDelta(d int32) {
	a.accum += d
}

// TakeDelta atomically reads-and-resets the relative accumulator, or
// simply returns Value for absolute axes (trackball/paddle).
func (a *AxisState) TakeDelta() int32 {
	if !a.Relative {
		return a.Value
	}
	v := a.accum
	a.accum = 0
	return v
}

// TargetMask is the static per-target capability table: which
// normalized bits are physically representable (Mask) and
// which are analog-capable / axis-expansion sources (Desc).
type TargetMask struct {
	Mask [4]uint32
	Desc [4]uint32
}

// WiredCtrl is the normalized input presented to a translator after
// remap.
type WiredCtrl struct {
	Btns    [4]ButtonWord
	Axes    [int(AxisCount)]AxisState
	MapMask [4]uint32 // which bits are live for this target
	Mask    *TargetMask
	Index   int // destination port
}

// Port lifecycle/control flags, a relaxed atomic
// bitset so — only set/clear/test operations are permitted.
type Flag uint32

const (
	FlagKBMonInit Flag = 1 << iota
	FlagWaitingForRelease
	FlagWaitingForRelease2
	FlagRumbleOn
)

// Flags is the relaxed atomic bitset backing WiredData.flags.
type Flags struct {
	bits atomic.Uint32
}

func (f *Flags) Set(m Flag)        { f.bits.Or(uint32(m)) }
func (f *Flags) Clear(m Flag)      { f.bits.And(^uint32(m)) }
func (f *Flags) Test(m Flag) bool  { return f.bits.Load()&uint32(m) != 0 }
func (f *Flags) Load() uint32      { return f.bits.Load() }

// WiredPacketSize is the byte size of WiredData.Output/OutputMask,
// sized for the largest wire packet among the implemented systems
// (Dreamcast Maple VMU block transfers).
const WiredPacketSize = 128

// WiredData is one logical port slot. The translator is the sole
// writer of Output/OutputMask; the protocol engine is the sole
// reader; FrameCnt is engine-write / remap-read. The transfer is
// permitted to tear at byte granularity — acceptable because the
// output is refreshed every poll.
type WiredData struct {
	Output     [WiredPacketSize]byte
	OutputMask [WiredPacketSize]byte

	// CntMask is the per-logical-input turbo descriptor consumed by
	// gen_turbo_mask, indexed by normalized bit position.
	CntMask [32]uint8

	// FrameCnt is bumped by the protocol engine on every successful
	// poll/frame for this port.
	FrameCnt uint32

	Flags Flags

	DevMode DevMode
	DevID   int // bank/sub-port identity within a multitap group
}
