// Package dc is the Dreamcast Maple bus protocol engine:
// device-info/condition dispatch plus the VMU block-read/block-write
// protocol and VIBSET rumble capture, grounded on the documented Maple
// command set (DEVICE_REQUEST/GET_CONDITION/BLOCK_READ/BLOCK_WRITE/
// SET_CONDITION).
package dc

import (
	"github.com/retrowired/wiredcore/internal/ctrlmodel"
	"github.com/retrowired/wiredcore/internal/feedback"
	"github.com/retrowired/wiredcore/internal/memcard"
)

// Maple command codes this engine answers.
const (
	CmdDeviceRequest  byte = 0x01
	CmdGetCondition   byte = 0x09
	CmdBlockRead      byte = 0x0A
	CmdBlockWrite     byte = 0x0B
	CmdSetCondition   byte = 0x0E
	CmdGetMemInfo     byte = 0x02
)

// Maple response codes this engine's replies are framed with.
const (
	RespDeviceStatus byte = 0x05
	RespDataXfer     byte = 0x08
	RespAck          byte = 0x07
)

// blockSize is the VMU phase-block transfer unit.
const blockSize = 128

// Engine drives the Maple VMU/rumble-pak accessory surface for up to 4
// physical Maple ports, each with up to 2 sub-peripherals (expansion
// slot A/B) sharing the one memcard.Store region via a per-port
// constant offset.
type Engine struct {
	mc *memcard.Store
	fb *feedback.Router

	hasVMU    [4]bool
	hasPuru   [4]bool // jump/vibration pack
}

// New returns an engine backed by the given memory-card store and
// feedback router.
func New(mc *memcard.Store, fb *feedback.Router) *Engine {
	return &Engine{mc: mc, fb: fb}
}

// PortCfg satisfies adapter.Engine; Dreamcast has no per-port peripheral
// allocation beyond the Maple bus wiring configured at Init.
func (e *Engine) PortCfg(mask uint32) {}

// SetPeripherals selects which optional Maple peripherals are present in
// port's expansion slots.
func (e *Engine) SetPeripherals(port int, vmu, puru bool) {
	e.hasVMU[port] = vmu
	e.hasPuru[port] = puru
}

// funcCode returns the device's function-code bitmap for DEVICE_REQUEST,
// reflecting which peripherals are currently attached.
func (e *Engine) funcCode(port int) uint32 {
	const (
		funcController = 1 << 0
		funcStorage    = 1 << 1
		funcVibration  = 1 << 8
	)
	code := uint32(funcController)
	if e.hasVMU[port] {
		code |= funcStorage
	}
	if e.hasPuru[port] {
		code |= funcVibration
	}
	return code
}

// vmuOffset returns this port's byte offset into the shared memcard
// region; each Maple port gets one blockSize-aligned region sized to
// the store's per-bank granularity, mirroring the N64 bank-multiplexed
// addressing without the global bank-select (the memcard is a
// flat region this engine partitions per its own domain, same as N64's
// bank math in internal/engine/n64).
func vmuOffset(port int) uint32 {
	return uint32(port) * memcard.BankSize
}

// HandleCommand dispatches one Maple frame command byte against wd (the
// translator-maintained condition buffer). Returns the reply payload
// and whether a reply should be transmitted.
func (e *Engine) HandleCommand(port int, wd *ctrlmodel.WiredData, cmd []byte) ([]byte, bool) {
	if len(cmd) == 0 {
		return nil, false
	}
	switch cmd[0] {
	case CmdDeviceRequest, 0x00, 0xFF:
		return []byte{
			byte(e.funcCode(port)), byte(e.funcCode(port) >> 8),
			byte(e.funcCode(port) >> 16), byte(e.funcCode(port) >> 24),
		}, true

	case CmdGetCondition:
		wd.FrameCnt++
		cond := append([]byte(nil), wd.Output[:6]...)
		// Button bytes are active-low: OR-combine with the turbo overlay.
		cond[0] |= wd.OutputMask[0]
		cond[1] |= wd.OutputMask[1]
		return cond, true

	case CmdBlockRead:
		if !e.hasVMU[port] || len(cmd) < 5 {
			return nil, false
		}
		phase := cmd[4]
		data := make([]byte, blockSize)
		off := vmuOffset(port) + uint32(phase)*blockSize
		e.mc.Read(off, data)
		return data, true

	case CmdBlockWrite:
		if !e.hasVMU[port] || len(cmd) < 5 {
			return nil, false
		}
		phase := cmd[4]
		data := cmd[5:]
		if len(data) > blockSize {
			data = data[:blockSize]
		}
		off := vmuOffset(port) + uint32(phase)*blockSize
		e.mc.Write(off, data)
		return []byte{RespAck}, true

	case CmdSetCondition:
		if !e.hasPuru[port] || len(cmd) < 10 {
			return []byte{RespAck}, true
		}
		// VIBSET payload: {mag0, mag1, freq, duration, flags1, flags2},
		// carried at a fixed offset past the Maple frame's function-code
		// prefix.
		payload := append([]byte(nil), cmd[4:10]...)
		e.fb.Push(feedback.RawFeedback{WiredID: port, Kind: feedback.KindRumble, Data: payload})
		return []byte{RespAck}, true

	case CmdGetMemInfo:
		if !e.hasVMU[port] {
			return nil, false
		}
		blocks := uint16(memcard.BankSize / blockSize)
		return []byte{byte(blocks), byte(blocks >> 8)}, true

	default:
		return nil, false
	}
}
