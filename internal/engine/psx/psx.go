// Package psx is the PSX/PS2 SPI protocol engine: reports
// the active device-ID byte for the current mode (digital/analog/
// analog-with-pressure), and gates the analog-with-pressure variant
// behind the 0x43/0x44/.../0x4F configuration-mode sub-state machine
package psx

import (
	"github.com/retrowired/wiredcore/internal/ctrlmodel"
	wpsx "github.com/retrowired/wiredcore/internal/wired/psx"
)

// Device-ID bytes.
const (
	IDDigital         byte = 0x41
	IDAnalog          byte = 0x73
	IDAnalogPressure  byte = 0x79
	IDConfig          byte = 0xF3
	ackByte           byte = 0x5A
	cfgEnterExitCmd   byte = 0x43
	cfgSetFormatCmd   byte = 0x44
	pollCmd           byte = 0x42
)

// Engine holds the per-port config-mode sub-state. Analog vs. digital
// is driven by the port's ctrlmodel.DevMode (flipped by the PAD_MT
// macro), not tracked here.
type Engine struct {
	configMode [portCount]bool
	pressure   [portCount]bool

	// rumbleMap holds the 0x4D motor-to-byte assignment per port; the
	// wire loop consults it to know which poll-command bytes carry the
	// small/large motor values.
	rumbleMap [portCount][2]byte
}

const portCount = 8 // up to two 4-way multitaps

func New() *Engine {
	e := &Engine{}
	for p := range e.rumbleMap {
		e.rumbleMap[p] = [2]byte{0xFF, 0xFF}
	}
	return e
}

// PortCfg satisfies adapter.Engine; PSX has no per-port peripheral
// allocation beyond the SPI slave configured at Init.
func (e *Engine) PortCfg(mask uint32) {}

func (e *Engine) devID(port int, mode ctrlmodel.DevMode) byte {
	if mode == ctrlmodel.DevModePad {
		return IDDigital
	}
	if e.pressure[port] {
		return IDAnalogPressure
	}
	return IDAnalog
}

// HandleCommand dispatches one PSX command (the byte following the
// 0x01 port-select byte the host always sends first) for port,
// returning the full reply including the leading device-ID byte.
func (e *Engine) HandleCommand(port int, mode ctrlmodel.DevMode, wd *ctrlmodel.WiredData, cmd []byte) []byte {
	if len(cmd) == 0 {
		return []byte{0xFF}
	}
	switch cmd[0] {
	case pollCmd:
		wd.FrameCnt++
		// Button bytes are active-low: OR-combine with the turbo overlay.
		reply := []byte{e.devID(port, mode), ackByte, wd.Output[0] | wd.OutputMask[0], wd.Output[1] | wd.OutputMask[1]}
		if mode != ctrlmodel.DevModePad {
			reply = append(reply, wd.Output[wpsx.OffRX], wd.Output[wpsx.OffRY], wd.Output[wpsx.OffLX], wd.Output[wpsx.OffLY])
		}
		if e.pressure[port] {
			reply = append(reply, make([]byte, 12)...)
		}
		return reply

	case cfgEnterExitCmd:
		// Frame layout after the command byte is a 0x00 pad, then the
		// argument bytes, so the enter/exit flag is cmd[2].
		if len(cmd) > 2 {
			e.configMode[port] = cmd[2] != 0
		}
		return []byte{IDConfig, ackByte}

	case cfgSetFormatCmd:
		if e.configMode[port] && len(cmd) > 3 {
			e.pressure[port] = cmd[3] == 0x03
		}
		return []byte{IDConfig, ackByte}

	case 0x45, 0x46, 0x47, 0x4C, 0x4D, 0x4F:
		// Remaining config-mode commands (status query, constant reads,
		// rumble channel mapping, report-length select). Accepted only
		// while in config mode; replies are the fixed-length config frame.
		if !e.configMode[port] {
			return []byte{0xFF}
		}
		if cmd[0] == 0x4D && len(cmd) > 3 {
			e.rumbleMap[port] = [2]byte{cmd[2], cmd[3]}
		}
		return append([]byte{IDConfig, ackByte}, make([]byte, 6)...)

	default:
		// UnknownCommand recovery: "PSX: 0xFF pad-out".
		return []byte{0xFF}
	}
}

// MotorBytes extracts the two motor values from the payload of a poll
// command, using the 0x4D assignment previously configured for port
// (0x00 selects the small motor byte, 0x01 the large). A byte mapped to
// 0xFF is unassigned and reads as zero.
func (e *Engine) MotorBytes(port int, payload []byte) (small, large byte) {
	for i, b := range payload {
		if e.rumbleMap[port][0] == byte(i) {
			small = b
		}
		if e.rumbleMap[port][1] == byte(i) {
			large = b
		}
	}
	return small, large
}
