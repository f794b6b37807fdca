// Package saturn is the Sega Saturn protocol engine: the three-wire
// handshake (TR/TL as req/ack) frame builder and the multitap
// envelope framing.
package saturn

import "github.com/retrowired/wiredcore/internal/ctrlmodel"

// ID2SaturnPad is the pad-type nibble for a standard 3-button-class
// Saturn pad frame.
const ID2SaturnPad = 6

// saturnMultitap is the SATURN_MULTITAP ID2 nibble used in the
// multitap envelope header ("(SATURN_MULTITAP<<4)|1").
const saturnMultitap = 4

// twhTrailer is ID0_SAT_TWH>>4, the fixed trailing byte every TWH
// frame (single-pad or multitap) ends with.
const twhTrailer = 0x01

// Engine drives the Saturn three-wire handshake and multitap framing.
type Engine struct{}

func New() *Engine { return &Engine{} }

// PortCfg satisfies adapter.Engine; Saturn has no per-port peripheral
// allocation beyond the GPIO lines configured at Init.
func (e *Engine) PortCfg(mask uint32) {}

// BuildTWHFrame builds the single-pad three-wire handshake payload of
// [ID2<<4|nibble_count, b0, b1, ID0_TWH>>4].
func (e *Engine) BuildTWHFrame(wd *ctrlmodel.WiredData) []byte {
	wd.FrameCnt++
	header := byte(ID2SaturnPad<<4) | 2
	// Data bytes are active-low: OR-combine with the turbo overlay.
	return []byte{header, wd.Output[0] | wd.OutputMask[0], wd.Output[1] | wd.OutputMask[1], twhTrailer}
}

// BuildMultitapFrame builds the six-sub-port multitap envelope: a
// multitap header, a port-count nibble, each
// sub-pad's framed payload (without its own trailer), and one shared
// trailing byte.
func (e *Engine) BuildMultitapFrame(subPads []*ctrlmodel.WiredData) []byte {
	out := []byte{byte(saturnMultitap<<4) | 1, byte(len(subPads)) << 4}
	for _, wd := range subPads {
		wd.FrameCnt++
		header := byte(ID2SaturnPad<<4) | 2
		out = append(out, header, wd.Output[0]|wd.OutputMask[0], wd.Output[1]|wd.OutputMask[1])
	}
	out = append(out, twhTrailer)
	return out
}
