// Package wired defines the per-system translator contract. Concrete
// systems live in subpackages (wired/genesis, wired/n64, ...); the
// generic, descriptor-driven translator used by systems that don't
// need bespoke logic is wired/generic.
package wired

import "github.com/retrowired/wiredcore/internal/ctrlmodel"

// System identifies a target console for dispatch purposes.
type System int

const (
	SystemGenesis System = iota
	SystemN64
	SystemPSX
	SystemSaturn
	SystemDreamcast
	SystemSNES
	SystemPCEngine
	SystemJaguar
	SystemParallel
	SystemReal3DO
	SystemGameCube
	SystemWii
	SystemCDi
	SystemPCFX
	SystemJVS
)

// Translator is the contract every per-system translator implements
//:
//
//	init_buffer(dev_mode, &wired)
//	meta_init(&ctrl[N])
//	from_generic(dev_mode, &ctrl, &wired)
//	gen_turbo_mask(&wired)
type Translator interface {
	// MetaInit populates Mask/Desc and per-axis Meta for every port
	// slot. Must reset prior state.
	MetaInit(ctrl []ctrlmodel.WiredCtrl)
	// InitBuffer writes the idle-frame Output and the all-pass
	// OutputMask for the given device mode. This is the only
	// place idle-frame bytes are defined.
	InitBuffer(mode ctrlmodel.DevMode, wd *ctrlmodel.WiredData)
	// FromGeneric is the translator entry point: normalized control
	// bundle -> wire buffer.
	FromGeneric(mode ctrlmodel.DevMode, ctrl *ctrlmodel.WiredCtrl, wd *ctrlmodel.WiredData)
	// GenTurboMask paints the turbo overlay for wd.FrameCnt into
	// OutputMask. No engine and not the adapter supervisor calls it:
	// engines combine Output with whatever OutputMask holds, which is
	// the InitBuffer all-pass value unless a caller has painted it.
	GenTurboMask(wd *ctrlmodel.WiredData)
}

// KeyboardCallback converts a KBM-index make/break event into a queued
// wire scancode sequence ("keyboard variants").
type KeyboardCallback func(devID int, make bool, kbmIndex ctrlmodel.KBMIndex) []byte

// KeyboardTranslator is implemented by translators that expose a
// scancode callback for kbmon to drive.
type KeyboardTranslator interface {
	Translator
	IDToScancode(devID int, make bool, kbmIndex ctrlmodel.KBMIndex) []byte
}
