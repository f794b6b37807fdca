// Package adapter is the adapter supervisor: the
// single owner of the wired_adapter table, the slot-allocation policy
// for multitap topologies, and the dispatch surface the Bluetooth side
// calls into (wired_meta_init/init_buffer/from_generic/fb_to_generic).
package adapter

import (
	"fmt"

	"github.com/retrowired/wiredcore/internal/ctrlmodel"
	"github.com/retrowired/wiredcore/internal/feedback"
	"github.com/retrowired/wiredcore/internal/remap"
	"github.com/retrowired/wiredcore/internal/wired"
	"github.com/retrowired/wiredcore/pkg/log"
)

// MaxPorts bounds the slot table at 4 physical ports times up to 4
// multitap sub-slots each ("one per logical port (up to 16)").
const MaxPorts = 16

// PortCfg is the per-port configuration the supervisor re-applies on a
// WIRED_RST: device mode plus the accessory selection that
// gates N64/DC memory-pak vs. rumble behaviour.
type PortCfg struct {
	DevMode ctrlmodel.DevMode
	AccMode AccMode
}

// AccMode is the per-port accessory mode.
type AccMode int

const (
	AccNone AccMode = iota
	AccRumble
	AccMemPak
	AccBoth
)

// Engine is the minimal contract the supervisor needs from a protocol
// engine to re-arm it after a reset; engines implement a much
// richer per-system surface in internal/engine/<system>, but the
// supervisor only ever needs to reconfigure active ports.
type Engine interface {
	PortCfg(mask uint32)
}

// Supervisor owns the wired_adapter top-level object:
// `{ system_id, data[16] }`, plus the per-port configuration and the
// translator/engine pair bound to the currently selected system.
type Supervisor struct {
	SystemID wired.System
	Data     [MaxPorts]ctrlmodel.WiredData
	Cfg      [MaxPorts]PortCfg

	translator wired.Translator
	engine     Engine
	macros     [MaxPorts]remap.MacroState
	remapTable *[32]uint8

	// allocated tracks which slots are currently part of the active
	// topology (single port or multitap group) for the selected system.
	allocated uint32

	log log.Logger
}

// New returns a supervisor with no system selected. Select must be
// called before any dispatch entry point is used.
func New(logger log.Logger) *Supervisor {
	if logger == nil {
		logger = log.NewNullLogger()
	}
	return &Supervisor{log: logger}
}

// Select binds a translator/engine pair for system and performs the
// slot allocation for the requested topology. It is the
// wired-side equivalent of a WIRED_RST: every allocated slot's buffer
// is reinitialized and port_cfg is re-applied.
func (s *Supervisor) Select(system wired.System, t wired.Translator, e Engine, topo Topology) error {
	slots, err := AllocateSlots(system, topo)
	if err != nil {
		return err
	}
	s.SystemID = system
	s.translator = t
	s.engine = e
	s.allocated = 0
	for _, slot := range slots {
		s.allocated |= 1 << uint(slot)
	}
	s.resetAllocated()
	return nil
}

// resetAllocated implements the WIRED_RST handler: calls
// InitBuffer for every allocated slot, then re-applies port_cfg.
func (s *Supervisor) resetAllocated() {
	for i := 0; i < MaxPorts; i++ {
		if s.allocated&(1<<uint(i)) == 0 {
			continue
		}
		s.Data[i] = ctrlmodel.WiredData{}
		s.Data[i].DevMode = s.Cfg[i].DevMode
		if s.translator != nil {
			s.translator.InitBuffer(s.Cfg[i].DevMode, &s.Data[i])
		}
		s.macros[i] = remap.MacroState{}
	}
	if s.engine != nil {
		s.engine.PortCfg(s.allocated)
	}
}

// SetRemapTable installs the active user remap set (typically
// config.Config.ActiveSet()); nil restores the identity passthrough.
func (s *Supervisor) SetRemapTable(table *[32]uint8) {
	s.remapTable = table
}

// MetaInit dispatches wired_meta_init to the bound
// translator for every entry in ctrl.
func (s *Supervisor) MetaInit(ctrl []ctrlmodel.WiredCtrl) {
	if s.translator == nil {
		return
	}
	s.translator.MetaInit(ctrl)
}

// FromGeneric translates one report for ctrl.Index and dispatches any
// system-manager command the remap stage produced (macros),
// including re-running the WIRED_RST slot reset inline when the
// device-mode-toggle macro fires.
func (s *Supervisor) FromGeneric(mode ctrlmodel.DevMode, ctrl *ctrlmodel.WiredCtrl) (remap.SysMgrCmd, error) {
	if s.translator == nil {
		return remap.CmdNone, fmt.Errorf("adapter: no system selected")
	}
	idx := ctrl.Index
	if idx < 0 || idx >= MaxPorts {
		return remap.CmdNone, fmt.Errorf("adapter: port index %d out of range", idx)
	}
	if s.allocated&(1<<uint(idx)) == 0 {
		return remap.CmdNone, fmt.Errorf("adapter: port %d not allocated for system %v", idx, s.SystemID)
	}
	if s.remapTable != nil {
		remap.ApplyMapping(s.remapTable, ctrl)
	}
	cmd := remap.Apply(s.translator, mode, ctrl, &s.Data[idx], &s.macros[idx])
	if cmd == remap.CmdWiredRst {
		// The only producer of CmdWiredRst is the device-mode-toggle
		// macro ("also flips out_cfg[index].dev_mode low
		// bit"), so flip it here before the buffers are reinitialized.
		s.Cfg[idx].DevMode = remap.ToggleDevMode(s.Cfg[idx].DevMode)
		s.resetAllocated()
	}
	return cmd, nil
}

// InitBuffer re-applies the idle frame for a single port without
// touching the rest of the allocated group (used when a single port's
// DevMode changes, e.g. a keyboard plugged into one multitap sub-slot).
func (s *Supervisor) InitBuffer(idx int, mode ctrlmodel.DevMode) error {
	if idx < 0 || idx >= MaxPorts || s.allocated&(1<<uint(idx)) == 0 {
		return fmt.Errorf("adapter: port %d not allocated", idx)
	}
	s.Cfg[idx].DevMode = mode
	s.Data[idx] = ctrlmodel.WiredData{DevMode: mode}
	if s.translator != nil {
		s.translator.InitBuffer(mode, &s.Data[idx])
	}
	return nil
}

// FbToGeneric converts a captured engine feedback event into the
// normalized shape the Bluetooth side consumes, delegating the
// kind-specific decode to the feedback router's rumble decoder table.
func (s *Supervisor) FbToGeneric(raw feedback.RawFeedback, decode feedback.RumbleDecoder) feedback.GenericFeedback {
	out := feedback.GenericFeedback{WiredID: raw.WiredID, Kind: raw.Kind}
	if raw.Kind == feedback.KindRumble && decode != nil {
		state, dur := decode(raw.Data)
		out.State = state
		out.Cycles = dur
	} else {
		out.Data = raw.Data
	}
	return out
}

// Port returns the WiredData slot for idx, or nil if not allocated.
func (s *Supervisor) Port(idx int) *ctrlmodel.WiredData {
	if idx < 0 || idx >= MaxPorts || s.allocated&(1<<uint(idx)) == 0 {
		return nil
	}
	return &s.Data[idx]
}

// Allocated reports whether idx is part of the current topology.
func (s *Supervisor) Allocated(idx int) bool {
	return idx >= 0 && idx < MaxPorts && s.allocated&(1<<uint(idx)) != 0
}
