package remap

import "github.com/retrowired/wiredcore/internal/ctrlmodel"

// SysMgrCmd is a command issued through the system-manager bus. Nil/zero value means no command.
type SysMgrCmd int

const (
	CmdNone SysMgrCmd = iota
	CmdSoftReset
	CmdBTInquiryToggle
	CmdPowerOff
	CmdFactoryReset
	CmdDeepSleep
	CmdWiredRst
)

// MacroID enumerates the six built-in macros.
type MacroID int

const (
	MacroSoftReset MacroID = iota
	MacroBTInquiryToggle
	MacroPowerOff
	MacroFactoryReset
	MacroDeepSleep
	MacroDevModeToggle
	macroCount
)

var macroCommand = [macroCount]SysMgrCmd{
	MacroSoftReset:       CmdSoftReset,
	MacroBTInquiryToggle: CmdBTInquiryToggle,
	MacroPowerOff:        CmdPowerOff,
	MacroFactoryReset:    CmdFactoryReset,
	MacroDeepSleep:       CmdDeepSleep,
	MacroDevModeToggle:   CmdWiredRst,
}

// Macro defines a combo: a set of normalized-bit equalities over
// btns[3].value that must ALL be held simultaneously to match. The macro fires on release-after-match, not on press, so
// holding the combo does not repeat.
type Macro struct {
	ID    MacroID
	Match uint32 // required bits in btns[3].value
}

// DefaultMacros is the fixed six-macro table every port evaluates on
// every remap call, before translator dispatch. Match patterns
// are illustrative combinations of meta buttons; callers needing
// different chords can supply their own table to MacroState.Evaluate.
var DefaultMacros = [macroCount]Macro{
	{MacroSoftReset, 1<<ctrlmodel.Select | 1<<ctrlmodel.Start},
	{MacroBTInquiryToggle, 1<<ctrlmodel.Home | 1<<ctrlmodel.Select},
	{MacroPowerOff, 1<<ctrlmodel.Home | 1<<ctrlmodel.Start},
	{MacroFactoryReset, 1<<ctrlmodel.Home | 1<<ctrlmodel.Back},
	{MacroDeepSleep, 1<<ctrlmodel.Back | 1<<ctrlmodel.Start},
	{MacroDevModeToggle, 1 << ctrlmodel.ModeToggle},
}

// MacroState is a port's press-latch bitset for the six macros. It is
// distinct from ctrlmodel.WiredData.Flags, which only carries the four
// port lifecycle bits; the device-mode toggle macro additionally sets
// ctrlmodel.FlagWaitingForRelease on the port itself because translators
// inline-check that specific flag.
type MacroState struct {
	latched uint8 // one bit per MacroID
}

// Evaluate matches btns[3].value (the meta-key word) against table,
// latching on match and firing (returning a non-zero command) on
// release after a match, the press-then-release contract.
// wd is the owning port, used only to mirror the device-mode
// toggle latch into ctrlmodel.FlagWaitingForRelease for translators that
// inline-check it.
func (s *MacroState) Evaluate(metaWord uint32, wd *ctrlmodel.WiredData, table [macroCount]Macro) SysMgrCmd {
	fired := CmdNone
	for _, m := range table {
		bit := uint8(1 << m.ID)
		matched := m.Match != 0 && metaWord&m.Match == m.Match
		wasLatched := s.latched&bit != 0

		switch {
		case matched && !wasLatched:
			s.latched |= bit
			if m.ID == MacroDevModeToggle {
				wd.Flags.Set(ctrlmodel.FlagWaitingForRelease)
			}
		case !matched && wasLatched:
			s.latched &^= bit
			if fired == CmdNone {
				fired = macroCommand[m.ID]
			}
			if m.ID == MacroDevModeToggle {
				wd.Flags.Clear(ctrlmodel.FlagWaitingForRelease)
			}
		}
	}
	return fired
}

// ToggleDevMode applies the XOR-bit-0 semantics of the PAD_MT special
// input: a press-and-release of ModeToggle flips bit 0 of
// the port's DevMode. Returns the new mode.
func ToggleDevMode(mode ctrlmodel.DevMode) ctrlmodel.DevMode {
	return mode ^ 1
}
