// Package ctrlmodel is the normalized control model:
// the canonical button/axis/keyboard/mouse data exchanged across the
// Bluetooth/wired boundary, along with the per-device metadata (mask,
// axis-expansion descriptor, axis calibration) every translator reads.
package ctrlmodel

// Button is a position in the 32-bit normalized button bitmap. Layout
// is fixed: four d-pads of 4 directions, four face buttons, two
// shoulders, six meta keys, plus the device-mode-toggle special input.
type Button = uint8

const (
	HatLeft Button = iota
	HatRight
	HatDown
	HatUp

	LStickLeft
	LStickRight
	LStickDown
	LStickUp

	RStickLeft
	RStickRight
	RStickDown
	RStickUp

	LTrigDigital
	RTrigDigital
	LTrigAnalog
	RTrigAnalog

	FaceDown
	FaceRight
	FaceLeft
	FaceUp

	LShoulder
	RShoulder

	Select
	Home
	Start
	Back
	LStickClick
	RStickClick

	// ModeToggle is PAD_MT: a press-and-release toggles the port's
	// dev_mode low bit. Translators latch it with
	// WIRED_WAITING_FOR_RELEASE so holding it does not re-trigger.
	ModeToggle
)

// Axis identifies one of the six normalized analog axes.
type Axis int

const (
	AxisLX Axis = iota
	AxisLY
	AxisRX
	AxisRY
	AxisLT
	AxisRT
	AxisCount
)

// DevMode selects which idle-frame / buffer layout a port uses. Config
// changes to DevMode require a WIRED_RST because buffer
// layouts differ per mode.
type DevMode uint8

const (
	DevModePad DevMode = iota
	DevModePadAlt
	DevModeMouse
	DevModeKeyboard
)

// KBMIndex is the canonical keyboard/mouse event identifier (0..KBMMax-1)
// shared by the control model, keyboard monitor and translators.
type KBMIndex int

const KBMMax = 128
