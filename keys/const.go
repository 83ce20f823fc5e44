package keys

// Engine key codes. Keyboard keys use DirectInput scan codes; mouse, joystick
// and pad buttons follow in the extended range.
const (
	Escape       Code = 0x01
	LeftBracket  Code = 0x1A
	RightBracket Code = 0x1B
	Space        Code = 0x39

	MWheelUp   Code = 0x108
	MWheelDown Code = 0x109

	Joy1 Code = 0x10C // First of 128 generic joystick buttons

	PadDPadUp    Code = 0x1B4
	PadDPadDown  Code = 0x1B5
	PadDPadLeft  Code = 0x1B6
	PadDPadRight Code = 0x1B7
	PadLThumb    Code = 0x1BA
	PadRThumb    Code = 0x1BB
	PadLShoulder Code = 0x1BC
	PadRShoulder Code = 0x1BD
	PadLTrigger  Code = 0x1BE
	PadRTrigger  Code = 0x1BF
	PadA         Code = 0x1C0
	PadB         Code = 0x1C1
	PadX         Code = 0x1C2
	PadY         Code = 0x1C3

	// NumKeys is one past the highest key code.
	NumKeys Code = 0x1C4
)

// NumJoyButtons is the number of generic joystick buttons starting at Joy1.
const NumJoyButtons = 128

// Inventory cycling binds.
const (
	InvPrev = LeftBracket
	InvNext = RightBracket
)

// JoyButton returns the key code of generic joystick button n (1-based).
func JoyButton(n int) Code {
	return Joy1 + Code(n-1)
}
