package keys

import "fmt"

// KeyName maps key codes to their console bind names.
var KeyName = map[Code]string{
	Escape:       "escape",
	LeftBracket:  "[",
	RightBracket: "]",
	Space:        "space",

	MWheelUp:   "mwheelup",
	MWheelDown: "mwheeldown",

	PadDPadUp:    "dpadup",
	PadDPadDown:  "dpaddown",
	PadDPadLeft:  "dpadleft",
	PadDPadRight: "dpadright",
	PadLThumb:    "lthumb",
	PadRThumb:    "rthumb",
	PadLShoulder: "lshoulder",
	PadRShoulder: "rshoulder",
	PadLTrigger:  "ltrigger",
	PadRTrigger:  "rtrigger",
	PadA:         "pad_a",
	PadB:         "pad_b",
	PadX:         "pad_x",
	PadY:         "pad_y",
}

// Code is an engine key code.
type Code uint16

// String returns the bind name, "joyN" for generic joystick buttons, or a hex
// fallback.
func (c Code) String() string {
	if n, ok := KeyName[c]; ok {
		return n
	}
	if c >= Joy1 && c < Joy1+NumJoyButtons {
		return fmt.Sprintf("joy%d", c-Joy1+1)
	}
	return fmt.Sprintf("key_0x%03x", uint16(c))
}
