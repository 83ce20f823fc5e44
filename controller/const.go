package controller

// Button bitmasks for a tracked VR controller. Values follow the runtime's
// own button layout so raw bitmasks can be passed through unchanged.
const (
	ButtonA           Buttons = 0x00000001
	ButtonB           Buttons = 0x00000002
	ButtonRThumb      Buttons = 0x00000004
	ButtonX           Buttons = 0x00000100
	ButtonY           Buttons = 0x00000200
	ButtonLThumb      Buttons = 0x00000400
	ButtonEnter       Buttons = 0x00100000 // Menu button (left controller)
	ButtonGripTrigger Buttons = 0x04000000
	ButtonTrigger     Buttons = 0x20000000
	ButtonJoystick    Buttons = 0x80000000 // Stick click
)

// ButtonName maps single-bit button masks to their names.
var ButtonName = map[Buttons]string{
	ButtonA:           "a",
	ButtonB:           "b",
	ButtonRThumb:      "rthumb",
	ButtonX:           "x",
	ButtonY:           "y",
	ButtonLThumb:      "lthumb",
	ButtonEnter:       "enter",
	ButtonGripTrigger: "grip",
	ButtonTrigger:     "trigger",
	ButtonJoystick:    "joystick",
}

// NameToButton is the reverse of ButtonName.
var NameToButton = func() map[string]Buttons {
	m := make(map[string]Buttons, len(ButtonName))
	for b, n := range ButtonName {
		m[n] = b
	}
	return m
}()
