package event

import "github.com/qzvr/vrinput/keys"

// GenerateButtonEvents compares the low num bits of oldButtons and newButtons
// and posts a press for every bit that went 0→1 and a release for every bit
// that went 1→0. Bit i maps to key base+i.
func GenerateButtonEvents(sink Sink, oldButtons, newButtons uint32, num int, base keys.Code) {
	changed := oldButtons ^ newButtons
	if changed == 0 {
		return
	}
	for i := 0; i < num && i < 32; i++ {
		mask := uint32(1) << uint(i)
		if changed&mask == 0 {
			continue
		}
		sink.Post(Event{Key: base + keys.Code(i), Down: newButtons&mask != 0})
	}
}

// Button posts a single press or release for key when old and new differ.
func Button(sink Sink, oldDown, newDown bool, key keys.Code) {
	GenerateButtonEvents(sink, b2u(oldDown), b2u(newDown), 1, key)
}

// Pulse posts a press immediately followed by a release.
func Pulse(sink Sink, key keys.Code) {
	sink.Post(Event{Key: key, Down: true})
	sink.Post(Event{Key: key, Down: false})
}

func b2u(b bool) uint32 {
	if b {
		return 1
	}
	return 0
}
