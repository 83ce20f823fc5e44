// Package controller provides the raw per-frame state of a tracked VR
// controller: button bitmask, stick axes and 6-DOF pose.
package controller

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"sort"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
)

// Buttons is a bitmask of pressed controller buttons.
type Buttons uint32

// Has reports whether every bit of mask is set.
func (b Buttons) Has(mask Buttons) bool {
	return mask != 0 && b&mask == mask
}

// String lists the set buttons by name, sorted, joined with '+'.
func (b Buttons) String() string {
	if b == 0 {
		return "none"
	}
	var names []string
	var known Buttons
	for mask, name := range ButtonName {
		known |= mask
		if b&mask != 0 {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	if rest := b &^ known; rest != 0 {
		names = append(names, fmt.Sprintf("0x%08x", uint32(rest)))
	}
	return strings.Join(names, "+")
}

// ParseButtons builds a bitmask from button names.
func ParseButtons(names []string) (Buttons, error) {
	var b Buttons
	for _, n := range names {
		mask, ok := NameToButton[strings.ToLower(strings.TrimSpace(n))]
		if !ok {
			return 0, fmt.Errorf("unknown button %q", n)
		}
		b |= mask
	}
	return b, nil
}

// Snapshot is the button and stick state of one controller captured at one
// instant. Joystick axes are in [-1,1]; +Y is stick pushed forward.
type Snapshot struct {
	Buttons  Buttons
	Joystick mgl64.Vec2
}

// SnapshotSize is the encoded length of a Snapshot.
const SnapshotSize = 12

// Pressed reports whether mask is held in this snapshot.
func (s Snapshot) Pressed(mask Buttons) bool {
	return s.Buttons&mask != 0
}

// MarshalBinary encodes Snapshot to 12 bytes.
//
// Wire format:
//
//	Bytes 0-3: Buttons (little-endian uint32)
//	Bytes 4-7: Joystick X (little-endian float32)
//	Bytes 8-11: Joystick Y (little-endian float32)
func (s *Snapshot) MarshalBinary() ([]byte, error) {
	b := make([]byte, SnapshotSize)
	binary.LittleEndian.PutUint32(b[0:4], uint32(s.Buttons))
	binary.LittleEndian.PutUint32(b[4:8], math.Float32bits(float32(s.Joystick[0])))
	binary.LittleEndian.PutUint32(b[8:12], math.Float32bits(float32(s.Joystick[1])))
	return b, nil
}

// UnmarshalBinary decodes the 12-byte wire format into Snapshot.
func (s *Snapshot) UnmarshalBinary(data []byte) error {
	if len(data) < SnapshotSize {
		return io.ErrUnexpectedEOF
	}
	s.Buttons = Buttons(binary.LittleEndian.Uint32(data[0:4]))
	s.Joystick[0] = float64(math.Float32frombits(binary.LittleEndian.Uint32(data[4:8])))
	s.Joystick[1] = float64(math.Float32frombits(binary.LittleEndian.Uint32(data[8:12])))
	return nil
}
