// Package keys defines the engine's key codes and a held-key bitmap.
package keys

import (
	"encoding/binary"
	"io"
)

const bitmapBytes = (int(NumKeys) + 7) / 8

// State is the set of keys currently held down, as a bitmap indexed by key code.
type State struct {
	KeyBitmap [bitmapBytes]uint8
}

// Set marks code as held. Codes outside the key range are ignored.
func (st *State) Set(code Code, down bool) {
	if code >= NumKeys {
		return
	}
	byteIdx := code / 8
	bitIdx := uint(code % 8)
	if down {
		st.KeyBitmap[byteIdx] |= 1 << bitIdx
	} else {
		st.KeyBitmap[byteIdx] &^= 1 << bitIdx
	}
}

// IsDown reports whether code is held.
func (st *State) IsDown(code Code) bool {
	if code >= NumKeys {
		return false
	}
	return st.KeyBitmap[code/8]&(1<<uint(code%8)) != 0
}

// Held returns the held key codes in ascending order.
func (st *State) Held() []Code {
	var held []Code
	for i := Code(0); i < NumKeys; i++ {
		if st.IsDown(i) {
			held = append(held, i)
		}
	}
	return held
}

// MarshalBinary encodes State to variable-length wire format.
//
// Wire format:
//
//	Bytes 0-1: Key count (little-endian uint16)
//	Bytes 2+: Key codes (little-endian uint16 each)
func (st *State) MarshalBinary() ([]byte, error) {
	held := st.Held()
	b := make([]byte, 2+2*len(held))
	binary.LittleEndian.PutUint16(b[0:2], uint16(len(held)))
	for i, c := range held {
		binary.LittleEndian.PutUint16(b[2+2*i:], uint16(c))
	}
	return b, nil
}

// UnmarshalBinary decodes variable-length wire format into State.
func (st *State) UnmarshalBinary(data []byte) error {
	if len(data) < 2 {
		return io.ErrUnexpectedEOF
	}
	count := int(binary.LittleEndian.Uint16(data[0:2]))
	if len(data) < 2+2*count {
		return io.ErrUnexpectedEOF
	}

	for i := range st.KeyBitmap {
		st.KeyBitmap[i] = 0
	}
	for i := 0; i < count; i++ {
		st.Set(Code(binary.LittleEndian.Uint16(data[2+2*i:])), true)
	}
	return nil
}
