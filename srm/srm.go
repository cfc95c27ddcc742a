/*
Package srm implements the battery-backed SRAM save format used by
Terranigma.

The 8 KiB image holds three save slots, each duplicated into a hidden
mirror copy with its own checksum. The game writes every save to both
copies and uses the checksums at boot to recover from a partial write;
this package only classifies the copies and edits the one that is
legally writable, leaving reconciliation to the game.
*/
package srm

import "errors"

const (
	// Extension is the conventional file extension used
	Extension = ".srm"
	// Size is the exact size of an SRAM image in bytes
	Size = 0x2000
)

const (
	// Mirrors is the number of physical copies of each slot
	Mirrors = 2
	// Slots is the number of save slots
	Slots = 3
)

const (
	mirrorStride = 0x1000
	mirrorSlack  = 0x100
	slotStride   = 0x500
	slotSize     = 0x4F9
)

var (
	// ErrInvalidSize is returned when the input is not exactly Size bytes
	ErrInvalidSize = errors.New("srm: image must be exactly 8192 bytes")
	// ErrBadAddress is returned when a mirror or slot index is out of range
	ErrBadAddress = errors.New("srm: no such mirror or slot")
	// ErrUninitialized is returned when the targeted slot holds no savegame
	ErrUninitialized = errors.New("srm: slot is uninitialized")
	// ErrDamaged is returned when neither copy of a slot passes its checksum
	ErrDamaged = errors.New("srm: both copies of slot are damaged")
	// ErrUnknownField is returned when an update names a field that does not exist
	ErrUnknownField = errors.New("srm: unknown field")
)

// File represents an SRAM image. The zero value is unusable; populate it
// with UnmarshalBinary first
type File struct {
	data []byte
}

// slotOffset maps a (mirror, slot) pair to the byte offset of that copy's
// data region. Callers must have validated both indices
func slotOffset(mirror, slot int) int {
	return mirrorStride*mirror + mirrorSlack + slotStride*slot
}

func validAddress(mirror, slot int) bool {
	return mirror >= 0 && mirror < Mirrors && slot >= 0 && slot < Slots
}

// UnmarshalBinary decodes the image from binary form. The input must be
// exactly Size bytes and is copied, so the caller keeps ownership of b
func (f *File) UnmarshalBinary(b []byte) error {
	if len(b) != Size {
		return ErrInvalidSize
	}

	f.data = make([]byte, Size)
	copy(f.data, b)

	return nil
}

// MarshalBinary encodes the image into binary form and returns the result.
// The buffer already is the wire format so this never fails
func (f *File) MarshalBinary() ([]byte, error) {
	b := make([]byte, len(f.data))
	copy(b, f.data)

	return b, nil
}
