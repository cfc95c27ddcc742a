package srm

import "encoding/binary"

// Status classifies one physical copy of a save slot
type Status int

// A copy is exactly one of these; the status is derived from the buffer
// on every call, never stored
const (
	Uninitialized Status = iota
	Valid
	Damaged
)

func (s Status) String() string {
	strings := map[Status]string{
		Uninitialized: "Uninitialized",
		Valid:         "Valid",
		Damaged:       "Damaged",
	}

	return strings[s]
}

// SlotStatus is the classification of one physical slot copy. Name is
// the decoded player name and is only set when Status is Valid
type SlotStatus struct {
	Status Status
	Name   string
}

// isUninitialized reports whether the copy holds no savegame: the first
// two words are equal and the second is not the 0x0001 marker the game
// writes on save
func (f *File) isUninitialized(mirror, slot int) bool {
	offset := slotOffset(mirror, slot)
	w0 := binary.LittleEndian.Uint16(f.data[offset:])
	w1 := binary.LittleEndian.Uint16(f.data[offset+2:])

	return w1 != 0x0001 && w0 == w1
}

// Classify derives the status of one physical slot copy from the buffer
func (f *File) Classify(mirror, slot int) SlotStatus {
	if f.isUninitialized(mirror, slot) {
		return SlotStatus{Status: Uninitialized}
	}

	if f.readChecksum(mirror, slot) != f.computeChecksum(mirror, slot) {
		return SlotStatus{Status: Damaged}
	}

	values, _ := f.ReadSlot(mirror, slot)

	return SlotStatus{Status: Valid, Name: values[PlayerName]}
}

// ClassifyAll classifies every physical copy in the image, indexed by
// mirror then slot
func (f *File) ClassifyAll() [Mirrors][Slots]SlotStatus {
	var statuses [Mirrors][Slots]SlotStatus

	for mirror := 0; mirror < Mirrors; mirror++ {
		for slot := 0; slot < Slots; slot++ {
			statuses[mirror][slot] = f.Classify(mirror, slot)
		}
	}

	return statuses
}

// EditableCopy resolves which mirror of a slot may legally be edited.
// The active copy is preferred; a damaged active copy falls back to the
// mirror. The other copy is never touched by an edit, reconciling the
// two is the game's job at next boot
func (f *File) EditableCopy(slot int) (int, error) {
	if !validAddress(0, slot) {
		return 0, ErrBadAddress
	}

	switch f.Classify(0, slot).Status {
	case Uninitialized:
		return 0, ErrUninitialized
	case Valid:
		return 0, nil
	}

	if f.Classify(1, slot).Status != Valid {
		return 0, ErrDamaged
	}

	return 1, nil
}

// ApplyEdit overwrites the named fields of one physical slot copy and
// rewrites that copy's checksum. This is the only supported mutation;
// an empty update set leaves the buffer byte-identical
func (f *File) ApplyEdit(mirror, slot int, updates map[string]string) error {
	if !validAddress(mirror, slot) {
		return ErrBadAddress
	}

	if len(updates) == 0 {
		return nil
	}

	if err := f.updateSlot(mirror, slot, updates); err != nil {
		return err
	}

	f.writeChecksum(mirror, slot, f.computeChecksum(mirror, slot))

	return nil
}
