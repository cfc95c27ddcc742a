package srm

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
)

func testFile(t *testing.T) *File {
	t.Helper()

	f := new(File)
	if err := f.UnmarshalBinary(make([]byte, Size)); err != nil {
		t.Fatal(err)
	}

	return f
}

// writeSave populates one physical slot copy the way the game does: the
// second word marks the slot as saved, both name fields are set and the
// checksum is rewritten
func writeSave(f *File, mirror, slot int, name string) {
	offset := slotOffset(mirror, slot)
	binary.LittleEndian.PutUint16(f.data[offset+2:], 0x0001)

	encoded := encodeName(name)
	for _, d := range fields {
		copy(f.data[offset+d.offset:offset+d.offset+d.width], encoded[:])
	}

	f.writeChecksum(mirror, slot, f.computeChecksum(mirror, slot))
}

func TestUnmarshalBinaryInvalidSize(t *testing.T) {
	f := new(File)
	assert.Equal(t, ErrInvalidSize, f.UnmarshalBinary(nil))
	assert.Equal(t, ErrInvalidSize, f.UnmarshalBinary(make([]byte, Size-1)))
	assert.Equal(t, ErrInvalidSize, f.UnmarshalBinary(make([]byte, Size+1)))
}

func TestUnmarshalBinaryCopies(t *testing.T) {
	b := make([]byte, Size)

	f := new(File)
	assert.NoError(t, f.UnmarshalBinary(b))

	b[0] = 0xFF
	assert.Equal(t, byte(0), f.data[0])
}

func TestMarshalBinaryRoundTrip(t *testing.T) {
	b := make([]byte, Size)
	for i := range b {
		b[i] = byte(i)
	}

	f := new(File)
	assert.NoError(t, f.UnmarshalBinary(b))

	out, err := f.MarshalBinary()
	assert.NoError(t, err)
	assert.Equal(t, b, out)
}

func TestSlotOffset(t *testing.T) {
	assert.Equal(t, 0x100, slotOffset(0, 0))
	assert.Equal(t, 0x600, slotOffset(0, 1))
	assert.Equal(t, 0xB00, slotOffset(0, 2))
	assert.Equal(t, 0x1100, slotOffset(1, 0))
	assert.Equal(t, 0x1B00, slotOffset(1, 2))
}
