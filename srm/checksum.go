package srm

import "encoding/binary"

const (
	checksumIV   = 0x5236
	checksumSize = 4
)

// computeChecksum sums the slot's data region as little-endian 16-bit
// words into two accumulators, one additive modulo 65536 and one XOR,
// both seeded with checksumIV. The loop runs while the slot-relative
// offset is <= slotSize, reading one word beyond the nominal slot size;
// the game's firmware does the same, so the stored checksums only match
// over this exact range
func (f *File) computeChecksum(mirror, slot int) [checksumSize]byte {
	sum := uint16(checksumIV)
	xor := uint16(checksumIV)

	offset := slotOffset(mirror, slot)
	for i := 0; i <= slotSize; i += 2 {
		word := binary.LittleEndian.Uint16(f.data[offset+i:])
		sum += word
		xor ^= word
	}

	var b [checksumSize]byte
	binary.LittleEndian.PutUint16(b[0:], sum)
	binary.LittleEndian.PutUint16(b[2:], xor)

	return b
}

// readChecksum returns the stored checksum trailing the slot's data region
func (f *File) readChecksum(mirror, slot int) [checksumSize]byte {
	var b [checksumSize]byte
	copy(b[:], f.data[slotOffset(mirror, slot)+slotSize+1:])

	return b
}

func (f *File) writeChecksum(mirror, slot int, checksum [checksumSize]byte) {
	copy(f.data[slotOffset(mirror, slot)+slotSize+1:], checksum[:])
}
