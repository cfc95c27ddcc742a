package srm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNameRoundTrip(t *testing.T) {
	for _, name := range []string{"", "Ark", "Elle", "zzzzz", "A b C"} {
		encoded := encodeName(name)
		assert.Equal(t, name, decodeName(encoded[:]))
	}
}

func TestEncodeNameTruncates(t *testing.T) {
	encoded := encodeName("Meilin")
	assert.Equal(t, "Meili", decodeName(encoded[:]))
}

func TestEncodeNameSubstitutesSpace(t *testing.T) {
	encoded := encodeName("Ark!")
	assert.Equal(t, "Ark ", decodeName(encoded[:]))
}

func TestEncodeNameLayout(t *testing.T) {
	assert.Equal(t, [fieldWidth]byte{0x21, 0x52, 0x4B, 0xD4, 0x00, 0x00}, encodeName("Ark"))
	assert.Equal(t, [fieldWidth]byte{0xD4, 0x00, 0x00, 0x00, 0x00, 0x00}, encodeName(""))
}

func TestDecodeNameNoTerminator(t *testing.T) {
	assert.Equal(t, "", decodeName([]byte{0x21, 0x52, 0x4B, 0x00, 0x00, 0x00}))
}

func TestDecodeNameStripsFiller(t *testing.T) {
	// the game writes the filler before the terminator when the default
	// name is accepted unmodified
	assert.Equal(t, "Ark", decodeName([]byte{0x21, 0x52, 0x4B, 0xD1, 0xD4, 0x00}))
}

func TestDecodeNameUnmappedByte(t *testing.T) {
	assert.Equal(t, "A?k", decodeName([]byte{0x21, 0x3B, 0x4B, 0xD4, 0x00, 0x00}))
}
