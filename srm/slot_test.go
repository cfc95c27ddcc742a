package srm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReadSlot(t *testing.T) {
	f := testFile(t)
	writeSave(f, 0, 1, "Elle")

	values, err := f.ReadSlot(0, 1)
	assert.NoError(t, err)
	assert.Equal(t, map[string]string{
		PlayerName:    "Elle",
		PlayerNameAlt: "Elle",
	}, values)
}

func TestReadSlotBadAddress(t *testing.T) {
	f := testFile(t)

	_, err := f.ReadSlot(2, 0)
	assert.Equal(t, ErrBadAddress, err)

	_, err = f.ReadSlot(0, 3)
	assert.Equal(t, ErrBadAddress, err)

	_, err = f.ReadSlot(-1, 0)
	assert.Equal(t, ErrBadAddress, err)
}

func TestUpdateSlotUnknownField(t *testing.T) {
	f := testFile(t)
	writeSave(f, 0, 0, "Ark")
	before, _ := f.MarshalBinary()

	err := f.updateSlot(0, 0, map[string]string{
		PlayerName: "Elle",
		"level":    "99",
	})
	assert.Equal(t, ErrUnknownField, err)

	// a rejected update must not have written anything
	after, _ := f.MarshalBinary()
	assert.Equal(t, before, after)
}
