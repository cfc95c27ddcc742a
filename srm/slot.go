package srm

// These are the editable fields within a slot
const (
	// PlayerName is the name shown on the file select screen
	PlayerName = "player_name"
	// PlayerNameAlt is a second copy of the name kept elsewhere in the slot
	PlayerNameAlt = "player_name_alt"
)

type fieldDescriptor struct {
	name   string
	offset int
	width  int
	decode func([]byte) string
	encode func(string) [fieldWidth]byte
}

// fields is the closed set of editable fields; it is not extensible at
// runtime
var fields = []fieldDescriptor{
	{PlayerName, 0x10, fieldWidth, decodeName, encodeName},
	{PlayerNameAlt, 0x1C, fieldWidth, decodeName, encodeName},
}

func fieldByName(name string) (fieldDescriptor, bool) {
	for _, d := range fields {
		if d.name == name {
			return d, true
		}
	}
	return fieldDescriptor{}, false
}

// ReadSlot decodes every editable field of one physical slot copy
func (f *File) ReadSlot(mirror, slot int) (map[string]string, error) {
	if !validAddress(mirror, slot) {
		return nil, ErrBadAddress
	}

	offset := slotOffset(mirror, slot)

	values := make(map[string]string, len(fields))
	for _, d := range fields {
		values[d.name] = d.decode(f.data[offset+d.offset : offset+d.offset+d.width])
	}

	return values, nil
}

// updateSlot overwrites the named fields in place. It deliberately does
// not touch the checksum; ApplyEdit is the only mutation path exposed to
// callers
func (f *File) updateSlot(mirror, slot int, updates map[string]string) error {
	for name := range updates {
		if _, ok := fieldByName(name); !ok {
			return ErrUnknownField
		}
	}

	offset := slotOffset(mirror, slot)
	for name, value := range updates {
		d, _ := fieldByName(name)
		encoded := d.encode(value)
		copy(f.data[offset+d.offset:offset+d.offset+d.width], encoded[:])
	}

	return nil
}
