package srm

const (
	fieldWidth = 6
	maxName    = 5

	terminator = 0xD4
	// filler is written before the terminator when the default name is
	// accepted unmodified; it never renders in-game
	filler = 0xD1
)

// byteToGlyph is the game's name character set. Codes 0x3B-0x40 are
// unmapped
var byteToGlyph = map[byte]rune{
	0x20: ' ',
	0x21: 'A',
	0x22: 'B',
	0x23: 'C',
	0x24: 'D',
	0x25: 'E',
	0x26: 'F',
	0x27: 'G',
	0x28: 'H',
	0x29: 'I',
	0x2A: 'J',
	0x2B: 'K',
	0x2C: 'L',
	0x2D: 'M',
	0x2E: 'N',
	0x2F: 'O',
	0x30: 'P',
	0x31: 'Q',
	0x32: 'R',
	0x33: 'S',
	0x34: 'T',
	0x35: 'U',
	0x36: 'V',
	0x37: 'W',
	0x38: 'X',
	0x39: 'Y',
	0x3A: 'Z',
	0x41: 'a',
	0x42: 'b',
	0x43: 'c',
	0x44: 'd',
	0x45: 'e',
	0x46: 'f',
	0x47: 'g',
	0x48: 'h',
	0x49: 'i',
	0x4A: 'j',
	0x4B: 'k',
	0x4C: 'l',
	0x4D: 'm',
	0x4E: 'n',
	0x4F: 'o',
	0x50: 'p',
	0x51: 'q',
	0x52: 'r',
	0x53: 's',
	0x54: 't',
	0x55: 'u',
	0x56: 'v',
	0x57: 'w',
	0x58: 'x',
	0x59: 'y',
	0x5A: 'z',
}

var glyphToByte = make(map[rune]byte, len(byteToGlyph))

func init() {
	for b, g := range byteToGlyph {
		glyphToByte[g] = b
	}
}

// decodeName decodes one fixed-width name field. A field without a
// terminator decodes to the empty string; a single trailing filler byte
// is stripped and any unmapped byte decodes to '?'
func decodeName(b []byte) string {
	end := -1
	for i, c := range b {
		if c == terminator {
			end = i
			break
		}
	}
	if end < 0 {
		return ""
	}

	b = b[:end]
	if n := len(b); n > 0 && b[n-1] == filler {
		b = b[:n-1]
	}

	name := make([]rune, len(b))
	for i, c := range b {
		g, ok := byteToGlyph[c]
		if !ok {
			g = '?'
		}
		name[i] = g
	}

	return string(name)
}

// encodeName encodes at most maxName characters of s, substituting space
// for anything outside the character set, and appends the terminator.
// Encoding never fails
func encodeName(s string) [fieldWidth]byte {
	var b [fieldWidth]byte

	i := 0
	for _, g := range s {
		if i == maxName {
			break
		}
		c, ok := glyphToByte[g]
		if !ok {
			c = glyphToByte[' ']
		}
		b[i] = c
		i++
	}
	b[i] = terminator

	return b
}
