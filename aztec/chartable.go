package aztec

// Mode identifies one of the five Aztec high-level character modes. The
// high-level encoder and decoder both walk between these modes using latch
// (permanent switch) and shift (one-character switch) codes.
type Mode int

const (
	ModeUpper Mode = iota
	ModeLower
	ModeMixed
	ModeDigit
	ModePunct
)

// modeCount is the number of encoding modes; used to size per-mode tables.
const modeCount = 5

func (m Mode) String() string {
	switch m {
	case ModeUpper:
		return "Upper"
	case ModeLower:
		return "Lower"
	case ModeMixed:
		return "Mixed"
	case ModeDigit:
		return "Digit"
	case ModePunct:
		return "Punct"
	default:
		return "Mode(?)"
	}
}

// BitWidth returns the codeword width for this mode: 4 bits for Digit, 5
// bits for every other mode.
func (m Mode) BitWidth() int {
	if m == ModeDigit {
		return 4
	}
	return 5
}

// charTable[b][m] holds the code for byte b in mode m, or -1 if b cannot be
// represented directly in that mode.
var charTable [256][modeCount]int

func init() {
	for b := range charTable {
		for m := range charTable[b] {
			charTable[b][m] = -1
		}
	}

	// UPPER (5 bits per code):
	//   0 = PS, 1 = SP, 2..27 = A..Z, 28 = LL, 29 = ML, 30 = DL, 31 = BS
	charTable[' '][ModeUpper] = 1
	for c := byte('A'); c <= 'Z'; c++ {
		charTable[c][ModeUpper] = int(c-'A') + 2
	}

	// LOWER (5 bits per code):
	//   0 = PS, 1 = SP, 2..27 = a..z, 28 = AS, 29 = ML, 30 = DL, 31 = BS
	charTable[' '][ModeLower] = 1
	for c := byte('a'); c <= 'z'; c++ {
		charTable[c][ModeLower] = int(c-'a') + 2
	}

	// MIXED (5 bits per code):
	//   0 = PS, 1 = SP, 2..14 = ctrl \x01..\x0D,
	//   15 = ESC, 16..19 = FS/GS/RS/US,
	//   20 = @, 21 = \, 22 = ^, 23 = _, 24 = `, 25 = |, 26 = ~, 27 = DEL,
	//   28 = LL, 29 = UL, 30 = PL, 31 = BS
	charTable[' '][ModeMixed] = 1
	for c := byte(1); c <= 13; c++ {
		charTable[c][ModeMixed] = int(c) + 1
	}
	charTable[0x1B][ModeMixed] = 15
	charTable[0x1C][ModeMixed] = 16
	charTable[0x1D][ModeMixed] = 17
	charTable[0x1E][ModeMixed] = 18
	charTable[0x1F][ModeMixed] = 19
	charTable['@'][ModeMixed] = 20
	charTable['\\'][ModeMixed] = 21
	charTable['^'][ModeMixed] = 22
	charTable['_'][ModeMixed] = 23
	charTable['`'][ModeMixed] = 24
	charTable['|'][ModeMixed] = 25
	charTable['~'][ModeMixed] = 26
	charTable[0x7F][ModeMixed] = 27

	// DIGIT (4 bits per code):
	//   0 = PS, 1 = SP, 2..11 = '0'..'9', 12 = ',', 13 = '.', 14 = UL, 15 = AS
	charTable[' '][ModeDigit] = 1
	for c := byte('0'); c <= '9'; c++ {
		charTable[c][ModeDigit] = int(c-'0') + 2
	}
	charTable[','][ModeDigit] = 12
	charTable['.'][ModeDigit] = 13

	// PUNCT (5 bits per code):
	//   0 = FLG(n), 1 = CR, 2..5 = two-char pairs (see pairCodes),
	//   6..29 = single punctuation characters, 30 = '}', 31 = UL
	charTable['\r'][ModePunct] = 1
	singlePunct := []byte{
		'!', '"', '#', '$', '%', '&', '\'', '(', ')', '*', '+', ',',
		'-', '.', '/', ':', ';', '<', '=', '>', '?', '[', ']', '{',
	}
	for idx, c := range singlePunct {
		charTable[c][ModePunct] = idx + 6
	}
	charTable['}'][ModePunct] = 30
}

// pairCodes maps the two-character sequences PUNCT mode encodes as a
// single code to that code.
var pairCodes = map[[2]byte]int{
	{'\r', '\n'}: 2,
	{'.', ' '}:   3,
	{',', ' '}:   4,
	{':', ' '}:   5,
}

// upperChars, lowerChars and mixedChars invert charTable's UPPER/LOWER/MIXED
// columns: upperChars[code] is the character code 1..27 decodes to.
var upperChars = [32]rune{
	0, ' ', 'A', 'B', 'C', 'D', 'E', 'F', 'G', 'H', 'I', 'J', 'K', 'L', 'M',
	'N', 'O', 'P', 'Q', 'R', 'S', 'T', 'U', 'V', 'W', 'X', 'Y', 'Z', 0, 0, 0, 0,
}

var lowerChars = [32]rune{
	0, ' ', 'a', 'b', 'c', 'd', 'e', 'f', 'g', 'h', 'i', 'j', 'k', 'l', 'm',
	'n', 'o', 'p', 'q', 'r', 's', 't', 'u', 'v', 'w', 'x', 'y', 'z', 0, 0, 0, 0,
}

var mixedChars = [32]rune{
	0, ' ', '\x01', '\x02', '\x03', '\x04', '\x05', '\x06', '\x07', '\b', '\t', '\n',
	'\x0b', '\f', '\r', '\x1b', '\x1c', '\x1d', '\x1e', '\x1f',
	'@', '\\', '^', '_', '`', '|', '~', '\x7f', 0, 0, 0, 0,
}

// punctStrings inverts charTable's PUNCT column; index 0 and 31 are handled
// specially by the caller (FLG and UL respectively) and left empty here.
var punctStrings = [32]string{
	"", "\r", "\r\n", ". ", ", ", ": ", "!", "\"", "#", "$", "%", "&", "'", "(", ")",
	"*", "+", ",", "-", ".", "/", ":", ";", "<", "=", ">", "?", "[", "]", "{", "}", "",
}

// CharCode returns the code for byte b in mode m, and whether b can be
// represented directly in that mode.
func CharCode(m Mode, b byte) (int, bool) {
	code := charTable[b][m]
	if code < 0 {
		return 0, false
	}
	return code, true
}

// PairCode returns the PUNCT-mode code for the two-byte sequence b1,b2, if
// it is one of the four recognised pairs.
func PairCode(b1, b2 byte) (int, bool) {
	code, ok := pairCodes[[2]byte{b1, b2}]
	return code, ok
}

// ModesForByte returns every mode in which b can be represented directly,
// in mode-index order.
func ModesForByte(b byte) []Mode {
	var modes []Mode
	for m := Mode(0); m < modeCount; m++ {
		if charTable[b][m] >= 0 {
			modes = append(modes, m)
		}
	}
	return modes
}

// CodeToChar decodes a code in the 1..27 range for Upper, Lower or Mixed
// mode back to its byte value.
func CodeToChar(m Mode, code int) (byte, bool) {
	if code < 1 || code > 27 {
		return 0, false
	}
	switch m {
	case ModeUpper:
		return byte(upperChars[code]), true
	case ModeLower:
		return byte(lowerChars[code]), true
	case ModeMixed:
		return byte(mixedChars[code]), true
	default:
		return 0, false
	}
}

// CodeToPunct decodes a PUNCT-mode code in 1..30 to its (one- or
// two-character) string, handling the four two-character pair codes.
func CodeToPunct(code int) (string, bool) {
	if code < 1 || code > 30 {
		return "", false
	}
	return punctStrings[code], true
}

// DigitChar decodes a DIGIT-mode code in 1..13 to its byte value (' ',
// '0'..'9', ',', '.').
func DigitChar(code int) (byte, bool) {
	switch {
	case code == 1:
		return ' ', true
	case code >= 2 && code <= 11:
		return byte('0' + code - 2), true
	case code == 12:
		return ',', true
	case code == 13:
		return '.', true
	default:
		return 0, false
	}
}

// LatchStep is one step of a latch sequence: emit code using the bit width
// of mode.
type LatchStep struct {
	Mode Mode
	Code int
}

// latchTable[from][to] holds the sequence of latch codes that switches
// from mode "from" to mode "to". Grounded directly on the teacher's latch
// path table. Every path is a shortest one except Lower->Upper, which goes
// through Mixed (10 bits) rather than through Digit (9 bits).
var latchTable = [modeCount][modeCount][]LatchStep{
	ModeUpper: {
		ModeLower: {{ModeUpper, 28}},
		ModeMixed: {{ModeUpper, 29}},
		ModeDigit: {{ModeUpper, 30}},
		ModePunct: {{ModeUpper, 29}, {ModeMixed, 30}},
	},
	ModeLower: {
		ModeUpper: {{ModeLower, 29}, {ModeMixed, 29}},
		ModeMixed: {{ModeLower, 29}},
		ModeDigit: {{ModeLower, 30}},
		ModePunct: {{ModeLower, 29}, {ModeMixed, 30}},
	},
	ModeMixed: {
		ModeUpper: {{ModeMixed, 29}},
		ModeLower: {{ModeMixed, 28}},
		ModeDigit: {{ModeMixed, 29}, {ModeUpper, 30}},
		ModePunct: {{ModeMixed, 30}},
	},
	ModeDigit: {
		ModeUpper: {{ModeDigit, 14}},
		ModeLower: {{ModeDigit, 14}, {ModeUpper, 28}},
		ModeMixed: {{ModeDigit, 14}, {ModeUpper, 29}},
		ModePunct: {{ModeDigit, 14}, {ModeUpper, 29}, {ModeMixed, 30}},
	},
	ModePunct: {
		ModeUpper: {{ModePunct, 31}},
		ModeLower: {{ModePunct, 31}, {ModeUpper, 28}},
		ModeMixed: {{ModePunct, 31}, {ModeUpper, 29}},
		ModeDigit: {{ModePunct, 31}, {ModeUpper, 30}},
	},
}

// Latch returns the sequence of codes that switches from mode "from" to
// mode "to". Returns nil if from == to (no switch needed).
func Latch(from, to Mode) []LatchStep {
	if from == to {
		return nil
	}
	return latchTable[from][to]
}

// ShiftCode returns the one-character shift code from mode "from" to mode
// "to", and whether such a shift exists. Aztec defines a shift to PUNCT
// (code 0) from UPPER, LOWER, MIXED and DIGIT, plus shifts to UPPER from
// LOWER (code 28, "AS") and DIGIT (code 15, "AS").
func ShiftCode(from, to Mode) (int, bool) {
	if to == ModePunct {
		switch from {
		case ModeUpper, ModeLower, ModeMixed, ModeDigit:
			return 0, true
		default:
			return 0, false
		}
	}
	if to != ModeUpper {
		return 0, false
	}
	switch from {
	case ModeLower:
		return 28, true
	case ModeDigit:
		return 15, true
	default:
		return 0, false
	}
}

// BinaryShiftCode returns the code that escapes into a binary-shift run
// from the given mode, and whether binary shift is available there.
// Binary shift is available from UPPER, LOWER and MIXED (always code 31);
// DIGIT and PUNCT have no binary-shift escape of their own and must latch
// to UPPER first.
func BinaryShiftCode(m Mode) (int, bool) {
	switch m {
	case ModeUpper, ModeLower, ModeMixed:
		return 31, true
	default:
		return 0, false
	}
}

// FLGCode returns the code of the FLG(n) escape, which is only defined in
// PUNCT mode (code 0 in every other mode is instead a shift to PUNCT).
func FLGCode() int { return 0 }
