package aztec

import "strings"

// HighLevelDecode decodes a corrected data-bit stream into bytes using the
// Aztec five-mode encoding scheme: starting in UPPER, it repeatedly reads
// the current mode's bit width and interprets the code as a character,
// shift, latch or FLG(n) escape. Running out of bits mid-codeword ends
// decoding with whatever was recovered so far, rather than an error (a
// damaged or short symbol simply yields a truncated result).
func HighLevelDecode(bits []bool) []byte {
	endIndex := len(bits)
	currentMode := ModeUpper
	index := 0

	var result strings.Builder

	for index < endIndex {
		if currentMode == ModeDigit {
			index, currentMode = decodeDigit(&result, bits, index, endIndex)
		} else {
			index, currentMode = decodeNonDigit(&result, bits, index, endIndex, currentMode)
		}
	}

	return []byte(result.String())
}

// readCode reads bitsToRead bits starting at index, MSB first, and returns
// the integer value together with the new index. Returns (-1, endIndex) if
// the stream does not have that many bits left.
func readCode(bits []bool, index, bitsToRead, endIndex int) (int, int) {
	if index+bitsToRead > endIndex {
		return -1, endIndex
	}
	code := 0
	for i := index; i < index+bitsToRead; i++ {
		code <<= 1
		if bits[i] {
			code |= 1
		}
	}
	return code, index + bitsToRead
}

// decodeNonDigit handles UPPER, LOWER, MIXED and PUNCT modes (all 5-bit
// codewords).
func decodeNonDigit(result *strings.Builder, bits []bool, index, endIndex int, mode Mode) (int, Mode) {
	code, newIndex := readCode(bits, index, mode.BitWidth(), endIndex)
	if code < 0 {
		return endIndex, mode
	}
	index = newIndex

	switch mode {
	case ModeUpper:
		switch {
		case code == 0:
			return decodeOneCharShift(result, bits, index, endIndex, ModeUpper, ModePunct)
		case code >= 1 && code <= 27:
			c, _ := CodeToChar(ModeUpper, code)
			result.WriteByte(c)
		case code == 28:
			return index, ModeLower
		case code == 29:
			return index, ModeMixed
		case code == 30:
			return index, ModeDigit
		case code == 31:
			return handleBinaryShift(result, bits, index, endIndex, mode)
		}

	case ModeLower:
		switch {
		case code == 0:
			return decodeOneCharShift(result, bits, index, endIndex, ModeLower, ModePunct)
		case code >= 1 && code <= 27:
			c, _ := CodeToChar(ModeLower, code)
			result.WriteByte(c)
		case code == 28:
			return decodeOneCharShift(result, bits, index, endIndex, ModeLower, ModeUpper)
		case code == 29:
			return index, ModeMixed
		case code == 30:
			return index, ModeDigit
		case code == 31:
			return handleBinaryShift(result, bits, index, endIndex, mode)
		}

	case ModeMixed:
		switch {
		case code == 0:
			return decodeOneCharShift(result, bits, index, endIndex, ModeMixed, ModePunct)
		case code >= 1 && code <= 27:
			c, _ := CodeToChar(ModeMixed, code)
			result.WriteByte(c)
		case code == 28:
			return index, ModeLower
		case code == 29:
			return index, ModeUpper
		case code == 30:
			return index, ModePunct
		case code == 31:
			return handleBinaryShift(result, bits, index, endIndex, mode)
		}

	case ModePunct:
		switch {
		case code == 0:
			return handleFLG(result, bits, index, endIndex, mode)
		case code >= 1 && code <= 30:
			s, _ := CodeToPunct(code)
			result.WriteString(s)
		case code == 31:
			return index, ModeUpper
		}
	}

	return index, mode
}

// decodeDigit handles DIGIT mode (4-bit codewords).
func decodeDigit(result *strings.Builder, bits []bool, index, endIndex int) (int, Mode) {
	code, newIndex := readCode(bits, index, ModeDigit.BitWidth(), endIndex)
	if code < 0 {
		return endIndex, ModeDigit
	}
	index = newIndex

	switch {
	case code == 0:
		return decodeOneCharShift(result, bits, index, endIndex, ModeDigit, ModePunct)
	case code >= 1 && code <= 13:
		c, _ := DigitChar(code)
		result.WriteByte(c)
	case code == 14:
		return index, ModeUpper
	case code == 15:
		return decodeOneCharShift(result, bits, index, endIndex, ModeDigit, ModeUpper)
	}

	return index, ModeDigit
}

// decodeOneCharShift reads exactly one character in shiftMode and returns
// control to returnMode.
func decodeOneCharShift(result *strings.Builder, bits []bool, index, endIndex int, returnMode, shiftMode Mode) (int, Mode) {
	code, newIndex := readCode(bits, index, shiftMode.BitWidth(), endIndex)
	if code < 0 {
		return endIndex, returnMode
	}
	index = newIndex

	switch shiftMode {
	case ModeDigit:
		if c, ok := DigitChar(code); ok {
			result.WriteByte(c)
		}
	case ModeUpper, ModeLower, ModeMixed:
		if c, ok := CodeToChar(shiftMode, code); ok {
			result.WriteByte(c)
		}
	case ModePunct:
		if s, ok := CodeToPunct(code); ok {
			result.WriteString(s)
		}
	}

	return index, returnMode
}

// handleFLG processes the FLG(n) function: n=0 emits a literal GS byte,
// n in [1,6] discards n 4-bit ECI digit codes (ECI interpretation is out of
// scope), and n=7 is reserved and consumes nothing further.
func handleFLG(result *strings.Builder, bits []bool, index, endIndex int, mode Mode) (int, Mode) {
	n, newIndex := readCode(bits, index, 3, endIndex)
	if n < 0 {
		return endIndex, mode
	}
	index = newIndex

	switch {
	case n == 0:
		result.WriteByte(0x1D)
	case n >= 1 && n <= 6:
		for i := 0; i < n; i++ {
			_, index = readCode(bits, index, 4, endIndex)
		}
	}

	return index, mode
}

// handleBinaryShift reads a binary-shift length (with the extended 11-bit
// form for runs of 32 bytes or more) and then that many raw bytes.
func handleBinaryShift(result *strings.Builder, bits []bool, index, endIndex int, mode Mode) (int, Mode) {
	length, newIndex := readCode(bits, index, 5, endIndex)
	if length < 0 {
		return endIndex, mode
	}
	index = newIndex

	if length == 0 {
		extra, newIndex2 := readCode(bits, index, 11, endIndex)
		if extra < 0 {
			return endIndex, mode
		}
		index = newIndex2
		length = extra + 31
	}

	for i := 0; i < length; i++ {
		ch, newIdx := readCode(bits, index, 8, endIndex)
		if ch < 0 {
			return endIndex, mode
		}
		index = newIdx
		result.WriteByte(byte(ch))
	}

	return index, mode
}
