package aztec

import "github.com/amishpatel1994/aztec/bitutil"

// HighLevelEncode encodes data bytes into a BitArray using the Aztec
// five-mode high-level encoding scheme: a greedy scan starting in UPPER
// mode, preferring a one-character shift over a latch when the next byte
// returns to the current mode, and falling back to a binary-shift escape
// for runs of bytes no character mode can represent.
func HighLevelEncode(data []byte) (*bitutil.BitArray, error) {
	if len(data) == 0 {
		return bitutil.NewBitArray(0), nil
	}

	result := bitutil.NewBitArray(0)
	curMode := ModeUpper

	i := 0
	for i < len(data) {
		if i+1 < len(data) {
			if pCode, ok := PairCode(data[i], data[i+1]); ok {
				if curMode != ModePunct {
					emitLatch(result, Latch(curMode, ModePunct))
					curMode = ModePunct
				}
				result.AppendBits(uint32(pCode), curMode.BitWidth())
				i += 2
				continue
			}
		}

		b := data[i]

		if code, ok := CharCode(curMode, b); ok {
			result.AppendBits(uint32(code), curMode.BitWidth())
			i++
			continue
		}

		newMode := findBestMode(b, curMode)
		if newMode < 0 {
			// No character mode can encode this byte: escape to binary
			// shift. Binary shift is only available from UPPER, LOWER and
			// MIXED, so latch out of DIGIT/PUNCT first.
			if _, ok := BinaryShiftCode(curMode); !ok {
				seq := Latch(curMode, ModeUpper)
				emitLatch(result, seq)
				curMode = ModeUpper
			}
			i = emitBinaryShift(result, data, i, curMode)
			continue
		}

		if code, ok := ShiftCode(curMode, newMode); ok && shouldShift(data, i, curMode) {
			result.AppendBits(uint32(code), curMode.BitWidth())
			c, _ := CharCode(newMode, b)
			result.AppendBits(uint32(c), newMode.BitWidth())
		} else {
			emitLatch(result, Latch(curMode, newMode))
			curMode = newMode
			c, _ := CharCode(curMode, b)
			result.AppendBits(uint32(c), curMode.BitWidth())
		}
		i++
	}

	return result, nil
}

func emitLatch(bits *bitutil.BitArray, steps []LatchStep) {
	for _, step := range steps {
		bits.AppendBits(uint32(step.Code), step.Mode.BitWidth())
	}
}

// findBestMode returns the mode that should hold byte b next, preferring
// the current mode and otherwise the mode reachable with the shortest
// latch sequence. Returns -1 if no character mode can encode b at all.
func findBestMode(b byte, curMode Mode) Mode {
	if _, ok := CharCode(curMode, b); ok {
		return curMode
	}
	preferenceOrders := [modeCount][]Mode{
		ModeUpper: {ModeLower, ModeMixed, ModeDigit, ModePunct},
		ModeLower: {ModeDigit, ModeMixed, ModeUpper, ModePunct},
		ModeMixed: {ModeUpper, ModePunct, ModeLower, ModeDigit},
		ModeDigit: {ModeUpper, ModeLower, ModeMixed, ModePunct},
		ModePunct: {ModeUpper, ModeLower, ModeMixed, ModeDigit},
	}
	for _, m := range preferenceOrders[curMode] {
		if _, ok := CharCode(m, b); ok {
			return m
		}
	}
	return -1
}

// shouldShift reports whether a one-character shift should be preferred
// over a latch: true when this is the last byte, or the byte after it can
// still be encoded in the current mode (so latching would only need to be
// undone immediately).
func shouldShift(data []byte, pos int, curMode Mode) bool {
	if pos+1 >= len(data) {
		return true
	}
	_, ok := CharCode(curMode, data[pos+1])
	return ok
}

// emitBinaryShift encodes a run of bytes via the binary-shift escape and
// returns the index of the first byte after the run.
//
// Format: BS code (31, curMode's bit width) followed by a length field and
// raw bytes. Length 1..31 is a plain 5-bit field; length 32..2078 is a
// 5-bit zero field followed by an 11-bit (length-31) extension, which is
// what lets a single escape cover runs longer than 31 bytes.
func emitBinaryShift(bits *bitutil.BitArray, data []byte, pos int, curMode Mode) int {
	start := pos
	for pos < len(data) && !inAnyMode(data[pos]) {
		pos++
	}
	if pos == start {
		pos = start + 1
	}
	count := pos - start
	if count > 2078 {
		count = 2078
		pos = start + count
	}

	code, _ := BinaryShiftCode(curMode)
	bits.AppendBits(uint32(code), curMode.BitWidth())

	if count <= 31 {
		bits.AppendBits(uint32(count), 5)
	} else {
		bits.AppendBits(0, 5)
		bits.AppendBits(uint32(count-31), 11)
	}

	for j := start; j < start+count; j++ {
		bits.AppendBits(uint32(data[j]), 8)
	}
	return pos
}

func inAnyMode(b byte) bool {
	return len(ModesForByte(b)) > 0
}
