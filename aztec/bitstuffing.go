package aztec

import "github.com/amishpatel1994/aztec/bitutil"

// StuffBits inserts a complementary bit into every wordSize-bit group of
// bits whose leading wordSize-1 bits are identical, so that no codeword
// produced from the stuffed stream is ever all-zero or all-one: those two
// values are reserved to mark erasures when extracting data from a damaged
// symbol. The final partial group, if any, is padded with 1-bits out to
// wordSize before this check, and that padding is part of the returned
// stream, so its size is always a multiple of wordSize.
func StuffBits(bits *bitutil.BitArray, wordSize int) *bitutil.BitArray {
	out := bitutil.NewBitArray(0)
	n := bits.Size()
	mask := (1 << uint(wordSize)) - 2 // every bit except the LSB

	for i := 0; i < n; i += wordSize {
		word := 0
		for j := 0; j < wordSize; j++ {
			if i+j >= n || bits.Get(i+j) {
				word |= 1 << uint(wordSize-1-j)
			}
		}
		switch {
		case (word & mask) == mask:
			// Leading bits are all 1: stuff a 0, which also means this
			// group consumed only wordSize-1 source bits.
			out.AppendBits(uint32(word&mask), wordSize)
			i--
		case (word & mask) == 0:
			// Leading bits are all 0: stuff a 1.
			out.AppendBits(uint32(word|1), wordSize)
			i--
		default:
			out.AppendBits(uint32(word), wordSize)
		}
	}
	return out
}

// PackWords packs a stuffed bit stream into wordSize-wide integer
// codewords, MSB first, zero-padding the result out to totalWords entries
// (the trailing entries are reserved for the Reed-Solomon encoder's error
// correction codewords).
func PackWords(stuffed *bitutil.BitArray, wordSize, totalWords int) []int {
	words := make([]int, totalWords)
	n := stuffed.Size() / wordSize
	for i := 0; i < n; i++ {
		value := 0
		for j := 0; j < wordSize; j++ {
			if stuffed.Get(i*wordSize + j) {
				value |= 1 << uint(wordSize-1-j)
			}
		}
		words[i] = value
	}
	return words
}

// UnstuffCodewords inverts StuffBits/PackWords on the decode side: given
// RS-corrected data codewords, it expands each back into its original
// bits. A codeword of exactly 1 represents a run of wordSize-1 zero bits;
// a codeword of mask-1 (all-ones but the LSB) represents a run of
// wordSize-1 one bits; every other codeword contributes all wordSize bits
// unchanged. An all-zero or all-one codeword is illegal (it can only arise
// from an uncorrectable error) and fails with ErrTruncatedBitstream.
func UnstuffCodewords(words []int, numDataCodewords, wordSize int) ([]bool, error) {
	mask := (1 << uint(wordSize)) - 1
	stuffedCount := 0
	for i := 0; i < numDataCodewords; i++ {
		w := words[i]
		if w == 0 || w == mask {
			return nil, ErrTruncatedBitstream
		}
		if w == 1 || w == mask-1 {
			stuffedCount++
		}
	}

	bits := make([]bool, numDataCodewords*wordSize-stuffedCount)
	idx := 0
	for i := 0; i < numDataCodewords; i++ {
		w := words[i]
		if w == 1 || w == mask-1 {
			fill := w > 1
			for j := 0; j < wordSize-1; j++ {
				bits[idx] = fill
				idx++
			}
		} else {
			for bit := wordSize - 1; bit >= 0; bit-- {
				bits[idx] = (w & (1 << uint(bit))) != 0
				idx++
			}
		}
	}
	return bits, nil
}
