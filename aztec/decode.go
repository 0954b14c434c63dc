package aztec

import (
	"github.com/amishpatel1994/aztec/bitutil"
	"github.com/amishpatel1994/aztec/reedsolomon"
)

// Decode reads an Aztec symbol from an already-rectified, canonically
// oriented bit matrix: it locates the bullseye at the matrix centre,
// determines whether the symbol is compact or full by trying each ring
// count in turn, RS-decodes the mode message over GF(16) to recover the
// layer and data-codeword counts, extracts the data spiral, RS-decodes it
// over the codeword-width-appropriate field, unstuffs it, and finally
// high-level-decodes the resulting bit stream into bytes.
func Decode(matrix *bitutil.BitMatrix) ([]byte, error) {
	compact, layers, dataCodewords, err := detect(matrix)
	if err != nil {
		return nil, err
	}

	rawBits := extractDataBits(matrix, layers, compact)

	correctedBits, err := correctDataBits(rawBits, layers, compact, dataCodewords)
	if err != nil {
		return nil, err
	}

	return HighLevelDecode(correctedBits), nil
}

// detect determines whether the matrix holds a compact or full symbol and
// recovers its layer/data-codeword counts from the mode message, trying
// full first and then compact: a full bullseye's inner rings also pass the
// compact ring check, so full takes precedence when both check out.
func detect(matrix *bitutil.BitMatrix) (compact bool, layers, dataCodewords int, err error) {
	size := matrix.Width()
	center := size / 2

	if CheckBullsEye(matrix, center, 7) {
		if layers, dataCodewords, ok := readModeMessage(matrix, false, size); ok {
			return false, layers, dataCodewords, nil
		}
	}
	if CheckBullsEye(matrix, center, 5) {
		if layers, dataCodewords, ok := readModeMessage(matrix, true, size); ok {
			return true, layers, dataCodewords, nil
		}
		return false, 0, 0, ErrModeMessageDecodeFailed
	}
	return false, 0, 0, ErrFinderNotFound
}

// readModeMessage extracts the mode message bits, RS-corrects them over
// GF(16), and decodes the (layers, dataCodewords) pair.
func readModeMessage(matrix *bitutil.BitMatrix, compact bool, matrixSize int) (layers, dataCodewords int, ok bool) {
	positions := ModeMessagePositions(compact, matrixSize)
	const modeWordSize = 4
	totalWords := len(positions) / modeWordSize
	rawWords := PackWords(boolArray(readPositions(matrix, positions)), modeWordSize, totalWords)

	dataWordCount := 2
	if !compact {
		dataWordCount = 4
	}
	decoder := reedsolomon.NewDecoder(reedsolomon.AztecParam)
	if _, err := decoder.Decode(rawWords, totalWords-dataWordCount); err != nil {
		return 0, 0, false
	}

	bits := bitutil.NewBitArray(0)
	for i := 0; i < dataWordCount; i++ {
		bits.AppendBits(uint32(rawWords[i]), modeWordSize)
	}

	if compact {
		layerField, _ := readBits(bits, 0, 2)
		sizeField, _ := readBits(bits, 2, 6)
		return layerField + 1, sizeField + 1, true
	}
	layerField, _ := readBits(bits, 0, 5)
	sizeField, _ := readBits(bits, 5, 11)
	return layerField + 1, sizeField + 1, true
}

func readPositions(matrix *bitutil.BitMatrix, positions [][2]int) []bool {
	bits := make([]bool, len(positions))
	for i, p := range positions {
		bits[i] = matrix.Get(p[0], p[1])
	}
	return bits
}

func boolArray(bits []bool) *bitutil.BitArray {
	arr := bitutil.NewBitArray(0)
	for _, b := range bits {
		arr.AppendBit(b)
	}
	return arr
}

func readBits(bits *bitutil.BitArray, start, count int) (int, bool) {
	if start+count > bits.Size() {
		return 0, false
	}
	value := 0
	for i := 0; i < count; i++ {
		value <<= 1
		if bits.Get(start + i) {
			value |= 1
		}
	}
	return value, true
}

// extractDataBits reads all data-spiral modules from the matrix, in the
// same (layer, position, side) order the encoder wrote them in.
func extractDataBits(matrix *bitutil.BitMatrix, layers int, compact bool) []bool {
	baseMatrixSize := BaseMatrixSize(layers, compact)
	alignmentMap := AlignmentMap(layers, compact)

	rawBits := make([]bool, TotalBitsInLayer(layers, compact))

	rowOffset := 0
	for i := 0; i < layers; i++ {
		rowSize := dataRowSize(layers, i, compact)
		for j := 0; j < rowSize; j++ {
			for k := 0; k < 2; k++ {
				positions := sidePositions(i, j, k, baseMatrixSize)
				bitOffsets := [4]int{
					rowOffset + j*2 + k,
					rowOffset + rowSize*2 + j*2 + k,
					rowOffset + rowSize*4 + j*2 + k,
					rowOffset + rowSize*6 + j*2 + k,
				}
				for s, off := range bitOffsets {
					rawBits[off] = readModule(matrix, alignmentMap, positions[s][0], positions[s][1])
				}
			}
		}
		rowOffset += rowSize * 8
	}
	return rawBits
}

// readModule reads a single module using the alignment map, treating any
// abstract or real coordinate outside bounds as light (false).
func readModule(matrix *bitutil.BitMatrix, alignmentMap []int, x, y int) bool {
	if x < 0 || x >= len(alignmentMap) || y < 0 || y >= len(alignmentMap) {
		return false
	}
	mx := alignmentMap[x]
	my := alignmentMap[y]
	if mx < 0 || mx >= matrix.Width() || my < 0 || my >= matrix.Height() {
		return false
	}
	return matrix.Get(mx, my)
}

// correctDataBits packs the raw data spiral into codewords, RS-corrects
// them over the layer-appropriate field, and unstuffs the result.
func correctDataBits(rawBits []bool, layers int, compact bool, dataCodewords int) ([]bool, error) {
	wordSize := CodewordSize(layers)
	numCodewords := len(rawBits) / wordSize
	if dataCodewords > numCodewords {
		return nil, ErrTruncatedBitstream
	}

	offset := len(rawBits) % wordSize
	numECCodewords := numCodewords - dataCodewords

	words := make([]int, numCodewords)
	for i := 0; i < numCodewords; i++ {
		w := 0
		for j := 0; j < wordSize; j++ {
			w <<= 1
			if rawBits[offset+i*wordSize+j] {
				w |= 1
			}
		}
		words[i] = w
	}

	decoder := reedsolomon.NewDecoder(GFForWordSize(wordSize))
	if _, err := decoder.Decode(words, numECCodewords); err != nil {
		return nil, ErrTooManyErrors
	}

	return UnstuffCodewords(words, dataCodewords, wordSize)
}
