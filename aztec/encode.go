package aztec

import (
	"github.com/amishpatel1994/aztec/bitutil"
	"github.com/amishpatel1994/aztec/reedsolomon"
)

// Code holds the result of encoding data into an Aztec symbol.
type Code struct {
	Matrix        *bitutil.BitMatrix
	Compact       bool
	Layers        int
	CodewordSize  int
	DataCodewords int
	Size          int
}

// Options controls symbol selection.
type Options struct {
	// ErrorCorrection sets the error-correction budget as a fraction of
	// the high-level-encoded payload's bit count, plus a fixed 11 bits; a
	// symbol is chosen only if it holds the stuffed payload and that
	// budget. It is not a fraction of the symbol's own capacity. Defaults
	// to 0.23 (the ISO default) when zero.
	ErrorCorrection float64
	// MinLayers is the smallest layer count Encode will consider when
	// choosing a symbol size automatically. Defaults to 1 when zero.
	MinLayers int
	// Compact forces a compact or full symbol when non-nil; when nil,
	// Encode picks the smallest symbol (compact first) that fits.
	Compact *bool
}

func (o Options) normalized() Options {
	if o.ErrorCorrection <= 0 {
		o.ErrorCorrection = 0.23
	}
	if o.MinLayers <= 0 {
		o.MinLayers = 1
	}
	return o
}

// Encode builds an Aztec symbol carrying data, choosing the smallest
// symbol size (or honouring opts.Compact/opts.MinLayers) that fits the
// high-level-encoded, stuffed, error-corrected payload.
func Encode(data []byte, opts Options) (*Code, error) {
	opts = opts.normalized()

	bits, err := HighLevelEncode(data)
	if err != nil {
		return nil, err
	}

	eccBits := int(float64(bits.Size())*opts.ErrorCorrection) + 11
	totalSizeBits := bits.Size() + eccBits

	var compact bool
	var layers int
	var layerBits int
	var wordSize int
	var stuffedBits *bitutil.BitArray
	found := false

	for i := 0; i < 36; i++ {
		candidateCompact := i <= 3
		var candidateLayers int
		if candidateCompact {
			candidateLayers = i + 1
		} else {
			candidateLayers = i - 3
		}
		if candidateLayers < opts.MinLayers {
			continue
		}
		if opts.Compact != nil && *opts.Compact != candidateCompact {
			continue
		}

		candidateLayerBits := TotalBitsInLayer(candidateLayers, candidateCompact)
		if totalSizeBits > candidateLayerBits {
			continue
		}

		candidateWordSize := CodewordSize(candidateLayers)
		if stuffedBits == nil || wordSize != candidateWordSize {
			wordSize = candidateWordSize
			stuffedBits = StuffBits(bits, wordSize)
		}
		usableBits := candidateLayerBits - candidateLayerBits%wordSize
		if candidateCompact && stuffedBits.Size() > wordSize*64 {
			continue
		}
		if stuffedBits.Size()+eccBits <= usableBits {
			compact = candidateCompact
			layers = candidateLayers
			layerBits = candidateLayerBits
			found = true
			break
		}
	}
	if !found {
		return nil, ErrDataTooLarge
	}

	messageBits := generateCheckWords(stuffedBits, layerBits, wordSize)
	messageSizeInWords := stuffedBits.Size() / wordSize
	modeMessage := generateModeMessage(compact, layers, messageSizeInWords)

	baseMatrixSize := BaseMatrixSize(layers, compact)
	matrixSize := MatrixSize(layers, compact)
	alignmentMap := AlignmentMap(layers, compact)

	matrix := bitutil.NewBitMatrix(matrixSize)

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
					if messageBits.Get(off) {
						matrix.Set(alignmentMap[positions[s][0]], alignmentMap[positions[s][1]])
					}
				}
			}
		}
		rowOffset += rowSize * 8
	}

	drawModeMessage(matrix, compact, matrixSize, modeMessage)

	if compact {
		DrawBullsEye(matrix, matrixSize/2, 5)
	} else {
		DrawBullsEye(matrix, matrixSize/2, 7)
		drawReferenceGrid(matrix, baseMatrixSize, matrixSize)
	}

	return &Code{
		Matrix:        matrix,
		Compact:       compact,
		Layers:        layers,
		CodewordSize:  wordSize,
		DataCodewords: messageSizeInWords,
		Size:          matrixSize,
	}, nil
}

// generateCheckWords packs stuffedBits into totalBits/wordSize codewords,
// appends Reed-Solomon error-correction codewords, and returns the result
// as a bit stream of exactly totalBits bits (left-padded with zeros if
// totalBits is not a multiple of wordSize). With no data codewords the
// check codewords of the all-zero message are all zero and stay so.
func generateCheckWords(stuffedBits *bitutil.BitArray, totalBits, wordSize int) *bitutil.BitArray {
	messageSizeInWords := stuffedBits.Size() / wordSize
	totalWords := totalBits / wordSize

	words := PackWords(stuffedBits, wordSize, totalWords)

	if messageSizeInWords > 0 {
		rs := reedsolomon.NewEncoder(GFForWordSize(wordSize))
		rs.Encode(words, totalWords-messageSizeInWords)
	}

	out := bitutil.NewBitArray(0)
	out.AppendBits(0, totalBits%wordSize)
	for _, w := range words {
		out.AppendBits(uint32(w), wordSize)
	}
	return out
}

// generateModeMessage builds the RS-protected mode message: 2+6 data bits
// (layers-1, messageSizeInWords-1) for a compact symbol, or 5+11 for a
// full one, each GF(16)-encoded out to 28 or 40 bits respectively.
func generateModeMessage(compact bool, layers, messageSizeInWords int) *bitutil.BitArray {
	modeMessage := bitutil.NewBitArray(0)
	if compact {
		modeMessage.AppendBits(uint32(layers-1), 2)
		modeMessage.AppendBits(uint32(messageSizeInWords-1), 6)
		return generateCheckWords(modeMessage, 28, 4)
	}
	modeMessage.AppendBits(uint32(layers-1), 5)
	modeMessage.AppendBits(uint32(messageSizeInWords-1), 11)
	return generateCheckWords(modeMessage, 40, 4)
}

// drawModeMessage places the mode message bits around the bullseye using
// the shared position table.
func drawModeMessage(matrix *bitutil.BitMatrix, compact bool, matrixSize int, modeMessage *bitutil.BitArray) {
	positions := ModeMessagePositions(compact, matrixSize)
	for i, p := range positions {
		if modeMessage.Get(i) {
			matrix.Set(p[0], p[1])
		}
	}
}
