package aztec

import (
	"fmt"

	"github.com/amishpatel1994/aztec/bitutil"
	"github.com/amishpatel1994/aztec/reedsolomon"
)

// wordSizeTable[layers] gives the payload codeword width for that layer
// count. Index 0 is the mode message's own fixed width (always GF(16), 4
// bits); indices 1-32 are the data-codeword widths for compact layers 1-4
// and full layers 1-32.
var wordSizeTable = [33]int{
	4, 6, 6, 8, 8, 8, 8, 8, 8, 10, 10, 10, 10, 10, 10, 10, 10, 10, 10, 10, 10, 10, 10,
	12, 12, 12, 12, 12, 12, 12, 12, 12, 12,
}

// CodewordSize returns the data-codeword bit width for the given layer
// count: <=2 -> 6, <=8 -> 8, <=22 -> 10, else 12.
func CodewordSize(layers int) int { return wordSizeTable[layers] }

// GFForWordSize returns the Galois field used for Reed-Solomon over
// wordSize-bit codewords.
func GFForWordSize(wordSize int) *reedsolomon.GaloisField {
	switch wordSize {
	case 4:
		return reedsolomon.AztecParam
	case 6:
		return reedsolomon.AztecData6
	case 8:
		return reedsolomon.AztecData8
	case 10:
		return reedsolomon.AztecData10
	case 12:
		return reedsolomon.AztecData12
	default:
		panic(fmt.Sprintf("aztec: unsupported codeword size %d", wordSize))
	}
}

// TotalBitsInLayer returns the total number of data-bearing bits a symbol
// with this many layers carries (compact or full).
func TotalBitsInLayer(layers int, compact bool) int {
	base := 112
	if compact {
		base = 88
	}
	return (base + 16*layers) * layers
}

// BaseMatrixSize returns the symbol side length before the full-symbol
// reference-grid spacing is inserted (identical to the final side length
// for compact symbols, which have no reference grid).
func BaseMatrixSize(layers int, compact bool) int {
	if compact {
		return layers*4 + 11
	}
	return layers*4 + 14
}

// MatrixSize returns the final symbol side length: compact side =
// 11+4*layers; full side = base+1+2*floor((base/2-1)/15) with
// base = BaseMatrixSize = 14+4*layers, the extra modules being the
// reference-grid lines (19 for 1 layer, 151 for 32).
func MatrixSize(layers int, compact bool) int {
	base := BaseMatrixSize(layers, compact)
	if compact {
		return base
	}
	return base + 1 + 2*((base/2-1)/15)
}

// AlignmentMap maps an abstract 0..baseMatrixSize-1 coordinate (used by the
// spiral placement and mode-message position math below) to its real
// column/row in the final matrix. For compact symbols this is the
// identity; for full symbols it inserts a reference-grid gap after every 15
// abstract positions (so grid lines fall every 16 real positions), matching
// the bullseye's orientation spacing.
func AlignmentMap(layers int, compact bool) []int {
	base := BaseMatrixSize(layers, compact)
	alignmentMap := make([]int, base)
	if compact {
		for i := range alignmentMap {
			alignmentMap[i] = i
		}
		return alignmentMap
	}
	matrixSize := MatrixSize(layers, compact)
	origCenter := base / 2
	center := matrixSize / 2
	for i := 0; i < origCenter; i++ {
		newOffset := i + i/15
		alignmentMap[origCenter-i-1] = center - newOffset - 1
		alignmentMap[origCenter+i] = center + newOffset + 1
	}
	return alignmentMap
}

// dataRowSize returns the number of 2-module positions along one side of
// layer i's ring (i=0 is the outermost layer).
func dataRowSize(layers, i int, compact bool) int {
	if compact {
		return (layers-i)*4 + 9
	}
	return (layers-i)*4 + 12
}

// sidePositions returns the four raw (pre-alignment-map) coordinate pairs
// that the 2-bit-thick counter-clockwise spiral places at layer i,
// within-layer position j, sub-position k (0 or 1): left column, bottom
// row, right column, top row, in that order. The encoder writes these
// positions and the decoder reads them back; both sides compute the exact
// same four pairs from the same (i,j,k), which is what lets the spiral
// geometry live in one place instead of being duplicated per direction.
func sidePositions(i, j, k, baseMatrixSize int) [4][2]int {
	low := i * 2
	high := baseMatrixSize - 1 - low
	return [4][2]int{
		{low + k, low + j},
		{low + j, high - k},
		{high - k, high - j},
		{high - j, low + k},
	}
}

// ModeMessagePositions returns the matrix coordinates (one pair per mode
// message bit, in the order the bitstream is packed) that the mode message
// occupies: 28 positions for a compact symbol, 40 for a full one. The
// encoder sets these positions from its generated mode message; the
// decoder reads them back in the same order to reconstruct it.
func ModeMessagePositions(compact bool, matrixSize int) [][2]int {
	center := matrixSize / 2
	if compact {
		positions := make([][2]int, 28)
		for i := 0; i < 7; i++ {
			offset := center - 3 + i
			positions[i] = [2]int{offset, center - 5}
			positions[i+7] = [2]int{center + 5, offset}
			positions[20-i] = [2]int{offset, center + 5}
			positions[27-i] = [2]int{center - 5, offset}
		}
		return positions
	}
	positions := make([][2]int, 40)
	for i := 0; i < 10; i++ {
		offset := center - 5 + i + i/5
		positions[i] = [2]int{offset, center - 7}
		positions[i+10] = [2]int{center + 7, offset}
		positions[29-i] = [2]int{offset, center + 7}
		positions[39-i] = [2]int{center - 7, offset}
	}
	return positions
}

// DrawBullsEye draws the concentric finder rings and the six asymmetric
// orientation-mark dots used to detect a symbol's rotation.
func DrawBullsEye(matrix *bitutil.BitMatrix, center, size int) {
	for i := 0; i < size; i += 2 {
		for j := center - i; j <= center+i; j++ {
			matrix.Set(j, center-i)
			matrix.Set(j, center+i)
			matrix.Set(center-i, j)
			matrix.Set(center+i, j)
		}
	}
	matrix.Set(center-size, center-size)
	matrix.Set(center-size+1, center-size)
	matrix.Set(center-size, center-size+1)
	matrix.Set(center+size, center-size)
	matrix.Set(center+size, center-size+1)
	matrix.Set(center+size, center+size-1)
}

// CheckBullsEye verifies that a bullseye finder pattern of the given size
// sits at (center, center): scanning outward along each of the four
// cardinal directions, every ring at even Chebyshev distance must be dark
// and every ring at odd distance must be light. It assumes the candidate
// centre and size are already known (from the caller trying full then
// compact symbol sizes), rather than searching an arbitrary image for them.
func CheckBullsEye(matrix *bitutil.BitMatrix, center, size int) bool {
	if center < 0 || center >= matrix.Width() || center >= matrix.Height() {
		return false
	}
	if !matrix.Get(center, center) {
		return false
	}
	directions := [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
	for d := 1; d < size; d++ {
		want := d%2 == 0
		for _, dir := range directions {
			x := center + dir[0]*d
			y := center + dir[1]*d
			if x < 0 || x >= matrix.Width() || y < 0 || y >= matrix.Height() {
				return false
			}
			if matrix.Get(x, y) != want {
				return false
			}
		}
	}
	return true
}

// drawReferenceGrid draws the full-symbol reference grid: alternating
// dark/light ticks every 16 real (15 abstract) positions out from the
// centre along both axes, which lets a decoder re-synchronise alignment
// across a large full symbol.
func drawReferenceGrid(matrix *bitutil.BitMatrix, baseMatrixSize, matrixSize int) {
	for i, j := 0, 0; i < baseMatrixSize/2-1; i, j = i+15, j+16 {
		for k := (matrixSize / 2) & 1; k < matrixSize; k += 2 {
			matrix.Set(matrixSize/2-j, k)
			matrix.Set(matrixSize/2+j, k)
			matrix.Set(k, matrixSize/2-j)
			matrix.Set(k, matrixSize/2+j)
		}
	}
}
