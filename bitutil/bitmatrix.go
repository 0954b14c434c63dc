package bitutil

// BitMatrix represents a 2D grid of module bits. x is the column position,
// y is the row position; the origin is at the top-left. true means a dark
// (set) module.
type BitMatrix struct {
	width   int
	height  int
	rowSize int
	data    []uint32
}

// NewBitMatrix creates a new square BitMatrix with the given side length.
func NewBitMatrix(n int) *BitMatrix {
	return NewBitMatrixWithSize(n, n)
}

// NewBitMatrixWithSize creates a new BitMatrix with the given width and height.
func NewBitMatrixWithSize(width, height int) *BitMatrix {
	if width < 0 || height < 0 {
		panic("bitmatrix: dimensions must be nonnegative")
	}
	rowSize := (width + 31) / 32
	return &BitMatrix{
		width:   width,
		height:  height,
		rowSize: rowSize,
		data:    make([]uint32, rowSize*height),
	}
}

// Get returns true if the module at (x, y) is dark.
func (bm *BitMatrix) Get(x, y int) bool {
	offset := y*bm.rowSize + x/32
	return (bm.data[offset]>>uint(x&0x1f))&1 != 0
}

// Set marks the module at (x, y) dark.
func (bm *BitMatrix) Set(x, y int) {
	offset := y*bm.rowSize + x/32
	bm.data[offset] |= 1 << uint(x&0x1f)
}

// SetValue sets the module at (x, y) to v.
func (bm *BitMatrix) SetValue(x, y int, v bool) {
	if v {
		bm.Set(x, y)
		return
	}
	offset := y*bm.rowSize + x/32
	bm.data[offset] &^= 1 << uint(x&0x1f)
}

// Flip toggles the module at (x, y).
func (bm *BitMatrix) Flip(x, y int) {
	offset := y*bm.rowSize + x/32
	bm.data[offset] ^= 1 << uint(x&0x1f)
}

// SetRegion sets every module in the rectangle [left,left+w) x [top,top+h)
// dark.
func (bm *BitMatrix) SetRegion(left, top, w, h int) {
	if top < 0 || left < 0 {
		panic("bitmatrix: left and top must be nonnegative")
	}
	if h < 1 || w < 1 {
		panic("bitmatrix: width and height must be at least 1")
	}
	right := left + w
	bottom := top + h
	if bottom > bm.height || right > bm.width {
		panic("bitmatrix: region must fit inside the matrix")
	}
	for y := top; y < bottom; y++ {
		offset := y * bm.rowSize
		for x := left; x < right; x++ {
			bm.data[offset+x/32] |= 1 << uint(x&0x1f)
		}
	}
}

// Width returns the matrix width.
func (bm *BitMatrix) Width() int { return bm.width }

// Height returns the matrix height.
func (bm *BitMatrix) Height() int { return bm.height }

// Dimensions returns (width, height).
func (bm *BitMatrix) Dimensions() (int, int) { return bm.width, bm.height }

// Count returns the number of dark modules.
func (bm *BitMatrix) Count() int {
	n := 0
	for y := 0; y < bm.height; y++ {
		for x := 0; x < bm.width; x++ {
			if bm.Get(x, y) {
				n++
			}
		}
	}
	return n
}

// ToList flattens the matrix into a row-major slice of bools.
func (bm *BitMatrix) ToList() []bool {
	out := make([]bool, bm.width*bm.height)
	for y := 0; y < bm.height; y++ {
		for x := 0; x < bm.width; x++ {
			out[y*bm.width+x] = bm.Get(x, y)
		}
	}
	return out
}

// FromList builds a BitMatrix from a row-major slice of bools with the
// given width and height. Panics if the list length does not match.
func FromList(width, height int, list []bool) *BitMatrix {
	if len(list) != width*height {
		panic("bitmatrix: list length does not match dimensions")
	}
	bm := NewBitMatrixWithSize(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if list[y*width+x] {
				bm.Set(x, y)
			}
		}
	}
	return bm
}

// Clone returns a deep copy of the BitMatrix.
func (bm *BitMatrix) Clone() *BitMatrix {
	d := make([]uint32, len(bm.data))
	copy(d, bm.data)
	return &BitMatrix{width: bm.width, height: bm.height, rowSize: bm.rowSize, data: d}
}

// Equals reports whether two BitMatrices have identical dimensions and
// module values.
func (bm *BitMatrix) Equals(other *BitMatrix) bool {
	if bm.width != other.width || bm.height != other.height {
		return false
	}
	for y := 0; y < bm.height; y++ {
		for x := 0; x < bm.width; x++ {
			if bm.Get(x, y) != other.Get(x, y) {
				return false
			}
		}
	}
	return true
}

// String renders the matrix using "X " for dark and "  " for light modules.
func (bm *BitMatrix) String() string {
	return bm.StringWithChars("X ", "  ")
}

// StringWithChars renders the matrix using the given dark/light strings.
func (bm *BitMatrix) StringWithChars(dark, light string) string {
	buf := make([]byte, 0, bm.height*(bm.width*len(dark)+1))
	for y := 0; y < bm.height; y++ {
		for x := 0; x < bm.width; x++ {
			if bm.Get(x, y) {
				buf = append(buf, dark...)
			} else {
				buf = append(buf, light...)
			}
		}
		buf = append(buf, '\n')
	}
	return string(buf)
}
