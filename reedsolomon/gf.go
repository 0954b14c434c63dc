// Package reedsolomon implements Galois-field arithmetic and Reed-Solomon
// error correction coding over GF(2^p) fields, parameterised the way the
// Aztec symbology uses them (p ∈ {4,6,8,10,12}, one field per codeword
// width plus a dedicated GF(16) field for the mode message).
package reedsolomon

import "fmt"

// GaloisField represents GF(2^p) for a given primitive polynomial and
// generator base. Tables are built once at construction and never mutated
// afterwards, so a *GaloisField is safe for concurrent use by multiple
// readers.
type GaloisField struct {
	p             int
	size          int
	primitive     int
	generatorBase int
	expTable      []int
	logTable      []int
	zero          *GenericGFPoly
	one           *GenericGFPoly
}

// Package-level Galois fields used by Aztec encoding and decoding. Field
// widths and primitive polynomials match ISO/IEC 24778: AztecParam is the
// fixed GF(16) used for the mode message regardless of symbol size;
// AztecData6/8/10/12 are selected by codeword width during payload
// encoding/decoding.
var (
	AztecParam  = NewGaloisField(4, 0x13, 1)
	AztecData6  = NewGaloisField(6, 0x43, 1)
	AztecData8  = NewGaloisField(8, 0x12D, 1)
	AztecData10 = NewGaloisField(10, 0x409, 1)
	AztecData12 = NewGaloisField(12, 0x1069, 1)
)

// NewGaloisField builds GF(2^p) from the given primitive polynomial (as an
// integer including the x^p term, e.g. 0x13 for x^4+x+1) and generator
// base. exp[i] holds
// alpha^i for i in [0, 2^p-2]; log is its inverse, undefined at 0.
func NewGaloisField(p, primitive, generatorBase int) *GaloisField {
	size := 1 << uint(p)
	gf := &GaloisField{
		p:             p,
		size:          size,
		primitive:     primitive,
		generatorBase: generatorBase,
		expTable:      make([]int, size),
		logTable:      make([]int, size),
	}

	x := 1
	for i := 0; i < size; i++ {
		gf.expTable[i] = x
		x <<= 1
		if x >= size {
			x ^= primitive
			x &= size - 1
		}
	}
	for i := 0; i < size-1; i++ {
		gf.logTable[gf.expTable[i]] = i
	}

	gf.zero = newGenericGFPoly(gf, []int{0})
	gf.one = newGenericGFPoly(gf, []int{1})

	return gf
}

// Zero returns the zero polynomial over this field.
func (gf *GaloisField) Zero() *GenericGFPoly { return gf.zero }

// One returns the constant-one polynomial over this field.
func (gf *GaloisField) One() *GenericGFPoly { return gf.one }

// BuildMonomial returns coefficient*x^degree as a polynomial over this
// field.
func (gf *GaloisField) BuildMonomial(degree, coefficient int) *GenericGFPoly {
	if degree < 0 {
		panic("reedsolomon: negative degree")
	}
	if coefficient == 0 {
		return gf.zero
	}
	coefficients := make([]int, degree+1)
	coefficients[0] = coefficient
	return newGenericGFPoly(gf, coefficients)
}

// Add returns a+b, which in GF(2^p) is the same as subtraction.
func (gf *GaloisField) Add(a, b int) int { return a ^ b }

// Sub returns a-b; identical to Add in a field of characteristic 2.
func (gf *GaloisField) Sub(a, b int) int { return a ^ b }

// Mul returns a*b in this field.
func (gf *GaloisField) Mul(a, b int) int {
	if a == 0 || b == 0 {
		return 0
	}
	return gf.expTable[(gf.logTable[a]+gf.logTable[b])%(gf.size-1)]
}

// Div returns a/b. Fails with ErrDivisionByZero if b is zero.
func (gf *GaloisField) Div(a, b int) (int, error) {
	if b == 0 {
		return 0, ErrDivisionByZero
	}
	if a == 0 {
		return 0, nil
	}
	diff := gf.logTable[a] - gf.logTable[b]
	if diff < 0 {
		diff += gf.size - 1
	}
	return gf.expTable[diff], nil
}

// Inv returns the multiplicative inverse of a. Fails with
// ErrUndefinedInverse if a is zero.
func (gf *GaloisField) Inv(a int) (int, error) {
	if a == 0 {
		return 0, ErrUndefinedInverse
	}
	return gf.expTable[gf.size-1-gf.logTable[a]], nil
}

func (gf *GaloisField) invUnsafe(a int) int {
	v, err := gf.Inv(a)
	if err != nil {
		panic(err)
	}
	return v
}

// Pow returns a^n in this field. Pow(a,0)=1 for all a including 0;
// Pow(0,n)=0 for n>0.
func (gf *GaloisField) Pow(a, n int) int {
	if n == 0 {
		return 1
	}
	if a == 0 {
		return 0
	}
	e := (gf.logTable[a] * n) % (gf.size - 1)
	if e < 0 {
		e += gf.size - 1
	}
	return gf.expTable[e]
}

// Exp returns alpha^n, reducing n modulo the field's multiplicative order.
func (gf *GaloisField) Exp(n int) int {
	n %= gf.size - 1
	if n < 0 {
		n += gf.size - 1
	}
	return gf.expTable[n]
}

// Log returns log-base-alpha of a. Fails with ErrUndefinedLog if a is
// zero.
func (gf *GaloisField) Log(a int) (int, error) {
	if a == 0 {
		return 0, ErrUndefinedLog
	}
	return gf.logTable[a], nil
}

// Size returns 2^p, the number of elements in the field.
func (gf *GaloisField) Size() int { return gf.size }

// GeneratorBase returns the generator base used when this field's
// generator polynomials are built (the exponent of the first root).
func (gf *GaloisField) GeneratorBase() int { return gf.generatorBase }

// String returns a short human-readable description of the field.
func (gf *GaloisField) String() string {
	return fmt.Sprintf("GF(0x%x,%d)", gf.primitive, gf.size)
}
