package reedsolomon

import "errors"

// Sentinel errors returned by GaloisField arithmetic and by the
// Berlekamp-Massey decoder.
var (
	// ErrDivisionByZero is returned by GaloisField.Div when the divisor is
	// zero.
	ErrDivisionByZero = errors.New("reedsolomon: division by zero")

	// ErrUndefinedInverse is returned by GaloisField.Inv when asked for
	// the inverse of zero.
	ErrUndefinedInverse = errors.New("reedsolomon: zero has no multiplicative inverse")

	// ErrUndefinedLog is returned by GaloisField.Log when asked for the
	// discrete log of zero.
	ErrUndefinedLog = errors.New("reedsolomon: log of zero is undefined")

	// ErrTooManyErrors is returned by Decoder.Decode when the computed
	// error locator degree exceeds the number of correctable errors for
	// the given number of EC codewords.
	ErrTooManyErrors = errors.New("reedsolomon: more errors than can be corrected")
)
