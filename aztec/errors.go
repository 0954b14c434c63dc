package aztec

import "errors"

// Sentinel errors returned by this package's encoder and decoder.
var (
	// ErrDataTooLarge is returned by Encode when the input does not fit
	// in any Aztec symbol (or in the user-specified layer count, if one
	// was given).
	ErrDataTooLarge = errors.New("aztec: data too large for any Aztec symbol")

	// ErrTooManyErrors is returned when Reed-Solomon decoding of the
	// payload codeword block fails because more codewords are wrong than
	// the block's error correction can recover. A mode-message failure is
	// reported as ErrModeMessageDecodeFailed instead.
	ErrTooManyErrors = errors.New("aztec: more errors in codewords than can be corrected")

	// ErrFinderNotFound is returned by Decode when the matrix's centre
	// does not carry the expected bullseye ring pattern for either a
	// compact or full symbol.
	ErrFinderNotFound = errors.New("aztec: no Aztec finder pattern at matrix centre")

	// ErrModeMessageDecodeFailed is returned by Decode when the mode
	// message cannot be read and Reed-Solomon corrected over GF(16).
	ErrModeMessageDecodeFailed = errors.New("aztec: mode message could not be decoded")

	// ErrTruncatedBitstream is returned when the extracted codeword
	// stream contains a reserved (all-zero or all-one) data codeword,
	// which can only occur if error correction failed to fully repair
	// the data.
	ErrTruncatedBitstream = errors.New("aztec: truncated or corrupt codeword stream")
)
