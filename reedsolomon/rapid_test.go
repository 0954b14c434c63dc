package reedsolomon

import (
	"testing"

	"pgregory.net/rapid"
)

// TestRapidGaloisFieldMulInverseRoundTrip checks Mul(a, Inv(a)) == 1 for
// every nonzero field element, across every Aztec field width.
func TestRapidGaloisFieldMulInverseRoundTrip(t *testing.T) {
	fields := []*GaloisField{AztecParam, AztecData6, AztecData8, AztecData10, AztecData12}
	rapid.Check(t, func(rt *rapid.T) {
		field := fields[rapid.IntRange(0, len(fields)-1).Draw(rt, "fieldIdx")]
		a := rapid.IntRange(1, field.Size()-1).Draw(rt, "a")
		inv, err := field.Inv(a)
		if err != nil {
			rt.Fatalf("Inv(%d) failed: %v", a, err)
		}
		if field.Mul(a, inv) != 1 {
			rt.Fatalf("a=%d: Mul(a, Inv(a)) = %d, want 1", a, field.Mul(a, inv))
		}
	})
}

// TestRapidGaloisFieldExpLogRoundTrip checks that exp and log invert each
// other over the field's multiplicative group.
func TestRapidGaloisFieldExpLogRoundTrip(t *testing.T) {
	fields := []*GaloisField{AztecParam, AztecData6, AztecData8, AztecData10, AztecData12}
	rapid.Check(t, func(rt *rapid.T) {
		field := fields[rapid.IntRange(0, len(fields)-1).Draw(rt, "fieldIdx")]
		n := rapid.IntRange(0, field.Size()-2).Draw(rt, "n")
		a := field.Exp(n)
		got, err := field.Log(a)
		if err != nil {
			rt.Fatalf("Log(Exp(%d)) failed: %v", n, err)
		}
		if field.Exp(got) != a {
			rt.Fatalf("Exp(Log(Exp(%d))) = %d, want %d", n, field.Exp(got), a)
		}
	})
}

// TestRapidReedSolomonRoundTripsWithoutErrors checks that encoding then
// decoding an uncorrupted codeword sequence recovers it unchanged and
// reports zero corrections, across every Aztec payload field width.
func TestRapidReedSolomonRoundTripsWithoutErrors(t *testing.T) {
	fields := map[string]*GaloisField{
		"data6":  AztecData6,
		"data8":  AztecData8,
		"data10": AztecData10,
		"data12": AztecData12,
	}
	names := []string{"data6", "data8", "data10", "data12"}
	rapid.Check(t, func(rt *rapid.T) {
		name := names[rapid.IntRange(0, len(names)-1).Draw(rt, "fieldName")]
		field := fields[name]
		dataSize := rapid.IntRange(1, 12).Draw(rt, "dataSize")
		ecSize := rapid.IntRange(2, 10).Draw(rt, "ecSize")

		toEncode := make([]int, dataSize+ecSize)
		for i := 0; i < dataSize; i++ {
			toEncode[i] = rapid.IntRange(0, field.Size()-1).Draw(rt, "symbol")
		}

		NewEncoder(field).Encode(toEncode, ecSize)

		corrected, err := NewDecoder(field).Decode(toEncode, ecSize)
		if err != nil {
			rt.Fatalf("Decode on uncorrupted codewords failed: %v", err)
		}
		if corrected != 0 {
			rt.Fatalf("corrected = %d, want 0 for an uncorrupted codeword sequence", corrected)
		}
	})
}

// TestRapidReedSolomonCorrectsWithinThreshold checks that up to ecSize/2
// substituted symbols are always fully corrected.
func TestRapidReedSolomonCorrectsWithinThreshold(t *testing.T) {
	field := AztecData8
	rapid.Check(t, func(rt *rapid.T) {
		dataSize := rapid.IntRange(4, 16).Draw(rt, "dataSize")
		ecSize := rapid.IntRange(4, 12).Draw(rt, "ecSize")
		maxErrors := ecSize / 2
		numErrors := rapid.IntRange(0, maxErrors).Draw(rt, "numErrors")

		toEncode := make([]int, dataSize+ecSize)
		for i := 0; i < dataSize; i++ {
			toEncode[i] = rapid.IntRange(1, field.Size()-1).Draw(rt, "symbol")
		}
		NewEncoder(field).Encode(toEncode, ecSize)

		original := make([]int, len(toEncode))
		copy(original, toEncode)

		received := make([]int, len(toEncode))
		copy(received, toEncode)
		positions := shuffledIndices(rt, len(received))[:numErrors]
		for _, pos := range positions {
			delta := rapid.IntRange(1, field.Size()-1).Draw(rt, "delta")
			received[pos] = AddOrSubtract(received[pos], delta)
		}

		corrected, err := NewDecoder(field).Decode(received, ecSize)
		if err != nil {
			rt.Fatalf("Decode failed with %d injected errors (budget %d): %v", numErrors, maxErrors, err)
		}
		if corrected != numErrors {
			rt.Fatalf("corrected = %d, want %d", corrected, numErrors)
		}
		for i := range original {
			if received[i] != original[i] {
				rt.Fatalf("position %d: got %d, want %d after correction", i, received[i], original[i])
			}
		}
	})
}

// shuffledIndices draws a Fisher-Yates shuffle of [0,n) using the rapid
// source so that picking its first k elements yields k distinct, uniformly
// chosen positions.
func shuffledIndices(rt *rapid.T, n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	for i := n - 1; i > 0; i-- {
		j := rapid.IntRange(0, i).Draw(rt, "swap")
		out[i], out[j] = out[j], out[i]
	}
	return out
}
