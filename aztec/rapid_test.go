package aztec

import (
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

// TestRapidHighLevelRoundTrip checks that high-level encode/decode round
// trips for any byte slice: the encoder always either emits a direct code,
// a latch+code, or a binary-shift escape, so no byte should ever be lost.
func TestRapidHighLevelRoundTrip(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		data := rapid.SliceOf(rapid.Byte()).Draw(rt, "data")
		bits, err := HighLevelEncode(data)
		require.NoError(rt, err)

		boolBits := make([]bool, bits.Size())
		for i := range boolBits {
			boolBits[i] = bits.Get(i)
		}
		decoded := HighLevelDecode(boolBits)
		require.Equal(rt, data, decoded)
	})
}

// TestRapidEncodeDecodeRoundTrip exercises the full pipeline end to end:
// Encode followed by Decode must recover the original payload, for
// whichever symbol (compact or full) Encode selects automatically.
func TestRapidEncodeDecodeRoundTrip(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		// Printable ASCII keeps the generated strings within what the
		// five-mode character tables can represent directly or via
		// shift/latch, without relying on the binary-shift escape path
		// (covered separately below).
		data := rapid.SliceOfN(rapid.ByteRange(0x20, 0x7E), 0, 60).Draw(rt, "data")

		code, err := Encode(data, Options{})
		require.NoError(rt, err)

		got, err := Decode(code.Matrix)
		require.NoError(rt, err)
		require.Equal(rt, data, got)
	})
}

// TestRapidEncodeDecodeBinaryRoundTrip exercises the pipeline with
// arbitrary byte values, forcing frequent binary-shift escapes.
func TestRapidEncodeDecodeBinaryRoundTrip(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		data := rapid.SliceOfN(rapid.Byte(), 0, 40).Draw(rt, "data")

		code, err := Encode(data, Options{})
		require.NoError(rt, err)

		got, err := Decode(code.Matrix)
		require.NoError(rt, err)
		require.Equal(rt, data, got)
	})
}

// TestRapidSymbolSizingMonotonic checks that larger forced layer counts
// never produce a smaller symbol, for both compact and full symbols.
func TestRapidSymbolSizingMonotonic(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		compact := rapid.Bool().Draw(rt, "compact")
		maxLayer := 4
		if !compact {
			maxLayer = 32
		}
		a := rapid.IntRange(1, maxLayer-1).Draw(rt, "a")
		b := rapid.IntRange(a+1, maxLayer).Draw(rt, "b")

		require.LessOrEqual(rt, MatrixSize(a, compact), MatrixSize(b, compact))
	})
}

// TestRapidModeMessagePositionsWithinMatrix checks that every generated
// mode-message position lies within the symbol for valid layer counts.
func TestRapidModeMessagePositionsWithinMatrix(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		compact := rapid.Bool().Draw(rt, "compact")
		maxLayer := 4
		if !compact {
			maxLayer = 32
		}
		layers := rapid.IntRange(1, maxLayer).Draw(rt, "layers")
		size := MatrixSize(layers, compact)

		for _, p := range ModeMessagePositions(compact, size) {
			require.GreaterOrEqual(rt, p[0], 0)
			require.Less(rt, p[0], size)
			require.GreaterOrEqual(rt, p[1], 0)
			require.Less(rt, p[1], size)
		}
	})
}
