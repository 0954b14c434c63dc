package reedsolomon

import "testing"

func TestEncodeDecodeAztecData8(t *testing.T) {
	field := AztecData8

	dataSize := 10
	ecSize := 7
	toEncode := make([]int, dataSize+ecSize)
	for i := 0; i < dataSize; i++ {
		toEncode[i] = i + 1
	}

	enc := NewEncoder(field)
	enc.Encode(toEncode, ecSize)

	for i := 0; i < dataSize; i++ {
		if toEncode[i] != i+1 {
			t.Errorf("data[%d] = %d, want %d", i, toEncode[i], i+1)
		}
	}

	received := make([]int, len(toEncode))
	copy(received, toEncode)
	received[0] = 0
	received[3] = 200
	received[6] = 100

	dec := NewDecoder(field)
	corrected, err := dec.Decode(received, ecSize)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if corrected != 3 {
		t.Errorf("corrected = %d, want 3", corrected)
	}

	for i := 0; i < dataSize; i++ {
		if received[i] != toEncode[i] {
			t.Errorf("after correction, data[%d] = %d, want %d", i, received[i], toEncode[i])
		}
	}
}

func TestDecodeNoErrors(t *testing.T) {
	field := AztecData8
	dataSize := 5
	ecSize := 4
	toEncode := make([]int, dataSize+ecSize)
	for i := 0; i < dataSize; i++ {
		toEncode[i] = (i + 1) * 10
	}

	enc := NewEncoder(field)
	enc.Encode(toEncode, ecSize)

	dec := NewDecoder(field)
	corrected, err := dec.Decode(toEncode, ecSize)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if corrected != 0 {
		t.Errorf("corrected = %d, want 0 (no errors)", corrected)
	}
}

func TestDecodeTooManyErrors(t *testing.T) {
	field := AztecData8
	dataSize := 5
	ecSize := 4
	toEncode := make([]int, dataSize+ecSize)
	for i := 0; i < dataSize; i++ {
		toEncode[i] = (i + 1) * 10
	}

	enc := NewEncoder(field)
	enc.Encode(toEncode, ecSize)

	// Introduce more errors than can be corrected (3 errors, ecSize/2 = 2).
	received := make([]int, len(toEncode))
	copy(received, toEncode)
	received[0] = 0
	received[1] = 0
	received[2] = 0

	dec := NewDecoder(field)
	_, err := dec.Decode(received, ecSize)
	if err == nil {
		t.Error("expected error for too many errors")
	}
}

func TestAztecDataFieldSizes(t *testing.T) {
	cases := []struct {
		field *GaloisField
		size  int
	}{
		{AztecParam, 16},
		{AztecData6, 64},
		{AztecData8, 256},
		{AztecData10, 1024},
		{AztecData12, 4096},
	}
	for _, c := range cases {
		if c.field.Size() != c.size {
			t.Errorf("Size() = %d, want %d", c.field.Size(), c.size)
		}
		if c.field.GeneratorBase() != 1 {
			t.Errorf("GeneratorBase() = %d, want 1", c.field.GeneratorBase())
		}
	}
}

func TestGaloisFieldBasics(t *testing.T) {
	field := AztecData8

	for a := 1; a < field.Size(); a++ {
		inv, err := field.Inv(a)
		if err != nil {
			t.Fatalf("Inv(%d) failed: %v", a, err)
		}
		if field.Mul(a, inv) != 1 {
			t.Errorf("a=%d: a*inv(a) = %d, want 1", a, field.Mul(a, inv))
		}
	}

	if AddOrSubtract(42, 42) != 0 {
		t.Error("a XOR a should be 0")
	}

	if field.Mul(0, 100) != 0 || field.Mul(100, 0) != 0 {
		t.Error("multiply by 0 should be 0")
	}

	if _, err := field.Inv(0); err != ErrUndefinedInverse {
		t.Errorf("Inv(0) err = %v, want ErrUndefinedInverse", err)
	}
	if _, err := field.Div(5, 0); err != ErrDivisionByZero {
		t.Errorf("Div(_,0) err = %v, want ErrDivisionByZero", err)
	}
	if _, err := field.Log(0); err != ErrUndefinedLog {
		t.Errorf("Log(0) err = %v, want ErrUndefinedLog", err)
	}
	if field.Pow(0, 0) != 1 {
		t.Error("Pow(0,0) should be 1")
	}
	if field.Pow(0, 5) != 0 {
		t.Error("Pow(0,n>0) should be 0")
	}
}

func TestGaloisFieldDivMatchesMulInverse(t *testing.T) {
	field := AztecData6
	for a := 1; a < field.Size(); a++ {
		for b := 1; b < field.Size(); b++ {
			quotient, err := field.Div(a, b)
			if err != nil {
				t.Fatalf("Div(%d,%d) failed: %v", a, b, err)
			}
			if field.Mul(quotient, b) != a {
				t.Errorf("Div(%d,%d)=%d does not satisfy quotient*b=a", a, b, quotient)
			}
		}
	}
}

func TestGenericGFPoly(t *testing.T) {
	field := AztecData8

	zero := field.Zero()
	if !zero.IsZero() {
		t.Error("zero should be zero")
	}

	one := field.One()
	if one.IsZero() {
		t.Error("one should not be zero")
	}
	if one.Degree() != 0 {
		t.Errorf("one degree = %d, want 0", one.Degree())
	}

	// p(x) = 2x + 3
	p := newGenericGFPoly(field, []int{2, 3})
	if p.EvaluateAt(0) != 3 {
		t.Errorf("p(0) = %d, want 3", p.EvaluateAt(0))
	}

	doubled := p.MultiplyScalar(1)
	if doubled != p {
		t.Error("multiply by 1 should return same polynomial")
	}
}
