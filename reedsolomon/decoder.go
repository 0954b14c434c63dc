package reedsolomon

// Decoder performs Reed-Solomon error correction decoding: syndrome
// computation via Horner evaluation, error-locator derivation via the
// iterative Berlekamp-Massey recursion, error-position search via Chien
// search, and error-magnitude recovery via Forney's algorithm.
type Decoder struct {
	field *GaloisField
}

// NewDecoder creates a new Decoder for the given field.
func NewDecoder(field *GaloisField) *Decoder {
	return &Decoder{field: field}
}

// Decode corrects errors in received in place and returns the number of
// errors corrected. twoS is the number of error-correction codewords
// (2t); more than t errors fails with ErrTooManyErrors.
func (d *Decoder) Decode(received []int, twoS int) (int, error) {
	poly := newGenericGFPoly(d.field, received)
	syndromeCoefficients := make([]int, twoS)
	noError := true
	for i := 0; i < twoS; i++ {
		eval := poly.EvaluateAt(d.field.Exp(i + d.field.GeneratorBase()))
		syndromeCoefficients[twoS-1-i] = eval
		if eval != 0 {
			noError = false
		}
	}
	if noError {
		return 0, nil
	}

	sigma, err := d.berlekampMassey(syndromeCoefficients, twoS)
	if err != nil {
		return 0, err
	}
	errorLocations, err := d.findErrorLocations(sigma)
	if err != nil {
		return 0, err
	}
	syndrome := newGenericGFPoly(d.field, syndromeCoefficients)
	omega := d.errorEvaluator(syndrome, sigma, twoS)
	errorMagnitudes := d.findErrorMagnitudes(omega, errorLocations)
	for i := 0; i < len(errorLocations); i++ {
		logLoc, err := d.field.Log(errorLocations[i])
		if err != nil {
			return 0, err
		}
		position := len(received) - 1 - logLoc
		if position < 0 {
			return 0, ErrTooManyErrors
		}
		received[position] = AddOrSubtract(received[position], errorMagnitudes[i])
	}
	return len(errorLocations), nil
}

// berlekampMassey derives the error-locator polynomial sigma from the
// syndrome sequence. syndromeCoefficients is stored highest-degree-first
// the way the rest of this package represents polynomials; s[i] here is
// re-indexed so that s[i] is the syndrome evaluated at exponent
// i+generatorBase (i.e. s[0]=S_b, s[1]=S_{b+1}, ...), which is the
// convention the recursion's discrepancy sum expects.
//
// State: c is the current candidate locator (low-degree-first, c[0]=1), l
// is its length, b is the locator from the last length-changing step,
// lastDiscrepancy is the discrepancy at that step, and m counts how far
// back b was recorded.
// Fails with ErrTooManyErrors if the final degree exceeds twoS/2 (more
// errors than this many EC codewords can correct).
func (d *Decoder) berlekampMassey(syndromeCoefficients []int, twoS int) (*GenericGFPoly, error) {
	field := d.field
	s := make([]int, twoS)
	for i := 0; i < twoS; i++ {
		s[i] = syndromeCoefficients[twoS-1-i]
	}

	c := make([]int, twoS+1)
	b := make([]int, twoS+1)
	c[0] = 1
	b[0] = 1
	l := 0
	m := 1
	lastDiscrepancy := 1

	for n := 0; n < twoS; n++ {
		delta := s[n]
		for i := 1; i <= l; i++ {
			delta = field.Add(delta, field.Mul(c[i], s[n-i]))
		}
		if delta == 0 {
			m++
			continue
		}

		t := make([]int, len(c))
		copy(t, c)

		coef, err := field.Div(delta, lastDiscrepancy)
		if err != nil {
			return nil, err
		}
		for i := 0; i < len(b); i++ {
			if i+m < len(c) {
				c[i+m] = field.Add(c[i+m], field.Mul(coef, b[i]))
			}
		}

		if 2*l <= n {
			l = n + 1 - l
			b = t
			lastDiscrepancy = delta
			m = 1
		} else {
			m++
		}
	}

	if l > twoS/2 {
		return nil, ErrTooManyErrors
	}

	coefficients := make([]int, l+1)
	for i := 0; i <= l; i++ {
		coefficients[l-i] = c[i]
	}
	return newGenericGFPoly(field, coefficients), nil
}

// errorEvaluator computes Omega(x) = S(x)*sigma(x) mod x^twoS, the
// truncation of the key equation product to the degrees the syndrome
// determines.
func (d *Decoder) errorEvaluator(syndrome, sigma *GenericGFPoly, twoS int) *GenericGFPoly {
	product := syndrome.MultiplyPoly(sigma)
	if product.Degree() < twoS {
		return product
	}
	truncated := make([]int, twoS)
	for i := 0; i < twoS; i++ {
		truncated[twoS-1-i] = product.GetCoefficient(i)
	}
	return newGenericGFPoly(d.field, truncated)
}

func (d *Decoder) findErrorLocations(errorLocator *GenericGFPoly) ([]int, error) {
	numErrors := errorLocator.Degree()
	if numErrors == 1 {
		return []int{errorLocator.GetCoefficient(1)}, nil
	}
	result := make([]int, 0, numErrors)
	for i := 1; i < d.field.Size() && len(result) < numErrors; i++ {
		if errorLocator.EvaluateAt(i) == 0 {
			result = append(result, d.field.invUnsafe(i))
		}
	}
	if len(result) != numErrors {
		return nil, ErrTooManyErrors
	}
	return result, nil
}

func (d *Decoder) findErrorMagnitudes(errorEvaluator *GenericGFPoly, errorLocations []int) []int {
	s := len(errorLocations)
	result := make([]int, s)
	for i := 0; i < s; i++ {
		xiInverse := d.field.invUnsafe(errorLocations[i])
		denominator := 1
		for j := 0; j < s; j++ {
			if i != j {
				term := d.field.Mul(errorLocations[j], xiInverse)
				termPlus1 := term | 1
				if term&1 != 0 {
					termPlus1 = term &^ 1
				}
				denominator = d.field.Mul(denominator, termPlus1)
			}
		}
		result[i] = d.field.Mul(errorEvaluator.EvaluateAt(xiInverse), d.field.invUnsafe(denominator))
		if d.field.GeneratorBase() != 0 {
			result[i] = d.field.Mul(result[i], xiInverse)
		}
	}
	return result
}
