package thomasq

import "math"

// QMultiplication returns Q[x*multiplicand] for a single-digit multiplier
// x in [2,9].
//
// A multiplier outside [2,9] or a negative multiplicand yields
// StatusInvalidInput. The multiplicand may be any non-negative integer and
// is processed least-significant digit first; it is never zero-padded since
// the multiplier is inherently one digit. Generalised multi-digit
// multiplication is not supported.
func QMultiplication(x, multiplicand int) Result {
	if x < 2 || x > 9 || multiplicand < 0 {
		return Result{Status: StatusInvalidInput}
	}

	m := splitDigits(multiplicand)

	var q float64
	carry := 0
	for i := 0; i < m.n; i++ {
		contribution, out := multiplicationStep(x, int(m.buf[i]), carry, i == m.n-1)
		q += contribution
		carry = out
	}

	return Result{Status: StatusValid, Q: q}
}

// multiplicationStep evaluates one multiplicand digit. Unlike addition and
// subtraction, the carry here is a tens count in [0,8], not a single bit.
// final marks the most significant digit of the multiplicand.
func multiplicationStep(x, m, carry int, final bool) (float64, int) {
	product := x*m + carry

	switch {
	case product < 10:
		// No carry produced. Constellation: x, m, x*m and the received
		// tens remainder.
		return math.Log10(float64(x + m + x*m + carry)), 0
	case final && carry == 0:
		// Final digit with nothing carried in: the product is written out
		// as-is and no carry bookkeeping is needed.
		return math.Log10(float64(x + m + x*m)), 0
	}

	remainder := product - product%10
	newDigit := product % 10

	var sum int
	switch {
	case product%10 == 0:
		// Exact multiple of ten: the intermediate product itself is the
		// informative unit, no split into remainder and digit.
		sum = x + m + x*m + carry + product
	case final:
		sum = x + m + x*m + carry + product
	case carry > 0:
		sum = x + m + x*m + carry + product + remainder + newDigit
	default:
		sum = x + m + x*m + remainder + newDigit
	}

	return math.Log10(float64(sum)), remainder / 10
}
