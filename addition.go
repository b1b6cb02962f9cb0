package thomasq

import "math"

// QAddition returns Q[n1+n2].
//
// The operation is defined for n1 > 0 and n2 > 0; anything else yields
// StatusInvalidInput. A valid Q-value of 0 is possible when every digit
// position involves at most one non-zero digit and no carry, e.g.
// QAddition(10, 1).
func QAddition(n1, n2 int) Result {
	if n1 <= 0 || n2 <= 0 {
		return Result{Status: StatusInvalidInput}
	}

	a, b := alignDigits(n1, n2)

	var q float64
	carry := 0
	for i := 0; i < a.n; i++ {
		contribution, out := additionStep(int(a.buf[i]), int(b.buf[i]), carry)
		q += contribution
		carry = out
	}

	return Result{Status: StatusValid, Q: q}
}

// additionStep evaluates one digit position of an addition. The incoming
// carry is 0 or 1; the returned carry likewise.
//
// The constellation counts both digits, the resulting digit d1+d2, a 10 when
// a carry is produced, and the received carry as an extra informative unit.
// The result digit appears once as the components and again as the answer.
func additionStep(d1, d2, carry int) (float64, int) {
	sum := d1 + d2

	switch {
	case (d1 == 0 || d2 == 0) && carry == 0:
		// Only one non-zero digit and nothing carried in: no calculation.
		return 0, 0
	case sum+carry < 10:
		return math.Log10(float64(d1 + d2 + sum + carry)), 0
	default:
		return math.Log10(float64(d1 + d2 + sum + 10 + carry)), 1
	}
}
