package thomasq

import "math"

// QSubtraction returns Q[n1-n2].
//
// The operation is defined for n1 > 0, n2 > 0 and n2 < n1; anything else
// yields StatusInvalidInput. The digit-level borrow plays the role of the
// carry.
func QSubtraction(n1, n2 int) Result {
	if n1 <= 0 || n2 <= 0 || n2 >= n1 {
		return Result{Status: StatusInvalidInput}
	}

	a, b := alignDigits(n1, n2)

	var q float64
	borrow := 0
	for i := 0; i < a.n; i++ {
		contribution, out := subtractionStep(int(a.buf[i]), int(b.buf[i]), borrow)
		q += contribution
		borrow = out
	}

	return Result{Status: StatusValid, Q: q}
}

// subtractionStep evaluates one digit position of a subtraction.
//
// The short constellation omits the final resulting digit and counts
// |d1-d2| regardless of sign, so e.g. the first constellation of 11-2 is
// (1, 2, |1-2|). Whether a borrow was received does not change which digits
// are counted, only the additive 10 for a produced borrow and the borrow
// term itself do.
func subtractionStep(d1, d2, borrow int) (float64, int) {
	diff := d1 - d2
	if diff < 0 {
		diff = -diff
	}

	switch {
	case d2 == 0 && borrow == 0:
		// Subtracting zero with nothing borrowed: no calculation.
		return 0, 0
	case d1-d2-borrow >= 0:
		return math.Log10(float64(d1 + d2 + diff + borrow)), 0
	default:
		return math.Log10(float64(d1 + d2 + diff + 10 + borrow)), 1
	}
}
