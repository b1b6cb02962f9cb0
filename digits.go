package thomasq

// maxDigits bounds the digit buffer; enough for any 64-bit operand.
const maxDigits = 20

// digits holds a non-negative integer as decimal digit values, least
// significant digit first. Unused positions stay zero, so zero-padding two
// operands to a common width is a matter of raising n.
type digits struct {
	buf [maxDigits]uint8
	n   int
}

// splitDigits decomposes v by repeated division and modulo by 10.
// A value of 0 has one digit.
func splitDigits(v int) digits {
	var d digits
	if v <= 0 {
		d.n = 1
		return d
	}
	for v > 0 {
		d.buf[d.n] = uint8(v % 10)
		d.n++
		v /= 10
	}
	return d
}

// alignDigits decomposes two operands and left-pads the shorter one with
// zero digits so both share length max(len(n1), len(n2)).
func alignDigits(n1, n2 int) (digits, digits) {
	a := splitDigits(n1)
	b := splitDigits(n2)
	if a.n < b.n {
		a.n = b.n
	} else {
		b.n = a.n
	}
	return a, b
}
