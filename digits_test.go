package thomasq

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitDigits(t *testing.T) {
	d := splitDigits(507)
	assert.Equal(t, 3, d.n)
	assert.Equal(t, uint8(7), d.buf[0])
	assert.Equal(t, uint8(0), d.buf[1])
	assert.Equal(t, uint8(5), d.buf[2])

	// A value of 0 has one digit.
	d = splitDigits(0)
	assert.Equal(t, 1, d.n)
	assert.Equal(t, uint8(0), d.buf[0])
}

func TestAlignDigits(t *testing.T) {
	a, b := alignDigits(1000, 1)
	assert.Equal(t, 4, a.n)
	assert.Equal(t, 4, b.n)

	// The shorter operand is padded with zero digits above its own.
	assert.Equal(t, uint8(1), b.buf[0])
	for i := 1; i < b.n; i++ {
		assert.Equal(t, uint8(0), b.buf[i])
	}
}
