package thomasq

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tolerance = 1e-9

func TestQAddition(t *testing.T) {
	tests := []struct {
		name string
		n1   int
		n2   int
		want float64
	}{
		{"one non-zero digit per position", 10, 1, 0},
		{"trivial two-digit", 20, 100, 0},
		{"single informative pair", 11, 1, math.Log10(4)},
		{"one plus one", 1, 1, math.Log10(4)},
		{"single pair with carry", 9, 9, math.Log10(46)},
		{"carry received upstairs", 19, 3, math.Log10(34) + math.Log10(3)},
		{"carry chain", 999, 1, math.Log10(30) + 2*math.Log10(29)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := QAddition(tt.n1, tt.n2)
			require.Equal(t, StatusValid, r.Status)
			assert.InDelta(t, tt.want, r.Q, tolerance)
		})
	}
}

func TestQAddition_InvalidInput(t *testing.T) {
	for _, pair := range [][2]int{{0, 5}, {5, 0}, {-1, 3}, {3, -1}, {0, 0}} {
		r := QAddition(pair[0], pair[1])
		assert.Equal(t, StatusInvalidInput, r.Status, "QAddition(%d, %d)", pair[0], pair[1])
		assert.False(t, r.Valid())
	}
}

func TestQAddition_Symmetry(t *testing.T) {
	// Carry-free pairs of equal digit count.
	for _, pair := range [][2]int{{23, 45}, {123, 456}, {7, 2}} {
		a := QAddition(pair[0], pair[1])
		b := QAddition(pair[1], pair[0])
		require.True(t, a.Valid())
		require.True(t, b.Valid())
		assert.InDelta(t, a.Q, b.Q, tolerance)
	}
}

func TestQAddition_Idempotent(t *testing.T) {
	first := QAddition(17, 25)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, QAddition(17, 25))
	}
}

func TestQAddition_NonNegative(t *testing.T) {
	for n1 := 1; n1 <= 40; n1++ {
		for n2 := 1; n2 <= 40; n2++ {
			r := QAddition(n1, n2)
			require.True(t, r.Valid())
			assert.GreaterOrEqual(t, r.Q, 0.0)
		}
	}
}

func TestQSubtraction(t *testing.T) {
	tests := []struct {
		name string
		n1   int
		n2   int
		want float64
	}{
		{"borrow then settle", 11, 2, math.Log10(14) + math.Log10(3)},
		{"single no-borrow pair", 5, 3, math.Log10(10)},
		{"borrow from trivial tens", 10, 1, math.Log10(12) + math.Log10(3)},
		{"trivial ones position", 20, 10, math.Log10(4)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := QSubtraction(tt.n1, tt.n2)
			require.Equal(t, StatusValid, r.Status)
			assert.InDelta(t, tt.want, r.Q, tolerance)
		})
	}
}

func TestQSubtraction_InvalidInput(t *testing.T) {
	for _, pair := range [][2]int{{5, 5}, {3, 7}, {0, 1}, {5, 0}, {-2, -3}, {5, -1}} {
		r := QSubtraction(pair[0], pair[1])
		assert.Equal(t, StatusInvalidInput, r.Status, "QSubtraction(%d, %d)", pair[0], pair[1])
	}
}

func TestQMultiplication(t *testing.T) {
	tests := []struct {
		name         string
		x            int
		multiplicand int
		want         float64
	}{
		{"no carry", 2, 3, math.Log10(11)},
		{"final digit with carry out", 3, 4, math.Log10(19)},
		{"final digit multiple of ten", 5, 4, math.Log10(29)},
		{"two trivial digits", 2, 11, 2 * math.Log10(5)},
		{"carry into final digit", 3, 45, math.Log10(38) + math.Log10(33)},
		{"intermediate multiple of ten", 5, 24, math.Log10(49) + math.Log10(31)},
		{"zero multiplicand", 5, 0, math.Log10(5)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := QMultiplication(tt.x, tt.multiplicand)
			require.Equal(t, StatusValid, r.Status)
			assert.InDelta(t, tt.want, r.Q, tolerance)
		})
	}
}

func TestQMultiplication_InvalidInput(t *testing.T) {
	for _, pair := range [][2]int{{1, 5}, {10, 5}, {0, 3}, {-3, 3}, {4, -1}} {
		r := QMultiplication(pair[0], pair[1])
		assert.Equal(t, StatusInvalidInput, r.Status, "QMultiplication(%d, %d)", pair[0], pair[1])
	}
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "valid", StatusValid.String())
	assert.Equal(t, "invalid-input", StatusInvalidInput.String())
	assert.Equal(t, "exhausted", StatusExhausted.String())
}

func TestOperation_String(t *testing.T) {
	assert.Equal(t, "addition", OpAddition.String())
	assert.Equal(t, "subtraction", OpSubtraction.String())
	assert.Equal(t, "multiplication", OpMultiplication.String())
}
