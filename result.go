package thomasq

// Status tags the outcome of a Q-value evaluation or a constrained search.
//
// The original formulation signalled both domain violations and search
// exhaustion with the same absent value. The two cases are semantically
// distinct (an impossible request vs. unlucky sampling), so they carry
// separate tags here.
type Status uint8

const (
	// StatusValid indicates a usable Q-value.
	StatusValid Status = iota

	// StatusInvalidInput indicates the operands violate the operation's
	// domain (e.g. n2 >= n1 for subtraction, a multiplier outside [2,9],
	// or malformed search bounds).
	StatusInvalidInput

	// StatusExhausted indicates a search spent its full trial budget
	// without a hit. This is an expected, non-exceptional outcome.
	StatusExhausted
)

// String returns a human-readable tag name.
func (s Status) String() string {
	switch s {
	case StatusValid:
		return "valid"
	case StatusInvalidInput:
		return "invalid-input"
	case StatusExhausted:
		return "exhausted"
	default:
		return "unknown"
	}
}

// Result is the outcome of a single Q-value evaluation.
//
// Q is only meaningful when Status is StatusValid. A valid Q of 0 is
// legitimate (all sub-calculations trivial) and distinct from an invalid
// result.
type Result struct {
	Status Status
	Q      float64
}

// Valid reports whether the result carries a usable Q-value.
func (r Result) Valid() bool { return r.Status == StatusValid }

// Operation identifies the calculation kind.
type Operation uint8

const (
	// OpAddition is n1 + n2.
	OpAddition Operation = iota
	// OpSubtraction is n1 - n2.
	OpSubtraction
	// OpMultiplication is x * multiplicand with a single-digit x.
	OpMultiplication
)

// String returns the operation name.
func (op Operation) String() string {
	switch op {
	case OpAddition:
		return "addition"
	case OpSubtraction:
		return "subtraction"
	case OpMultiplication:
		return "multiplication"
	default:
		return "unknown"
	}
}

// Calculation couples an operand pair with its Q-value, as produced by a
// constrained search. For multiplication, N1 is the single-digit multiplier
// and N2 the multiplicand.
//
// Status distinguishes a hit (StatusValid) from malformed bounds
// (StatusInvalidInput) and a spent trial budget (StatusExhausted). Operands
// and Q are only meaningful for a hit. The zero Status is StatusValid, so
// calculations decoded from persisted banks are valid by construction.
type Calculation struct {
	Operation Operation `json:"operation"`
	N1        int       `json:"n1"`
	N2        int       `json:"n2"`
	Q         float64   `json:"q"`
	Status    Status    `json:"-"`
}

// Valid reports whether the calculation is a usable search hit.
func (c Calculation) Valid() bool { return c.Status == StatusValid }
