// Package thomasq computes the Thomas Q-value, an information-load metric
// for elementary arithmetic calculations.
//
// The Q-value was proposed by H. B. G. Thomas (1963), "Communication theory
// and the constellation hypothesis of calculation", Quarterly Journal of
// Experimental Psychology, 15:3, 173-191. A calculation is broken down into
// single-digit sub-calculations; each sub-calculation contributes the decimal
// logarithm of the sum of its "constellation", the set of digit values the
// solver has to hold in mind at that step, including carries flowing between
// digit positions.
//
// This implementation uses Thomas's "short" constellations and generalises
// the original proposal by allowing zero digits: any sub-calculation that
// involves only one non-zero digit and no incoming carry contributes 0.
// This extends the range of Q-values down to 0, so that e.g.
// Q[10+1] = 0 while Q[11+1] = log10(4). Thomas himself excluded all-zero
// digits, so treat near-zero Q-values with the appropriate caution.
//
// # Quick Start
//
// Evaluate a single calculation:
//
//	r := thomasq.QAddition(11, 1)
//	if r.Valid() {
//	    fmt.Println(r.Q) // 0.602...
//	}
//
// Domain violations are reported through the result tag, never through
// panics or errors:
//
//	r = thomasq.QSubtraction(2, 11)
//	fmt.Println(r.Status) // invalid-input
//
// Search for a calculation whose Q-value falls in a target band:
//
//	s := search.New(func(o *search.Options) {
//	    o.RNG = randx.New(4711) // deterministic sampling
//	})
//	cal := s.Addition(1.0, 2.0)
//	switch cal.Status {
//	case thomasq.StatusValid:
//	    fmt.Println(cal.N1, cal.N2, cal.Q)
//	case thomasq.StatusExhausted:
//	    // No hit within the trial budget. This is a normal outcome:
//	    // feasibility is not guaranteed by construction.
//	}
//
// Generate and persist whole problem banks with the bank package:
//
//	g := bank.NewGenerator(func(o *bank.Options) { o.Workers = 4 })
//	b, err := g.Generate(ctx, thomasq.OpAddition, 1.0, 2.0, 100)
//	err = b.Save(ctx, blobstore.NewMemoryStore(), "bank-001", codec.Default)
//
// # Supported Operations
//
//   - Addition n1+n2 for n1, n2 > 0
//   - Subtraction n1-n2 for n1 > n2 > 0
//   - Multiplication x*m for a single-digit multiplier x in [2,9] and a
//     non-negative multiplicand m (generalised multi-digit multiplication
//     is not supported)
package thomasq
