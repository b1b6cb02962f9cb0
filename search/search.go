// Package search implements the randomized constrained search for
// calculations whose Q-value falls in a target band.
//
// A Searcher repeatedly draws uniform random operand pairs within bounds,
// evaluates their Q-value and returns the first hit inside the inclusive
// band [lower, upper]. If the trial budget runs out the search reports
// StatusExhausted: feasibility is never guaranteed by construction, a narrow
// band, mismatched operand bounds or a small budget may all lead to
// exhaustion even when qualifying calculations exist.
package search

import (
	"context"
	"time"

	"github.com/hupe1980/thomasq"
	"github.com/hupe1980/thomasq/randx"
)

// Default per-call bounds, matching the original formulation.
const (
	// DefaultMinInt is the default lower operand bound.
	DefaultMinInt = 1
	// DefaultMaxInt is the default upper operand bound for addition and
	// subtraction.
	DefaultMaxInt = 999
	// DefaultMinMultiplicand is the default lower multiplicand bound.
	DefaultMinMultiplicand = 2
	// DefaultMaxMultiplicand is the default upper multiplicand bound.
	DefaultMaxMultiplicand = 9999
	// DefaultTrials is the default trial budget per search.
	DefaultTrials = 20000
)

// Multiplier bounds are fixed: the multiplier is inherently one digit.
const (
	minMultiplier = 2
	maxMultiplier = 9
)

// Options configures a Searcher.
type Options struct {
	// RNG is the random source used for candidate draws. If nil, a
	// time-seeded generator is used. Supply a fixed seed for deterministic
	// searches.
	RNG *randx.RNG

	// Logger receives per-search debug logs. If nil, logging is disabled.
	Logger *thomasq.Logger

	// Metrics receives per-search metrics. If nil, metrics are disabled.
	Metrics thomasq.MetricsCollector
}

// Searcher draws random candidate calculations and tests their Q-value
// against a target band. A Searcher is not safe for concurrent use because
// its random source is not; create one per goroutine.
type Searcher struct {
	rng     *randx.RNG
	logger  *thomasq.Logger
	metrics thomasq.MetricsCollector
}

// New creates a new Searcher.
func New(optFns ...func(o *Options)) *Searcher {
	opts := Options{}

	for _, fn := range optFns {
		fn(&opts)
	}

	if opts.RNG == nil {
		opts.RNG = randx.NewTimeSeeded()
	}

	if opts.Logger == nil {
		opts.Logger = thomasq.NoopLogger()
	}

	if opts.Metrics == nil {
		opts.Metrics = thomasq.NoopMetricsCollector{}
	}

	return &Searcher{
		rng:     opts.RNG,
		logger:  opts.Logger,
		metrics: opts.Metrics,
	}
}

// CallOptions bound a single search call.
type CallOptions struct {
	// MinInt is the inclusive lower operand bound.
	MinInt int
	// MaxInt is the inclusive upper operand bound.
	MaxInt int
	// Trials is the candidate budget for this call.
	Trials int
}

// Addition searches for n1, n2 with lower <= Q[n1+n2] <= upper.
// Both operands are drawn independently from [MinInt, MaxInt].
func (s *Searcher) Addition(lower, upper float64, optFns ...func(o *CallOptions)) thomasq.Calculation {
	opts := CallOptions{MinInt: DefaultMinInt, MaxInt: DefaultMaxInt, Trials: DefaultTrials}

	for _, fn := range optFns {
		fn(&opts)
	}

	return s.run(thomasq.OpAddition, lower, upper, opts, func() (int, int) {
		return s.rng.IntBetween(opts.MinInt, opts.MaxInt), s.rng.IntBetween(opts.MinInt, opts.MaxInt)
	}, thomasq.QAddition)
}

// Subtraction searches for n1, n2 with lower <= Q[n1-n2] <= upper.
// n1 is drawn from [MinInt, MaxInt] and n2 from [MinInt, n1], keeping
// n2 <= n1; draws with n2 == n1 fall outside the operation's domain and
// simply consume a trial.
func (s *Searcher) Subtraction(lower, upper float64, optFns ...func(o *CallOptions)) thomasq.Calculation {
	opts := CallOptions{MinInt: DefaultMinInt, MaxInt: DefaultMaxInt, Trials: DefaultTrials}

	for _, fn := range optFns {
		fn(&opts)
	}

	return s.run(thomasq.OpSubtraction, lower, upper, opts, func() (int, int) {
		n1 := s.rng.IntBetween(opts.MinInt, opts.MaxInt)
		return n1, s.rng.IntBetween(opts.MinInt, n1)
	}, thomasq.QSubtraction)
}

// Multiplication searches for x, m with lower <= Q[x*m] <= upper.
// The multiplier x is always drawn from [2,9]; the multiplicand m from
// [MinInt, MaxInt], defaulting to [2,9999].
func (s *Searcher) Multiplication(lower, upper float64, optFns ...func(o *CallOptions)) thomasq.Calculation {
	opts := CallOptions{MinInt: DefaultMinMultiplicand, MaxInt: DefaultMaxMultiplicand, Trials: DefaultTrials}

	for _, fn := range optFns {
		fn(&opts)
	}

	return s.run(thomasq.OpMultiplication, lower, upper, opts, func() (int, int) {
		return s.rng.IntBetween(minMultiplier, maxMultiplier), s.rng.IntBetween(opts.MinInt, opts.MaxInt)
	}, thomasq.QMultiplication)
}

// run drives the sampling loop shared by all operation kinds.
func (s *Searcher) run(op thomasq.Operation, lower, upper float64, opts CallOptions, draw func() (int, int), eval func(int, int) thomasq.Result) thomasq.Calculation {
	start := time.Now()
	ctx := context.Background()

	if upper < lower || opts.Trials <= 0 || opts.MaxInt < opts.MinInt || opts.MinInt < 0 {
		s.logger.LogSearch(ctx, op, 0, thomasq.StatusInvalidInput)
		s.metrics.RecordSearch(op, 0, time.Since(start), thomasq.StatusInvalidInput)

		return thomasq.Calculation{Operation: op, Status: thomasq.StatusInvalidInput}
	}

	for i := 0; i < opts.Trials; i++ {
		n1, n2 := draw()

		r := eval(n1, n2)
		if r.Valid() && r.Q >= lower && r.Q <= upper {
			s.logger.LogSearch(ctx, op, i+1, thomasq.StatusValid)
			s.metrics.RecordSearch(op, i+1, time.Since(start), thomasq.StatusValid)

			return thomasq.Calculation{
				Operation: op,
				N1:        n1,
				N2:        n2,
				Q:         r.Q,
				Status:    thomasq.StatusValid,
			}
		}
	}

	s.logger.LogSearch(ctx, op, opts.Trials, thomasq.StatusExhausted)
	s.metrics.RecordSearch(op, opts.Trials, time.Since(start), thomasq.StatusExhausted)

	return thomasq.Calculation{Operation: op, Status: thomasq.StatusExhausted}
}
