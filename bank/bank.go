// Package bank generates and persists problem banks: sets of distinct
// calculations whose Q-values all fall inside a target band.
//
// A Generator runs one constrained search per requested calculation,
// optionally across multiple workers, and deduplicates operand pairs so a
// bank never contains the same calculation twice. Banks are persisted
// through a blobstore.Store with a self-describing codec header.
package bank

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/RoaringBitmap/roaring/v2/roaring64"
	"github.com/hupe1980/thomasq"
	"github.com/hupe1980/thomasq/randx"
	"github.com/hupe1980/thomasq/search"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

// ErrBandExhausted is returned when the bank cannot reach the requested
// count: either a search spends its full trial budget without a hit, or the
// searches keep returning pairs the bank already holds for a full budget's
// worth of attempts (the band has fewer distinct pairs than requested). The
// partial bank is still returned; a narrow band or tight operand bounds make
// this an expected outcome, not a failure of the generator.
var ErrBandExhausted = errors.New("bank: q-value band exhausted before reaching requested count")

// ErrInvalidBounds is returned when the band or the operand bounds are
// malformed (e.g. upper < lower or max < min).
var ErrInvalidBounds = errors.New("bank: invalid band or operand bounds")

// Bank is a set of distinct calculations inside the band [Lower, Upper].
type Bank struct {
	Operation thomasq.Operation     `json:"operation"`
	Lower     float64               `json:"lower"`
	Upper     float64               `json:"upper"`
	Items     []thomasq.Calculation `json:"items"`
}

// Options configures a Generator.
type Options struct {
	// Workers is the number of concurrent search workers. Defaults to 1.
	Workers int

	// RNG seeds the per-worker generators. If nil, a time-seeded source is
	// used. With a fixed seed and Workers == 1 generation is fully
	// deterministic.
	RNG *randx.RNG

	// Limiter paces search attempts across all workers. If nil, no pacing.
	Limiter *rate.Limiter

	// Logger receives generation logs. If nil, logging is disabled.
	Logger *thomasq.Logger

	// Metrics receives generation metrics. If nil, metrics are disabled.
	Metrics thomasq.MetricsCollector

	// MinInt, MaxInt and Trials override the per-operation search defaults
	// when positive.
	MinInt int
	MaxInt int
	Trials int
}

// Generator produces banks of calculations.
type Generator struct {
	opts Options
}

// NewGenerator creates a new Generator.
func NewGenerator(optFns ...func(o *Options)) *Generator {
	opts := Options{Workers: 1}

	for _, fn := range optFns {
		fn(&opts)
	}

	if opts.Workers < 1 {
		opts.Workers = 1
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

	return &Generator{opts: opts}
}

// Generate produces a bank of count distinct calculations with
// lower <= Q <= upper.
//
// On ErrBandExhausted the returned bank holds whatever was collected so
// far. Any other error leaves the bank partial as well; callers that only
// care about completeness check len(b.Items).
func (g *Generator) Generate(ctx context.Context, op thomasq.Operation, lower, upper float64, count int) (*Bank, error) {
	start := time.Now()

	b := &Bank{Operation: op, Lower: lower, Upper: upper}
	if count <= 0 {
		return b, nil
	}

	// The parent RNG is not safe for concurrent use; derive one child
	// generator per worker before any of them start.
	rngs := make([]*randx.RNG, g.opts.Workers)
	for i := range rngs {
		rngs[i] = g.opts.RNG.Derive()
	}

	var (
		mu    sync.Mutex
		seen  = roaring64.New()
		items = make([]thomasq.Calculation, 0, count)
	)

	// A search that hits an already-banked pair consumes real trials without
	// progress. Workers give up after a full trial budget's worth of
	// consecutive duplicate hits, so requesting more calculations than the
	// band holds distinct pairs still terminates with a partial bank.
	dupBudget := g.opts.Trials
	if dupBudget <= 0 {
		dupBudget = search.DefaultTrials
	}

	gctx, cancel := context.WithCancel(ctx)
	defer cancel()

	gr, gctx := errgroup.WithContext(gctx)

	for i := 0; i < g.opts.Workers; i++ {
		searcher := search.New(func(o *search.Options) {
			o.RNG = rngs[i]
			o.Logger = g.opts.Logger
			o.Metrics = g.opts.Metrics
		})

		gr.Go(func() error {
			dupes := 0

			for {
				if gctx.Err() != nil {
					return nil
				}

				if g.opts.Limiter != nil {
					if err := g.opts.Limiter.Wait(gctx); err != nil {
						return nil
					}
				}

				cal := g.runSearch(searcher, op, lower, upper)

				switch cal.Status {
				case thomasq.StatusInvalidInput:
					return ErrInvalidBounds
				case thomasq.StatusExhausted:
					return ErrBandExhausted
				}

				mu.Lock()
				added := false
				if len(items) < count {
					key := pairKey(cal.N1, cal.N2)
					if !seen.Contains(key) {
						seen.Add(key)
						items = append(items, cal)
						added = true
					}
				}
				done := len(items) >= count
				mu.Unlock()

				if done {
					cancel()
					return nil
				}

				if added {
					dupes = 0
					continue
				}

				dupes++
				if dupes >= dupBudget {
					return ErrBandExhausted
				}
			}
		})
	}

	err := gr.Wait()

	mu.Lock()
	b.Items = items
	mu.Unlock()

	if len(b.Items) >= count {
		// Complete bank: a straggler's exhaustion after the last hit does
		// not matter.
		err = nil
	} else if err == nil && ctx.Err() != nil {
		err = ctx.Err()
	}

	g.opts.Logger.LogGenerate(ctx, op, len(b.Items), count, err)
	g.opts.Metrics.RecordGenerate(op, len(b.Items), count, time.Since(start), err)

	return b, err
}

// runSearch dispatches one constrained search for the operation kind,
// applying the generator's bound overrides.
func (g *Generator) runSearch(s *search.Searcher, op thomasq.Operation, lower, upper float64) thomasq.Calculation {
	switch op {
	case thomasq.OpAddition:
		return s.Addition(lower, upper, g.applyBounds)
	case thomasq.OpSubtraction:
		return s.Subtraction(lower, upper, g.applyBounds)
	case thomasq.OpMultiplication:
		return s.Multiplication(lower, upper, g.applyBounds)
	default:
		return thomasq.Calculation{Operation: op, Status: thomasq.StatusInvalidInput}
	}
}

func (g *Generator) applyBounds(o *search.CallOptions) {
	if g.opts.MinInt > 0 {
		o.MinInt = g.opts.MinInt
	}
	if g.opts.MaxInt > 0 {
		o.MaxInt = g.opts.MaxInt
	}
	if g.opts.Trials > 0 {
		o.Trials = g.opts.Trials
	}
}

// pairKey encodes an operand pair as a single bitmap key.
func pairKey(n1, n2 int) uint64 {
	return uint64(uint32(n1))<<32 | uint64(uint32(n2))
}
