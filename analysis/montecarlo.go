package analysis

import (
	"context"
	"fmt"
	"math/rand/v2"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/lox/pokerodds/internal/randutil"
	"github.com/lox/pokerodds/poker"
)

// EstimateEquity approximates equity by dealing samples random board
// completions from remaining. It is never used by ComputeEquity; callers opt
// in explicitly and the result is marked inexact.
func EstimateEquity(hands [][]poker.Card, board []poker.Card, remaining []poker.Card, samples int, rng *rand.Rand) (EquityResult, error) {
	var c Calculator
	return c.Estimate(context.Background(), hands, board, remaining, samples, rng)
}

// Estimate runs a parallel Monte Carlo simulation. Each worker draws from its
// own generator split from rng, so results are reproducible for a given seed
// and worker count. A nil rng is seeded from the clock.
func (c *Calculator) Estimate(ctx context.Context, hands [][]poker.Card, board []poker.Card, remaining []poker.Card, samples int, rng *rand.Rand) (EquityResult, error) {
	if err := Validate(hands, board, remaining); err != nil {
		return EquityResult{}, err
	}
	missing := BoardSize - len(board)
	if samples <= 0 {
		return EquityResult{}, fmt.Errorf("%w: sample count must be positive, got %d", ErrEnumerationExhausted, samples)
	}
	if len(remaining) < missing {
		return EquityResult{}, fmt.Errorf("%w: need %d board cards, %d remain", ErrEnumerationExhausted, missing, len(remaining))
	}

	if rng == nil {
		rng = randutil.New(randutil.Seed(0))
	}

	total := uint64(samples)
	workers := c.workers(total)
	rngs := randutil.Split(rng, workers)
	logger := c.logger()
	logger.Debug("estimating equity",
		"players", len(hands),
		"board", poker.FormatCards(board),
		"samples", samples,
		"workers", workers)
	start := time.Now()

	var done atomic.Uint64
	tallies := make([]*tally, workers)
	g, ctx := errgroup.WithContext(ctx)
	for w := range workers {
		lo, hi := span(total, w, workers)
		n := int(hi - lo)
		g.Go(func() error {
			t, err := c.sample(ctx, hands, board, remaining, n, rngs[w], total, &done)
			tallies[w] = t
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return EquityResult{}, err
	}

	merged := tallies[0]
	for _, t := range tallies[1:] {
		merged.merge(t)
	}
	logger.Debug("equity estimate complete", "samples", merged.outcomes, "elapsed", time.Since(start))
	return merged.result(false), nil
}

// sample deals n random completions using a partial Fisher-Yates shuffle over
// a private copy of the remaining cards.
func (c *Calculator) sample(ctx context.Context, hands [][]poker.Card, board, remaining []poker.Card, n int, rng *rand.Rand, total uint64, done *atomic.Uint64) (*tally, error) {
	t := newTally(len(hands))
	pool := append([]poker.Card(nil), remaining...)
	known := len(board)
	missing := BoardSize - known
	seven := make([]poker.Card, 2+BoardSize)
	copy(seven[2:], board)
	scores := make([]poker.HandScore, len(hands))

	var pending uint64
	for range n {
		for i := range missing {
			j := i + rng.IntN(len(pool)-i)
			pool[i], pool[j] = pool[j], pool[i]
			seven[2+known+i] = pool[i]
		}
		for p, hole := range hands {
			copy(seven[:2], hole)
			scores[p] = poker.EvaluateUnchecked(seven)
		}
		t.record(scores)

		pending++
		if pending == reportEvery {
			c.report(done.Add(pending), total)
			pending = 0
			if err := ctx.Err(); err != nil {
				return t, err
			}
		}
	}
	if pending > 0 {
		c.report(done.Add(pending), total)
	}
	return t, nil
}
