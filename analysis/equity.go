// Package analysis computes showdown equity for Texas Hold'em hands.
//
// ComputeEquity enumerates every way the unknown community cards can fall and
// is exact; its cost is C(remaining, 5-len(board)) showdowns, which ranges from
// 44 on the turn to about 1.7 million preflop heads-up. EstimateEquity is the
// separately named Monte Carlo alternative for callers that prefer speed.
package analysis

import (
	"context"
	"fmt"
	"io"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/lox/pokerodds/poker"
)

// MaxPlayers is the largest table the calculator accepts.
const MaxPlayers = 10

// BoardSize is the number of community cards in a complete board.
const BoardSize = 5

const (
	// parallelThreshold is the outcome count below which a single worker is
	// used; fan-out costs more than it saves on the turn or river.
	parallelThreshold = 2048

	// reportEvery controls how often workers check for cancellation and
	// publish progress.
	reportEvery = 4096
)

// ProgressFunc receives the number of outcomes evaluated so far and the total.
// It is called from worker goroutines and must be safe for concurrent use.
type ProgressFunc func(done, total uint64)

// Calculator computes equity. The zero value is ready to use.
type Calculator struct {
	// Workers caps the number of goroutines; zero means runtime.NumCPU()
	// capped at 8.
	Workers int

	// Progress, if set, is called periodically during evaluation.
	Progress ProgressFunc

	// Logger receives debug output; nil discards it.
	Logger *log.Logger
}

// ComputeEquity returns each player's exact probability of winning given
// their hole cards, the known board and the cards that may still be dealt.
func ComputeEquity(hands [][]poker.Card, board []poker.Card, remaining []poker.Card) (EquityResult, error) {
	var c Calculator
	return c.Compute(context.Background(), hands, board, remaining)
}

// Compute enumerates every completion of the board drawn from remaining,
// scores each player's best hand per completion and credits the winners,
// splitting ties evenly. The context is checked between outcomes.
func (c *Calculator) Compute(ctx context.Context, hands [][]poker.Card, board []poker.Card, remaining []poker.Card) (EquityResult, error) {
	if err := Validate(hands, board, remaining); err != nil {
		return EquityResult{}, err
	}

	missing := BoardSize - len(board)
	total := Outcomes(len(remaining), missing)
	if total == 0 {
		return EquityResult{}, fmt.Errorf("%w: need %d board cards, %d remain", ErrEnumerationExhausted, missing, len(remaining))
	}

	workers := c.workers(total)
	logger := c.logger()
	logger.Debug("enumerating equity",
		"players", len(hands),
		"board", poker.FormatCards(board),
		"remaining", len(remaining),
		"outcomes", total,
		"workers", workers)
	start := time.Now()

	var done atomic.Uint64
	tallies := make([]*tally, workers)
	g, ctx := errgroup.WithContext(ctx)
	for w := range workers {
		g.Go(func() error {
			t, err := c.enumerate(ctx, w, workers, hands, board, remaining, total, &done)
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
	if merged.outcomes != total {
		return EquityResult{}, fmt.Errorf("%w: evaluated %d of %d outcomes", ErrEnumerationExhausted, merged.outcomes, total)
	}

	logger.Debug("equity enumeration complete", "outcomes", total, "elapsed", time.Since(start))
	return merged.result(true), nil
}

// enumerate evaluates the contiguous block of board completions owned by
// this worker.
func (c *Calculator) enumerate(ctx context.Context, worker, workers int, hands [][]poker.Card, board, remaining []poker.Card, total uint64, done *atomic.Uint64) (*tally, error) {
	t := newTally(len(hands))
	known := len(board)
	fullBoard := make([]poker.Card, BoardSize)
	copy(fullBoard, board)
	scores := make([]poker.HandScore, len(hands))
	seven := make([]poker.Card, 2+BoardSize)

	lo, hi := span(total, worker, workers)
	var pending uint64
	var err error
	forEachCombination(len(remaining), BoardSize-known, lo, hi, func(idx []int) bool {
		for i, j := range idx {
			fullBoard[known+i] = remaining[j]
		}
		copy(seven[2:], fullBoard)
		for p, hole := range hands {
			copy(seven[:2], hole)
			scores[p] = poker.EvaluateUnchecked(seven)
		}
		t.record(scores)

		pending++
		if pending == reportEvery {
			c.report(done.Add(pending), total)
			pending = 0
			if err = ctx.Err(); err != nil {
				return false
			}
		}
		return true
	})
	if pending > 0 {
		c.report(done.Add(pending), total)
	}
	return t, err
}

func (c *Calculator) report(done, total uint64) {
	if c.Progress != nil {
		c.Progress(done, total)
	}
}

func (c *Calculator) workers(total uint64) int {
	workers := c.Workers
	if workers <= 0 {
		workers = min(runtime.NumCPU(), 8)
	}
	if total < parallelThreshold {
		workers = 1
	}
	if uint64(workers) > total {
		workers = int(total)
	}
	return max(workers, 1)
}

func (c *Calculator) logger() *log.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return log.NewWithOptions(io.Discard, log.Options{})
}

// Validate checks the preconditions shared by ComputeEquity and
// EstimateEquity: 1 to MaxPlayers hands of exactly two cards, at most five
// board cards, no card dealt twice and a remaining deck that is disjoint from
// every dealt card and free of duplicates.
func Validate(hands [][]poker.Card, board []poker.Card, remaining []poker.Card) error {
	if len(hands) < 1 || len(hands) > MaxPlayers {
		return fmt.Errorf("%w: need 1 to %d players, got %d", ErrInvalidBoardState, MaxPlayers, len(hands))
	}
	if len(board) > BoardSize {
		return fmt.Errorf("%w: board has %d cards, at most %d allowed", ErrInvalidBoardState, len(board), BoardSize)
	}

	var dealt poker.CardSet
	for i, hole := range hands {
		if len(hole) != 2 {
			return fmt.Errorf("player %d: %w: need 2 hole cards, got %d", i, poker.ErrInvalidHand, len(hole))
		}
		for _, card := range hole {
			if !card.Valid() {
				return fmt.Errorf("player %d: %w: card out of range", i, poker.ErrInvalidHand)
			}
			if dealt.Contains(card) {
				return fmt.Errorf("%w: %s dealt twice", ErrInvalidBoardState, card)
			}
			dealt.Add(card)
		}
	}
	for _, card := range board {
		if !card.Valid() {
			return fmt.Errorf("%w: board card out of range", ErrInvalidBoardState)
		}
		if dealt.Contains(card) {
			return fmt.Errorf("%w: %s dealt twice", ErrInvalidBoardState, card)
		}
		dealt.Add(card)
	}

	for _, card := range remaining {
		if !card.Valid() {
			return fmt.Errorf("%w: remaining card out of range", ErrInvalidBoardState)
		}
	}
	var unseen poker.CardSet
	if !unseen.AddAll(remaining) {
		return fmt.Errorf("%w: remaining deck contains a card twice", ErrInvalidBoardState)
	}
	if unseen.Overlaps(dealt) {
		return fmt.Errorf("%w: remaining deck contains dealt cards %s", ErrInvalidBoardState, poker.FormatCards((unseen & dealt).Cards()))
	}
	return nil
}

// RemainingDeck returns the 52-card deck minus every hole and board card,
// ordered by card index.
func RemainingDeck(hands [][]poker.Card, board []poker.Card) []poker.Card {
	unseen := poker.NewCardSet(poker.AllCards()...)
	for _, hole := range hands {
		for _, card := range hole {
			unseen.Remove(card)
		}
	}
	for _, card := range board {
		unseen.Remove(card)
	}
	return unseen.Cards()
}
