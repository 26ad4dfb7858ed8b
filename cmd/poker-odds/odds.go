package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/lox/pokerodds/analysis"
	"github.com/lox/pokerodds/internal/display"
	"github.com/lox/pokerodds/internal/randutil"
	"github.com/lox/pokerodds/poker"
)

// OddsCmd computes equity for the given hole cards.
type OddsCmd struct {
	Hands         []string `arg:"" help:"Player hands in format 'AcKd QhJs' (space separated, quoted)" required:"true"`
	Board         string   `short:"b" help:"Community board cards (e.g., 'Td7s8h')"`
	Possibilities bool     `short:"p" help:"Show detailed hand type probabilities"`
	MonteCarlo    int      `name:"monte-carlo" short:"m" help:"Sample N random boards instead of enumerating every board"`
	Sample        bool     `short:"s" help:"Sample boards using the configured sample count"`
	Seed          *int64   `help:"Random seed for sampled results"`
	NoProgress    bool     `name:"no-progress" help:"Do not draw a progress bar"`
}

func (c *OddsCmd) Run(g *Globals, out io.Writer) error {
	e, err := g.setup(out)
	if err != nil {
		return err
	}

	hands, err := parseHands(c.Hands)
	if err != nil {
		return err
	}

	var board []poker.Card
	if c.Board != "" {
		board, err = poker.ParseCards(c.Board)
		if err != nil {
			return fmt.Errorf("board: %w", err)
		}
	}

	remaining := analysis.RemainingDeck(hands, board)
	if err := analysis.Validate(hands, board, remaining); err != nil {
		return err
	}

	samples := c.MonteCarlo
	if samples == 0 && c.Sample {
		samples = e.cfg.Equity.Samples
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	compute := func(calc *analysis.Calculator) (analysis.EquityResult, error) {
		if samples > 0 {
			seed := randutil.Seed(derefSeed(c.Seed))
			e.logger.Debug("sampling boards", "samples", samples, "seed", seed)
			return calc.Estimate(ctx, hands, board, remaining, samples, randutil.New(seed))
		}
		return calc.Compute(ctx, hands, board, remaining)
	}

	start := time.Now()
	var result analysis.EquityResult
	if e.cfg.Equity.ShowProgress() && !c.NoProgress && samples == 0 && analysis.Outcomes(len(remaining), analysis.BoardSize-len(board)) > 100_000 {
		err = display.WithProgress(os.Stderr, "evaluating", func(report analysis.ProgressFunc) error {
			calc := *e.calc
			calc.Progress = report
			var err error
			result, err = compute(&calc)
			return err
		})
	} else {
		result, err = compute(e.calc)
	}
	if err != nil {
		return err
	}

	e.renderer.Equity(hands, board, result, time.Since(start))
	if c.Possibilities {
		fmt.Fprintln(out)
		e.renderer.Categories(hands, result)
	}
	return nil
}

func derefSeed(seed *int64) int64 {
	if seed == nil {
		return 0
	}
	return *seed
}

// parseHands parses each argument as exactly two hole cards.
func parseHands(args []string) ([][]poker.Card, error) {
	hands := make([][]poker.Card, 0, len(args))
	for i, arg := range args {
		hand, err := poker.ParseCards(strings.TrimSpace(arg))
		if err != nil {
			return nil, fmt.Errorf("hand %d: %w", i+1, err)
		}
		if len(hand) != 2 {
			return nil, fmt.Errorf("hand %d: must contain exactly 2 cards, got %d: %w", i+1, len(hand), poker.ErrInvalidHand)
		}
		hands = append(hands, hand)
	}
	return hands, nil
}
