package main

import (
	"context"
	"io"
	"os"
	"os/signal"

	"github.com/lox/pokerodds/internal/randutil"
	"github.com/lox/pokerodds/internal/session"
)

// DealCmd deals a random hand and reports equity as the board runs out.
type DealCmd struct {
	Players int      `short:"n" help:"Number of players (0 uses the config value)"`
	Seed    *int64   `help:"Deterministic RNG seed"`
	Burn    bool     `help:"Burn a card before each street"`
	Streets []string `help:"Streets to report equity on (preflop, flop, turn, river)"`
}

func (c *DealCmd) Run(g *Globals, out io.Writer) error {
	e, err := g.setup(out)
	if err != nil {
		return err
	}

	settings := *e.cfg.Session
	if c.Players > 0 {
		settings.Players = c.Players
	}
	if c.Seed != nil {
		settings.Seed = *c.Seed
	}
	if c.Burn {
		settings.Burn = true
	}
	if len(c.Streets) > 0 {
		settings.Streets = c.Streets
	}

	streets, err := session.ParseStreets(settings.Streets)
	if err != nil {
		return err
	}

	seed := randutil.Seed(settings.Seed)
	e.logger.Info("dealing", "players", settings.Players, "seed", seed, "burn", settings.Burn)

	s, err := session.New(settings.Players, randutil.New(seed),
		session.WithBurn(settings.Burn),
		session.WithLogger(e.logger),
	)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	summary, err := s.Play(ctx, e.calc, streets)
	if err != nil {
		return err
	}
	e.renderer.Session(summary)
	return nil
}
