package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/lox/pokerodds/poker"
)

// EvalCmd scores a single set of cards.
type EvalCmd struct {
	Cards []string `arg:"" help:"Five to seven cards, e.g. 'AsKsQsJsTs' or 'As Ks Qs Js Ts'" required:"true"`
}

func (c *EvalCmd) Run(g *Globals, out io.Writer) error {
	e, err := g.setup(out)
	if err != nil {
		return err
	}

	cards, err := poker.ParseCards(strings.Join(c.Cards, " "))
	if err != nil {
		return err
	}

	score, best, err := poker.EvaluateBest(cards)
	if err != nil {
		return fmt.Errorf("evaluate %s: %w", poker.FormatCards(cards), err)
	}
	e.logger.Debug("evaluated", "cards", poker.FormatCards(cards), "score", score.String())
	e.renderer.Score(cards, score, best)
	return nil
}
