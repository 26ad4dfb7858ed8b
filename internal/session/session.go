// Package session deals Texas Hold'em hands from a caller-owned deck and
// reports each player's equity as the board runs out.
package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"slices"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/pokerodds/analysis"
	"github.com/lox/pokerodds/poker"
)

// ErrOutOfOrder is returned when cards are dealt or read in the wrong order.
var ErrOutOfOrder = errors.New("session: out of order")

// StreetReport is the equity snapshot taken on one street.
type StreetReport struct {
	Street  Street
	Board   []poker.Card
	Result  analysis.EquityResult
	Elapsed time.Duration
}

// Summary is the record of a complete hand.
type Summary struct {
	Hands   [][]poker.Card
	Board   []poker.Card
	Reports []StreetReport
	Scores  []poker.HandScore
	Winners []int
}

// Session owns one deck for the duration of a single hand.
type Session struct {
	deck    *poker.Deck
	players int
	hands   [][]poker.Card
	board   []poker.Card
	street  Street
	dealt   bool
	burn    bool
	logger  *log.Logger
	clock   quartz.Clock
}

// Option configures a Session.
type Option func(*Session)

// WithBurn discards a card before each community street.
func WithBurn(burn bool) Option {
	return func(s *Session) { s.burn = burn }
}

// WithLogger sets the logger.
func WithLogger(logger *log.Logger) Option {
	return func(s *Session) { s.logger = logger }
}

// WithClock sets the clock used to time equity calculations.
func WithClock(clock quartz.Clock) Option {
	return func(s *Session) { s.clock = clock }
}

// New creates a session for players seats with a freshly shuffled deck.
// A nil rng deals from an unshuffled deck.
func New(players int, rng *rand.Rand, opts ...Option) (*Session, error) {
	if players < 1 || players > analysis.MaxPlayers {
		return nil, fmt.Errorf("%w: need 1 to %d players, got %d", analysis.ErrInvalidBoardState, analysis.MaxPlayers, players)
	}
	s := &Session{
		deck:    poker.NewDeck(rng),
		players: players,
		logger:  log.NewWithOptions(io.Discard, log.Options{}),
		clock:   quartz.NewReal(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// DealHoleCards deals two cards to each player, one at a time round the table.
func (s *Session) DealHoleCards() error {
	if s.dealt {
		return fmt.Errorf("%w: hole cards already dealt", ErrOutOfOrder)
	}
	s.hands = make([][]poker.Card, s.players)
	for range 2 {
		for p := range s.hands {
			card, err := s.deck.DealOne()
			if err != nil {
				return err
			}
			s.hands[p] = append(s.hands[p], card)
		}
	}
	s.dealt = true
	s.logger.Debug("dealt hole cards", "players", s.players)
	return nil
}

// DealStreet deals the next community street and returns it.
func (s *Session) DealStreet() (Street, error) {
	if !s.dealt {
		return s.street, fmt.Errorf("%w: hole cards not dealt", ErrOutOfOrder)
	}
	if s.street == River {
		return s.street, fmt.Errorf("%w: board complete", ErrOutOfOrder)
	}
	next := s.street + 1
	if s.burn {
		if err := s.deck.Burn(); err != nil {
			return s.street, err
		}
	}
	cards, err := s.deck.Deal(next.BoardCards() - len(s.board))
	if err != nil {
		return s.street, err
	}
	s.board = append(s.board, cards...)
	s.street = next
	s.logger.Debug("dealt street", "street", next, "cards", poker.FormatCards(cards))
	return next, nil
}

// Street returns the current street.
func (s *Session) Street() Street {
	return s.street
}

// Hands returns a copy of every player's hole cards.
func (s *Session) Hands() [][]poker.Card {
	out := make([][]poker.Card, len(s.hands))
	for i, h := range s.hands {
		out[i] = slices.Clone(h)
	}
	return out
}

// Board returns a copy of the community cards.
func (s *Session) Board() []poker.Card {
	return slices.Clone(s.board)
}

// Unseen returns every card not visible to the table: the deck plus burns.
func (s *Session) Unseen() []poker.Card {
	return analysis.RemainingDeck(s.hands, s.board)
}

// Equity computes exact equity for the current street.
func (s *Session) Equity(ctx context.Context, calc *analysis.Calculator) (StreetReport, error) {
	if !s.dealt {
		return StreetReport{}, fmt.Errorf("%w: hole cards not dealt", ErrOutOfOrder)
	}
	start := s.clock.Now()
	result, err := calc.Compute(ctx, s.hands, s.board, s.Unseen())
	if err != nil {
		return StreetReport{}, fmt.Errorf("%s equity: %w", s.street, err)
	}
	report := StreetReport{
		Street:  s.street,
		Board:   s.Board(),
		Result:  result,
		Elapsed: s.clock.Since(start),
	}
	s.logger.Info("equity",
		"street", s.street,
		"board", poker.FormatCards(s.board),
		"outcomes", result.Outcomes,
		"elapsed", report.Elapsed)
	return report, nil
}

// Showdown scores every hand on the complete board and returns the winners.
func (s *Session) Showdown() ([]poker.HandScore, []int, error) {
	if s.street != River {
		return nil, nil, fmt.Errorf("%w: showdown before the river", ErrOutOfOrder)
	}
	scores := make([]poker.HandScore, len(s.hands))
	for i, hole := range s.hands {
		score, err := poker.Evaluate(append(slices.Clone(hole), s.board...))
		if err != nil {
			return nil, nil, fmt.Errorf("player %d: %w", i, err)
		}
		scores[i] = score
	}

	best := scores[0]
	for _, score := range scores[1:] {
		if score.Beats(best) {
			best = score
		}
	}
	var winners []int
	for i, score := range scores {
		if score.Equal(best) {
			winners = append(winners, i)
		}
	}
	return scores, winners, nil
}

// Play deals a complete hand, reporting equity on each of the given streets,
// and finishes with a showdown.
func (s *Session) Play(ctx context.Context, calc *analysis.Calculator, streets []Street) (*Summary, error) {
	if err := s.DealHoleCards(); err != nil {
		return nil, err
	}

	summary := &Summary{}
	for {
		if slices.Contains(streets, s.Street()) {
			report, err := s.Equity(ctx, calc)
			if err != nil {
				return nil, err
			}
			summary.Reports = append(summary.Reports, report)
		}
		if s.Street() == River {
			break
		}
		if _, err := s.DealStreet(); err != nil {
			return nil, err
		}
	}

	scores, winners, err := s.Showdown()
	if err != nil {
		return nil, err
	}
	summary.Hands = s.Hands()
	summary.Board = s.Board()
	summary.Scores = scores
	summary.Winners = winners
	s.logger.Info("showdown", "winners", winners, "hand", scores[winners[0]].Describe())
	return summary, nil
}
