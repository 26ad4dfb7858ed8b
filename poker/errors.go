package poker

import "errors"

var (
	// ErrInvalidCard is returned when card notation cannot be parsed.
	ErrInvalidCard = errors.New("poker: invalid card")

	// ErrInvalidHand is returned when a hand has the wrong number of cards or
	// contains the same card twice.
	ErrInvalidHand = errors.New("poker: invalid hand")

	// ErrDeckExhausted is returned when more cards are requested than remain.
	ErrDeckExhausted = errors.New("poker: deck exhausted")
)
