package poker

import (
	"fmt"
	"math/rand/v2"
)

// Deck is an ordered 52-card deck owned by a single hand or session. Cards
// only ever leave the deck; Reset rebuilds and reshuffles it.
type Deck struct {
	cards [52]Card
	next  int
	rng   *rand.Rand
}

// NewDeck creates a new shuffled deck. A nil rng leaves the deck in
// construction order, which is useful for deterministic fixtures.
func NewDeck(rng *rand.Rand) *Deck {
	d := &Deck{rng: rng}
	d.Reset()
	return d
}

// Reset rebuilds the full deck and reshuffles it.
func (d *Deck) Reset() {
	copy(d.cards[:], AllCards())
	d.next = 0
	d.shuffle()
}

// shuffle performs a Fisher-Yates shuffle of the undealt cards.
func (d *Deck) shuffle() {
	if d.rng == nil {
		return
	}
	for i := len(d.cards) - 1; i > d.next; i-- {
		j := d.next + d.rng.IntN(i-d.next+1)
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
}

// Deal removes n cards from the top of the deck.
func (d *Deck) Deal(n int) ([]Card, error) {
	if n < 0 || d.next+n > len(d.cards) {
		return nil, fmt.Errorf("%w: want %d, have %d", ErrDeckExhausted, n, d.CardsRemaining())
	}
	cards := make([]Card, n)
	copy(cards, d.cards[d.next:d.next+n])
	d.next += n
	return cards, nil
}

// DealOne removes a single card from the top of the deck.
func (d *Deck) DealOne() (Card, error) {
	if d.next >= len(d.cards) {
		return Card{}, ErrDeckExhausted
	}
	card := d.cards[d.next]
	d.next++
	return card, nil
}

// Burn discards the top card.
func (d *Deck) Burn() error {
	_, err := d.DealOne()
	return err
}

// CardsRemaining returns the number of cards left in the deck.
func (d *Deck) CardsRemaining() int {
	return len(d.cards) - d.next
}

// Remaining returns a copy of the undealt cards in deck order.
func (d *Deck) Remaining() []Card {
	out := make([]Card, d.CardsRemaining())
	copy(out, d.cards[d.next:])
	return out
}
