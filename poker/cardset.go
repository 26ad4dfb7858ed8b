package poker

import "math/bits"

// CardSet represents a set of cards using a bitset for fast operations.
// Each card maps to the bit at Card.Index.
type CardSet uint64

// NewCardSet creates a CardSet from a slice of cards.
func NewCardSet(cards ...Card) CardSet {
	var cs CardSet
	for _, card := range cards {
		cs.Add(card)
	}
	return cs
}

// Add adds a card to the set.
func (cs *CardSet) Add(card Card) {
	*cs |= 1 << card.Index()
}

// Remove removes a card from the set.
func (cs *CardSet) Remove(card Card) {
	*cs &^= 1 << card.Index()
}

// Contains checks if a card is in the set.
func (cs CardSet) Contains(card Card) bool {
	return cs&(1<<card.Index()) != 0
}

// Len returns the number of cards in the set.
func (cs CardSet) Len() int {
	return bits.OnesCount64(uint64(cs))
}

// Overlaps reports whether the two sets share a card.
func (cs CardSet) Overlaps(other CardSet) bool {
	return cs&other != 0
}

// Cards returns the cards in the set ordered by index.
func (cs CardSet) Cards() []Card {
	cards := make([]Card, 0, cs.Len())
	for rest := uint64(cs); rest != 0; rest &= rest - 1 {
		idx := bits.TrailingZeros64(rest)
		cards = append(cards, NewCard(Rank(idx/4)+Two, Suit(idx%4)))
	}
	return cards
}

// AddAll adds every card and reports whether all of them were new.
func (cs *CardSet) AddAll(cards []Card) bool {
	unique := true
	for _, card := range cards {
		if cs.Contains(card) {
			unique = false
		}
		cs.Add(card)
	}
	return unique
}
