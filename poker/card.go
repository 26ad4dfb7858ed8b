package poker

import (
	"fmt"
	"strings"
)

// Suit is one of the four card suits.
type Suit uint8

const (
	Spades Suit = iota
	Hearts
	Diamonds
	Clubs
)

// Suits lists every suit in deck construction order.
var Suits = [4]Suit{Spades, Hearts, Diamonds, Clubs}

// String returns the suit symbol (e.g. "♠").
func (s Suit) String() string {
	switch s {
	case Spades:
		return "♠"
	case Hearts:
		return "♥"
	case Diamonds:
		return "♦"
	case Clubs:
		return "♣"
	default:
		return "?"
	}
}

// Char returns the single-letter suit used in card notation.
func (s Suit) Char() byte {
	switch s {
	case Spades:
		return 's'
	case Hearts:
		return 'h'
	case Diamonds:
		return 'd'
	case Clubs:
		return 'c'
	default:
		return '?'
	}
}

// IsRed reports whether the suit is hearts or diamonds.
func (s Suit) IsRed() bool {
	return s == Hearts || s == Diamonds
}

// Rank is a card rank from Two (2) to Ace (14).
type Rank uint8

const (
	Two Rank = iota + 2
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

// String returns the rank character used in card notation.
func (r Rank) String() string {
	switch {
	case r >= Two && r <= Nine:
		return string(rune('0' + r))
	case r == Ten:
		return "T"
	case r == Jack:
		return "J"
	case r == Queen:
		return "Q"
	case r == King:
		return "K"
	case r == Ace:
		return "A"
	case r == 1:
		// Ace playing low in a wheel.
		return "A"
	default:
		return "?"
	}
}

// Name returns the English name of the rank.
func (r Rank) Name() string {
	names := [...]string{"", "Ace", "Two", "Three", "Four", "Five", "Six", "Seven",
		"Eight", "Nine", "Ten", "Jack", "Queen", "King", "Ace"}
	if int(r) >= len(names) || r == 0 {
		return "Unknown"
	}
	return names[r]
}

// Plural returns the plural rank name ("Sixes", "Kings").
func (r Rank) Plural() string {
	if r == Six {
		return "Sixes"
	}
	return r.Name() + "s"
}

// Card is an immutable playing card. Two cards are the same card when rank and
// suit are equal, so Card values can be compared with == and used as map keys.
type Card struct {
	Rank Rank
	Suit Suit
}

// NewCard creates a card.
func NewCard(rank Rank, suit Suit) Card {
	return Card{Rank: rank, Suit: suit}
}

// Valid reports whether the card is one of the 52 standard cards.
func (c Card) Valid() bool {
	return c.Rank >= Two && c.Rank <= Ace && c.Suit <= Clubs
}

// Index maps the card to 0-51, grouped by rank then suit.
func (c Card) Index() int {
	return int(c.Rank-Two)*4 + int(c.Suit)
}

// String returns the card in two-character notation, e.g. "As" or "Td".
func (c Card) String() string {
	return c.Rank.String() + string(c.Suit.Char())
}

// Pretty returns the card with its suit symbol, e.g. "A♠".
func (c Card) Pretty() string {
	return c.Rank.String() + c.Suit.String()
}

// AllCards returns the 52 standard cards in deck construction order.
func AllCards() []Card {
	cards := make([]Card, 0, 52)
	for _, suit := range Suits {
		for rank := Two; rank <= Ace; rank++ {
			cards = append(cards, NewCard(rank, suit))
		}
	}
	return cards
}

// ParseCard parses a card in [Rank][Suit] notation, e.g. "As", "Td", "2c".
// The ten may also be written as "10".
func ParseCard(s string) (Card, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "10") {
		s = "T" + s[2:]
	}
	if len(s) != 2 {
		return Card{}, fmt.Errorf("%w: %q", ErrInvalidCard, s)
	}
	rank, err := parseRank(s[0])
	if err != nil {
		return Card{}, fmt.Errorf("%w: %q: %v", ErrInvalidCard, s, err)
	}
	suit, err := parseSuit(s[1])
	if err != nil {
		return Card{}, fmt.Errorf("%w: %q: %v", ErrInvalidCard, s, err)
	}
	return NewCard(rank, suit), nil
}

// ParseCards parses a run of cards such as "AsKsQsJsTs". Spaces and commas
// between cards are ignored.
func ParseCards(s string) ([]Card, error) {
	s = strings.NewReplacer(" ", "", ",", "", "10", "T").Replace(s)
	if len(s)%2 != 0 {
		return nil, fmt.Errorf("%w: invalid card string length %d (must be even)", ErrInvalidCard, len(s))
	}

	cards := make([]Card, 0, len(s)/2)
	for i := 0; i < len(s); i += 2 {
		card, err := ParseCard(s[i : i+2])
		if err != nil {
			return nil, fmt.Errorf("position %d: %w", i, err)
		}
		cards = append(cards, card)
	}
	return cards, nil
}

// MustParseCards parses cards and panics on error (for tests and fixtures).
func MustParseCards(s string) []Card {
	cards, err := ParseCards(s)
	if err != nil {
		panic(fmt.Sprintf("failed to parse cards %q: %v", s, err))
	}
	return cards
}

// FormatCards joins cards in notation form separated by spaces.
func FormatCards(cards []Card) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}

func parseRank(c byte) (Rank, error) {
	switch c {
	case 'A', 'a':
		return Ace, nil
	case 'K', 'k':
		return King, nil
	case 'Q', 'q':
		return Queen, nil
	case 'J', 'j':
		return Jack, nil
	case 'T', 't':
		return Ten, nil
	}
	if c >= '2' && c <= '9' {
		return Rank(c - '0'), nil
	}
	return 0, fmt.Errorf("unknown rank '%c'", c)
}

func parseSuit(c byte) (Suit, error) {
	switch c {
	case 's', 'S':
		return Spades, nil
	case 'h', 'H':
		return Hearts, nil
	case 'd', 'D':
		return Diamonds, nil
	case 'c', 'C':
		return Clubs, nil
	default:
		return 0, fmt.Errorf("unknown suit '%c'", c)
	}
}
