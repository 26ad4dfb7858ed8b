package poker

// HandCategory enumerates poker hand categories from weakest to strongest.
// Higher values always beat lower ones.
type HandCategory uint8

const (
	HighCard HandCategory = iota + 1
	OnePair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
	RoyalFlush
)

// Categories lists every category from strongest to weakest, the order used
// when reporting category breakdowns.
var Categories = [...]HandCategory{
	RoyalFlush, StraightFlush, FourOfAKind, FullHouse, Flush,
	Straight, ThreeOfAKind, TwoPair, OnePair, HighCard,
}

// String returns the human-readable category name.
func (c HandCategory) String() string {
	switch c {
	case HighCard:
		return "High Card"
	case OnePair:
		return "One Pair"
	case TwoPair:
		return "Two Pair"
	case ThreeOfAKind:
		return "Three of a Kind"
	case Straight:
		return "Straight"
	case Flush:
		return "Flush"
	case FullHouse:
		return "Full House"
	case FourOfAKind:
		return "Four of a Kind"
	case StraightFlush:
		return "Straight Flush"
	case RoyalFlush:
		return "Royal Flush"
	default:
		return "Unknown"
	}
}

// Valid reports whether c is one of the ten defined categories.
func (c HandCategory) Valid() bool {
	return c >= HighCard && c <= RoyalFlush
}
