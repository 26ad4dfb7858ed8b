package poker

import (
	"fmt"
	"strings"
)

// HandScore is the comparable strength of a poker hand: its category plus a
// tie-break key of ranks, most significant first. Unused key slots are zero.
//
// Two scores are equal (==) exactly when the hands tie.
type HandScore struct {
	Category HandCategory
	Ranks    [5]Rank
}

// Compare returns 1 if s beats other, -1 if other wins and 0 for a tie.
func (s HandScore) Compare(other HandScore) int {
	if s.Category != other.Category {
		if s.Category > other.Category {
			return 1
		}
		return -1
	}
	for i := range s.Ranks {
		if s.Ranks[i] > other.Ranks[i] {
			return 1
		}
		if s.Ranks[i] < other.Ranks[i] {
			return -1
		}
	}
	return 0
}

// Beats reports whether s is strictly stronger than other.
func (s HandScore) Beats(other HandScore) bool {
	return s.Compare(other) > 0
}

// Equal reports whether s and other tie.
func (s HandScore) Equal(other HandScore) bool {
	return s == other
}

// Key returns the non-zero part of the tie-break key.
func (s HandScore) Key() []Rank {
	n := 0
	for n < len(s.Ranks) && s.Ranks[n] != 0 {
		n++
	}
	return s.Ranks[:n:n]
}

// String returns the category followed by the tie-break key, e.g.
// "Two Pair [K 7 5]".
func (s HandScore) String() string {
	key := s.Key()
	parts := make([]string, len(key))
	for i, r := range key {
		parts[i] = r.String()
	}
	return fmt.Sprintf("%s [%s]", s.Category, strings.Join(parts, " "))
}

// Describe returns a sentence describing the hand, e.g.
// "Full House, Kings full of Sevens".
func (s HandScore) Describe() string {
	r := s.Ranks
	switch s.Category {
	case RoyalFlush:
		return "Royal Flush"
	case StraightFlush:
		return fmt.Sprintf("Straight Flush, %s high", r[0].Name())
	case FourOfAKind:
		return fmt.Sprintf("Four of a Kind, %s", r[0].Plural())
	case FullHouse:
		return fmt.Sprintf("Full House, %s full of %s", r[0].Plural(), r[1].Plural())
	case Flush:
		return fmt.Sprintf("Flush, %s high", r[0].Name())
	case Straight:
		return fmt.Sprintf("Straight, %s high", r[0].Name())
	case ThreeOfAKind:
		return fmt.Sprintf("Three of a Kind, %s", r[0].Plural())
	case TwoPair:
		return fmt.Sprintf("Two Pair, %s and %s", r[0].Plural(), r[1].Plural())
	case OnePair:
		return fmt.Sprintf("Pair of %s", r[0].Plural())
	case HighCard:
		return fmt.Sprintf("High Card, %s", r[0].Name())
	default:
		return "Unknown"
	}
}
