package poker

import "fmt"

// Evaluate scores the best five-card hand that can be made from 5 to 7 cards.
// It fails with ErrInvalidHand for other card counts or repeated cards.
func Evaluate(cards []Card) (HandScore, error) {
	score, _, err := EvaluateBest(cards)
	return score, err
}

// EvaluateBest is Evaluate but also returns the five cards forming the hand.
func EvaluateBest(cards []Card) (HandScore, [5]Card, error) {
	if err := ValidateHand(cards); err != nil {
		return HandScore{}, [5]Card{}, err
	}
	score, best := bestFive(cards)
	return score, best, nil
}

// MustEvaluate evaluates cards and panics on error (for tests and fixtures).
func MustEvaluate(cards []Card) HandScore {
	score, err := Evaluate(cards)
	if err != nil {
		panic(err)
	}
	return score
}

// EvaluateUnchecked scores cards without validating them. Callers must pass
// 5 to 7 distinct valid cards; behavior is undefined otherwise.
func EvaluateUnchecked(cards []Card) HandScore {
	score, _ := bestFive(cards)
	return score
}

// ValidateHand checks that cards can be evaluated.
func ValidateHand(cards []Card) error {
	if len(cards) < 5 || len(cards) > 7 {
		return fmt.Errorf("%w: need 5 to 7 cards, got %d", ErrInvalidHand, len(cards))
	}
	var seen CardSet
	for _, c := range cards {
		if !c.Valid() {
			return fmt.Errorf("%w: card out of range (rank %d, suit %d)", ErrInvalidHand, c.Rank, c.Suit)
		}
		if seen.Contains(c) {
			return fmt.Errorf("%w: duplicate card %s", ErrInvalidHand, c)
		}
		seen.Add(c)
	}
	return nil
}

// bestFive scores every five-card subset and keeps the strongest.
func bestFive(cards []Card) (HandScore, [5]Card) {
	n := len(cards)
	var best HandScore
	var bestCards [5]Card
	for a := 0; a < n-4; a++ {
		for b := a + 1; b < n-3; b++ {
			for c := b + 1; c < n-2; c++ {
				for d := c + 1; d < n-1; d++ {
					for e := d + 1; e < n; e++ {
						sub := [5]Card{cards[a], cards[b], cards[c], cards[d], cards[e]}
						if s := scoreFive(&sub); s.Compare(best) > 0 {
							best, bestCards = s, sub
						}
					}
				}
			}
		}
	}
	return best, bestCards
}

// scoreFive classifies exactly five cards. Counts are built fresh for every
// call and never shared between category checks.
func scoreFive(hand *[5]Card) HandScore {
	var counts [Ace + 1]uint8
	var ranks [5]Rank
	flush := true
	for i, c := range hand {
		counts[c.Rank]++
		ranks[i] = c.Rank
		if c.Suit != hand[0].Suit {
			flush = false
		}
	}
	sortRanksDesc(&ranks)

	high := straightHigh(&ranks)
	if flush && high != 0 {
		if high == Ace {
			return HandScore{Category: RoyalFlush, Ranks: straightKey(high)}
		}
		return HandScore{Category: StraightFlush, Ranks: straightKey(high)}
	}

	key, shape := groupRanks(&counts)
	switch {
	case shape[0] == 4:
		return HandScore{Category: FourOfAKind, Ranks: key}
	case shape[0] == 3 && shape[1] == 2:
		return HandScore{Category: FullHouse, Ranks: key}
	case flush:
		return HandScore{Category: Flush, Ranks: ranks}
	case high != 0:
		return HandScore{Category: Straight, Ranks: straightKey(high)}
	case shape[0] == 3:
		return HandScore{Category: ThreeOfAKind, Ranks: key}
	case shape[0] == 2 && shape[1] == 2:
		return HandScore{Category: TwoPair, Ranks: key}
	case shape[0] == 2:
		return HandScore{Category: OnePair, Ranks: key}
	default:
		return HandScore{Category: HighCard, Ranks: ranks}
	}
}

// groupRanks orders the distinct ranks by (count desc, rank desc) and returns
// them together with their counts.
func groupRanks(counts *[Ace + 1]uint8) (key [5]Rank, shape [5]uint8) {
	i := 0
	for n := uint8(4); n >= 1; n-- {
		for r := Ace; r >= Two; r-- {
			if counts[r] == n {
				key[i] = r
				shape[i] = n
				i++
			}
		}
	}
	return key, shape
}

// straightHigh returns the top rank of a straight in five descending ranks,
// 5 for the wheel (A-2-3-4-5), or 0 when there is no straight.
func straightHigh(ranks *[5]Rank) Rank {
	for i := 1; i < len(ranks); i++ {
		if ranks[i] == ranks[i-1] {
			return 0
		}
	}
	if ranks[0]-ranks[4] == 4 {
		return ranks[0]
	}
	if *ranks == [5]Rank{Ace, Five, Four, Three, Two} {
		return Five
	}
	return 0
}

// straightKey builds the tie-break key of a straight; the wheel keys as
// [5 4 3 2 1] so it sorts below a six-high straight.
func straightKey(high Rank) [5]Rank {
	return [5]Rank{high, high - 1, high - 2, high - 3, high - 4}
}

func sortRanksDesc(ranks *[5]Rank) {
	for i := 1; i < len(ranks); i++ {
		v := ranks[i]
		j := i - 1
		for j >= 0 && ranks[j] < v {
			ranks[j+1] = ranks[j]
			j--
		}
		ranks[j+1] = v
	}
}
