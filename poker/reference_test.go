package poker_test

import (
	"testing"

	ref "github.com/paulhankin/poker"
	"github.com/stretchr/testify/require"

	"github.com/lox/pokerodds/internal/randutil"
	"github.com/lox/pokerodds/poker"
)

// toReference converts a card to github.com/paulhankin/poker, which numbers
// ranks 1 (ace) to 13 (king).
func toReference(t *testing.T, c poker.Card) ref.Card {
	t.Helper()
	rank := ref.Rank(c.Rank)
	if c.Rank == poker.Ace {
		rank = 1
	}
	card, err := ref.MakeCard(ref.Suit(c.Suit), rank)
	require.NoError(t, err)
	return card
}

func referenceScore(t *testing.T, cards []poker.Card) int16 {
	t.Helper()
	var hand [7]ref.Card
	for i, c := range cards {
		hand[i] = toReference(t, c)
	}
	return ref.Eval7(&hand)
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

// TestEvaluateAgreesWithReference checks that pairwise ordering of random
// seven-card hands matches an independent evaluator.
func TestEvaluateAgreesWithReference(t *testing.T) {
	t.Parallel()
	rng := randutil.New(77)

	for i := range 3000 {
		deck := poker.NewDeck(rng)
		board, err := deck.Deal(5)
		require.NoError(t, err)
		holeA, err := deck.Deal(2)
		require.NoError(t, err)
		holeB, err := deck.Deal(2)
		require.NoError(t, err)

		a := append(append([]poker.Card{}, holeA...), board...)
		b := append(append([]poker.Card{}, holeB...), board...)

		ours := poker.MustEvaluate(a).Compare(poker.MustEvaluate(b))
		theirs := sign(int(referenceScore(t, a)) - int(referenceScore(t, b)))
		require.Equal(t, theirs, ours, "hand %d: %s vs %s on %s", i,
			poker.FormatCards(holeA), poker.FormatCards(holeB), poker.FormatCards(board))
	}
}
