package poker

import (
	"testing"

	"github.com/lox/pokerodds/internal/randutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluateCategories(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		cards    string
		category HandCategory
		key      []Rank
	}{
		{"royal flush", "AsKsQsJsTs", RoyalFlush, []Rank{Ace, King, Queen, Jack, Ten}},
		{"straight flush", "KhQhJhTh9h", StraightFlush, []Rank{King, Queen, Jack, Ten, Nine}},
		{"steel wheel", "5d4d3d2dAd", StraightFlush, []Rank{5, 4, 3, 2, 1}},
		{"four of a kind", "9s9h9d9cKs", FourOfAKind, []Rank{Nine, King}},
		{"full house", "KsKhKd7c7h", FullHouse, []Rank{King, Seven}},
		{"flush", "As9s7s4s2s", Flush, []Rank{Ace, Nine, Seven, Four, Two}},
		{"straight", "9c8d7h6s5c", Straight, []Rank{Nine, Eight, Seven, Six, Five}},
		{"broadway", "AcKdQhJsTc", Straight, []Rank{Ace, King, Queen, Jack, Ten}},
		{"wheel", "Ac2d3h4s5c", Straight, []Rank{5, 4, 3, 2, 1}},
		{"three of a kind", "QsQhQd8c3h", ThreeOfAKind, []Rank{Queen, Eight, Three}},
		{"two pair", "KhKd7s7c5h", TwoPair, []Rank{King, Seven, Five}},
		{"one pair", "AhAd9c6s2h", OnePair, []Rank{Ace, Nine, Six, Two}},
		{"high card", "Ah Jd 9c 6s 2h", HighCard, []Rank{Ace, Jack, Nine, Six, Two}},
		{"ace-high no wrap", "QhKdAc2s3h", HighCard, []Rank{Ace, King, Queen, Three, Two}},

		// Seven-card hands select the best five.
		{"seven card flush over straight", "Ah 9h 7h 4h 2h 8c 6d", Flush, []Rank{Ace, Nine, Seven, Four, Two}},
		{"seven card straight from board", "2c 3d 9h Th Js Qc Kd", Straight, []Rank{King, Queen, Jack, Ten, Nine}},
		{"two trips make a full house", "KhKdKs7c7h7d2c", FullHouse, []Rank{King, Seven}},
		{"three pairs keep best kicker", "KhKd7s7c5h5d2c", TwoPair, []Rank{King, Seven, Five}},
		{"quads with best kicker", "9s9h9d9c2h3dAc", FourOfAKind, []Rank{Nine, Ace}},
		{"trips plus two pairs", "8s8h8d4c4h2d2c", FullHouse, []Rank{Eight, Four}},
		{"six-high beats wheel", "Ac2d3h4s5c6d9h", Straight, []Rank{Six, Five, Four, Three, Two}},
		{"royal in seven", "AsKsQsJsTs9s8s", RoyalFlush, []Rank{Ace, King, Queen, Jack, Ten}},
		{"straight flush over flush", "9h8h7h6h5h2hAh", StraightFlush, []Rank{Nine, Eight, Seven, Six, Five}},
		{"six cards", "AhAdAc9c9s2h", FullHouse, []Rank{Ace, Nine}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			score, err := Evaluate(MustParseCards(tt.cards))
			require.NoError(t, err)
			assert.Equal(t, tt.category, score.Category, "score %s", score)
			assert.Equal(t, tt.key, score.Key(), "score %s", score)
		})
	}
}

func TestEvaluateInvalidHands(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		cards []Card
	}{
		{"no cards", nil},
		{"four cards", MustParseCards("AsKsQsJs")},
		{"eight cards", MustParseCards("AsKsQsJsTs9s8s7s")},
		{"duplicate card", MustParseCards("AsAsQsJsTs")},
		{"duplicate in seven", MustParseCards("2c3c4c5c6c7c2c")},
		{"out of range card", []Card{{Rank: 1, Suit: Spades}, NewCard(Two, Hearts), NewCard(Three, Hearts), NewCard(Four, Hearts), NewCard(Five, Hearts)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			score, err := Evaluate(tt.cards)
			assert.ErrorIs(t, err, ErrInvalidHand)
			assert.Equal(t, HandScore{}, score)
		})
	}
}

func TestEvaluateOrderIndependence(t *testing.T) {
	t.Parallel()
	hands := []string{"AsKsQsJsTs", "KhKd7s7c5h", "Ac2d3h4s5c", "AhAd9c6s2h", "9s9h9d9cKs"}

	for _, h := range hands {
		cards := MustParseCards(h)
		want := MustEvaluate(cards)
		permute(cards, 0, func(p []Card) {
			got := MustEvaluate(p)
			if got != want {
				t.Errorf("permutation %s scored %s, want %s", FormatCards(p), got, want)
			}
		})
	}
}

func permute(cards []Card, k int, visit func([]Card)) {
	if k == len(cards) {
		visit(cards)
		return
	}
	for i := k; i < len(cards); i++ {
		cards[k], cards[i] = cards[i], cards[k]
		permute(cards, k+1, visit)
		cards[k], cards[i] = cards[i], cards[k]
	}
}

func TestSevenCardScoreDominatesSubsets(t *testing.T) {
	t.Parallel()
	rng := randutil.New(2024)

	for range 500 {
		deck := NewDeck(rng)
		cards, err := deck.Deal(7)
		require.NoError(t, err)

		best := MustEvaluate(cards)
		for a := 0; a < 7; a++ {
			for b := a + 1; b < 7; b++ {
				var five []Card
				for i, c := range cards {
					if i != a && i != b {
						five = append(five, c)
					}
				}
				sub := MustEvaluate(five)
				if sub.Beats(best) {
					t.Fatalf("subset %s (%s) beats seven-card score %s of %s",
						FormatCards(five), sub, best, FormatCards(cards))
				}
			}
		}
	}
}

func TestCategoryMonotonicity(t *testing.T) {
	t.Parallel()
	// Weakest example of each category, strongest of the one below it.
	ladder := []struct {
		weakest        string
		strongestBelow string
	}{
		{"TsJsQsKsAs", "9sTsJsQsKs"}, // royal vs king-high straight flush
		{"As2s3s4s5s", "AsAhAdAcKs"}, // steel wheel vs best quads
		{"2s2h2d2c3s", "AsAhAdKcKs"}, // worst quads vs best full house
		{"2s2h2d3c3s", "AsKsQsJs9s"}, // worst full house vs best flush
		{"2s3s4s5s7s", "AsKdQhJcTs"}, // worst flush vs broadway
		{"As2d3h4c5s", "AsAhAdKcQs"}, // wheel vs best trips
		{"2s2h2d3c4s", "AsAhKdKcQs"}, // worst trips vs best two pair
		{"2s2h3d3c4s", "AsAhKdQcJs"}, // worst two pair vs best one pair
		{"2s2h3d4c5s", "AsKhQdJc9s"}, // worst pair vs best high card
	}

	for _, step := range ladder {
		hi := MustEvaluate(MustParseCards(step.weakest))
		lo := MustEvaluate(MustParseCards(step.strongestBelow))
		assert.Greater(t, hi.Category, lo.Category)
		assert.True(t, hi.Beats(lo), "%s should beat %s", hi, lo)
		assert.Equal(t, -1, lo.Compare(hi))
	}
}

func TestWheelPlacement(t *testing.T) {
	t.Parallel()
	wheel := MustEvaluate(MustParseCards("Ac2d3h4s5c"))
	sixHigh := MustEvaluate(MustParseCards("2c3d4h5s6c"))
	trips := MustEvaluate(MustParseCards("AsAhAd3c2s"))
	pair := MustEvaluate(MustParseCards("AsAhKdQc2s"))
	high := MustEvaluate(MustParseCards("AsKhQdJc9s"))

	assert.Equal(t, Straight, wheel.Category)
	assert.True(t, sixHigh.Beats(wheel))
	assert.True(t, wheel.Beats(trips))
	assert.True(t, wheel.Beats(pair))
	assert.True(t, wheel.Beats(high))
}

func TestKickerComparisons(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name   string
		a, b   string
		expect int
	}{
		{"pair kicker", "AhAdKc9s5h", "AsAcQd9h5c", 1},
		{"pair last kicker", "AhAdKc9s5h", "AsAcKd9h4c", 1},
		{"identical ranks tie", "AhAdKc9s5h", "AsAcKd9h5c", 0},
		{"two pair bottom pair", "KhKd7s7c2h", "KsKc6s6cAh", 1},
		{"two pair kicker", "KhKd7s7c3h", "KsKc7h7d2c", 1},
		{"full house trips first", "3h3d3sAcAh", "2s2c2hAsAd", 1},
		{"flush second card", "AhQh9h5h3h", "AsJs9s5s3s", 1},
		{"quads kicker", "9s9h9d9cAs", "9s9h9d9cKs", 1},
		{"high card tie", "AhJd9c6s2h", "AsJc9h6d2c", 0},
		{"straight vs straight", "9c8d7h6s5c", "Tc9d8h7s6c", -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			a := MustEvaluate(MustParseCards(tt.a))
			b := MustEvaluate(MustParseCards(tt.b))
			assert.Equal(t, tt.expect, a.Compare(b), "%s vs %s", a, b)
			assert.Equal(t, -tt.expect, b.Compare(a))
			assert.Equal(t, tt.expect == 0, a.Equal(b))
		})
	}
}

func TestEvaluateBestReturnsFiveCards(t *testing.T) {
	t.Parallel()
	cards := MustParseCards("KsKhKd7c7h2s3d")
	score, best, err := EvaluateBest(cards)
	require.NoError(t, err)
	assert.Equal(t, FullHouse, score.Category)

	again, err := Evaluate(best[:])
	require.NoError(t, err)
	assert.Equal(t, score, again, "best five cards must score the same as the full hand")
	assert.NotContains(t, best[:], NewCard(Two, Spades))
}

func TestScoreDescribe(t *testing.T) {
	t.Parallel()
	tests := map[string]string{
		"AsKsQsJsTs": "Royal Flush",
		"KsKhKd7c7h": "Full House, Kings full of Sevens",
		"KhKd7s7c5h": "Two Pair, Kings and Sevens",
		"6h6d9c4s2h": "Pair of Sixes",
		"Ac2d3h4s5c": "Straight, Five high",
		"AhJd9c6s2h": "High Card, Ace",
		"9s9h9d9cKs": "Four of a Kind, Nines",
	}
	for cards, want := range tests {
		assert.Equal(t, want, MustEvaluate(MustParseCards(cards)).Describe(), cards)
	}
	assert.Equal(t, "Two Pair [K 7 5]", MustEvaluate(MustParseCards("KhKd7s7c5h")).String())
}
