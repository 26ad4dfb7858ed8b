package analysis

import "github.com/lox/pokerodds/poker"

// tally is a worker-private accumulator. Split pots are counted by the number
// of winners rather than summed as fractions so that merging tallies is exact
// and independent of how outcomes were divided between workers.
type tally struct {
	wins       []uint64
	splits     [][MaxPlayers + 1]uint64
	categories [][poker.RoyalFlush + 1]uint64
	outcomes   uint64
}

func newTally(players int) *tally {
	return &tally{
		wins:       make([]uint64, players),
		splits:     make([][MaxPlayers + 1]uint64, players),
		categories: make([][poker.RoyalFlush + 1]uint64, players),
	}
}

// record credits one outcome given every player's score.
func (t *tally) record(scores []poker.HandScore) {
	best := scores[0]
	for _, s := range scores[1:] {
		if s.Beats(best) {
			best = s
		}
	}
	winners := 0
	for _, s := range scores {
		if s.Equal(best) {
			winners++
		}
	}

	for p, s := range scores {
		t.categories[p][s.Category]++
		if !s.Equal(best) {
			continue
		}
		if winners == 1 {
			t.wins[p]++
		} else {
			t.splits[p][winners]++
		}
	}
	t.outcomes++
}

func (t *tally) merge(other *tally) {
	for p := range t.wins {
		t.wins[p] += other.wins[p]
		for n := range t.splits[p] {
			t.splits[p][n] += other.splits[p][n]
		}
		for c := range t.categories[p] {
			t.categories[p][c] += other.categories[p][c]
		}
	}
	t.outcomes += other.outcomes
}

func (t *tally) result(exact bool) EquityResult {
	res := EquityResult{
		Players:  make([]PlayerEquity, len(t.wins)),
		Outcomes: t.outcomes,
		Exact:    exact,
	}
	for p := range res.Players {
		pe := &res.Players[p]
		pe.Wins = t.wins[p]
		pe.Share = float64(t.wins[p])
		for n, count := range t.splits[p] {
			if count == 0 {
				continue
			}
			pe.Ties += count
			pe.Share += float64(count) / float64(n)
		}
		pe.Categories = t.categories[p]
	}
	return res
}
