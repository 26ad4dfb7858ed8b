package analysis

import (
	"math"

	"github.com/lox/pokerodds/poker"
)

// PlayerEquity holds one player's tallies across every evaluated outcome.
type PlayerEquity struct {
	Wins  uint64  // outcomes won outright
	Ties  uint64  // outcomes where the pot was split
	Share float64 // pot shares won: one per win, 1/n per n-way split

	// Categories counts the player's final hand category per outcome.
	Categories [poker.RoyalFlush + 1]uint64
}

// EquityResult is the per-player outcome of an equity calculation.
type EquityResult struct {
	Players  []PlayerEquity
	Outcomes uint64
	Exact    bool // true for full enumeration, false for Monte Carlo estimates
}

// Equity returns player i's probability of winning, counting split pots
// fractionally.
func (r EquityResult) Equity(i int) float64 {
	if r.Outcomes == 0 {
		return 0.0
	}
	return r.Players[i].Share / float64(r.Outcomes)
}

// Equities returns every player's equity indexed by player.
func (r EquityResult) Equities() []float64 {
	out := make([]float64, len(r.Players))
	for i := range r.Players {
		out[i] = r.Equity(i)
	}
	return out
}

// WinRate returns the fraction of outcomes player i won outright.
func (r EquityResult) WinRate(i int) float64 {
	if r.Outcomes == 0 {
		return 0.0
	}
	return float64(r.Players[i].Wins) / float64(r.Outcomes)
}

// TieRate returns the fraction of outcomes where player i split the pot.
func (r EquityResult) TieRate(i int) float64 {
	if r.Outcomes == 0 {
		return 0.0
	}
	return float64(r.Players[i].Ties) / float64(r.Outcomes)
}

// CategoryRate returns how often player i finished with category c.
func (r EquityResult) CategoryRate(i int, c poker.HandCategory) float64 {
	if r.Outcomes == 0 || !c.Valid() {
		return 0.0
	}
	return float64(r.Players[i].Categories[c]) / float64(r.Outcomes)
}

// ConfidenceInterval returns the 95% confidence interval for player i's
// equity. Exact results have no sampling error, so both bounds equal the equity.
func (r EquityResult) ConfidenceInterval(i int) (lower, upper float64) {
	equity := r.Equity(i)
	if r.Exact || r.Outcomes == 0 {
		return equity, equity
	}

	// Standard error for binomial proportion
	se := math.Sqrt((equity * (1.0 - equity)) / float64(r.Outcomes))
	margin := 1.96 * se

	lower = math.Max(0.0, equity-margin)
	upper = math.Min(1.0, equity+margin)
	return lower, upper
}
