package analysis

import "gonum.org/v1/gonum/stat/combin"

// Outcomes returns C(m, k), the number of ways to deal k cards from m. It is
// zero when k is negative or larger than m.
func Outcomes(m, k int) uint64 {
	if k < 0 || m < 0 || k > m {
		return 0
	}
	return uint64(combin.Binomial(m, k))
}

// span returns the half-open block [lo, hi) of outcome indices owned by
// worker when total outcomes are split into contiguous blocks.
func span(total uint64, worker, workers int) (lo, hi uint64) {
	w, n := uint64(worker), uint64(workers)
	per, extra := total/n, total%n
	lo = w*per + min(w, extra)
	hi = lo + per
	if w < extra {
		hi++
	}
	return lo, hi
}

// forEachCombination visits the k-subsets of {0..n-1} whose combination
// index lies in [lo, hi). The index slice is reused between calls.
// Returning false stops the walk.
func forEachCombination(n, k int, lo, hi uint64, visit func(idx []int) bool) {
	idx := make([]int, k)
	for i := lo; i < hi; i++ {
		combin.IndexToCombination(idx, int(i), n, k)
		if !visit(idx) {
			return
		}
	}
}
