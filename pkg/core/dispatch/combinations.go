package dispatch

// Combinations enumerates every subset of the roster with size in
// [minSize, maxSize]. Subsets are emitted smallest size first, and within a
// size in lexicographic order of roster indices, so downstream tie-breaking
// is reproducible. Each subset preserves roster order.
//
// The enumeration is iterative (index-vector combinadics) rather than
// recursive, so roster length only costs memory proportional to the subset
// size per step. Total output is still Sum C(n,k) for k in [minSize,
// maxSize] - fine for rosters of tens of workers, which is this system's
// scaling boundary, and deliberately not optimized beyond that.
func Combinations(roster []Worker, minSize, maxSize int) [][]Worker {
	n := len(roster)
	if minSize < 1 {
		minSize = 1
	}
	if maxSize > n {
		maxSize = n
	}

	var results [][]Worker
	for k := minSize; k <= maxSize; k++ {
		idx := make([]int, k)
		for i := range idx {
			idx[i] = i
		}

		for {
			team := make([]Worker, k)
			for i, j := range idx {
				team[i] = roster[j]
			}
			results = append(results, team)

			// Advance to the next index vector: bump the rightmost index
			// that has room, then reset everything after it.
			i := k - 1
			for i >= 0 && idx[i] == n-k+i {
				i--
			}
			if i < 0 {
				break
			}
			idx[i]++
			for j := i + 1; j < k; j++ {
				idx[j] = idx[j-1] + 1
			}
		}
	}

	return results
}
