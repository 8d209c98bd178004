// Package lhs - maximin exchange search.
//
// maximinImprove refines a stratified sample by swapping two rows' values
// within a single column. Such a swap permutes values inside one column only,
// so the Latin-hypercube stratification is preserved by construction; the
// move is accepted iff it strictly increases the minimum pairwise squared
// Euclidean distance over all point pairs in the full ndim-dimensional space.
//
// Design:
//   - Deterministic: the proposal stream (column, row, row) comes from the
//     same seeded source as stratification; every proposal consumes exactly
//     three draws, accepted or not.
//   - First-improvement acceptance with a strict tolerance (Δ > Eps), like
//     the 2-opt engine this search is modeled on.
//   - Hot-path discipline: the sample and the pairwise squared-distance
//     table live in flat buffers; a proposal that cannot possibly raise the
//     minimum (it touches neither row of the current minimal pair) is
//     rejected in O(1) before any distance work.
//
// Complexity:
//   - Setup: O(n²·d) for the distance table.
//   - Cheap rejection: O(1).
//   - Full evaluation (proposal touches the minimal pair): O(n·d) row
//     updates + O(n²) rescan; executed only on candidate-improving moves.
//   - Overall: O(Proposals·n²) worst case, far less in practice.
package lhs

import (
	"math"
	"math/rand"
)

// MinPairwiseDistance returns the minimum Euclidean distance over all point
// pairs of sample. It is the objective the exchange search maximizes,
// exported for quality reporting and for tests.
//
// Returns +Inf for fewer than two points. Rows must share one length.
//
// Complexity: O(n²·d).
func MinPairwiseDistance(sample [][]float64) float64 {
	n := len(sample)
	if n < 2 {
		return math.Inf(1)
	}

	var (
		i, j, c int
		diff, s float64
		min2    = math.Inf(1)
		d       = len(sample[0])
	)
	for i = 0; i < n-1; i++ {
		for j = i + 1; j < n; j++ {
			s = 0
			for c = 0; c < d; c++ {
				diff = sample[i][c] - sample[j][c]
				s += diff * diff
			}
			if s < min2 {
				min2 = s
			}
		}
	}

	return math.Sqrt(min2)
}

// maximinImprove runs the exchange search in place on the flat row-major
// sample m (npoints×ndim). See the file header for the algorithm and
// determinism contract. opts.Eps applies to squared distances.
func maximinImprove(m []float64, npoints, ndim int, opts Options, rng *rand.Rand) {
	n := npoints

	// Pairwise squared distances in a flat n×n table (both triangles kept so
	// row updates are simple sweeps). d2[i*n+j] = |m_i − m_j|².
	d2 := make([]float64, n*n)
	fillDist2(d2, m, n, ndim)
	min2, mi, mj := scanMin2(d2, n)

	// Scratch buffers for reverting a rejected move (two d2 rows).
	oldRowI := make([]float64, n)
	oldRowK := make([]float64, n)

	var (
		p, stale int     // proposal counter, consecutive rejections
		c, i, k  int     // proposed column and rows
		base     int     // flat index helper
		newMin2  float64 // candidate objective after the swap
		nmi, nmj int     // candidate argmin pair
	)
	for p = 0; p < opts.Proposals; p++ {
		if opts.Patience > 0 && stale >= opts.Patience {
			break
		}

		// Fixed draw order: column, row, row. Always consumed, so the RNG
		// stream stays aligned regardless of the branch taken below.
		c = rng.Intn(ndim)
		i = rng.Intn(n)
		k = rng.Intn(n)

		// Degenerate or provably non-improving proposals: a swap that leaves
		// the current minimal pair untouched cannot raise the minimum.
		if i == k || (i != mi && i != mj && k != mi && k != mj) {
			stale++
			continue
		}

		// Tentatively apply the swap and refresh the affected distances.
		m[i*ndim+c], m[k*ndim+c] = m[k*ndim+c], m[i*ndim+c]
		copy(oldRowI, d2[i*n:(i+1)*n])
		copy(oldRowK, d2[k*n:(k+1)*n])
		updateRowDist2(d2, m, n, ndim, i)
		updateRowDist2(d2, m, n, ndim, k)

		// Full rescan: ties elsewhere in the table must cap the new minimum.
		newMin2, nmi, nmj = scanMin2(d2, n)

		if newMin2 > min2+opts.Eps {
			min2, mi, mj = newMin2, nmi, nmj
			stale = 0
			continue
		}

		// Revert: sample value, then both d2 rows and their column mirrors.
		m[i*ndim+c], m[k*ndim+c] = m[k*ndim+c], m[i*ndim+c]
		copy(d2[i*n:(i+1)*n], oldRowI)
		copy(d2[k*n:(k+1)*n], oldRowK)
		for base = 0; base < n; base++ {
			d2[base*n+i] = oldRowI[base]
			d2[base*n+k] = oldRowK[base]
		}
		stale++
	}
}

// fillDist2 populates the full n×n squared-distance table for the flat
// row-major sample m. Diagonal entries are +Inf so they never win a scan.
//
// Complexity: O(n²·d).
func fillDist2(d2, m []float64, n, ndim int) {
	var (
		i, j, c int
		diff, s float64
	)
	for i = 0; i < n; i++ {
		d2[i*n+i] = math.Inf(1)
		for j = i + 1; j < n; j++ {
			s = 0
			for c = 0; c < ndim; c++ {
				diff = m[i*ndim+c] - m[j*ndim+c]
				s += diff * diff
			}
			d2[i*n+j] = s
			d2[j*n+i] = s
		}
	}
}

// updateRowDist2 recomputes row r of the squared-distance table (and its
// column mirror) after row r of the sample changed.
//
// Complexity: O(n·d).
func updateRowDist2(d2, m []float64, n, ndim, r int) {
	var (
		j, c    int
		diff, s float64
	)
	for j = 0; j < n; j++ {
		if j == r {
			continue
		}
		s = 0
		for c = 0; c < ndim; c++ {
			diff = m[r*ndim+c] - m[j*ndim+c]
			s += diff * diff
		}
		d2[r*n+j] = s
		d2[j*n+r] = s
	}
}

// scanMin2 returns the minimum off-diagonal entry of the squared-distance
// table together with its (i, j) pair, i < j.
//
// Complexity: O(n²).
func scanMin2(d2 []float64, n int) (float64, int, int) {
	var (
		i, j   int
		mi, mj int
		min2   = math.Inf(1)
	)
	for i = 0; i < n-1; i++ {
		for j = i + 1; j < n; j++ {
			if d2[i*n+j] < min2 {
				min2 = d2[i*n+j]
				mi, mj = i, j
			}
		}
	}

	return min2, mi, mj
}
