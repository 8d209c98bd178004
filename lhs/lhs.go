// Package lhs - stratified sampling core.
//
// This file implements stages 1–2 of the pipeline (stratify + permute) and
// the public Generate entry points. Stage 3 (maximin exchange search) lives
// in maximin.go.
//
// Determinism contract (RNG consumption order, fixed):
//
//	for each column j = 0..ndim−1:
//	  1. Fisher–Yates shuffle of the stratum assignment (n−1 Intn draws);
//	  2. one Float64 offset draw per row i = 0..npoints−1
//	     (skipped entirely under Options.Midpoint);
//	then the exchange search draws (column, row, row) per proposal.
//
// Any change to this order is a breaking change: it silently invalidates
// every previously generated design.
package lhs

import (
	"fmt"
	"math"
	"math/rand"
)

// Generate produces a maximin Latin-hypercube sample with default options.
// The result has npoints rows and ndim columns, each entry in [0,1).
//
// Complexity: O(npoints·ndim) stratification + exchange search (see
// maximin.go).
func Generate(npoints, ndim int, seed int64) ([][]float64, error) {
	return GenerateWith(npoints, ndim, DefaultOptions(seed))
}

// GenerateWith produces a maximin Latin-hypercube sample under explicit
// options.
//
// Contracts:
//   - npoints ≥ 1, ndim ≥ 1 (ErrBadShape otherwise, with the offending
//     values in the message).
//   - opts fields must be non-negative (ErrBadOptions).
//
// The returned matrix is freshly allocated; callers may mutate it freely.
func GenerateWith(npoints, ndim int, opts Options) ([][]float64, error) {
	if npoints <= 0 || ndim <= 0 {
		return nil, fmt.Errorf("lhs: npoints=%d ndim=%d: %w", npoints, ndim, ErrBadShape)
	}
	if err := opts.validate(); err != nil {
		return nil, err
	}

	// Single seeded source for the whole pipeline.
	rng := rngFromSeed(opts.Seed)

	// Flat row-major buffer m[i*ndim+j] keeps the hot loops free of nested
	// slice indirection (same discipline as the exchange search).
	m := stratify(npoints, ndim, opts.Midpoint, rng)

	// Stage 3: exchange search. A single point (or zero budget) has nothing
	// to improve; the RNG is then left untouched past stratification.
	if opts.Proposals > 0 && npoints > 1 {
		maximinImprove(m, npoints, ndim, opts, rng)
	}

	return unflatten(m, npoints, ndim), nil
}

// stratify builds a plain Latin-hypercube sample in a flat row-major buffer:
// column j holds one value per stratum k, v = (perm[k] + u)/npoints, with the
// stratum order permuted per column and u ∈ [0,1) drawn per row (0.5 under
// midpoint).
//
// Complexity: O(npoints·ndim) time and space.
func stratify(npoints, ndim int, midpoint bool, rng *rand.Rand) []float64 {
	m := make([]float64, npoints*ndim)
	inv := 1.0 / float64(npoints)

	var (
		i, j int
		u, v float64
		perm []int
	)
	for j = 0; j < ndim; j++ {
		// Stratum assignment for this column (consumes n−1 draws).
		perm = permRange(npoints, rng)
		for i = 0; i < npoints; i++ {
			if midpoint {
				u = 0.5
			} else {
				u = rng.Float64()
			}
			// (stratum + offset)/n ∈ [stratum/n, (stratum+1)/n) ⊂ [0,1).
			// Rounding of the last stratum can land on 1.0 exactly; the
			// contract is half-open, so pin such a value just below it.
			v = (float64(perm[i]) + u) * inv
			if v >= 1 {
				v = math.Nextafter(1, 0)
			}
			m[i*ndim+j] = v
		}
	}

	return m
}

// unflatten copies the flat row-major buffer into the [][]float64 shape of
// the public contract. One backing allocation for all rows.
func unflatten(m []float64, npoints, ndim int) [][]float64 {
	backing := make([]float64, len(m))
	copy(backing, m)

	out := make([][]float64, npoints)
	var i int
	for i = 0; i < npoints; i++ {
		out[i] = backing[i*ndim : (i+1)*ndim : (i+1)*ndim]
	}

	return out
}
