// Package lhs generates deterministic maximin Latin-hypercube samples in the
// unit cube.
//
// A Latin-hypercube sample (LHS) of npoints points in ndim dimensions places
// exactly one point in each of the npoints equal-width strata of every axis.
// The maximin refinement then perturbs the sample — by exchanging two rows'
// values within a single column, which preserves the stratification — to
// increase the minimum pairwise Euclidean distance, making the sample more
// space-filling.
//
// Pipeline (see Generate / GenerateWith):
//
//  1. Stratify: each column j gets one value per stratum k,
//     v = (k + u)/npoints with u drawn from the seeded source
//     (u = 0.5 under Options.Midpoint).
//  2. Permute: the stratum assignment of each column is shuffled
//     independently (Fisher–Yates), producing a valid LHS.
//  3. Exchange search: propose swapping two rows' values within one random
//     column; accept iff the minimum pairwise distance strictly increases.
//     Stop after Options.Proposals proposals or Options.Patience consecutive
//     rejections.
//
// Determinism:
//   - A single *rand.Rand seeded from Options.Seed drives stratification,
//     permutation, and the exchange search, in a fixed documented order.
//     Identical (npoints, ndim, seed, options) ⇒ identical matrices on every
//     platform.
//   - No time-based sources, no global state, no logging.
//
// No polynomial algorithm guarantees a globally maximin LHS; the contract is
// that returned samples satisfy the stratification exactly and are, on
// average over seeds, no worse than the unoptimized stratified-random LHS
// (Proposals = 0 reproduces that baseline).
//
// Use this package when you need reproducible space-filling designs, e.g.
// computer-experiment campaigns that train surrogate models.
package lhs
