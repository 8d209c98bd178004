// Package lhsdesign generates reproducible parameter-space designs for
// computational-physics simulation campaigns.
//
// Given a declarative catalog of tunable physical parameters and their valid
// ranges, it produces deterministic, space-filling sets of design points and
// scales them into physical units — a main design to train a surrogate model
// and an independently seeded validation design to test it.
//
// The module is organized in two library packages and one binary:
//
//	lhs/    — deterministic maximin Latin-hypercube sampling in the unit cube
//	          (stratify → permute → exchange search, single seeded source)
//	design/ — parameter catalog with beam-energy-conditioned ranges, design
//	          builder (affine rescale, sampling floors, derived parameters),
//	          manifest writer, campaign YAML config
//	cmd/generate-design — CLI that writes all campaign artifacts
//
// Everything is seeded and single-pass: identical inputs yield bit-identical
// designs on every platform, which is what makes a campaign's design points
// citable and re-derivable years later.
package lhsdesign
