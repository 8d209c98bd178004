package lhs

// DEFAULTS - single source of truth for zero-value behavior.
const (
	// DefaultProposals bounds the exchange search: at most this many swap
	// proposals are evaluated. The budget is deliberately generous for the
	// design sizes this package targets (tens to a few hundred points).
	DefaultProposals = 20000

	// DefaultPatience stops the exchange search early after this many
	// consecutive non-improving proposals (a local optimum in practice).
	DefaultPatience = 2000

	// DefaultEps is the strict-improvement tolerance: a swap is accepted only
	// when it raises the minimum pairwise distance by more than Eps. Zero
	// means any strict increase is accepted.
	DefaultEps = 0.0
)

// Options configures sample generation.
//
// Fields:
//   - Seed      — seed for the single deterministic random source. Seed 0 is
//     mapped to a fixed internal default so the zero value stays reproducible.
//   - Proposals — exchange-search budget (0 disables the search, yielding a
//     plain stratified-random LHS).
//   - Patience  — consecutive non-improving proposals before early stop
//     (0 means never stop early; only the Proposals budget applies).
//   - Eps       — non-negative strict-improvement tolerance.
//   - Midpoint  — place each sample at its stratum midpoint instead of a
//     random stratum-relative offset. The stratification and permutation are
//     unchanged; only the within-stratum position becomes deterministic in
//     the stronger "no offset draws" sense.
type Options struct {
	Seed      int64
	Proposals int
	Patience  int
	Eps       float64
	Midpoint  bool
}

// DefaultOptions returns the documented defaults with the given seed.
func DefaultOptions(seed int64) Options {
	return Options{
		Seed:      seed,
		Proposals: DefaultProposals,
		Patience:  DefaultPatience,
		Eps:       DefaultEps,
	}
}

// validate checks option invariants. Shape errors are reported separately by
// the generators.
func (o Options) validate() error {
	if o.Proposals < 0 || o.Patience < 0 || o.Eps < 0 {
		return ErrBadOptions
	}

	return nil
}
