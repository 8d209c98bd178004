// Package design - the ordered parameter space.
package design

import "fmt"

// Space is the ordered, read-only sequence of active parameter specs plus the
// derived-parameter specs attached to every point. Order is significant: it
// fixes column order in the sample matrix and in every manifest.
type Space struct {
	specs   []ParamSpec
	derived []DerivedSpec
}

// NewSpace resolves the campaign catalog for sys (ranges via phys) and
// assembles the active ordered parameter space.
//
// Errors: unresolved physics lookups (ErrUnknownBeamEnergy) surface here,
// before any sampling.
func NewSpace(sys System, phys Physics) (Space, error) {
	entries, err := Catalog(sys, phys)
	if err != nil {
		return Space{}, err
	}

	specs := make([]ParamSpec, 0, len(entries))
	for _, e := range entries {
		if e.Active {
			specs = append(specs, e.Spec)
		}
	}

	return NewCustomSpace(specs, catalogDerived())
}

// NewCustomSpace assembles a parameter space from explicit specs and derived
// specs, for campaigns (and tests) that do not use the built-in catalog.
//
// Contracts:
//   - at least one spec (ErrEmptySpace),
//   - keys unique across specs and derived specs (ErrDuplicateKey),
//   - derived entries need a key and a transform (ErrBadSpec).
func NewCustomSpace(specs []ParamSpec, derived []DerivedSpec) (Space, error) {
	if len(specs) == 0 {
		return Space{}, ErrEmptySpace
	}

	seen := make(map[string]struct{}, len(specs)+len(derived))
	for _, sp := range specs {
		if sp.Key == "" {
			return Space{}, fmt.Errorf("design: empty key: %w", ErrBadSpec)
		}
		if _, dup := seen[sp.Key]; dup {
			return Space{}, fmt.Errorf("design: %q: %w", sp.Key, ErrDuplicateKey)
		}
		seen[sp.Key] = struct{}{}
	}
	for _, d := range derived {
		if d.Key == "" || d.Fn == nil {
			return Space{}, fmt.Errorf("design: derived %q: %w", d.Key, ErrBadSpec)
		}
		if _, dup := seen[d.Key]; dup {
			return Space{}, fmt.Errorf("design: %q: %w", d.Key, ErrDuplicateKey)
		}
		seen[d.Key] = struct{}{}
	}

	// Defensive copies: the space is read-only after construction.
	s := Space{
		specs:   append([]ParamSpec(nil), specs...),
		derived: append([]DerivedSpec(nil), derived...),
	}

	return s, nil
}

// NDim returns the number of sampled parameters (design-matrix columns).
func (s Space) NDim() int { return len(s.specs) }

// Specs returns the active parameter specs in sampling order (a copy).
func (s Space) Specs() []ParamSpec {
	return append([]ParamSpec(nil), s.specs...)
}

// Derived returns the derived-parameter specs in declaration order (a copy).
func (s Space) Derived() []DerivedSpec {
	return append([]DerivedSpec(nil), s.derived...)
}

// Keys returns the sampled parameter keys in sampling order.
func (s Space) Keys() []string {
	out := make([]string, len(s.specs))
	for i, sp := range s.specs {
		out[i] = sp.Key
	}

	return out
}

// AllKeys returns the manifest column order: sampled keys followed by derived
// keys in declaration order.
func (s Space) AllKeys() []string {
	out := make([]string, 0, len(s.specs)+len(s.derived))
	for _, sp := range s.specs {
		out = append(out, sp.Key)
	}
	for _, d := range s.derived {
		out = append(out, d.Key)
	}

	return out
}
