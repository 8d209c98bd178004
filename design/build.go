// Package design - the design builder.
//
// Build orchestrates Space resolution, unit-cube sampling, affine rescaling,
// point naming, and derived-parameter attachment. The resulting Design is
// immutable; Writer (manifest.go) only reads it.
package design

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/lhsdesign/lhs"
)

// Kind distinguishes the two independently seeded designs built per system.
type Kind string

const (
	// Main is the design that trains the downstream surrogate model.
	Main Kind = "main"
	// Validation is the design that tests it.
	Validation Kind = "validation"
)

// Default seeds, one per kind. Distinct constants guarantee the two designs
// of a system are generated independently; both are caller-overridable.
const (
	DefaultMainSeed       int64 = 450829120
	DefaultValidationSeed int64 = 751783496
)

// DefaultPoints is the default design size when a campaign config does not
// say otherwise.
const DefaultPoints = 100

// BuildOptions configures one Build call.
//
// Fields:
//   - Kind    — Main or Validation (required).
//   - Points  — number of design points (must be positive).
//   - Seed    — sampler seed; 0 selects the kind's default seed.
//   - Sampler — maximin-search knobs forwarded to lhs.GenerateWith.
//     Sampler.Seed is ignored: the effective seed always comes from Seed so
//     one field owns reproducibility.
type BuildOptions struct {
	Kind    Kind
	Points  int
	Seed    int64
	Sampler lhs.Options
}

// DefaultBuildOptions returns the documented defaults for kind.
func DefaultBuildOptions(kind Kind) BuildOptions {
	return BuildOptions{
		Kind:    kind,
		Points:  DefaultPoints,
		Sampler: lhs.DefaultOptions(0),
	}
}

// Point is one design point: a sequential identifier and the mapping from
// parameter key (sampled and derived) to scaled physical value.
type Point struct {
	ID     string
	Values Values
}

// Design is the complete sampled plan for one (system, kind) pair.
// It is immutable after Build.
type Design struct {
	System System
	Kind   Kind
	Space  Space
	Seed   int64
	Points []Point
}

// Build resolves the campaign parameter space for sys and builds its design.
// Configuration errors (unknown beam energy) surface before any sampling.
func Build(sys System, phys Physics, opts BuildOptions) (Design, error) {
	space, err := NewSpace(sys, phys)
	if err != nil {
		return Design{}, err
	}

	return BuildWithSpace(sys, space, opts)
}

// BuildWithSpace builds a design over an explicit parameter space.
//
// Steps (order fixed):
//  1. seed resolution: opts.Seed, or the kind's default when zero;
//  2. lhs.GenerateWith(npoints, space.NDim(), seed) — unit-cube sample;
//  3. per-column affine rescale: scaled = lo + (max − lo)·u with
//     lo = SamplingMin (floor-aware);
//  4. ids "0".."npoints−1" in sample row order (never re-sorted);
//  5. derived parameters appended per point, in declaration order.
//
// Errors: ErrBadKind for an unknown kind; sampler shape errors propagate
// from lhs (non-positive Points included); derived-transform errors abort the
// build with no partial Design.
func BuildWithSpace(sys System, space Space, opts BuildOptions) (Design, error) {
	if opts.Kind != Main && opts.Kind != Validation {
		return Design{}, fmt.Errorf("design: %q: %w", opts.Kind, ErrBadKind)
	}

	seed := opts.Seed
	if seed == 0 {
		seed = DefaultMainSeed
		if opts.Kind == Validation {
			seed = DefaultValidationSeed
		}
	}

	sopts := opts.Sampler
	sopts.Seed = seed
	unit, err := lhs.GenerateWith(opts.Points, space.NDim(), sopts)
	if err != nil {
		return Design{}, err
	}

	specs := space.Specs()
	derived := space.Derived()
	points := make([]Point, opts.Points)

	var (
		i, j int
		lo   float64
		v    float64
	)
	for i = 0; i < opts.Points; i++ {
		vals := make(Values, len(specs)+len(derived))
		for j = 0; j < len(specs); j++ {
			lo = specs[j].SamplingMin()
			vals[specs[j].Key] = lo + (specs[j].Max-lo)*unit[i][j]
		}
		for _, d := range derived {
			v, err = d.Fn(vals)
			if err != nil {
				return Design{}, err
			}
			vals[d.Key] = v
		}
		points[i] = Point{ID: strconv.Itoa(i), Values: vals}
	}

	return Design{
		System: sys,
		Kind:   opts.Kind,
		Space:  space,
		Seed:   seed,
		Points: points,
	}, nil
}

// SystemMeta is the per-system metadata handed to the module-input
// collaborator alongside each point's parameter mapping.
type SystemMeta struct {
	Projectile   string
	Target       string
	BeamEnergy   int
	CrossSection float64
}

// Record is one collaborator hand-off: a point's identifier, an independent
// copy of its parameter mapping, and the resolved system metadata.
type Record struct {
	ID     string
	Values Values
	Meta   SystemMeta
}

// Records resolves the collaborator records for every point of d, looking the
// nucleon cross section up in phys. An unknown beam energy aborts before any
// record is produced.
func (d Design) Records(phys Physics) ([]Record, error) {
	xsec, err := phys.CrossSection(d.System.BeamEnergy)
	if err != nil {
		return nil, err
	}

	meta := SystemMeta{
		Projectile:   d.System.Projectile,
		Target:       d.System.Target,
		BeamEnergy:   d.System.BeamEnergy,
		CrossSection: xsec,
	}

	out := make([]Record, len(d.Points))
	for i, pt := range d.Points {
		out[i] = Record{ID: pt.ID, Values: pt.Values.clone(), Meta: meta}
	}

	return out, nil
}

// ModuleInputWriter is the external collaborator that turns one design
// point's parameter mapping into simulation-specific input files under dir.
// This package owns the mapping and metadata it hands over — not the files
// the collaborator writes.
type ModuleInputWriter interface {
	WriteModuleInputs(dir, pointID string, values Values, meta SystemMeta) error
}
