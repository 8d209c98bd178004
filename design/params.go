// Package design - parameter specifications and the campaign catalog.
package design

import (
	"fmt"
	"math"
)

// Values maps parameter keys to scaled physical values for one design point.
type Values map[string]float64

// Get returns the value for key or an error wrapping ErrMissingParam.
// Derived-parameter transforms use it so a catalog typo surfaces as an error
// instead of a silent zero.
func (v Values) Get(key string) (float64, error) {
	x, ok := v[key]
	if !ok {
		return 0, fmt.Errorf("design: %q: %w", key, ErrMissingParam)
	}

	return x, nil
}

// clone returns an independent copy of v.
func (v Values) clone() Values {
	out := make(Values, len(v))
	for k, x := range v {
		out[k] = x
	}

	return out
}

// ParamSpec describes one sampled parameter: a stable key, a display label
// (TeX-ish, for downstream plotting), and the physical range [Min, Max].
// An optional sampling floor replaces Min as the lower sampling bound — used
// to keep samples away from numerically pathological near-zero values while
// still letting downstream emulators extrapolate below it.
//
// ParamSpec is an immutable value: construct via NewParamSpec, derive floored
// variants via WithFloor.
type ParamSpec struct {
	Key   string
	Label string
	Min   float64
	Max   float64

	floor    float64
	hasFloor bool
}

// NewParamSpec validates and builds a ParamSpec.
// Errors wrap ErrBadSpec for an empty key, a non-finite bound, or Min > Max.
func NewParamSpec(key, label string, min, max float64) (ParamSpec, error) {
	if key == "" {
		return ParamSpec{}, fmt.Errorf("design: empty key: %w", ErrBadSpec)
	}
	if math.IsNaN(min) || math.IsNaN(max) || math.IsInf(min, 0) || math.IsInf(max, 0) {
		return ParamSpec{}, fmt.Errorf("design: %q: non-finite range: %w", key, ErrBadSpec)
	}
	if min > max {
		return ParamSpec{}, fmt.Errorf("design: %q: min %g > max %g: %w", key, min, max, ErrBadSpec)
	}

	return ParamSpec{Key: key, Label: label, Min: min, Max: max}, nil
}

// WithFloor returns a copy of p whose lower sampling bound is f.
func (p ParamSpec) WithFloor(f float64) ParamSpec {
	p.floor = f
	p.hasFloor = true

	return p
}

// Floor reports the sampling floor, if one is set.
func (p ParamSpec) Floor() (float64, bool) {
	return p.floor, p.hasFloor
}

// SamplingMin returns the effective lower sampling bound: the floor when set,
// Min otherwise. Scaling and the range manifest both use it.
func (p ParamSpec) SamplingMin() float64 {
	if p.hasFloor {
		return p.floor
	}

	return p.Min
}

// DerivedSpec declares a parameter computed from the sampled ones via a pure
// transform. Derived parameters are attached to every design point after
// scaling and appear in the design-point manifest after the sampled keys, in
// declaration order; they have no range of their own.
type DerivedSpec struct {
	Key string
	Fn  func(Values) (float64, error)
}

// CatalogEntry is one row of the declarative parameter catalog: a spec plus
// its membership flag. Enabling a parameter for sampling is a data change
// (flip Active), never a logic change.
type CatalogEntry struct {
	Spec   ParamSpec
	Active bool
}

// Catalog returns the campaign parameter catalog for sys, in sampling order.
// The normalization range depends on beam energy via phys; an unknown energy
// is a configuration error surfaced before any sampling.
//
// Inactive entries are parameters the campaign has sampled before or may
// sample next; they are declared here so re-enabling one touches only this
// table. Entries with a degenerate (0, 0) range additionally need a real
// range before activation.
func Catalog(sys System, phys Physics) ([]CatalogEntry, error) {
	norm, err := phys.NormRange(sys.BeamEnergy)
	if err != nil {
		return nil, err
	}

	// The catalog is static data; a spec construction failure here is a
	// programmer error, not a runtime condition.
	mk := func(key, label string, r Range, active bool) CatalogEntry {
		spec, serr := NewParamSpec(key, label, r.Min, r.Max)
		if serr != nil {
			panic(serr)
		}

		return CatalogEntry{Spec: spec, Active: active}
	}

	return []CatalogEntry{
		// initial conditions (trento)
		mk("norm", `{Norm}`, norm, true),
		mk("trento_p", `p`, Range{-0.5, 0.5}, false),
		mk("fluct_k", `k {fluct}`, Range{0.3, 3.0}, true),
		mk("nucleon_width", `w [{fm}]`, Range{0.4, 1.5}, true),
		mk("dmin3", `d {min} [{fm}]`, Range{0.0, 1.7 * 1.7 * 1.7}, false),

		// free streaming
		mk("tau_R", `\tau {R} [{fm}/c]`, Range{0.5, 2.0}, true),
		mk("alpha", `\alpha`, Range{-0.5, 0.0}, true),

		// shear viscosity
		mk("eta_over_s_T_kink_in_GeV", `\eta/s {T_kink}`, Range{0.0, 0.0}, false),
		mk("eta_over_s_low_T_slope_in_GeV", `\eta/s {low}`, Range{0.0, 0.0}, false),
		mk("eta_over_s_high_T_slope_in_GeV", `\eta/s {high}`, Range{0.0, 0.0}, false),
		mk("eta_over_s_at_kink", `\eta/s {kink}`, Range{0.01, 0.25}, true),

		// bulk viscosity
		mk("zeta_over_s_max", `\zeta/s {max}`, Range{0.0, 0.3}, true),
		mk("zeta_over_s_T_peak_in_GeV", `\eta/s {Tpeak}`, Range{0.1, 0.5}, true),
		mk("zeta_over_s_area_fourth", `\zeta/s {area} [{GeV^2}]`,
			Range{math.Pow(0.0002, 0.25), math.Pow(0.2*0.3, 0.25)}, true),
		mk("zeta_over_s_lambda_asymm", `\eta/s {\lambda}`, Range{-0.8, 0.8}, true),

		// relaxation times
		mk("shear_relax_time_factor", `b_{\pi}`, Range{0.0, 0.0}, false),
		mk("bulk_relax_time_factor", `b_{\Pi}`, Range{0.0, 0.0}, false),

		// particlization
		mk("Tswitch", `T {switch} [{GeV}]`, Range{0.135, 0.165}, false),
	}, nil
}

// catalogDerived returns the derived parameters attached to every catalog
// design point, in manifest order.
func catalogDerived() []DerivedSpec {
	return []DerivedSpec{
		{Key: "zeta_over_s_width_in_GeV", Fn: ZetaOverSWidth},
	}
}

// ZetaOverSWidth computes the bulk-viscosity peak width from the sampled
// fourth-root area and peak height:
//
//	width = (2/π) · area_fourth⁴ / ζ/s_max
//
// Sampling the fourth root of the area keeps the design space well
// conditioned; this transform recovers the width the hydro module consumes.
func ZetaOverSWidth(v Values) (float64, error) {
	area4, err := v.Get("zeta_over_s_area_fourth")
	if err != nil {
		return 0, err
	}
	zmax, err := v.Get("zeta_over_s_max")
	if err != nil {
		return 0, err
	}

	a := area4 * area4 * area4 * area4

	return 2.0 / math.Pi * a / zmax, nil
}
