// Package design_test validates parameter specs, the campaign catalog, and
// the derived-parameter transforms.
package design_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lhsdesign/design"
)

var pbpb = design.System{Projectile: "Pb", Target: "Pb", BeamEnergy: 2760}

// activeCatalogKeys is the sampled parameter set of the campaign, in order.
var activeCatalogKeys = []string{
	"norm",
	"fluct_k",
	"nucleon_width",
	"tau_R",
	"alpha",
	"eta_over_s_at_kink",
	"zeta_over_s_max",
	"zeta_over_s_T_peak_in_GeV",
	"zeta_over_s_area_fourth",
	"zeta_over_s_lambda_asymm",
}

// TestNewParamSpec_Validation rejects empty keys, inverted and non-finite
// ranges.
func TestNewParamSpec_Validation(t *testing.T) {
	_, err := design.NewParamSpec("", "x", 0, 1)
	assert.ErrorIs(t, err, design.ErrBadSpec)

	_, err = design.NewParamSpec("x", "x", 2, 1)
	assert.ErrorIs(t, err, design.ErrBadSpec)

	_, err = design.NewParamSpec("x", "x", math.NaN(), 1)
	assert.ErrorIs(t, err, design.ErrBadSpec)

	_, err = design.NewParamSpec("x", "x", 0, math.Inf(1))
	assert.ErrorIs(t, err, design.ErrBadSpec)

	sp, err := design.NewParamSpec("x", "x", 0, 0)
	assert.NoError(t, err, "degenerate but ordered range is allowed")
	assert.Equal(t, "x", sp.Key)
}

// TestParamSpec_Floor checks floor semantics: SamplingMin switches to the
// floor, the declared Min is untouched, and WithFloor copies.
func TestParamSpec_Floor(t *testing.T) {
	sp, err := design.NewParamSpec("tau_fs", `\tau`, 0, 2)
	require.NoError(t, err)

	_, has := sp.Floor()
	assert.False(t, has, "fresh spec must have no floor")
	assert.Equal(t, 0.0, sp.SamplingMin())

	floored := sp.WithFloor(1e-3)
	f, has := floored.Floor()
	assert.True(t, has)
	assert.Equal(t, 1e-3, f)
	assert.Equal(t, 1e-3, floored.SamplingMin())
	assert.Equal(t, 0.0, floored.Min, "floor must not rewrite the declared range")

	// The original spec is unaffected (value semantics).
	assert.Equal(t, 0.0, sp.SamplingMin())
}

// TestCatalog_ActiveSet checks the sampled subset and its order, and that
// declared-but-inactive entries stay out of the space without disappearing
// from the catalog.
func TestCatalog_ActiveSet(t *testing.T) {
	entries, err := design.Catalog(pbpb, design.DefaultPhysics())
	require.NoError(t, err)

	var active, inactive []string
	for _, e := range entries {
		if e.Active {
			active = append(active, e.Spec.Key)
		} else {
			inactive = append(inactive, e.Spec.Key)
		}
	}
	assert.Equal(t, activeCatalogKeys, active)
	assert.Contains(t, inactive, "trento_p")
	assert.Contains(t, inactive, "dmin3")
	assert.Contains(t, inactive, "Tswitch")

	space, err := design.NewSpace(pbpb, design.DefaultPhysics())
	require.NoError(t, err)
	assert.Equal(t, activeCatalogKeys, space.Keys())
	assert.Equal(t, len(activeCatalogKeys), space.NDim())
	assert.NotContains(t, space.Keys(), "trento_p")
}

// TestCatalog_NormRangeByEnergy checks the energy-conditioned range of the
// first parameter and the unknown-energy configuration error.
func TestCatalog_NormRangeByEnergy(t *testing.T) {
	space, err := design.NewSpace(pbpb, design.DefaultPhysics())
	require.NoError(t, err)

	norm := space.Specs()[0]
	assert.Equal(t, "norm", norm.Key)
	assert.Equal(t, 10.0, norm.Min)
	assert.Equal(t, 18.0, norm.Max)

	_, err = design.NewSpace(design.System{Projectile: "Au", Target: "Au", BeamEnergy: 130},
		design.DefaultPhysics())
	assert.ErrorIs(t, err, design.ErrUnknownBeamEnergy)
}

// TestCatalog_InjectableTables checks that the physics tables are honored,
// not baked in: overriding the norm range changes the resolved spec.
func TestCatalog_InjectableTables(t *testing.T) {
	phys := design.DefaultPhysics()
	phys.NormRanges[5020] = design.Range{Min: 10, Max: 25}

	space, err := design.NewSpace(design.System{Projectile: "Pb", Target: "Pb", BeamEnergy: 5020}, phys)
	require.NoError(t, err)
	assert.Equal(t, 25.0, space.Specs()[0].Max)
}

// TestZetaOverSWidth checks the derived bulk-width transform against the
// closed-form value and its missing-key error.
func TestZetaOverSWidth(t *testing.T) {
	v := design.Values{
		"zeta_over_s_area_fourth": 0.4,
		"zeta_over_s_max":         0.2,
	}
	want := 2.0 / math.Pi * math.Pow(0.4, 4) / 0.2
	got, err := design.ZetaOverSWidth(v)
	require.NoError(t, err)
	assert.InDelta(t, want, got, 1e-15)

	_, err = design.ZetaOverSWidth(design.Values{"zeta_over_s_max": 0.2})
	assert.ErrorIs(t, err, design.ErrMissingParam)
}

// TestPhysics_Lookups checks both tables and Validate.
func TestPhysics_Lookups(t *testing.T) {
	phys := design.DefaultPhysics()

	x, err := phys.CrossSection(2760)
	require.NoError(t, err)
	assert.Equal(t, 6.4, x)

	_, err = phys.CrossSection(900)
	assert.ErrorIs(t, err, design.ErrUnknownCrossSection)

	assert.NoError(t, phys.Validate(pbpb))
	assert.ErrorIs(t,
		phys.Validate(design.System{Projectile: "p", Target: "p", BeamEnergy: 7000}),
		design.ErrUnknownBeamEnergy)
}
