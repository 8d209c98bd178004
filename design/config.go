// Package design - declarative campaign configuration.
//
// A campaign config names the collision systems to design for, the design
// sizes, and any overrides of the built-in physics tables. It is plain data:
// loading one never touches sampling or scaling logic.
package design

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultValidationPoints is the default validation-design size; smaller than
// the main design since it only tests the surrogate fit.
const DefaultValidationPoints = 50

// SystemConfig is the YAML shape of one collision system.
type SystemConfig struct {
	Projectile string `yaml:"projectile"`
	Target     string `yaml:"target"`
	BeamEnergy int    `yaml:"beam_energy"`
}

// Config is the campaign configuration.
//
// YAML example:
//
//	systems:
//	  - projectile: Pb
//	    target: Pb
//	    beam_energy: 2760
//	points: 100
//	validation_points: 50
//	norm_ranges:
//	  2760: [10, 18]
//	cross_sections:
//	  2760: 6.4
//
// norm_ranges and cross_sections entries overlay the DefaultPhysics tables;
// omitted energies keep their defaults.
type Config struct {
	Systems          []SystemConfig     `yaml:"systems"`
	Points           int                `yaml:"points"`
	ValidationPoints int                `yaml:"validation_points"`
	NormRanges       map[int][2]float64 `yaml:"norm_ranges"`
	CrossSections    map[int]float64    `yaml:"cross_sections"`
}

// DefaultConfig returns the campaign defaults: one Pb–Pb system at 2.76 TeV
// and the documented default design sizes.
func DefaultConfig() Config {
	return Config{
		Systems:          []SystemConfig{{Projectile: "Pb", Target: "Pb", BeamEnergy: 2760}},
		Points:           DefaultPoints,
		ValidationPoints: DefaultValidationPoints,
		NormRanges:       map[int][2]float64{},
		CrossSections:    map[int]float64{},
	}
}

// LoadConfig reads a YAML campaign config from path, overlaid on
// DefaultConfig. Errors carry path context; validation errors wrap
// ErrBadConfig.
func LoadConfig(path string) (Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("design: read config %s: %v", path, err)
	}

	cfg := DefaultConfig()
	if err = yaml.Unmarshal(raw, &cfg); err != nil {
		return Config{}, fmt.Errorf("design: parse config %s: %v", path, err)
	}
	if err = cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("design: config %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks structural invariants of the config. Physics-table
// completeness is checked per system by Physics.Validate, not here.
func (c Config) Validate() error {
	if len(c.Systems) == 0 {
		return fmt.Errorf("no systems: %w", ErrBadConfig)
	}
	for _, s := range c.Systems {
		if s.Projectile == "" || s.Target == "" || s.BeamEnergy <= 0 {
			return fmt.Errorf("system %+v: %w", s, ErrBadConfig)
		}
	}
	if c.Points <= 0 || c.ValidationPoints <= 0 {
		return fmt.Errorf("points=%d validation_points=%d: %w",
			c.Points, c.ValidationPoints, ErrBadConfig)
	}
	for e, r := range c.NormRanges {
		if r[0] > r[1] {
			return fmt.Errorf("norm_ranges[%d]=%v: %w", e, r, ErrBadConfig)
		}
	}

	return nil
}

// Physics materializes the effective lookup tables: DefaultPhysics overlaid
// with the config's overrides.
func (c Config) Physics() Physics {
	p := DefaultPhysics()
	for e, r := range c.NormRanges {
		p.NormRanges[e] = Range{Min: r[0], Max: r[1]}
	}
	for e, x := range c.CrossSections {
		p.CrossSections[e] = x
	}

	return p
}

// SystemList returns the configured collision systems.
func (c Config) SystemList() []System {
	out := make([]System, len(c.Systems))
	for i, s := range c.Systems {
		out[i] = System{Projectile: s.Projectile, Target: s.Target, BeamEnergy: s.BeamEnergy}
	}

	return out
}
