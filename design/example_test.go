package design_test

import (
	"fmt"

	"github.com/katalvlaran/lhsdesign/design"
)

// ExampleBuild builds the main design for the built-in Pb-Pb campaign. The
// fixed default seed makes the result reproducible run to run.
func ExampleBuild() {
	sys := design.System{Projectile: "Pb", Target: "Pb", BeamEnergy: 2760}

	opts := design.DefaultBuildOptions(design.Main)
	opts.Points = 5

	d, err := design.Build(sys, design.DefaultPhysics(), opts)
	if err != nil {
		fmt.Println("build:", err)
		return
	}

	fmt.Println(d.System.Label(), d.Kind, "points:", len(d.Points), "ndim:", d.Space.NDim())
	fmt.Println("first point id:", d.Points[0].ID)

	// Output:
	// PbPb-2760 main points: 5 ndim: 10
	// first point id: 0
}

// ExampleSystem_Label shows the canonical system identifier used in every
// artifact name.
func ExampleSystem_Label() {
	fmt.Println(design.System{Projectile: "Au", Target: "Au", BeamEnergy: 200}.Label())

	// Output:
	// AuAu-200
}
