// Command generate-design produces reproducible Latin-hypercube parameter
// designs for a simulation campaign.
//
// For every configured collision system it builds the main and validation
// designs (independent fixed default seeds) and writes the design-point and
// range manifests under the given inputs directory. Any configuration or I/O
// failure aborts the run with a non-zero exit code before partial artifacts
// can be mistaken for complete ones.
package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lhsdesign/design"
)

var (
	cfgPath   string
	points    int
	valPoints int
	mainSeed  int64
	valSeed   int64
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate-design <inputs_dir>",
		Short: "generate Latin-hypercube parameter designs",
		Long: `generate-design builds deterministic maximin Latin-hypercube designs for
every configured collision system and writes the design-point and range
manifests under <inputs_dir>.

Without --config a single Pb-Pb 2760 GeV campaign with the built-in physics
tables is generated.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          run,
	}

	cmd.Flags().StringVar(&cfgPath, "config", "", "campaign config file (YAML)")
	cmd.Flags().IntVar(&points, "points", 0, "override main-design point count")
	cmd.Flags().IntVar(&valPoints, "validation-points", 0, "override validation-design point count")
	cmd.Flags().Int64Var(&mainSeed, "main-seed", 0, "override the main-design seed (0 = default)")
	cmd.Flags().Int64Var(&valSeed, "validation-seed", 0, "override the validation-design seed (0 = default)")

	return cmd
}

func run(_ *cobra.Command, args []string) error {
	log := slog.New(slog.NewTextHandler(os.Stderr, nil))
	inputsDir := args[0]

	cfg := design.DefaultConfig()
	if cfgPath != "" {
		var err error
		if cfg, err = design.LoadConfig(cfgPath); err != nil {
			log.Error("config", "error", err)

			return err
		}
	}
	if points > 0 {
		cfg.Points = points
	}
	if valPoints > 0 {
		cfg.ValidationPoints = valPoints
	}

	phys := cfg.Physics()
	writer := design.Writer{Root: inputsDir, Physics: phys}

	for _, sys := range cfg.SystemList() {
		// Fail on unresolvable lookups before any sampling for this system.
		if err := phys.Validate(sys); err != nil {
			log.Error("physics tables", "system", sys.Label(), "error", err)

			return err
		}

		for _, kind := range []design.Kind{design.Main, design.Validation} {
			opts := design.DefaultBuildOptions(kind)
			if kind == design.Main {
				opts.Points = cfg.Points
				opts.Seed = mainSeed
			} else {
				opts.Points = cfg.ValidationPoints
				opts.Seed = valSeed
			}

			d, err := design.Build(sys, phys, opts)
			if err != nil {
				log.Error("build", "system", sys.Label(), "kind", kind, "error", err)

				return err
			}
			log.Info("built design",
				"system", sys.Label(), "kind", kind,
				"points", len(d.Points), "ndim", d.Space.NDim(), "seed", d.Seed)

			if err = writer.Write(d); err != nil {
				log.Error("write", "system", sys.Label(), "kind", kind, "error", err)

				return err
			}
		}
	}
	log.Info("wrote all design artifacts", "dir", inputsDir)

	return nil
}
