// Command lbmrun drives block-lattice simulations from the CLI: run a
// fixed number of steps from a YAML RunConfig, list and resume saved
// checkpoints, or benchmark a dynamics variant's raw collide+stream
// throughput.
package main

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/lbmcore/internal/block"
	"github.com/san-kum/lbmcore/internal/blocklattice"
	"github.com/san-kum/lbmcore/internal/boundary"
	"github.com/san-kum/lbmcore/internal/config"
	"github.com/san-kum/lbmcore/internal/descriptor"
	"github.com/san-kum/lbmcore/internal/dynamics"
	"github.com/san-kum/lbmcore/internal/geom"
	"github.com/san-kum/lbmcore/internal/storage"
)

var (
	dataDir    string
	configFile string
	presetName string
	presetVar  string
	steps      int
	runID      string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "lbmrun",
		Short: "lattice-Boltzmann simulation runner",
	}
	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".lbmrun", "checkpoint directory")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run a simulation from a config file or preset",
		RunE:  runSimulation,
	}
	runCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	runCmd.Flags().StringVar(&presetName, "preset", "", "preset scenario name")
	runCmd.Flags().StringVar(&presetVar, "variant", "", "preset variant name")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list saved checkpoints",
		RunE:  listCheckpoints,
	}

	resumeCmd := &cobra.Command{
		Use:   "resume [checkpoint-id]",
		Short: "resume a run from a saved checkpoint",
		Args:  cobra.ExactArgs(1),
		RunE:  resumeCheckpoint,
	}
	resumeCmd.Flags().IntVar(&steps, "steps", 100, "additional steps to run")

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "benchmark collide+stream throughput for a config",
		RunE:  benchSimulation,
	}
	benchCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	benchCmd.Flags().IntVar(&steps, "steps", 100, "steps to benchmark")

	rootCmd.AddCommand(runCmd, listCmd, resumeCmd, benchCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func loadRunConfig() (*config.RunConfig, error) {
	if presetName != "" {
		cfg := config.GetPreset(presetName, presetVar)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset %s/%s (variants: %v)", presetName, presetVar, config.ListPresets(presetName))
		}
		return cfg, nil
	}
	if configFile != "" {
		return config.Load(configFile)
	}
	return config.DefaultConfig(), nil
}

func buildBlock(cfg *config.RunConfig) (*block.AtomicBlock3D, dynamics.Dynamics, error) {
	descReg := descriptor.NewRegistry()
	desc, err := descReg.Get(cfg.Descriptor)
	if err != nil {
		return nil, nil, err
	}

	dynReg := dynamics.NewRegistry()
	dyn, err := dynReg.Get(cfg.Dynamics, desc, cfg.DynamicsParams())
	if err != nil {
		return nil, nil, err
	}

	nz := cfg.Nz
	if nz < 1 {
		nz = 1
	}
	domain := geom.NewBox3D(0, cfg.Nx-1, 0, cfg.Ny-1, 0, nz-1)
	var b *block.AtomicBlock3D
	if cfg.Periodic {
		b = block.NewPeriodicAtomicBlock3D(domain, dyn)
	} else {
		b = block.NewAtomicBlock3D(domain, dyn)
	}

	switch cfg.Boundary.Kind {
	case "cavity":
		lid := geom.NewBox3D(domain.X0, domain.X1, domain.Y1, domain.Y1, domain.Z0, domain.Z1)
		walls := []geom.Box3D{
			geom.NewBox3D(domain.X0, domain.X1, domain.Y0, domain.Y0, domain.Z0, domain.Z1),
			geom.NewBox3D(domain.X0, domain.X0, domain.Y0, domain.Y1, domain.Z0, domain.Z1),
			geom.NewBox3D(domain.X1, domain.X1, domain.Y0, domain.Y1, domain.Z0, domain.Z1),
		}
		if err := b.AttachEnvelopeProcessor(boundary.NewConstantVelocityInletGenerator(lid, cfg.Boundary.Velocity)); err != nil {
			return nil, nil, err
		}
		for _, w := range walls {
			if err := b.AttachEnvelopeProcessor(boundary.NewBounceBackGenerator(w)); err != nil {
				return nil, nil, err
			}
		}
	case "bodyforce":
		b.AddInternalProcessor(boundary.NewConstantBodyForce(b, domain, cfg.Boundary.Force))
	}

	return b, dyn, nil
}

func runSimulation(cmd *cobra.Command, args []string) error {
	cfg, err := loadRunConfig()
	if err != nil {
		return err
	}

	b, _, err := buildBlock(cfg)
	if err != nil {
		return err
	}
	lattice := blocklattice.New(b)

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	energies := make([]float64, 0, cfg.Steps)
	for i := 0; i < cfg.Steps; i++ {
		if err := lattice.CollideAndStreamAll(); err != nil {
			return fmt.Errorf("step %d: %w", i, err)
		}
		energies = append(energies, lattice.GetStoredAverageEnergy())

		if cfg.CheckpointEvery > 0 && (i+1)%cfg.CheckpointEvery == 0 {
			id, err := st.Save(b, cfg.Dynamics, lattice.TimeCounter().Time(), 1)
			if err != nil {
				return fmt.Errorf("checkpoint at step %d: %w", i, err)
			}
			fmt.Printf("checkpoint %s at step %d\n", id, i+1)
		}
	}

	if len(energies) > 0 {
		fmt.Println(asciigraph.Plot(energies, asciigraph.Height(10), asciigraph.Caption("average kinetic energy")))
	}
	return nil
}

func listCheckpoints(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tDESCRIPTOR\tDYNAMICS\tTIME\tTIMESTAMP")
	for _, r := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\n", r.ID, r.Descriptor, r.Dynamics, r.Time, r.Timestamp.Format(time.RFC3339))
	}
	return w.Flush()
}

func resumeCheckpoint(cmd *cobra.Command, args []string) error {
	runID = args[0]
	st := storage.New(dataDir)

	metas, err := st.List()
	if err != nil {
		return err
	}
	var descName, dynName string
	for _, m := range metas {
		if m.ID == runID {
			descName, dynName = m.Descriptor, m.Dynamics
			break
		}
	}
	if descName == "" {
		return fmt.Errorf("checkpoint %s not found", runID)
	}

	descReg := descriptor.NewRegistry()
	desc, err := descReg.Get(descName)
	if err != nil {
		return err
	}
	dynReg := dynamics.NewRegistry()
	defaultDyn, err := dynReg.Get(dynName, desc, map[string]float64{"omega": 1.0})
	if err != nil {
		return err
	}

	b, meta, err := st.Load(runID, defaultDyn)
	if err != nil {
		return err
	}
	lattice := blocklattice.New(b)
	lattice.TimeCounter().Reset(meta.Time)

	for i := 0; i < steps; i++ {
		if err := lattice.CollideAndStreamAll(); err != nil {
			return fmt.Errorf("step %d: %w", i, err)
		}
	}
	fmt.Printf("resumed %s, ran %d steps to time %d\n", runID, steps, lattice.TimeCounter().Time())
	return nil
}

func benchSimulation(cmd *cobra.Command, args []string) error {
	cfg, err := loadRunConfig()
	if err != nil {
		return err
	}
	b, _, err := buildBlock(cfg)
	if err != nil {
		return err
	}
	lattice := blocklattice.New(b)

	start := time.Now()
	for i := 0; i < steps; i++ {
		if err := lattice.CollideAndStreamAll(); err != nil {
			return err
		}
	}
	elapsed := time.Since(start)
	cells := cfg.Nx * cfg.Ny * cfg.Nz
	mlups := float64(cells*steps) / elapsed.Seconds() / 1e6
	fmt.Printf("%d steps over %d cells in %s (%.2f MLUPS)\n", steps, cells, elapsed, mlups)
	return nil
}
