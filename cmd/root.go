package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	sim "github.com/inference-sim/intake-sim/sim"
	"github.com/inference-sim/intake-sim/sim/workload"
)

var (
	// CLI flags shared by run and interactive
	configPath       string  // Path to a YAML SimConfig
	workloadSpecPath string  // Path to a YAML WorkloadSpec
	scenario         string  // Built-in workload preset
	seed             int64   // Master seed for capacity draws and patient generation
	horizon          int64   // Tick limit (0 = run until drained)
	maxWait          int64   // Expiry threshold in ticks
	capacityPolicy   string  // Per-tick capacity policy name
	capacityMin      int     // Lower bound (or fixed slot count) of per-tick capacity
	capacityMax      int     // Upper bound of per-tick capacity
	initialPatients  int     // Patients generated at tick 0
	urgentFraction   float64 // Probability a generated patient is Urgent
	traceLevel       string  // Decision trace verbosity
	logLevel         string  // Log verbosity level

	// CLI flags for run only
	resultsPath string // File to save results JSON
	showQueues  bool   // Print queue contents after every tick
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "intake-sim",
	Short: "Discrete-tick simulator for a two-class clinic intake queue",
}

// runCmd executes a batch simulation from configs and CLI flags
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the intake simulation until the queues drain",
	Run: func(cmd *cobra.Command, args []string) {
		setupLogging()
		if err := runSimulation(cmd, cmd.OutOrStdout()); err != nil {
			logrus.Fatalf("%v", err)
		}
		logrus.Info("Simulation complete.")
	},
}

// setupLogging applies --log. Invalid levels are fatal.
func setupLogging() {
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		logrus.Fatalf("Invalid log level: %s", logLevel)
	}
	logrus.SetLevel(level)
}

// resolveConfig loads --config (or the defaults) and applies the flags the
// user actually set on top of it.
func resolveConfig(cmd *cobra.Command) (*sim.SimConfig, error) {
	cfg := sim.DefaultSimConfig()
	if configPath != "" {
		loaded, err := sim.LoadSimConfig(configPath)
		if err != nil {
			return nil, err
		}
		cfg = *loaded
	}
	flags := cmd.Flags()
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if flags.Changed("horizon") {
		cfg.Horizon = horizon
	}
	if flags.Changed("max-wait") {
		cfg.MaxWaitTicks = maxWait
	}
	if flags.Changed("capacity-policy") {
		cfg.Capacity.Policy = capacityPolicy
	}
	if flags.Changed("capacity-min") {
		cfg.Capacity.Min = capacityMin
	}
	if flags.Changed("capacity-max") {
		cfg.Capacity.Max = capacityMax
	}
	if flags.Changed("trace-level") {
		cfg.Trace = traceLevel
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid sim config: %w", err)
	}
	return &cfg, nil
}

// resolveWorkload loads --scenario or --workload-spec (or the defaults) and
// applies the workload flags the user set.
func resolveWorkload(cmd *cobra.Command) (*workload.WorkloadSpec, error) {
	spec := workload.DefaultWorkloadSpec()
	if scenario != "" && workloadSpecPath != "" {
		return nil, fmt.Errorf("--scenario and --workload-spec are mutually exclusive")
	}
	if scenario != "" {
		preset, err := workload.ScenarioByName(scenario)
		if err != nil {
			return nil, err
		}
		spec = preset
	}
	if workloadSpecPath != "" {
		loaded, err := workload.LoadWorkloadSpec(workloadSpecPath)
		if err != nil {
			return nil, err
		}
		spec = loaded
	}
	if cmd.Flags().Changed("initial-patients") {
		spec.InitialPatients = initialPatients
	}
	if cmd.Flags().Changed("urgent-fraction") {
		spec.UrgentFraction = urgentFraction
	}
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("invalid workload spec: %w", err)
	}
	return spec, nil
}

// buildSimulator wires the resolved config and workload into a Simulator.
// The workload generator draws from its own RNG subsystem so capacity draws
// never perturb the patient stream.
func buildSimulator(cmd *cobra.Command) (*sim.Simulator, *sim.SimConfig, error) {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return nil, nil, err
	}
	spec, err := resolveWorkload(cmd)
	if err != nil {
		return nil, nil, err
	}
	if spec.Unbounded() && cfg.Horizon == 0 {
		return nil, nil, fmt.Errorf("workload waves have no arrival_window; set --horizon or arrival_window so the run terminates")
	}
	rng := sim.NewPartitionedRNG(sim.NewSimulationKey(cfg.Seed))
	gen, err := workload.NewGenerator(spec, rng.ForSubsystem(sim.SubsystemWorkload))
	if err != nil {
		return nil, nil, err
	}
	s, err := sim.NewSimulator(*cfg, gen)
	if err != nil {
		return nil, nil, err
	}
	return s, cfg, nil
}

// runSimulation is the body of `intake-sim run`.
func runSimulation(cmd *cobra.Command, out io.Writer) error {
	s, cfg, err := buildSimulator(cmd)
	if err != nil {
		return err
	}
	logrus.Infof("Starting simulation: seed=%d, capacity=%s[%d,%d], max wait=%d ticks",
		cfg.Seed, cfg.Capacity.Policy, cfg.Capacity.Min, cfg.Capacity.Max, cfg.MaxWaitTicks)
	if showQueues {
		s.OnTick = func(res sim.TickResult) {
			fmt.Fprintf(out, "\n--- Tick %d (capacity %d) ---", res.Tick, res.Capacity)
			sim.PrintQueues(out, s.Scheduler.Inspect())
		}
	}

	startTime := time.Now()
	s.Run()
	logrus.Infof("Simulated %d ticks in %s", s.Clock, time.Since(startTime))

	res := s.Results(cfg.Seed)
	sim.PrintSummary(out, res.Summary)
	sim.PrintTraceSummary(out, res.TraceSummary)
	if resultsPath != "" {
		if err := sim.SaveResults(resultsPath, res); err != nil {
			return err
		}
	}
	return nil
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// registerSimFlags binds the flags shared by run and interactive to c.
func registerSimFlags(c *cobra.Command) {
	c.Flags().StringVar(&configPath, "config", "", "Path to a YAML sim config")
	c.Flags().StringVar(&workloadSpecPath, "workload-spec", "", "Path to a YAML workload spec")
	c.Flags().StringVar(&scenario, "scenario", "", "Built-in workload preset ("+strings.Join(workload.ScenarioNames(), ", ")+")")
	c.Flags().Int64Var(&seed, "seed", 42, "Seed for capacity draws and patient generation")
	c.Flags().Int64Var(&horizon, "horizon", 0, "Tick limit (0 = run until drained)")
	c.Flags().Int64Var(&maxWait, "max-wait", sim.DefaultMaxWait, "Ticks a patient may wait before expiring")
	c.Flags().StringVar(&capacityPolicy, "capacity-policy", "uniform", "Per-tick capacity policy (uniform, fixed)")
	c.Flags().IntVar(&capacityMin, "capacity-min", 5, "Minimum per-tick capacity (slot count for fixed)")
	c.Flags().IntVar(&capacityMax, "capacity-max", 10, "Maximum per-tick capacity")
	c.Flags().IntVar(&initialPatients, "initial-patients", 100, "Patients generated at tick 0")
	c.Flags().Float64Var(&urgentFraction, "urgent-fraction", 0.5, "Probability a generated patient is Urgent")
	c.Flags().StringVar(&traceLevel, "trace-level", "none", "Decision trace level (none, decisions)")
	c.Flags().StringVar(&logLevel, "log", "warn", "Log level (trace, debug, info, warn, error, fatal, panic)")
}

// registerRunFlags binds the batch-only output flags to c.
func registerRunFlags(c *cobra.Command) {
	c.Flags().StringVar(&resultsPath, "results-path", "", "File to save results JSON")
	c.Flags().BoolVar(&showQueues, "show-queues", false, "Print queue contents after every tick")
}

// init sets up CLI flags and subcommands
func init() {
	registerSimFlags(runCmd)
	registerRunFlags(runCmd)

	registerSimFlags(interactiveCmd)

	// Attach `run` and `interactive` as subcommands to `root`
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(interactiveCmd)
}
