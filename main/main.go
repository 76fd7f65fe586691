package main

import (
	"context"
	"evogamesim/interfaces"
	"evogamesim/sweep"
	"evogamesim/util/file"
	"evogamesim/util/logger"
	"evogamesim/util/metrics"
	"evogamesim/util/stats"
	"evogamesim/util/validation"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
)

var version = "0.1.0-dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "evogamesim",
		Short: "Evolutionary game dynamics on networks",
		Long: `evogamesim plays two-strategy games on a network and lets the nodes revise
their strategy every round with one of several update rules.

It sweeps the configured game families, averages the cooperation reached
over independent repetitions and writes the curves as JSON and CSV.`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().String("config", "config.yml", "Path of the yaml config, defaults are used if it does not exist")
	rootCmd.PersistentFlags().Uint64("seed", 0, "Override the configured seed")

	rootCmd.AddCommand(
		newVersionCmd(),
		newRunCmd(),
		newSimulateCmd(),
		newFamiliesCmd(),
	)
	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "evogamesim version %s\n", version)
		},
	}
}

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Sweep every configured family with every configured rule",
		Long: `Runs the full experiment once per seed, starting at the configured seed.
Results of seed s are written to <outPath>/<s>/results.json and results.csv,
together with log.txt, audit.csv (auditRounds) and metrics.json (useMetrics).`,
		RunE: func(cmd *cobra.Command, args []string) error {
			runs, _ := cmd.Flags().GetInt("runs")
			if runs < 1 {
				return fmt.Errorf("%w: runs should be at least 1, got %v", interfaces.ErrInvalidConfig, runs)
			}
			config, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			initialSeed := config.Seed()
			for seed := initialSeed; seed < initialSeed+uint64(runs); seed++ {
				config.CSeed = seed
				if err := runSeed(ctx, config); err != nil {
					return fmt.Errorf("seed %v: %w", seed, err)
				}
			}
			return nil
		},
	}

	cmd.Flags().Int("runs", 1, "Number of seeds to run, one after another")
	return cmd
}

func runSeed(ctx context.Context, config *file.Config) error {
	exp, closeOutput, err := openExperiment(config)
	if err != nil {
		return err
	}
	defer closeOutput()

	exp.log.Info("experiment started", "seed", config.Seed(), "families", config.Families(), "rules", config.Rules(), "points", config.Points(), "repetitions", config.Repetitions(), "workers", config.Workers())
	overview, err := exp.run(ctx)
	if err != nil {
		if ctx.Err() != nil {
			exp.log.Warn("sim interrupted")
		}
		return err
	}

	if err := writeOutput(config, file.ResultsFile, func(w io.Writer) error { return stats.PrintOverview(overview, w) }); err != nil {
		return err
	}
	if err := writeOutput(config, file.ResultsCsvFile, func(w io.Writer) error { return stats.PrintCsv(overview, w) }); err != nil {
		return err
	}
	if config.UseMetrics() {
		if err := writeMetrics(config, exp.metrics); err != nil {
			return err
		}
	}
	exp.log.Info("experiment finished", "id", overview.ExperimentId, "curves", len(overview.Curves))
	return nil
}

func newSimulateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Run and record a single trajectory at one game point",
		Long: `Runs one trajectory of the given rule at (T,S) on the configured network and
records the fraction of A after every round. The result is printed and written
to <outPath>/<seed>/trajectory.json.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			t, _ := cmd.Flags().GetFloat64("t")
			s, _ := cmd.Flags().GetFloat64("s")
			ruleName, _ := cmd.Flags().GetString("rule")
			config, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			exp, closeOutput, err := openExperiment(config)
			if err != nil {
				return err
			}
			defer closeOutput()

			trajectory, err := exp.simulate(interfaces.RuleKind(ruleName), interfaces.GamePoint{T: t, S: s})
			if err != nil {
				return err
			}
			if err := writeOutput(config, file.TrajectoryFile, func(w io.Writer) error { return stats.PrintTrajectory(trajectory, w) }); err != nil {
				return err
			}
			if config.UseMetrics() {
				if err := writeMetrics(config, exp.metrics); err != nil {
					return err
				}
			}
			if err := stats.PrintTrajectory(trajectory, cmd.OutOrStdout()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout())
			return nil
		},
	}

	cmd.Flags().Float64("t", 1.5, "Temptation T")
	cmd.Flags().Float64("s", 0, "Sucker's payoff S")
	cmd.Flags().String("rule", string(interfaces.RULE_REPLICATOR), "Update rule")
	return cmd
}

func newFamiliesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "families",
		Short: "Print the game points of the configured families",
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%v ; %v ; %v ; %v\n", "family", "index", "t", "s")
			for _, kind := range config.Families() {
				family, err := sweep.Generate(kind, config.Points())
				if err != nil {
					return err
				}
				for i, point := range family.Points() {
					fmt.Fprintf(out, "%v ; %v ; %v ; %v\n", kind, i, point.T, point.S)
				}
			}
			return nil
		},
	}
}

// loadConfig reads the config flag, falling back to the defaults when the default file is missing.
func loadConfig(cmd *cobra.Command) (*file.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	var config *file.Config
	if !file.FileExists(path) && !cmd.Flags().Changed("config") {
		config = file.DefaultConfig()
	} else {
		loaded, err := file.LoadConfig(path)
		if err != nil {
			return nil, err
		}
		config = loaded
	}
	if cmd.Flags().Changed("seed") {
		config.CSeed, _ = cmd.Flags().GetUint64("seed")
	}
	if err := validation.ValidateConfig(config); err != nil {
		return nil, err
	}
	return config, nil
}

// openExperiment creates log.txt and, if enabled, audit.csv of the current seed.
func openExperiment(config *file.Config) (*experiment, func(), error) {
	loggerFile, err := file.LoggerFile(config)
	if err != nil {
		return nil, nil, fmt.Errorf("creating log file: %w", err)
	}
	exp := &experiment{
		config:  config,
		log:     logger.NewSlog(logger.NewLogger(loggerFile, config.PrintLogToConsole()), config.LogLevel()),
		metrics: metrics.NewRecorder(config.UseMetrics()),
	}

	var auditLoggerFile *os.File
	if config.AuditRounds() {
		auditLoggerFile, err = file.AuditLoggerFile(config)
		if err != nil {
			_ = loggerFile.Close()
			return nil, nil, fmt.Errorf("creating audit file: %w", err)
		}
		exp.audit = logger.NewAuditLogger(auditLoggerFile, false)
	}

	return exp, func() {
		_ = loggerFile.Close()
		if auditLoggerFile != nil {
			_ = auditLoggerFile.Close()
		}
	}, nil
}

func writeOutput(config interfaces.IConfig, open func(interfaces.IConfig) (*os.File, error), write func(io.Writer) error) error {
	f, err := open(config)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	defer f.Close()
	return write(f)
}

func writeMetrics(config interfaces.IConfig, recorder *metrics.Recorder) error {
	return writeOutput(config, file.MetricsFile, func(w io.Writer) error {
		recorder.WriteToFile(w)
		return nil
	})
}
