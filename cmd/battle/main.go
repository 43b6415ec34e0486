package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/napolitain/ageofwar/internal/config"
	"github.com/napolitain/ageofwar/internal/loader"
	"github.com/napolitain/ageofwar/internal/logging"
	"github.com/napolitain/ageofwar/internal/models"
	"github.com/napolitain/ageofwar/internal/muster"
	"github.com/napolitain/ageofwar/internal/report"
	"github.com/napolitain/ageofwar/internal/solver/arrangement"
)

var errNoArmies = errors.New("no armies given: use --you and --enemy, or --scenario")

type options struct {
	you        map[string]int
	enemy      map[string]int
	scenario   string
	all        bool
	delay      time.Duration
	configFile string
	quiet      bool
	verbose    bool
}

func main() {
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd(out io.Writer) *cobra.Command {
	opts := &options{}
	var logger *zap.Logger

	rootCmd := &cobra.Command{
		Use:   "battle",
		Short: "Age of War battle arrangement solver",
		Long: `Finds an ordering of your five platoons that wins at least three of
the five position-wise engagements against the enemy's side.`,
		Example: `  battle --you militia=60,spearmen=30,light_cavalry=100,foot_archer=20,heavy_cavalry=50 \
         --enemy spearmen=10,light_cavalry=20,foot_archer=90,heavy_cavalry=50,cavalry_archer=80
  battle --scenario skirmish.yaml --all`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(opts.configFile)
			if err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			logger, err = logging.New(cfg.Log, opts.verbose)
			return err
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBattle(opts, logger, out)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&opts.configFile, "config", "c", "", "Path to TOML config file")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Debug logging")

	rootCmd.Flags().StringToIntVar(&opts.you, "you", nil, "Your army as unit=count pairs")
	rootCmd.Flags().StringToIntVar(&opts.enemy, "enemy", nil, "Enemy army as unit=count pairs")
	rootCmd.Flags().StringVarP(&opts.scenario, "scenario", "s", "", "Path to YAML or JSON scenario file")
	rootCmd.Flags().BoolVarP(&opts.all, "all", "a", false, "List every winning arrangement")
	rootCmd.Flags().DurationVar(&opts.delay, "delay", 0, "Pause between battle log lines (e.g. 1s)")
	rootCmd.Flags().BoolVarP(&opts.quiet, "quiet", "q", false, "Minimal output")

	rootCmd.AddCommand(&cobra.Command{
		Use:   "advantages",
		Short: "Show which unit types beat which",
		Run: func(cmd *cobra.Command, args []string) {
			report.NewPrinter(out).Advantages()
		},
	})

	return rootCmd
}

// armies resolves both armies from the scenario file and the flags.
// Flags replace the scenario's army for the side they name.
func (o *options) armies() (you, enemy models.Army, err error) {
	var youSet, enemySet bool
	if o.scenario != "" {
		sc, err := loader.LoadScenario(o.scenario)
		if err != nil {
			return models.Army{}, models.Army{}, err
		}
		you, enemy = sc.You, sc.Enemy
		youSet, enemySet = true, true
	}
	if len(o.you) > 0 {
		if you, err = models.ArmyFromCounts(o.you); err != nil {
			return models.Army{}, models.Army{}, fmt.Errorf("--you: %w", err)
		}
		youSet = true
	}
	if len(o.enemy) > 0 {
		if enemy, err = models.ArmyFromCounts(o.enemy); err != nil {
			return models.Army{}, models.Army{}, fmt.Errorf("--enemy: %w", err)
		}
		enemySet = true
	}
	if !youSet || !enemySet {
		return models.Army{}, models.Army{}, errNoArmies
	}
	return you, enemy, nil
}

func runBattle(opts *options, logger *zap.Logger, out io.Writer) error {
	if logger == nil {
		logger = zap.NewNop()
	}
	you, enemy, err := opts.armies()
	if err != nil {
		return err
	}

	p := report.NewPrinter(out, report.WithDelay(opts.delay))
	if !opts.quiet {
		p.Banner()
		p.Army("Your army", you)
		p.Army("Enemy army", enemy)
	}

	youSide, err := muster.Muster(you)
	if err != nil {
		return fmt.Errorf("your army: %w", err)
	}
	enemySide, err := muster.Muster(enemy)
	if err != nil {
		return fmt.Errorf("enemy army: %w", err)
	}
	if !opts.quiet {
		p.Dropped("You", muster.Dropped(you))
		p.Dropped("Enemy", muster.Dropped(enemy))
	}

	solver := arrangement.NewSolver(arrangement.WithLogger(logger))
	sol, found := solver.FindWinningArrangement(youSide, enemySide)
	logger.Debug("search finished", zap.Bool("found", found))
	if !found {
		p.NoChance()
		return nil
	}

	if opts.quiet {
		fmt.Fprintln(out, sol.Arrangement)
		p.Verdict(sol.Report)
		return nil
	}

	p.Solution(sol)
	if opts.all {
		p.Alternatives(slices.Collect(solver.WinningArrangements(youSide, enemySide)))
	}
	return nil
}
