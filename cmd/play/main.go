package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/napolitain/ageofwar/internal/config"
	"github.com/napolitain/ageofwar/internal/loader"
	"github.com/napolitain/ageofwar/internal/logging"
	"github.com/napolitain/ageofwar/internal/solver/arrangement"
	"github.com/napolitain/ageofwar/internal/tui"
)

var (
	configFile string
	scenario   string
	verbose    bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "play",
		Short: "Interactive Age of War battle planner",
		Long: `Enter both armies, press Enter, and watch the winning arrangement
fight the enemy one engagement at a time.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runPlay,
	}

	rootCmd.Flags().StringVarP(&configFile, "config", "c", "", "Path to TOML config file")
	rootCmd.Flags().StringVarP(&scenario, "scenario", "s", "", "Prefill the form from a YAML or JSON scenario")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Debug logging")

	if err := rootCmd.Execute(); err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configFile)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	// The TUI owns the terminal, so only warnings reach stderr unless asked
	logCfg := cfg.Log
	if !verbose {
		logCfg.Level = "warn"
	}
	logger, err := logging.New(logCfg, verbose)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	opts := []tui.Option{tui.WithLogger(logger)}
	if scenario != "" {
		sc, err := loader.LoadScenario(scenario)
		if err != nil {
			return err
		}
		opts = append(opts, tui.WithArmies(sc.You, sc.Enemy))
	}

	solver := arrangement.NewSolver(arrangement.WithLogger(logger))
	m := tui.New(cfg.Play, solver, opts...)
	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("planner: %w", err)
	}
	return nil
}
