package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/napolitain/ageofwar/internal/config"
	"github.com/napolitain/ageofwar/internal/logging"
	"github.com/napolitain/ageofwar/internal/server"
	"github.com/napolitain/ageofwar/internal/solver/arrangement"
)

var (
	configFile string
	port       int
	verbose    bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "server",
		Short: "Age of War battle solver HTTP API",
		Long: `Serves POST /api/battle, GET /api/advantages and GET /api/health
until interrupted.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runServer,
	}

	rootCmd.Flags().StringVarP(&configFile, "config", "c", "", "Path to TOML config file")
	rootCmd.Flags().IntVarP(&port, "port", "p", 0, "Listen port (overrides config)")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Debug logging")

	if err := rootCmd.Execute(); err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configFile)
	if err != nil {
		return err
	}
	if port != 0 {
		cfg.Server.Port = port
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err := logging.New(cfg.Log, verbose)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	l, err := net.Listen("tcp", fmt.Sprintf(":%d", cfg.Server.Port))
	if err != nil {
		return fmt.Errorf("listen on port %d: %w", cfg.Server.Port, err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := serve(ctx, cfg, logger, l); err != nil {
		logger.Error("server exited with error", zap.Error(err))
		return err
	}
	logger.Info("server stopped")
	return nil
}

// serve runs the API on l until ctx is cancelled, then shuts down within
// the configured timeout.
func serve(ctx context.Context, cfg *config.Config, logger *zap.Logger, l net.Listener) error {
	solver := arrangement.NewSolver(arrangement.WithLogger(logger))
	srv := server.New(cfg.Server, solver, logger)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return srv.Serve(l)
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout.Duration)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
