// Command x12d runs the X12 translation daemon: an HTTP server exposing
// the translate and transaction log APIs.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirosfoundation/go-x12/internal/config"
	"github.com/sirosfoundation/go-x12/internal/server"
	"github.com/sirosfoundation/go-x12/internal/storage"
	"github.com/sirosfoundation/go-x12/internal/storage/memory"
	"github.com/sirosfoundation/go-x12/internal/storage/mongodb"
	"github.com/sirosfoundation/go-x12/pkg/translate"
	"github.com/sirosfoundation/go-x12/pkg/x12"
)

func main() {
	var (
		configPath = flag.String("config", "", "path to YAML configuration file")
		debug      = flag.Bool("debug", false, "enable debug logging")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	if err := run(*configPath, logger); err != nil {
		logger.Error("daemon exited", "error", err)
		os.Exit(1)
	}
}

func run(configPath string, logger *slog.Logger) error {
	cfg := config.Default()
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	store, err := newStore(ctx, cfg)
	cancel()
	if err != nil {
		return fmt.Errorf("initializing storage: %w", err)
	}

	svc := translate.NewService(store, logger, serviceOptions(cfg)...)
	srv := server.New(cfg, svc, store, logger)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start(fmt.Sprintf(":%d", cfg.Server.Port))
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-sigCh:
		logger.Info("shutting down", "signal", sig.String())
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		return srv.Shutdown(ctx)
	}
}

func newStore(ctx context.Context, cfg *config.Config) (storage.TransactionStore, error) {
	switch cfg.Storage.Type {
	case config.StorageMongoDB:
		return mongodb.NewStore(ctx, &mongodb.Config{
			URI:        cfg.Storage.MongoDB.URI,
			Database:   cfg.Storage.MongoDB.Database,
			Collection: cfg.Storage.MongoDB.Collection,
		})
	default:
		return memory.NewStore(), nil
	}
}

func serviceOptions(cfg *config.Config) []translate.Option {
	x12opts := []x12.Option{x12.WithUsage(cfg.Translation.Usage)}
	if cfg.Translation.ControlStart > 0 {
		x12opts = append(x12opts, x12.WithControls(x12.NewSequentialControls(cfg.Translation.ControlStart)))
	}

	opts := []translate.Option{translate.WithBuilderOptions(x12opts...)}
	if cfg.Translation.Usage == x12.UsageProduction {
		opts = append(opts, translate.WithStream(storage.StreamProduction))
	}
	return opts
}
