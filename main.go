package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"go.uber.org/zap"

	"github.com/Zachkp/portfolio-widgets/internal/config"
	"github.com/Zachkp/portfolio-widgets/internal/logging"
	"github.com/Zachkp/portfolio-widgets/internal/preview"
	"github.com/Zachkp/portfolio-widgets/internal/skills"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger, err := logging.NewLogger(cfg.Log.Level, cfg.Log.File)
	if err != nil {
		panic(err)
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Fatal("Preview server failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config.Config, logger *zap.Logger) error {
	table, err := preview.LoadTable(ctx, cfg.Skills, logger)
	if err != nil {
		return err
	}

	renderer := &skills.Renderer{
		Table:        table,
		Selector:     cfg.Skills.Selector,
		AnimateDelay: cfg.Skills.AnimateDelay,
		Logger:       logger,
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           preview.NewServer(cfg.Server.SiteDir, renderer, logger).Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Preview server listening",
			zap.String("addr", srv.Addr),
			zap.String("site", cfg.Server.SiteDir),
			zap.Int("skills", table.Len()))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		logger.Info("Shutting down preview server")
		return srv.Shutdown(shutdownCtx)
	}
}
