package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/filamvp/card-tracker/internal/api"
	"github.com/filamvp/card-tracker/internal/config"
	"github.com/filamvp/card-tracker/internal/engine"
	"github.com/filamvp/card-tracker/internal/extract"
	"github.com/filamvp/card-tracker/internal/ingest"
	"github.com/filamvp/card-tracker/internal/store"
	"github.com/filamvp/card-tracker/pkg/logger"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server and image queue scheduler",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	log := logger.New(cfg.Logging.Level, cfg.Logging.Format)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	st, err := store.NewPostgresStore(ctx, cfg.Database.DSN())
	cancel()
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	defer st.Close()

	importer := ingest.NewImporter(st, logger.Component(log, "import"))

	limiter := extract.NewRateLimiter(
		cfg.Vision.RateLimit.PerSecond,
		cfg.Vision.RateLimit.Burst,
		cfg.Vision.RateLimit.DailyLimit,
	)

	e := api.NewRouter(api.Deps{
		Store:    st,
		Importer: importer,
		Limiter:  limiter,
		Log:      logger.Component(log, "http"),
		USDRate:  cfg.Export.EURToUSDRate,
	})
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	var scheduler *engine.Scheduler
	if cfg.Queue.Enabled {
		extractor := extract.NewOpenAIVision(
			cfg.Vision.Endpoint,
			cfg.Vision.Model,
			extract.WithHTTPClient(&http.Client{Timeout: cfg.Vision.Timeout}),
		)
		eng := engine.NewEngine(st, extractor, limiter,
			engine.WithLogger(logger.Component(log, "engine")),
			engine.WithBatchSize(cfg.Queue.BatchSize),
			engine.WithImageURLResolver(cfg.Storage.PublicURL),
		)

		scheduler, err = engine.NewScheduler(eng, cfg.Queue.Interval, logger.Component(log, "scheduler"))
		if err != nil {
			return fmt.Errorf("creating scheduler: %w", err)
		}
		scheduler.Start()
	}

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	log.Info("starting server", "addr", addr, "queue_enabled", cfg.Queue.Enabled)

	go func() {
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down")

	if scheduler != nil {
		// Let any in-flight queue cycle finish.
		<-scheduler.Stop().Done()
	}

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()

	if err := e.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down server: %w", err)
	}

	log.Info("server stopped")
	return nil
}
