package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/akangshyya/image-descriptor/internal/api"
	"github.com/akangshyya/image-descriptor/internal/audio"
	"github.com/akangshyya/image-descriptor/internal/config"
	"github.com/akangshyya/image-descriptor/internal/ingest"
	"github.com/akangshyya/image-descriptor/internal/language"
	"github.com/akangshyya/image-descriptor/internal/narrate"
)

func main() {
	base, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	logger := base.Sugar()
	defer func() { _ = logger.Sync() }()

	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		logger.Infow("no .env file found, using system environment variables")
	}

	cfg := config.Load()

	catalog := language.NewCatalog(nil)
	player := audio.NewExecPlayer(cfg.PlayerCmd)
	synth := audio.NewHTTPSynthesizer(cfg.TTSURL, cfg.TTSAPIKey, cfg.AudioTempDir, player, logger)
	engine := audio.NewPlaybackEngine(cfg.AudioTempDir, player, synth, logger)
	controller := narrate.NewController(catalog, engine, cfg.Intermission, cfg.PreferRendered, logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)

	if cfg.RabbitMQURL != "" {
		consumer, err := ingest.NewConsumer(cfg.RabbitMQURL, cfg.AnalysisQueue, logger)
		if err != nil {
			logger.Fatalw("failed to connect to broker", "error", err)
		}
		defer consumer.Close()

		go func() {
			if err := consumer.Run(ctx, controller, catalog.Languages()); err != nil && ctx.Err() == nil {
				logger.Errorw("analysis consumer stopped", "error", err)
			}
		}()
	}

	handler := api.NewHandler(controller, catalog, logger)
	server := &http.Server{
		Addr:    cfg.Addr,
		Handler: handler.Router(),
	}

	go func() {
		logger.Infow("narration engine listening", "addr", cfg.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalw("server failed", "error", err)
		}
	}()

	<-signals
	logger.Infow("shutdown signal received")
	cancel()
	controller.Stop()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Errorw("server shutdown failed", "error", err)
	}
	logger.Infow("narration engine stopped")
}
