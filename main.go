package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/matchup-stats/internal/config"
	"github.com/mauv0809/matchup-stats/internal/database"
	server "github.com/mauv0809/matchup-stats/internal/http"
	"github.com/mauv0809/matchup-stats/internal/metrics"
	"github.com/mauv0809/matchup-stats/internal/processor"
	"github.com/mauv0809/matchup-stats/internal/pubsub"
	"github.com/mauv0809/matchup-stats/internal/roster"
	"github.com/mauv0809/matchup-stats/internal/stats"
)

func main() {
	// Start profiling timer
	startTime := time.Now()
	log.SetFormatter(log.JSONFormatter)
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %s", err)
	}
	log.SetLevel(cfg.ParseLevel())

	db, dbTeardown, err := database.InitDB(cfg.DatabasePath(), cfg.Turso.PrimaryURL, cfg.Turso.AuthToken)
	dbInitDuration := time.Since(startTime)
	log.Info("Database initialization time recorded", "duration_ms", dbInitDuration.Milliseconds())
	if err != nil {
		log.Fatalf("Failed to initialize database: %s", err)
	}
	defer func() {
		log.Info("Closing database connection")
		dbTeardown()
	}()

	metricsSvc := metrics.NewService()
	metricsHandler := metrics.NewMetricsHandler()
	statsStore := stats.New(db, roster.NewLookup(cfg.Roster.PictureURLTemplate), metricsSvc)

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	// Pick ingestion only runs when a Pub/Sub project is configured.
	var picks server.PickHandler
	processorDone := make(chan struct{})
	if cfg.PubSub.ProjectID != "" {
		pubsubClient, err := pubsub.New(ctx, cfg.PubSub.ProjectID)
		if err != nil {
			log.Fatalf("Failed to initialize pubsub: %s", err)
		}
		defer pubsubClient.Close()

		proc := processor.New(statsStore, metricsSvc, pubsubClient)
		picks = proc
		if cfg.PubSub.Subscription != "" {
			go func() {
				defer close(processorDone)
				if err := proc.Run(ctx, cfg.PubSub.Subscription); err != nil {
					log.Error("Pick event processing failed", "error", err)
				}
			}()
		} else {
			close(processorDone)
		}
	} else {
		log.Info("No GCP project configured, pick ingestion disabled")
		close(processorDone)
	}

	s := server.NewServer(db, picks, metricsHandler, cfg.PushRateLimit)

	// --- Record startup time ---
	startupDuration := time.Since(startTime)
	metricsSvc.SetStartupTime(startupDuration.Seconds())
	log.Info("Startup time recorded", "duration_ms", startupDuration.Milliseconds(), "environment", cfg.Environment)

	// --- Graceful shutdown setup ---
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: s,
	}

	// Channel to listen for errors coming from the server
	serverErrors := make(chan error, 1)

	go func() {
		log.Info("Server started", "port", cfg.Port)
		serverErrors <- srv.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil && err != http.ErrServerClosed {
			log.Error("Server error", "error", err)
		}
	case sig := <-shutdown:
		log.Info("Shutdown signal received", "signal", sig)

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error("Server shutdown failed", "error", err)
		} else {
			log.Info("Server gracefully stopped")
		}
	}

	stop()
	<-processorDone
	log.Info("Server process shutting down")
}
