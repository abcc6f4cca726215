package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ignite/marketing-iq/internal/agent"
	"github.com/ignite/marketing-iq/internal/alerts"
	"github.com/ignite/marketing-iq/internal/api"
	"github.com/ignite/marketing-iq/internal/config"
	"github.com/ignite/marketing-iq/internal/repository/postgres"
	"github.com/ignite/marketing-iq/internal/storage"
	"github.com/redis/go-redis/v9"
)

func main() {
	log.Println("Marketing IQ server starting")

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/config.yaml"
	}
	cfg, err := config.LoadFromEnv(configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	var orgs *postgres.OrganizationRepo
	var campaigns *postgres.CampaignRepo
	var channels *postgres.ChannelRepo
	if cfg.Database.URL != "" {
		db, err := postgres.Open(cfg.Database.URL)
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		defer db.Close()
		orgs = postgres.NewOrganizationRepo(db)
		campaigns = postgres.NewCampaignRepo(db)
		channels = postgres.NewChannelRepo(db)
		log.Println("PostgreSQL connected")
	} else {
		log.Println("DATABASE_URL not set; CRUD and context endpoints disabled")
	}

	var sessions *storage.SessionStore
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Printf("Warning: Redis connection failed (%s): %v; session state disabled", cfg.Redis.Addr, err)
		redisClient.Close()
	} else {
		sessions = storage.NewSessionStore(redisClient)
		defer redisClient.Close()
		log.Printf("Redis connected: %s", cfg.Redis.Addr)
	}
	cancel()

	handlers := api.NewHandlers(orgs, campaigns, channels, sessions)
	handlers.SetChannelTargets(cfg.Scoring.TargetROAS, cfg.Scoring.TargetROI, cfg.Scoring.TargetCPA, cfg.Scoring.AverageCLV)
	handlers.SetAlertThresholds(alerts.Thresholds{
		ROASCritical:    cfg.Alerts.ROASCritical,
		ROASWarning:     cfg.Alerts.ROASWarning,
		ROICritical:     cfg.Alerts.ROICritical,
		ROIWarning:      cfg.Alerts.ROIWarning,
		UtilizationLow:  cfg.Alerts.UtilizationLow,
		UtilizationHigh: cfg.Alerts.UtilizationHigh,
	})

	if cfg.OpenAI.Enabled && cfg.OpenAI.APIKey != "" {
		client := agent.NewClient(cfg.OpenAI.APIKey, cfg.OpenAI.Model)
		handlers.SetChatEngine(agent.NewEngine(client))
		log.Printf("Chat assistant enabled (model: %s)", cfg.OpenAI.Model)
	} else {
		log.Println("Chat assistant disabled (no OpenAI API key)")
	}

	server := api.NewServer(handlers)
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)

	errCh := make(chan error, 1)
	go func() {
		log.Printf("Listening on %s", addr)
		errCh <- server.ListenAndServe(addr)
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		log.Fatalf("Server error: %v", err)
	case sig := <-stop:
		log.Printf("Received %v, shutting down", sig)
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Graceful shutdown failed: %v", err)
	}
	log.Println("Server stopped")
}
