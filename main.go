package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"benefits-advisor-core/config"
	"benefits-advisor-core/db"
	fixtures "benefits-advisor-core/db/fixtures"
	"benefits-advisor-core/server"
	metric "benefits-advisor-core/svc/metrics"
	"benefits-advisor-core/svc/models"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	metric.Init()

	var bank []*models.QuestionSpec
	if cfg.App.QuestionBankPath != "" {
		bank, err = fixtures.ImportQuestionBankFile(cfg.App.QuestionBankPath)
		if err != nil {
			log.Fatalf("Failed to load question bank %s: %v", cfg.App.QuestionBankPath, err)
		}
		log.Printf("Loaded question bank overlay from %s (%d questions)", cfg.App.QuestionBankPath, len(bank))
	}

	kvStore := db.NewKeyValueStore()
	srv, wg, port := server.RunServer(kvStore, server.Options{
		Bank:               bank,
		OpenAIKey:          cfg.OpenAI.APIKey,
		MaxRecommendations: cfg.App.MaxRecommendations,
	}, cfg.Server.Port)
	log.Printf("%s %s listening on port %s (%s)", cfg.App.Name, cfg.App.Version, port, cfg.App.Environment)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Printf("Shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("Shutdown error: %v", err)
	}
	wg.Wait()
}
