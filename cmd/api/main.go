package main

import (
	"context"
	"log"

	"smartats-backend/internal/analyses"
	"smartats-backend/internal/llm/gemini"
	"smartats-backend/internal/shared/config"
	"smartats-backend/internal/shared/server"
	"smartats-backend/internal/shared/storage/db"
)

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	ctx := context.Background()

	client, err := gemini.NewClient(ctx, cfg.GoogleAPIKey, cfg.GeminiModel)
	if err != nil {
		log.Fatalf("gemini client: %v", err)
	}
	defer client.Close()

	var repo analyses.Repo
	if cfg.DatabaseURL != "" {
		sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, db.OptionsFromEnv(db.DefaultServerOptions()))
		if err != nil {
			log.Fatalf("connect database: %v", err)
		}
		defer sqlDB.Close()

		if err := db.RunMigrations(ctx, sqlDB); err != nil {
			log.Fatalf("run migrations: %v", err)
		}
		repo = &analyses.PGRepo{DB: sqlDB}
	} else {
		log.Printf("DATABASE_URL not set, using in-memory store")
		repo = analyses.NewMemoryRepo()
	}

	svc := &analyses.Service{
		Repo:     repo,
		LLM:      client,
		Provider: "gemini",
		Model:    cfg.GeminiModel,
	}

	r := server.NewRouter(server.RouterDeps{
		Config:          cfg,
		AnalysisHandler: analyses.NewHandler(svc, cfg.MaxUploadBytes),
	})

	addr := server.Addr(cfg.Port)
	log.Printf("Starting API server on %s", addr)

	if err := r.Run(addr); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
