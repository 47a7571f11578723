package main

import (
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"docsage/internal/auth/jwtverifier"
	"docsage/internal/config"
	"docsage/internal/export"
	"docsage/internal/handler"
	"docsage/internal/llm/mistral"
	"docsage/internal/metrics"
	"docsage/internal/port"
	"docsage/internal/repository/postgres"
	"docsage/internal/repository/rediscache"
	"docsage/internal/router"
	"docsage/internal/service"
	s3text "docsage/internal/textsource/s3"
)

// @title DocSage API
// @version 1.0
// @description Document question answering and adaptive structured extraction service.
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	m := metrics.New()

	// Initialize repositories
	var convRepo port.ConversationRepository = postgres.NewConversationRepo(db)
	jobRepo := postgres.NewExtractionJobRepo(db)

	// Layer the Redis read-through cache when enabled; the service runs fine
	// on postgres alone.
	var rdb *redis.Client
	if cfg.Redis.Enabled {
		rdb, err = rediscache.NewClient(cfg.Redis)
		if err != nil {
			return fmt.Errorf("failed to connect to redis: %w", err)
		}
		defer rdb.Close()
		convRepo = rediscache.Wrap(rdb, convRepo, cfg.Redis.CacheTTL)
	}

	// Initialize document text store
	texts, err := s3text.NewTextProvider(&cfg.S3)
	if err != nil {
		return fmt.Errorf("failed to initialize S3 text store: %w", err)
	}

	// Initialize LLM client
	completions := mistral.NewClient(&cfg.LLM)

	// Initialize services
	askSvc := service.NewAskService(convRepo, texts, completions, m)
	extractionSvc := service.NewExtractionService(
		jobRepo, texts, completions, m,
		time.Duration(cfg.Extraction.TimeoutSecs)*time.Second,
		cfg.Extraction.MaxConcurrent,
	)
	documentSvc := service.NewDocumentService(texts)
	exportSvc := export.NewService(convRepo, jobRepo)

	// Initialize handlers
	askH := handler.NewAskHandler(askSvc)
	extractionH := handler.NewExtractionHandler(extractionSvc)
	conversationH := handler.NewConversationHandler(askSvc)
	documentH := handler.NewDocumentHandler(documentSvc)
	exportH := handler.NewExportHandler(exportSvc)
	healthH := handler.NewHealthHandler(db, rdb)

	verifier := jwtverifier.New(&cfg.Auth)

	// Setup router
	r := router.Setup(cfg, verifier, m, askH, extractionH, conversationH, documentH, exportH, healthH)

	log.Printf("Server starting on %s", cfg.Server.Port)
	if err := r.Run(cfg.Server.Port); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}
