package main

import (
	"log/slog"
	"os"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v3/middleware/logger"
	"github.com/gofiber/fiber/v3/middleware/recover"
	"github.com/joho/godotenv"

	"github.com/arturoeanton/go-product-match-openai/internal/adapter/ai"
	"github.com/arturoeanton/go-product-match-openai/internal/adapter/store"
	"github.com/arturoeanton/go-product-match-openai/internal/handler"
	"github.com/arturoeanton/go-product-match-openai/internal/service"
	"github.com/arturoeanton/go-product-match-openai/pkg/config"

	_ "github.com/lib/pq"
)

func main() {
	// ── Load .env file ───────────────────────────────────────────────────
	_ = godotenv.Load() // silently ignore if .env doesn't exist

	// ── Configuration ────────────────────────────────────────────────────
	cfg := config.Load()

	slog.Info("🚀 Starting Product Match AI",
		"port", cfg.Port,
		"embed_model", cfg.OpenAIEmbedModel,
		"chat_model", cfg.OpenAIChatModel,
		"match_threshold", cfg.MatchThreshold,
		"match_count", cfg.MatchCount,
	)

	// ── Database ─────────────────────────────────────────────────────────
	pgStore, err := store.NewPostgresStore(cfg.DSN())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pgStore.Close()

	// ── Adapters ─────────────────────────────────────────────────────────
	openAI := ai.NewOpenAIProvider(ai.OpenAIConfig{
		APIKey:     cfg.OpenAIAPIKey,
		EmbedModel: cfg.OpenAIEmbedModel,
		ChatModel:  cfg.OpenAIChatModel,
		Dimensions: cfg.EmbeddingDimension,
	})

	// ── Services ─────────────────────────────────────────────────────────
	matchService := service.NewMatchService(
		openAI, pgStore, openAI,
		cfg.MatchThreshold, cfg.MatchCount,
		time.Duration(cfg.AITimeoutSeconds)*time.Second,
	)

	// ── Fiber App ────────────────────────────────────────────────────────
	app := fiber.New(fiber.Config{
		AppName:      cfg.AppName,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
	})

	// Global middleware
	app.Use(recover.New())
	app.Use(fiberlogger.New())
	app.Use(cors.New())

	// ── Routes ───────────────────────────────────────────────────────────
	matchHandler := handler.NewMatchHandler(matchService)
	matchHandler.Register(app)

	// ── Start ────────────────────────────────────────────────────────────
	slog.Info("🌐 Fiber listening", "port", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
