package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"alfredoptarigan/resume-analyzer/internal/config"
	"alfredoptarigan/resume-analyzer/internal/handlers"
	"alfredoptarigan/resume-analyzer/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()
	log.Println("✅ Config loaded successfully")

	// Initialize model backend
	modelClient, err := newModelClient(context.Background(), cfg.Model)
	if err != nil {
		log.Fatalf("❌ Failed to initialize model backend: %v", err)
	}
	log.Printf("✅ Model backend initialized (%s, %s)", cfg.Model.Provider, modelClient.Model())

	// Initialize services
	analyzer := services.NewAnalyzerService(services.NewPDFParserService(), modelClient)
	analyzeHandler := handlers.NewAnalyzeHandler(analyzer)
	log.Println("✅ Services initialized successfully")

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "Resume Analyzer API",
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		BodyLimit:    int(cfg.Server.BodyLimit),
		ErrorHandler: handlers.ErrorHandler,
	})

	// Middleware
	app.Use(recover.New(recover.Config{
		EnableStackTrace: cfg.Server.Env != "production",
	}))
	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept",
	}))

	handlers.RegisterRoutes(app, analyzeHandler)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Println("\n🛑 Shutting down server...")
		if err := app.Shutdown(); err != nil {
			log.Printf("❌ Server forced to shutdown: %v", err)
		}
	}()

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("🚀 Server starting on %s\n", addr)

	if err := app.Listen(addr); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

func newModelClient(ctx context.Context, cfg config.ModelConfig) (*services.ModelClient, error) {
	switch cfg.Provider {
	case config.ProviderOllama:
		return services.NewModelClient(services.NewOllamaService(cfg.OllamaURL), services.OllamaModel), nil
	case config.ProviderGemini:
		backend, err := services.NewGeminiService(ctx, cfg.GeminiAPIKey)
		if err != nil {
			return nil, err
		}
		return services.NewModelClient(backend, services.GeminiModel), nil
	case config.ProviderOpenRouter:
		return services.NewModelClient(services.NewOpenRouterService(cfg.OpenRouterURL, cfg.OpenRouterAPIKey), services.OpenRouterModel), nil
	default:
		return nil, fmt.Errorf("unknown MODEL_PROVIDER %q", cfg.Provider)
	}
}
