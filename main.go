package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"
	"google.golang.org/genai"

	"github.com/itish2003/giggle/config"
	"github.com/itish2003/giggle/controller"
	"github.com/itish2003/giggle/router"
	"github.com/itish2003/giggle/services"
)

const serviceTitle = "Gemini Q&A + Giggle Server"

func main() {
	// Load .env file from the current directory
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables.")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("FATAL: %v", err)
	}

	geminiClient, err := genai.NewClient(context.Background(), &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		log.Fatalf("FATAL: Failed to create Gemini client: %v", err)
	}

	generator := services.NewGeminiGenerator(geminiClient, cfg.Model)
	askService := services.NewAskService(generator)
	askController := controller.NewAskController(askService, cfg.Model)

	r := router.SetupRouter(askController)

	log.Printf("%s starting on http://localhost:%s (model %s)", serviceTitle, cfg.Port, cfg.Model)
	log.Printf("  POST http://localhost:%s/ask", cfg.Port)
	log.Printf("  GET  http://localhost:%s/healthz", cfg.Port)

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("FATAL: Failed to start server: %v", err)
	}
}
