// cmd/server/main.go
package main

import (
	"log"
	"log/slog"

	"github.com/slidekit/search-advisor/internal/analyzer"
	"github.com/slidekit/search-advisor/internal/config"
	"github.com/slidekit/search-advisor/internal/llm"
	"github.com/slidekit/search-advisor/internal/server"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	provider, err := llm.NewOpenAI(&cfg.OpenAI)
	if err != nil {
		log.Fatalf("failed to create LLM provider: %v", err)
	}

	srv := server.New(*cfg, analyzer.New(provider))
	slog.Info("starting server", "host", cfg.Server.Host, "port", cfg.Server.Port)
	if err := srv.Run(); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}
