package main

import (
	"context"
	"net/http"
	"os"

	httpadapter "github.com/Ju4nmaFd3z/juanma-dev-portfolio/internal/adapters/http"
	"github.com/Ju4nmaFd3z/juanma-dev-portfolio/internal/adapters/llm"
	"github.com/Ju4nmaFd3z/juanma-dev-portfolio/internal/app/assistant"
	"github.com/Ju4nmaFd3z/juanma-dev-portfolio/internal/config"
	"github.com/Ju4nmaFd3z/juanma-dev-portfolio/internal/domain"
	"github.com/Ju4nmaFd3z/juanma-dev-portfolio/internal/enrich"
	"github.com/Ju4nmaFd3z/juanma-dev-portfolio/internal/gate"
	"github.com/Ju4nmaFd3z/juanma-dev-portfolio/internal/observability"
)

func main() {
	ctx := context.Background()
	cfg := config.Load()
	log := observability.Logger()

	// Completion client: mock for local dev, Gemini otherwise.
	var llmClient domain.CompletionClient
	if cfg.UseMockLLM {
		log.Info("using mock completion client")
		llmClient = llm.NewMockClient()
	} else {
		log.Info("using Gemini completion client", "model", cfg.ModelName)
		client, err := llm.NewGeminiClient(ctx, cfg.GeminiAPIKey, cfg.ModelName)
		if err != nil {
			log.Error("initializing Gemini client", "error", err)
			os.Exit(1)
		}
		llmClient = client
	}

	// Profile enrichment: best effort, fetched once in the background.
	// A failure here never blocks the conversation.
	var enricher domain.Enricher = enrich.NoopEnricher{}
	if !cfg.EnrichmentDisabled {
		gh := enrich.NewGitHubEnricher(cfg.GitHubAPIBase, cfg.GitHubUser)
		go gh.Prefetch(ctx)
		enricher = gh
	}

	g := gate.New(cfg.AllowedOrigins, cfg.DeniedOriginPatterns)

	manager := assistant.NewManager(g, llmClient, enricher, assistant.AlwaysOnline{}, cfg.CompletionTimeout)

	handler := httpadapter.NewServer(manager)

	addr := ":" + cfg.Port
	log.Info("assistant API listening", "addr", addr)
	if err := http.ListenAndServe(addr, handler); err != nil {
		log.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
