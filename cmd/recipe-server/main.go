package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"

	"github.com/CodeWithAdnan47/AI-Recipe-Scrapper/internal/assistant"
	"github.com/CodeWithAdnan47/AI-Recipe-Scrapper/internal/auth"
	"github.com/CodeWithAdnan47/AI-Recipe-Scrapper/internal/config"
	"github.com/CodeWithAdnan47/AI-Recipe-Scrapper/internal/domain"
	geminiembed "github.com/CodeWithAdnan47/AI-Recipe-Scrapper/internal/embedding/gemini"
	"github.com/CodeWithAdnan47/AI-Recipe-Scrapper/internal/httpapi"
	"github.com/CodeWithAdnan47/AI-Recipe-Scrapper/internal/llm/gemini"
	"github.com/CodeWithAdnan47/AI-Recipe-Scrapper/internal/store/sqlite"
	"github.com/CodeWithAdnan47/AI-Recipe-Scrapper/internal/websearch/tavily"
)

func main() {
	_ = godotenv.Load()

	var cfgPath string
	flag.StringVar(&cfgPath, "config", "config.yaml", "Path to YAML config file")
	flag.Parse()

	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatal("failed to load config", "error", err)
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Level:           parseLevel(cfg.LogLevel),
	})

	ctx := context.Background()

	db, err := sqlite.Open(ctx, sqlite.Config{
		Path:        cfg.Database.Path,
		BusyTimeout: time.Duration(cfg.Database.BusyTimeoutMsec) * time.Millisecond,
	})
	if err != nil {
		logger.Fatal("failed to open database", "error", err)
	}
	defer db.Close()
	store := sqlite.NewRecipeRepo(db)

	// Capabilities degrade to nil handles when their keys are absent; the
	// pipeline and the handlers answer around the gaps instead of failing.
	var embedder domain.Embedder
	var generator domain.Generator
	if key := cfg.Credentials.GoogleAPIKey; key != "" {
		emb, err := geminiembed.NewEmbedder(ctx, key, cfg.Assistant.EmbeddingModel)
		if err != nil {
			logger.Fatal("failed to init embedder", "error", err)
		}
		defer emb.Close()
		embedder = emb

		gen, err := gemini.NewGenerator(ctx, key, cfg.Assistant.GenerationModel)
		if err != nil {
			logger.Fatal("failed to init generator", "error", err)
		}
		defer gen.Close()
		generator = gen
	} else {
		logger.Warn("GOOGLE_API_KEY not set; generation and retrieval are disabled")
	}

	var searcher domain.WebSearcher
	if key := cfg.Credentials.TavilyAPIKey; key != "" {
		searcher = tavily.NewClient(tavily.Config{APIKey: key})
	} else {
		logger.Warn("TAVILY_API_KEY not set; web search is disabled")
	}

	var verifier auth.TokenVerifier
	if key := cfg.Credentials.FirebaseWebAPIKey; key != "" {
		verifier = auth.NewVerifier(auth.Config{APIKey: key})
	} else {
		logger.Warn("FIREBASE_WEB_API_KEY not set; protected routes will answer 503")
	}

	pipeline := assistant.New(embedder, generator, searcher, assistant.Config{
		TopK:          cfg.Assistant.TopK,
		MaxWebResults: cfg.Assistant.MaxWebResults,
		CallTimeout:   time.Duration(cfg.Assistant.CallTimeoutSecs) * time.Second,
		Logger:        logger,
	})

	server := httpapi.New(httpapi.Config{
		Addr:           cfg.Server.Addr,
		ImagesDir:      cfg.Server.ImagesDir,
		AllowedOrigins: cfg.Server.AllowedOrigins,
		Logger:         logger,
	}, httpapi.Deps{
		Store:     store,
		Assistant: pipeline,
		Quotes:    generator,
		Verifier:  verifier,
	})

	if err := server.Run(); err != nil {
		logger.Fatal("server stopped", "error", err)
	}
}

func parseLevel(s string) log.Level {
	lvl, err := log.ParseLevel(s)
	if err != nil {
		return log.InfoLevel
	}
	return lvl
}
