package assistant

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/CodeWithAdnan47/AI-Recipe-Scrapper/internal/chunker"
	"github.com/CodeWithAdnan47/AI-Recipe-Scrapper/internal/domain"
	"github.com/CodeWithAdnan47/AI-Recipe-Scrapper/internal/retrieval"
	"github.com/CodeWithAdnan47/AI-Recipe-Scrapper/internal/websearch/tavily"
)

// ConfigErrorAnswer is returned when neither generation nor web search can
// produce anything. The entry point always returns a string, never an error.
const ConfigErrorAnswer = "I couldn't process your question. Please ensure the recipe and API keys (Google, optionally Tavily) are configured."

// noExtraResultsNote annotates a RAG answer the judge rejected when web
// search came back empty. The original answer is kept, never discarded.
const noExtraResultsNote = "\n\n(I looked for more information online but couldn't find additional results.)"

// Assistant answers questions about a single recipe: retrieval-augmented
// generation over the recipe's own text first, web search escalation only
// when the generated answer is not grounded in the recipe alone.
type Assistant struct {
	embedder      domain.Embedder
	generator     domain.Generator
	searcher      domain.WebSearcher
	topK          int
	maxWebResults int
	callTimeout   time.Duration
	logger        *log.Logger
}

// Config tunes the pipeline. Zero values select the defaults.
type Config struct {
	TopK          int
	MaxWebResults int
	CallTimeout   time.Duration
	Logger        *log.Logger
}

// New builds an assistant from explicit capability handles. Any handle may
// be nil, meaning that capability is not configured; the pipeline degrades
// around it instead of failing.
func New(embedder domain.Embedder, generator domain.Generator, searcher domain.WebSearcher, cfg Config) *Assistant {
	if cfg.TopK <= 0 {
		cfg.TopK = 5
	}
	if cfg.MaxWebResults <= 0 {
		cfg.MaxWebResults = 5
	}
	if cfg.CallTimeout <= 0 {
		cfg.CallTimeout = 30 * time.Second
	}
	if cfg.Logger == nil {
		cfg.Logger = log.Default()
	}
	return &Assistant{
		embedder:      embedder,
		generator:     generator,
		searcher:      searcher,
		topK:          cfg.TopK,
		maxWebResults: cfg.MaxWebResults,
		callTimeout:   cfg.CallTimeout,
		logger:        cfg.Logger,
	}
}

// Answer produces the reply to one question about one recipe. It never
// returns an error: every capability failure is absorbed into a degraded
// path, down to a single configuration-error sentinel when nothing at all
// can run.
func (a *Assistant) Answer(ctx context.Context, recipe domain.Recipe, question string) string {
	chunks := chunker.Split(recipe)
	ragContext := a.retrievalContext(ctx, chunks, question)

	ragAnswer := a.generate(ctx, ragSystem, ragPrompt(ragContext, question))
	if ragAnswer == "" {
		// Generation is unavailable or failed outright; web search is the
		// only remaining source.
		results := a.search(ctx, question)
		if len(results) == 0 {
			return ConfigErrorAnswer
		}
		formatted := tavily.Format(results)
		if a.generator == nil {
			// Best effort: raw search results, no second generation pass.
			return formatted
		}
		if webAnswer := a.generate(ctx, webSystem, webPrompt(chunker.Join(chunks), formatted, question)); webAnswer != "" {
			return webAnswer
		}
		return formatted
	}

	if a.sufficient(ctx, question, ragAnswer) {
		return ragAnswer
	}

	results := a.search(ctx, question)
	if len(results) == 0 {
		return ragAnswer + noExtraResultsNote
	}
	if webAnswer := a.generate(ctx, webSystem, webPrompt(chunker.Join(chunks), tavily.Format(results), question)); webAnswer != "" {
		return webAnswer
	}
	return ragAnswer
}

// retrievalContext builds the per-request context string: the top-k chunks
// by semantic similarity when embeddings are available, all chunks otherwise.
func (a *Assistant) retrievalContext(ctx context.Context, chunks []domain.Chunk, question string) string {
	cctx, cancel := a.bound(ctx)
	defer cancel()
	index, err := retrieval.Build(cctx, a.embedder, chunks)
	if err != nil {
		if !errors.Is(err, retrieval.ErrNoCredentials) {
			a.logger.Warn("retrieval index unavailable, using full recipe text", "error", err)
		}
		return chunker.Join(chunks)
	}
	top, err := index.Query(cctx, question, a.topK)
	if err != nil {
		a.logger.Warn("retrieval query failed, using full recipe text", "error", err)
		return chunker.Join(chunks)
	}
	return chunker.Join(top)
}

// sufficient asks the model whether the answer is supported by the recipe
// context alone. Only a reply with a strict YES prefix counts as grounded.
// With generation unavailable it defaults to sufficient, so escalation never
// hinges on a second unavailable capability.
func (a *Assistant) sufficient(ctx context.Context, question, answer string) bool {
	if a.generator == nil {
		return true
	}
	cctx, cancel := a.bound(ctx)
	defer cancel()
	reply, err := a.generator.Generate(cctx, "", sufficiencyPrompt(question, answer))
	if err != nil {
		a.logger.Warn("sufficiency check failed, keeping answer", "error", err)
		return true
	}
	return strings.HasPrefix(strings.ToUpper(strings.TrimSpace(reply)), "YES")
}

func (a *Assistant) generate(ctx context.Context, system, prompt string) string {
	if a.generator == nil {
		return ""
	}
	cctx, cancel := a.bound(ctx)
	defer cancel()
	out, err := a.generator.Generate(cctx, system, prompt)
	if err != nil {
		a.logger.Warn("generation failed", "error", err)
		return ""
	}
	return out
}

func (a *Assistant) search(ctx context.Context, query string) []domain.SearchResult {
	if a.searcher == nil {
		return nil
	}
	cctx, cancel := a.bound(ctx)
	defer cancel()
	results, err := a.searcher.Search(cctx, query, a.maxWebResults)
	if err != nil {
		a.logger.Warn("web search failed", "error", err)
		return nil
	}
	return results
}

// bound derives the per-call deadline; a slow provider degrades the same
// way an unconfigured one does instead of hanging the request.
func (a *Assistant) bound(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, a.callTimeout)
}
