package httpapi

import (
	"context"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"

	"github.com/CodeWithAdnan47/AI-Recipe-Scrapper/internal/auth"
	"github.com/CodeWithAdnan47/AI-Recipe-Scrapper/internal/domain"
)

// Answerer produces an answer to a question about one recipe. It always
// returns a string; degraded configurations answer with a fixed message
// rather than an error.
type Answerer interface {
	Answer(ctx context.Context, recipe domain.Recipe, question string) string
}

// Config configures the HTTP server.
type Config struct {
	Addr           string
	ImagesDir      string
	AllowedOrigins []string
	Logger         *log.Logger
}

// Deps are the collaborators the handlers call into. Assistant and Quotes
// may be nil when the corresponding API keys are absent; Verifier may be
// nil when authentication is unconfigured.
type Deps struct {
	Store     domain.RecipeStore
	Assistant Answerer
	Quotes    domain.Generator
	Verifier  auth.TokenVerifier
}

// Server is the HTTP API for the recipe catalog and the question pipeline.
type Server struct {
	cfg    Config
	deps   Deps
	logger *log.Logger
	router *gin.Engine
}

// New builds the server and registers all routes.
func New(cfg Config, deps Deps) *Server {
	if cfg.Addr == "" {
		cfg.Addr = ":8000"
	}
	if cfg.Logger == nil {
		cfg.Logger = log.Default()
	}
	s := &Server{cfg: cfg, deps: deps, logger: cfg.Logger}
	s.router = s.buildRouter()
	return s
}

// Handler exposes the routed handler, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run serves until the listener fails.
func (s *Server) Run() error {
	s.logger.Info("http server listening", "addr", s.cfg.Addr)
	return s.router.Run(s.cfg.Addr)
}

func (s *Server) buildRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(LoggerMiddleware(s.logger))
	r.Use(CORSMiddleware(s.cfg.AllowedOrigins))

	r.GET("/", s.handleRoot)
	r.GET("/health", s.handleHealth)
	r.GET("/api/random-quote", s.handleRandomQuote)
	r.GET("/images/*name", s.handleImage)

	protected := r.Group("/api")
	protected.Use(auth.Middleware(s.deps.Verifier, s.logger))
	protected.GET("/recipes", s.handleListRecipes)
	protected.GET("/recipes/:id", s.handleGetRecipe)
	protected.POST("/recipes/:id/chat", s.handleChat)
	protected.GET("/favorites", s.handleListFavorites)
	protected.POST("/recipes/:id/favorite", s.handleToggleFavorite)

	return r
}
