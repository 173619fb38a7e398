package httpapi

import (
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/CodeWithAdnan47/AI-Recipe-Scrapper/internal/auth"
	"github.com/CodeWithAdnan47/AI-Recipe-Scrapper/internal/domain"
	"github.com/CodeWithAdnan47/AI-Recipe-Scrapper/internal/store/sqlite"
)

// mockQuote keeps the endpoint useful when no generation key is configured.
const mockQuote = "The only way to do great work is to love what you do. - Steve Jobs"

func (s *Server) handleRoot(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Hello from Recipe Organizer Backend!"})
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

func (s *Server) handleRandomQuote(c *gin.Context) {
	if s.deps.Quotes == nil {
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": "Random quote generated successfully (Mock)",
			"data":    gin.H{"quote": mockQuote},
		})
		return
	}
	quote, err := s.deps.Quotes.Generate(c.Request.Context(), "", "Tell me a random inspirational quote")
	if err != nil {
		s.logger.Error("quote generation failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Error generating quote: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Random quote generated successfully",
		"data":    gin.H{"quote": quote},
	})
}

func (s *Server) handleListRecipes(c *gin.Context) {
	recipes, err := s.deps.Store.ListRecipes(c.Request.Context())
	if err != nil {
		s.logger.Error("list recipes failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Database error"})
		return
	}
	if recipes == nil {
		recipes = []domain.Recipe{}
	}
	c.JSON(http.StatusOK, recipes)
}

func (s *Server) handleGetRecipe(c *gin.Context) {
	id, ok := s.recipeID(c)
	if !ok {
		return
	}
	recipe, err := s.deps.Store.GetRecipe(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, sqlite.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"detail": "Recipe not found"})
			return
		}
		s.logger.Error("get recipe failed", "recipe_id", id, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Database error"})
		return
	}
	c.JSON(http.StatusOK, recipe)
}

type chatRequest struct {
	Message string `json:"message"`
}

func (s *Server) handleChat(c *gin.Context) {
	id, ok := s.recipeID(c)
	if !ok {
		return
	}
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid request body"})
		return
	}
	message := strings.TrimSpace(req.Message)
	if message == "" {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Message is required"})
		return
	}
	recipe, err := s.deps.Store.GetRecipe(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, sqlite.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"detail": "Recipe not found"})
			return
		}
		s.logger.Error("get recipe failed", "recipe_id", id, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Database error"})
		return
	}
	answer := s.deps.Assistant.Answer(c.Request.Context(), recipe, message)
	c.JSON(http.StatusOK, gin.H{"response": answer})
}

func (s *Server) handleListFavorites(c *gin.Context) {
	userID, ok := auth.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"detail": "Missing authenticated user"})
		return
	}
	ids, err := s.deps.Store.ListFavorites(c.Request.Context(), userID)
	if err != nil {
		s.logger.Error("list favorites failed", "user_id", userID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Database error"})
		return
	}
	if ids == nil {
		ids = []int64{}
	}
	c.JSON(http.StatusOK, gin.H{"favorites": ids})
}

func (s *Server) handleToggleFavorite(c *gin.Context) {
	userID, ok := auth.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"detail": "Missing authenticated user"})
		return
	}
	id, ok := s.recipeID(c)
	if !ok {
		return
	}
	favorited, err := s.deps.Store.ToggleFavorite(c.Request.Context(), userID, id)
	if err != nil {
		if errors.Is(err, sqlite.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"detail": "Recipe not found"})
			return
		}
		s.logger.Error("toggle favorite failed", "user_id", userID, "recipe_id", id, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Database error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"favorited": favorited})
}

func (s *Server) handleImage(c *gin.Context) {
	name := strings.TrimPrefix(c.Param("name"), "/")
	path, ok := s.resolveImagePath(name)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"detail": "Image not found"})
		return
	}
	c.Header("Content-Type", "image/jpeg")
	c.File(path)
}

// resolveImagePath maps an image name (with or without .jpg) to a file in
// the images directory. It tries an exact match first, then a
// case-insensitive directory scan. Names with path separators or parent
// references are rejected outright.
func (s *Server) resolveImagePath(name string) (string, bool) {
	name = strings.TrimSpace(name)
	if name == "" || strings.Contains(name, "..") ||
		strings.ContainsAny(name, `/\`) {
		return "", false
	}
	base := name
	if !strings.HasSuffix(strings.ToLower(base), ".jpg") {
		base += ".jpg"
	}
	path := filepath.Join(s.cfg.ImagesDir, base)
	if info, err := os.Stat(path); err == nil && info.Mode().IsRegular() {
		return path, true
	}
	entries, err := os.ReadDir(s.cfg.ImagesDir)
	if err != nil {
		return "", false
	}
	target := strings.ToLower(base)
	for _, e := range entries {
		if !e.IsDir() && strings.ToLower(e.Name()) == target {
			return filepath.Join(s.cfg.ImagesDir, e.Name()), true
		}
	}
	return "", false
}

func (s *Server) recipeID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid recipe id"})
		return 0, false
	}
	return id, true
}
