package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("Should return defaults when the file does not exist", func(t *testing.T) {
		cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
		require.NoError(t, err)
		assert.Equal(t, ":8000", cfg.Server.Addr)
		assert.Equal(t, "recipes.db", cfg.Database.Path)
		assert.Equal(t, "gemini-2.5-flash-lite", cfg.Assistant.GenerationModel)
		assert.Equal(t, 5, cfg.Assistant.TopK)
	})

	t.Run("Should fill defaults for fields the file omits", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("server:\n  addr: \":9000\"\n"), 0o644))
		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, ":9000", cfg.Server.Addr)
		assert.Equal(t, "images", cfg.Server.ImagesDir)
		assert.Equal(t, 30, cfg.Assistant.CallTimeoutSecs)
	})

	t.Run("Should let environment variables override credentials", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("credentials:\n  google_api_key: from-file\n"), 0o644))
		t.Setenv("GOOGLE_API_KEY", "from-env")
		t.Setenv("TAVILY_API_KEY", "tv-env")
		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "from-env", cfg.Credentials.GoogleAPIKey)
		assert.Equal(t, "tv-env", cfg.Credentials.TavilyAPIKey)
		assert.Empty(t, cfg.Credentials.FirebaseWebAPIKey)
	})

	t.Run("Should reject malformed yaml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("server: [not a map"), 0o644))
		_, err := Load(path)
		assert.Error(t, err)
	})
}
