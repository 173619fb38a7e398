package tui

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient(t *testing.T) {
	t.Run("Should list recipes with the auth token", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/recipes", r.URL.Path)
			assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`[{"id":1,"title":"Pho"}]`))
		}))
		defer srv.Close()

		c := NewClient(ClientConfig{BaseURL: srv.URL, Token: "tok"})
		recipes, err := c.ListRecipes()
		require.NoError(t, err)
		require.Len(t, recipes, 1)
		assert.Equal(t, "Pho", recipes[0].Title)
	})

	t.Run("Should post a chat message and return the response", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/recipes/7/chat", r.URL.Path)
			assert.Equal(t, http.MethodPost, r.Method)
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"response":"Simmer the broth for 6 hours."}`))
		}))
		defer srv.Close()

		c := NewClient(ClientConfig{BaseURL: srv.URL})
		answer, err := c.Ask(7, "How long does the broth take?")
		require.NoError(t, err)
		assert.Equal(t, "Simmer the broth for 6 hours.", answer)
	})

	t.Run("Should surface the server error detail", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusServiceUnavailable)
			_, _ = w.Write([]byte(`{"detail":"Authentication is not configured. Set FIREBASE_WEB_API_KEY."}`))
		}))
		defer srv.Close()

		c := NewClient(ClientConfig{BaseURL: srv.URL})
		_, err := c.ListRecipes()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Authentication is not configured")
	})
}
