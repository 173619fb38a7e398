package tavily

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CodeWithAdnan47/AI-Recipe-Scrapper/internal/domain"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(Config{APIKey: "test-key", BaseURL: srv.URL})
}

func TestClientSearch(t *testing.T) {
	t.Run("Should normalize provider results into the canonical shape", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			var req searchRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, "test-key", req.APIKey)
			assert.Equal(t, "how long to boil pasta", req.Query)
			assert.Equal(t, 5, req.MaxResults)
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"results":[
				{"title":"A","content":"full text","url":"https://a"},
				{"title":"B","snippet":"snippet only","url":"https://b"}
			]}`))
		})
		results, err := client.Search(context.Background(), "how long to boil pasta", 5)
		require.NoError(t, err)
		require.Len(t, results, 2)
		assert.Equal(t, domain.SearchResult{Title: "A", Content: "full text", URL: "https://a"}, results[0])
		assert.Equal(t, "snippet only", results[1].Content)
	})

	t.Run("Should cap results at maxResults even when the provider returns more", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"results":[
				{"title":"1"},{"title":"2"},{"title":"3"},{"title":"4"},
				{"title":"5"},{"title":"6"},{"title":"7"}
			]}`))
		})
		results, err := client.Search(context.Background(), "q", 5)
		require.NoError(t, err)
		assert.Len(t, results, 5)
	})

	t.Run("Should return an error on a provider error status", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
		})
		_, err := client.Search(context.Background(), "q", 5)
		assert.Error(t, err)
	})
}

func TestFormat(t *testing.T) {
	t.Run("Should render a numbered block with sources", func(t *testing.T) {
		got := Format([]domain.SearchResult{
			{Title: "A", Content: "alpha", URL: "https://a"},
			{Title: "B", Content: "beta", URL: "https://b"},
		})
		assert.Equal(t, "[1] A\nalpha\nSource: https://a\n\n[2] B\nbeta\nSource: https://b", got)
	})

	t.Run("Should render the sentinel for an empty sequence", func(t *testing.T) {
		assert.Equal(t, NoResults, Format(nil))
	})
}
