package tavily

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/CodeWithAdnan47/AI-Recipe-Scrapper/internal/domain"
)

const defaultBaseURL = "https://api.tavily.com"

// NoResults is interpolated into prompts in place of an empty result block,
// so a template never receives an empty string.
const NoResults = "No web search results available."

// Client queries the Tavily search API.
type Client struct {
	http   *resty.Client
	apiKey string
}

// Config configures the Tavily client.
type Config struct {
	APIKey  string
	BaseURL string
	Timeout time.Duration
}

// NewClient creates a Tavily client. The wiring layer only constructs one
// when an API key is configured.
func NewClient(cfg Config) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 15 * time.Second
	}
	http := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout)
	return &Client{http: http, apiKey: cfg.APIKey}
}

type searchRequest struct {
	APIKey     string `json:"api_key"`
	Query      string `json:"query"`
	MaxResults int    `json:"max_results"`
}

type searchResponse struct {
	Results []struct {
		Title   string `json:"title"`
		Content string `json:"content"`
		Snippet string `json:"snippet"`
		URL     string `json:"url"`
	} `json:"results"`
}

// Search returns up to maxResults ranked snippets for the query. Provider
// errors surface as errors here; the orchestrator absorbs them into the
// empty "no escalation data" state.
func (c *Client) Search(ctx context.Context, query string, maxResults int) ([]domain.SearchResult, error) {
	if maxResults <= 0 {
		maxResults = 5
	}
	var out searchResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(searchRequest{APIKey: c.apiKey, Query: query, MaxResults: maxResults}).
		SetResult(&out).
		Post("/search")
	if err != nil {
		return nil, fmt.Errorf("tavily: search: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("tavily: search failed: %s", resp.Status())
	}
	results := make([]domain.SearchResult, 0, len(out.Results))
	for _, r := range out.Results {
		content := r.Content
		if content == "" {
			content = r.Snippet
		}
		results = append(results, domain.SearchResult{Title: r.Title, Content: content, URL: r.URL})
		if len(results) == maxResults {
			break
		}
	}
	return results, nil
}

// Format renders search results as a single numbered block for LLM context.
// An empty sequence formats to the NoResults sentinel, never "".
func Format(results []domain.SearchResult) string {
	if len(results) == 0 {
		return NoResults
	}
	parts := make([]string, 0, len(results))
	for i, r := range results {
		parts = append(parts, fmt.Sprintf("[%d] %s\n%s\nSource: %s", i+1, r.Title, r.Content, r.URL))
	}
	return strings.Join(parts, "\n\n")
}
