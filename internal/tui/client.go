package tui

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/CodeWithAdnan47/AI-Recipe-Scrapper/internal/domain"
)

// ClientConfig configures the HTTP client for the recipe API.
type ClientConfig struct {
	BaseURL string
	Token   string
	Timeout time.Duration
}

// Client calls the recipe API over HTTP. It implements ChatPort.
type Client struct {
	http *resty.Client
}

// NewClient builds a client for the given server. An empty token is allowed;
// the server will reject protected routes and the error surfaces in the UI.
func NewClient(cfg ClientConfig) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:8000"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 60 * time.Second
	}
	http := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(cfg.Timeout).
		SetHeader("Content-Type", "application/json")
	if cfg.Token != "" {
		http.SetAuthToken(cfg.Token)
	}
	return &Client{http: http}
}

// ListRecipes fetches the full recipe catalog.
func (c *Client) ListRecipes() ([]domain.Recipe, error) {
	var recipes []domain.Recipe
	res, err := c.http.R().SetResult(&recipes).Get("/api/recipes")
	if err != nil {
		return nil, fmt.Errorf("tui: list recipes: %w", err)
	}
	if res.IsError() {
		return nil, fmt.Errorf("tui: list recipes: %s", apiError(res))
	}
	return recipes, nil
}

// Ask sends one question about a recipe and returns the answer text.
func (c *Client) Ask(recipeID int64, message string) (string, error) {
	var out struct {
		Response string `json:"response"`
	}
	res, err := c.http.R().
		SetBody(map[string]string{"message": message}).
		SetResult(&out).
		Post(fmt.Sprintf("/api/recipes/%d/chat", recipeID))
	if err != nil {
		return "", fmt.Errorf("tui: chat: %w", err)
	}
	if res.IsError() {
		return "", fmt.Errorf("tui: chat: %s", apiError(res))
	}
	return out.Response, nil
}

func apiError(res *resty.Response) string {
	var body struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(res.Body(), &body); err == nil && body.Detail != "" {
		return body.Detail
	}
	return res.Status()
}
