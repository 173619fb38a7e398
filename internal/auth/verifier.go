package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

const defaultBaseURL = "https://www.googleapis.com"

// ErrInvalidToken reports a token the identity provider rejected.
var ErrInvalidToken = errors.New("auth: invalid token")

// Verifier checks Firebase ID tokens against the Google Identity Toolkit
// REST endpoint. This is the verification path that needs only the web API
// key, no service account.
type Verifier struct {
	http   *resty.Client
	apiKey string
}

// Config configures the token verifier.
type Config struct {
	APIKey  string
	BaseURL string
	Timeout time.Duration
}

// NewVerifier creates a token verifier keyed by the Firebase web API key.
func NewVerifier(cfg Config) *Verifier {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 10 * time.Second
	}
	http := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout)
	return &Verifier{http: http, apiKey: cfg.APIKey}
}

type accountInfoResponse struct {
	Users []struct {
		LocalID string `json:"localId"`
		Email   string `json:"email"`
	} `json:"users"`
}

// VerifyToken resolves an ID token to the account's user id.
func (v *Verifier) VerifyToken(ctx context.Context, idToken string) (string, error) {
	var out accountInfoResponse
	resp, err := v.http.R().
		SetContext(ctx).
		SetQueryParam("key", v.apiKey).
		SetBody(map[string]string{"idToken": idToken}).
		SetResult(&out).
		Post("/identitytoolkit/v3/relyingparty/getAccountInfo")
	if err != nil {
		return "", fmt.Errorf("auth: verify token: %w", err)
	}
	if resp.IsError() {
		return "", ErrInvalidToken
	}
	if len(out.Users) == 0 || out.Users[0].LocalID == "" {
		return "", ErrInvalidToken
	}
	return out.Users[0].LocalID, nil
}
