package auth

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerifyToken(t *testing.T) {
	t.Run("Should resolve a valid token to the user id", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "web-key", r.URL.Query().Get("key"))
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"users":[{"localId":"user-123","email":"a@b.c"}]}`))
		}))
		defer srv.Close()

		v := NewVerifier(Config{APIKey: "web-key", BaseURL: srv.URL})
		uid, err := v.VerifyToken(context.Background(), "some-token")
		require.NoError(t, err)
		assert.Equal(t, "user-123", uid)
	})

	t.Run("Should reject a token the provider rejects", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
		}))
		defer srv.Close()

		v := NewVerifier(Config{APIKey: "web-key", BaseURL: srv.URL})
		_, err := v.VerifyToken(context.Background(), "bad-token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("Should reject a response with no users", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"users":[]}`))
		}))
		defer srv.Close()

		v := NewVerifier(Config{APIKey: "web-key", BaseURL: srv.URL})
		_, err := v.VerifyToken(context.Background(), "token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}

type staticVerifier struct {
	uid string
	err error
}

func (s *staticVerifier) VerifyToken(context.Context, string) (string, error) {
	return s.uid, s.err
}

func protectedRouter(verifier TokenVerifier) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", Middleware(verifier, nil), func(c *gin.Context) {
		uid, _ := UserID(c)
		c.JSON(http.StatusOK, gin.H{"user_id": uid})
	})
	return r
}

func TestMiddleware(t *testing.T) {
	t.Run("Should pass the user id through on a valid token", func(t *testing.T) {
		r := protectedRouter(&staticVerifier{uid: "user-9"})
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer token")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "user-9")
	})

	t.Run("Should reject a missing Authorization header", func(t *testing.T) {
		r := protectedRouter(&staticVerifier{uid: "user-9"})
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/protected", nil))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Should reject a malformed Authorization header", func(t *testing.T) {
		r := protectedRouter(&staticVerifier{uid: "user-9"})
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Token abc")
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Should reject an invalid token", func(t *testing.T) {
		r := protectedRouter(&staticVerifier{err: errors.New("nope")})
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer token")
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Should answer 503 when auth is unconfigured", func(t *testing.T) {
		r := protectedRouter(nil)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer token")
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})
}
