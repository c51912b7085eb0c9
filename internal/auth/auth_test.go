package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func protectedHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestMiddlewareDisabled(t *testing.T) {
	handler := Middleware(Config{})(protectedHandler())

	req := httptest.NewRequest("POST", "/api/v1/simulate", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestMiddlewareEnforcesToken(t *testing.T) {
	cfg := Config{Enabled: true, Token: "secret"}
	handler := Middleware(cfg)(protectedHandler())

	tests := []struct {
		name       string
		path       string
		authHeader string
		wantStatus int
	}{
		{"missing token", "/api/v1/simulate", "", http.StatusUnauthorized},
		{"wrong token", "/api/v1/simulate", "Bearer nope", http.StatusUnauthorized},
		{"malformed header", "/api/v1/simulate", "secret", http.StatusUnauthorized},
		{"correct token", "/api/v1/simulate", "Bearer secret", http.StatusOK},
		{"healthz exempt", "/healthz", "", http.StatusOK},
		{"metrics exempt", "/metrics", "", http.StatusOK},
		{"presets exempt", "/api/v1/presets", "", http.StatusOK},
		{"strategies exempt", "/api/v1/deflection/strategies", "", http.StatusOK},
		{"asteroids not exempt", "/api/v1/asteroids", "", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", tt.path, nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}
