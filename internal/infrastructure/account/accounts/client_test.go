package accounts

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/nikunj436/cricketAuction/internal/platform/resilience"
	"github.com/nikunj436/cricketAuction/internal/usecase"
)

func TestClientVerifyAccessToken_ParsesResponse(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Fatalf("unexpected method: %s", r.Method)
		}
		if r.URL.Path != "/v1/auth/introspect" {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}

		var req map[string]string
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request body: %v", err)
		}
		if req["token"] != "token-abc" {
			t.Fatalf("unexpected token value: %s", req["token"])
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"active":  true,
			"user_id": "org-123",
			"email":   "organizer@example.com",
			"name":    "Nikunj Organizer",
		})
	}))
	defer srv.Close()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	client := NewClient(srv.Client(), srv.URL, "/v1/auth/introspect", resilience.CircuitBreakerConfig{}, logger)

	principal, err := client.VerifyAccessToken(t.Context(), "token-abc")
	if err != nil {
		t.Fatalf("verify access token: %v", err)
	}
	if principal.UserID != "org-123" || principal.Email != "organizer@example.com" {
		t.Fatalf("unexpected principal: %+v", principal)
	}
}

func TestClientVerifyAccessToken_InactiveToken(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{"active": false})
	}))
	defer srv.Close()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	client := NewClient(srv.Client(), srv.URL, "/v1/auth/introspect", resilience.CircuitBreakerConfig{}, logger)

	if _, err := client.VerifyAccessToken(t.Context(), "stale-token"); !errors.Is(err, usecase.ErrUnauthorized) {
		t.Fatalf("expected unauthorized, got %v", err)
	}
}

func TestClientVerifyAccessToken_OutageOpensBreaker(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	client := NewClient(srv.Client(), srv.URL, "/v1/auth/introspect",
		resilience.CircuitBreakerConfig{Enabled: true, FailureThreshold: 2}, logger)

	for i := 0; i < 2; i++ {
		if _, err := client.VerifyAccessToken(t.Context(), "token-abc"); err == nil {
			t.Fatalf("expected failure %d", i+1)
		}
	}

	if _, err := client.VerifyAccessToken(t.Context(), "token-abc"); !errors.Is(err, usecase.ErrDependencyUnavailable) {
		t.Fatalf("expected dependency unavailable once breaker opens, got %v", err)
	}
}

func TestClientVerifyAccessToken_DisabledBreakerKeepsCalling(t *testing.T) {
	t.Parallel()

	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls++
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	client := NewClient(srv.Client(), srv.URL, "/v1/auth/introspect",
		resilience.CircuitBreakerConfig{Enabled: false, FailureThreshold: 2}, logger)

	for i := 0; i < 4; i++ {
		_, err := client.VerifyAccessToken(t.Context(), "token-abc")
		if err == nil {
			t.Fatalf("expected failure %d", i+1)
		}
		if errors.Is(err, usecase.ErrDependencyUnavailable) {
			t.Fatalf("breaker must stay out of the path when disabled, got %v", err)
		}
	}
	if calls != 4 {
		t.Fatalf("expected every request to reach the accounts service, got %d calls", calls)
	}
}
