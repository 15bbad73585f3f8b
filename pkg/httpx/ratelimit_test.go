package httpx

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestRateLimitByIPBlocksAfterBurst(t *testing.T) {
	cfg := RateLimitConfig{RequestsPerWindow: 3, Window: time.Minute, Burst: 3}
	handler := Chain(okHandler(), RateLimitByIP(cfg))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "203.0.113.7:12345"

	for i := range 3 {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code, "request %d should pass", i+1)
	}

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	require.Equal(t, http.StatusTooManyRequests, rec.Code)
	require.NotEmpty(t, rec.Header().Get("Retry-After"))
	require.Contains(t, rec.Body.String(), "rate_limit_exceeded")
}

func TestRateLimitIsPerKey(t *testing.T) {
	cfg := RateLimitConfig{RequestsPerWindow: 1, Window: time.Minute, Burst: 1}
	handler := Chain(okHandler(), RateLimitByIP(cfg))

	first := httptest.NewRequest(http.MethodGet, "/", nil)
	first.RemoteAddr = "203.0.113.7:1"
	second := httptest.NewRequest(http.MethodGet, "/", nil)
	second.RemoteAddr = "203.0.113.8:1"

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, first)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, first)
	require.Equal(t, http.StatusTooManyRequests, rec.Code)

	// A different client is unaffected.
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, second)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestRateLimitHonoursForwardedFor(t *testing.T) {
	cfg := RateLimitConfig{RequestsPerWindow: 1, Window: time.Minute, Burst: 1}
	handler := Chain(okHandler(), RateLimitByIP(cfg))

	mk := func(xff string) *http.Request {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "10.0.0.1:1" // same proxy for everyone
		req.Header.Set("X-Forwarded-For", xff)
		return req
	}

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, mk("198.51.100.1"))
	require.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, mk("198.51.100.1"))
	require.Equal(t, http.StatusTooManyRequests, rec.Code)

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, mk("198.51.100.2"))
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestRateLimitByUserFallsBackToIP(t *testing.T) {
	cfg := RateLimitConfig{RequestsPerWindow: 1, Window: time.Minute, Burst: 1}
	handler := Chain(okHandler(), RateLimitByUser(cfg))

	authed := func(userID, addr string) *http.Request {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = addr
		if userID != "" {
			ctx := context.WithValue(req.Context(), CtxKeyUserID, userID)
			req = req.WithContext(ctx)
		}
		return req
	}

	// Two users behind one address are limited independently.
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, authed("user-a", "203.0.113.7:1"))
	require.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, authed("user-b", "203.0.113.7:1"))
	require.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, authed("user-a", "203.0.113.7:1"))
	require.Equal(t, http.StatusTooManyRequests, rec.Code)

	// Unauthenticated requests fall back to the address.
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, authed("", "203.0.113.9:1"))
	require.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, authed("", "203.0.113.9:1"))
	require.Equal(t, http.StatusTooManyRequests, rec.Code)
}

func TestParseRateLimitFromEnv(t *testing.T) {
	def := RateLimitConfig{RequestsPerWindow: 5, Window: time.Minute, Burst: 5}

	t.Run("no env keeps defaults", func(t *testing.T) {
		got := ParseRateLimitFromEnv("TESTNONE", def)
		require.Equal(t, def, got)
	})

	t.Run("overrides apply", func(t *testing.T) {
		t.Setenv("RATELIMIT_TESTPROF_REQUESTS", "42")
		t.Setenv("RATELIMIT_TESTPROF_WINDOW_SEC", "30")
		t.Setenv("RATELIMIT_TESTPROF_BURST", "7")

		got := ParseRateLimitFromEnv("TESTPROF", def)
		require.Equal(t, 42, got.RequestsPerWindow)
		require.Equal(t, 30*time.Second, got.Window)
		require.Equal(t, 7, got.Burst)
	})

	t.Run("bad values are ignored", func(t *testing.T) {
		t.Setenv("RATELIMIT_TESTBAD_REQUESTS", "nope")
		t.Setenv("RATELIMIT_TESTBAD_BURST", "-1")

		got := ParseRateLimitFromEnv("TESTBAD", def)
		require.Equal(t, def, got)
	})
}
