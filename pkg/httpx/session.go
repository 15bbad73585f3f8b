package httpx

import (
	"context"
	"net/http"
	"time"

	"github.com/fernwick/stockfolio/pkg/jwtx"
	"github.com/fernwick/stockfolio/pkg/slogx"
)

// SessionCookieName is the cookie the signed session token rides in.
const SessionCookieName = "session"

// SetSessionCookie attaches a signed session token to the response as an
// HTTP-only, same-site-strict cookie. The cookie expiry matches the token
// expiry so a stale cookie is never presented past its token's lifetime.
// secure must be true outside local development.
func SetSessionCookie(w http.ResponseWriter, token string, ttl time.Duration, secure bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteStrictMode,
	})
}

// ClearSessionCookie expires the session cookie. Safe to call whether or
// not a session exists, which makes logout idempotent.
func ClearSessionCookie(w http.ResponseWriter, secure bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteStrictMode,
	})
}

// SessionMiddleware is the single enforcement point for protected routes.
// It extracts the session cookie, verifies signature and expiry, and
// attaches the resolved user id to the request context. An absent,
// malformed, or expired token is uniformly rejected as unauthenticated.
func SessionMiddleware(v jwtx.Verifier) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			log := slogx.FromContext(ctx)

			cookie, err := r.Cookie(SessionCookieName)
			if err != nil || cookie.Value == "" {
				writeUnauthenticated(w, "missing session")
				return
			}

			claims, err := v.Verify(cookie.Value)
			if err != nil {
				log.Warn("session verify failed", "err", err)
				writeUnauthenticated(w, "invalid or expired session")
				return
			}

			ctx = context.WithValue(ctx, CtxKeyUserID, claims.Subject)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func writeUnauthenticated(w http.ResponseWriter, msg string) {
	WriteJSON(w, http.StatusUnauthorized, map[string]string{
		"error":   "unauthenticated",
		"message": msg,
	})
}
