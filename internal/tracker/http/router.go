package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/fernwick/stockfolio/internal/tracker/service"
	"github.com/fernwick/stockfolio/internal/tracker/store"
	"github.com/fernwick/stockfolio/pkg/httpx"
	"github.com/fernwick/stockfolio/pkg/jwtx"
	"github.com/fernwick/stockfolio/pkg/slogx"

	_ "github.com/fernwick/stockfolio/api/docs" // Swagger docs
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	verifier     jwtx.Verifier
	sessionTTL   time.Duration
	secure       bool
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store             store.Store
	AuthService       *service.AuthService
	InvestmentService *service.InvestmentService
	ProfileService    *service.ProfileService
	MFAService        *service.MFAService
}

func NewRouter(
	verifier jwtx.Verifier,
	sessionTTL time.Duration,
	secure bool,
	corsOrigin, buildVersion string,
	st store.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		verifier:     verifier,
		sessionTTL:   sessionTTL,
		secure:       secure,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	// Set default middleware chain. Credentialed CORS: the session rides
	// in a cookie, so the browser origin must be allow-listed explicitly
	// rather than wildcarded.
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
		cors.Handler(cors.Options{
			AllowedOrigins:   []string{corsOrigin},
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Content-Type"},
			AllowCredentials: true,
			MaxAge:           300,
		}),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAuth()
	r.registerInvestments()
	r.registerProfile()
	r.registerMFA()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Stockfolio API
//	@version		0.1.0
//	@description	Personal investment tracker. Authentication uses a signed session cookie
//	@description	issued at login; all portfolio data is scoped to the authenticated user.
//
//	@contact.name	Fernwick
//	@contact.url	https://github.com/fernwick/stockfolio
//
//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT
//
//	@host			localhost:8080
//	@BasePath		/
//
//	@schemes		http https
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerAuth() {
	h := &AuthHandler{
		AuthService: r.AuthService,
		SessionTTL:  r.sessionTTL,
		Secure:      r.secure,
	}

	// POST /register - strict rate limit by IP (account creation)
	r.Mux.Handle("POST /api/auth/register",
		httpx.Chain(http.HandlerFunc(h.HandleRegister),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	// POST /login - strict rate limit by IP (credential guessing)
	r.Mux.Handle("POST /api/auth/login",
		httpx.Chain(http.HandlerFunc(h.HandleLogin),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	// GET /logout - no session required, clearing an absent cookie is fine
	r.Mux.Handle("GET /api/auth/logout",
		httpx.Chain(http.HandlerFunc(h.HandleLogout),
			httpx.RateLimitByIP(httpx.ModerateLimit),
		),
	)

	r.Mux.Handle("GET /api/auth/user",
		httpx.Chain(http.HandlerFunc(h.HandleUser),
			httpx.SessionMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)
}

func (r *Router) registerInvestments() {
	h := &InvestmentHandler{InvestmentService: r.InvestmentService}

	session := func(handler http.Handler, cfg httpx.RateLimitConfig) http.Handler {
		return httpx.Chain(handler,
			httpx.SessionMiddleware(r.verifier),
			httpx.RateLimitByUser(cfg),
		)
	}

	r.Mux.Handle("POST /api/investments", session(http.HandlerFunc(h.HandleCreate), httpx.ModerateLimit))
	r.Mux.Handle("GET /api/investments", session(http.HandlerFunc(h.HandleList), httpx.LenientLimit))
	r.Mux.Handle("PUT /api/investments/{id}/price", session(http.HandlerFunc(h.HandleUpdatePrice), httpx.ModerateLimit))
	r.Mux.Handle("DELETE /api/investments/{id}", session(http.HandlerFunc(h.HandleDelete), httpx.ModerateLimit))
}

func (r *Router) registerProfile() {
	h := &ProfileHandler{ProfileService: r.ProfileService}

	session := func(handler http.Handler, cfg httpx.RateLimitConfig) http.Handler {
		return httpx.Chain(handler,
			httpx.SessionMiddleware(r.verifier),
			httpx.RateLimitByUser(cfg),
		)
	}

	r.Mux.Handle("GET /api/profile", session(http.HandlerFunc(h.HandleGet), httpx.LenientLimit))
	r.Mux.Handle("GET /api/profile/stats", session(http.HandlerFunc(h.HandleStats), httpx.LenientLimit))
	r.Mux.Handle("PUT /api/profile/username", session(http.HandlerFunc(h.HandleUpdateUsername), httpx.ModerateLimit))

	// Email and password changes verify the current password, so keep the
	// limit strict to slow down an attacker holding a stolen session.
	r.Mux.Handle("PUT /api/profile/email", session(http.HandlerFunc(h.HandleUpdateEmail), httpx.StrictLimit))
	r.Mux.Handle("PUT /api/profile/password", session(http.HandlerFunc(h.HandleChangePassword), httpx.StrictLimit))
}

func (r *Router) registerMFA() {
	h := &MFAHandler{MFAService: r.MFAService}

	session := func(handler http.Handler, cfg httpx.RateLimitConfig) http.Handler {
		return httpx.Chain(handler,
			httpx.SessionMiddleware(r.verifier),
			httpx.RateLimitByUser(cfg),
		)
	}

	r.Mux.Handle("POST /api/profile/mfa/enroll", session(http.HandlerFunc(h.HandleEnroll), httpx.ModerateLimit))

	// Strict limits on code verification to prevent brute force of TOTP codes
	r.Mux.Handle("POST /api/profile/mfa/activate", session(http.HandlerFunc(h.HandleActivate), httpx.StrictLimit))
	r.Mux.Handle("DELETE /api/profile/mfa", session(http.HandlerFunc(h.HandleDisable), httpx.StrictLimit))
}

func (r *Router) registerSystem() {
	// Health check endpoints - lenient rate limits (monitoring systems may poll frequently)
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
}
