package httpx

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/fireproject/fire-engine-bridge/internal/ports"
	"github.com/fireproject/fire-engine-bridge/internal/service"
)

// RouterServices holds all the services needed by the HTTP router.
type RouterServices struct {
	Auth     *service.AuthService
	Engine   ports.EngineClient
	Verifier ports.TokenVerifier
	Users    ports.UserRepository
	// UserCache is optional; nil disables identity caching.
	UserCache    ports.UserCache
	UserCacheTTL time.Duration
	Logger       *slog.Logger // optional; defaults to slog.Default
}

// NewRouter creates and configures the HTTP router with the middleware
// chain Recover -> Logging -> Authenticate -> mux. RequireAuth wraps
// only the protected routes; public routes stay reachable without a
// token even when one is present and invalid.
func NewRouter(services RouterServices) http.Handler {
	logger := services.Logger
	if logger == nil {
		logger = slog.Default()
	}

	mux := http.NewServeMux()

	authHandlers := &AuthHandlers{Svc: services.Auth}
	mux.Handle("POST /auth/register", http.HandlerFunc(authHandlers.Register))
	mux.Handle("POST /auth/login", http.HandlerFunc(authHandlers.Login))

	fireHandlers := &FireHandlers{Engine: services.Engine}
	requireAuth := RequireAuth()
	mux.Handle("POST /api/v1/fire/analyze", requireAuth(http.HandlerFunc(fireHandlers.Analyze)))

	mux.Handle("GET /healthz", http.HandlerFunc(healthHandler))
	mux.Handle("HEAD /healthz", http.HandlerFunc(healthHandler))

	var handler http.Handler = mux
	handler = Authenticate(AuthenticateOptions{
		Verifier: services.Verifier,
		Users:    services.Users,
		Cache:    services.UserCache,
		CacheTTL: services.UserCacheTTL,
	})(handler)
	handler = Logging(logger)(handler)
	handler = Recover(logger)(handler)
	return handler
}
