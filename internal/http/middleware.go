package httpx

import (
	"errors"
	"log/slog"
	"net/http"
	"runtime/debug"
	"strings"
	"time"

	"github.com/fireproject/fire-engine-bridge/internal/ports"
)

// Logging returns a middleware that logs HTTP requests and responses.
func Logging(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			const defaultHTTPStatus = 200
			ww := &respWriter{ResponseWriter: w, status: defaultHTTPStatus}
			next.ServeHTTP(ww, r)
			logger.Info("http",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", ww.status),
				slog.Duration("duration", time.Since(start)),
			)
		})
	}
}

type respWriter struct {
	http.ResponseWriter
	status int
}

func (w *respWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

// Recover returns a middleware that recovers from panics and logs them.
func Recover(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					logger.Error("panic",
						slog.Any("error", err),
						slog.String("path", r.URL.Path),
						slog.String("method", r.Method),
						slog.String("stack", string(debug.Stack())))
					http.Error(w, "Internal Server Error", http.StatusInternalServerError)
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// AuthenticateOptions groups dependencies for Authenticate.
type AuthenticateOptions struct {
	Verifier ports.TokenVerifier
	Users    ports.UserRepository
	// Cache is an optional username lookup cache. Nil disables caching.
	Cache ports.UserCache
	// CacheTTL bounds how long a resolved user may be served from cache.
	CacheTTL time.Duration
}

// Authenticate returns a middleware that resolves a bearer token into a
// request identity. It never rejects: a missing header, failed
// verification, or unknown subject all continue without identity, and
// the endpoint's own policy (RequireAuth or not) decides whether that
// matters. Runs once per request and has no side effects beyond
// context population and cache refill.
func Authenticate(opts AuthenticateOptions) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if identity := resolveIdentity(r, opts); identity != nil {
				r = r.WithContext(SetIdentityInContext(r.Context(), identity))
			}
			next.ServeHTTP(w, r)
		})
	}
}

// resolveIdentity extracts and verifies the bearer token, then resolves
// the subject to a stored user. Any failure returns nil.
func resolveIdentity(r *http.Request, opts AuthenticateOptions) *Identity {
	raw, ok := bearerToken(r)
	if !ok {
		return nil
	}

	subject, err := opts.Verifier.VerifySubject(raw)
	if err != nil {
		// Invalid or expired tokens degrade to anonymous; the 401, if
		// any, comes from endpoint policy.
		return nil
	}

	ctx := r.Context()
	if opts.Cache != nil {
		if user, hit, cacheErr := opts.Cache.Get(ctx, subject); cacheErr == nil && hit {
			return &Identity{User: &user, Token: raw}
		}
		// Cache failures fall through to the store.
	}

	user, err := opts.Users.GetByUsername(ctx, subject)
	if err != nil {
		return nil
	}

	if opts.Cache != nil && opts.CacheTTL > 0 {
		// Best effort: an unreachable cache must not fail the request.
		_ = opts.Cache.Set(ctx, user, opts.CacheTTL)
	}
	return &Identity{User: &user, Token: raw}
}

// bearerToken extracts the token from an "Authorization: Bearer ..."
// header. The scheme comparison is case-insensitive.
func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return "", false
	}
	const prefix = "Bearer "
	if len(header) <= len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return "", false
	}
	token := strings.TrimSpace(header[len(prefix):])
	if token == "" {
		return "", false
	}
	return token, true
}

// RequireAuth returns a middleware that requires an authenticated
// identity in the request context. Composes after Authenticate.
func RequireAuth() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := GetIdentityFromContext(r.Context()); !ok {
				WriteError(w, ErrorParams{
					Code:    http.StatusUnauthorized,
					ErrCode: "authentication_required",
					Err:     errors.New("authentication required"),
				})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
