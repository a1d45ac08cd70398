package config

import "time"

// InsecureDefaultSecret is the development fallback for the token signing
// secret. Deployments must override API_SECURITY_SECRET in production;
// anyone who knows this value can mint valid tokens.
const InsecureDefaultSecret = "defaultSecret123"

// AuthConfig contains token signing and user-cache configuration.
type AuthConfig struct {
	// Secret is the HMAC key used to sign and verify identity tokens.
	// Rotating it invalidates every outstanding token.
	Secret string `env:"API_SECURITY_SECRET" envDefault:"defaultSecret123"`

	// TokenTTL is the validity window for issued tokens.
	TokenTTL time.Duration `env:"TOKEN_TTL" envDefault:"2h"`

	// UserCacheTTL bounds how long a resolved user may be served from the
	// Redis cache before the middleware consults Postgres again.
	UserCacheTTL time.Duration `env:"USER_CACHE_TTL" envDefault:"30s"`
}

// Sanitize applies guardrails to auth configuration values.
func (a *AuthConfig) Sanitize() {
	if a.TokenTTL <= 0 {
		a.TokenTTL = 2 * time.Hour
	}
	if a.UserCacheTTL < 0 {
		a.UserCacheTTL = 0
	}
}

// UsesInsecureSecret reports whether the signing secret is still the
// development default.
func (a *AuthConfig) UsesInsecureSecret() bool {
	return a.Secret == InsecureDefaultSecret
}
