package config

// AppConfig is the main application configuration struct that composes
// domain-specific configuration from separate files.
//
// Configuration is loaded from environment variables using the
// github.com/caarlos0/env library. See individual domain config
// files for details on available environment variables:
//   - auth.go: Token signing and user-cache configuration
//   - database.go: Database and cache configuration
//   - engine.go: Downstream FIRE engine configuration
//   - http.go: HTTP server configuration
type AppConfig struct {
	// IsDev enables development mode (debug-level logging).
	IsDev bool `env:"DEV" envDefault:"false"`

	// Auth contains token signing and verification configuration.
	Auth AuthConfig

	// Database configuration
	Postgres DBConfig    `envPrefix:"DB_"`
	Redis    RedisConfig `envPrefix:"REDIS_"`

	// HTTP server configuration
	HTTP HTTPConfig

	// Engine is the downstream FIRE computation engine configuration.
	Engine EngineConfig `envPrefix:"ENGINE_"`
}

// Sanitize applies guardrails to configuration values loaded from env.
// This should be called after loading configuration from environment variables.
func (c *AppConfig) Sanitize() {
	c.Auth.Sanitize()
	c.Engine.Sanitize()
}
