package config

import "time"

// EngineConfig contains configuration for the downstream FIRE computation
// engine. The engine is an opaque HTTP peer: the bridge forwards the caller's
// analyze payload to it and relays the structured result back.
type EngineConfig struct {
	// URL is the full analyze endpoint of the engine.
	URL string `env:"URL" envDefault:"http://localhost:8000/analyze"`

	// Timeout bounds a single outbound call. The bridge performs exactly one
	// attempt per inbound request; retries are left to callers.
	Timeout time.Duration `env:"TIMEOUT" envDefault:"10s"`
}

// Sanitize applies guardrails to engine configuration values.
func (e *EngineConfig) Sanitize() {
	if e.Timeout <= 0 {
		e.Timeout = 10 * time.Second
	}
	if e.Timeout > 2*time.Minute {
		e.Timeout = 2 * time.Minute
	}
}
