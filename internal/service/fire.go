package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/fireproject/fire-engine-bridge/internal/domain/model"
	apperrors "github.com/fireproject/fire-engine-bridge/internal/errors"
)

// engine responses are small; cap reads to catch a misbehaving peer.
const maxEngineResponseBytes = 1 << 20

// FireServiceOptions groups configuration for FireService.
type FireServiceOptions struct {
	// EngineURL is the analyze endpoint of the FIRE engine.
	EngineURL string
	// Timeout bounds the whole engine round trip. Defaults to 10s.
	Timeout time.Duration
	// Client overrides the HTTP client (tests). When set, its own
	// timeout is left alone.
	Client *http.Client
}

// FireService forwards analysis requests to the FIRE engine on behalf
// of an authenticated caller, re-propagating the caller's bearer token.
//
// The engine is the single authority on simulation semantics: the
// request body and the result pass through unmodified. Every failure
// mode collapses to one unavailable error so callers cannot probe the
// engine's internals through this gateway.
type FireService struct {
	engineURL string
	client    *http.Client
	logger    *slog.Logger
}

// NewFireService constructs a new FireService.
func NewFireService(opts FireServiceOptions) (*FireService, error) {
	engineURL := strings.TrimSpace(opts.EngineURL)
	if engineURL == "" {
		return nil, errors.New("fire service: engine url is required")
	}

	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	client := opts.Client
	if client == nil {
		client = &http.Client{Timeout: timeout}
	}

	return &FireService{
		engineURL: engineURL,
		client:    client,
		logger:    slog.Default().With("component", "fire_service"),
	}, nil
}

// MustNewFireService is like NewFireService but panics on error.
func MustNewFireService(opts FireServiceOptions) *FireService {
	s, err := NewFireService(opts)
	if err != nil {
		panic(err)
	}
	return s
}

// Analyze posts the caller's payload to the engine with the caller's
// bearer token and returns the decoded result verbatim. Any failure
// (dial, timeout, non-2xx, undecodable body) maps to a single
// unavailable error; the cause is logged here, not exposed.
func (s *FireService) Analyze(ctx context.Context, bearerToken string, req model.FireRequest) (model.FireResult, error) {
	// An empty token is a caller bug: protected routes always have one.
	if bearerToken == "" {
		return model.FireResult{}, apperrors.Internal("analyze called without a bearer token")
	}

	body := req.Payload
	if len(body) == 0 {
		body = []byte("{}")
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, s.engineURL, bytes.NewReader(body))
	if err != nil {
		return model.FireResult{}, s.unavailable(ctx, fmt.Errorf("create engine request: %w", err))
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+bearerToken)

	resp, err := s.client.Do(httpReq)
	if err != nil {
		return model.FireResult{}, s.unavailable(ctx, fmt.Errorf("engine request failed: %w", err))
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return model.FireResult{}, s.unavailable(ctx, fmt.Errorf("engine returned status %d", resp.StatusCode))
	}

	var result model.FireResult
	dec := json.NewDecoder(io.LimitReader(resp.Body, maxEngineResponseBytes))
	if err := dec.Decode(&result); err != nil {
		return model.FireResult{}, s.unavailable(ctx, fmt.Errorf("decode engine response: %w", err))
	}
	return result, nil
}

func (s *FireService) unavailable(ctx context.Context, cause error) error {
	s.logger.WarnContext(ctx, "engine call failed", "err", cause)
	return apperrors.Unavailable("analysis engine is unavailable", cause)
}
