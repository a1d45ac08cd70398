package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fireproject/fire-engine-bridge/internal/domain/model"
	apperrors "github.com/fireproject/fire-engine-bridge/internal/errors"
)

func TestNewFireService_RequiresURL(t *testing.T) {
	_, err := NewFireService(FireServiceOptions{EngineURL: "  "})
	assert.Error(t, err)
}

func TestFireService_Analyze_PassesThroughVerbatim(t *testing.T) {
	var gotAuth, gotContentType string
	var gotBody map[string]any

	engine := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		gotAuth = r.Header.Get("Authorization")
		gotContentType = r.Header.Get("Content-Type")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"years_to_reach_goal": 12.5,
			"reached": true,
			"final_value": 1000000,
			"confidence_score": 0.87
		}`))
	}))
	defer engine.Close()

	svc := MustNewFireService(FireServiceOptions{EngineURL: engine.URL})

	result, err := svc.Analyze(context.Background(), "caller-token", model.FireRequest{
		Payload: json.RawMessage(`{"current_savings": 50000, "monthly_contribution": 2000}`),
	})
	require.NoError(t, err)

	assert.Equal(t, "Bearer caller-token", gotAuth, "caller's token must be re-propagated")
	assert.Equal(t, "application/json", gotContentType)
	assert.Equal(t, 50000.0, gotBody["current_savings"])

	require.NotNil(t, result.YearsToReachGoal)
	assert.Equal(t, 12.5, *result.YearsToReachGoal)
	require.NotNil(t, result.Reached)
	assert.True(t, *result.Reached)
	assert.Equal(t, 1000000.0, result.SafeFinalValue())
	require.NotNil(t, result.ConfidenceScore)
	assert.Equal(t, 0.87, *result.ConfidenceScore)
	assert.Nil(t, result.Shortfall, "absent fields stay absent")
}

func TestFireService_Analyze_EmptyPayloadSendsEmptyObject(t *testing.T) {
	engine := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Empty(t, body)
		_, _ = w.Write([]byte(`{}`))
	}))
	defer engine.Close()

	svc := MustNewFireService(FireServiceOptions{EngineURL: engine.URL})

	_, err := svc.Analyze(context.Background(), "t", model.FireRequest{})
	require.NoError(t, err)
}

func TestFireService_Analyze_EngineErrorStatus(t *testing.T) {
	for _, status := range []int{http.StatusBadRequest, http.StatusInternalServerError, http.StatusBadGateway} {
		engine := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			http.Error(w, "boom", status)
		}))

		svc := MustNewFireService(FireServiceOptions{EngineURL: engine.URL})
		_, err := svc.Analyze(context.Background(), "t", model.FireRequest{})
		assert.True(t, apperrors.IsUnavailable(err), "status %d must collapse to unavailable, got %v", status, err)

		engine.Close()
	}
}

func TestFireService_Analyze_EngineUnreachable(t *testing.T) {
	engine := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	engine.Close() // nothing listening anymore

	svc := MustNewFireService(FireServiceOptions{EngineURL: engine.URL})
	_, err := svc.Analyze(context.Background(), "t", model.FireRequest{})
	assert.True(t, apperrors.IsUnavailable(err), "got %v", err)
}

func TestFireService_Analyze_Timeout(t *testing.T) {
	block := make(chan struct{})
	engine := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		<-block
	}))
	defer func() {
		close(block)
		engine.Close()
	}()

	svc := MustNewFireService(FireServiceOptions{
		EngineURL: engine.URL,
		Client:    &http.Client{Timeout: 50 * time.Millisecond},
	})
	_, err := svc.Analyze(context.Background(), "t", model.FireRequest{})
	assert.True(t, apperrors.IsUnavailable(err), "timeouts must collapse to unavailable, got %v", err)
}

func TestFireService_Analyze_EmptyTokenNeverReachesWire(t *testing.T) {
	called := false
	engine := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		called = true
	}))
	defer engine.Close()

	svc := MustNewFireService(FireServiceOptions{EngineURL: engine.URL})
	_, err := svc.Analyze(context.Background(), "", model.FireRequest{})
	require.Error(t, err)
	assert.False(t, apperrors.IsUnavailable(err), "contract violation is not an engine failure")
	assert.False(t, called, "request must not be sent without a token")
}

func TestFireService_Analyze_MalformedResponse(t *testing.T) {
	engine := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`not json at all`))
	}))
	defer engine.Close()

	svc := MustNewFireService(FireServiceOptions{EngineURL: engine.URL})
	_, err := svc.Analyze(context.Background(), "t", model.FireRequest{})
	assert.True(t, apperrors.IsUnavailable(err), "got %v", err)
}
