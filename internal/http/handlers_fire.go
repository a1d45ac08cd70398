package httpx

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/fireproject/fire-engine-bridge/internal/domain/model"
	apperrors "github.com/fireproject/fire-engine-bridge/internal/errors"
	"github.com/fireproject/fire-engine-bridge/internal/ports"
)

// FireHandlers provides HTTP handlers for analysis proxying.
type FireHandlers struct {
	Engine ports.EngineClient
}

// Analyze handles POST /api/v1/fire/analyze. The body is an arbitrary
// JSON object owned by the engine; this handler only checks that it is
// JSON at all before forwarding it with the caller's token.
func (h *FireHandlers) Analyze(w http.ResponseWriter, r *http.Request) {
	identity, ok := GetIdentityFromContext(r.Context())
	if !ok {
		// RequireAuth guards this route; reaching here without an
		// identity means a wiring mistake, answered the same way.
		WriteError(w, ErrorParams{
			Code:    http.StatusUnauthorized,
			ErrCode: "authentication_required",
			Err:     errors.New("authentication required"),
		})
		return
	}

	var payload json.RawMessage
	if !DecodeJSON(w, r, &payload) {
		return
	}

	result, err := h.Engine.Analyze(r.Context(), identity.Token, model.FireRequest{Payload: payload})
	if err != nil {
		if apperrors.IsUnavailable(err) {
			// Engine failures answer 400 with a generic message,
			// matching the contract this gateway replaces.
			WriteError(w, ErrorParams{Code: http.StatusBadRequest, ErrCode: "engine_unavailable", Err: err})
			return
		}
		WriteError(w, ErrorParams{Code: http.StatusInternalServerError, ErrCode: "analyze_failed", Err: err})
		return
	}

	WriteJSON(w, http.StatusOK, result)
}
