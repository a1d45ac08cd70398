// Package httpx provides HTTP handlers and middleware for the FIRE
// engine bridge API.
package httpx

import (
	"net/http"

	"github.com/fireproject/fire-engine-bridge/internal/domain/model"
	apperrors "github.com/fireproject/fire-engine-bridge/internal/errors"
	"github.com/fireproject/fire-engine-bridge/internal/service"
)

// AuthHandlers provides HTTP handlers for registration and login.
type AuthHandlers struct {
	Svc *service.AuthService
}

// Register handles POST /auth/register.
func (h *AuthHandlers) Register(w http.ResponseWriter, r *http.Request) {
	var req model.RegisterRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	if _, err := h.Svc.Register(r.Context(), req); err != nil {
		switch {
		case apperrors.IsValidation(err):
			WriteError(w, ErrorParams{Code: http.StatusBadRequest, ErrCode: "validation_failed", Err: err})
		case apperrors.IsConflict(err):
			// Duplicates answer 400, matching the contract this gateway
			// replaces, with a field-specific code.
			WriteError(w, ErrorParams{
				Code:    http.StatusBadRequest,
				ErrCode: apperrors.GetField(err) + "_taken",
				Err:     err,
			})
		default:
			WriteError(w, ErrorParams{Code: http.StatusInternalServerError, ErrCode: "registration_failed", Err: err})
		}
		return
	}

	WriteJSON(w, http.StatusOK, map[string]string{"message": "user registered successfully"})
}

// Login handles POST /auth/login.
func (h *AuthHandlers) Login(w http.ResponseWriter, r *http.Request) {
	var req model.LoginRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	token, err := h.Svc.Login(r.Context(), req)
	if err != nil {
		switch {
		case apperrors.IsValidation(err):
			WriteError(w, ErrorParams{Code: http.StatusBadRequest, ErrCode: "validation_failed", Err: err})
		case apperrors.IsUnauthorized(err):
			WriteError(w, ErrorParams{Code: http.StatusUnauthorized, ErrCode: "invalid_credentials", Err: err})
		default:
			WriteError(w, ErrorParams{Code: http.StatusInternalServerError, ErrCode: "login_failed", Err: err})
		}
		return
	}

	WriteJSON(w, http.StatusOK, model.TokenResponse{Token: token})
}
