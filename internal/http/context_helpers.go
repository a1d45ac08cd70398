package httpx

import (
	"context"

	"github.com/fireproject/fire-engine-bridge/internal/domain/model"
)

// Identity is the authenticated principal attached to a request: the
// resolved user plus the raw bearer token it arrived with. The token is
// retained so downstream calls can re-propagate the caller's identity.
type Identity struct {
	User  *model.User
	Token string
}

// identityKey is an unexported context key type to avoid collisions across packages.
// Centralized in this file so all handlers/middleware use the same key.
type identityKey struct{}

// SetIdentityInContext returns a child context that carries the given identity.
// If identity is nil, the original ctx is returned unchanged.
func SetIdentityInContext(ctx context.Context, identity *Identity) context.Context {
	if identity == nil {
		return ctx
	}
	return context.WithValue(ctx, identityKey{}, identity)
}

// GetIdentityFromContext returns the identity from context and a boolean indicating presence.
func GetIdentityFromContext(ctx context.Context) (*Identity, bool) {
	if identity, ok := ctx.Value(identityKey{}).(*Identity); ok && identity != nil {
		return identity, true
	}
	return nil, false
}
