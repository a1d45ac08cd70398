// Package ports defines interfaces (hexagonal ports) for auth and engine
// behavior. Implementations live in internal/data and internal/token;
// orchestration in internal/service.
package ports

import (
	"context"
	"time"

	"github.com/fireproject/fire-engine-bridge/internal/domain/model"
)

// CreateUserInput carries inputs for persisting a new account.
type CreateUserInput struct {
	Username     string
	Email        string
	PasswordHash string
}

// UserRepository persists and retrieves user accounts.
type UserRepository interface {
	// Create inserts the account and returns the stored row. Uniqueness of
	// username and email is enforced by the store itself; violations map to
	// conflict errors.
	Create(ctx context.Context, in CreateUserInput) (model.User, error)

	// GetByUsername returns the account for an exact (case-sensitive)
	// username match, or a not-found error.
	GetByUsername(ctx context.Context, username string) (model.User, error)

	// GetByEmail returns the account for a normalized email, or a
	// not-found error.
	GetByEmail(ctx context.Context, email string) (model.User, error)
}

// UserCache is a short-lived read-through cache keyed by username.
// Implementations must treat a miss as a normal outcome, not an error.
type UserCache interface {
	Get(ctx context.Context, username string) (model.User, bool, error)
	Set(ctx context.Context, user model.User, ttl time.Duration) error
}

// PasswordHasher hashes and verifies credentials.
type PasswordHasher interface {
	Hash(password string) (string, error)
	// Verify reports whether the password matches the stored hash.
	Verify(hash, password string) bool
	// DummyVerify burns comparable work against a throwaway hash so that
	// unknown-user and wrong-password paths take similar time.
	DummyVerify(password string)
}

// TokenIssuer mints signed bearer tokens for an authenticated account.
type TokenIssuer interface {
	Issue(user model.User) (string, error)
}

// TokenVerifier checks a bearer token and extracts the subject username.
type TokenVerifier interface {
	VerifySubject(token string) (string, error)
}

// EngineClient forwards an analysis request to the FIRE engine on behalf
// of an authenticated caller.
type EngineClient interface {
	Analyze(ctx context.Context, bearerToken string, req model.FireRequest) (model.FireResult, error)
}
