package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/fireproject/fire-engine-bridge/internal/domain/model"
	apperrors "github.com/fireproject/fire-engine-bridge/internal/errors"
	"github.com/fireproject/fire-engine-bridge/internal/ports"
)

// AuthServiceOptions groups dependencies for AuthService.
type AuthServiceOptions struct {
	Users  ports.UserRepository
	Hasher ports.PasswordHasher
	Tokens ports.TokenIssuer
}

// AuthService orchestrates registration and credential login.
type AuthService struct {
	users  ports.UserRepository
	hasher ports.PasswordHasher
	tokens ports.TokenIssuer
}

// NewAuthService constructs a new AuthService.
func NewAuthService(opts AuthServiceOptions) (*AuthService, error) {
	if opts.Users == nil {
		return nil, errors.New("auth service: user repository is required")
	}
	if opts.Hasher == nil {
		return nil, errors.New("auth service: password hasher is required")
	}
	if opts.Tokens == nil {
		return nil, errors.New("auth service: token issuer is required")
	}
	return &AuthService{users: opts.Users, hasher: opts.Hasher, tokens: opts.Tokens}, nil
}

// MustNewAuthService is like NewAuthService but panics on error.
func MustNewAuthService(opts AuthServiceOptions) *AuthService {
	s, err := NewAuthService(opts)
	if err != nil {
		panic(err)
	}
	return s
}

// Register creates a new account. Username and email must each be
// unused. The existence pre-checks give friendly conflicts on the
// common path, but the store's unique indexes are the authoritative
// guard: two concurrent registrations of the same name can both pass
// the pre-check and only one insert wins.
func (s *AuthService) Register(ctx context.Context, req model.RegisterRequest) (model.User, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return model.User{}, apperrors.Validation(err.Error())
	}

	if err := s.checkAvailability(ctx, req); err != nil {
		return model.User{}, err
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return model.User{}, fmt.Errorf("register: %w", err)
	}

	user, err := s.users.Create(ctx, ports.CreateUserInput{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hash,
	})
	if err != nil {
		// A racing duplicate lands here as a unique violation; present
		// it the same way the pre-check would have.
		if apperrors.IsConflict(err) {
			return model.User{}, conflictForField(apperrors.GetField(err))
		}
		return model.User{}, fmt.Errorf("register: %w", err)
	}
	return user, nil
}

// checkAvailability reports a conflict when the username or email is
// already registered. Advisory only: the insert remains the final word.
func (s *AuthService) checkAvailability(ctx context.Context, req model.RegisterRequest) error {
	_, err := s.users.GetByUsername(ctx, req.Username)
	switch {
	case err == nil:
		return conflictForField("username")
	case !apperrors.IsNotFound(err):
		return fmt.Errorf("register: check username: %w", err)
	}

	_, err = s.users.GetByEmail(ctx, req.Email)
	switch {
	case err == nil:
		return conflictForField("email")
	case !apperrors.IsNotFound(err):
		return fmt.Errorf("register: check email: %w", err)
	}
	return nil
}

func conflictForField(field string) error {
	if field == "email" {
		return apperrors.Conflict("email", "email already registered")
	}
	return apperrors.Conflict("username", "username already taken")
}

// Login verifies credentials and mints a bearer token. Unknown username
// and wrong password are indistinguishable to the caller, and both
// paths burn a hash comparison so timing does not tell them apart.
func (s *AuthService) Login(ctx context.Context, req model.LoginRequest) (string, error) {
	if err := req.Validate(); err != nil {
		return "", apperrors.Validation(err.Error())
	}

	user, err := s.users.GetByUsername(ctx, req.Username)
	if err != nil {
		if apperrors.IsNotFound(err) {
			s.hasher.DummyVerify(req.Password)
			return "", apperrors.Unauthorized("invalid credentials")
		}
		return "", fmt.Errorf("login: %w", err)
	}

	if !s.hasher.Verify(user.PasswordHash, req.Password) {
		return "", apperrors.Unauthorized("invalid credentials")
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return "", fmt.Errorf("login: issue token: %w", err)
	}
	return token, nil
}
