// Package token issues and verifies the HS256 bearer tokens that guard
// the gateway's protected endpoints. Tokens are stateless: nothing is
// stored server-side, so rotating the signing secret invalidates every
// outstanding token at once.
package token

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/fireproject/fire-engine-bridge/internal/domain/model"
)

// Issuer is the fixed "iss" claim stamped on every token.
const Issuer = "fire project"

// Token errors. Callers branch on class, not message.
var (
	// ErrTokenInput marks a blank or structurally unusable token string.
	ErrTokenInput = errors.New("token: empty or malformed input")
	// ErrTokenVerification marks any failed verification: bad signature,
	// wrong issuer, unexpected algorithm, or expiry (the latter wraps
	// jwt.ErrTokenExpired for callers that care).
	ErrTokenVerification = errors.New("token: verification failed")
	// ErrTokenCreation marks a signing failure. With a well-formed secret
	// this should not happen; treat as internal.
	ErrTokenCreation = errors.New("token: creation failed")
)

// expirationOffset pins expiry computation to a fixed UTC-6 offset
// rather than the host zone. Carried over from the system this gateway
// replaces so that tokens minted by either side agree on lifetimes.
var expirationOffset = time.FixedZone("UTC-6", -6*60*60)

// Options configures a Service.
type Options struct {
	// Secret signs and verifies tokens. Must be non-empty.
	Secret string
	// TTL is the token lifetime. Must be positive.
	TTL time.Duration
}

// Service mints and verifies HS256 JWTs.
type Service struct {
	secret []byte
	ttl    time.Duration
}

// NewService validates options and returns a token service.
func NewService(opts Options) (*Service, error) {
	if strings.TrimSpace(opts.Secret) == "" {
		return nil, errors.New("token: secret is required")
	}
	if opts.TTL <= 0 {
		return nil, errors.New("token: ttl must be positive")
	}
	return &Service{secret: []byte(opts.Secret), ttl: opts.TTL}, nil
}

// MustNewService is like NewService but panics on error. For wiring code
// where options are static.
func MustNewService(opts Options) *Service {
	s, err := NewService(opts)
	if err != nil {
		panic(err)
	}
	return s
}

// Issue signs a token for the user: sub carries the username, id the
// user's storage ID, exp the expiry computed in the fixed offset zone.
func (s *Service) Issue(user model.User) (string, error) {
	now := time.Now().In(expirationOffset)
	claims := jwt.MapClaims{
		"iss": Issuer,
		"sub": user.Username,
		"id":  user.ID,
		"exp": now.Add(s.ttl).Unix(),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrTokenCreation, err)
	}
	return signed, nil
}

// VerifySubject checks the signature, issuer, and expiry of a token and
// returns its subject username. It never consults the user store; the
// signature alone is trusted.
func (s *Service) VerifySubject(tokenString string) (string, error) {
	if strings.TrimSpace(tokenString) == "" {
		return "", ErrTokenInput
	}

	tok, err := jwt.Parse(tokenString, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithIssuer(Issuer), jwt.WithExpirationRequired())
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", fmt.Errorf("%w: %w", ErrTokenVerification, jwt.ErrTokenExpired)
		}
		return "", fmt.Errorf("%w: %v", ErrTokenVerification, err)
	}
	if !tok.Valid {
		return "", ErrTokenVerification
	}

	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return "", ErrTokenVerification
	}
	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return "", fmt.Errorf("%w: missing sub claim", ErrTokenVerification)
	}
	return sub, nil
}
