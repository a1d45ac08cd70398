// Package cryptoutil provides password hashing for account credentials.
package cryptoutil

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// BcryptHasher hashes and verifies passwords using bcrypt.
type BcryptHasher struct {
	cost int
	// dummyHash is compared against on paths where no real hash exists,
	// keeping unknown-user and wrong-password timings comparable.
	dummyHash []byte
}

// NewBcryptHasher constructs a hasher. A cost outside bcrypt's valid
// range falls back to bcrypt.DefaultCost.
func NewBcryptHasher(cost int) *BcryptHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	dummy, err := bcrypt.GenerateFromPassword([]byte("dummy-timing-pad"), cost)
	if err != nil {
		// Only reachable with an invalid cost, which is clamped above.
		panic(fmt.Sprintf("cryptoutil: generate dummy hash: %v", err))
	}
	return &BcryptHasher{cost: cost, dummyHash: dummy}
}

// Hash returns the bcrypt hash of the password.
func (h *BcryptHasher) Hash(password string) (string, error) {
	out, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(out), nil
}

// Verify reports whether the password matches the stored hash.
func (h *BcryptHasher) Verify(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// DummyVerify burns one bcrypt comparison against a throwaway hash.
func (h *BcryptHasher) DummyVerify(password string) {
	_ = bcrypt.CompareHashAndPassword(h.dummyHash, []byte(password))
}
