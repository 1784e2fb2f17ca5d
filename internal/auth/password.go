package auth

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/spec-kit/account-service/internal/domain"
)

// Hasher produces and verifies salted bcrypt password hashes.
type Hasher struct {
	cost int
}

// NewHasher builds a hasher with the configured bcrypt cost.
func NewHasher(cost int) *Hasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &Hasher{cost: cost}
}

// Hash one-way transforms a plaintext password into a storable hash.
// bcrypt embeds a random salt, so hashing the same plaintext twice
// yields different strings.
func (h *Hasher) Hash(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrHashing, err)
	}
	return string(hashed), nil
}

// Verify checks a plaintext against a stored hash. A mismatch returns
// (false, nil); only a structurally invalid hash is an error.
func (h *Hasher) Verify(password, hash string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	default:
		return false, fmt.Errorf("%w: %v", domain.ErrHashing, err)
	}
}
