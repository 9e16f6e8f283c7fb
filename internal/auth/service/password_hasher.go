package service

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/patrolbook/patrolbook/internal/errors"
)

type bcryptPasswordHasher struct {
	cost int
}

// NewBcryptPasswordHasher returns a PasswordHasher backed by bcrypt at the
// given cost factor.
func NewBcryptPasswordHasher(cost int) (PasswordHasher, error) {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		return nil, errors.Wrap(errors.ErrInvalidInput, "bcrypt cost out of range")
	}
	return &bcryptPasswordHasher{cost: cost}, nil
}

func (h *bcryptPasswordHasher) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", errors.Wrap(errors.ErrInvalidInput, "hash password: "+err.Error())
	}
	return string(hash), nil
}

// Verify treats every comparison failure, including malformed or non-bcrypt
// hashes, as a mismatch.
func (h *bcryptPasswordHasher) Verify(password, encodedHash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(encodedHash), []byte(password)) == nil
}
