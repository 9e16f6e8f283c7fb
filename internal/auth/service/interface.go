// Package service implements the cryptographic building blocks of the auth
// core: password hashing, password similarity checks, and session tokens.
package service

import (
	"time"

	"github.com/patrolbook/patrolbook/internal/auth/domain"
)

// PasswordHasher hashes plaintext passwords and verifies candidates against
// stored hashes.
type PasswordHasher interface {
	// Hash derives a salted hash from the plaintext password.
	Hash(password string) (string, error)
	// Verify reports whether the plaintext matches the stored hash. It never
	// returns an error: malformed or foreign hash formats yield false.
	Verify(password, encodedHash string) bool
}

// SimilarityGuard decides whether a candidate new password is too close to the
// password it would replace.
type SimilarityGuard interface {
	IsTooSimilar(newPassword, oldPassword string) bool
}

// TokenService issues and verifies signed session tokens.
type TokenService interface {
	// Issue signs a token for the given subject and role. Both arguments must
	// be non-blank.
	Issue(subjectID, role string) (string, error)
	// Verify checks the signature and expiry and returns the payload. Failures
	// are reported through the domain token sentinels, all of which wrap the
	// shared unauthorized root.
	Verify(token string) (*domain.TokenPayload, error)
	// DecodeUnverified extracts the payload without checking the signature.
	// Expiry is still enforced. Only suitable for logging and diagnostics.
	DecodeUnverified(token string) (*domain.TokenPayload, error)
	// TTL returns the configured token lifetime.
	TTL() time.Duration
}
