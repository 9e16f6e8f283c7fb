// Package domain defines the authentication domain model: token payloads,
// permission sets, and the error taxonomy for the verification paths.
package domain

import (
	"github.com/patrolbook/patrolbook/internal/errors"
)

// Authentication errors. Every verification-path failure wraps ErrUnauthorized so
// the HTTP boundary collapses them to a single unauthorized outcome; the distinct
// sentinels exist for internal logging only, never for client responses.
var (
	// ErrInvalidCredentials indicates a login with an unknown username or wrong
	// password. The two cases are deliberately indistinguishable.
	ErrInvalidCredentials = errors.Wrap(errors.ErrUnauthorized, "invalid credentials")

	// ErrMalformedToken indicates a token with the wrong segment count, an
	// undecodable payload, or missing required fields.
	ErrMalformedToken = errors.Wrap(errors.ErrUnauthorized, "malformed token")

	// ErrTokenExpired indicates a structurally valid token past its expiry.
	ErrTokenExpired = errors.Wrap(errors.ErrUnauthorized, "token expired")

	// ErrSignatureMismatch indicates a token that decodes but fails cryptographic
	// verification against the signing secret.
	ErrSignatureMismatch = errors.Wrap(errors.ErrUnauthorized, "token signature mismatch")

	// ErrUnknownRole indicates a verified token carrying a role outside the known
	// coarse set. Treated as an invalid token, not as "no permissions".
	ErrUnknownRole = errors.Wrap(errors.ErrUnauthorized, "unknown role")

	// ErrPasswordTooSimilar indicates a candidate new password rejected by the
	// similarity guard during a password change.
	ErrPasswordTooSimilar = errors.Wrap(errors.ErrInvalidInput, "new password is too similar to the current one")

	// ErrMissingSigningSecret indicates the token signing secret is not
	// configured. This is the one failure that must surface loudly at startup.
	ErrMissingSigningSecret = errors.New("token signing secret is not configured")
)
