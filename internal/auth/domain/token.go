package domain

import (
	"time"

	identitydomain "github.com/patrolbook/patrolbook/internal/identity/domain"
)

// TokenIssuer is the iss claim stamped on every issued token.
const TokenIssuer = "patrolbook"

// TokenPayload is the decoded body of a session token. SubjectID is the
// identity id the token was issued for; Role is the coarse role captured at
// issue time, so a role change does not invalidate outstanding tokens.
type TokenPayload struct {
	SubjectID string
	Role      identitydomain.CoarseRole
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// LoginOutput is the result of a successful login.
type LoginOutput struct {
	Token     string
	ExpiresAt time.Time
	Identity  *identitydomain.Identity
}
