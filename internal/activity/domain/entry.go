// Package domain defines the activity-log entry written by auth flows.
// The log is a pure write-sink for this service: entries are appended on login
// and password change and consumed elsewhere (reporting, audit review).
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Well-known activity actions recorded by the auth core.
const (
	ActionLogin          = "auth.login"
	ActionLoginFailed    = "auth.login_failed"
	ActionPasswordChange = "auth.password_change"
)

// Entry is an append-only record of a security-relevant action.
type Entry struct {
	ID         uuid.UUID
	ActorID    *uuid.UUID // nil for failed logins where no identity resolved
	Action     string
	Detail     string
	OccurredAt time.Time
}
