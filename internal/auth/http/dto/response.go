package dto

import (
	"time"

	"github.com/patrolbook/patrolbook/internal/auth/domain"
	identitydomain "github.com/patrolbook/patrolbook/internal/identity/domain"
)

// LoginResponse is the body returned by a successful login.
type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// NewLoginResponse builds the response from the flow output.
func NewLoginResponse(output *domain.LoginOutput) LoginResponse {
	return LoginResponse{Token: output.Token, ExpiresAt: output.ExpiresAt}
}

// MeResponse describes the authenticated identity and its effective
// permissions.
type MeResponse struct {
	ID          string   `json:"id"`
	Username    string   `json:"username"`
	Name        string   `json:"name"`
	Role        string   `json:"role"`
	Permissions []string `json:"permissions"`
}

// NewMeResponse builds the response from an identity and its resolved
// permission set.
func NewMeResponse(identity *identitydomain.Identity, permissions domain.PermissionSet) MeResponse {
	return MeResponse{
		ID:          identity.ID.String(),
		Username:    identity.Username,
		Name:        identity.Name,
		Role:        string(identity.Role),
		Permissions: permissions.Codes(),
	}
}

// PermissionResponse is a single permission catalogue entry.
type PermissionResponse struct {
	ID   string `json:"id"`
	Code string `json:"code"`
}

// NewPermissionListResponse builds the catalogue listing.
func NewPermissionListResponse(permissions []*identitydomain.Permission) []PermissionResponse {
	out := make([]PermissionResponse, 0, len(permissions))
	for _, permission := range permissions {
		out = append(out, PermissionResponse{ID: permission.ID.String(), Code: permission.Code})
	}
	return out
}
