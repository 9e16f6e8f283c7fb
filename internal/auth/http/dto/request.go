// Package dto defines the request and response bodies of the auth endpoints.
package dto

import (
	validation "github.com/jellydator/validation"

	appvalidation "github.com/patrolbook/patrolbook/internal/validation"
)

// LoginRequest is the body of POST /v1/login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Validate validates the login request.
func (r LoginRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Username, validation.Required, appvalidation.NotBlank, validation.Length(1, 255)),
		validation.Field(&r.Password, validation.Required, validation.Length(1, 1024)),
	)
}

// ChangePasswordRequest is the body of POST /v1/password.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

// Validate validates the change-password request. The strength rule here
// mirrors the one enforced inside the flow so callers get a 422 with a field
// message instead of a bare rejection.
func (r ChangePasswordRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.CurrentPassword, validation.Required),
		validation.Field(&r.NewPassword, validation.Required, appvalidation.PasswordStrength{
			MinLength:     8,
			RequireUpper:  true,
			RequireLower:  true,
			RequireNumber: true,
		}),
	)
}
