package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/patrolbook/patrolbook/internal/app"
	"github.com/patrolbook/patrolbook/internal/config"
)

// RunResetPassword replaces an identity's password from the operator console.
// This path deliberately skips the similarity guard: it exists for lockouts
// where the current password is unknown. When password is empty a random one
// is generated and printed once.
func RunResetPassword(ctx context.Context, io IOTuple, username, password string) error {
	username = strings.TrimSpace(username)
	if username == "" {
		return fmt.Errorf("username is required")
	}

	generated := false
	if password == "" {
		var err error
		password, err = generatePassword()
		if err != nil {
			return err
		}
		generated = true
	}

	cfg := config.Load()
	container := app.NewContainer(cfg)
	logger := container.Logger()
	defer closeContainer(container, logger)

	hasher, err := container.PasswordHasher()
	if err != nil {
		return err
	}
	identityRepo, err := container.IdentityRepository()
	if err != nil {
		return err
	}

	identity, err := identityRepo.GetByUsername(ctx, username)
	if err != nil {
		return fmt.Errorf("failed to look up identity: %w", err)
	}

	passwordHash, err := hasher.Hash(password)
	if err != nil {
		return err
	}

	if err := identityRepo.UpdatePasswordHash(ctx, identity.ID, passwordHash); err != nil {
		return fmt.Errorf("failed to reset password: %w", err)
	}

	fmt.Fprintf(io.Writer, "Password reset for %s\n", identity.Username)
	if generated {
		fmt.Fprintf(io.Writer, "  New password: %s\n", password)
		fmt.Fprintf(io.Writer, "\nStore this password securely - it will not be shown again.\n")
	}
	return nil
}
