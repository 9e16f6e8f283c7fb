package commands

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/patrolbook/patrolbook/internal/app"
	"github.com/patrolbook/patrolbook/internal/config"
	identitydomain "github.com/patrolbook/patrolbook/internal/identity/domain"
)

// RunCreateIdentity creates a new identity. When password is empty a random
// one is generated and printed once.
func RunCreateIdentity(ctx context.Context, io IOTuple, username, name, role, password string) error {
	username = strings.TrimSpace(username)
	if username == "" {
		return fmt.Errorf("username is required")
	}
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("name is required")
	}

	coarseRole, err := parseCoarseRole(role)
	if err != nil {
		return err
	}

	generated := false
	if password == "" {
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

	passwordHash, err := hasher.Hash(password)
	if err != nil {
		return err
	}

	now := time.Now()
	identity := &identitydomain.Identity{
		ID:           uuid.Must(uuid.NewV7()),
		Username:     username,
		Name:         name,
		PasswordHash: passwordHash,
		Role:         coarseRole,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := identityRepo.Create(ctx, identity); err != nil {
		return fmt.Errorf("failed to create identity: %w", err)
	}

	fmt.Fprintf(io.Writer, "Identity created:\n")
	fmt.Fprintf(io.Writer, "  ID:       %s\n", identity.ID)
	fmt.Fprintf(io.Writer, "  Username: %s\n", identity.Username)
	fmt.Fprintf(io.Writer, "  Role:     %s\n", identity.Role)
	if generated {
		fmt.Fprintf(io.Writer, "  Password: %s\n", password)
		fmt.Fprintf(io.Writer, "\nStore this password securely - it will not be shown again.\n")
	}
	return nil
}
