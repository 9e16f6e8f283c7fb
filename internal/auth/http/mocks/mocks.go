// Package mocks provides testify mocks for the auth handler dependencies.
package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	activitydomain "github.com/patrolbook/patrolbook/internal/activity/domain"
	"github.com/patrolbook/patrolbook/internal/auth/domain"
	identitydomain "github.com/patrolbook/patrolbook/internal/identity/domain"
)

// MockLoginUseCase mocks usecase.LoginUseCase.
type MockLoginUseCase struct {
	mock.Mock
}

func (m *MockLoginUseCase) Login(ctx context.Context, username, password string) (*domain.LoginOutput, error) {
	args := m.Called(ctx, username, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LoginOutput), args.Error(1)
}

// MockPasswordUseCase mocks usecase.PasswordUseCase.
type MockPasswordUseCase struct {
	mock.Mock
}

func (m *MockPasswordUseCase) Change(ctx context.Context, identityID uuid.UUID, currentPassword, newPassword string) error {
	args := m.Called(ctx, identityID, currentPassword, newPassword)
	return args.Error(0)
}

// MockPermissionResolver mocks usecase.PermissionResolver.
type MockPermissionResolver struct {
	mock.Mock
}

func (m *MockPermissionResolver) EffectivePermissions(ctx context.Context, identity *identitydomain.Identity) (domain.PermissionSet, error) {
	args := m.Called(ctx, identity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(domain.PermissionSet), args.Error(1)
}

func (m *MockPermissionResolver) HasPermission(ctx context.Context, identity *identitydomain.Identity, code string) (bool, error) {
	args := m.Called(ctx, identity, code)
	return args.Bool(0), args.Error(1)
}

func (m *MockPermissionResolver) HasAnyPermission(ctx context.Context, identity *identitydomain.Identity, codes ...string) (bool, error) {
	args := m.Called(ctx, identity, codes)
	return args.Bool(0), args.Error(1)
}

func (m *MockPermissionResolver) HasAllPermissions(ctx context.Context, identity *identitydomain.Identity, codes ...string) (bool, error) {
	args := m.Called(ctx, identity, codes)
	return args.Bool(0), args.Error(1)
}

// MockIdentityRepository mocks usecase.IdentityRepository.
type MockIdentityRepository struct {
	mock.Mock
}

func (m *MockIdentityRepository) Create(ctx context.Context, identity *identitydomain.Identity) error {
	args := m.Called(ctx, identity)
	return args.Error(0)
}

func (m *MockIdentityRepository) GetByUsername(ctx context.Context, username string) (*identitydomain.Identity, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identitydomain.Identity), args.Error(1)
}

func (m *MockIdentityRepository) GetByID(ctx context.Context, id uuid.UUID) (*identitydomain.Identity, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identitydomain.Identity), args.Error(1)
}

func (m *MockIdentityRepository) UpdatePasswordHash(ctx context.Context, id uuid.UUID, passwordHash string) error {
	args := m.Called(ctx, id, passwordHash)
	return args.Error(0)
}

// MockPermissionRepository mocks usecase.PermissionRepository.
type MockPermissionRepository struct {
	mock.Mock
}

func (m *MockPermissionRepository) Create(ctx context.Context, permission *identitydomain.Permission) error {
	args := m.Called(ctx, permission)
	return args.Error(0)
}

func (m *MockPermissionRepository) FindAll(ctx context.Context) ([]*identitydomain.Permission, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*identitydomain.Permission), args.Error(1)
}

func (m *MockPermissionRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*identitydomain.Permission, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*identitydomain.Permission), args.Error(1)
}

// MockActivityRepository mocks usecase.ActivityRepository.
type MockActivityRepository struct {
	mock.Mock
}

func (m *MockActivityRepository) Create(ctx context.Context, entry *activitydomain.Entry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}
