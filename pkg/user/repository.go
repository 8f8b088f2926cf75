package user

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// Common errors
var (
	ErrUserNotFound = errors.New("user not found")
	ErrRoleNotFound = errors.New("role not found")
)

// UserRepository defines the store operations for user accounts.
// Save assigns an identifier when the incoming user carries none and
// otherwise persists the user under its existing identifier.
type UserRepository interface {
	Save(ctx context.Context, user User) (User, error)
	FindByID(ctx context.Context, id uuid.UUID) (User, error)
	FindByUsername(ctx context.Context, username string) (User, error)
	FindAll(ctx context.Context) ([]User, error)
	DeleteByID(ctx context.Context, id uuid.UUID) error
}

// RoleRepository defines the store operations for user roles.
// Role identifiers are store-assigned integers; roles are insert-only.
type RoleRepository interface {
	Save(ctx context.Context, role Role) (Role, error)
	FindByID(ctx context.Context, id int32) (Role, error)
	FindByName(ctx context.Context, name string) (Role, error)
	FindAll(ctx context.Context) ([]Role, error)
}
