package bootstrap

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/sycosoft/hireout/pkg/user"
)

// DefaultRoleNames are the roles seeded on first run
var DefaultRoleNames = []string{
	"ROLE_ADMIN",
	"ROLE_POWER_USER",
	"ROLE_USER",
	"ROLE_ACCOUNTING",
	"ROLE_READ_ONLY",
}

// SeedConfig contains configuration for seeding default roles and the admin user
type SeedConfig struct {
	// Admin account fields (from ADMIN_FIRST_NAME, ADMIN_LAST_NAME, ADMIN_PASSWORD)
	AdminFirstName string
	AdminLastName  string
	AdminPassword  string

	// Service dependency
	UserService *user.UserService
}

// SeedResult describes what the seed routine created
type SeedResult struct {
	RolesCreated []string

	AdminCreated  bool
	AdminID       uuid.UUID
	AdminPassword string // only populated if auto-generated
}

// Seed ensures the default roles and the admin account exist. Each step is
// gated on its table being empty, so running it on every startup is safe.
func Seed(ctx context.Context, cfg SeedConfig) (*SeedResult, error) {
	if cfg.UserService == nil {
		return nil, fmt.Errorf("UserService is required")
	}

	seedResult := &SeedResult{}

	created, err := seedDefaultRoles(ctx, cfg.UserService)
	if err != nil {
		return nil, fmt.Errorf("failed to seed default roles: %w", err)
	}
	seedResult.RolesCreated = created

	if err := seedAdminUser(ctx, cfg, seedResult); err != nil {
		return nil, fmt.Errorf("failed to seed admin user: %w", err)
	}

	slog.Info("Seed completed",
		"roles_created", len(seedResult.RolesCreated),
		"admin_created", seedResult.AdminCreated)

	return seedResult, nil
}

func seedDefaultRoles(ctx context.Context, svc *user.UserService) ([]string, error) {
	existing, err := svc.GetAllUserRoles(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list roles: %w", err)
	}
	if len(existing) > 0 {
		slog.Info("Roles already exist - skipping role seed", "count", len(existing))
		return nil, nil
	}

	var created []string
	for _, res := range svc.SaveUserRolesByName(ctx, DefaultRoleNames) {
		if res.Failed() {
			return nil, fmt.Errorf("failed to create role: %s", res.ErrorMessage)
		}
		slog.Info("Default role created", "role", res.Entity.Name, "id", res.Entity.ID)
		created = append(created, res.Entity.Name)
	}
	return created, nil
}

func seedAdminUser(ctx context.Context, cfg SeedConfig, seedResult *SeedResult) error {
	existing, err := cfg.UserService.GetAllUsers(ctx)
	if err != nil {
		return fmt.Errorf("failed to list users: %w", err)
	}
	if len(existing) > 0 {
		slog.Info("Users already exist - skipping admin seed", "count", len(existing))
		return nil
	}

	password := cfg.AdminPassword
	if password == "" {
		password, err = generatePassword()
		if err != nil {
			return fmt.Errorf("failed to generate admin password: %w", err)
		}
		seedResult.AdminPassword = password
	}

	firstName := cfg.AdminFirstName
	if firstName == "" {
		firstName = "Admin"
	}
	lastName := cfg.AdminLastName
	if lastName == "" {
		lastName = "User"
	}

	res := cfg.UserService.SaveUser(ctx, user.User{
		Username:  user.AdminUsername,
		Password:  password,
		FirstName: firstName,
		LastName:  lastName,
	})
	if res.Failed() {
		return fmt.Errorf("failed to create admin user: %s", res.ErrorMessage)
	}

	seedResult.AdminCreated = true
	seedResult.AdminID = res.Entity.ID
	slog.Info("Admin user created", "username", res.Entity.Username, "user_id", res.Entity.ID)
	return nil
}

func generatePassword() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
