package bootstrap

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sycosoft/hireout/pkg/result"
	"github.com/sycosoft/hireout/pkg/user"
)

func newSeedService() *user.UserService {
	return user.NewUserService(user.NewInMemoryUserRepository(), user.NewInMemoryRoleRepository())
}

func TestSeed(t *testing.T) {
	ctx := context.Background()
	svc := newSeedService()

	res, err := Seed(ctx, SeedConfig{
		AdminFirstName: "Admin",
		AdminLastName:  "User",
		AdminPassword:  "password123",
		UserService:    svc,
	})
	require.NoError(t, err)

	assert.Equal(t, DefaultRoleNames, res.RolesCreated)
	assert.True(t, res.AdminCreated)
	assert.Empty(t, res.AdminPassword)

	roles, err := svc.GetAllUserRoles(ctx)
	require.NoError(t, err)
	assert.Len(t, roles, len(DefaultRoleNames))

	admin := svc.GetUserByUsername(ctx, user.AdminUsername)
	require.Equal(t, result.FetchSuccess, admin.Code)
	assert.Equal(t, "Admin", admin.Entity.FirstName)
	assert.Equal(t, res.AdminID, admin.Entity.ID)
}

func TestSeedIsIdempotent(t *testing.T) {
	ctx := context.Background()
	svc := newSeedService()
	cfg := SeedConfig{AdminPassword: "password123", UserService: svc}

	_, err := Seed(ctx, cfg)
	require.NoError(t, err)

	res, err := Seed(ctx, cfg)
	require.NoError(t, err)
	assert.Empty(t, res.RolesCreated)
	assert.False(t, res.AdminCreated)

	roles, err := svc.GetAllUserRoles(ctx)
	require.NoError(t, err)
	assert.Len(t, roles, len(DefaultRoleNames))

	users, err := svc.GetAllUsers(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 1)
}

func TestSeedGeneratesPassword(t *testing.T) {
	ctx := context.Background()
	svc := newSeedService()

	res, err := Seed(ctx, SeedConfig{UserService: svc})
	require.NoError(t, err)
	assert.True(t, res.AdminCreated)
	assert.NotEmpty(t, res.AdminPassword)

	admin := svc.GetUserByUsername(ctx, user.AdminUsername)
	require.Equal(t, result.FetchSuccess, admin.Code)
	assert.Equal(t, res.AdminPassword, admin.Entity.Password)
}

func TestSeedRequiresService(t *testing.T) {
	_, err := Seed(context.Background(), SeedConfig{})
	assert.Error(t, err)
}
