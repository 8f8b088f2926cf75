package user

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/sycosoft/hireout/pkg/result"
)

// AdminUsername is the distinguished account that can never be deleted.
const AdminUsername = "admin.user"

// Failure messages carried in result envelopes. The exact wording is part of
// the caller-visible contract.
const (
	MsgFirstNameNullOrBlank = "Please provide a first name."
	MsgLastNameNullOrBlank  = "Please provide a last name."
	MsgUsernameNullOrBlank  = "Please provide a username."
	MsgPasswordNullOrBlank  = "Please provide a password."
	MsgUsernameNotUnique    = "Username already being used. Please choose another."
	MsgNothingToUpdate      = "Nothing to update for provided user."

	MsgUserNotFoundUUID     = "User not found with UUID of "
	MsgUserNotFoundUsername = "User not found with username of "
	MsgUserUUIDNullOrBlank  = "User UUID is null or blank."
	MsgUsernameImmutable    = "Username cannot be changed."

	MsgAdminUserNotFound = "Admin user not found. Reason: "
	MsgCannotDeleteAdmin = "Cannot delete Admin user."

	MsgRoleNameNullOrBlank = "Please provide a name for this role."
	MsgRoleNotFoundID      = "Role not found with ID of "
	MsgRoleNotFoundName    = "Role not found with name of "
	MsgRoleNotUnique       = "Role name already being used. Please choose another."
	MsgNoRolesToSaveInList = "No roles in the list to save."

	MsgAddRoleNotImplemented = "Adding a role to a user is not implemented."
)

// UserService validates inputs, enforces uniqueness and admin-protection
// invariants, and translates store failures into result envelopes. It never
// returns a store error to its caller; every operation reports through the
// envelope's failure code and message.
type UserService struct {
	users UserRepository
	roles RoleRepository
}

// NewUserService creates a new user/role service over the given repositories
func NewUserService(users UserRepository, roles RoleRepository) *UserService {
	return &UserService{
		users: users,
		roles: roles,
	}
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// SaveUser validates and persists a new user. Field checks run in a fixed
// order and the first violation wins; the store is not touched before the
// uniqueness check.
func (s *UserService) SaveUser(ctx context.Context, user User) result.Result[User] {
	if isBlank(user.FirstName) {
		return result.Failure[User](result.CreationFailure, MsgFirstNameNullOrBlank)
	}
	if isBlank(user.LastName) {
		return result.Failure[User](result.CreationFailure, MsgLastNameNullOrBlank)
	}
	if isBlank(user.Username) {
		return result.Failure[User](result.CreationFailure, MsgUsernameNullOrBlank)
	}

	_, err := s.users.FindByUsername(ctx, user.Username)
	if err == nil {
		return result.Failure[User](result.CreationFailure, MsgUsernameNotUnique)
	}
	if !errors.Is(err, ErrUserNotFound) {
		slog.Error("Failed checking username uniqueness", "username", user.Username, "error", err)
		return result.Failure[User](result.CreationFailure, err.Error())
	}

	if isBlank(user.Password) {
		return result.Failure[User](result.CreationFailure, MsgPasswordNullOrBlank)
	}

	saved, err := s.users.Save(ctx, user)
	if err != nil {
		slog.Error("Failed saving user", "username", user.Username, "error", err)
		return result.Failure[User](result.CreationFailure, err.Error())
	}
	return result.Success(result.CreationSuccess, saved)
}

// UpdateUser applies the changed fields of the incoming user to the stored
// record. Username is immutable; an update that changes nothing fails.
func (s *UserService) UpdateUser(ctx context.Context, user User) result.Result[User] {
	if user.ID == uuid.Nil {
		return result.Failure[User](result.UpdateFailure, MsgUserUUIDNullOrBlank)
	}

	found := s.GetUser(ctx, user.ID)
	if found.Code == result.FetchFailure {
		return result.Failure[User](result.UpdateFailure, found.ErrorMessage)
	}

	current := found.Entity
	updateNeeded := false

	if !isBlank(user.FirstName) && user.FirstName != current.FirstName {
		current.FirstName = user.FirstName
		updateNeeded = true
	}
	if !isBlank(user.LastName) && user.LastName != current.LastName {
		current.LastName = user.LastName
		updateNeeded = true
	}
	if !isBlank(user.Username) && user.Username != current.Username {
		return result.Failure[User](result.UpdateFailure, MsgUsernameImmutable)
	}
	if !isBlank(user.Password) && user.Password != current.Password {
		current.Password = user.Password
		updateNeeded = true
	}

	if !updateNeeded {
		return result.Failure[User](result.UpdateFailure, MsgNothingToUpdate)
	}

	saved, err := s.users.Save(ctx, current)
	if err != nil {
		slog.Error("Failed updating user", "uuid", current.ID, "error", err)
		return result.Failure[User](result.UpdateFailure, err.Error())
	}
	return result.Success(result.UpdateSuccess, saved)
}

// GetUser fetches a user by identifier
func (s *UserService) GetUser(ctx context.Context, id uuid.UUID) result.Result[User] {
	found, err := s.users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return result.Failure[User](result.FetchFailure, MsgUserNotFoundUUID+id.String())
		}
		return result.Failure[User](result.FetchFailure, err.Error())
	}
	return result.Success(result.FetchSuccess, found)
}

// GetUserByUsername fetches a user by its unique username
func (s *UserService) GetUserByUsername(ctx context.Context, username string) result.Result[User] {
	found, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return result.Failure[User](result.FetchFailure, MsgUserNotFoundUsername+username)
		}
		return result.Failure[User](result.FetchFailure, err.Error())
	}
	return result.Success(result.FetchSuccess, found)
}

// GetAllUsers is a thin passthrough to the store's find-all
func (s *UserService) GetAllUsers(ctx context.Context) ([]User, error) {
	return s.users.FindAll(ctx)
}

// DeleteUser soft-deletes and then hard-deletes the user with the given
// identifier. The admin account is protected: deleting it always fails,
// and the protection check itself failing blocks the delete.
func (s *UserService) DeleteUser(ctx context.Context, id uuid.UUID) result.Result[bool] {
	found := s.GetUser(ctx, id)
	if found.Code != result.FetchSuccess {
		return result.Failure[bool](result.DeletionFailure, found.ErrorMessage)
	}

	admin := s.GetUserByUsername(ctx, AdminUsername)
	if admin.Code != result.FetchSuccess {
		return result.Failure[bool](result.DeletionFailure, MsgAdminUserNotFound+admin.ErrorMessage)
	}

	if found.Entity.ID == admin.Entity.ID {
		return result.Failure[bool](result.DeletionFailure, MsgCannotDeleteAdmin)
	}

	target := found.Entity
	target.IsDeleted = true
	if _, err := s.users.Save(ctx, target); err != nil {
		slog.Error("Failed soft-deleting user", "uuid", target.ID, "error", err)
		return result.Failure[bool](result.DeletionFailure, err.Error())
	}

	// TODO: Transfer the deleted user's jobs and data to the admin account.

	if err := s.users.DeleteByID(ctx, target.ID); err != nil {
		slog.Error("Failed deleting user", "uuid", target.ID, "error", err)
		return result.Failure[bool](result.DeletionFailure, err.Error())
	}

	return result.Success(result.DeletionSuccess, true)
}

// DeleteUserByUsername resolves the username and delegates to DeleteUser
func (s *UserService) DeleteUserByUsername(ctx context.Context, username string) result.Result[bool] {
	found := s.GetUserByUsername(ctx, username)
	if found.Code != result.FetchSuccess {
		return result.Failure[bool](result.DeletionFailure, found.ErrorMessage)
	}
	return s.DeleteUser(ctx, found.Entity.ID)
}

// SaveUserRole validates and persists a new role. Role names are unique;
// the lookup pre-check only runs once at least one role exists.
func (s *UserService) SaveUserRole(ctx context.Context, role Role) result.Result[Role] {
	if isBlank(role.Name) {
		return result.Failure[Role](result.CreationFailure, MsgRoleNameNullOrBlank)
	}

	existing, err := s.roles.FindAll(ctx)
	if err != nil {
		slog.Error("Failed listing roles", "error", err)
		return result.Failure[Role](result.CreationFailure, err.Error())
	}
	if len(existing) > 0 {
		found := s.GetUserRoleByName(ctx, role.Name)
		if found.Code != result.FetchFailure {
			return result.Failure[Role](result.CreationFailure, MsgRoleNotUnique)
		}
	}

	saved, err := s.roles.Save(ctx, role)
	if err != nil {
		slog.Error("Failed saving role", "name", role.Name, "error", err)
		return result.Failure[Role](result.CreationFailure, err.Error())
	}
	return result.Success(result.CreationSuccess, saved)
}

// SaveUserRoleByName constructs a role with only a name and saves it
func (s *UserService) SaveUserRoleByName(ctx context.Context, roleName string) result.Result[Role] {
	return s.SaveUserRole(ctx, Role{Name: roleName})
}

// SaveUserRoles saves each role independently, preserving input order. One
// element failing does not block the others; this is not a transaction.
func (s *UserService) SaveUserRoles(ctx context.Context, roles []Role) []result.Result[Role] {
	if len(roles) == 0 {
		return []result.Result[Role]{
			result.Failure[Role](result.CreationFailure, MsgNoRolesToSaveInList),
		}
	}

	saved := make([]result.Result[Role], 0, len(roles))
	for _, role := range roles {
		saved = append(saved, s.SaveUserRole(ctx, role))
	}
	return saved
}

// SaveUserRolesByName saves a role per name, preserving input order
func (s *UserService) SaveUserRolesByName(ctx context.Context, roleNames []string) []result.Result[Role] {
	if len(roleNames) == 0 {
		return []result.Result[Role]{
			result.Failure[Role](result.CreationFailure, MsgNoRolesToSaveInList),
		}
	}

	saved := make([]result.Result[Role], 0, len(roleNames))
	for _, name := range roleNames {
		saved = append(saved, s.SaveUserRoleByName(ctx, name))
	}
	return saved
}

// GetUserRole fetches a role by identifier
func (s *UserService) GetUserRole(ctx context.Context, id int32) result.Result[Role] {
	found, err := s.roles.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrRoleNotFound) {
			return result.Failure[Role](result.FetchFailure, fmt.Sprintf("%s%d", MsgRoleNotFoundID, id))
		}
		return result.Failure[Role](result.FetchFailure, err.Error())
	}
	return result.Success(result.FetchSuccess, found)
}

// GetUserRoleByName fetches a role by its unique name
func (s *UserService) GetUserRoleByName(ctx context.Context, roleName string) result.Result[Role] {
	found, err := s.roles.FindByName(ctx, roleName)
	if err != nil {
		if errors.Is(err, ErrRoleNotFound) {
			return result.Failure[Role](result.FetchFailure, MsgRoleNotFoundName+roleName)
		}
		return result.Failure[Role](result.FetchFailure, err.Error())
	}
	return result.Success(result.FetchSuccess, found)
}

// GetAllUserRoles is a thin passthrough to the store's find-all
func (s *UserService) GetAllUserRoles(ctx context.Context) ([]Role, error) {
	return s.roles.FindAll(ctx)
}

// AddRoleToUser is declared for the intended role-assignment surface. No
// user-role association exists in the schema yet, so it always fails.
func (s *UserService) AddRoleToUser(ctx context.Context, username, roleName string) result.Result[User] {
	return result.Failure[User](result.UpdateFailure, MsgAddRoleNotImplemented)
}
