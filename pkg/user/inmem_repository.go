package user

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"
)

// InMemoryUserRepository implements UserRepository using in-memory storage
type InMemoryUserRepository struct {
	mu    sync.RWMutex
	users map[uuid.UUID]User
}

// NewInMemoryUserRepository creates a new in-memory user repository
func NewInMemoryUserRepository() *InMemoryUserRepository {
	return &InMemoryUserRepository{
		users: make(map[uuid.UUID]User),
	}
}

// Save persists a user, assigning an identifier when the user carries none.
// The username unique index is enforced the same way the database does it.
func (r *InMemoryUserRepository) Save(ctx context.Context, user User) (User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.users {
		if existing.Username == user.Username && existing.ID != user.ID {
			return User{}, fmt.Errorf("duplicate key value violates unique constraint on username %q", user.Username)
		}
	}

	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	} else if _, ok := r.users[user.ID]; !ok {
		return User{}, ErrUserNotFound
	}

	r.users[user.ID] = user
	return user, nil
}

// FindByID looks a user up by identifier
func (r *InMemoryUserRepository) FindByID(ctx context.Context, id uuid.UUID) (User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[id]
	if !ok {
		return User{}, ErrUserNotFound
	}
	return user, nil
}

// FindByUsername looks a user up by its unique username
func (r *InMemoryUserRepository) FindByUsername(ctx context.Context, username string) (User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, user := range r.users {
		if user.Username == username {
			return user, nil
		}
	}
	return User{}, ErrUserNotFound
}

// FindAll returns all users ordered by username
func (r *InMemoryUserRepository) FindAll(ctx context.Context) ([]User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	users := make([]User, 0, len(r.users))
	for _, user := range r.users {
		users = append(users, user)
	}
	sort.Slice(users, func(i, j int) bool {
		return users[i].Username < users[j].Username
	})
	return users, nil
}

// DeleteByID removes a user from storage
func (r *InMemoryUserRepository) DeleteByID(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[id]; !ok {
		return ErrUserNotFound
	}
	delete(r.users, id)
	return nil
}

// InMemoryRoleRepository implements RoleRepository using in-memory storage
type InMemoryRoleRepository struct {
	mu     sync.RWMutex
	roles  map[int32]Role
	nextID int32
}

// NewInMemoryRoleRepository creates a new in-memory role repository
func NewInMemoryRoleRepository() *InMemoryRoleRepository {
	return &InMemoryRoleRepository{
		roles: make(map[int32]Role),
	}
}

// Save persists a role under a store-assigned integer identifier
func (r *InMemoryRoleRepository) Save(ctx context.Context, role Role) (Role, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.roles {
		if existing.Name == role.Name {
			return Role{}, fmt.Errorf("duplicate key value violates unique constraint on role name %q", role.Name)
		}
	}

	r.nextID++
	role.ID = r.nextID
	r.roles[role.ID] = role
	return role, nil
}

// FindByID looks a role up by identifier
func (r *InMemoryRoleRepository) FindByID(ctx context.Context, id int32) (Role, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	role, ok := r.roles[id]
	if !ok {
		return Role{}, ErrRoleNotFound
	}
	return role, nil
}

// FindByName looks a role up by its unique name
func (r *InMemoryRoleRepository) FindByName(ctx context.Context, name string) (Role, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, role := range r.roles {
		if role.Name == name {
			return role, nil
		}
	}
	return Role{}, ErrRoleNotFound
}

// FindAll returns all roles ordered by identifier
func (r *InMemoryRoleRepository) FindAll(ctx context.Context) ([]Role, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	roles := make([]Role, 0, len(r.roles))
	for _, role := range r.roles {
		roles = append(roles, role)
	}
	sort.Slice(roles, func(i, j int) bool {
		return roles[i].ID < roles[j].ID
	})
	return roles, nil
}
