package user

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DBTX is an interface that allows us to use either a database connection or a transaction
type DBTX interface {
	Exec(context.Context, string, ...interface{}) (pgconn.CommandTag, error)
	Query(context.Context, string, ...interface{}) (pgx.Rows, error)
	QueryRow(context.Context, string, ...interface{}) pgx.Row
}

// uniqueViolation translates a unique-index violation into a descriptive
// error. The pre-checks in the service are only a fast path; this is the
// authoritative backstop under concurrent writers.
func uniqueViolation(err error, what string) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
		return fmt.Errorf("%s already exists: %s", what, pgErr.ConstraintName)
	}
	return err
}

// PostgresUserRepository implements UserRepository using PostgreSQL
type PostgresUserRepository struct {
	db DBTX
}

// NewPostgresUserRepository creates a new PostgreSQL user repository
func NewPostgresUserRepository(db DBTX) *PostgresUserRepository {
	return &PostgresUserRepository{db: db}
}

// Save inserts the user when it carries no identifier and updates the
// existing row otherwise.
func (r *PostgresUserRepository) Save(ctx context.Context, user User) (User, error) {
	var row pgx.Row
	if user.ID == uuid.Nil {
		query := `
			INSERT INTO users (uuid, username, password, first_name, last_name, is_deleted)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING uuid, username, password, first_name, last_name, is_deleted
		`
		row = r.db.QueryRow(ctx, query, uuid.New(), user.Username, user.Password, user.FirstName, user.LastName, user.IsDeleted)
	} else {
		query := `
			UPDATE users
			SET username = $2, password = $3, first_name = $4, last_name = $5, is_deleted = $6
			WHERE uuid = $1
			RETURNING uuid, username, password, first_name, last_name, is_deleted
		`
		row = r.db.QueryRow(ctx, query, user.ID, user.Username, user.Password, user.FirstName, user.LastName, user.IsDeleted)
	}

	saved, err := scanUser(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return User{}, ErrUserNotFound
		}
		return User{}, uniqueViolation(err, "username")
	}
	return saved, nil
}

// FindByID looks a user up by identifier
func (r *PostgresUserRepository) FindByID(ctx context.Context, id uuid.UUID) (User, error) {
	query := `
		SELECT uuid, username, password, first_name, last_name, is_deleted
		FROM users
		WHERE uuid = $1
	`
	user, err := scanUser(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return User{}, ErrUserNotFound
		}
		return User{}, err
	}
	return user, nil
}

// FindByUsername looks a user up by its unique username
func (r *PostgresUserRepository) FindByUsername(ctx context.Context, username string) (User, error) {
	query := `
		SELECT uuid, username, password, first_name, last_name, is_deleted
		FROM users
		WHERE username = $1
	`
	user, err := scanUser(r.db.QueryRow(ctx, query, username))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return User{}, ErrUserNotFound
		}
		return User{}, err
	}
	return user, nil
}

// FindAll returns all users ordered by username
func (r *PostgresUserRepository) FindAll(ctx context.Context) ([]User, error) {
	query := `
		SELECT uuid, username, password, first_name, last_name, is_deleted
		FROM users
		ORDER BY username
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []User
	for rows.Next() {
		var user User
		if err := rows.Scan(&user.ID, &user.Username, &user.Password, &user.FirstName, &user.LastName, &user.IsDeleted); err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, rows.Err()
}

// DeleteByID removes a user row
func (r *PostgresUserRepository) DeleteByID(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM users WHERE uuid = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrUserNotFound
	}
	return nil
}

func scanUser(row pgx.Row) (User, error) {
	var user User
	err := row.Scan(&user.ID, &user.Username, &user.Password, &user.FirstName, &user.LastName, &user.IsDeleted)
	return user, err
}

// PostgresRoleRepository implements RoleRepository using PostgreSQL
type PostgresRoleRepository struct {
	db DBTX
}

// NewPostgresRoleRepository creates a new PostgreSQL role repository
func NewPostgresRoleRepository(db DBTX) *PostgresRoleRepository {
	return &PostgresRoleRepository{db: db}
}

// Save inserts a role; the identifier is assigned by the database
func (r *PostgresRoleRepository) Save(ctx context.Context, role Role) (Role, error) {
	query := `
		INSERT INTO user_roles (role_name)
		VALUES ($1)
		RETURNING id, role_name
	`
	var saved Role
	if err := r.db.QueryRow(ctx, query, role.Name).Scan(&saved.ID, &saved.Name); err != nil {
		return Role{}, uniqueViolation(err, "role name")
	}
	return saved, nil
}

// FindByID looks a role up by identifier
func (r *PostgresRoleRepository) FindByID(ctx context.Context, id int32) (Role, error) {
	var role Role
	err := r.db.QueryRow(ctx, `SELECT id, role_name FROM user_roles WHERE id = $1`, id).
		Scan(&role.ID, &role.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Role{}, ErrRoleNotFound
		}
		return Role{}, err
	}
	return role, nil
}

// FindByName looks a role up by its unique name
func (r *PostgresRoleRepository) FindByName(ctx context.Context, name string) (Role, error) {
	var role Role
	err := r.db.QueryRow(ctx, `SELECT id, role_name FROM user_roles WHERE role_name = $1`, name).
		Scan(&role.ID, &role.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Role{}, ErrRoleNotFound
		}
		return Role{}, err
	}
	return role, nil
}

// FindAll returns all roles ordered by identifier
func (r *PostgresRoleRepository) FindAll(ctx context.Context) ([]Role, error) {
	rows, err := r.db.Query(ctx, `SELECT id, role_name FROM user_roles ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var roles []Role
	for rows.Next() {
		var role Role
		if err := rows.Scan(&role.ID, &role.Name); err != nil {
			return nil, err
		}
		roles = append(roles, role)
	}
	return roles, rows.Err()
}
