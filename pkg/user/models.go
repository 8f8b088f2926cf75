package user

import (
	"github.com/google/uuid"
)

// User represents a user account in the system
type User struct {
	ID        uuid.UUID `json:"uuid"`
	Username  string    `json:"username"`
	Password  string    `json:"password,omitempty"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	IsDeleted bool      `json:"is_deleted"`
}

// Role represents a user role in the system
type Role struct {
	ID   int32  `json:"id"`
	Name string `json:"role_name"`
}
