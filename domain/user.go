package domain

import (
	"context"
	"time"
)

// User represents a registered forum user. Every mutating call is attributed
// to a user id taken from the verified credential.
type User struct {
	ID        string
	Username  string
	Password  string // bcrypt hash
	Fullname  string
	CreatedAt time.Time
}

// UserRepository defines the contract for user data persistence.
type UserRepository interface {
	// Insert creates a new user account. Returns ErrConflict when the
	// username is already taken.
	Insert(ctx context.Context, u *User) error

	// GetByID retrieves a user by id. Returns ErrNotFound if absent.
	GetByID(ctx context.Context, id string) (User, error)

	// GetByUsername retrieves a user by username, used during login.
	GetByUsername(ctx context.Context, username string) (User, error)
}

// UserUsecase defines the business logic contract for registration and login.
type UserUsecase interface {
	Register(ctx context.Context, username, password, fullname string) (User, error)

	// Login verifies credentials and returns a signed token carrying the
	// user id. Returns ErrNotFound for an unknown username and
	// ErrBadParamInput for a wrong password.
	Login(ctx context.Context, username, password string) (string, error)
}
