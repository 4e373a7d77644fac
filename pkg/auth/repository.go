package auth

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// Common errors used by repository/use cases
var (
	ErrNotFound           = errors.New("not found")
	ErrEmailExists        = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// UserRepository abstracts persistence concerns from the domain layer.
// Implementations may be in-memory, SQL, NoSQL, etc.
type UserRepository interface {
	// Create persists the user and returns the stored row. Email
	// uniqueness is enforced by the store itself; a duplicate surfaces
	// as ErrEmailExists from the insert rather than from any prior
	// existence check.
	Create(ctx context.Context, user User) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
	GetByID(ctx context.Context, id uuid.UUID) (User, error)
	// UpdateProfilePic sets the user's avatar URL and returns the
	// updated row, or ErrNotFound if the id no longer resolves.
	UpdateProfilePic(ctx context.Context, id uuid.UUID, url string) (User, error)
}
