package auth

import (
	"time"

	"github.com/google/uuid"
)

// User is a domain entity representing an account holder.
type User struct {
	ID            uuid.UUID
	FullName      string
	Email         string
	PasswordHash  string
	ProfilePicURL string
	CreatedAt     time.Time
}

// PublicUser is the projection of a User that is safe to return to
// clients. The password hash has no serialized form anywhere.
type PublicUser struct {
	ID         string `json:"_id"`
	FullName   string `json:"fullName"`
	Email      string `json:"email"`
	ProfilePic string `json:"profilePic"`
}

// Public returns the client-facing projection of the user.
func (u User) Public() PublicUser {
	return PublicUser{
		ID:         u.ID.String(),
		FullName:   u.FullName,
		Email:      u.Email,
		ProfilePic: u.ProfilePicURL,
	}
}
