package auth

import (
	"errors"
	"regexp"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation"
)

// Validation errors returned to clients as 400s.
var (
	ErrAllFieldsRequired = errors.New("all fields are required")
	ErrPasswordTooShort  = errors.New("password must be at least 6 characters")
	ErrInvalidEmail      = errors.New("invalid email format")
	ErrMissingProfilePic = errors.New("profile pic is required")
)

// local@domain.tld with at least one dot and a final label of 2+ letters.
var emailRx = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)

// SignupInput is a normalized, validated signup payload. Coercion (trim,
// lower-case) happens exactly once, here; the rest of the core consumes
// the typed value.
type SignupInput struct {
	FullName string
	Email    string
	Password string
}

// ValidateSignup normalizes raw signup fields and validates them.
// Presence of all three fields is checked before any format or length
// rule, so a missing field always yields the consolidated error.
func ValidateSignup(fullName, email, password string) (SignupInput, error) {
	in := SignupInput{
		FullName: strings.TrimSpace(fullName),
		Email:    NormalizeEmail(email),
		Password: password,
	}
	if in.FullName == "" || in.Email == "" || in.Password == "" {
		return SignupInput{}, ErrAllFieldsRequired
	}
	// RuneLength, not Length: the minimum is 6 characters, not bytes.
	if err := validation.Validate(in.Password, validation.RuneLength(6, 0)); err != nil {
		return SignupInput{}, ErrPasswordTooShort
	}
	if err := validation.Validate(in.Email, validation.Match(emailRx)); err != nil {
		return SignupInput{}, ErrInvalidEmail
	}
	return in, nil
}

// NormalizeEmail applies the same normalization used for signup to login
// lookups, so equal-up-to-case emails hit the same stored row.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
