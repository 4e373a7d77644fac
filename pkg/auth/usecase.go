package auth

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// AuthUseCase describes authentication, registration and profile behavior.
type AuthUseCase interface {
	Signup(ctx context.Context, fullName, email, password string) (AuthResult, error)
	Login(ctx context.Context, email, password string) (AuthResult, error)
	UpdateProfilePicture(ctx context.Context, userID uuid.UUID, image []byte, contentType string) (User, error)
}

// AuthResult bundles the persisted user with a freshly minted session
// token bound to its id.
type AuthResult struct {
	User  User
	Token string
}

type authService struct {
	repo     UserRepository
	tokens   TokenGenerator
	hasher   PasswordHasher
	uploader ImageUploader
}

// NewAuthService returns default implementation of AuthUseCase.
func NewAuthService(repo UserRepository, tokens TokenGenerator, hasher PasswordHasher, uploader ImageUploader) AuthUseCase {
	return &authService{repo: repo, tokens: tokens, hasher: hasher, uploader: uploader}
}

func (s *authService) Signup(ctx context.Context, fullName, email, password string) (AuthResult, error) {
	in, err := ValidateSignup(fullName, email, password)
	if err != nil {
		return AuthResult{}, err
	}

	// Best-effort duplicate check. The unique constraint enforced by the
	// store at insert time is the authoritative arbiter under concurrent
	// signups with the same email.
	if _, err := s.repo.GetByEmail(ctx, in.Email); err == nil {
		return AuthResult{}, ErrEmailExists
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return AuthResult{}, err
	}

	user := User{
		ID:           uuid.New(),
		FullName:     in.FullName,
		Email:        in.Email,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}
	// Persist first, then mint the token. A token must never be issued
	// for a user that failed to persist.
	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return AuthResult{}, err
	}
	token, err := s.tokens.Generate(ctx, created)
	if err != nil {
		return AuthResult{}, err
	}
	return AuthResult{User: created, Token: token}, nil
}

func (s *authService) Login(ctx context.Context, email, password string) (AuthResult, error) {
	normalized := NormalizeEmail(email)
	if normalized == "" || password == "" {
		return AuthResult{}, ErrAllFieldsRequired
	}
	user, err := s.repo.GetByEmail(ctx, normalized)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			// Same failure as a wrong password, so the response never
			// reveals whether the account exists.
			return AuthResult{}, ErrInvalidCredentials
		}
		return AuthResult{}, err
	}
	if err := s.hasher.Compare(user.PasswordHash, password); err != nil {
		return AuthResult{}, ErrInvalidCredentials
	}
	token, err := s.tokens.Generate(ctx, user)
	if err != nil {
		return AuthResult{}, err
	}
	return AuthResult{User: user, Token: token}, nil
}

func (s *authService) UpdateProfilePicture(ctx context.Context, userID uuid.UUID, image []byte, contentType string) (User, error) {
	if len(image) == 0 {
		return User{}, ErrMissingProfilePic
	}
	url, err := s.uploader.Upload(ctx, image, contentType)
	if err != nil {
		return User{}, err
	}
	// userID comes from the verified session, never from the request
	// body; a caller can only touch their own record.
	return s.repo.UpdateProfilePic(ctx, userID, url)
}
