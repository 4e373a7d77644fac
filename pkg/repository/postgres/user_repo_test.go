package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maxim2210/chatter/pkg/auth"
)

func newRepo(t *testing.T) (*UserRepository, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err, "failed to create mock")
	t.Cleanup(mock.Close)

	mock.ExpectExec(`CREATE TABLE IF NOT EXISTS users`).
		WillReturnResult(pgxmock.NewResult("CREATE", 0))
	repo, err := NewUserRepository(mock)
	require.NoError(t, err)
	return repo, mock
}

func userRows(u auth.User) *pgxmock.Rows {
	return pgxmock.NewRows([]string{"id", "full_name", "email", "password_hash", "profile_pic_url", "created_at"}).
		AddRow(u.ID, u.FullName, u.Email, u.PasswordHash, u.ProfilePicURL, u.CreatedAt)
}

func testUser() auth.User {
	return auth.User{
		ID:           uuid.New(),
		FullName:     "Ann Lee",
		Email:        "ann@example.com",
		PasswordHash: "$2a$10$abcdefghijklmnopqrstuv",
		CreatedAt:    time.Now().UTC().Truncate(time.Microsecond),
	}
}

func TestUserRepositoryCreate(t *testing.T) {
	repo, mock := newRepo(t)
	user := testUser()

	mock.ExpectQuery(`INSERT INTO users`).
		WithArgs(user.ID, user.FullName, user.Email, user.PasswordHash, user.ProfilePicURL, user.CreatedAt).
		WillReturnRows(userRows(user))

	created, err := repo.Create(context.Background(), user)
	require.NoError(t, err)
	assert.Equal(t, user.ID, created.ID)
	assert.Equal(t, user.Email, created.Email)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepositoryCreateDuplicateEmail(t *testing.T) {
	repo, mock := newRepo(t)
	user := testUser()

	mock.ExpectQuery(`INSERT INTO users`).
		WithArgs(user.ID, user.FullName, user.Email, user.PasswordHash, user.ProfilePicURL, user.CreatedAt).
		WillReturnError(&pgconn.PgError{Code: pgerrcode.UniqueViolation})

	_, err := repo.Create(context.Background(), user)
	require.ErrorIs(t, err, auth.ErrEmailExists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepositoryGetByEmail(t *testing.T) {
	repo, mock := newRepo(t)
	user := testUser()

	mock.ExpectQuery(`SELECT (.+) FROM users WHERE email`).
		WithArgs(user.Email).
		WillReturnRows(userRows(user))

	got, err := repo.GetByEmail(context.Background(), user.Email)
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepositoryGetByEmailNotFound(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery(`SELECT (.+) FROM users WHERE email`).
		WithArgs("nobody@example.com").
		WillReturnError(pgx.ErrNoRows)

	_, err := repo.GetByEmail(context.Background(), "nobody@example.com")
	require.ErrorIs(t, err, auth.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepositoryGetByID(t *testing.T) {
	repo, mock := newRepo(t)
	user := testUser()

	mock.ExpectQuery(`SELECT (.+) FROM users WHERE id`).
		WithArgs(user.ID).
		WillReturnRows(userRows(user))

	got, err := repo.GetByID(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.Email, got.Email)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepositoryUpdateProfilePic(t *testing.T) {
	repo, mock := newRepo(t)
	user := testUser()
	user.ProfilePicURL = "https://img.example.com/a.png"

	mock.ExpectQuery(`UPDATE users SET profile_pic_url`).
		WithArgs(user.ID, user.ProfilePicURL).
		WillReturnRows(userRows(user))

	got, err := repo.UpdateProfilePic(context.Background(), user.ID, user.ProfilePicURL)
	require.NoError(t, err)
	assert.Equal(t, user.ProfilePicURL, got.ProfilePicURL)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepositoryUpdateProfilePicVanishedUser(t *testing.T) {
	repo, mock := newRepo(t)
	id := uuid.New()

	mock.ExpectQuery(`UPDATE users SET profile_pic_url`).
		WithArgs(id, "https://img.example.com/a.png").
		WillReturnError(pgx.ErrNoRows)

	_, err := repo.UpdateProfilePic(context.Background(), id, "https://img.example.com/a.png")
	require.ErrorIs(t, err, auth.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
