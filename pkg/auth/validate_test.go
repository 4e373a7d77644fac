package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateSignup(t *testing.T) {
	tests := []struct {
		name     string
		fullName string
		email    string
		password string
		wantErr  error
	}{
		{
			name:     "valid input",
			fullName: "Ann Lee",
			email:    "ann@example.com",
			password: "secret1",
		},
		{
			name:     "missing name",
			fullName: "   ",
			email:    "ann@example.com",
			password: "secret1",
			wantErr:  ErrAllFieldsRequired,
		},
		{
			name:     "missing email",
			fullName: "Ann Lee",
			email:    "",
			password: "secret1",
			wantErr:  ErrAllFieldsRequired,
		},
		{
			name:     "missing password",
			fullName: "Ann Lee",
			email:    "ann@example.com",
			password: "",
			wantErr:  ErrAllFieldsRequired,
		},
		{
			name:     "missing password and bad email still consolidated",
			fullName: "Ann Lee",
			email:    "not-an-email",
			password: "",
			wantErr:  ErrAllFieldsRequired,
		},
		{
			name:     "password length 5",
			fullName: "Ann Lee",
			email:    "ann@example.com",
			password: "12345",
			wantErr:  ErrPasswordTooShort,
		},
		{
			name:     "password length 6 accepted",
			fullName: "Ann Lee",
			email:    "ann@example.com",
			password: "123456",
		},
		{
			name:     "password length 5 in runes, multibyte",
			fullName: "Ann Lee",
			email:    "ann@example.com",
			password: "ñañañ",
			wantErr:  ErrPasswordTooShort,
		},
		{
			name:     "password length 6 in runes, multibyte",
			fullName: "Ann Lee",
			email:    "ann@example.com",
			password: "ñañañá",
		},
		{
			name:     "no at sign",
			fullName: "Ann Lee",
			email:    "ann.example.com",
			password: "secret1",
			wantErr:  ErrInvalidEmail,
		},
		{
			name:     "domain without dot",
			fullName: "Ann Lee",
			email:    "ann@example",
			password: "secret1",
			wantErr:  ErrInvalidEmail,
		},
		{
			name:     "single-letter tld",
			fullName: "Ann Lee",
			email:    "ann@example.c",
			password: "secret1",
			wantErr:  ErrInvalidEmail,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in, err := ValidateSignup(tt.fullName, tt.email, tt.password)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.NotEmpty(t, in.FullName)
			assert.NotEmpty(t, in.Email)
		})
	}
}

func TestValidateSignupNormalizes(t *testing.T) {
	in, err := ValidateSignup("  Ann Lee  ", " Ann@Example.COM ", "secret1")
	require.NoError(t, err)
	assert.Equal(t, "Ann Lee", in.FullName)
	assert.Equal(t, "ann@example.com", in.Email)
	assert.Equal(t, "secret1", in.Password)
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "ann@example.com", NormalizeEmail(" ANN@EXAMPLE.COM "))
	assert.Equal(t, "", NormalizeEmail("   "))
}
