package auth

// PasswordHasher is a one-way, salted transform used to store and verify
// passwords without retaining plaintext.
type PasswordHasher interface {
	Hash(password string) (string, error)
	// Compare returns nil when password matches hash.
	Compare(hash, password string) error
}
