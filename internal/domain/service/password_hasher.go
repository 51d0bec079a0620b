package service

// PasswordHasher hashes and verifies passwords for the built-in identity provider.
type PasswordHasher interface {
	Hash(password string) (string, error)

	// Check compares a plaintext password with a hash.
	Check(password, hash string) bool
}
