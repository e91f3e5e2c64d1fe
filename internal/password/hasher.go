// Package password provides one-way password hashing and verification.
package password

// Hasher hashes and verifies plaintext passwords.
type Hasher interface {
	// Hash derives a storage-safe hash from a plaintext password.
	Hash(plaintext string) (string, error)

	// Verify reports whether plaintext matches hash. A malformed hash is an
	// error; a plain mismatch is (false, nil).
	Verify(plaintext, hash string) (bool, error)
}
