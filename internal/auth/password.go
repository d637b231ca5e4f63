package auth

import "golang.org/x/crypto/bcrypt"

const bcryptCost = 10

// PasswordHasher wraps bcrypt hashing and verification. Digests are
// self-describing (algorithm, cost and salt are embedded), so verification
// needs no extra state.
type PasswordHasher struct {
	cost int
}

// NewPasswordHasher creates a hasher with the default cost.
func NewPasswordHasher() *PasswordHasher {
	return &PasswordHasher{cost: bcryptCost}
}

// Hash returns the bcrypt digest of a plaintext password.
func (h *PasswordHasher) Hash(plain string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(plain), h.cost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

// Verify reports whether plain hashes to digest. A malformed digest is
// treated as a mismatch, never an error.
func (h *PasswordHasher) Verify(plain, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plain)) == nil
}
