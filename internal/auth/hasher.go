// Package auth holds the credential primitives: password hashing and
// session token issuance/verification.
package auth

import "golang.org/x/crypto/bcrypt"

// PasswordHasher is a one-way, salted transformation of plaintext
// passwords. Digests are never reversible.
type PasswordHasher interface {
	Hash(password string) (string, error)

	// Check reports whether password matches digest. A malformed digest
	// is reported as a mismatch, not an error.
	Check(password, digest string) bool
}

type bcryptHasher struct {
	cost int
}

// NewBcryptHasher returns a PasswordHasher backed by bcrypt with the
// default cost (10 rounds). bcrypt generates a fresh salt per call and
// embeds it in the digest.
func NewBcryptHasher() PasswordHasher {
	return &bcryptHasher{cost: bcrypt.DefaultCost}
}

func (h *bcryptHasher) Hash(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	return string(bytes), err
}

func (h *bcryptHasher) Check(password, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(password)) == nil
}
