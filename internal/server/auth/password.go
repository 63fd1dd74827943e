package auth

import "golang.org/x/crypto/bcrypt"

// Hasher hashes and checks passwords. Abstracting the algorithm keeps the
// services testable with a cheap fake.
type Hasher interface {
	// Hash generates a salted hash from a plaintext password.
	Hash(password string) (string, error)

	// Check reports whether password matches the stored hash.
	Check(password, hash string) bool
}

// BcryptHasher hashes passwords with bcrypt, which embeds a per-user random
// salt in the hash itself.
type BcryptHasher struct {
	cost int
}

func NewBcryptHasher() *BcryptHasher {
	return &BcryptHasher{cost: bcrypt.DefaultCost}
}

func (h *BcryptHasher) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func (h *BcryptHasher) Check(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
