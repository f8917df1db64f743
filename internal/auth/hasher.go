package auth

import "golang.org/x/crypto/bcrypt"

// Hasher produces and verifies one-way password digests.
// Implementations must never log or persist the plaintext.
type Hasher interface {
	Hash(password string) (string, error)
	Compare(hash string, password string) error
}

// BcryptHasher hashes passwords with bcrypt. The cost is deliberately
// expensive to resist offline brute force.
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher returns a bcrypt hasher with the given cost.
// A cost outside bcrypt's valid range falls back to bcrypt.DefaultCost.
func NewBcryptHasher(cost int) *BcryptHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &BcryptHasher{cost: cost}
}

func (h *BcryptHasher) Hash(password string) (string, error) {
	out, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// Compare returns nil only when password matches hash. A malformed digest
// fails closed with an error rather than panicking.
func (h *BcryptHasher) Compare(hash string, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}
