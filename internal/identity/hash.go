package identity

import (
	"crypto/sha512"
	"encoding/hex"
)

// Hasher computes the keyed digest used for password comparison. The digest
// is deterministic: identical plaintext and salt always produce identical
// output, which is what permits byte-for-byte comparison against a stored
// credential hash.
type Hasher struct {
	salt string
}

// NewHasher returns a Hasher keyed with the process-wide salt.
func NewHasher(salt string) *Hasher {
	return &Hasher{salt: salt}
}

// Hash returns the lowercase hex SHA-512 digest of plaintext concatenated
// with the configured salt.
func (h *Hasher) Hash(plaintext string) string {
	sum := sha512.Sum512([]byte(plaintext + h.salt))
	return hex.EncodeToString(sum[:])
}
