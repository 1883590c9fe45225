package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// Key hashes a fingerprint into a fixed-length cache key.
// The key format is: prefix:sha256(fingerprint)
func Key(prefix, fingerprint string) string {
	return fmt.Sprintf("%s:%s", prefix, Hash([]byte(fingerprint)))
}

// Hash computes a SHA-256 hash of the input data.
// Returns the full 64-character hex string.
func Hash(data []byte) string {
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}
