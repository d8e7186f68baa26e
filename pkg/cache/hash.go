package cache

import (
	"crypto/sha256"
	"encoding/hex"
)

// hashKey returns "prefix:sha256(value)".
func hashKey(prefix, value string) string {
	return prefix + ":" + Hash([]byte(value))
}

// Hash returns the hex SHA-256 of data.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
