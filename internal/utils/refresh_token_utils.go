package utils

import (
	"crypto/sha256"
	"encoding/hex"
)

// HashRefreshToken produces the SHA256 hex digest of a raw refresh token.
// Only this digest is ever stored.
func HashRefreshToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

// CompareRefreshTokenHash reports whether the raw token matches the stored
// digest.
func CompareRefreshTokenHash(token string, storedHash string) bool {
	return HashRefreshToken(token) == storedHash
}
