package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"fmt"
)

// resetTokenBytes gives 256 bits of entropy for recovery secrets.
const resetTokenBytes = 32

// GenerateSecureToken returns a base64 URL-safe random string built from
// byteLength random bytes.
func GenerateSecureToken(byteLength int) (string, error) {
	if byteLength <= 0 {
		return "", fmt.Errorf("length must be positive")
	}

	buf := make([]byte, byteLength)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate token: %w", err)
	}

	return base64.RawURLEncoding.EncodeToString(buf), nil
}

// GenerateResetToken returns a raw password-recovery secret. Only its hash is
// ever persisted.
func GenerateResetToken() (string, error) {
	return GenerateSecureToken(resetTokenBytes)
}

// HashToken calculates the SHA-256 hash of value, hex encoded. Used for
// storing reset tokens so a database leak does not expose usable secrets.
func HashToken(value string) string {
	sum := sha256.Sum256([]byte(value))
	return hex.EncodeToString(sum[:])
}
