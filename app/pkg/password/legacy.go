package password

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"strings"
)

// LegacyDigest is the unsalted SHA-256 hex digest older accounts were stored with.
// It is only used to verify those accounts until they are re-hashed.
func LegacyDigest(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

func isLegacyDigest(hash string) bool {
	if len(hash) != sha256.Size*2 {
		return false
	}
	_, err := hex.DecodeString(hash)
	return err == nil
}

func checkLegacy(password, hash string) bool {
	expected := LegacyDigest(password)
	return subtle.ConstantTimeCompare([]byte(expected), []byte(strings.ToLower(hash))) == 1
}
