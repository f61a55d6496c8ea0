package crypto

import (
	"crypto/sha256"
	"encoding/hex"
)

// Digest returns the lowercase hex SHA-256 of data.
//
// The digest is computed over plaintext at upload time and re-checked after
// every decrypt. It is independent of, and redundant with, the AEAD tag under
// correct operation: it exists as a second line of defense against corruption
// introduced by layers the AEAD boundary does not cover. It is never the sole
// authenticity check.
func Digest(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
