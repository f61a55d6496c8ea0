package crypto

import (
	"crypto/rand"
	"crypto/sha256"
	"fmt"
	"io"

	"golang.org/x/crypto/pbkdf2"

	nverrors "github.com/zarf0128-creator/NebulaVault/internal/errors"
)

// PBKDF2Iterations is the iteration count for master-key derivation.
// It is a tunable constant, not configurable per call; changing it changes
// every derived key, so it is also recorded in vault.toml for forward
// compatibility.
const PBKDF2Iterations = 100_000

// GenerateSalt returns 16 cryptographically random bytes. The salt is
// generated once per user and persisted by the profile store.
func GenerateSalt() ([]byte, error) {
	salt := make([]byte, SaltSize)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return nil, fmt.Errorf("failed to read random salt bytes: %w", err)
	}
	return salt, nil
}

// DeriveMasterKey derives the session master key from a password and salt
// using PBKDF2-HMAC-SHA256. The same (password, salt) pair always yields the
// same key, so login can re-derive the key without ever storing it.
//
// Returns ErrInvalidInput on an empty password or a salt that is not
// SaltSize bytes.
func DeriveMasterKey(password, salt []byte) (Key, error) {
	var k Key
	if len(password) == 0 {
		return k, fmt.Errorf("%w: password must not be empty", nverrors.ErrInvalidInput)
	}
	if len(salt) != SaltSize {
		return k, fmt.Errorf("%w: salt must be %d bytes, got %d", nverrors.ErrInvalidInput, SaltSize, len(salt))
	}

	derived := pbkdf2.Key(password, salt, PBKDF2Iterations, KeySize, sha256.New)
	copy(k[:], derived)
	for i := range derived {
		derived[i] = 0
	}
	return k, nil
}
