package crypto

import (
	"fmt"

	nverrors "github.com/zarf0128-creator/NebulaVault/internal/errors"
)

// Sizes of the cryptographic primitives, in bytes.
const (
	// KeySize is the length of all symmetric keys (AES-256).
	KeySize = 32

	// SaltSize is the length of the per-user KDF salt.
	SaltSize = 16

	// NonceSize is the length of the AES-GCM nonce (96 bits).
	NonceSize = 12
)

// Key is a 256-bit symmetric key. The same type serves as MasterKey, FileKey,
// and ShareKey; the role is determined by how the key is used, not its shape.
type Key [KeySize]byte

// KeyFromBytes imports a raw 32-byte buffer as a Key.
// Returns ErrInvalidInput if the buffer is not exactly KeySize bytes.
func KeyFromBytes(b []byte) (Key, error) {
	var k Key
	if len(b) != KeySize {
		return k, fmt.Errorf("%w: key must be %d bytes, got %d", nverrors.ErrInvalidInput, KeySize, len(b))
	}
	copy(k[:], b)
	return k, nil
}

// Bytes exports the key as a fresh 32-byte slice.
func (k Key) Bytes() []byte {
	out := make([]byte, KeySize)
	copy(out, k[:])
	return out
}

// Zero overwrites the key material in place.
func (k *Key) Zero() {
	for i := range k {
		k[i] = 0
	}
}
