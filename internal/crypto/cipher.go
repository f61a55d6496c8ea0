package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"fmt"
	"io"

	nverrors "github.com/zarf0128-creator/NebulaVault/internal/errors"
)

// Engine is the narrow capability interface over the symmetric primitives.
// Alternate backends (hardware-backed keys, test doubles) satisfy the same
// contract; the rest of the system never reaches past it.
type Engine interface {
	// GenerateKey returns a fresh random 256-bit symmetric key.
	GenerateKey() (Key, error)

	// Encrypt performs AEAD encryption with a fresh random 96-bit IV per
	// call. The returned ciphertext includes the authentication tag.
	Encrypt(plaintext []byte, key Key) (ciphertext, iv []byte, err error)

	// Decrypt reverses Encrypt. Returns ErrAuthenticationFailure if the tag
	// does not verify; no partial output is ever returned on failure.
	Decrypt(ciphertext, iv []byte, key Key) ([]byte, error)

	// Digest returns the lowercase hex SHA-256 of data.
	Digest(data []byte) string
}

// AESGCMEngine implements Engine with AES-256-GCM from the standard library.
//
// Rand overrides the randomness source; nil means crypto/rand.Reader. It is
// only meant for tests that need deterministic keys or IVs.
type AESGCMEngine struct {
	Rand io.Reader
}

// Default is the engine used by the package-level convenience functions.
var Default Engine = AESGCMEngine{}

func (e AESGCMEngine) rng() io.Reader {
	if e.Rand != nil {
		return e.Rand
	}
	return rand.Reader
}

// GenerateKey returns a fresh random 256-bit symmetric key.
func (e AESGCMEngine) GenerateKey() (Key, error) {
	var k Key
	if _, err := io.ReadFull(e.rng(), k[:]); err != nil {
		return k, fmt.Errorf("failed to read random key bytes: %w", err)
	}
	return k, nil
}

// Encrypt encrypts plaintext with AES-256-GCM under key.
// A fresh random 12-byte IV is generated per call; it is never derived from
// the key and never reused. The GCM tag is appended to the ciphertext.
func (e AESGCMEngine) Encrypt(plaintext []byte, key Key) ([]byte, []byte, error) {
	gcm, err := newGCM(key)
	if err != nil {
		return nil, nil, err
	}

	iv := make([]byte, NonceSize)
	if _, err := io.ReadFull(e.rng(), iv); err != nil {
		return nil, nil, fmt.Errorf("failed to read random IV bytes: %w", err)
	}

	ciphertext := gcm.Seal(nil, iv, plaintext, nil)
	return ciphertext, iv, nil
}

// Decrypt decrypts an AES-256-GCM ciphertext produced by Encrypt.
// Returns ErrAuthenticationFailure on tag mismatch (wrong key, wrong IV, or
// tampered ciphertext) and ErrInvalidInput on a malformed IV.
func (e AESGCMEngine) Decrypt(ciphertext, iv []byte, key Key) ([]byte, error) {
	if len(iv) != NonceSize {
		return nil, fmt.Errorf("%w: IV must be %d bytes, got %d", nverrors.ErrInvalidInput, NonceSize, len(iv))
	}

	gcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}

	plaintext, err := gcm.Open(nil, iv, ciphertext, nil)
	if err != nil {
		return nil, nverrors.ErrAuthenticationFailure
	}
	return plaintext, nil
}

// Digest returns the lowercase hex SHA-256 of data.
func (e AESGCMEngine) Digest(data []byte) string {
	return Digest(data)
}

func newGCM(key Key) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key[:])
	if err != nil {
		return nil, fmt.Errorf("failed to create AES cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCM mode: %w", err)
	}
	return gcm, nil
}

// GenerateKey calls Default.GenerateKey.
func GenerateKey() (Key, error) {
	return Default.GenerateKey()
}

// Encrypt calls Default.Encrypt.
func Encrypt(plaintext []byte, key Key) ([]byte, []byte, error) {
	return Default.Encrypt(plaintext, key)
}

// Decrypt calls Default.Decrypt.
func Decrypt(ciphertext, iv []byte, key Key) ([]byte, error) {
	return Default.Decrypt(ciphertext, iv, key)
}
