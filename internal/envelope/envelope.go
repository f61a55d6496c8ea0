package envelope

import (
	"github.com/zarf0128-creator/NebulaVault/internal/crypto"
)

// WrappedKey is a file key encrypted under a wrapping key. It is meaningful
// only paired with its IV and the specific wrapping key that produced it.
// The wrapped form is what gets persisted; raw file keys never are.
type WrappedKey struct {
	Ciphertext []byte
	IV         []byte
}

// Manager wraps and unwraps file keys through a crypto engine. It is agnostic
// to whether the wrapping key is a master key (owner storage) or a share key
// (sharing); the mechanics are identical.
type Manager struct {
	Engine crypto.Engine
}

// NewManager returns a Manager over the given engine, defaulting to the
// package-wide AES-GCM engine when engine is nil.
func NewManager(engine crypto.Engine) Manager {
	if engine == nil {
		engine = crypto.Default
	}
	return Manager{Engine: engine}
}

// Wrap exports fileKey to its raw 32 bytes and encrypts them under
// wrappingKey. The plaintext being wrapped is just key material; mechanically
// this is the same AEAD used for file content.
func (m Manager) Wrap(fileKey, wrappingKey crypto.Key) (WrappedKey, error) {
	raw := fileKey.Bytes()
	defer zero(raw)

	ciphertext, iv, err := m.Engine.Encrypt(raw, wrappingKey)
	if err != nil {
		return WrappedKey{}, err
	}
	return WrappedKey{Ciphertext: ciphertext, IV: iv}, nil
}

// Unwrap decrypts a wrapped key and re-imports it as a Key. A wrong wrapping
// key yields ErrAuthenticationFailure, propagated unchanged from the engine.
func (m Manager) Unwrap(wrapped WrappedKey, wrappingKey crypto.Key) (crypto.Key, error) {
	raw, err := m.Engine.Decrypt(wrapped.Ciphertext, wrapped.IV, wrappingKey)
	if err != nil {
		return crypto.Key{}, err
	}
	defer zero(raw)

	return crypto.KeyFromBytes(raw)
}

var std = Manager{Engine: crypto.Default}

// Wrap wraps fileKey under wrappingKey using the default engine.
func Wrap(fileKey, wrappingKey crypto.Key) (WrappedKey, error) {
	return std.Wrap(fileKey, wrappingKey)
}

// Unwrap unwraps a wrapped key using the default engine.
func Unwrap(wrapped WrappedKey, wrappingKey crypto.Key) (crypto.Key, error) {
	return std.Unwrap(wrapped, wrappingKey)
}

func zero(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
