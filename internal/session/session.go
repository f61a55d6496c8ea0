package session

import (
	"sync"

	"github.com/awnumar/memguard"

	"github.com/zarf0128-creator/NebulaVault/internal/crypto"
	nverrors "github.com/zarf0128-creator/NebulaVault/internal/errors"
)

// Session holds the master key for one authenticated principal. The key lives
// in a memguard locked buffer: never serialized, never persisted, and wiped
// when the session closes. Sessions are plain values passed into workflows,
// never a process-wide singleton, so multiple sessions can coexist.
//
// MasterKey may be called concurrently by any number of in-flight operations;
// Close may race with readers and is the only mutation.
type Session struct {
	// UserID identifies the principal this session belongs to.
	UserID string

	mu  sync.RWMutex
	key *memguard.LockedBuffer
}

// Open derives the master key from (password, salt) and seals it in a new
// session. The derived key material is moved into locked memory and the
// intermediate copy is wiped.
//
// Returns ErrInvalidInput on an empty password or malformed salt.
func Open(userID string, password, salt []byte) (*Session, error) {
	masterKey, err := crypto.DeriveMasterKey(password, salt)
	if err != nil {
		return nil, err
	}

	// NewBufferFromBytes wipes the source slice after copying it in.
	buf := memguard.NewBufferFromBytes(masterKey.Bytes())
	masterKey.Zero()

	return &Session{UserID: userID, key: buf}, nil
}

// FromKey seals an existing key in a new session. Used by tests and by flows
// that already hold a derived key.
func FromKey(userID string, key crypto.Key) *Session {
	buf := memguard.NewBufferFromBytes(key.Bytes())
	return &Session{UserID: userID, key: buf}
}

// MasterKey returns a copy of the session master key.
// Returns ErrSessionClosed after Close.
func (s *Session) MasterKey() (crypto.Key, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.key == nil || !s.key.IsAlive() {
		return crypto.Key{}, nverrors.ErrSessionClosed
	}
	return crypto.KeyFromBytes(s.key.Bytes())
}

// Close discards the master key and zeroes its backing memory. Safe to call
// more than once.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.key != nil {
		s.key.Destroy()
		s.key = nil
	}
}
