package vault

import (
	"context"
	"fmt"
	"sync"

	nverrors "github.com/zarf0128-creator/NebulaVault/internal/errors"
)

// MemoryStore is a mutex-guarded in-memory Store. It is the reference
// semantics for ConsumeDownload and backs unit tests; the CLI uses the
// SQLite store.
type MemoryStore struct {
	mu       sync.Mutex
	files    map[string]FileRecord
	shares   map[string]ShareRecord
	profiles map[string]Profile
}

// NewMemoryStore returns an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		files:    make(map[string]FileRecord),
		shares:   make(map[string]ShareRecord),
		profiles: make(map[string]Profile),
	}
}

func (s *MemoryStore) SaveFile(ctx context.Context, rec *FileRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.files[rec.ID] = *rec
	return nil
}

func (s *MemoryStore) GetFile(ctx context.Context, id string) (*FileRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.files[id]
	if !ok {
		return nil, fmt.Errorf("%w: id %s", nverrors.ErrFileNotFound, id)
	}
	return &rec, nil
}

func (s *MemoryStore) GetFileByName(ctx context.Context, owner, filename string) (*FileRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, rec := range s.files {
		if rec.Owner == owner && rec.Filename == filename {
			out := rec
			return &out, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", nverrors.ErrFileNotFound, filename)
}

func (s *MemoryStore) ListFiles(ctx context.Context, owner string) ([]FileRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []FileRecord
	for _, rec := range s.files {
		if rec.Owner == owner {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (s *MemoryStore) DeleteFile(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.files, id)
	return nil
}

func (s *MemoryStore) SaveShare(ctx context.Context, rec *ShareRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.shares[rec.ID] = *rec
	return nil
}

func (s *MemoryStore) GetShare(ctx context.Context, id string) (*ShareRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.shares[id]
	if !ok {
		return nil, fmt.Errorf("%w: id %s", nverrors.ErrShareNotFound, id)
	}
	return &rec, nil
}

func (s *MemoryStore) ListShares(ctx context.Context) ([]ShareRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]ShareRecord, 0, len(s.shares))
	for _, rec := range s.shares {
		out = append(out, rec)
	}
	return out, nil
}

func (s *MemoryStore) ListSharesByFile(ctx context.Context, fileID string) ([]ShareRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []ShareRecord
	for _, rec := range s.shares {
		if rec.FileID == fileID {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (s *MemoryStore) DeleteShare(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.shares[id]; !ok {
		return fmt.Errorf("%w: id %s", nverrors.ErrShareNotFound, id)
	}
	delete(s.shares, id)
	return nil
}

func (s *MemoryStore) DeleteSharesByFile(ctx context.Context, fileID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, rec := range s.shares {
		if rec.FileID == fileID {
			delete(s.shares, id)
		}
	}
	return nil
}

// ConsumeDownload increments the counter only while it is below the limit.
// The check and the increment happen under one lock, so two racing redeems
// near the limit cannot both pass.
func (s *MemoryStore) ConsumeDownload(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.shares[id]
	if !ok {
		return fmt.Errorf("%w: id %s", nverrors.ErrShareNotFound, id)
	}
	if rec.DownloadCount >= rec.UsageLimit {
		return nverrors.ErrShareExhausted
	}
	rec.DownloadCount++
	s.shares[id] = rec
	return nil
}

func (s *MemoryStore) SaveProfile(ctx context.Context, p *Profile) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profiles[p.UserID] = *p
	return nil
}

func (s *MemoryStore) GetProfile(ctx context.Context, userID string) (*Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.profiles[userID]
	if !ok {
		return nil, fmt.Errorf("%w: user %s", nverrors.ErrProfileNotFound, userID)
	}
	return &p, nil
}

// MemoryBlobStore is an in-memory BlobStore for tests.
type MemoryBlobStore struct {
	mu    sync.Mutex
	blobs map[string][]byte
}

// NewMemoryBlobStore returns an empty MemoryBlobStore.
func NewMemoryBlobStore() *MemoryBlobStore {
	return &MemoryBlobStore{blobs: make(map[string][]byte)}
}

func (s *MemoryBlobStore) PutBlob(ctx context.Context, path string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	buf := make([]byte, len(data))
	copy(buf, data)
	s.blobs[path] = buf
	return nil
}

func (s *MemoryBlobStore) GetBlob(ctx context.Context, path string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, ok := s.blobs[path]
	if !ok {
		return nil, fmt.Errorf("%w: %s", nverrors.ErrBlobNotFound, path)
	}
	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}

func (s *MemoryBlobStore) DeleteBlob(ctx context.Context, path string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.blobs, path)
	return nil
}
