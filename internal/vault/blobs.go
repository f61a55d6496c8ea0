package vault

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	nverrors "github.com/zarf0128-creator/NebulaVault/internal/errors"
)

// FilesystemBlobStore keeps ciphertext blobs as files under a directory,
// one file per storage path, mode 0600. Blobs are already encrypted and
// authenticated; the filesystem only ever sees opaque bytes.
type FilesystemBlobStore struct {
	Dir string
}

// NewFilesystemBlobStore returns a blob store rooted at dir, creating the
// directory if needed.
func NewFilesystemBlobStore(dir string) (*FilesystemBlobStore, error) {
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, fmt.Errorf("failed to create objects directory: %w", err)
	}
	return &FilesystemBlobStore{Dir: dir}, nil
}

func (s *FilesystemBlobStore) PutBlob(ctx context.Context, path string, data []byte) error {
	target := filepath.Join(s.Dir, filepath.Base(path))
	if err := os.WriteFile(target, data, 0600); err != nil {
		return fmt.Errorf("failed to write blob %s: %w", path, err)
	}
	return nil
}

func (s *FilesystemBlobStore) GetBlob(ctx context.Context, path string) ([]byte, error) {
	target := filepath.Join(s.Dir, filepath.Base(path))
	data, err := os.ReadFile(target)
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", nverrors.ErrBlobNotFound, path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read blob %s: %w", path, err)
	}
	return data, nil
}

func (s *FilesystemBlobStore) DeleteBlob(ctx context.Context, path string) error {
	target := filepath.Join(s.Dir, filepath.Base(path))
	if err := os.Remove(target); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete blob %s: %w", path, err)
	}
	return nil
}
