package vault

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	nverrors "github.com/zarf0128-creator/NebulaVault/internal/errors"
)

func TestFilesystemBlobStoreRoundtrip(t *testing.T) {
	ctx := context.Background()
	store, err := NewFilesystemBlobStore(filepath.Join(t.TempDir(), "objects"))
	if err != nil {
		t.Fatalf("NewFilesystemBlobStore failed: %v", err)
	}

	if err := store.PutBlob(ctx, "blob-1", []byte("opaque bytes")); err != nil {
		t.Fatalf("PutBlob failed: %v", err)
	}

	data, err := store.GetBlob(ctx, "blob-1")
	if err != nil {
		t.Fatalf("GetBlob failed: %v", err)
	}
	if string(data) != "opaque bytes" {
		t.Errorf("GetBlob = %q, want opaque bytes", data)
	}

	if err := store.DeleteBlob(ctx, "blob-1"); err != nil {
		t.Fatalf("DeleteBlob failed: %v", err)
	}
	if _, err := store.GetBlob(ctx, "blob-1"); !errors.Is(err, nverrors.ErrBlobNotFound) {
		t.Errorf("GetBlob after delete error = %v, want ErrBlobNotFound", err)
	}

	// Deleting a missing blob is not an error.
	if err := store.DeleteBlob(ctx, "blob-1"); err != nil {
		t.Errorf("DeleteBlob of missing blob failed: %v", err)
	}
}

func TestFilesystemBlobStorePermissions(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("file permissions are not meaningful on Windows")
	}

	ctx := context.Background()
	dir := filepath.Join(t.TempDir(), "objects")
	store, err := NewFilesystemBlobStore(dir)
	if err != nil {
		t.Fatalf("NewFilesystemBlobStore failed: %v", err)
	}

	if err := store.PutBlob(ctx, "blob-perm", []byte("ciphertext")); err != nil {
		t.Fatalf("PutBlob failed: %v", err)
	}

	info, err := os.Stat(filepath.Join(dir, "blob-perm"))
	if err != nil {
		t.Fatalf("Stat failed: %v", err)
	}
	if info.Mode().Perm() != 0600 {
		t.Errorf("blob permissions = %o, want 0600", info.Mode().Perm())
	}
}

func TestFilesystemBlobStoreIgnoresPathTraversal(t *testing.T) {
	ctx := context.Background()
	dir := filepath.Join(t.TempDir(), "objects")
	store, err := NewFilesystemBlobStore(dir)
	if err != nil {
		t.Fatalf("NewFilesystemBlobStore failed: %v", err)
	}

	// Storage paths are flattened to their base name inside the directory.
	if err := store.PutBlob(ctx, "../escape", []byte("x")); err != nil {
		t.Fatalf("PutBlob failed: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "escape")); err != nil {
		t.Errorf("blob was not written inside the objects directory: %v", err)
	}
}
