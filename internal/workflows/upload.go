package workflows

import (
	"context"
	"errors"
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/zarf0128-creator/NebulaVault/internal/codec"
	"github.com/zarf0128-creator/NebulaVault/internal/crypto"
	"github.com/zarf0128-creator/NebulaVault/internal/envelope"
	nverrors "github.com/zarf0128-creator/NebulaVault/internal/errors"
	"github.com/zarf0128-creator/NebulaVault/internal/vault"
)

// UploadOptions configures the upload workflow.
type UploadOptions struct {
	// FilePath is the file to encrypt into the vault.
	FilePath string

	// Password is the vault password used to derive the session master key.
	Password []byte
}

// UploadResult contains the outcome of an upload operation.
type UploadResult struct {
	// Record is the persisted file metadata.
	Record *vault.FileRecord
}

// Upload encrypts a file into the vault. A fresh file key encrypts the
// content, the plaintext is hashed for the later integrity re-check, and the
// file key is wrapped under the session master key. Only ciphertext and the
// wrapped key are persisted; the raw file key exists transiently and is
// zeroed before returning.
//
// Returns ErrVaultNotInitialized if no vault exists here.
// Returns ErrFileExists if a file with this name is already stored.
// Returns ErrInvalidInput on an empty password.
func Upload(ctx context.Context, opts UploadOptions) (*UploadResult, error) {
	env, err := openVault()
	if err != nil {
		return nil, err
	}

	plaintext, err := os.ReadFile(opts.FilePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", opts.FilePath, err)
	}

	filename := filepath.Base(opts.FilePath)
	if _, err := env.Store.GetFileByName(ctx, env.Owner, filename); err == nil {
		return nil, fmt.Errorf("%w: %s", nverrors.ErrFileExists, filename)
	} else if !errors.Is(err, nverrors.ErrFileNotFound) {
		return nil, err
	}

	sess, err := env.login(ctx, opts.Password)
	if err != nil {
		return nil, err
	}
	defer sess.Close()

	master, err := sess.MasterKey()
	if err != nil {
		return nil, err
	}
	defer master.Zero()

	fileKey, err := crypto.GenerateKey()
	if err != nil {
		return nil, err
	}
	defer fileKey.Zero()

	ciphertext, iv, err := crypto.Encrypt(plaintext, fileKey)
	if err != nil {
		return nil, err
	}

	wrapped, err := envelope.Wrap(fileKey, master)
	if err != nil {
		return nil, err
	}

	rec := &vault.FileRecord{
		ID:             uuid.New().String(),
		Owner:          env.Owner,
		Filename:       filename,
		StoragePath:    uuid.New().String(),
		FileSize:       int64(len(plaintext)),
		MimeType:       mimeTypeFor(filename),
		EncryptionIV:   codec.EncodeHex(iv),
		WrappedFileKey: codec.EncodeHex(wrapped.Ciphertext),
		WrappedKeyIV:   codec.EncodeHex(wrapped.IV),
		SHA256Hash:     crypto.Digest(plaintext),
		CreatedAt:      time.Now().UTC(),
	}

	if err := env.Blobs.PutBlob(ctx, rec.StoragePath, ciphertext); err != nil {
		return nil, err
	}
	if err := env.Store.SaveFile(ctx, rec); err != nil {
		return nil, fmt.Errorf("failed to save file record: %w", err)
	}

	return &UploadResult{Record: rec}, nil
}

func mimeTypeFor(filename string) string {
	if t := mime.TypeByExtension(filepath.Ext(filename)); t != "" {
		return t
	}
	return "application/octet-stream"
}
