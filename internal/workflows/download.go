package workflows

import (
	"context"
	"fmt"
	"os"

	"github.com/zarf0128-creator/NebulaVault/internal/codec"
	"github.com/zarf0128-creator/NebulaVault/internal/crypto"
	nverrors "github.com/zarf0128-creator/NebulaVault/internal/errors"
	"github.com/zarf0128-creator/NebulaVault/internal/vault"
)

// DownloadOptions configures the download workflow.
type DownloadOptions struct {
	// Filename is the name of the stored file to retrieve.
	Filename string

	// OutputPath is where the plaintext is written. If empty, the plaintext
	// is only returned in the result.
	OutputPath string

	// Password is the vault password used to derive the session master key.
	Password []byte
}

// DownloadResult contains the outcome of a download operation.
type DownloadResult struct {
	// Record is the metadata of the downloaded file.
	Record *vault.FileRecord

	// Plaintext is the decrypted, integrity-checked content.
	Plaintext []byte
}

// Download decrypts a stored file. The file key is unwrapped with the session
// master key, the blob is decrypted, and the plaintext digest is compared
// against the stored hash before anything is returned or written.
//
// Returns ErrFileNotFound if no file with this name is stored.
// Returns ErrWrongPassword if unwrapping fails authentication.
// Returns ErrIntegrityMismatch if the decrypted content does not hash to the
// stored digest.
func Download(ctx context.Context, opts DownloadOptions) (*DownloadResult, error) {
	env, err := openVault()
	if err != nil {
		return nil, err
	}

	rec, err := env.Store.GetFileByName(ctx, env.Owner, opts.Filename)
	if err != nil {
		return nil, err
	}

	sess, err := env.login(ctx, opts.Password)
	if err != nil {
		return nil, err
	}
	defer sess.Close()

	fileKey, err := unwrapFileKey(sess, rec)
	if err != nil {
		return nil, err
	}
	defer fileKey.Zero()

	ciphertext, err := env.Blobs.GetBlob(ctx, rec.StoragePath)
	if err != nil {
		return nil, err
	}

	iv, err := codec.DecodeHex(rec.EncryptionIV)
	if err != nil {
		return nil, fmt.Errorf("file record iv is corrupt: %w", err)
	}

	plaintext, err := crypto.Decrypt(ciphertext, iv, fileKey)
	if err != nil {
		return nil, err
	}

	if crypto.Digest(plaintext) != rec.SHA256Hash {
		return nil, fmt.Errorf("%w: %s", nverrors.ErrIntegrityMismatch, rec.Filename)
	}

	if opts.OutputPath != "" {
		if err := os.WriteFile(opts.OutputPath, plaintext, 0600); err != nil {
			return nil, fmt.Errorf("failed to write %s: %w", opts.OutputPath, err)
		}
	}

	return &DownloadResult{Record: rec, Plaintext: plaintext}, nil
}
