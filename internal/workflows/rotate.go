package workflows

import (
	"context"
	"fmt"

	"github.com/zarf0128-creator/NebulaVault/internal/codec"
	"github.com/zarf0128-creator/NebulaVault/internal/crypto"
	"github.com/zarf0128-creator/NebulaVault/internal/envelope"
	nverrors "github.com/zarf0128-creator/NebulaVault/internal/errors"
	"github.com/zarf0128-creator/NebulaVault/internal/vault"
)

// RotateOptions configures the rotate workflow.
type RotateOptions struct {
	// Filename is the name of the stored file whose key is rotated.
	Filename string

	// Password is the vault password used to unwrap and re-wrap the key.
	Password []byte
}

// RotateResult contains the outcome of a rotation.
type RotateResult struct {
	// Record is the updated file record.
	Record *vault.FileRecord

	// SharesDeleted is how many shares were invalidated by the rotation.
	SharesDeleted int
}

// Rotate replaces a file's key: the content is decrypted with the old key,
// re-encrypted under a fresh one, and the fresh key is wrapped under the
// session master key. Every existing share of the file is deleted, because
// their wrapped copies of the old key can no longer decrypt anything.
//
// Returns ErrFileNotFound if no file with this name is stored.
// Returns ErrWrongPassword if unwrapping fails authentication.
// Returns ErrIntegrityMismatch if the stored content fails its hash check
// before re-encryption.
func Rotate(ctx context.Context, opts RotateOptions) (*RotateResult, error) {
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

	oldKey, err := unwrapFileKey(sess, rec)
	if err != nil {
		return nil, err
	}
	defer oldKey.Zero()

	ciphertext, err := env.Blobs.GetBlob(ctx, rec.StoragePath)
	if err != nil {
		return nil, err
	}
	oldIV, err := codec.DecodeHex(rec.EncryptionIV)
	if err != nil {
		return nil, fmt.Errorf("file record iv is corrupt: %w", err)
	}
	plaintext, err := crypto.Decrypt(ciphertext, oldIV, oldKey)
	if err != nil {
		return nil, err
	}
	if crypto.Digest(plaintext) != rec.SHA256Hash {
		return nil, fmt.Errorf("%w: %s", nverrors.ErrIntegrityMismatch, rec.Filename)
	}

	newKey, err := crypto.GenerateKey()
	if err != nil {
		return nil, err
	}
	defer newKey.Zero()

	newCiphertext, newIV, err := crypto.Encrypt(plaintext, newKey)
	if err != nil {
		return nil, err
	}

	master, err := sess.MasterKey()
	if err != nil {
		return nil, err
	}
	defer master.Zero()

	wrapped, err := envelope.Wrap(newKey, master)
	if err != nil {
		return nil, err
	}

	shares, err := env.Store.ListSharesByFile(ctx, rec.ID)
	if err != nil {
		return nil, err
	}
	if err := env.Store.DeleteSharesByFile(ctx, rec.ID); err != nil {
		return nil, fmt.Errorf("failed to invalidate shares: %w", err)
	}

	rec.EncryptionIV = codec.EncodeHex(newIV)
	rec.WrappedFileKey = codec.EncodeHex(wrapped.Ciphertext)
	rec.WrappedKeyIV = codec.EncodeHex(wrapped.IV)
	if err := env.Blobs.PutBlob(ctx, rec.StoragePath, newCiphertext); err != nil {
		return nil, err
	}
	if err := env.Store.SaveFile(ctx, rec); err != nil {
		return nil, fmt.Errorf("failed to save file record: %w", err)
	}

	return &RotateResult{Record: rec, SharesDeleted: len(shares)}, nil
}
