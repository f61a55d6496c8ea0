package workflows

import (
	"context"
	"errors"
	"fmt"

	nverrors "github.com/zarf0128-creator/NebulaVault/internal/errors"
	"github.com/zarf0128-creator/NebulaVault/internal/vault"
)

// RemoveOptions configures the remove workflow.
type RemoveOptions struct {
	// Filename is the name of the stored file to delete.
	Filename string
}

// RemoveResult contains the outcome of a remove operation.
type RemoveResult struct {
	// Record is the metadata of the deleted file.
	Record *vault.FileRecord

	// SharesDeleted is how many shares of this file were removed with it.
	SharesDeleted int
}

// Remove deletes a stored file: its record, its ciphertext blob, and every
// share pointing at it. Outstanding share links for the file stop working
// immediately.
//
// Returns ErrFileNotFound if no file with this name is stored.
func Remove(ctx context.Context, opts RemoveOptions) (*RemoveResult, error) {
	env, err := openVault()
	if err != nil {
		return nil, err
	}

	rec, err := env.Store.GetFileByName(ctx, env.Owner, opts.Filename)
	if err != nil {
		return nil, err
	}

	shares, err := env.Store.ListSharesByFile(ctx, rec.ID)
	if err != nil {
		return nil, err
	}

	if err := env.Store.DeleteSharesByFile(ctx, rec.ID); err != nil {
		return nil, fmt.Errorf("failed to delete shares: %w", err)
	}
	if err := env.Store.DeleteFile(ctx, rec.ID); err != nil {
		return nil, fmt.Errorf("failed to delete file record: %w", err)
	}
	if err := env.Blobs.DeleteBlob(ctx, rec.StoragePath); err != nil && !errors.Is(err, nverrors.ErrBlobNotFound) {
		return nil, fmt.Errorf("failed to delete blob: %w", err)
	}

	return &RemoveResult{Record: rec, SharesDeleted: len(shares)}, nil
}
