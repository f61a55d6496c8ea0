package workflows

import (
	"context"

	"github.com/zarf0128-creator/NebulaVault/internal/vault"
)

// ListResult contains the outcome of a list operation.
type ListResult struct {
	// Files are the owner's file records, as stored.
	Files []vault.FileRecord
}

// List returns the metadata of every file the owner has stored. No password
// is needed: metadata is not secret, only content and keys are.
//
// Returns ErrVaultNotInitialized if no vault exists here.
func List(ctx context.Context) (*ListResult, error) {
	env, err := openVault()
	if err != nil {
		return nil, err
	}

	files, err := env.Store.ListFiles(ctx, env.Owner)
	if err != nil {
		return nil, err
	}

	return &ListResult{Files: files}, nil
}
