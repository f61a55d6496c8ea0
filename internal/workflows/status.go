package workflows

import (
	"context"
	"time"

	"github.com/zarf0128-creator/NebulaVault/internal/share"
)

// StatusSummary holds counts of shares by lifecycle state.
type StatusSummary struct {
	// Active is the count of shares still redeemable.
	Active int

	// Exhausted is the count of shares at their download limit.
	Exhausted int

	// Expired is the count of shares past their expiry time.
	Expired int
}

// StatusResult contains the outcome of a status operation.
type StatusResult struct {
	// VaultName is the configured name of the vault.
	VaultName string

	// VaultUUID is the vault's unique identifier.
	VaultUUID string

	// Files is the number of stored files.
	Files int

	// TotalSize is the combined plaintext size of stored files in bytes.
	TotalSize int64

	// Shares summarizes the vault's shares by state.
	Shares StatusSummary
}

// Status reports a snapshot of the vault: file counts, total size, and share
// states. Read-only; no password is needed and no state is mutated.
//
// Returns ErrVaultNotInitialized if no vault exists here.
func Status(ctx context.Context) (*StatusResult, error) {
	env, err := openVault()
	if err != nil {
		return nil, err
	}

	files, err := env.Store.ListFiles(ctx, env.Owner)
	if err != nil {
		return nil, err
	}

	result := &StatusResult{
		VaultName: env.Config.Vault.Name,
		VaultUUID: env.Config.Vault.UUID,
		Files:     len(files),
	}
	for i := range files {
		result.TotalSize += files[i].FileSize
	}

	shares, err := env.Store.ListShares(ctx)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	for i := range shares {
		switch share.StateOf(&shares[i], now) {
		case share.StateActive:
			result.Shares.Active++
		case share.StateExhausted:
			result.Shares.Exhausted++
		case share.StateExpired:
			result.Shares.Expired++
		}
	}

	return result, nil
}
