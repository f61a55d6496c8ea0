package workflows

import (
	"context"
)

// SharePruneResult contains the outcome of a prune operation.
type SharePruneResult struct {
	// Pruned is how many expired or exhausted shares were deleted.
	Pruned int
}

// SharePrune deletes every share that is expired or exhausted. Active shares
// are untouched. Pruning is housekeeping, not revocation: the deleted shares
// were already unredeemable.
//
// Returns ErrVaultNotInitialized if no vault exists here.
func SharePrune(ctx context.Context) (*SharePruneResult, error) {
	env, err := openVault()
	if err != nil {
		return nil, err
	}

	pruned, err := env.protocol().Prune(ctx)
	if err != nil {
		return nil, err
	}

	return &SharePruneResult{Pruned: pruned}, nil
}
