package workflows

import (
	"context"
	"time"

	"github.com/zarf0128-creator/NebulaVault/internal/share"
	"github.com/zarf0128-creator/NebulaVault/internal/vault"
)

// ShareInfo is one share with its observed lifecycle state.
type ShareInfo struct {
	// Share is the stored record.
	Share vault.ShareRecord

	// Filename is the name of the shared file, or empty if the file record
	// is gone.
	Filename string

	// State is the lifecycle state at listing time.
	State share.State

	// Remaining is how many downloads are left.
	Remaining int
}

// ShareListOptions configures the share listing workflow.
type ShareListOptions struct {
	// Filename, when set, restricts the listing to shares of this file.
	Filename string
}

// ShareListResult contains the outcome of a share listing.
type ShareListResult struct {
	// Shares are all shares in the vault, newest first as stored.
	Shares []ShareInfo
}

// ShareList returns every share in the vault with its current state. Listing
// never mutates state: an expired share shows as expired without being
// deleted.
//
// Returns ErrVaultNotInitialized if no vault exists here.
// Returns ErrFileNotFound if a filename filter names no stored file.
func ShareList(ctx context.Context, opts ShareListOptions) (*ShareListResult, error) {
	env, err := openVault()
	if err != nil {
		return nil, err
	}

	var recs []vault.ShareRecord
	if opts.Filename != "" {
		file, err := env.Store.GetFileByName(ctx, env.Owner, opts.Filename)
		if err != nil {
			return nil, err
		}
		recs, err = env.Store.ListSharesByFile(ctx, file.ID)
		if err != nil {
			return nil, err
		}
	} else {
		recs, err = env.Store.ListShares(ctx)
		if err != nil {
			return nil, err
		}
	}

	now := time.Now()
	infos := make([]ShareInfo, 0, len(recs))
	for i := range recs {
		info := ShareInfo{
			Share:     recs[i],
			State:     share.StateOf(&recs[i], now),
			Remaining: share.Remaining(&recs[i]),
		}
		if file, err := env.Store.GetFile(ctx, recs[i].FileID); err == nil {
			info.Filename = file.Filename
		}
		infos = append(infos, info)
	}

	return &ShareListResult{Shares: infos}, nil
}
