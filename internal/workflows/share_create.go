package workflows

import (
	"context"
	"time"

	"github.com/zarf0128-creator/NebulaVault/internal/share"
	"github.com/zarf0128-creator/NebulaVault/internal/vault"
)

// ShareCreateOptions configures the share creation workflow.
type ShareCreateOptions struct {
	// Filename is the name of the stored file to share.
	Filename string

	// UsageLimit is the maximum number of successful downloads. Must be >= 1.
	UsageLimit int

	// TTL is how long the share stays redeemable. Must be > 0.
	TTL time.Duration

	// Password is the vault password used to unwrap the file key.
	Password []byte
}

// ShareCreateResult contains the outcome of a share creation.
type ShareCreateResult struct {
	// Share is the persisted share record.
	Share *vault.ShareRecord

	// URL is the full share link including the key fragment. This is the only
	// copy of the share key; it is not recoverable from the vault.
	URL string
}

// ShareCreate creates a share link for a stored file. The file key is
// unwrapped with the session master key and immediately re-wrapped under a
// fresh share key, so recipients never learn the owner's master key and
// revoking the share never affects the owner's own access.
//
// Returns ErrFileNotFound if no file with this name is stored.
// Returns ErrWrongPassword if unwrapping fails authentication.
// Returns ErrInvalidInput if UsageLimit < 1 or TTL <= 0.
func ShareCreate(ctx context.Context, opts ShareCreateOptions) (*ShareCreateResult, error) {
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

	shareRec, shareKey, err := env.protocol().Create(ctx, rec, fileKey, share.CreateOptions{
		UsageLimit: opts.UsageLimit,
		TTL:        opts.TTL,
		CreatedBy:  env.Owner,
	})
	if err != nil {
		return nil, err
	}
	defer shareKey.Zero()

	return &ShareCreateResult{
		Share: shareRec,
		URL:   share.FormatURL(env.Config.Vault.Origin, shareRec.ID, shareKey),
	}, nil
}
