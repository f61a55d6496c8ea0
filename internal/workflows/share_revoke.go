package workflows

import (
	"context"
)

// ShareRevokeOptions configures the share revocation workflow.
type ShareRevokeOptions struct {
	// ShareID identifies the share to revoke.
	ShareID string
}

// ShareRevokeResult contains the outcome of a revocation.
type ShareRevokeResult struct {
	// ShareID is the id of the revoked share.
	ShareID string
}

// ShareRevoke deletes a share record. The link stops working immediately:
// anyone redeeming it afterwards observes the share as not found, regardless
// of remaining downloads or expiry. No password is needed; revocation touches
// no key material.
//
// Returns ErrShareNotFound if no share has this id.
func ShareRevoke(ctx context.Context, opts ShareRevokeOptions) (*ShareRevokeResult, error) {
	env, err := openVault()
	if err != nil {
		return nil, err
	}

	if err := env.protocol().Revoke(ctx, opts.ShareID); err != nil {
		return nil, err
	}

	return &ShareRevokeResult{ShareID: opts.ShareID}, nil
}
