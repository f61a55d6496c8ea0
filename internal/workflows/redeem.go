package workflows

import (
	"context"
	"fmt"
	"os"

	"github.com/zarf0128-creator/NebulaVault/internal/share"
	"github.com/zarf0128-creator/NebulaVault/internal/vault"
)

// RedeemOptions configures the redeem workflow.
type RedeemOptions struct {
	// URL is the full share link, including the #key= fragment.
	URL string

	// OutputPath is where the plaintext is written. If empty, the filename
	// from the file record is used.
	OutputPath string
}

// RedeemResult contains the outcome of a redemption.
type RedeemResult struct {
	// File is the record of the shared file.
	File *vault.FileRecord

	// Plaintext is the decrypted, integrity-checked content.
	Plaintext []byte

	// OutputPath is where the plaintext was written.
	OutputPath string

	// Remaining is how many downloads are left after this one.
	Remaining int
}

// Redeem downloads a shared file through its link. No vault password is
// involved: the share key from the URL fragment is the only credential, and
// it unlocks exactly the one shared file. A successful redemption consumes
// one download.
//
// Returns ErrMissingKeyFragment if the URL lacks its key fragment.
// Returns ErrShareNotFound, ErrShareExpired, or ErrShareExhausted for dead
// shares; ErrAuthenticationFailure for a garbled key; ErrIntegrityMismatch
// when the content fails its hash check.
func Redeem(ctx context.Context, opts RedeemOptions) (*RedeemResult, error) {
	env, err := openVault()
	if err != nil {
		return nil, err
	}

	shareID, shareKey, err := share.ParseURL(opts.URL)
	if err != nil {
		return nil, err
	}
	defer shareKey.Zero()

	res, err := env.protocol().Redeem(ctx, shareID, shareKey)
	if err != nil {
		return nil, err
	}

	outputPath := opts.OutputPath
	if outputPath == "" {
		outputPath = res.File.Filename
	}
	if err := os.WriteFile(outputPath, res.Plaintext, 0600); err != nil {
		return nil, fmt.Errorf("failed to write %s: %w", outputPath, err)
	}

	// res.Share holds the pre-increment count; this redemption used one more.
	remaining := share.Remaining(res.Share) - 1
	if remaining < 0 {
		remaining = 0
	}

	return &RedeemResult{
		File:       res.File,
		Plaintext:  res.Plaintext,
		OutputPath: outputPath,
		Remaining:  remaining,
	}, nil
}
