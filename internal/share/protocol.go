package share

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/zarf0128-creator/NebulaVault/internal/codec"
	"github.com/zarf0128-creator/NebulaVault/internal/crypto"
	"github.com/zarf0128-creator/NebulaVault/internal/envelope"
	nverrors "github.com/zarf0128-creator/NebulaVault/internal/errors"
	"github.com/zarf0128-creator/NebulaVault/internal/vault"
)

// Protocol orchestrates share creation and redemption over the persistence
// collaborators. All methods are stateless with respect to each other; the
// only cross-request coordination is the store's atomic redeem counter.
type Protocol struct {
	Files  vault.FileStore
	Shares vault.ShareStore
	Blobs  vault.BlobStore

	// Engine defaults to crypto.Default when nil.
	Engine crypto.Engine

	// Now defaults to time.Now when nil. Tests override it to drive the
	// expiry state without sleeping.
	Now func() time.Time
}

func (p *Protocol) engine() crypto.Engine {
	if p.Engine != nil {
		return p.Engine
	}
	return crypto.Default
}

func (p *Protocol) now() time.Time {
	if p.Now != nil {
		return p.Now()
	}
	return time.Now()
}

// CreateOptions configures a new share.
type CreateOptions struct {
	// UsageLimit is the maximum number of successful downloads. Must be >= 1.
	UsageLimit int

	// TTL is how long the share stays redeemable. Must be > 0.
	TTL time.Duration

	// CreatedBy identifies the owner creating the share.
	CreatedBy string
}

// Create generates a fresh share key, re-wraps fileKey under it, and persists
// the share record. The share key is returned to the caller for the URL
// fragment and is deliberately excluded from persistence: losing the full
// link means losing access to the share.
//
// Returns ErrInvalidInput if UsageLimit < 1 or TTL <= 0.
func (p *Protocol) Create(ctx context.Context, file *vault.FileRecord, fileKey crypto.Key, opts CreateOptions) (*vault.ShareRecord, crypto.Key, error) {
	if opts.UsageLimit < 1 {
		return nil, crypto.Key{}, fmt.Errorf("%w: usage limit must be at least 1", nverrors.ErrInvalidInput)
	}
	if opts.TTL <= 0 {
		return nil, crypto.Key{}, fmt.Errorf("%w: ttl must be positive", nverrors.ErrInvalidInput)
	}

	shareKey, err := p.engine().GenerateKey()
	if err != nil {
		return nil, crypto.Key{}, fmt.Errorf("failed to generate share key: %w", err)
	}

	wrapped, err := envelope.NewManager(p.engine()).Wrap(fileKey, shareKey)
	if err != nil {
		return nil, crypto.Key{}, err
	}

	now := p.now()
	rec := &vault.ShareRecord{
		ID:                 uuid.New().String(),
		FileID:             file.ID,
		EncryptedFileKey:   codec.EncodeHex(wrapped.Ciphertext),
		EncryptedFileKeyIV: codec.EncodeHex(wrapped.IV),
		UsageLimit:         opts.UsageLimit,
		DownloadCount:      0,
		ExpiresAt:          now.Add(opts.TTL),
		CreatedBy:          opts.CreatedBy,
		CreatedAt:          now,
	}

	if err := p.Shares.SaveShare(ctx, rec); err != nil {
		return nil, crypto.Key{}, fmt.Errorf("failed to persist share record: %w", err)
	}

	return rec, shareKey, nil
}

// RedeemResult is the outcome of a successful redemption.
type RedeemResult struct {
	// Plaintext is the decrypted, integrity-checked file content.
	Plaintext []byte

	// File is the record of the shared file.
	File *vault.FileRecord

	// Share is the record as loaded, before this redemption's increment.
	Share *vault.ShareRecord
}

// Redeem consumes one download of a share. The lifecycle state is validated
// before any key material is touched; an expired or exhausted share fails
// without ever calling unwrap.
//
// The counter is consumed only after decryption and the integrity check
// succeed, through the store's atomic conditional increment. When racing
// redeems drain the last download, the callers whose increment fails get
// ErrShareExhausted and no plaintext; the count never overshoots the limit.
//
// Returns ErrShareNotFound, ErrShareExpired, ErrShareExhausted,
// ErrAuthenticationFailure (wrong or garbled share key), or
// ErrIntegrityMismatch.
func (p *Protocol) Redeem(ctx context.Context, shareID string, shareKey crypto.Key) (*RedeemResult, error) {
	rec, err := p.Shares.GetShare(ctx, shareID)
	if err != nil {
		return nil, err
	}

	if err := CheckRedeemable(rec, p.now()); err != nil {
		return nil, err
	}

	file, err := p.Files.GetFile(ctx, rec.FileID)
	if err != nil {
		return nil, err
	}

	wrapped, err := decodeWrappedShareKey(rec)
	if err != nil {
		return nil, err
	}

	fileKey, err := envelope.NewManager(p.engine()).Unwrap(wrapped, shareKey)
	if err != nil {
		return nil, err
	}
	defer fileKey.Zero()

	ciphertext, err := p.Blobs.GetBlob(ctx, file.StoragePath)
	if err != nil {
		return nil, err
	}

	fileIV, err := codec.DecodeHex(file.EncryptionIV)
	if err != nil {
		return nil, err
	}

	plaintext, err := p.engine().Decrypt(ciphertext, fileIV, fileKey)
	if err != nil {
		return nil, err
	}

	if p.engine().Digest(plaintext) != file.SHA256Hash {
		return nil, nverrors.ErrIntegrityMismatch
	}

	if err := p.Shares.ConsumeDownload(ctx, shareID); err != nil {
		return nil, err
	}

	return &RedeemResult{Plaintext: plaintext, File: file, Share: rec}, nil
}

// Revoke deletes the share record immediately. Subsequent lookups observe
// the share as not found; outstanding links stop working.
func (p *Protocol) Revoke(ctx context.Context, shareID string) error {
	return p.Shares.DeleteShare(ctx, shareID)
}

// Prune deletes all shares that are expired or exhausted, returning how many
// records were removed. Active shares are untouched.
func (p *Protocol) Prune(ctx context.Context) (int, error) {
	recs, err := p.Shares.ListShares(ctx)
	if err != nil {
		return 0, err
	}

	now := p.now()
	pruned := 0
	for i := range recs {
		if StateOf(&recs[i], now) == StateActive {
			continue
		}
		if err := p.Shares.DeleteShare(ctx, recs[i].ID); err != nil {
			return pruned, err
		}
		pruned++
	}
	return pruned, nil
}

func decodeWrappedShareKey(rec *vault.ShareRecord) (envelope.WrappedKey, error) {
	ciphertext, err := codec.DecodeHex(rec.EncryptedFileKey)
	if err != nil {
		return envelope.WrappedKey{}, err
	}
	iv, err := codec.DecodeHex(rec.EncryptedFileKeyIV)
	if err != nil {
		return envelope.WrappedKey{}, err
	}
	return envelope.WrappedKey{Ciphertext: ciphertext, IV: iv}, nil
}
