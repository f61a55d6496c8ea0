package vault

import "context"

// FileStore persists file metadata records.
type FileStore interface {
	SaveFile(ctx context.Context, rec *FileRecord) error

	// GetFile returns ErrFileNotFound if no record has this id.
	GetFile(ctx context.Context, id string) (*FileRecord, error)

	// GetFileByName returns ErrFileNotFound if the owner has no file with
	// this name.
	GetFileByName(ctx context.Context, owner, filename string) (*FileRecord, error)

	ListFiles(ctx context.Context, owner string) ([]FileRecord, error)

	DeleteFile(ctx context.Context, id string) error
}

// ShareStore persists share records and owns the redeem counter.
type ShareStore interface {
	SaveShare(ctx context.Context, rec *ShareRecord) error

	// GetShare returns ErrShareNotFound if no record has this id (including
	// after revocation, which deletes the record).
	GetShare(ctx context.Context, id string) (*ShareRecord, error)

	ListShares(ctx context.Context) ([]ShareRecord, error)

	ListSharesByFile(ctx context.Context, fileID string) ([]ShareRecord, error)

	// DeleteShare returns ErrShareNotFound if no record has this id.
	DeleteShare(ctx context.Context, id string) error

	DeleteSharesByFile(ctx context.Context, fileID string) error

	// ConsumeDownload atomically increments download_count by one, but only
	// if download_count < usage_limit. There is no read-then-write path:
	// racing redeems near the limit are decided by this single conditional
	// update. Returns ErrShareExhausted when the guard fails and
	// ErrShareNotFound when the record does not exist.
	ConsumeDownload(ctx context.Context, id string) error
}

// ProfileStore persists per-user salts.
type ProfileStore interface {
	SaveProfile(ctx context.Context, p *Profile) error

	// GetProfile returns ErrProfileNotFound if the user has no profile.
	GetProfile(ctx context.Context, userID string) (*Profile, error)
}

// Store is the full record store a vault needs.
type Store interface {
	FileStore
	ShareStore
	ProfileStore
}

// BlobStore holds opaque ciphertext blobs keyed by storage path. It stands in
// for object storage; the vault never hands it anything but ciphertext.
type BlobStore interface {
	PutBlob(ctx context.Context, path string, data []byte) error

	// GetBlob returns ErrBlobNotFound if no blob exists at this path.
	GetBlob(ctx context.Context, path string) ([]byte, error)

	DeleteBlob(ctx context.Context, path string) error
}
