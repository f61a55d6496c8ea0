package vault

import "time"

// FileRecord is the metadata for one stored file. All byte-valued fields
// (IVs, the wrapped key, the hash) are lowercase hex. The raw file key never
// appears here; only its wrapped form does. Immutable after upload except
// for rotation and deletion.
type FileRecord struct {
	ID             string `gorm:"primaryKey"`
	Owner          string `gorm:"index"`
	Filename       string `gorm:"index"`
	StoragePath    string
	FileSize       int64
	MimeType       string
	EncryptionIV   string
	WrappedFileKey string
	WrappedKeyIV   string
	SHA256Hash     string
	CreatedAt      time.Time
}

// ShareRecord is the metadata for one share link. EncryptedFileKey is the
// file key wrapped under the share key; the share key itself is never
// persisted anywhere. DownloadCount only moves through ConsumeDownload and
// never exceeds UsageLimit.
type ShareRecord struct {
	ID                 string `gorm:"primaryKey"`
	FileID             string `gorm:"index"`
	EncryptedFileKey   string
	EncryptedFileKeyIV string
	UsageLimit         int
	DownloadCount      int
	ExpiresAt          time.Time
	CreatedBy          string
	CreatedAt          time.Time
}

// Profile holds the per-user KDF salt (hex). Generated once at vault init,
// immutable thereafter.
type Profile struct {
	UserID    string `gorm:"primaryKey"`
	Salt      string
	CreatedAt time.Time
}
