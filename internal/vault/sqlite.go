package vault

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	nverrors "github.com/zarf0128-creator/NebulaVault/internal/errors"
)

// SQLiteStore is the durable Store used by the CLI, backed by a SQLite
// database inside the vault directory.
type SQLiteStore struct {
	db *gorm.DB
}

// OpenSQLite opens (creating if needed) the vault database at path and
// migrates the record tables.
func OpenSQLite(path string) (*SQLiteStore, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open vault database at %s: %w", path, err)
	}

	if err := db.AutoMigrate(&FileRecord{}, &ShareRecord{}, &Profile{}); err != nil {
		return nil, fmt.Errorf("failed to migrate vault database: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) SaveFile(ctx context.Context, rec *FileRecord) error {
	return s.db.WithContext(ctx).Save(rec).Error
}

func (s *SQLiteStore) GetFile(ctx context.Context, id string) (*FileRecord, error) {
	var rec FileRecord
	err := s.db.WithContext(ctx).First(&rec, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: id %s", nverrors.ErrFileNotFound, id)
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (s *SQLiteStore) GetFileByName(ctx context.Context, owner, filename string) (*FileRecord, error) {
	var rec FileRecord
	err := s.db.WithContext(ctx).First(&rec, "owner = ? AND filename = ?", owner, filename).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: %s", nverrors.ErrFileNotFound, filename)
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (s *SQLiteStore) ListFiles(ctx context.Context, owner string) ([]FileRecord, error) {
	var recs []FileRecord
	err := s.db.WithContext(ctx).Where("owner = ?", owner).Order("filename").Find(&recs).Error
	return recs, err
}

func (s *SQLiteStore) DeleteFile(ctx context.Context, id string) error {
	return s.db.WithContext(ctx).Delete(&FileRecord{}, "id = ?", id).Error
}

func (s *SQLiteStore) SaveShare(ctx context.Context, rec *ShareRecord) error {
	return s.db.WithContext(ctx).Save(rec).Error
}

func (s *SQLiteStore) GetShare(ctx context.Context, id string) (*ShareRecord, error) {
	var rec ShareRecord
	err := s.db.WithContext(ctx).First(&rec, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: id %s", nverrors.ErrShareNotFound, id)
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (s *SQLiteStore) ListShares(ctx context.Context) ([]ShareRecord, error) {
	var recs []ShareRecord
	err := s.db.WithContext(ctx).Order("created_at").Find(&recs).Error
	return recs, err
}

func (s *SQLiteStore) ListSharesByFile(ctx context.Context, fileID string) ([]ShareRecord, error) {
	var recs []ShareRecord
	err := s.db.WithContext(ctx).Where("file_id = ?", fileID).Order("created_at").Find(&recs).Error
	return recs, err
}

func (s *SQLiteStore) DeleteShare(ctx context.Context, id string) error {
	res := s.db.WithContext(ctx).Delete(&ShareRecord{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: id %s", nverrors.ErrShareNotFound, id)
	}
	return nil
}

func (s *SQLiteStore) DeleteSharesByFile(ctx context.Context, fileID string) error {
	return s.db.WithContext(ctx).Delete(&ShareRecord{}, "file_id = ?", fileID).Error
}

// ConsumeDownload runs the guard and the increment as one conditional UPDATE,
// so the database decides races near the limit. RowsAffected == 0 means the
// guard failed: either the share is gone or it is exhausted.
func (s *SQLiteStore) ConsumeDownload(ctx context.Context, id string) error {
	res := s.db.WithContext(ctx).
		Model(&ShareRecord{}).
		Where("id = ? AND download_count < usage_limit", id).
		UpdateColumn("download_count", gorm.Expr("download_count + 1"))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		if _, err := s.GetShare(ctx, id); err != nil {
			return err
		}
		return nverrors.ErrShareExhausted
	}
	return nil
}

func (s *SQLiteStore) SaveProfile(ctx context.Context, p *Profile) error {
	return s.db.WithContext(ctx).Save(p).Error
}

func (s *SQLiteStore) GetProfile(ctx context.Context, userID string) (*Profile, error) {
	var p Profile
	err := s.db.WithContext(ctx).First(&p, "user_id = ?", userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: user %s", nverrors.ErrProfileNotFound, userID)
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}
