package workflows

import (
	"context"
	"errors"
	"fmt"

	"github.com/zarf0128-creator/NebulaVault/internal/codec"
	"github.com/zarf0128-creator/NebulaVault/internal/configs"
	"github.com/zarf0128-creator/NebulaVault/internal/crypto"
	"github.com/zarf0128-creator/NebulaVault/internal/envelope"
	nverrors "github.com/zarf0128-creator/NebulaVault/internal/errors"
	"github.com/zarf0128-creator/NebulaVault/internal/session"
	"github.com/zarf0128-creator/NebulaVault/internal/share"
	"github.com/zarf0128-creator/NebulaVault/internal/vault"
)

// vaultEnv bundles the open persistence collaborators for one vault.
type vaultEnv struct {
	Config *configs.VaultConfig
	Store  *vault.SQLiteStore
	Blobs  *vault.FilesystemBlobStore
	Owner  string
}

// openVault resolves the vault from the working directory and opens its
// stores. Returns ErrVaultNotInitialized when no .nebula directory exists
// in the directory tree.
func openVault() (*vaultEnv, error) {
	if err := configs.InitVaultSettings(); err != nil {
		return nil, fmt.Errorf("initializing vault settings: %w", err)
	}

	settings := configs.VaultNebulaSettings
	if settings.VaultPath == "" {
		return nil, nverrors.ErrVaultNotInitialized
	}

	config, err := configs.LoadVaultConfig()
	if err != nil {
		return nil, fmt.Errorf("loading vault config: %w", err)
	}

	store, err := vault.OpenSQLite(settings.DatabasePath)
	if err != nil {
		return nil, err
	}

	blobs, err := vault.NewFilesystemBlobStore(settings.ObjectsPath)
	if err != nil {
		return nil, err
	}

	return &vaultEnv{
		Config: config,
		Store:  store,
		Blobs:  blobs,
		Owner:  configs.UserNebulaSettings.Username,
	}, nil
}

// protocol returns a share protocol over this vault's stores.
func (env *vaultEnv) protocol() *share.Protocol {
	return &share.Protocol{Files: env.Store, Shares: env.Store, Blobs: env.Blobs}
}

// login derives the owner's session from the persisted salt.
//
// Returns ErrProfileNotFound if the vault has no profile for this user and
// ErrInvalidInput on an empty password.
func (env *vaultEnv) login(ctx context.Context, password []byte) (*session.Session, error) {
	profile, err := env.Store.GetProfile(ctx, env.Owner)
	if err != nil {
		return nil, err
	}

	salt, err := codec.DecodeHex(profile.Salt)
	if err != nil {
		return nil, fmt.Errorf("profile salt is corrupt: %w", err)
	}

	return session.Open(env.Owner, password, salt)
}

// unwrapFileKey unwraps a file record's key with the session master key.
// An authentication failure here means the wrong password was supplied, so
// the error carries both ErrWrongPassword and ErrAuthenticationFailure.
func unwrapFileKey(sess *session.Session, rec *vault.FileRecord) (crypto.Key, error) {
	master, err := sess.MasterKey()
	if err != nil {
		return crypto.Key{}, err
	}
	defer master.Zero()

	wrapped, err := decodeWrappedFileKey(rec)
	if err != nil {
		return crypto.Key{}, err
	}

	fileKey, err := envelope.Unwrap(wrapped, master)
	if errors.Is(err, nverrors.ErrAuthenticationFailure) {
		return crypto.Key{}, fmt.Errorf("%w: %w", nverrors.ErrWrongPassword, err)
	}
	if err != nil {
		return crypto.Key{}, err
	}

	return fileKey, nil
}

func decodeWrappedFileKey(rec *vault.FileRecord) (envelope.WrappedKey, error) {
	ciphertext, err := codec.DecodeHex(rec.WrappedFileKey)
	if err != nil {
		return envelope.WrappedKey{}, err
	}
	iv, err := codec.DecodeHex(rec.WrappedKeyIV)
	if err != nil {
		return envelope.WrappedKey{}, err
	}
	return envelope.WrappedKey{Ciphertext: ciphertext, IV: iv}, nil
}
