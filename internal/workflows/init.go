package workflows

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/zarf0128-creator/NebulaVault/internal/codec"
	"github.com/zarf0128-creator/NebulaVault/internal/configs"
	"github.com/zarf0128-creator/NebulaVault/internal/crypto"
	nverrors "github.com/zarf0128-creator/NebulaVault/internal/errors"
	"github.com/zarf0128-creator/NebulaVault/internal/vault"
)

// InitOptions configures the init workflow.
type InitOptions struct {
	// VaultName is the name for the vault. If empty, uses the directory name.
	VaultName string

	// Origin is the origin used when constructing share URLs. If empty, a
	// localhost default is recorded.
	Origin string
}

// InitResult contains the outcome of an init operation.
type InitResult struct {
	// VaultName is the name of the initialized vault.
	VaultName string

	// VaultUUID is the unique identifier assigned to the vault.
	VaultUUID string

	// VaultPath is the root path of the vault.
	VaultPath string

	// UserID is the profile created for the initializing user.
	UserID string
}

// Init creates a new vault in the current directory: the .nebula layout,
// the record database, and a profile holding a freshly generated salt. The
// salt is generated once and is immutable; the master key it anchors is
// derived at login time and never stored.
//
// Returns ErrVaultAlreadyInitialized if a vault already exists in this
// directory tree.
func Init(ctx context.Context, opts InitOptions) (*InitResult, error) {
	if err := configs.InitVaultSettings(); err != nil {
		return nil, fmt.Errorf("initializing vault settings: %w", err)
	}
	if configs.VaultNebulaSettings.VaultPath != "" {
		return nil, fmt.Errorf("%w: at %s", nverrors.ErrVaultAlreadyInitialized, configs.VaultNebulaSettings.VaultPath)
	}

	wd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get working directory: %w", err)
	}

	nebulaDir := filepath.Join(wd, ".nebula")
	if err := os.MkdirAll(filepath.Join(nebulaDir, "objects"), 0700); err != nil {
		return nil, fmt.Errorf("failed to create vault directories: %w", err)
	}

	// Re-resolve settings now that .nebula exists.
	if err := configs.InitVaultSettings(); err != nil {
		return nil, fmt.Errorf("initializing vault settings: %w", err)
	}
	settings := configs.VaultNebulaSettings

	vaultName := opts.VaultName
	if vaultName == "" {
		vaultName = settings.VaultName
	}
	origin := opts.Origin
	if origin == "" {
		origin = configs.DefaultShareOrigin
	}

	config := &configs.VaultConfig{
		Vault: configs.Vault{
			UUID:      configs.GenerateVaultUUID(),
			Name:      vaultName,
			Origin:    origin,
			CreatedAt: time.Now().UTC(),
		},
		Crypto: configs.Crypto{KDFIterations: crypto.PBKDF2Iterations},
	}
	if err := configs.SaveVaultConfig(config); err != nil {
		return nil, err
	}

	store, err := vault.OpenSQLite(settings.DatabasePath)
	if err != nil {
		return nil, err
	}

	salt, err := crypto.GenerateSalt()
	if err != nil {
		return nil, err
	}

	owner := configs.UserNebulaSettings.Username
	profile := &vault.Profile{
		UserID:    owner,
		Salt:      codec.EncodeHex(salt),
		CreatedAt: time.Now().UTC(),
	}
	if err := store.SaveProfile(ctx, profile); err != nil {
		return nil, fmt.Errorf("failed to save profile: %w", err)
	}

	return &InitResult{
		VaultName: vaultName,
		VaultUUID: config.Vault.UUID,
		VaultPath: settings.VaultPath,
		UserID:    owner,
	}, nil
}
