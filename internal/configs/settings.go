package configs

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/zarf0128-creator/NebulaVault/internal/utils"
)

type UserSettings struct {
	UserConfigsPath string
	Username        string
}

type VaultSettings struct {
	VaultName    string
	VaultPath    string
	VaultDir     string
	ObjectsPath  string
	DatabasePath string
	ConfigPath   string
}

var (
	UserNebulaSettings  *UserSettings
	VaultNebulaSettings *VaultSettings
)

func init() {
	configDir, err := os.UserConfigDir()
	if err != nil {
		log.Fatalf("error getting config directory: %s", err)
	}

	username, err := utils.GetUsername()
	if err != nil {
		log.Fatalf("error getting username: %s", err)
	}

	// This is independent of what directory you are in, so it is ok to init here
	UserNebulaSettings = &UserSettings{
		UserConfigsPath: filepath.Join(configDir, "nebula"),
		Username:        username,
	}
	VaultNebulaSettings = &VaultSettings{}
}

// InitVaultSettings resolves the vault root by walking up from the working
// directory. All paths stay empty when no vault exists, which callers treat
// as "not initialized".
func InitVaultSettings() error {
	vaultPath, err := utils.FindVaultRoot()
	if err != nil {
		return fmt.Errorf("error finding vault root: %w", err)
	}

	if vaultPath == "" {
		VaultNebulaSettings = &VaultSettings{}
		return nil
	}

	vaultDir := filepath.Join(vaultPath, ".nebula")
	VaultNebulaSettings = &VaultSettings{
		VaultName:    filepath.Base(vaultPath),
		VaultPath:    vaultPath,
		VaultDir:     vaultDir,
		ObjectsPath:  filepath.Join(vaultDir, "objects"),
		DatabasePath: filepath.Join(vaultDir, "vault.db"),
		ConfigPath:   filepath.Join(vaultDir, "vault.toml"),
	}

	return nil
}
