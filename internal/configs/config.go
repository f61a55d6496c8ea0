package configs

import (
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
)

// DefaultShareOrigin is the origin used for share URLs when vault.toml does
// not specify one.
const DefaultShareOrigin = "https://localhost"

type VaultConfig struct {
	Vault  Vault  `toml:"vault"`
	Crypto Crypto `toml:"crypto"`
}

type Vault struct {
	UUID      string    `toml:"vault_uuid"`
	Name      string    `toml:"name"`
	Origin    string    `toml:"share_origin"`
	CreatedAt time.Time `toml:"created_at"`
}

// Crypto records the KDF parameters the vault was created with. The
// iteration count is informational for forward compatibility; the running
// binary always derives with its own constant.
type Crypto struct {
	KDFIterations int `toml:"kdf_iterations"`
}

// LoadVaultConfig loads the vault configuration from vault.toml.
// Note: Caller should ensure InitVaultSettings is called before calling this function.
func LoadVaultConfig() (*VaultConfig, error) {
	configPath := VaultNebulaSettings.ConfigPath

	config := &VaultConfig{}

	if _, err := os.Stat(configPath); !os.IsNotExist(err) {
		if err := LoadTOML(configPath, config); err != nil {
			return nil, fmt.Errorf("failed to load vault config: %w", err)
		}
	}

	// Share URLs need an origin even when vault.toml is absent or silent.
	if config.Vault.Origin == "" {
		config.Vault.Origin = DefaultShareOrigin
	}

	return config, nil
}

// SaveVaultConfig saves the vault configuration to vault.toml.
// Note: Caller should ensure InitVaultSettings is called before calling this function.
func SaveVaultConfig(config *VaultConfig) error {
	if err := SaveTOML(VaultNebulaSettings.ConfigPath, config); err != nil {
		return fmt.Errorf("failed to save vault config: %w", err)
	}

	return nil
}

// GenerateVaultUUID generates a new UUID for the vault.
func GenerateVaultUUID() string {
	return uuid.New().String()
}
