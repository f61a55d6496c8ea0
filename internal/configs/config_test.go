package configs

import (
	"path/filepath"
	"testing"
	"time"
)

// withTempVaultSettings points the package settings at a temp directory and
// restores the originals when the test ends.
func withTempVaultSettings(t *testing.T) string {
	t.Helper()
	tempDir := t.TempDir()

	original := VaultNebulaSettings
	t.Cleanup(func() { VaultNebulaSettings = original })

	vaultDir := filepath.Join(tempDir, ".nebula")
	VaultNebulaSettings = &VaultSettings{
		VaultName:    filepath.Base(tempDir),
		VaultPath:    tempDir,
		VaultDir:     vaultDir,
		ObjectsPath:  filepath.Join(vaultDir, "objects"),
		DatabasePath: filepath.Join(vaultDir, "vault.db"),
		ConfigPath:   filepath.Join(vaultDir, "vault.toml"),
	}
	return tempDir
}

func TestLoadVaultConfigMissingFile(t *testing.T) {
	withTempVaultSettings(t)

	config, err := LoadVaultConfig()
	if err != nil {
		t.Fatalf("LoadVaultConfig failed: %v", err)
	}
	if config.Vault.UUID != "" {
		t.Errorf("expected empty config for missing file, got UUID %q", config.Vault.UUID)
	}
	if config.Vault.Origin != DefaultShareOrigin {
		t.Errorf("Origin = %q, want default %q", config.Vault.Origin, DefaultShareOrigin)
	}
}

func TestSaveAndLoadVaultConfig(t *testing.T) {
	withTempVaultSettings(t)

	config := &VaultConfig{
		Vault: Vault{
			UUID:      GenerateVaultUUID(),
			Name:      "my-vault",
			Origin:    "https://vault.example.com",
			CreatedAt: time.Now().UTC().Truncate(time.Second),
		},
		Crypto: Crypto{KDFIterations: 100_000},
	}

	if err := SaveVaultConfig(config); err != nil {
		t.Fatalf("SaveVaultConfig failed: %v", err)
	}

	loaded, err := LoadVaultConfig()
	if err != nil {
		t.Fatalf("LoadVaultConfig failed: %v", err)
	}

	if loaded.Vault.UUID != config.Vault.UUID {
		t.Errorf("UUID = %q, want %q", loaded.Vault.UUID, config.Vault.UUID)
	}
	if loaded.Vault.Name != "my-vault" {
		t.Errorf("Name = %q, want my-vault", loaded.Vault.Name)
	}
	if loaded.Crypto.KDFIterations != 100_000 {
		t.Errorf("KDFIterations = %d, want 100000", loaded.Crypto.KDFIterations)
	}
}

func TestLoadVaultConfigDefaultsEmptyOrigin(t *testing.T) {
	withTempVaultSettings(t)

	config := &VaultConfig{
		Vault: Vault{
			UUID: GenerateVaultUUID(),
			Name: "my-vault",
		},
		Crypto: Crypto{KDFIterations: 100_000},
	}
	if err := SaveVaultConfig(config); err != nil {
		t.Fatalf("SaveVaultConfig failed: %v", err)
	}

	loaded, err := LoadVaultConfig()
	if err != nil {
		t.Fatalf("LoadVaultConfig failed: %v", err)
	}
	if loaded.Vault.Origin != DefaultShareOrigin {
		t.Errorf("Origin = %q, want default %q", loaded.Vault.Origin, DefaultShareOrigin)
	}
}

func TestGenerateVaultUUIDUnique(t *testing.T) {
	a := GenerateVaultUUID()
	b := GenerateVaultUUID()
	if a == b {
		t.Error("two generated vault UUIDs are equal")
	}
	if len(a) != 36 {
		t.Errorf("UUID length = %d, want 36", len(a))
	}
}
