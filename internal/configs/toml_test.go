package configs

import (
	"path/filepath"
	"testing"
	"time"
)

func TestSaveAndLoadTOML(t *testing.T) {
	tempDir := t.TempDir()
	testFile := filepath.Join(tempDir, "vault.toml")

	original := VaultConfig{
		Vault: Vault{
			UUID:      "11111111-2222-3333-4444-555555555555",
			Name:      "test-vault",
			Origin:    "https://vault.example.com",
			CreatedAt: time.Date(2026, 8, 24, 10, 0, 0, 0, time.UTC),
		},
		Crypto: Crypto{KDFIterations: 100_000},
	}

	if err := SaveTOML(testFile, original); err != nil {
		t.Fatalf("SaveTOML failed: %v", err)
	}

	loaded := VaultConfig{}
	if err := LoadTOML(testFile, &loaded); err != nil {
		t.Fatalf("LoadTOML failed: %v", err)
	}

	if loaded.Vault.UUID != original.Vault.UUID {
		t.Errorf("Expected UUID %q, got %q", original.Vault.UUID, loaded.Vault.UUID)
	}
	if loaded.Vault.Origin != original.Vault.Origin {
		t.Errorf("Expected Origin %q, got %q", original.Vault.Origin, loaded.Vault.Origin)
	}
	if loaded.Crypto.KDFIterations != original.Crypto.KDFIterations {
		t.Errorf("Expected KDFIterations %d, got %d", original.Crypto.KDFIterations, loaded.Crypto.KDFIterations)
	}
}

func TestLoadTOMLNonExistent(t *testing.T) {
	tempDir := t.TempDir()
	testFile := filepath.Join(tempDir, "nonexistent.toml")

	data := VaultConfig{}
	if err := LoadTOML(testFile, &data); err == nil {
		t.Fatal("Expected error for non-existent file, got nil")
	}
}

func TestSaveTOMLCreatesParentDirectories(t *testing.T) {
	tempDir := t.TempDir()
	testFile := filepath.Join(tempDir, "nested", "deeper", "vault.toml")

	if err := SaveTOML(testFile, VaultConfig{}); err != nil {
		t.Fatalf("SaveTOML failed to create parent directories: %v", err)
	}

	loaded := VaultConfig{}
	if err := LoadTOML(testFile, &loaded); err != nil {
		t.Fatalf("LoadTOML failed: %v", err)
	}
}
