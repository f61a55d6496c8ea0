package init_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/zarf0128-creator/NebulaVault/test/integration/shared"
)

func TestInitCreatesVaultLayout(t *testing.T) {
	tempDir := shared.SetupTestEnvironment(t)
	shared.InitVault(t)

	nebulaDir := filepath.Join(tempDir, ".nebula")
	if _, err := os.Stat(nebulaDir); os.IsNotExist(err) {
		t.Errorf(".nebula directory was not created")
	}
	if _, err := os.Stat(filepath.Join(nebulaDir, "objects")); os.IsNotExist(err) {
		t.Errorf(".nebula/objects directory was not created")
	}
	if _, err := os.Stat(filepath.Join(nebulaDir, "vault.toml")); os.IsNotExist(err) {
		t.Errorf(".nebula/vault.toml was not created")
	}
	if _, err := os.Stat(filepath.Join(nebulaDir, "vault.db")); os.IsNotExist(err) {
		t.Errorf(".nebula/vault.db was not created")
	}
}

func TestInitTwiceFails(t *testing.T) {
	shared.SetupTestEnvironment(t)
	shared.InitVault(t)

	output := shared.MustRunCLI(t, "", "init")
	if !strings.Contains(output, "already exists") {
		t.Errorf("second init should report an existing vault, got: %s", output)
	}
}

func TestInitVaultConfigContents(t *testing.T) {
	tempDir := shared.SetupTestEnvironment(t)
	shared.MustRunCLI(t, "", "init", "--name", "research", "--origin", "https://vault.example.com")

	data, err := os.ReadFile(filepath.Join(tempDir, ".nebula", "vault.toml"))
	if err != nil {
		t.Fatalf("failed to read vault.toml: %v", err)
	}
	content := string(data)
	for _, want := range []string{`name = "research"`, `share_origin = "https://vault.example.com"`, "kdf_iterations = 100000"} {
		if !strings.Contains(content, want) {
			t.Errorf("vault.toml missing %q:\n%s", want, content)
		}
	}
}

func TestCommandsWithoutVault(t *testing.T) {
	shared.SetupTestEnvironment(t)

	output := shared.MustRunCLI(t, "", "ls")
	if !strings.Contains(output, "No vault found") {
		t.Errorf("ls without a vault should say so, got: %s", output)
	}

	output = shared.MustRunCLI(t, "", "status")
	if !strings.Contains(output, "No vault found") {
		t.Errorf("status without a vault should say so, got: %s", output)
	}
}
