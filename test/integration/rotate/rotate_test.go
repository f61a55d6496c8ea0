package rotate_test

import (
	"bytes"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/zarf0128-creator/NebulaVault/test/integration/shared"
)

var shareURLPattern = regexp.MustCompile(`https?://\S*/share/\S+#key=[0-9a-f]{64}`)

func TestRotateKeepsContentReadable(t *testing.T) {
	tempDir := shared.SetupTestEnvironment(t)
	shared.InitVault(t)

	content := []byte("survives rotation")
	if err := os.WriteFile(filepath.Join(tempDir, "data.txt"), content, 0644); err != nil {
		t.Fatalf("failed to write source file: %v", err)
	}
	shared.MustRunCLI(t, shared.PasswordStdin(), "upload", "data.txt", "--password-stdin")

	output := shared.MustRunCLI(t, shared.PasswordStdin(), "rotate", "data.txt", "--password-stdin")
	if !strings.Contains(output, "Rotated key") {
		t.Fatalf("rotate did not report success: %s", output)
	}

	shared.MustRunCLI(t, shared.PasswordStdin(), "download", "data.txt", "--password-stdin", "-o", "after.txt")
	got, err := os.ReadFile(filepath.Join(tempDir, "after.txt"))
	if err != nil {
		t.Fatalf("download after rotate failed: %v", err)
	}
	if !bytes.Equal(got, content) {
		t.Errorf("content changed across rotation")
	}
}

func TestRotateInvalidatesShares(t *testing.T) {
	tempDir := shared.SetupTestEnvironment(t)
	shared.InitVault(t)

	if err := os.WriteFile(filepath.Join(tempDir, "data.txt"), []byte("content"), 0644); err != nil {
		t.Fatalf("failed to write source file: %v", err)
	}
	shared.MustRunCLI(t, shared.PasswordStdin(), "upload", "data.txt", "--password-stdin")

	createOutput := shared.MustRunCLI(t, shared.PasswordStdin(), "share", "create", "data.txt", "--password-stdin", "--limit", "5", "--ttl", "1h")
	url := shareURLPattern.FindString(createOutput)
	if url == "" {
		t.Fatalf("share create output has no share URL: %s", createOutput)
	}

	output := shared.MustRunCLI(t, shared.PasswordStdin(), "rotate", "data.txt", "--password-stdin")
	if !strings.Contains(output, "1 share(s) invalidated") {
		t.Errorf("rotate should report the invalidated share, got: %s", output)
	}

	redeemOutput := shared.MustRunCLI(t, "", "redeem", url, "-o", "stale.txt")
	if !strings.Contains(redeemOutput, "does not exist or was revoked") {
		t.Errorf("share should be dead after rotation, got: %s", redeemOutput)
	}
}

func TestRotateWithWrongPassword(t *testing.T) {
	tempDir := shared.SetupTestEnvironment(t)
	shared.InitVault(t)

	if err := os.WriteFile(filepath.Join(tempDir, "data.txt"), []byte("content"), 0644); err != nil {
		t.Fatalf("failed to write source file: %v", err)
	}
	shared.MustRunCLI(t, shared.PasswordStdin(), "upload", "data.txt", "--password-stdin")

	output := shared.MustRunCLI(t, "wrong\n", "rotate", "data.txt", "--password-stdin")
	if !strings.Contains(output, "Wrong password") {
		t.Errorf("rotate with wrong password should say so, got: %s", output)
	}

	// The original password must still work.
	shared.MustRunCLI(t, shared.PasswordStdin(), "download", "data.txt", "--password-stdin", "-o", "still.txt")
	if _, err := os.Stat(filepath.Join(tempDir, "still.txt")); err != nil {
		t.Errorf("vault should be untouched after failed rotation: %v", err)
	}
}
