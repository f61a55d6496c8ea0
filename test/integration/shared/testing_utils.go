// Package shared contains testing utilities shared between integration tests.
// This file provides common functions for setting up test environments,
// capturing output, and driving the CLI end to end.
package shared

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/zarf0128-creator/NebulaVault/cmd"
)

// TestPassword is the vault password used across integration tests.
const TestPassword = "correct horse battery staple"

// SetupTestEnvironment sets up the test environment with temporary directories.
func SetupTestEnvironment(t *testing.T) string {
	t.Helper()
	tempDir := t.TempDir()
	tempUserDir := t.TempDir()
	cmd.SetupTestEnvironment(t, tempDir, tempUserDir)
	t.Cleanup(cmd.ResetGlobalState)
	return tempDir
}

// RunCLI executes one vault subcommand with the given args and returns its
// combined output. stdin feeds commands using --password-stdin.
func RunCLI(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	var in io.Reader
	if stdin != "" {
		in = strings.NewReader(stdin)
	}

	var buf bytes.Buffer
	cli := cmd.CreateTestCLI(args, in, &buf, &buf, false, false)

	output, err := cmd.CaptureOutput(cli.Execute)
	return buf.String() + output, err
}

// MustRunCLI executes one vault subcommand and fails the test on error.
func MustRunCLI(t *testing.T, stdin string, args ...string) string {
	t.Helper()
	output, err := RunCLI(t, stdin, args...)
	if err != nil {
		t.Fatalf("command %v failed: %v\noutput: %s", args, err, output)
	}
	return output
}

// InitVault initializes a vault in the current test directory.
func InitVault(t *testing.T) {
	t.Helper()
	output := MustRunCLI(t, "", "init")
	if !strings.Contains(output, "initialized") {
		t.Fatalf("init did not report success: %s", output)
	}
}

// PasswordStdin is the stdin payload for --password-stdin commands.
func PasswordStdin() string {
	return TestPassword + "\n"
}
