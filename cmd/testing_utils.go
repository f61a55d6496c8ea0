// Package cmd contains testing utilities shared between integration tests.
// This file provides common functions for setting up test environments,
// capturing output, and wiring the CLI for tests.
package cmd

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"testing"

	"github.com/zarf0128-creator/NebulaVault/internal/configs"
	logger "github.com/zarf0128-creator/NebulaVault/internal/logging"
	"github.com/spf13/cobra"
)

// SetupTestEnvironment moves the test into a temporary vault directory and
// overrides the user settings. Restores everything on cleanup.
func SetupTestEnvironment(t *testing.T, tempDir, tempUserDir string) {
	t.Helper()

	originalWd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Failed to get working directory: %v", err)
	}
	originalUserSettings := configs.UserNebulaSettings

	if err := os.Chdir(tempDir); err != nil {
		t.Fatalf("Failed to change to temp directory: %v", err)
	}

	t.Cleanup(func() {
		if err := os.Chdir(originalWd); err != nil {
			t.Fatalf("Failed to change to original directory: %v", err)
		}
		configs.UserNebulaSettings = originalUserSettings
		configs.VaultNebulaSettings = &configs.VaultSettings{}
	})

	// Override user settings to use temp directory
	configs.UserNebulaSettings = &configs.UserSettings{
		UserConfigsPath: filepath.Join(tempUserDir, "config"),
		Username:        "testuser",
	}
}

// CaptureOutput captures both stdout and stderr during function execution.
func CaptureOutput(fn func() error) (string, error) {
	// Save original stdout and stderr
	originalStdout := os.Stdout
	originalStderr := os.Stderr

	// Create pipes to capture output
	stdoutReader, stdoutWriter, _ := os.Pipe()
	stderrReader, stderrWriter, _ := os.Pipe()

	// Replace stdout and stderr
	os.Stdout = stdoutWriter
	os.Stderr = stderrWriter

	// Channel to collect output
	outputChan := make(chan string, 2)

	// Start goroutines to read from pipes
	go func() {
		var buf bytes.Buffer
		_, err := io.Copy(&buf, stdoutReader)
		if err != nil {
			log.Fatalf("Failed to run copy command: %s", err)
		}
		outputChan <- buf.String()
	}()

	go func() {
		var buf bytes.Buffer
		_, err := io.Copy(&buf, stderrReader)
		if err != nil {
			log.Fatalf("Failed to run copy command: %s", err)
		}
		outputChan <- buf.String()
	}()

	// Execute the function
	err := fn()

	// Close writers to signal EOF
	stdoutWriter.Close()
	stderrWriter.Close()

	// Restore original stdout and stderr
	os.Stdout = originalStdout
	os.Stderr = originalStderr

	// Collect output
	stdout := <-outputChan
	stderr := <-outputChan

	return stdout + stderr, err
}

// CreateTestCLI creates a complete CLI instance for testing with the
// specified vault subcommand arguments. stdin, when non-nil, feeds commands
// that read --password-stdin.
func CreateTestCLI(args []string, stdin io.Reader, stdout, stderr io.Writer, verboseFlag, debugFlag bool) *cobra.Command {
	// Set global flags for the actual command (needed for the real command implementations)
	verbose = verboseFlag
	debug = debugFlag

	// Initialize the logger with the test flags
	Logger = logger.Logger{
		Verbose: verbose,
		Debug:   debug,
	}

	// Create a fresh root command for this test
	rootCmd := &cobra.Command{
		Use:   "nebula",
		Short: "Nebula - client-side encrypted file storage and sharing.",
	}

	// Use the actual VaultCmd but reset its state
	rootCmd.AddCommand(VaultCmd)

	if stdin != nil {
		rootCmd.SetIn(stdin)
		VaultCmd.SetIn(stdin)
	}
	if stdout != nil {
		rootCmd.SetOut(stdout)
		VaultCmd.SetOut(stdout)
	}
	if stderr != nil {
		rootCmd.SetErr(stderr)
		VaultCmd.SetErr(stderr)
	}

	rootCmd.SetArgs(append([]string{"vault"}, args...))

	// Set the flags on the vault command
	if err := VaultCmd.PersistentFlags().Set("verbose", fmt.Sprintf("%t", verboseFlag)); err != nil {
		log.Fatalf("Failed to set verbose flag for testing: %s", err)
	}
	if err := VaultCmd.PersistentFlags().Set("debug", fmt.Sprintf("%t", debugFlag)); err != nil {
		log.Fatalf("Failed to set debug flag for testing: %s", err)
	}

	return rootCmd
}
