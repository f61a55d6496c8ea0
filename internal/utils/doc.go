// Package utils provides shared utility functions for the NebulaVault application.
//
// This package contains general-purpose helpers used across multiple packages.
// Functions are organized into logical groups:
//
// # Filesystem Utilities
//
// Functions for working with the filesystem and vault structure:
//   - FindVaultRoot: walks up directories to find .nebula
//
// # System Utilities
//
// Functions for interacting with the operating system:
//   - GetUsername: returns the current system username
//
// # String Utilities
//
// Functions for string manipulation and formatting:
//   - FormatPaths: formats file paths for human-readable output
//   - FormatBytes: formats byte counts as human-readable sizes
//
// # Terminal Utilities
//
// Functions for terminal detection and interaction:
//   - ReadPassphrase: prompts for a password without echo
//   - IsTerminal: checks if stdin is a terminal
package utils
