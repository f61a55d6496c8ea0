// Package workflows provides high-level orchestration for NebulaVault commands.
//
// Workflows coordinate multiple operations across packages (configs, crypto,
// envelope, share, vault) to implement complete user-facing features. Each
// workflow handles a single command's business logic, independent of CLI
// concerns like flag parsing, spinners, and output formatting.
//
// # Design Philosophy
//
// The cmd/ package should be a thin layer that:
//   - Parses command-line flags and arguments
//   - Calls the appropriate workflow function
//   - Formats the result for display
//
// Workflows handle everything else:
//   - Resolving the vault from the working directory
//   - Deriving the session master key from the password
//   - Performing the core operation
//   - Zeroing transient key material before returning
//
// # Available Workflows
//
// Each command has a corresponding workflow:
//
//   - Init: Creates a new vault with its salt and config
//   - Upload: Encrypts a file into the vault under a fresh file key
//   - Download: Decrypts a stored file after its integrity check
//   - List: Lists stored file metadata
//   - Remove: Deletes a file, its blob, and its shares
//   - ShareCreate: Re-wraps a file key under a fresh share key
//   - ShareList: Lists shares with their lifecycle state
//   - ShareRevoke: Deletes a share record
//   - SharePrune: Deletes expired and exhausted shares
//   - Redeem: Downloads a shared file through its link
//   - Rotate: Replaces a file's key and invalidates its shares
//   - Doctor: Runs read-only health checks
//   - Status: Reports a vault snapshot
//
// # Error Handling
//
// Workflows return typed errors from the internal/errors package, allowing
// the CLI layer to provide appropriate user-facing messages without string
// matching. Use errors.Is() to check for specific error conditions:
//
//	result, err := workflows.Download(ctx, opts)
//	if errors.Is(err, nverrors.ErrWrongPassword) {
//	    // Show user-friendly authentication message
//	}
//
// # Context Usage
//
// All workflow functions accept a context.Context as their first parameter.
// This enables cancellation, timeouts, and passing request-scoped values.
package workflows
