// Package errors provides typed error values for the NebulaVault application.
//
// Using sentinel errors allows callers to handle specific error conditions
// programmatically with errors.Is() rather than string matching. This makes
// error handling more robust and refactoring-safe.
//
// # Error Categories
//
// Errors are grouped by category:
//
//   - Crypto errors: Key derivation and AEAD failures (ErrInvalidInput,
//     ErrAuthenticationFailure, ErrIntegrityMismatch)
//   - Share errors: Share lifecycle and link issues (ErrShareExpired,
//     ErrShareExhausted, ErrMissingKeyFragment)
//   - Vault errors: Vault state issues (ErrVaultNotInitialized, ErrFileNotFound)
//
// # Usage
//
// Return errors from internal packages:
//
//	if now.After(share.ExpiresAt) {
//	    return nil, errors.ErrShareExpired
//	}
//
// Handle errors in the CLI layer:
//
//	result, err := workflows.Redeem(ctx, opts)
//	if errors.Is(err, nverrors.ErrShareExhausted) {
//	    // Show user-friendly message
//	}
//
// Wrap errors with additional context:
//
//	return fmt.Errorf("loading share %s: %w", shareID, errors.ErrShareNotFound)
//
// Crypto-layer failures are always propagated unmodified: callers can rely on
// errors.Is(err, ErrAuthenticationFailure) holding through any wrapping.
package errors
