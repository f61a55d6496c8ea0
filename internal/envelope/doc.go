// Package envelope implements key wrapping for NebulaVault.
//
// A file key is "wrapped" by encrypting its raw 32 bytes under another
// symmetric key. The same mechanism serves two roles:
//
//   - Owner storage: the file key is wrapped under the session master key
//     and the wrapped form is persisted in the file record.
//   - Sharing: the file key is unwrapped, then re-wrapped under a fresh
//     ephemeral share key that is handed to the caller for the URL fragment.
//
// The package never sees which role a wrapping key plays. Unwrapping with
// the wrong key fails with ErrAuthenticationFailure from the AEAD layer,
// propagated unchanged.
package envelope
