// Package crypto provides the symmetric primitives for NebulaVault.
//
// This package handles master-key derivation, authenticated encryption, and
// integrity digests. Everything above it works in terms of the Engine
// interface and the 32-byte Key type.
//
// # Encryption Architecture
//
// NebulaVault uses an envelope encryption scheme:
//
//  1. A random 256-bit file key encrypts each file's content with AES-256-GCM
//  2. The file key is wrapped (encrypted) under the session master key
//  3. Sharing re-wraps the file key under an ephemeral share key that only
//     ever travels inside a URL fragment
//
// The master key is derived from the user's password with PBKDF2-HMAC-SHA256
// (100,000 iterations) over a persisted 16-byte salt. It exists only in
// process memory for the lifetime of a session.
//
// # IVs
//
// Every encryption generates a fresh random 96-bit IV. Re-encrypting the same
// plaintext produces different output (non-deterministic encryption). An IV
// is meaningful only paired with its ciphertext and key.
//
// # Failure Behavior
//
// Decrypt never returns partial plaintext: a failed GCM tag check yields
// ErrAuthenticationFailure and nothing else. Operations are stateless and
// safe for concurrent use.
package crypto
