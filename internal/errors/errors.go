package errors

import "errors"

// Crypto errors indicate failures in key derivation, encryption, or decryption.
var (
	// ErrInvalidInput indicates malformed input such as an empty password,
	// a salt of the wrong length, or key material that is not 32 bytes.
	ErrInvalidInput = errors.New("invalid input")

	// ErrAuthenticationFailure indicates an AEAD tag check failed during
	// decryption or key unwrapping (wrong key, wrong IV, or tampered data).
	ErrAuthenticationFailure = errors.New("authentication failed")

	// ErrIntegrityMismatch indicates the plaintext digest disagrees with the
	// stored hash even though AEAD verification succeeded. This should be
	// unreachable in a correct system and signals a defect or storage bug.
	ErrIntegrityMismatch = errors.New("integrity hash mismatch")

	// ErrWrongPassword indicates the session key derived from the supplied
	// password could not unwrap a file key.
	ErrWrongPassword = errors.New("wrong password")

	// ErrSessionClosed indicates the session's master key has been discarded.
	ErrSessionClosed = errors.New("session is closed")
)

// Share errors indicate issues with the share lifecycle or share links.
var (
	// ErrShareNotFound indicates the share does not exist or was revoked.
	ErrShareNotFound = errors.New("share not found")

	// ErrShareExpired indicates the share's expiry time has passed.
	ErrShareExpired = errors.New("share has expired")

	// ErrShareExhausted indicates the share's download limit has been reached.
	ErrShareExhausted = errors.New("share download limit reached")

	// ErrMissingKeyFragment indicates a share URL lacks the #key= fragment.
	ErrMissingKeyFragment = errors.New("share URL is missing the key fragment")
)

// Vault state errors indicate issues with vault initialization or records.
var (
	// ErrVaultNotInitialized indicates no vault exists in this directory tree.
	ErrVaultNotInitialized = errors.New("vault has not been initialized")

	// ErrVaultAlreadyInitialized indicates a vault already exists here.
	ErrVaultAlreadyInitialized = errors.New("vault has already been initialized")

	// ErrFileNotFound indicates the named file is not stored in the vault.
	ErrFileNotFound = errors.New("file not found in vault")

	// ErrFileExists indicates a file with this name is already stored.
	ErrFileExists = errors.New("file already exists in vault")

	// ErrProfileNotFound indicates no profile (salt) exists for the user.
	ErrProfileNotFound = errors.New("profile not found")

	// ErrBlobNotFound indicates the ciphertext blob is missing from storage.
	ErrBlobNotFound = errors.New("ciphertext blob not found")
)
