// Package vault provides the persistence collaborators for NebulaVault.
//
// The crypto core treats persistence as an external collaborator: it hands
// this package crypto-opaque blobs (hex-encoded wrapped keys, IVs, hashes,
// ciphertext) and never raw key material.
//
// # Stores
//
// Three record interfaces (FileStore, ShareStore, ProfileStore, combined as
// Store) and one blob interface (BlobStore) decouple the workflows from any
// one backend:
//
//   - MemoryStore / MemoryBlobStore: mutex-guarded maps, the reference
//     semantics used by tests
//   - SQLiteStore: the durable store used by the CLI (gorm + SQLite)
//   - FilesystemBlobStore: ciphertext files under <vault>/objects
//
// # The Redeem Counter
//
// ShareStore.ConsumeDownload is the one operation with a real concurrency
// contract: it must increment download_count only while it is below
// usage_limit, as a single atomic conditional update. Callers treat a failed
// update as ErrShareExhausted; there is no check-then-act path that could let
// the counter overshoot under racing redeems.
package vault
