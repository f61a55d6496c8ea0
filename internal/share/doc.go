// Package share implements the share-link protocol for NebulaVault.
//
// # Lifecycle
//
// A share moves through a closed state machine:
//
//	Created → Active → {Exhausted | Expired} → Revoked
//
// Created persists the record with download_count = 0. Active holds while
// now < expires_at and download_count < usage_limit. Exhausted and Expired
// are terminal for downloads but the record may remain for the owner view
// until pruned. Revocation deletes the record outright.
//
// # Key Handling
//
// Creating a share unwraps the file key with the owner's master key, wraps it
// again under a fresh share key, and persists only the re-wrapped form. The
// raw share key is handed back to the caller for embedding in a URL fragment
// and never touches storage. A recipient reconstructs it from the fragment;
// a wrong or garbled fragment surfaces as ErrAuthenticationFailure at unwrap.
//
// # Redemption
//
// Redeem validates the lifecycle state before touching any key material,
// then unwraps, decrypts, and re-checks the plaintext digest exactly as the
// owner download path does. The download counter is consumed last, through
// the store's atomic conditional increment, so racing redeems can never push
// download_count past usage_limit.
package share
