// Package configs manages vault configuration for NebulaVault.
//
// Configuration is stored in TOML format inside the vault directory:
//
//   - Vault config: .nebula/vault.toml (vault identity, share origin,
//     recorded KDF parameters)
//
// # Vault Configuration
//
// The vault config stores:
//   - Vault identity (name, UUID, creation time)
//   - The origin used when constructing share URLs
//   - The PBKDF2 iteration count the vault was created with, recorded for
//     forward compatibility (the binary always derives with its own constant)
//
// The vault UUID is generated at init and never changes.
//
// # Settings
//
// Global settings are initialized at startup:
//   - UserNebulaSettings: the user's config directory and username
//   - VaultNebulaSettings: the current vault's paths
//
// Call InitVaultSettings() before accessing VaultNebulaSettings. It walks up
// the directory tree to find the nearest .nebula directory; all paths stay
// empty when no vault exists.
package configs
