package workflows

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/zarf0128-creator/NebulaVault/internal/codec"
	"github.com/zarf0128-creator/NebulaVault/internal/crypto"
	nverrors "github.com/zarf0128-creator/NebulaVault/internal/errors"
	"github.com/zarf0128-creator/NebulaVault/internal/vault"
)

// CheckStatus represents the result status of a health check.
type CheckStatus int

const (
	// CheckPass means the check passed.
	CheckPass CheckStatus = iota
	// CheckWarning means the check found a non-critical issue.
	CheckWarning
	// CheckError means the check found a critical issue.
	CheckError
)

// String returns a string representation of CheckStatus.
func (s CheckStatus) String() string {
	switch s {
	case CheckPass:
		return "pass"
	case CheckWarning:
		return "warning"
	case CheckError:
		return "error"
	default:
		return "unknown"
	}
}

// MarshalJSON implements json.Marshaler for CheckStatus.
func (s CheckStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// CheckResult holds the result of a single health check.
type CheckResult struct {
	Name       string      `json:"name"`
	Status     CheckStatus `json:"status"`
	Message    string      `json:"message"`
	Suggestion string      `json:"suggestion,omitempty"`
}

// DoctorSummary holds counts of checks by status.
type DoctorSummary struct {
	Passed   int `json:"passed"`
	Warnings int `json:"warnings"`
	Errors   int `json:"errors"`
}

// DoctorResult holds the complete result of the doctor workflow.
type DoctorResult struct {
	Checks  []CheckResult `json:"checks"`
	Summary DoctorSummary `json:"summary"`
}

// Doctor runs read-only health checks over the vault: the config, the
// profile salt, every file record's encoded fields and blob, and every share
// record's wrapped key. Nothing is repaired or mutated; doctor only reports.
//
// Returns ErrVaultNotInitialized if no vault exists here. Individual problems
// are reported as check results, not errors.
func Doctor(ctx context.Context) (*DoctorResult, error) {
	env, err := openVault()
	if err != nil {
		return nil, err
	}

	var checks []CheckResult
	add := func(c CheckResult) { checks = append(checks, c) }

	add(checkConfig(env))
	add(checkProfile(ctx, env))

	files, err := env.Store.ListFiles(ctx, env.Owner)
	if err != nil {
		return nil, err
	}
	for i := range files {
		add(checkFileRecord(&files[i]))
		add(checkBlob(ctx, env, &files[i]))
	}

	shares, err := env.Store.ListShares(ctx)
	if err != nil {
		return nil, err
	}
	for i := range shares {
		add(checkShareRecord(&shares[i]))
	}

	result := &DoctorResult{Checks: checks}
	for _, c := range checks {
		switch c.Status {
		case CheckPass:
			result.Summary.Passed++
		case CheckWarning:
			result.Summary.Warnings++
		case CheckError:
			result.Summary.Errors++
		}
	}
	return result, nil
}

func checkConfig(env *vaultEnv) CheckResult {
	name := "vault config"
	if env.Config.Vault.UUID == "" {
		return CheckResult{Name: name, Status: CheckError, Message: "vault.toml has no UUID", Suggestion: "re-run nebula vault init in a fresh directory and migrate files"}
	}
	if env.Config.Vault.Origin == "" {
		return CheckResult{Name: name, Status: CheckWarning, Message: "no share origin configured", Suggestion: "set origin in .nebula/vault.toml so share links are routable"}
	}
	if env.Config.Crypto.KDFIterations < crypto.PBKDF2Iterations {
		return CheckResult{Name: name, Status: CheckWarning, Message: fmt.Sprintf("KDF iterations %d below current default %d", env.Config.Crypto.KDFIterations, crypto.PBKDF2Iterations)}
	}
	return CheckResult{Name: name, Status: CheckPass, Message: "config is valid"}
}

func checkProfile(ctx context.Context, env *vaultEnv) CheckResult {
	name := "profile salt"
	profile, err := env.Store.GetProfile(ctx, env.Owner)
	if errors.Is(err, nverrors.ErrProfileNotFound) {
		return CheckResult{Name: name, Status: CheckError, Message: fmt.Sprintf("no profile for %s", env.Owner), Suggestion: "the vault database may belong to another user"}
	}
	if err != nil {
		return CheckResult{Name: name, Status: CheckError, Message: err.Error()}
	}
	salt, err := codec.DecodeHex(profile.Salt)
	if err != nil {
		return CheckResult{Name: name, Status: CheckError, Message: "salt is not valid hex"}
	}
	if len(salt) != crypto.SaltSize {
		return CheckResult{Name: name, Status: CheckError, Message: fmt.Sprintf("salt is %d bytes, want %d", len(salt), crypto.SaltSize)}
	}
	return CheckResult{Name: name, Status: CheckPass, Message: "salt is well-formed"}
}

func checkFileRecord(rec *vault.FileRecord) CheckResult {
	name := fmt.Sprintf("file record %s", rec.Filename)
	iv, err := codec.DecodeHex(rec.EncryptionIV)
	if err != nil || len(iv) != crypto.NonceSize {
		return CheckResult{Name: name, Status: CheckError, Message: "encryption iv is corrupt"}
	}
	if _, err := decodeWrappedFileKey(rec); err != nil {
		return CheckResult{Name: name, Status: CheckError, Message: "wrapped file key is corrupt"}
	}
	wrappedIV, _ := codec.DecodeHex(rec.WrappedKeyIV)
	if len(wrappedIV) != crypto.NonceSize {
		return CheckResult{Name: name, Status: CheckError, Message: "wrapped key iv has the wrong length"}
	}
	if len(rec.SHA256Hash) != 64 {
		return CheckResult{Name: name, Status: CheckError, Message: "stored digest is not a sha-256 hex string"}
	}
	return CheckResult{Name: name, Status: CheckPass, Message: "record fields are well-formed"}
}

func checkBlob(ctx context.Context, env *vaultEnv, rec *vault.FileRecord) CheckResult {
	name := fmt.Sprintf("blob for %s", rec.Filename)
	if _, err := env.Blobs.GetBlob(ctx, rec.StoragePath); errors.Is(err, nverrors.ErrBlobNotFound) {
		return CheckResult{Name: name, Status: CheckError, Message: "ciphertext blob is missing", Suggestion: "remove the orphaned record with nebula vault rm"}
	} else if err != nil {
		return CheckResult{Name: name, Status: CheckError, Message: err.Error()}
	}
	return CheckResult{Name: name, Status: CheckPass, Message: "blob is present"}
}

func checkShareRecord(rec *vault.ShareRecord) CheckResult {
	name := fmt.Sprintf("share %s", rec.ID)
	if rec.UsageLimit < 1 {
		return CheckResult{Name: name, Status: CheckError, Message: "usage limit below 1"}
	}
	if rec.DownloadCount > rec.UsageLimit {
		return CheckResult{Name: name, Status: CheckError, Message: fmt.Sprintf("download count %d exceeds limit %d", rec.DownloadCount, rec.UsageLimit)}
	}
	key, err := codec.DecodeHex(rec.EncryptedFileKey)
	if err != nil || len(key) == 0 {
		return CheckResult{Name: name, Status: CheckError, Message: "wrapped share key is corrupt"}
	}
	iv, err := codec.DecodeHex(rec.EncryptedFileKeyIV)
	if err != nil || len(iv) != crypto.NonceSize {
		return CheckResult{Name: name, Status: CheckError, Message: "wrapped share key iv has the wrong length"}
	}
	return CheckResult{Name: name, Status: CheckPass, Message: "record fields are well-formed"}
}
