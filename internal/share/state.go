package share

import (
	"time"

	nverrors "github.com/zarf0128-creator/NebulaVault/internal/errors"
	"github.com/zarf0128-creator/NebulaVault/internal/vault"
)

// State is the lifecycle state of a share as observed at a point in time.
// The closed machine is Created → Active → {Exhausted | Expired} → Revoked.
// Revocation deletes the record, so a revoked share is observed as not found.
type State string

const (
	// StateActive means the share can still be redeemed:
	// now < expires_at and download_count < usage_limit.
	StateActive State = "active"

	// StateExhausted means the download limit has been reached. Terminal for
	// downloads; the record may remain for the owner view until pruned.
	StateExhausted State = "exhausted"

	// StateExpired means the expiry time has passed. Terminal for downloads.
	StateExpired State = "expired"
)

// StateOf reports the lifecycle state of rec at time now.
// Expiry takes precedence over exhaustion when both hold.
func StateOf(rec *vault.ShareRecord, now time.Time) State {
	if !now.Before(rec.ExpiresAt) {
		return StateExpired
	}
	if rec.DownloadCount >= rec.UsageLimit {
		return StateExhausted
	}
	return StateActive
}

// CheckRedeemable returns nil if rec is Active at time now, ErrShareExpired
// or ErrShareExhausted otherwise. It is called before any key material is
// touched on the redeem path.
func CheckRedeemable(rec *vault.ShareRecord, now time.Time) error {
	switch StateOf(rec, now) {
	case StateExpired:
		return nverrors.ErrShareExpired
	case StateExhausted:
		return nverrors.ErrShareExhausted
	default:
		return nil
	}
}

// Remaining reports how many downloads are left on rec. Never negative.
func Remaining(rec *vault.ShareRecord) int {
	left := rec.UsageLimit - rec.DownloadCount
	if left < 0 {
		return 0
	}
	return left
}
