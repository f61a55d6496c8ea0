package share

import (
	"bytes"
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/zarf0128-creator/NebulaVault/internal/codec"
	"github.com/zarf0128-creator/NebulaVault/internal/crypto"
	nverrors "github.com/zarf0128-creator/NebulaVault/internal/errors"
	"github.com/zarf0128-creator/NebulaVault/internal/vault"
)

// testVault wires a protocol over in-memory stores with one encrypted file.
type testVault struct {
	protocol  *Protocol
	store     *vault.MemoryStore
	file      *vault.FileRecord
	fileKey   crypto.Key
	plaintext []byte
}

func newTestVault(t *testing.T) *testVault {
	t.Helper()
	ctx := context.Background()

	store := vault.NewMemoryStore()
	blobs := vault.NewMemoryBlobStore()
	plaintext := []byte("the quick brown fox jumps over the lazy dog")

	fileKey, err := crypto.GenerateKey()
	if err != nil {
		t.Fatalf("GenerateKey failed: %v", err)
	}
	ciphertext, iv, err := crypto.Encrypt(plaintext, fileKey)
	if err != nil {
		t.Fatalf("Encrypt failed: %v", err)
	}

	file := &vault.FileRecord{
		ID:           "file-1",
		Owner:        "alice",
		Filename:     "fox.txt",
		StoragePath:  "obj-file-1",
		FileSize:     int64(len(plaintext)),
		MimeType:     "text/plain",
		EncryptionIV: codec.EncodeHex(iv),
		SHA256Hash:   crypto.Digest(plaintext),
		CreatedAt:    time.Now(),
	}
	if err := store.SaveFile(ctx, file); err != nil {
		t.Fatalf("SaveFile failed: %v", err)
	}
	if err := blobs.PutBlob(ctx, file.StoragePath, ciphertext); err != nil {
		t.Fatalf("PutBlob failed: %v", err)
	}

	return &testVault{
		protocol:  &Protocol{Files: store, Shares: store, Blobs: blobs},
		store:     store,
		file:      file,
		fileKey:   fileKey,
		plaintext: plaintext,
	}
}

func TestCreateAndRedeem(t *testing.T) {
	ctx := context.Background()
	tv := newTestVault(t)

	rec, shareKey, err := tv.protocol.Create(ctx, tv.file, tv.fileKey, CreateOptions{
		UsageLimit: 3,
		TTL:        time.Hour,
		CreatedBy:  "alice",
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if rec.DownloadCount != 0 {
		t.Errorf("new share DownloadCount = %d, want 0", rec.DownloadCount)
	}
	// The persisted wrapped key must not be the raw file key or share key.
	if rec.EncryptedFileKey == codec.EncodeHex(tv.fileKey.Bytes()) {
		t.Error("persisted share record contains the raw file key")
	}
	if rec.EncryptedFileKey == codec.EncodeHex(shareKey.Bytes()) {
		t.Error("persisted share record contains the raw share key")
	}

	result, err := tv.protocol.Redeem(ctx, rec.ID, shareKey)
	if err != nil {
		t.Fatalf("Redeem failed: %v", err)
	}
	if !bytes.Equal(result.Plaintext, tv.plaintext) {
		t.Error("redeemed plaintext does not match the original")
	}

	after, err := tv.store.GetShare(ctx, rec.ID)
	if err != nil {
		t.Fatalf("GetShare failed: %v", err)
	}
	if after.DownloadCount != 1 {
		t.Errorf("DownloadCount after redeem = %d, want 1", after.DownloadCount)
	}
}

func TestCreateInvalidOptions(t *testing.T) {
	ctx := context.Background()
	tv := newTestVault(t)

	tests := []struct {
		name string
		opts CreateOptions
	}{
		{"zero limit", CreateOptions{UsageLimit: 0, TTL: time.Hour}},
		{"negative limit", CreateOptions{UsageLimit: -1, TTL: time.Hour}},
		{"zero ttl", CreateOptions{UsageLimit: 1, TTL: 0}},
		{"negative ttl", CreateOptions{UsageLimit: 1, TTL: -time.Minute}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := tv.protocol.Create(ctx, tv.file, tv.fileKey, tt.opts)
			if !errors.Is(err, nverrors.ErrInvalidInput) {
				t.Errorf("Create error = %v, want ErrInvalidInput", err)
			}
		})
	}
}

func TestRedeemSingleUseThenExhausted(t *testing.T) {
	ctx := context.Background()
	tv := newTestVault(t)

	rec, shareKey, err := tv.protocol.Create(ctx, tv.file, tv.fileKey, CreateOptions{
		UsageLimit: 1,
		TTL:        time.Hour,
		CreatedBy:  "alice",
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	result, err := tv.protocol.Redeem(ctx, rec.ID, shareKey)
	if err != nil {
		t.Fatalf("first Redeem failed: %v", err)
	}
	if !bytes.Equal(result.Plaintext, tv.plaintext) {
		t.Error("first redeem returned wrong plaintext")
	}

	if _, err := tv.protocol.Redeem(ctx, rec.ID, shareKey); !errors.Is(err, nverrors.ErrShareExhausted) {
		t.Errorf("second Redeem error = %v, want ErrShareExhausted", err)
	}
}

func TestRedeemExpiredNeverTouchesKeys(t *testing.T) {
	ctx := context.Background()
	tv := newTestVault(t)

	rec, shareKey, err := tv.protocol.Create(ctx, tv.file, tv.fileKey, CreateOptions{
		UsageLimit: 1,
		TTL:        time.Hour,
		CreatedBy:  "alice",
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	// Fast-forward past the expiry. An engine that fails on any use proves
	// the state check runs before unwrap.
	tv.protocol.Now = func() time.Time { return rec.ExpiresAt.Add(time.Second) }
	tv.protocol.Engine = failingEngine{t}

	if _, err := tv.protocol.Redeem(ctx, rec.ID, shareKey); !errors.Is(err, nverrors.ErrShareExpired) {
		t.Errorf("Redeem of expired share error = %v, want ErrShareExpired", err)
	}
}

func TestRedeemWrongShareKey(t *testing.T) {
	ctx := context.Background()
	tv := newTestVault(t)

	rec, _, err := tv.protocol.Create(ctx, tv.file, tv.fileKey, CreateOptions{
		UsageLimit: 1,
		TTL:        time.Hour,
		CreatedBy:  "alice",
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	wrongKey, _ := crypto.GenerateKey()
	if _, err := tv.protocol.Redeem(ctx, rec.ID, wrongKey); !errors.Is(err, nverrors.ErrAuthenticationFailure) {
		t.Errorf("Redeem with wrong share key error = %v, want ErrAuthenticationFailure", err)
	}

	// A failed unwrap must not consume a download.
	after, _ := tv.store.GetShare(ctx, rec.ID)
	if after.DownloadCount != 0 {
		t.Errorf("DownloadCount after failed redeem = %d, want 0", after.DownloadCount)
	}
}

func TestRedeemMissingShare(t *testing.T) {
	tv := newTestVault(t)
	key, _ := crypto.GenerateKey()
	_, err := tv.protocol.Redeem(context.Background(), "no-such-share", key)
	if !errors.Is(err, nverrors.ErrShareNotFound) {
		t.Errorf("Redeem of missing share error = %v, want ErrShareNotFound", err)
	}
}

func TestRedeemIntegrityMismatch(t *testing.T) {
	ctx := context.Background()
	tv := newTestVault(t)

	// Record a hash computed over different bytes. AEAD still verifies, so
	// the failure must come from the plaintext re-check.
	tv.file.SHA256Hash = crypto.Digest([]byte("different bytes entirely"))
	if err := tv.store.SaveFile(ctx, tv.file); err != nil {
		t.Fatalf("SaveFile failed: %v", err)
	}

	rec, shareKey, err := tv.protocol.Create(ctx, tv.file, tv.fileKey, CreateOptions{
		UsageLimit: 1,
		TTL:        time.Hour,
		CreatedBy:  "alice",
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if _, err := tv.protocol.Redeem(ctx, rec.ID, shareKey); !errors.Is(err, nverrors.ErrIntegrityMismatch) {
		t.Errorf("Redeem error = %v, want ErrIntegrityMismatch", err)
	}

	// A failed integrity check must not consume a download.
	after, _ := tv.store.GetShare(ctx, rec.ID)
	if after.DownloadCount != 0 {
		t.Errorf("DownloadCount after integrity failure = %d, want 0", after.DownloadCount)
	}
}

func TestRedeemConcurrentRace(t *testing.T) {
	ctx := context.Background()
	tv := newTestVault(t)

	rec, shareKey, err := tv.protocol.Create(ctx, tv.file, tv.fileKey, CreateOptions{
		UsageLimit: 1,
		TTL:        time.Hour,
		CreatedBy:  "alice",
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	const attempts = 8
	var wg sync.WaitGroup
	results := make(chan error, attempts)

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := tv.protocol.Redeem(ctx, rec.ID, shareKey)
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	var wins int
	for err := range results {
		switch {
		case err == nil:
			wins++
		case errors.Is(err, nverrors.ErrShareExhausted):
		default:
			t.Errorf("unexpected redeem error: %v", err)
		}
	}
	if wins != 1 {
		t.Errorf("concurrent redeem winners = %d, want exactly 1", wins)
	}

	after, _ := tv.store.GetShare(ctx, rec.ID)
	if after.DownloadCount != 1 {
		t.Errorf("DownloadCount after race = %d, want exactly 1", after.DownloadCount)
	}
}

func TestRevoke(t *testing.T) {
	ctx := context.Background()
	tv := newTestVault(t)

	rec, shareKey, err := tv.protocol.Create(ctx, tv.file, tv.fileKey, CreateOptions{
		UsageLimit: 5,
		TTL:        time.Hour,
		CreatedBy:  "alice",
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if err := tv.protocol.Revoke(ctx, rec.ID); err != nil {
		t.Fatalf("Revoke failed: %v", err)
	}

	if _, err := tv.protocol.Redeem(ctx, rec.ID, shareKey); !errors.Is(err, nverrors.ErrShareNotFound) {
		t.Errorf("Redeem after revoke error = %v, want ErrShareNotFound", err)
	}

	if err := tv.protocol.Revoke(ctx, rec.ID); !errors.Is(err, nverrors.ErrShareNotFound) {
		t.Errorf("second Revoke error = %v, want ErrShareNotFound", err)
	}
}

func TestPrune(t *testing.T) {
	ctx := context.Background()
	tv := newTestVault(t)

	active, _, err := tv.protocol.Create(ctx, tv.file, tv.fileKey, CreateOptions{
		UsageLimit: 2, TTL: 2 * time.Hour, CreatedBy: "alice",
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	exhausted, exhaustedKey, err := tv.protocol.Create(ctx, tv.file, tv.fileKey, CreateOptions{
		UsageLimit: 1, TTL: time.Hour, CreatedBy: "alice",
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if _, err := tv.protocol.Redeem(ctx, exhausted.ID, exhaustedKey); err != nil {
		t.Fatalf("Redeem failed: %v", err)
	}

	expired, _, err := tv.protocol.Create(ctx, tv.file, tv.fileKey, CreateOptions{
		UsageLimit: 2, TTL: time.Minute, CreatedBy: "alice",
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	// Advance the clock past the short TTL but well before the active
	// share's expiry.
	tv.protocol.Now = func() time.Time { return expired.ExpiresAt.Add(time.Second) }

	pruned, err := tv.protocol.Prune(ctx)
	if err != nil {
		t.Fatalf("Prune failed: %v", err)
	}
	if pruned != 2 {
		t.Errorf("Prune removed %d shares, want 2", pruned)
	}

	if _, err := tv.store.GetShare(ctx, active.ID); err != nil {
		t.Errorf("active share was pruned: %v", err)
	}
	for _, id := range []string{exhausted.ID, expired.ID} {
		if _, err := tv.store.GetShare(ctx, id); !errors.Is(err, nverrors.ErrShareNotFound) {
			t.Errorf("share %s survived prune, error = %v", id, err)
		}
	}
}

// failingEngine fails the test if any of its methods are called.
type failingEngine struct {
	t *testing.T
}

func (e failingEngine) GenerateKey() (crypto.Key, error) {
	e.t.Error("GenerateKey called on a share that should fail before key use")
	return crypto.Key{}, nil
}

func (e failingEngine) Encrypt(plaintext []byte, key crypto.Key) ([]byte, []byte, error) {
	e.t.Error("Encrypt called on a share that should fail before key use")
	return nil, nil, nil
}

func (e failingEngine) Decrypt(ciphertext, iv []byte, key crypto.Key) ([]byte, error) {
	e.t.Error("Decrypt called on a share that should fail before key use")
	return nil, nil
}

func (e failingEngine) Digest(data []byte) string {
	e.t.Error("Digest called on a share that should fail before key use")
	return ""
}
