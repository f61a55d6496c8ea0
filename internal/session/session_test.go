package session

import (
	"errors"
	"sync"
	"testing"

	"github.com/zarf0128-creator/NebulaVault/internal/crypto"
	nverrors "github.com/zarf0128-creator/NebulaVault/internal/errors"
)

func TestOpenDerivesDeterministicKey(t *testing.T) {
	salt, err := crypto.GenerateSalt()
	if err != nil {
		t.Fatalf("GenerateSalt failed: %v", err)
	}
	password := []byte("session password")

	s1, err := Open("alice", append([]byte{}, password...), salt)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer s1.Close()

	s2, err := Open("alice", append([]byte{}, password...), salt)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer s2.Close()

	k1, err := s1.MasterKey()
	if err != nil {
		t.Fatalf("MasterKey failed: %v", err)
	}
	k2, err := s2.MasterKey()
	if err != nil {
		t.Fatalf("MasterKey failed: %v", err)
	}

	if k1 != k2 {
		t.Error("two sessions from identical (password, salt) hold different keys")
	}
}

func TestOpenEmptyPassword(t *testing.T) {
	salt, _ := crypto.GenerateSalt()
	_, err := Open("alice", nil, salt)
	if !errors.Is(err, nverrors.ErrInvalidInput) {
		t.Errorf("Open with empty password error = %v, want ErrInvalidInput", err)
	}
}

func TestCloseDiscardsKey(t *testing.T) {
	salt, _ := crypto.GenerateSalt()
	s, err := Open("alice", []byte("pw"), salt)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}

	s.Close()
	if _, err := s.MasterKey(); !errors.Is(err, nverrors.ErrSessionClosed) {
		t.Errorf("MasterKey after Close error = %v, want ErrSessionClosed", err)
	}

	// Double close must not panic.
	s.Close()
}

func TestMultipleSessionsCoexist(t *testing.T) {
	saltA, _ := crypto.GenerateSalt()
	saltB, _ := crypto.GenerateSalt()

	sa, err := Open("alice", []byte("pw-a"), saltA)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer sa.Close()

	sb, err := Open("bob", []byte("pw-b"), saltB)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer sb.Close()

	ka, _ := sa.MasterKey()
	kb, _ := sb.MasterKey()
	if ka == kb {
		t.Error("distinct sessions hold the same master key")
	}
}

func TestConcurrentMasterKeyReads(t *testing.T) {
	key, _ := crypto.GenerateKey()
	s := FromKey("alice", key)
	defer s.Close()

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := s.MasterKey()
			if err != nil {
				t.Errorf("MasterKey failed: %v", err)
				return
			}
			if got != key {
				t.Error("concurrent read returned wrong key")
			}
		}()
	}
	wg.Wait()
}
