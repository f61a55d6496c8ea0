package crypto

import (
	"errors"
	"testing"

	nverrors "github.com/zarf0128-creator/NebulaVault/internal/errors"
)

func TestGenerateSalt(t *testing.T) {
	salt1, err := GenerateSalt()
	if err != nil {
		t.Fatalf("GenerateSalt failed: %v", err)
	}
	if len(salt1) != SaltSize {
		t.Errorf("salt length = %d, want %d", len(salt1), SaltSize)
	}

	salt2, err := GenerateSalt()
	if err != nil {
		t.Fatalf("GenerateSalt failed: %v", err)
	}
	if string(salt1) == string(salt2) {
		t.Error("two GenerateSalt calls produced the same salt")
	}
}

func TestDeriveMasterKeyDeterminism(t *testing.T) {
	salt, err := GenerateSalt()
	if err != nil {
		t.Fatalf("GenerateSalt failed: %v", err)
	}
	password := []byte("correct horse battery staple")

	key1, err := DeriveMasterKey(password, salt)
	if err != nil {
		t.Fatalf("DeriveMasterKey failed: %v", err)
	}
	key2, err := DeriveMasterKey(password, salt)
	if err != nil {
		t.Fatalf("DeriveMasterKey failed: %v", err)
	}

	if key1 != key2 {
		t.Error("identical (password, salt) derived different keys")
	}
}

func TestDeriveMasterKeyVariesWithInputs(t *testing.T) {
	salt1, _ := GenerateSalt()
	salt2, _ := GenerateSalt()

	keyA, err := DeriveMasterKey([]byte("password-one"), salt1)
	if err != nil {
		t.Fatalf("DeriveMasterKey failed: %v", err)
	}
	keyB, err := DeriveMasterKey([]byte("password-two"), salt1)
	if err != nil {
		t.Fatalf("DeriveMasterKey failed: %v", err)
	}
	keyC, err := DeriveMasterKey([]byte("password-one"), salt2)
	if err != nil {
		t.Fatalf("DeriveMasterKey failed: %v", err)
	}

	if keyA == keyB {
		t.Error("different passwords derived the same key")
	}
	if keyA == keyC {
		t.Error("different salts derived the same key")
	}
}

func TestDeriveMasterKeyInvalidInput(t *testing.T) {
	salt, _ := GenerateSalt()

	tests := []struct {
		name     string
		password []byte
		salt     []byte
	}{
		{"empty password", []byte{}, salt},
		{"nil password", nil, salt},
		{"short salt", []byte("password"), []byte("short")},
		{"nil salt", []byte("password"), nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DeriveMasterKey(tt.password, tt.salt)
			if !errors.Is(err, nverrors.ErrInvalidInput) {
				t.Errorf("DeriveMasterKey error = %v, want ErrInvalidInput", err)
			}
		})
	}
}

func TestDigest(t *testing.T) {
	// Known SHA-256 vector.
	got := Digest([]byte("abc"))
	want := "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"
	if got != want {
		t.Errorf("Digest(\"abc\") = %q, want %q", got, want)
	}

	if Digest([]byte("abc")) == Digest([]byte("abd")) {
		t.Error("different inputs produced the same digest")
	}
}
