package crypto

import (
	"encoding/base64"
	"errors"
	"testing"
)

func TestNewKeyChain_EmptySecret(t *testing.T) {
	if _, err := NewKeyChain(""); !errors.Is(err, ErrEmptySecret) {
		t.Fatalf("NewKeyChain(\"\") error = %v, want ErrEmptySecret", err)
	}
}

func TestSealOpen_RoundTrip(t *testing.T) {
	kc, err := NewKeyChain("machine-secret")
	if err != nil {
		t.Fatalf("NewKeyChain error: %v", err)
	}

	plain := []byte(`{"accessToken":"a","refreshToken":"r"}`)
	blob, err := kc.Seal(plain)
	if err != nil {
		t.Fatalf("Seal error: %v", err)
	}

	got, err := kc.Open(blob)
	if err != nil {
		t.Fatalf("Open error: %v", err)
	}
	if string(got) != string(plain) {
		t.Fatalf("Open = %q, want %q", got, plain)
	}
}

func TestSeal_FreshNonceEveryTime(t *testing.T) {
	kc, _ := NewKeyChain("machine-secret")

	b1, err := kc.Seal([]byte("same"))
	if err != nil {
		t.Fatalf("Seal error: %v", err)
	}
	b2, err := kc.Seal([]byte("same"))
	if err != nil {
		t.Fatalf("Seal error: %v", err)
	}
	if b1 == b2 {
		t.Fatal("expected different blobs for the same plaintext")
	}
}

func TestOpen_OtherSecretFails(t *testing.T) {
	kc1, _ := NewKeyChain("secret-one")
	kc2, _ := NewKeyChain("secret-two")

	blob, err := kc1.Seal([]byte("tokens"))
	if err != nil {
		t.Fatalf("Seal error: %v", err)
	}
	if _, err = kc2.Open(blob); !errors.Is(err, ErrSealedDataCorrupted) {
		t.Fatalf("Open with other secret error = %v, want ErrSealedDataCorrupted", err)
	}
}

func TestOpen_NewInstanceSameSecret(t *testing.T) {
	kc1, _ := NewKeyChain("machine-secret")
	blob, err := kc1.Seal([]byte("tokens"))
	if err != nil {
		t.Fatalf("Seal error: %v", err)
	}

	// a restarted process derives the key again from the stored salt
	kc2, _ := NewKeyChain("machine-secret")
	got, err := kc2.Open(blob)
	if err != nil {
		t.Fatalf("Open error: %v", err)
	}
	if string(got) != "tokens" {
		t.Fatalf("Open = %q, want %q", got, "tokens")
	}
}

func TestOpen_Malformed(t *testing.T) {
	kc, _ := NewKeyChain("machine-secret")

	tests := map[string]string{
		"not base64": "%%%",
		"short":      base64.StdEncoding.EncodeToString([]byte("short")),
		"no nonce":   base64.StdEncoding.EncodeToString(make([]byte, saltSize+4)),
		"bad tag":    base64.StdEncoding.EncodeToString(make([]byte, saltSize+12+20)),
	}
	for name, blob := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := kc.Open(blob); !errors.Is(err, ErrSealedDataCorrupted) {
				t.Fatalf("Open(%s) error = %v, want ErrSealedDataCorrupted", name, err)
			}
		})
	}
}

func TestOpen_TamperedBlob(t *testing.T) {
	kc, _ := NewKeyChain("machine-secret")
	blob, _ := kc.Seal([]byte("tokens"))

	raw, _ := base64.StdEncoding.DecodeString(blob)
	raw[len(raw)-1] ^= 0xFF
	if _, err := kc.Open(base64.StdEncoding.EncodeToString(raw)); !errors.Is(err, ErrSealedDataCorrupted) {
		t.Fatalf("Open(tampered) error = %v, want ErrSealedDataCorrupted", err)
	}
}
