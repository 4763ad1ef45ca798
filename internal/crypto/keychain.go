// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"sync"

	"golang.org/x/crypto/argon2"
)

const saltSize = 16

var (
	// ErrEmptySecret is returned by NewKeyChain for an empty secret.
	ErrEmptySecret = errors.New("keychain secret is empty")

	// ErrSealedDataCorrupted is returned by Open for blobs it cannot
	// authenticate.
	ErrSealedDataCorrupted = errors.New("sealed data is corrupted or was sealed with another secret")
)

// keyChain is the private implementation of [KeyChain].
type keyChain struct {
	secret []byte

	// Argon2id tuning parameters.
	argonTime    uint32
	argonMemory  uint32
	argonThreads uint8
	argonKeyLen  uint32

	// the last derived key, reused while the salt does not change
	mu   sync.Mutex
	salt []byte
	key  []byte
}

// NewKeyChain constructs a [KeyChain] over secret with the Argon2id
// parameters recommended by OWASP:
//   - time cost:   1 iteration
//   - memory cost: 64 MiB
//   - parallelism: 4 threads
//   - key length:  32 bytes (256 bits)
func NewKeyChain(secret string) (KeyChain, error) {
	if secret == "" {
		return nil, ErrEmptySecret
	}
	return &keyChain{
		secret:       []byte(secret),
		argonTime:    1,
		argonMemory:  64 * 1024,
		argonThreads: 4,
		argonKeyLen:  32,
	}, nil
}

// keyFor returns the AES key for salt. A nil salt reuses the cached salt,
// generating one on first use.
func (k *keyChain) keyFor(salt []byte) ([]byte, []byte, error) {
	k.mu.Lock()
	defer k.mu.Unlock()

	if salt == nil {
		if k.salt != nil {
			return k.salt, k.key, nil
		}
		salt = make([]byte, saltSize)
		if _, err := io.ReadFull(rand.Reader, salt); err != nil {
			return nil, nil, fmt.Errorf("generate salt: %w", err)
		}
	} else if bytes.Equal(salt, k.salt) {
		return k.salt, k.key, nil
	}

	key := argon2.IDKey(k.secret, salt, k.argonTime, k.argonMemory, k.argonThreads, k.argonKeyLen)
	k.salt, k.key = salt, key
	return salt, key, nil
}

func newGCM(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}
	return gcm, nil
}

// Seal implements [KeyChain].
func (k *keyChain) Seal(plaintext []byte) (string, error) {
	salt, key, err := k.keyFor(nil)
	if err != nil {
		return "", err
	}
	gcm, err := newGCM(key)
	if err != nil {
		return "", err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err = io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("generate nonce: %w", err)
	}

	blob := make([]byte, 0, len(salt)+len(nonce)+len(plaintext)+gcm.Overhead())
	blob = append(blob, salt...)
	blob = append(blob, nonce...)
	blob = gcm.Seal(blob, nonce, plaintext, nil)

	return base64.StdEncoding.EncodeToString(blob), nil
}

// Open implements [KeyChain].
func (k *keyChain) Open(encoded string) ([]byte, error) {
	blob, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("%w: decode base64: %w", ErrSealedDataCorrupted, err)
	}
	if len(blob) < saltSize {
		return nil, fmt.Errorf("%w: blob too short", ErrSealedDataCorrupted)
	}

	_, key, err := k.keyFor(append([]byte(nil), blob[:saltSize]...))
	if err != nil {
		return nil, err
	}
	gcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}

	rest := blob[saltSize:]
	if len(rest) < gcm.NonceSize() {
		return nil, fmt.Errorf("%w: blob too short", ErrSealedDataCorrupted)
	}
	nonce, ciphertext := rest[:gcm.NonceSize()], rest[gcm.NonceSize():]

	plaintext, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSealedDataCorrupted, err)
	}
	return plaintext, nil
}
