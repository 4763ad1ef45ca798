// Package crypto seals client state at rest. The session record holds bearer
// tokens, so it is encrypted before it reaches the local database.
package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/keychain_mock.go -package=mock

// KeyChain encrypts and decrypts small records with a key derived from a
// local secret.
//
// Blob layout (base64, standard encoding):
//
//	salt (16 bytes) ‖ nonce (12 bytes) ‖ AES-256-GCM ciphertext
//
// The key is derived from the secret and salt with Argon2id, so a blob can
// only be opened by a keychain built from the same secret.
type KeyChain interface {
	// Seal encrypts plaintext and returns the base64 blob.
	Seal(plaintext []byte) (string, error)

	// Open decrypts a blob produced by Seal. It fails with ErrSealedDataCorrupted
	// when the blob is malformed, was sealed with another secret or was
	// tampered with.
	Open(blob string) ([]byte, error)
}
