// Package aead implements AES-256-GCM authenticated encryption with a
// caller-supplied key and nonce. No associated data is bound.
package aead

import (
	"crypto/aes"
	"crypto/cipher"

	"github.com/dd0wney/cluso-primitives/pkg/cryptoerr"
	"github.com/dd0wney/cluso-primitives/pkg/fixedbytes"
	"github.com/dd0wney/cluso-primitives/pkg/random"
)

const (
	KeySize   = 32 // AES-256
	NonceSize = 12 // GCM standard nonce size
	TagSize   = 16 // GCM authentication tag size
)

// Encrypt seals plaintext and returns ciphertext with the 16-byte tag appended.
// The nonce must never be reused with the same key.
func Encrypt(key, nonce, plaintext []byte) ([]byte, error) {
	const op = "encrypt"

	gcm, err := newGCM(op, key, nonce, cryptoerr.EncryptionFailed)
	if err != nil {
		return nil, err
	}

	return gcm.Seal(make([]byte, 0, len(plaintext)+TagSize), nonce, plaintext, nil), nil
}

// Decrypt verifies the tag and returns the original plaintext.
// Any mismatch fails closed with DecryptionFailed.
func Decrypt(key, nonce, ciphertext []byte) ([]byte, error) {
	const op = "decrypt"

	gcm, err := newGCM(op, key, nonce, cryptoerr.DecryptionFailed)
	if err != nil {
		return nil, err
	}

	if len(ciphertext) < TagSize {
		return nil, cryptoerr.Newf(cryptoerr.DecryptionFailed, op, "ciphertext shorter than %d-byte tag", TagSize)
	}

	plaintext, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, cryptoerr.New(cryptoerr.DecryptionFailed, op, "authentication failed - data may be tampered")
	}
	if plaintext == nil {
		plaintext = []byte{}
	}
	return plaintext, nil
}

// newGCM validates key and nonce before building the cipher
func newGCM(op string, key, nonce []byte, fault cryptoerr.Kind) (cipher.AEAD, error) {
	if err := fixedbytes.Check(op, "key", key, KeySize, cryptoerr.InvalidKey); err != nil {
		return nil, err
	}
	if err := fixedbytes.Check(op, "nonce", nonce, NonceSize, cryptoerr.InvalidKey); err != nil {
		return nil, err
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, cryptoerr.Newf(fault, op, "failed to create cipher: %v", err)
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, cryptoerr.Newf(fault, op, "failed to create GCM: %v", err)
	}
	return gcm, nil
}

// GenerateNonce draws a fresh 12-byte nonce from src
func GenerateNonce(src random.Source) ([]byte, error) {
	return random.Bytes(src, NonceSize)
}
