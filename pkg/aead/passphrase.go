package aead

import (
	"crypto/sha256"

	"golang.org/x/crypto/pbkdf2"

	"github.com/dd0wney/cluso-primitives/pkg/cryptoerr"
	"github.com/dd0wney/cluso-primitives/pkg/fixedbytes"
	"github.com/dd0wney/cluso-primitives/pkg/random"
)

const (
	SaltSize         = 32     // Salt for PBKDF2
	PBKDF2Iterations = 600000 // OWASP recommended minimum
)

// DeriveKey derives an AES-256 key from a passphrase using PBKDF2-HMAC-SHA256
func DeriveKey(passphrase string, salt []byte) ([]byte, error) {
	if passphrase == "" {
		return nil, cryptoerr.New(cryptoerr.InvalidKey, "derive", "passphrase is empty")
	}
	if err := fixedbytes.Check("derive", "salt", salt, SaltSize, cryptoerr.InvalidKey); err != nil {
		return nil, err
	}
	return pbkdf2.Key([]byte(passphrase), salt, PBKDF2Iterations, KeySize, sha256.New), nil
}

// GenerateSalt draws a fresh PBKDF2 salt from src
func GenerateSalt(src random.Source) ([]byte, error) {
	return random.Bytes(src, SaltSize)
}
