// Package signing implements Ed25519 key generation, signing and verification
// over hex-encoded keys and signatures.
package signing

import (
	"crypto/ed25519"

	"filippo.io/edwards25519"

	"github.com/dd0wney/cluso-primitives/pkg/cryptoerr"
	"github.com/dd0wney/cluso-primitives/pkg/fixedbytes"
	"github.com/dd0wney/cluso-primitives/pkg/random"
)

const (
	PrivateKeySize = ed25519.SeedSize      // 32-byte seed
	PublicKeySize  = ed25519.PublicKeySize // 32 bytes
	SignatureSize  = ed25519.SignatureSize // 64 bytes
)

// KeyPair holds hex-encoded Ed25519 keys. PrivateKey is the 32-byte seed.
type KeyPair struct {
	PublicKey  string `json:"publicKey"`
	PrivateKey string `json:"privateKey"`
}

// Engine signs and verifies. Only key generation uses its random source.
type Engine struct {
	rand random.Source
}

// NewEngine creates an engine drawing key seeds from src
func NewEngine(src random.Source) *Engine {
	return &Engine{rand: src}
}

// GenerateKeyPair draws a fresh seed and derives its public key
func (e *Engine) GenerateKeyPair() (KeyPair, error) {
	seed, err := random.Bytes(e.rand, PrivateKeySize)
	if err != nil {
		return KeyPair{}, err
	}

	priv := ed25519.NewKeyFromSeed(seed)
	pub := priv.Public().(ed25519.PublicKey)

	return KeyPair{
		PublicKey:  fixedbytes.EncodeHex(pub),
		PrivateKey: fixedbytes.EncodeHex(seed),
	}, nil
}

// Sign produces a deterministic signature over message
func Sign(privateKeyHex string, message []byte) (string, error) {
	priv, err := decodePrivateKey("sign", privateKeyHex)
	if err != nil {
		return "", err
	}
	return fixedbytes.EncodeHex(ed25519.Sign(priv, message)), nil
}

// Verify checks signatureHex over message.
// Malformed inputs are errors; a signature that does not match is false, nil.
func Verify(publicKeyHex, signatureHex string, message []byte) (bool, error) {
	const op = "verify"

	pub, err := fixedbytes.DecodeHex(op, "public key", publicKeyHex, PublicKeySize, cryptoerr.InvalidKey)
	if err != nil {
		return false, err
	}
	sig, err := fixedbytes.DecodeHex(op, "signature", signatureHex, SignatureSize, cryptoerr.InvalidSignature)
	if err != nil {
		return false, err
	}
	if _, err := new(edwards25519.Point).SetBytes(pub); err != nil {
		return false, cryptoerr.Newf(cryptoerr.InvalidKey, op, "public key is not a valid curve point: %v", err)
	}

	return ed25519.Verify(ed25519.PublicKey(pub), message, sig), nil
}

// PublicKeyFromPrivate derives the hex public key for a hex private seed
func PublicKeyFromPrivate(privateKeyHex string) (string, error) {
	priv, err := decodePrivateKey("derive", privateKeyHex)
	if err != nil {
		return "", err
	}
	return fixedbytes.EncodeHex(priv.Public().(ed25519.PublicKey)), nil
}

func decodePrivateKey(op, privateKeyHex string) (ed25519.PrivateKey, error) {
	seed, err := fixedbytes.DecodeHex(op, "private key", privateKeyHex, PrivateKeySize, cryptoerr.InvalidKey)
	if err != nil {
		return nil, err
	}
	return ed25519.NewKeyFromSeed(seed), nil
}
