package primitives

import (
	"github.com/dd0wney/cluso-primitives/pkg/aead"
	"github.com/dd0wney/cluso-primitives/pkg/compression"
	"github.com/dd0wney/cluso-primitives/pkg/hashing"
	"github.com/dd0wney/cluso-primitives/pkg/random"
	"github.com/dd0wney/cluso-primitives/pkg/signing"
)

// Operation names used in logs and metric labels
const (
	OpSHA256           = "sha256"
	OpGenerateKeyPair  = "generate_keypair"
	OpSign             = "sign"
	OpVerify           = "verify"
	OpEncrypt          = "encrypt"
	OpDecrypt          = "decrypt"
	OpRandomBytes      = "random_bytes"
	OpGenerateNonce    = "generate_nonce"
	OpGenerateSalt     = "generate_salt"
	OpCompress         = "compress"
	OpDecompress       = "decompress"
	OpCompressionRatio = "compression_ratio"
)

// KeyPair is a hex-encoded Ed25519 keypair
type KeyPair = signing.KeyPair

// SHA256 returns the 32-byte digest of data
func (s *Service) SHA256(data []byte) []byte {
	c := s.begin(OpSHA256)
	d := hashing.SHA256(data).Bytes()
	s.finish(c, nil, len(data), len(d))
	return d
}

// GenerateKeyPair creates a fresh Ed25519 keypair
func (s *Service) GenerateKeyPair() (KeyPair, error) {
	c := s.begin(OpGenerateKeyPair)
	kp, err := s.signer.GenerateKeyPair()
	s.finish(c, err, 0, 0)
	return kp, err
}

// Sign signs message with a hex private seed and returns a hex signature
func (s *Service) Sign(privateKeyHex string, message []byte) (string, error) {
	c := s.begin(OpSign)
	sig, err := signing.Sign(privateKeyHex, message)
	s.finish(c, err, len(message), len(sig)/2)
	return sig, err
}

// Verify reports whether signatureHex is valid for message under publicKeyHex.
// Malformed keys or signatures are errors; a mismatch is false.
func (s *Service) Verify(publicKeyHex, signatureHex string, message []byte) (bool, error) {
	c := s.begin(OpVerify)
	ok, err := signing.Verify(publicKeyHex, signatureHex, message)
	s.finish(c, err, len(message), 0)
	if err == nil && s.metrics != nil {
		s.metrics.RecordVerification(ok)
	}
	return ok, err
}

// Encrypt seals plaintext with AES-256-GCM
func (s *Service) Encrypt(key, nonce, plaintext []byte) ([]byte, error) {
	c := s.begin(OpEncrypt)
	ct, err := aead.Encrypt(key, nonce, plaintext)
	s.finish(c, err, len(plaintext), len(ct))
	return ct, err
}

// Decrypt opens AES-256-GCM ciphertext, failing closed on any mismatch
func (s *Service) Decrypt(key, nonce, ciphertext []byte) ([]byte, error) {
	c := s.begin(OpDecrypt)
	pt, err := aead.Decrypt(key, nonce, ciphertext)
	s.finish(c, err, len(ciphertext), len(pt))
	return pt, err
}

// RandomBytes returns length bytes from the service's random source
func (s *Service) RandomBytes(length int) ([]byte, error) {
	c := s.begin(OpRandomBytes)
	b, err := random.Bytes(s.rand, length)
	s.finish(c, err, 0, len(b))
	return b, err
}

// GenerateNonce draws a fresh AES-GCM nonce from the service's random source
func (s *Service) GenerateNonce() ([]byte, error) {
	c := s.begin(OpGenerateNonce)
	nonce, err := aead.GenerateNonce(s.rand)
	s.finish(c, err, 0, len(nonce))
	return nonce, err
}

// GenerateSalt draws a fresh passphrase salt from the service's random source
func (s *Service) GenerateSalt() ([]byte, error) {
	c := s.begin(OpGenerateSalt)
	salt, err := aead.GenerateSalt(s.rand)
	s.finish(c, err, 0, len(salt))
	return salt, err
}

// Compress encodes data as a zstd frame
func (s *Service) Compress(data []byte) ([]byte, error) {
	c := s.begin(OpCompress)
	blob, err := s.codec.Compress(data)
	s.finish(c, err, len(data), len(blob))
	if err == nil && s.metrics != nil && len(data) > 0 {
		if ratio, rerr := compression.Ratio(len(data), len(blob)); rerr == nil {
			s.metrics.RecordCompressionRatio(ratio)
		}
	}
	return blob, err
}

// Decompress decodes a zstd frame
func (s *Service) Decompress(blob []byte) ([]byte, error) {
	c := s.begin(OpDecompress)
	data, err := s.codec.Decompress(blob)
	s.finish(c, err, len(blob), len(data))
	return data, err
}

// CompressionRatio returns originalSize / compressedSize, or 0.0 for an empty original
func (s *Service) CompressionRatio(originalSize, compressedSize int) (float64, error) {
	c := s.begin(OpCompressionRatio)
	ratio, err := compression.Ratio(originalSize, compressedSize)
	s.finish(c, err, 0, 0)
	return ratio, err
}
