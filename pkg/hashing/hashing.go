// Package hashing provides the fixed SHA-256 digest.
package hashing

import (
	"encoding/hex"

	sha256 "github.com/minio/sha256-simd"
)

// DigestSize is the length of a SHA-256 digest in bytes
const DigestSize = sha256.Size

// Digest is a SHA-256 digest
type Digest [DigestSize]byte

// Hex returns the lowercase hex form of the digest
func (d Digest) Hex() string {
	return hex.EncodeToString(d[:])
}

// Bytes returns a copy of the digest as a slice
func (d Digest) Bytes() []byte {
	out := make([]byte, DigestSize)
	copy(out, d[:])
	return out
}

// SHA256 hashes data. It is total and deterministic; nil and empty input
// both produce the empty-string digest.
func SHA256(data []byte) Digest {
	return Digest(sha256.Sum256(data))
}

// SHA256Hex returns the lowercase hex SHA-256 digest of data
func SHA256Hex(data []byte) string {
	return SHA256(data).Hex()
}
