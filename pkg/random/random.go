// Package random provides the cryptographically secure byte source used by
// key generation. The source is an explicit capability so callers and tests
// can substitute a deterministic generator.
package random

import (
	"crypto/rand"
	"encoding/binary"
	"io"
	"sync"

	sha256 "github.com/minio/sha256-simd"

	"github.com/dd0wney/cluso-primitives/pkg/cryptoerr"
)

// Source is a random byte provider
type Source interface {
	Read(p []byte) (int, error)
}

// OS is the operating system CSPRNG
var OS Source = rand.Reader

const op = "random"

// Bytes reads exactly length bytes from src.
// A zero length returns an empty slice. There is no fallback generator.
func Bytes(src Source, length int) ([]byte, error) {
	if length < 0 {
		return nil, cryptoerr.Newf(cryptoerr.RandomFailed, op, "negative length %d", length)
	}
	if src == nil {
		return nil, cryptoerr.New(cryptoerr.RandomFailed, op, "no random source")
	}

	buf := make([]byte, length)
	if length == 0 {
		return buf, nil
	}
	if _, err := io.ReadFull(src, buf); err != nil {
		return nil, cryptoerr.Wrap(cryptoerr.RandomFailed, op, err)
	}
	return buf, nil
}

// deterministicSource expands a seed into SHA-256(seed || counter) blocks
type deterministicSource struct {
	mu      sync.Mutex
	seed    []byte
	counter uint64
	buf     []byte
}

// Deterministic returns a reproducible Source for tests.
// It is not secure and must never back production key generation.
func Deterministic(seed []byte) Source {
	s := make([]byte, len(seed))
	copy(s, seed)
	return &deterministicSource{seed: s}
}

func (d *deterministicSource) Read(p []byte) (int, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	n := 0
	for n < len(p) {
		if len(d.buf) == 0 {
			var ctr [8]byte
			binary.BigEndian.PutUint64(ctr[:], d.counter)
			d.counter++

			h := sha256.New()
			h.Write(d.seed)
			h.Write(ctr[:])
			d.buf = h.Sum(nil)
		}
		c := copy(p[n:], d.buf)
		d.buf = d.buf[c:]
		n += c
	}
	return n, nil
}
