package random

import (
	"bytes"
	"errors"
	"testing"

	"github.com/dd0wney/cluso-primitives/pkg/cryptoerr"
)

type failingSource struct{}

func (failingSource) Read(p []byte) (int, error) {
	return 0, errors.New("entropy unavailable")
}

type shortSource struct{}

func (shortSource) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	p[0] = 1
	return 1, errors.New("device closed")
}

func TestBytesZeroLength(t *testing.T) {
	b, err := Bytes(OS, 0)
	if err != nil {
		t.Fatalf("Bytes(0) failed: %v", err)
	}
	if b == nil || len(b) != 0 {
		t.Errorf("Bytes(0) = %v, want empty non-nil slice", b)
	}
}

func TestBytesLength(t *testing.T) {
	for _, n := range []int{1, 12, 32, 64, 1000} {
		b, err := Bytes(OS, n)
		if err != nil {
			t.Fatalf("Bytes(%d) failed: %v", n, err)
		}
		if len(b) != n {
			t.Errorf("Bytes(%d) length = %d", n, len(b))
		}
	}
}

func TestBytesDiffer(t *testing.T) {
	a, _ := Bytes(OS, 32)
	b, _ := Bytes(OS, 32)
	if bytes.Equal(a, b) {
		t.Error("two successive 32-byte draws are identical (should be random)")
	}
}

func TestBytesFailures(t *testing.T) {
	tests := []struct {
		name   string
		src    Source
		length int
	}{
		{"Negative", OS, -1},
		{"NilSource", nil, 8},
		{"ReaderError", failingSource{}, 8},
		{"ShortRead", shortSource{}, 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := Bytes(tt.src, tt.length)
			if !errors.Is(err, cryptoerr.ErrRandomFailed) {
				t.Errorf("Bytes() error = %v, want RandomFailed", err)
			}
			if b != nil {
				t.Error("Bytes() returned data alongside an error")
			}
		})
	}
}

func TestDeterministicReproducible(t *testing.T) {
	a, err := Bytes(Deterministic([]byte("seed")), 100)
	if err != nil {
		t.Fatalf("Bytes() failed: %v", err)
	}
	b, _ := Bytes(Deterministic([]byte("seed")), 100)
	if !bytes.Equal(a, b) {
		t.Error("same seed produced different streams")
	}

	c, _ := Bytes(Deterministic([]byte("other")), 100)
	if bytes.Equal(a, c) {
		t.Error("different seeds produced the same stream")
	}
}

func TestDeterministicStreamContinues(t *testing.T) {
	src := Deterministic([]byte("seed"))
	first, _ := Bytes(src, 40)
	second, _ := Bytes(src, 40)
	if bytes.Equal(first, second) {
		t.Error("successive reads from one source should differ")
	}

	whole, _ := Bytes(Deterministic([]byte("seed")), 80)
	if !bytes.Equal(whole, append(first, second...)) {
		t.Error("split reads should equal one contiguous read")
	}
}
