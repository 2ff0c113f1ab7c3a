// Package fixedbytes decodes and checks fixed-size byte values such as keys,
// nonces and signatures, reporting failures as typed cryptoerr errors.
package fixedbytes

import (
	"encoding/hex"

	"github.com/dd0wney/cluso-primitives/pkg/cryptoerr"
)

// DecodeHex decodes s and requires exactly size bytes.
// Any failure is reported with the given kind.
func DecodeHex(op, what, s string, size int, kind cryptoerr.Kind) ([]byte, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, cryptoerr.Newf(kind, op, "%s: invalid hex: %v", what, err)
	}
	if err := Check(op, what, b, size, kind); err != nil {
		return nil, err
	}
	return b, nil
}

// Check requires b to be exactly size bytes long
func Check(op, what string, b []byte, size int, kind cryptoerr.Kind) error {
	if len(b) != size {
		return cryptoerr.Newf(kind, op, "%s must be %d bytes, got %d", what, size, len(b))
	}
	return nil
}

// EncodeHex returns lowercase hex with no prefix or separators
func EncodeHex(b []byte) string {
	return hex.EncodeToString(b)
}
