package compression

import (
	"github.com/dd0wney/cluso-primitives/pkg/cryptoerr"
)

// ErrInvalidRatio is returned when a ratio has no finite value
var ErrInvalidRatio = cryptoerr.New(cryptoerr.CompressionFailed, "ratio", "compressed size must be positive when original size is non-zero")

// Ratio returns originalSize / compressedSize.
// It is 0.0 whenever originalSize is zero. Otherwise a compressedSize that is
// not positive, or a negative originalSize, returns ErrInvalidRatio.
func Ratio(originalSize, compressedSize int) (float64, error) {
	if originalSize == 0 {
		return 0.0, nil
	}
	if originalSize < 0 || compressedSize <= 0 {
		return 0, ErrInvalidRatio
	}
	return float64(originalSize) / float64(compressedSize), nil
}

// Stats describes one compression result
type Stats struct {
	Uncompressed int
	Compressed   int
	Ratio        float64 // e.g., 2.0 = half the size
	SpaceSavings float64 // fraction of bytes saved, negative when the frame grew
}

// NewStats computes statistics for a compression result
func NewStats(uncompressed, compressed int) (Stats, error) {
	ratio, err := Ratio(uncompressed, compressed)
	if err != nil {
		return Stats{}, err
	}

	stats := Stats{
		Uncompressed: uncompressed,
		Compressed:   compressed,
		Ratio:        ratio,
	}
	if uncompressed > 0 {
		stats.SpaceSavings = 1 - float64(compressed)/float64(uncompressed)
	}
	return stats, nil
}
