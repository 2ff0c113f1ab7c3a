// Package compression implements lossless zstd compression over whole
// in-memory buffers. Every output is a self-describing zstd frame.
package compression

import (
	"github.com/klauspost/compress/zstd"

	"github.com/dd0wney/cluso-primitives/pkg/cryptoerr"
)

// Level is the zstd compression level used for every frame
const Level = 3

// Codec compresses and decompresses zstd frames. It is safe for concurrent use.
type Codec struct {
	coders *coderPool
}

// NewCodec creates a codec. A zero maxDecodedSize keeps the decoder default.
func NewCodec(maxDecodedSize uint64) *Codec {
	return &Codec{coders: &coderPool{maxDecodedSize: maxDecodedSize}}
}

var defaultCodec = NewCodec(0)

// Compress compresses data with the default codec
func Compress(data []byte) ([]byte, error) {
	return defaultCodec.Compress(data)
}

// Decompress decompresses blob with the default codec
func Decompress(blob []byte) ([]byte, error) {
	return defaultCodec.Decompress(blob)
}

// Compress encodes data as a single zstd frame.
// Empty input produces a minimal valid frame.
func (c *Codec) Compress(data []byte) ([]byte, error) {
	const op = "compress"

	enc, err := c.coders.getEncoder()
	if err != nil {
		return nil, cryptoerr.Newf(cryptoerr.CompressionFailed, op, "failed to create encoder: %v", err)
	}
	defer c.coders.putEncoder(enc)

	return enc.EncodeAll(data, make([]byte, 0, enc.MaxEncodedSize(len(data)))), nil
}

// Decompress reconstructs the original bytes from blob.
// Input that is not a complete, intact zstd frame is rejected.
func (c *Codec) Decompress(blob []byte) ([]byte, error) {
	const op = "decompress"

	if len(blob) == 0 {
		return nil, cryptoerr.New(cryptoerr.DecompressionFailed, op, "empty input is not a zstd frame")
	}

	// The decoder treats a frame that ends inside its magic or header as a
	// clean end of input, so the header is checked up front.
	var hdr zstd.Header
	if err := hdr.Decode(blob); err != nil {
		return nil, cryptoerr.Newf(cryptoerr.DecompressionFailed, op, "invalid frame header: %v", err)
	}
	if hdr.Skippable || !hdr.FirstBlock.OK {
		return nil, cryptoerr.New(cryptoerr.DecompressionFailed, op, "incomplete frame header")
	}

	dec, err := c.coders.getDecoder()
	if err != nil {
		return nil, cryptoerr.Newf(cryptoerr.DecompressionFailed, op, "failed to create decoder: %v", err)
	}
	defer c.coders.putDecoder(dec)

	out, err := dec.DecodeAll(blob, nil)
	if err != nil {
		return nil, cryptoerr.Newf(cryptoerr.DecompressionFailed, op, "failed to decompress: %v", err)
	}
	if out == nil {
		out = []byte{}
	}
	return out, nil
}
