package compression

import (
	"sync"

	"github.com/klauspost/compress/zstd"
)

// coderPool reuses zstd encoders and decoders across calls. Each coder runs
// with concurrency 1 and only EncodeAll/DecodeAll, so none hold goroutines
// and dropped ones need no Close.
type coderPool struct {
	maxDecodedSize uint64
	encoders       sync.Pool
	decoders       sync.Pool
}

func (p *coderPool) getEncoder() (*zstd.Encoder, error) {
	if v := p.encoders.Get(); v != nil {
		return v.(*zstd.Encoder), nil
	}
	return zstd.NewWriter(nil,
		zstd.WithEncoderLevel(zstd.EncoderLevelFromZstd(Level)),
		zstd.WithEncoderCRC(true),
		zstd.WithZeroFrames(true),
		zstd.WithEncoderConcurrency(1),
	)
}

func (p *coderPool) putEncoder(enc *zstd.Encoder) {
	p.encoders.Put(enc)
}

func (p *coderPool) getDecoder() (*zstd.Decoder, error) {
	if v := p.decoders.Get(); v != nil {
		return v.(*zstd.Decoder), nil
	}
	opts := []zstd.DOption{zstd.WithDecoderConcurrency(1)}
	if p.maxDecodedSize > 0 {
		opts = append(opts, zstd.WithDecoderMaxMemory(p.maxDecodedSize))
	}
	return zstd.NewReader(nil, opts...)
}

func (p *coderPool) putDecoder(dec *zstd.Decoder) {
	p.decoders.Put(dec)
}
