package compress

import (
	"fmt"

	"github.com/klauspost/compress/zstd"
)

// Zstd is a ratio-optimized compressor: tag 0x02. It exists alongside
// LZ4 the same way artifactstore/compress.go pairs the two: LZ4 as the
// fast default, zstd for content that compresses meaningfully better at
// a higher CPU cost.
//
// The encoder and decoder are package-level and reused across every
// Zstd value, matching compress.go's own zstdEncoder/zstdDecoder
// globals. *zstd.Encoder and *zstd.Decoder are safe for concurrent
// use, so there is nothing to gain from allocating one per call.
type Zstd struct{}

var (
	zstdEncoder *zstd.Encoder
	zstdDecoder *zstd.Decoder
)

func init() {
	var err error
	zstdEncoder, err = zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		panic("compress: zstd encoder initialization failed: " + err.Error())
	}
	zstdDecoder, err = zstd.NewReader(nil)
	if err != nil {
		panic("compress: zstd decoder initialization failed: " + err.Error())
	}
}

func (Zstd) Tag() byte { return 0x02 }

func (Zstd) Compress(data []byte) ([]byte, error) {
	return zstdEncoder.EncodeAll(data, nil), nil
}

func (Zstd) Decompress(data []byte) ([]byte, error) {
	out, err := zstdDecoder.DecodeAll(data, nil)
	if err != nil {
		return nil, fmt.Errorf("compress: zstd decompress: %w", err)
	}
	return out, nil
}
