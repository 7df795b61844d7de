package compress

import (
	"encoding/binary"
	"fmt"

	"github.com/pierrec/lz4/v4"
)

// LZ4 is a block-mode LZ4 compressor: tag 0x03. Added alongside
// Zstd because the pack's compression idiom (artifactstore's
// CompressChunk) treats LZ4 as the fast default path and a
// ratio-optimized codec as the alternative; wireval mirrors that split
// with LZ4 as the fast option and Zstd as the ratio-optimized one.
//
// LZ4's block API is not self-framing, so Compress prefixes its output
// with the original length as a 4-byte big-endian uint32 followed by a
// one-byte stored flag, matching the wire format's own big-endian length
// convention.
type LZ4 struct{}

const (
	lz4FlagCompressed byte = 0
	lz4FlagStored     byte = 1
)

func (LZ4) Tag() byte { return 0x03 }

func (LZ4) Compress(data []byte) ([]byte, error) {
	bound := lz4.CompressBlockBound(len(data))
	dst := make([]byte, 5+bound)
	binary.BigEndian.PutUint32(dst[:4], uint32(len(data)))

	var c lz4.Compressor
	n, err := c.CompressBlock(data, dst[5:])
	if err != nil {
		return nil, fmt.Errorf("compress: lz4 compress: %w", err)
	}
	if n == 0 || n >= len(data) {
		// CompressBlock reports 0 when the data does not compress; also
		// reject any result that didn't actually shrink the input.
		dst = append(dst[:4], lz4FlagStored)
		dst = append(dst, data...)
		return dst, nil
	}
	dst[4] = lz4FlagCompressed
	return dst[:5+n], nil
}

func (LZ4) Decompress(data []byte) ([]byte, error) {
	if len(data) < 5 {
		return nil, fmt.Errorf("compress: lz4 stream too short for header")
	}
	n := binary.BigEndian.Uint32(data[:4])
	flag := data[4]
	body := data[5:]

	if flag == lz4FlagStored {
		if uint32(len(body)) != n {
			return nil, fmt.Errorf("compress: lz4 stored block length %d does not match header %d", len(body), n)
		}
		out := make([]byte, n)
		copy(out, body)
		return out, nil
	}

	dst := make([]byte, n)
	read, err := lz4.UncompressBlock(body, dst)
	if err != nil {
		return nil, fmt.Errorf("compress: lz4 decompress: %w", err)
	}
	if uint32(read) != n {
		return nil, fmt.Errorf("compress: lz4 decompress: got %d bytes, expected %d", read, n)
	}
	return dst, nil
}
