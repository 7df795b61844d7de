package compress

import "fmt"

// RunLength is a byte-oriented run-length compressor: tag 0x01. Runs of
// 1-255 identical bytes are written as a (count, byte) pair; there is no
// escape byte, so every input byte always expands to exactly one pair on
// the worst case (an alternating byte stream never larger than 2x).
//
// No pack library implements bespoke byte-run RLE at this granularity:
// klauspost/compress and pierrec/lz4 both target general-purpose
// dictionary compression, not this always-available fallback with no
// external dependency at all. So this one component is
// built on nothing but the standard library, by design rather than
// oversight.
type RunLength struct{}

func (RunLength) Tag() byte { return 0x01 }

func (RunLength) Compress(data []byte) ([]byte, error) {
	out := make([]byte, 0, len(data))
	for i := 0; i < len(data); {
		b := data[i]
		run := 1
		for i+run < len(data) && data[i+run] == b && run < 255 {
			run++
		}
		out = append(out, byte(run), b)
		i += run
	}
	return out, nil
}

func (RunLength) Decompress(data []byte) ([]byte, error) {
	if len(data)%2 != 0 {
		return nil, fmt.Errorf("compress: run-length stream has odd length %d", len(data))
	}
	out := make([]byte, 0, len(data))
	for i := 0; i < len(data); i += 2 {
		count, b := data[i], data[i+1]
		for j := byte(0); j < count; j++ {
			out = append(out, b)
		}
	}
	return out, nil
}
