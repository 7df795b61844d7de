package wire

import (
	"math"

	"github.com/wireval/wireval/wireerr"
)

// maxExactFloatInt is the largest magnitude an int64 can have and still
// round-trip exactly through float64 (2^53, the width of float64's
// mantissa). Resolves spec §9 Open Question 1: integers outside the
// 32-bit signed range that NUMBER_INT can carry are routed through
// NUMBER_FLOAT rather than silently truncated, provided they still fit
// exactly; beyond that they are a size-limit error.
const maxExactFloatInt = int64(1) << 53

// EncodeInt appends the tag and body for a signed integer. Magnitudes
// within [-2^31, 2^31-1] use the NUMBER_INT framing with the smallest of
// widths {1,2,4} (spec §4.1). Larger magnitudes that are still exactly
// representable in float64 fall back to NUMBER_FLOAT (Open Question 1,
// option (b)); magnitudes beyond that are rejected.
func EncodeInt(buf *Buffer, n int64) error {
	switch {
	case n >= -1<<31 && n <= 1<<31-1:
		width := intWidth(n)
		buf.WriteByte(byte(NUMBER_INT))
		buf.WriteByte(width)
		appendBigEndianMagnitude(buf, n, int(width))
		return nil
	case n >= -maxExactFloatInt && n <= maxExactFloatInt:
		EncodeFloat(buf, float64(n))
		return nil
	default:
		return wireerr.New(wireerr.KindSizeLimit, buf.Len(), "", nil, "integer %d exceeds the representable range", n)
	}
}

// intWidth returns the smallest of {1,2,4} whose signed range contains n.
func intWidth(n int64) byte {
	switch {
	case n >= -128 && n <= 127:
		return 1
	case n >= -32768 && n <= 32767:
		return 2
	default:
		return 4
	}
}

// appendBigEndianMagnitude writes n's two's-complement bit pattern in the
// given width, most significant byte first.
func appendBigEndianMagnitude(buf *Buffer, n int64, width int) {
	u := uint64(n) & widthMask(width)
	for i := width - 1; i >= 0; i-- {
		buf.WriteByte(byte(u >> (8 * uint(i))))
	}
}

func widthMask(width int) uint64 {
	if width >= 8 {
		return math.MaxUint64
	}
	return 1<<(8*uint(width)) - 1
}

// DecodeIntBody reads the width byte and magnitude of a NUMBER_INT frame,
// sign-extending the leading byte per its width.
func DecodeIntBody(cur *Cursor) (int64, error) {
	widthByte, err := cur.ReadByte()
	if err != nil {
		return 0, err
	}
	width := int(widthByte)
	if width != 1 && width != 2 && width != 4 {
		return 0, wireerr.New(wireerr.KindTagMismatch, cur.Offset(), "", nil, "invalid integer width %d", width)
	}
	raw, err := cur.ReadN(width)
	if err != nil {
		return 0, err
	}
	var u uint64
	for _, b := range raw {
		u = u<<8 | uint64(b)
	}
	// sign-extend from the chosen width
	shift := uint(64 - 8*width)
	return int64(u<<shift) >> shift, nil
}

// EncodeFloat appends the NUMBER_FLOAT tag and an 8-byte little-endian
// binary64 payload (spec §9 Open Question 2: commit to little-endian
// rather than the source's host-native order).
func EncodeFloat(buf *Buffer, f float64) {
	buf.WriteByte(byte(NUMBER_FLOAT))
	bits := math.Float64bits(f)
	var b [8]byte
	for i := 0; i < 8; i++ {
		b[i] = byte(bits >> (8 * uint(i)))
	}
	buf.Write(b[:])
}

// DecodeFloatBody reads the 8-byte little-endian binary64 payload of a
// NUMBER_FLOAT frame.
func DecodeFloatBody(cur *Cursor) (float64, error) {
	raw, err := cur.ReadN(8)
	if err != nil {
		return 0, err
	}
	var bits uint64
	for i := 7; i >= 0; i-- {
		bits = bits<<8 | uint64(raw[i])
	}
	return math.Float64frombits(bits), nil
}

// EncodeString appends a STRING_SHORT or STRING_LONG frame, chosen by
// length (spec §4.1).
func EncodeString(buf *Buffer, s []byte) error {
	if len(s) < 255 {
		buf.WriteByte(byte(STRING_SHORT))
		buf.WriteByte(byte(len(s)))
		buf.Write(s)
		return nil
	}
	if uint64(len(s)) > math.MaxUint32 {
		return wireerr.New(wireerr.KindSizeLimit, buf.Len(), "", nil, "string of length %d exceeds the wire format's 32-bit length field", len(s))
	}
	buf.WriteByte(byte(STRING_LONG))
	n := uint32(len(s))
	var lenBytes [4]byte
	lenBytes[0] = byte(n >> 24)
	lenBytes[1] = byte(n >> 16)
	lenBytes[2] = byte(n >> 8)
	lenBytes[3] = byte(n)
	buf.Write(lenBytes[:])
	buf.Write(s)
	return nil
}

// DecodeStringBody reads the length and bytes of a STRING_SHORT or
// STRING_LONG frame, given the already-consumed tag. maxLen bounds
// STRING_LONG's declared length (spec §4.1: "Decoders must enforce an
// upper bound... to cap adversarial memory growth").
func DecodeStringBody(cur *Cursor, tag Tag, maxLen int) ([]byte, error) {
	switch tag {
	case STRING_SHORT:
		lb, err := cur.ReadByte()
		if err != nil {
			return nil, err
		}
		return cur.ReadN(int(lb))
	case STRING_LONG:
		lenBytes, err := cur.ReadN(4)
		if err != nil {
			return nil, err
		}
		n := uint32(lenBytes[0])<<24 | uint32(lenBytes[1])<<16 | uint32(lenBytes[2])<<8 | uint32(lenBytes[3])
		if maxLen > 0 && n > uint32(maxLen) {
			return nil, wireerr.New(wireerr.KindSizeLimit, cur.Offset(), "", nil, "string length %d exceeds configured maximum %d", n, maxLen)
		}
		return cur.ReadN(int(n))
	default:
		return nil, wireerr.New(wireerr.KindTagMismatch, cur.Offset(), "", nil, "expected a string tag, got %s", tag)
	}
}
