package wire

import (
	"math"

	"github.com/wireval/wireval/value"
	"github.com/wireval/wireval/wireerr"
)

// appendFloat64 appends f as an 8-byte little-endian binary64, with no
// tag byte. Used inside domain-tuple frames, which carry a single tag
// covering all of their fields (spec §4.1's domain-tuple table).
func appendFloat64(buf *Buffer, f float64) {
	// EncodeFloat's body-only half; reuse via a tiny local buffer would
	// cost an allocation, so the bit-twiddling is duplicated here.
	bits := math.Float64bits(f)
	var b [8]byte
	for i := 0; i < 8; i++ {
		b[i] = byte(bits >> (8 * uint(i)))
	}
	buf.Write(b[:])
}

func readFloat64(cur *Cursor) (float64, error) {
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

// EncodeVector3 appends the VECTOR3 frame: X, Y, Z.
func EncodeVector3(buf *Buffer, x, y, z float64) {
	buf.WriteByte(byte(VECTOR3))
	appendFloat64(buf, x)
	appendFloat64(buf, y)
	appendFloat64(buf, z)
}

// DecodeVector3Body reads the three fields following a VECTOR3 tag.
func DecodeVector3Body(cur *Cursor) (x, y, z float64, err error) {
	if x, err = readFloat64(cur); err != nil {
		return
	}
	if y, err = readFloat64(cur); err != nil {
		return
	}
	z, err = readFloat64(cur)
	return
}

// EncodeVector2 appends the VECTOR2 frame: X, Y.
func EncodeVector2(buf *Buffer, x, y float64) {
	buf.WriteByte(byte(VECTOR2))
	appendFloat64(buf, x)
	appendFloat64(buf, y)
}

// DecodeVector2Body reads the two fields following a VECTOR2 tag.
func DecodeVector2Body(cur *Cursor) (x, y float64, err error) {
	if x, err = readFloat64(cur); err != nil {
		return
	}
	y, err = readFloat64(cur)
	return
}

// EncodeColor3 appends the COLOR3 frame: R, G, B.
func EncodeColor3(buf *Buffer, r, g, b float64) {
	buf.WriteByte(byte(COLOR3))
	appendFloat64(buf, r)
	appendFloat64(buf, g)
	appendFloat64(buf, b)
}

// DecodeColor3Body reads the three fields following a COLOR3 tag.
func DecodeColor3Body(cur *Cursor) (r, g, b float64, err error) {
	if r, err = readFloat64(cur); err != nil {
		return
	}
	if g, err = readFloat64(cur); err != nil {
		return
	}
	b, err = readFloat64(cur)
	return
}

// EncodeUDim2 appends the UDIM2 frame: X.Scale, X.Offset, Y.Scale, Y.Offset.
func EncodeUDim2(buf *Buffer, xScale, xOffset, yScale, yOffset float64) {
	buf.WriteByte(byte(UDIM2))
	appendFloat64(buf, xScale)
	appendFloat64(buf, xOffset)
	appendFloat64(buf, yScale)
	appendFloat64(buf, yOffset)
}

// DecodeUDim2Body reads the four fields following a UDIM2 tag.
func DecodeUDim2Body(cur *Cursor) (xScale, xOffset, yScale, yOffset float64, err error) {
	if xScale, err = readFloat64(cur); err != nil {
		return
	}
	if xOffset, err = readFloat64(cur); err != nil {
		return
	}
	if yScale, err = readFloat64(cur); err != nil {
		return
	}
	yOffset, err = readFloat64(cur)
	return
}

// EncodeRect appends the RECT frame: minX, minY, maxX, maxY.
func EncodeRect(buf *Buffer, minX, minY, maxX, maxY float64) {
	buf.WriteByte(byte(RECT))
	appendFloat64(buf, minX)
	appendFloat64(buf, minY)
	appendFloat64(buf, maxX)
	appendFloat64(buf, maxY)
}

// DecodeRectBody reads the four fields following a RECT tag.
func DecodeRectBody(cur *Cursor) (minX, minY, maxX, maxY float64, err error) {
	if minX, err = readFloat64(cur); err != nil {
		return
	}
	if minY, err = readFloat64(cur); err != nil {
		return
	}
	if maxX, err = readFloat64(cur); err != nil {
		return
	}
	maxY, err = readFloat64(cur)
	return
}

// EncodeCFrame appends the CFRAME frame: x, y, z, then nine rotation
// entries row-major.
func EncodeCFrame(buf *Buffer, x, y, z float64, rot [3][3]float64) {
	buf.WriteByte(byte(CFRAME))
	appendFloat64(buf, x)
	appendFloat64(buf, y)
	appendFloat64(buf, z)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			appendFloat64(buf, rot[i][j])
		}
	}
}

// DecodeCFrameBody reads the twelve fields following a CFRAME tag.
func DecodeCFrameBody(cur *Cursor) (x, y, z float64, rot [3][3]float64, err error) {
	if x, err = readFloat64(cur); err != nil {
		return
	}
	if y, err = readFloat64(cur); err != nil {
		return
	}
	if z, err = readFloat64(cur); err != nil {
		return
	}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if rot[i][j], err = readFloat64(cur); err != nil {
				return
			}
		}
	}
	return
}

// EncodeEnum appends the ENUM frame: two length-prefixed byte strings.
func EncodeEnum(buf *Buffer, typeName, memberName []byte) error {
	buf.WriteByte(byte(ENUM))
	if err := EncodeString(buf, typeName); err != nil {
		return err
	}
	return EncodeString(buf, memberName)
}

// DecodeEnumBody reads the two byte strings following an ENUM tag. Each
// is itself a fully-tagged STRING_SHORT/STRING_LONG frame, so the tag
// byte is read and checked here rather than assumed.
func DecodeEnumBody(cur *Cursor, maxLen int) (typeName, memberName []byte, err error) {
	if typeName, err = decodeInnerString(cur, maxLen); err != nil {
		return
	}
	memberName, err = decodeInnerString(cur, maxLen)
	return
}

func decodeInnerString(cur *Cursor, maxLen int) ([]byte, error) {
	tagByte, err := cur.ReadByte()
	if err != nil {
		return nil, err
	}
	tag := Tag(tagByte)
	if tag != STRING_SHORT && tag != STRING_LONG {
		return nil, wireerr.New(wireerr.KindTagMismatch, cur.Offset(), "", nil, "expected an embedded string tag, got %s", tag)
	}
	return DecodeStringBody(cur, tag, maxLen)
}

// EncodeInstanceRef appends the INSTANCE_REF frame: one byte string.
func EncodeInstanceRef(buf *Buffer, path []byte) error {
	buf.WriteByte(byte(INSTANCE_REF))
	return EncodeString(buf, path)
}

// DecodeInstanceRefBody reads the path following an INSTANCE_REF tag.
func DecodeInstanceRefBody(cur *Cursor, maxLen int) ([]byte, error) {
	return decodeInnerString(cur, maxLen)
}

// EncodeDateTime appends the DATETIME frame: one binary64 holding
// milliseconds since the epoch.
func EncodeDateTime(buf *Buffer, milliseconds int64) {
	buf.WriteByte(byte(DATETIME))
	appendFloat64(buf, float64(milliseconds))
}

// DecodeDateTimeBody reads the milliseconds field following a DATETIME
// tag.
func DecodeDateTimeBody(cur *Cursor) (int64, error) {
	f, err := readFloat64(cur)
	if err != nil {
		return 0, err
	}
	return int64(f), nil
}

// EncodeBrickColor appends the BRICKCOLOR frame: one INT-framed integer.
func EncodeBrickColor(buf *Buffer, index int64) error {
	buf.WriteByte(byte(BRICKCOLOR))
	return EncodeInt(buf, index)
}

// DecodeBrickColorBody reads the INT-framed index following a BRICKCOLOR
// tag. The index itself is a fully-tagged NUMBER_INT (or, per Open
// Question 1, NUMBER_FLOAT) frame.
func DecodeBrickColorBody(cur *Cursor) (int64, error) {
	tagByte, err := cur.ReadByte()
	if err != nil {
		return 0, err
	}
	switch Tag(tagByte) {
	case NUMBER_INT:
		return DecodeIntBody(cur)
	case NUMBER_FLOAT:
		f, err := DecodeFloatBody(cur)
		if err != nil {
			return 0, err
		}
		return int64(f), nil
	default:
		return 0, wireerr.New(wireerr.KindTagMismatch, cur.Offset(), "", nil, "expected an embedded integer tag, got %s", Tag(tagByte))
	}
}

// EncodeNumberSequence appends the NUMBERSEQUENCE frame: an INT-framed
// count, then count x (time, value, envelope) binary64 triples.
func EncodeNumberSequence(buf *Buffer, keypoints []value.NumberKeypoint) error {
	buf.WriteByte(byte(NUMBERSEQUENCE))
	if err := EncodeInt(buf, int64(len(keypoints))); err != nil {
		return err
	}
	for _, kp := range keypoints {
		appendFloat64(buf, kp.Time)
		appendFloat64(buf, kp.Value)
		appendFloat64(buf, kp.Envelope)
	}
	return nil
}

// EncodeColorSequence appends the COLORSEQUENCE frame: an INT-framed
// count, then count x (time, r, g, b) binary64 quads.
func EncodeColorSequence(buf *Buffer, keypoints []value.ColorKeypoint) error {
	buf.WriteByte(byte(COLORSEQUENCE))
	if err := EncodeInt(buf, int64(len(keypoints))); err != nil {
		return err
	}
	for _, kp := range keypoints {
		appendFloat64(buf, kp.Time)
		appendFloat64(buf, kp.R)
		appendFloat64(buf, kp.G)
		appendFloat64(buf, kp.B)
	}
	return nil
}

// decodeCount reads the INT-framed count that opens a keyframe-list
// frame, enforcing maxCount (spec §5's recommended 10,000 keyframe bound).
func decodeCount(cur *Cursor, maxCount int) (int, error) {
	tagByte, err := cur.ReadByte()
	if err != nil {
		return 0, err
	}
	if Tag(tagByte) != NUMBER_INT {
		return 0, wireerr.New(wireerr.KindTagMismatch, cur.Offset(), "", nil, "expected an INT-framed count, got %s", Tag(tagByte))
	}
	n, err := DecodeIntBody(cur)
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, wireerr.New(wireerr.KindTagMismatch, cur.Offset(), "", nil, "negative keyframe count %d", n)
	}
	if maxCount > 0 && n > int64(maxCount) {
		return 0, wireerr.New(wireerr.KindSizeLimit, cur.Offset(), "", nil, "keyframe count %d exceeds configured maximum %d", n, maxCount)
	}
	return int(n), nil
}

// DecodeNumberSequenceBody reads the count and keypoints following a
// NUMBERSEQUENCE tag.
func DecodeNumberSequenceBody(cur *Cursor, maxCount int) ([]value.NumberKeypoint, error) {
	n, err := decodeCount(cur, maxCount)
	if err != nil {
		return nil, err
	}
	out := make([]value.NumberKeypoint, n)
	for i := range out {
		if out[i].Time, err = readFloat64(cur); err != nil {
			return nil, err
		}
		if out[i].Value, err = readFloat64(cur); err != nil {
			return nil, err
		}
		if out[i].Envelope, err = readFloat64(cur); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// DecodeColorSequenceBody reads the count and keypoints following a
// COLORSEQUENCE tag.
func DecodeColorSequenceBody(cur *Cursor, maxCount int) ([]value.ColorKeypoint, error) {
	n, err := decodeCount(cur, maxCount)
	if err != nil {
		return nil, err
	}
	out := make([]value.ColorKeypoint, n)
	for i := range out {
		if out[i].Time, err = readFloat64(cur); err != nil {
			return nil, err
		}
		if out[i].R, err = readFloat64(cur); err != nil {
			return nil, err
		}
		if out[i].G, err = readFloat64(cur); err != nil {
			return nil, err
		}
		if out[i].B, err = readFloat64(cur); err != nil {
			return nil, err
		}
	}
	return out, nil
}
