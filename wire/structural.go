package wire

import "github.com/wireval/wireval/wireerr"

// EncodeArrayStart/EncodeArrayEnd frame an ordered sequence (spec §4.2):
//
//	[ARRAY_START] value₁ value₂ … valueₙ [ARRAY_END]
func EncodeArrayStart(buf *Buffer) { buf.WriteByte(byte(ARRAY_START)) }
func EncodeArrayEnd(buf *Buffer)   { buf.WriteByte(byte(ARRAY_END)) }

// EncodeTableStart/EncodeTableEnd frame a keyed mapping (spec §4.2):
//
//	[TABLE_START] (key KV_SEP value)* [TABLE_END]
func EncodeTableStart(buf *Buffer) { buf.WriteByte(byte(TABLE_START)) }
func EncodeTableEnd(buf *Buffer)   { buf.WriteByte(byte(TABLE_END)) }

// EncodeKVSeparator writes the required byte between a mapping key and
// its value.
func EncodeKVSeparator(buf *Buffer) { buf.WriteByte(byte(KEY_VALUE_SEPARATOR)) }

// ExpectSeparator consumes one byte and fails with KindSeparatorMissing
// unless it is KEY_VALUE_SEPARATOR (spec §4.2: "its omission on decode is
// a protocol error").
func ExpectSeparator(cur *Cursor) error {
	b, err := cur.ReadByte()
	if err != nil {
		return err
	}
	if Tag(b) != KEY_VALUE_SEPARATOR {
		return wireerr.New(wireerr.KindSeparatorMissing, cur.Offset()-1, "mapping", nil, "expected KEY_VALUE_SEPARATOR, got %s", Tag(b))
	}
	return nil
}

// EncodeReference appends a REFERENCE tag followed by an INT-framed
// identifier (spec §4.2).
func EncodeReference(buf *Buffer, id int) error {
	buf.WriteByte(byte(REFERENCE))
	return EncodeInt(buf, int64(id))
}

// DecodeReferenceBody reads the INT-framed identifier following a
// REFERENCE tag.
func DecodeReferenceBody(cur *Cursor) (int, error) {
	tagByte, err := cur.ReadByte()
	if err != nil {
		return 0, err
	}
	if Tag(tagByte) != NUMBER_INT {
		return 0, wireerr.New(wireerr.KindTagMismatch, cur.Offset(), "reference", nil, "expected an INT-framed reference id, got %s", Tag(tagByte))
	}
	id, err := DecodeIntBody(cur)
	if err != nil {
		return 0, err
	}
	return int(id), nil
}
