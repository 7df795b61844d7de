package wire_test

import (
	"testing"

	"github.com/maxatome/go-testdeep/td"

	"github.com/wireval/wireval"
	"github.com/wireval/wireval/value"
	"github.com/wireval/wireval/wire"
	"github.com/wireval/wireval/wireerr"
)

func TestReferenceRoundTrip(t *testing.T) {
	buf := wire.NewBuffer()
	if err := wire.EncodeReference(buf, 7); err != nil {
		t.Fatalf("EncodeReference: %v", err)
	}
	cur := wire.NewCursor(buf.Bytes())
	tagByte, _ := cur.ReadByte()
	td.Cmp(t, wire.Tag(tagByte), wire.REFERENCE)

	id, err := wire.DecodeReferenceBody(cur)
	if err != nil {
		t.Fatalf("DecodeReferenceBody: %v", err)
	}
	td.Cmp(t, id, 7)
}

func TestExpectSeparatorMissing(t *testing.T) {
	cur := wire.NewCursor([]byte{byte(wire.ARRAY_END)})
	err := wire.ExpectSeparator(cur)
	td.Cmp(t, err, td.NotNil())
	we, ok := err.(*wireerr.Error)
	td.CmpTrue(t, ok)
	td.Cmp(t, we.Kind, wireerr.KindSeparatorMissing)
}

// TestTruncationSafety sweeps every prefix length of a valid, fully
// encoded payload and drives each one through the real decode path
// (wireval.Decode, not just the cursor), checking that every strict
// prefix fails with wireerr.KindTruncation rather than panicking or
// succeeding on a different shape (spec.md: "for every valid payload p
// and every k < |p|, decode(p[0..k]) fails with Truncation and does not
// read out of bounds").
func TestTruncationSafety(t *testing.T) {
	full, err := wireval.Encode(value.NewSequence(value.Int(300), value.String("hello")))
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	for n := 0; n < len(full); n++ {
		prefix := full[:n]
		func() {
			defer func() {
				if r := recover(); r != nil {
					t.Fatalf("prefix length %d panicked: %v", n, r)
				}
			}()
			_, err := wireval.Decode(prefix)
			if err == nil {
				t.Fatalf("prefix length %d decoded successfully, want a truncation error", n)
			}
			we, ok := err.(*wireerr.Error)
			if !ok {
				t.Fatalf("prefix length %d: error is %T, want *wireerr.Error", n, err)
			}
			if we.Kind != wireerr.KindTruncation {
				t.Fatalf("prefix length %d: got kind %s, want truncation", n, we.Kind)
			}
		}()
	}
}

func TestUnknownTagByteSafe(t *testing.T) {
	cur := wire.NewCursor([]byte{0xff})
	b, err := cur.ReadByte()
	if err != nil {
		t.Fatal(err)
	}
	tag := wire.Tag(b)
	td.Cmp(t, tag.String(), "UNKNOWN")
}
