package wire_test

import (
	"testing"

	"github.com/maxatome/go-testdeep/td"

	"github.com/wireval/wireval/value"
	"github.com/wireval/wireval/wire"
)

func TestVector3RoundTrip(t *testing.T) {
	buf := wire.NewBuffer()
	wire.EncodeVector3(buf, 1.5, -2.5, 3.0)
	cur := wire.NewCursor(buf.Bytes()[1:])
	x, y, z, err := wire.DecodeVector3Body(cur)
	if err != nil {
		t.Fatal(err)
	}
	td.Cmp(t, []float64{x, y, z}, []float64{1.5, -2.5, 3.0})
}

func TestCFrameRoundTrip(t *testing.T) {
	buf := wire.NewBuffer()
	rot := [3][3]float64{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
	}
	wire.EncodeCFrame(buf, 10, 20, 30, rot)
	cur := wire.NewCursor(buf.Bytes()[1:])
	x, y, z, gotRot, err := wire.DecodeCFrameBody(cur)
	if err != nil {
		t.Fatal(err)
	}
	td.Cmp(t, []float64{x, y, z}, []float64{10, 20, 30})
	td.Cmp(t, gotRot, rot)
}

func TestEnumRoundTrip(t *testing.T) {
	buf := wire.NewBuffer()
	if err := wire.EncodeEnum(buf, []byte("Material"), []byte("Plastic")); err != nil {
		t.Fatal(err)
	}
	cur := wire.NewCursor(buf.Bytes()[1:])
	typeName, memberName, err := wire.DecodeEnumBody(cur, 0)
	if err != nil {
		t.Fatal(err)
	}
	td.Cmp(t, typeName, []byte("Material"))
	td.Cmp(t, memberName, []byte("Plastic"))
}

func TestBrickColorAcceptsFloatFraming(t *testing.T) {
	buf := wire.NewBuffer()
	buf.WriteByte(byte(wire.BRICKCOLOR))
	wire.EncodeFloat(buf, 21)
	cur := wire.NewCursor(buf.Bytes()[1:])
	idx, err := wire.DecodeBrickColorBody(cur)
	if err != nil {
		t.Fatal(err)
	}
	td.Cmp(t, idx, int64(21))
}

func TestNumberSequenceRoundTrip(t *testing.T) {
	kps := []value.NumberKeypoint{
		{Time: 0, Value: 0, Envelope: 0},
		{Time: 1, Value: 10, Envelope: 0.5},
	}
	buf := wire.NewBuffer()
	if err := wire.EncodeNumberSequence(buf, kps); err != nil {
		t.Fatal(err)
	}
	cur := wire.NewCursor(buf.Bytes()[1:])
	got, err := wire.DecodeNumberSequenceBody(cur, 0)
	if err != nil {
		t.Fatal(err)
	}
	td.Cmp(t, got, kps)
}

func TestNumberSequenceCountLimitEnforced(t *testing.T) {
	kps := make([]value.NumberKeypoint, 5)
	buf := wire.NewBuffer()
	if err := wire.EncodeNumberSequence(buf, kps); err != nil {
		t.Fatal(err)
	}
	cur := wire.NewCursor(buf.Bytes()[1:])
	_, err := wire.DecodeNumberSequenceBody(cur, 3)
	td.Cmp(t, err, td.NotNil())
}
