package wireval_test

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/maxatome/go-testdeep/td"

	"github.com/wireval/wireval"
	"github.com/wireval/wireval/value"
	"github.com/wireval/wireval/wireerr"
)

// TestHexVectors checks the exact bytes Encode produces for six atom
// values (nil, true, false, 0, -1 and a short string), each preceded by
// the one leading format-version byte, and that each decodes back.
func TestHexVectors(t *testing.T) {
	cases := []struct {
		name string
		v    value.Value
		want []byte
	}{
		{"nil", value.Nil{}, []byte{0x01, 0x00}},
		{"true", value.Bool(true), []byte{0x01, 0x02}},
		{"false", value.Bool(false), []byte{0x01, 0x01}},
		{"zero", value.Int(0), []byte{0x01, 0x03, 0x01, 0x00}},
		{"neg-one", value.Int(-1), []byte{0x01, 0x03, 0x01, 0xff}},
		{"short-string", value.String("hi"), []byte{0x01, 0x05, 0x02, 'h', 'i'}},
	}
	for _, c := range cases {
		got, err := wireval.Encode(c.v)
		if err != nil {
			t.Fatalf("%s: Encode: %v", c.name, err)
		}
		td.Cmp(t, got, c.want, c.name)

		back, err := wireval.Decode(got)
		if err != nil {
			t.Fatalf("%s: Decode: %v", c.name, err)
		}
		td.Cmp(t, back, c.v, c.name+" round trip")
	}
}

// TestFloatAtomRoundTrip exercises value.Float through the full
// Encode/Decode path for the representative binary64 values spec.md
// requires: ±0, a subnormal, ±Inf, and NaN. NaN is compared by bit
// pattern, since NaN != NaN under Go's own ==.
func TestFloatAtomRoundTrip(t *testing.T) {
	values := []float64{
		0, 1, -1, 3.5,
		math.Copysign(0, -1),
		5e-324,
		math.Inf(1),
		math.Inf(-1),
		math.NaN(),
	}
	for _, f := range values {
		encoded, err := wireval.Encode(value.Float(f))
		if err != nil {
			t.Fatalf("Encode(%v): %v", f, err)
		}
		decoded, err := wireval.Decode(encoded)
		if err != nil {
			t.Fatalf("Decode(%v): %v", f, err)
		}
		got, ok := decoded.(value.Float)
		if !ok {
			t.Fatalf("got %T, want value.Float", decoded)
		}
		td.Cmp(t, math.Float64bits(float64(got)), math.Float64bits(f), "round trip %v", f)
	}
}

// TestSelfCycleRoundTrip encodes and decodes a sequence containing
// itself as its only element, the worked cyclic example: ARRAY_START
// REFERENCE 1 ARRAY_END.
func TestSelfCycleRoundTrip(t *testing.T) {
	a := value.NewSequence()
	a.Items = append(a.Items, a)

	encoded, err := wireval.Encode(a)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	td.Cmp(t, encoded, []byte{0x01, 0x09, 0x0c, 0x03, 0x01, 0x01, 0x0a})

	decoded, err := wireval.Decode(encoded)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	seq, ok := decoded.(*value.Sequence)
	if !ok {
		t.Fatalf("decoded value is %T, want *value.Sequence", decoded)
	}
	if len(seq.Items) != 1 {
		t.Fatalf("got %d items, want 1", len(seq.Items))
	}
	if seq.Items[0] != value.Value(seq) {
		t.Fatalf("decoded sequence does not reference itself")
	}
}

// TestMutualCycleRoundTrip builds two sequences that reference each
// other and checks the cycle survives a round trip.
func TestMutualCycleRoundTrip(t *testing.T) {
	a := value.NewSequence()
	b := value.NewSequence()
	a.Items = append(a.Items, b)
	b.Items = append(b.Items, a)

	encoded, err := wireval.Encode(a)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	decoded, err := wireval.Decode(encoded)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	da, ok := decoded.(*value.Sequence)
	if !ok || len(da.Items) != 1 {
		t.Fatalf("unexpected top-level shape: %#v", decoded)
	}
	db, ok := da.Items[0].(*value.Sequence)
	if !ok || len(db.Items) != 1 {
		t.Fatalf("unexpected nested shape: %#v", da.Items[0])
	}
	if db.Items[0] != value.Value(da) {
		t.Fatalf("mutual cycle did not resolve back to the outer sequence")
	}
}

// TestSharedSubstructureIdentityPreserved checks that two references to
// the same aggregate decode back to the same object, not two copies.
func TestSharedSubstructureIdentityPreserved(t *testing.T) {
	shared := value.NewSequence(value.Int(1))
	outer := value.NewSequence(shared, shared)

	encoded, err := wireval.Encode(outer)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	decoded, err := wireval.Decode(encoded)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	seq := decoded.(*value.Sequence)
	if seq.Items[0] != seq.Items[1] {
		t.Fatalf("shared substructure decoded as two distinct objects")
	}
}

// TestMappingSequenceDetection checks that a mapping with contiguous
// integer keys round-trips through ARRAY framing and comes back as a
// plain sequence, since the wire format does not distinguish the two.
func TestMappingSequenceDetection(t *testing.T) {
	m := value.NewMapping(
		value.Pair{Key: value.Int(1), Val: value.String("a")},
		value.Pair{Key: value.Int(2), Val: value.String("b")},
	)
	encoded, err := wireval.Encode(m)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	decoded, err := wireval.Decode(encoded)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	seq, ok := decoded.(*value.Sequence)
	if !ok {
		t.Fatalf("got %T, want *value.Sequence", decoded)
	}
	td.Cmp(t, seq.Items, []value.Value{value.String("a"), value.String("b")})
}

// TestMappingWithNonKeyKeysDropped checks that a bool key is silently
// dropped during encoding, per the data model's key-kind invariant.
func TestMappingWithNonKeyKeysDropped(t *testing.T) {
	m := value.NewMapping(
		value.Pair{Key: value.String("a"), Val: value.Int(1)},
		value.Pair{Key: value.Bool(true), Val: value.Int(2)},
	)
	encoded, err := wireval.Encode(m)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	decoded, err := wireval.Decode(encoded)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	got, ok := decoded.(*value.Mapping)
	if !ok {
		t.Fatalf("got %T, want *value.Mapping", decoded)
	}
	td.Cmp(t, len(got.Pairs), 1)
	td.Cmp(t, got.Pairs[0].Key, value.Value(value.String("a")))
}

func TestBrickColorDomainReconstructionFailureYieldsPlaceholder(t *testing.T) {
	v := value.BrickColor{Index: 99999}
	encoded, err := wireval.Encode(v)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	decoded, err := wireval.Decode(encoded)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	ph, ok := decoded.(value.Placeholder)
	if !ok {
		t.Fatalf("got %T, want value.Placeholder", decoded)
	}
	td.Cmp(t, ph.Kind(), value.KindPlaceholder)
}

func TestColor3OutOfRangeYieldsPlaceholder(t *testing.T) {
	v := value.Color3{R: 1.5, G: 0, B: 0}
	encoded, err := wireval.Encode(v)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	decoded, err := wireval.Decode(encoded)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	_, ok := decoded.(value.Placeholder)
	if !ok {
		t.Fatalf("got %T, want value.Placeholder", decoded)
	}
}

func TestColor3InRangeRoundTrips(t *testing.T) {
	v := value.Color3{R: 0.1, G: 0.5, B: 1.0}
	encoded, err := wireval.Encode(v)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	decoded, err := wireval.Decode(encoded)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	td.Cmp(t, decoded, value.Value(v))
}

func TestDepthLimitEnforced(t *testing.T) {
	inner := value.NewSequence()
	outer := value.NewSequence(inner)

	_, err := wireval.Encode(outer, wireval.WithMaxDepth(0))
	td.Cmp(t, err, td.NotNil())
	we, ok := err.(*wireerr.Error)
	td.CmpTrue(t, ok)
	td.Cmp(t, we.Kind, wireerr.KindDepthLimit)
}

func TestUnrecognisedFormatVersionRejected(t *testing.T) {
	_, err := wireval.Decode([]byte{0xff, 0x00})
	td.Cmp(t, err, td.NotNil())
	we, ok := err.(*wireerr.Error)
	td.CmpTrue(t, ok)
	td.Cmp(t, we.Kind, wireerr.KindTagMismatch)
}

func TestDanglingReferenceRejected(t *testing.T) {
	// ARRAY_START REFERENCE 5 ARRAY_END: id 5 was never registered.
	payload := []byte{0x01, 0x09, 0x0c, 0x03, 0x01, 0x05, 0x0a}
	_, err := wireval.Decode(payload)
	td.Cmp(t, err, td.NotNil())
	we, ok := err.(*wireerr.Error)
	td.CmpTrue(t, ok)
	td.Cmp(t, we.Kind, wireerr.KindDanglingReference)
}

// TestNestedAggregateRoundTrip uses go-cmp rather than go-testdeep here:
// the tree is acyclic, so cmp.Diff can walk it directly (cmp.Diff panics
// on genuine reference cycles, which is exactly why the cyclic tests
// above compare identity by hand instead).
func TestNestedAggregateRoundTrip(t *testing.T) {
	inner := value.NewMapping(value.Pair{Key: value.String("x"), Val: value.Int(1)})
	outer := value.NewSequence(value.String("a"), inner, value.Float(2.5))

	encoded, err := wireval.Encode(outer)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	decoded, err := wireval.Decode(encoded)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if diff := cmp.Diff(value.Value(outer), decoded); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}
}
