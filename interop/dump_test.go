package interop_test

import (
	"testing"

	"github.com/maxatome/go-testdeep/td"

	"github.com/wireval/wireval/interop"
	"github.com/wireval/wireval/value"
)

func TestDumpLoadJSONRoundTrip(t *testing.T) {
	v := value.NewMapping(
		value.Pair{Key: value.String("name"), Val: value.String("brick")},
		value.Pair{Key: value.String("count"), Val: value.Int(3)},
	)
	data, err := interop.DumpJSON(v)
	if err != nil {
		t.Fatalf("DumpJSON: %v", err)
	}
	back, err := interop.LoadJSON(data)
	if err != nil {
		t.Fatalf("LoadJSON: %v", err)
	}
	m, ok := back.(*value.Mapping)
	if !ok {
		t.Fatalf("got %T, want *value.Mapping", back)
	}
	td.Cmp(t, len(m.Pairs), 2)
}

func TestDumpLoadMsgPackRoundTrip(t *testing.T) {
	v := value.NewSequence(value.Int(1), value.String("two"), value.Bool(true), value.Nil{})
	data, err := interop.DumpMsgPack(v)
	if err != nil {
		t.Fatalf("DumpMsgPack: %v", err)
	}
	back, err := interop.LoadMsgPack(data)
	if err != nil {
		t.Fatalf("LoadMsgPack: %v", err)
	}
	seq, ok := back.(*value.Sequence)
	if !ok {
		t.Fatalf("got %T, want *value.Sequence", back)
	}
	td.Cmp(t, len(seq.Items), 4)
	td.Cmp(t, seq.Items[0], value.Value(value.Int(1)))
	td.Cmp(t, seq.Items[1], value.Value(value.String("two")))
}

func TestToPlainBreaksCycles(t *testing.T) {
	a := value.NewSequence()
	a.Items = append(a.Items, a)

	plain := interop.ToPlain(a, make(map[value.Aggregate]bool))
	items, ok := plain.([]interface{})
	if !ok {
		t.Fatalf("got %T, want []interface{}", plain)
	}
	if len(items) != 1 {
		t.Fatalf("got %d items, want 1", len(items))
	}
	marker, ok := items[0].(map[string]interface{})
	if !ok {
		t.Fatalf("cycle marker is %T, want map[string]interface{}", items[0])
	}
	td.CmpTrue(t, marker["$cycle"] == true)
}

func TestToPlainDomainTuple(t *testing.T) {
	v := value.Vector3{X: 1, Y: 2, Z: 3}
	plain := interop.ToPlain(v, make(map[value.Aggregate]bool))
	m, ok := plain.(map[string]interface{})
	if !ok {
		t.Fatalf("got %T, want map[string]interface{}", plain)
	}
	td.Cmp(t, m["x"], 1.0)
	td.Cmp(t, m["y"], 2.0)
	td.Cmp(t, m["z"], 3.0)
}
