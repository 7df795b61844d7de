package value_test

import (
	"testing"

	"github.com/maxatome/go-testdeep/td"

	"github.com/wireval/wireval/value"
)

func TestKindStrings(t *testing.T) {
	cases := []struct {
		kind value.Kind
		want string
	}{
		{value.KindNil, "nil"},
		{value.KindInt, "int"},
		{value.KindSequence, "sequence"},
		{value.KindMapping, "mapping"},
		{value.KindColor3, "color3"},
		{value.KindPlaceholder, "placeholder"},
		{value.Kind(999), "unknown"},
	}
	for _, c := range cases {
		td.Cmp(t, c.kind.String(), c.want)
	}
}

func TestSequenceIsAggregate(t *testing.T) {
	seq := value.NewSequence(value.Int(1), value.Int(2))
	var agg value.Aggregate = seq
	td.Cmp(t, agg.Kind(), value.KindSequence)
}

func TestIsSequenceEmptyMapping(t *testing.T) {
	m := value.NewMapping()
	td.CmpTrue(t, value.IsSequence(m))
}

func TestIsSequenceContiguousKeys(t *testing.T) {
	m := value.NewMapping(
		value.Pair{Key: value.Int(2), Val: value.String("b")},
		value.Pair{Key: value.Int(1), Val: value.String("a")},
	)
	td.CmpTrue(t, value.IsSequence(m))
}

func TestIsSequenceRejectsGap(t *testing.T) {
	m := value.NewMapping(
		value.Pair{Key: value.Int(1), Val: value.String("a")},
		value.Pair{Key: value.Int(3), Val: value.String("c")},
	)
	td.CmpFalse(t, value.IsSequence(m))
}

// TestIsSequenceRejectsExtraKey resolves Open Question 3: a mapping
// carrying the numeric keys 1..n plus any extra key, numeric or not, is
// a mapping, not a sequence.
func TestIsSequenceRejectsExtraKey(t *testing.T) {
	m := value.NewMapping(
		value.Pair{Key: value.Int(1), Val: value.String("a")},
		value.Pair{Key: value.String("extra"), Val: value.String("z")},
	)
	td.CmpFalse(t, value.IsSequence(m))
}

func TestMappingSetReplacesInPlace(t *testing.T) {
	m := value.NewMapping()
	m.Set(value.String("k"), value.Int(1))
	m.Set(value.String("k"), value.Int(2))
	td.Cmp(t, len(m.Pairs), 1)
	td.Cmp(t, m.Pairs[0].Val, value.Int(2))
}
