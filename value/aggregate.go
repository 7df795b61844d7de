package value

// Aggregate is implemented by the two composite value kinds: Sequence and
// Mapping. Reference tracking (see package refs) only ever assigns
// identifiers to aggregates; atoms are copied freely.
type Aggregate interface {
	Value
	isAggregate()
}

// Sequence is an ordered, positional list of child values.
type Sequence struct {
	Items []Value
}

// NewSequence builds a Sequence from the given items.
func NewSequence(items ...Value) *Sequence {
	return &Sequence{Items: items}
}

func (*Sequence) Kind() Kind   { return KindSequence }
func (*Sequence) isValue()     {}
func (*Sequence) isAggregate() {}

// Pair is one key-value entry of a Mapping. Per the data model's
// invariant, only String and Int keys survive encoding; any other key
// kind is silently dropped by the encoder (see encodeMapping in the
// top-level package's encode.go).
type Pair struct {
	Key Value
	Val Value
}

// Mapping is a keyed container whose iteration order is preserved for
// re-encoding but is not part of the value's identity (spec: "order not
// part of identity").
type Mapping struct {
	Pairs []Pair
}

// NewMapping builds a Mapping from the given pairs.
func NewMapping(pairs ...Pair) *Mapping {
	return &Mapping{Pairs: pairs}
}

func (*Mapping) Kind() Kind   { return KindMapping }
func (*Mapping) isValue()     {}
func (*Mapping) isAggregate() {}

// Set appends or replaces a key's value in place, preserving first-seen
// position when replacing.
func (m *Mapping) Set(key, val Value) {
	for i := range m.Pairs {
		if keyEqual(m.Pairs[i].Key, key) {
			m.Pairs[i].Val = val
			return
		}
	}
	m.Pairs = append(m.Pairs, Pair{Key: key, Val: val})
}

func keyEqual(a, b Value) bool {
	switch av := a.(type) {
	case Int:
		bv, ok := b.(Int)
		return ok && av == bv
	case String:
		bv, ok := b.(String)
		return ok && string(av) == string(bv)
	default:
		return false
	}
}

// IsSequence reports whether m's keys are exactly the integers 1..n, with
// n equal to its pair count, and no other keys. This is the same rule the
// encoder uses to choose the ARRAY framing over the TABLE framing (spec
// §4.2's "Aggregate detection"). An empty mapping is a sequence. A
// mapping with the numeric keys 1..n plus any extra key, numeric or not,
// is not a sequence (spec §9, Open Question 3: preserve that behavior
// rather than lose the extra key silently).
func IsSequence(m *Mapping) bool {
	n := len(m.Pairs)
	if n == 0 {
		return true
	}
	seen := make([]bool, n)
	for _, p := range m.Pairs {
		i, ok := p.Key.(Int)
		if !ok {
			return false
		}
		if i < 1 || int64(i) > int64(n) {
			return false
		}
		if seen[i-1] {
			return false
		}
		seen[i-1] = true
	}
	return true
}
