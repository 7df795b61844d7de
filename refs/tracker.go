// Package refs implements the reference tracker described in spec §3.3
// and §4.3: a per-call map from integer identifiers to aggregates, used
// by the encoder to detect revisits and by the decoder to resolve
// back-references.
//
// The design is adapted from the teacher's encodable/referencer.go: an
// identity-ordered slice consulted with a linear scan on encode
// (references []unsafe.Pointer, findPtr, append) and an
// index-addressable slice on decode, appended to before children are
// read so self-referential cycles resolve. wireval's version drops the
// unsafe.Pointer identity (there is no reflection here) in favor of
// value.Aggregate interface identity, which for the two concrete
// aggregate kinds (*value.Sequence, *value.Mapping) is exactly Go
// pointer identity.
package refs

import "github.com/wireval/wireval/value"

// EncodeTracker assigns stable identifiers to aggregates on first visit,
// in pre-order (spec §3.2: "Identifiers are assigned in pre-order of
// first visit, starting at 1, unique per payload").
type EncodeTracker struct {
	seen []value.Aggregate
}

// NewEncodeTracker returns an empty tracker, scoped to one Encode call.
func NewEncodeTracker() *EncodeTracker {
	return &EncodeTracker{}
}

// Lookup reports whether a has already been registered, and its id if so.
// It is a linear scan, matching the teacher's referencer.findPtr. Payload
// aggregate counts are small enough in this domain that a slice beats a
// map, and it keeps insertion order equal to identifier order for free.
func (t *EncodeTracker) Lookup(a value.Aggregate) (id int, ok bool) {
	for i, s := range t.seen {
		if s == a {
			return i + 1, true
		}
	}
	return 0, false
}

// Register assigns a the next identifier (current size + 1) and returns
// it. Callers must call Register before descending into a's children so
// a self-reference inside those children resolves to this id.
func (t *EncodeTracker) Register(a value.Aggregate) int {
	t.seen = append(t.seen, a)
	return len(t.seen)
}

// DecodeRegistry is the decode-side counterpart: an index-addressable
// sequence of under-construction aggregates, indexed by the identifier
// assigned during encoding.
type DecodeRegistry struct {
	items []value.Aggregate
}

// NewDecodeRegistry returns an empty registry, scoped to one Decode call.
func NewDecodeRegistry() *DecodeRegistry {
	return &DecodeRegistry{}
}

// Reserve appends a to the registry and returns its id. It must be called
// before a's children are decoded; pre-registration is mandatory for
// cycle support (spec §4.3: "aggregate readers register the new
// aggregate with the tracker *before* reading children so that
// self-referential cycles resolve").
func (r *DecodeRegistry) Reserve(a value.Aggregate) int {
	r.items = append(r.items, a)
	return len(r.items)
}

// Resolve looks up the aggregate registered under id. ok is false if id
// has not yet been registered (spec §3.2: "A decoded reference whose
// identifier has not yet been registered is a protocol error.")
func (r *DecodeRegistry) Resolve(id int) (value.Aggregate, bool) {
	if id < 1 || id > len(r.items) {
		return nil, false
	}
	return r.items[id-1], true
}
