package wireval

import (
	"fmt"

	"github.com/wireval/wireval/refs"
	"github.com/wireval/wireval/value"
	"github.com/wireval/wireval/wire"
	"github.com/wireval/wireval/wireerr"
)

// Encode walks v depth-first, delegating atoms to the primitive codec and
// aggregates to the structural codec, consulting the reference tracker
// before descending into any aggregate (spec §2, §4.3). The returned
// bytes begin with a one-byte format version (wire.FormatVersion) that
// Decode validates before reading the payload.
func Encode(v value.Value, opts ...Option) ([]byte, error) {
	o := buildOptions(opts)
	buf := wire.NewBuffer()
	buf.WriteByte(wire.FormatVersion)

	enc := &encoder{
		buf:      buf,
		tracker:  refs.NewEncodeTracker(),
		maxDepth: *o.MaxDepth,
	}
	if err := enc.encodeValue(v, 0); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

type encoder struct {
	buf      *wire.Buffer
	tracker  *refs.EncodeTracker
	maxDepth int
}

func (e *encoder) encodeValue(v value.Value, depth int) error {
	if depth > e.maxDepth {
		return wireerr.New(wireerr.KindDepthLimit, e.buf.Len(), "", nil, "recursion exceeded max depth %d", e.maxDepth)
	}
	if agg, ok := v.(value.Aggregate); ok {
		return e.encodeAggregate(agg, depth)
	}
	return e.encodeAtom(v)
}

// encodeAggregate implements the reference-tracker step of the driver
// algorithm (spec §4.3, encoder points 1-2): look up v's identity first,
// emitting a REFERENCE on a revisit; otherwise register it with the next
// identifier *before* falling through to kind-based dispatch, so a
// self-cycle inside its own children resolves.
func (e *encoder) encodeAggregate(a value.Aggregate, depth int) error {
	if id, ok := e.tracker.Lookup(a); ok {
		return wire.EncodeReference(e.buf, id)
	}
	e.tracker.Register(a)

	switch t := a.(type) {
	case *value.Sequence:
		return e.encodeSequence(t, depth)
	case *value.Mapping:
		return e.encodeMapping(t, depth)
	default:
		return wireerr.New(wireerr.KindTagMismatch, e.buf.Len(), "", nil, "unrecognised aggregate type %T", a)
	}
}

func (e *encoder) encodeSequence(s *value.Sequence, depth int) error {
	wire.EncodeArrayStart(e.buf)
	for _, item := range s.Items {
		if err := e.encodeValue(item, depth+1); err != nil {
			return wire.WithFrame(err, "sequence")
		}
	}
	wire.EncodeArrayEnd(e.buf)
	return nil
}

// encodeMapping applies the same aggregate-detection rule an encoder
// applies to any keyed container (spec §4.2): if m's keys are exactly
// 1..n, it is written using the ARRAY framing instead of the TABLE
// framing, positionally ordered by key. A *value.Sequence built directly
// always uses ARRAY framing without this check, since there is no
// ambiguity to resolve.
func (e *encoder) encodeMapping(m *value.Mapping, depth int) error {
	if value.IsSequence(m) {
		items := make([]value.Value, len(m.Pairs))
		for _, p := range m.Pairs {
			idx := int64(p.Key.(value.Int))
			items[idx-1] = p.Val
		}
		wire.EncodeArrayStart(e.buf)
		for _, it := range items {
			if err := e.encodeValue(it, depth+1); err != nil {
				return wire.WithFrame(err, "sequence")
			}
		}
		wire.EncodeArrayEnd(e.buf)
		return nil
	}

	wire.EncodeTableStart(e.buf)
	for _, p := range m.Pairs {
		// spec §3.2: keys whose kind is not byte-string or integer are
		// silently dropped.
		switch p.Key.(type) {
		case value.Int, value.String:
		default:
			continue
		}
		if err := e.encodeValue(p.Key, depth+1); err != nil {
			return wire.WithFrame(err, "mapping")
		}
		wire.EncodeKVSeparator(e.buf)
		if err := e.encodeValue(p.Val, depth+1); err != nil {
			return wire.WithFrame(err, "mapping")
		}
	}
	wire.EncodeTableEnd(e.buf)
	return nil
}

func (e *encoder) encodeAtom(v value.Value) error {
	switch t := v.(type) {
	case value.Nil:
		e.buf.WriteByte(byte(wire.NIL))
		return nil
	case value.Bool:
		if t {
			e.buf.WriteByte(byte(wire.BOOLEAN_TRUE))
		} else {
			e.buf.WriteByte(byte(wire.BOOLEAN_FALSE))
		}
		return nil
	case value.Int:
		return wire.EncodeInt(e.buf, int64(t))
	case value.Float:
		wire.EncodeFloat(e.buf, float64(t))
		return nil
	case value.String:
		return wire.EncodeString(e.buf, []byte(t))
	case value.Vector3:
		wire.EncodeVector3(e.buf, t.X, t.Y, t.Z)
		return nil
	case value.Vector2:
		wire.EncodeVector2(e.buf, t.X, t.Y)
		return nil
	case value.Color3:
		wire.EncodeColor3(e.buf, t.R, t.G, t.B)
		return nil
	case value.UDim2:
		wire.EncodeUDim2(e.buf, t.XScale, t.XOffset, t.YScale, t.YOffset)
		return nil
	case value.Rect:
		wire.EncodeRect(e.buf, t.MinX, t.MinY, t.MaxX, t.MaxY)
		return nil
	case value.CFrame:
		wire.EncodeCFrame(e.buf, t.Position.X, t.Position.Y, t.Position.Z, t.Rotation)
		return nil
	case value.Enum:
		return wire.EncodeEnum(e.buf, t.Type, t.Name)
	case value.InstanceRef:
		return wire.EncodeInstanceRef(e.buf, t.Path)
	case value.DateTime:
		wire.EncodeDateTime(e.buf, t.Milliseconds)
		return nil
	case value.BrickColor:
		return wire.EncodeBrickColor(e.buf, t.Index)
	case value.NumberSequence:
		return wire.EncodeNumberSequence(e.buf, t.Keypoints)
	case value.ColorSequence:
		return wire.EncodeColorSequence(e.buf, t.Keypoints)
	case value.Placeholder:
		// A placeholder only ever arises from a recoverable decode
		// failure (spec §7); encoding one back out re-emits its raw
		// fields as a sequence rather than losing them entirely.
		return e.encodePlaceholder(t)
	default:
		// spec §4.3, encoder point 4: unknown kinds fall back to a
		// byte-string encoding of their printable form.
		return wire.EncodeString(e.buf, []byte(fmt.Sprintf("%v", v)))
	}
}

func (e *encoder) encodePlaceholder(p value.Placeholder) error {
	wire.EncodeArrayStart(e.buf)
	for _, f := range p.Fields {
		wire.EncodeFloat(e.buf, f)
	}
	for _, b := range p.Bytes {
		if err := wire.EncodeString(e.buf, b); err != nil {
			return err
		}
	}
	wire.EncodeArrayEnd(e.buf)
	return nil
}
