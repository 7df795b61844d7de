package wireval

import (
	"github.com/wireval/wireval/refs"
	"github.com/wireval/wireval/value"
	"github.com/wireval/wireval/wire"
	"github.com/wireval/wireval/wireerr"
)

// maxBrickColorIndex is the highest index the palette this codec targets
// actually assigns. An index beyond it cannot be turned into a live
// BrickColor by any consumer, so it is a domain reconstruction failure
// (spec §7, error kind 7) rather than a fatal decode error: the raw
// index is preserved in a value.Placeholder instead of aborting the
// whole payload.
const maxBrickColorIndex = 1032

// Decode reads one tagged value from b, resolving REFERENCE back-edges
// against a registry pre-populated as aggregates are opened (spec §4.3).
// The first byte of b must be wire.FormatVersion; any other value fails
// immediately rather than misinterpreting the remaining bytes.
func Decode(b []byte, opts ...Option) (value.Value, error) {
	o := buildOptions(opts)
	cur := wire.NewCursor(b)

	verByte, err := cur.ReadByte()
	if err != nil {
		return nil, err
	}
	if verByte != wire.FormatVersion {
		return nil, wireerr.New(wireerr.KindTagMismatch, 0, "top-level", nil, "unrecognised format version %d", verByte)
	}

	dec := &decoder{
		cur:              cur,
		registry:         refs.NewDecodeRegistry(),
		maxDepth:         *o.MaxDepth,
		maxStringLength:  *o.MaxStringLength,
		maxKeyframeCount: *o.MaxKeyframeCount,
	}
	return dec.decodeValue(0)
}

type decoder struct {
	cur              *wire.Cursor
	registry         *refs.DecodeRegistry
	maxDepth         int
	maxStringLength  int
	maxKeyframeCount int
}

func (d *decoder) decodeValue(depth int) (value.Value, error) {
	if depth > d.maxDepth {
		return nil, wireerr.New(wireerr.KindDepthLimit, d.cur.Offset(), "", nil, "recursion exceeded max depth %d", d.maxDepth)
	}

	tagByte, err := d.cur.ReadByte()
	if err != nil {
		return nil, err
	}
	tag := wire.Tag(tagByte)

	switch tag {
	case wire.NIL:
		return value.Nil{}, nil
	case wire.BOOLEAN_FALSE:
		return value.Bool(false), nil
	case wire.BOOLEAN_TRUE:
		return value.Bool(true), nil
	case wire.NUMBER_INT:
		n, err := wire.DecodeIntBody(d.cur)
		if err != nil {
			return nil, err
		}
		return value.Int(n), nil
	case wire.NUMBER_FLOAT:
		f, err := wire.DecodeFloatBody(d.cur)
		if err != nil {
			return nil, err
		}
		return value.Float(f), nil
	case wire.STRING_SHORT, wire.STRING_LONG:
		s, err := wire.DecodeStringBody(d.cur, tag, d.maxStringLength)
		if err != nil {
			return nil, err
		}
		return value.String(s), nil
	case wire.ARRAY_START:
		return d.decodeSequence(depth)
	case wire.TABLE_START:
		return d.decodeMapping(depth)
	case wire.REFERENCE:
		id, err := wire.DecodeReferenceBody(d.cur)
		if err != nil {
			return nil, err
		}
		agg, ok := d.registry.Resolve(id)
		if !ok {
			return nil, wireerr.New(wireerr.KindDanglingReference, d.cur.Offset(), "", nil, "reference to unregistered id %d", id)
		}
		return agg, nil
	case wire.VECTOR3:
		x, y, z, err := wire.DecodeVector3Body(d.cur)
		if err != nil {
			return nil, err
		}
		return value.Vector3{X: x, Y: y, Z: z}, nil
	case wire.VECTOR2:
		x, y, err := wire.DecodeVector2Body(d.cur)
		if err != nil {
			return nil, err
		}
		return value.Vector2{X: x, Y: y}, nil
	case wire.COLOR3:
		r, g, b, err := wire.DecodeColor3Body(d.cur)
		if err != nil {
			return nil, err
		}
		return d.reconstructColor3(r, g, b)
	case wire.UDIM2:
		xs, xo, ys, yo, err := wire.DecodeUDim2Body(d.cur)
		if err != nil {
			return nil, err
		}
		return value.UDim2{XScale: xs, XOffset: xo, YScale: ys, YOffset: yo}, nil
	case wire.RECT:
		minX, minY, maxX, maxY, err := wire.DecodeRectBody(d.cur)
		if err != nil {
			return nil, err
		}
		return value.Rect{MinX: minX, MinY: minY, MaxX: maxX, MaxY: maxY}, nil
	case wire.CFRAME:
		x, y, z, rot, err := wire.DecodeCFrameBody(d.cur)
		if err != nil {
			return nil, err
		}
		return value.CFrame{Position: value.Vector3{X: x, Y: y, Z: z}, Rotation: rot}, nil
	case wire.ENUM:
		t, m, err := wire.DecodeEnumBody(d.cur, d.maxStringLength)
		if err != nil {
			return nil, err
		}
		return value.Enum{Type: t, Name: m}, nil
	case wire.INSTANCE_REF:
		path, err := wire.DecodeInstanceRefBody(d.cur, d.maxStringLength)
		if err != nil {
			return nil, err
		}
		return value.InstanceRef{Path: path}, nil
	case wire.DATETIME:
		ms, err := wire.DecodeDateTimeBody(d.cur)
		if err != nil {
			return nil, err
		}
		return value.DateTime{Milliseconds: ms}, nil
	case wire.BRICKCOLOR:
		idx, err := wire.DecodeBrickColorBody(d.cur)
		if err != nil {
			return nil, err
		}
		return d.reconstructBrickColor(idx)
	case wire.NUMBERSEQUENCE:
		kps, err := wire.DecodeNumberSequenceBody(d.cur, d.maxKeyframeCount)
		if err != nil {
			return nil, err
		}
		return value.NumberSequence{Keypoints: kps}, nil
	case wire.COLORSEQUENCE:
		kps, err := wire.DecodeColorSequenceBody(d.cur, d.maxKeyframeCount)
		if err != nil {
			return nil, err
		}
		return value.ColorSequence{Keypoints: kps}, nil
	default:
		return nil, wireerr.New(wireerr.KindTagMismatch, d.cur.Offset()-1, "", nil, "unexpected tag byte %d", tagByte)
	}
}

func (d *decoder) decodeSequence(depth int) (value.Value, error) {
	seq := &value.Sequence{}
	d.registry.Reserve(seq)

	for {
		b, ok := d.cur.PeekByte()
		if !ok {
			return nil, wireerr.New(wireerr.KindTruncation, d.cur.Offset(), "sequence", nil, "unterminated array")
		}
		if wire.Tag(b) == wire.ARRAY_END {
			d.cur.ReadByte()
			break
		}
		v, err := d.decodeValue(depth + 1)
		if err != nil {
			return nil, wire.WithFrame(err, "sequence")
		}
		seq.Items = append(seq.Items, v)
	}
	return seq, nil
}

func (d *decoder) decodeMapping(depth int) (value.Value, error) {
	m := &value.Mapping{}
	d.registry.Reserve(m)

	for {
		b, ok := d.cur.PeekByte()
		if !ok {
			return nil, wireerr.New(wireerr.KindTruncation, d.cur.Offset(), "mapping", nil, "unterminated table")
		}
		if wire.Tag(b) == wire.TABLE_END {
			d.cur.ReadByte()
			break
		}
		key, err := d.decodeValue(depth + 1)
		if err != nil {
			return nil, wire.WithFrame(err, "mapping")
		}
		if err := wire.ExpectSeparator(d.cur); err != nil {
			return nil, err
		}
		val, err := d.decodeValue(depth + 1)
		if err != nil {
			return nil, wire.WithFrame(err, "mapping")
		}
		m.Pairs = append(m.Pairs, value.Pair{Key: key, Val: val})
	}
	return m, nil
}

// reconstructBrickColor implements the one recoverable failure mode this
// codec exercises: an index outside the target palette cannot become a
// live BrickColor, so it is handed back as a Placeholder instead of
// aborting the decode (spec §7, error kind 7).
func (d *decoder) reconstructBrickColor(idx int64) (value.Value, error) {
	if idx < 0 || idx > maxBrickColorIndex {
		return value.Placeholder{
			Tag:    byte(wire.BRICKCOLOR),
			Fields: []float64{float64(idx)},
			Reason: "brick color index outside the known palette",
		}, nil
	}
	return value.BrickColor{Index: idx}, nil
}

// reconstructColor3 rejects components outside a color channel's valid
// [0, 1] range the same way, rather than silently clamping them.
func (d *decoder) reconstructColor3(r, g, b float64) (value.Value, error) {
	if outOfUnitRange(r) || outOfUnitRange(g) || outOfUnitRange(b) {
		return value.Placeholder{
			Tag:    byte(wire.COLOR3),
			Fields: []float64{r, g, b},
			Reason: "color channel outside the [0,1] range",
		}, nil
	}
	return value.Color3{R: r, G: g, B: b}, nil
}

func outOfUnitRange(f float64) bool {
	return f < 0 || f > 1
}
