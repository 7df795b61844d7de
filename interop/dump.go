// Package interop bridges a decoded value.Value tree to and from
// human-inspectable formats (MessagePack and JSON), for debugging and
// export. It is not part of the wire format and is never used by
// Encode/Decode; it exists purely so a caller can dump a value.Value
// tree for logging or diffing without hand-writing a pretty-printer.
//
// Grounded on _examples/andreyvit-edb's encoding.go, which pools
// msgpack.Encoder/Decoder values via msgpack.GetEncoder/PutEncoder
// rather than allocating one per call.
package interop

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/wireval/wireval/value"
)

// DumpMsgPack renders v as a MessagePack document via an intermediate
// plain-Go representation (maps, slices, and native scalars), using a
// pooled encoder the way andreyvit-edb's encodingMethod.EncodeValue does.
func DumpMsgPack(v value.Value) ([]byte, error) {
	var buf bytes.Buffer
	enc := msgpack.GetEncoder()
	defer msgpack.PutEncoder(enc)
	enc.Reset(&buf)
	enc.SetSortMapKeys(true)
	if err := enc.Encode(ToPlain(v, make(map[value.Aggregate]bool))); err != nil {
		return nil, fmt.Errorf("interop: msgpack encode: %w", err)
	}
	return buf.Bytes(), nil
}

// LoadMsgPack parses a MessagePack document produced by DumpMsgPack (or
// any msgpack document with a compatible shape) back into a value.Value
// tree. Reference cycles and shared substructure do not survive the
// round trip: the plain representation used by DumpMsgPack replaces every
// revisit of an aggregate with a {"$cycle": true} marker map, and that
// marker loads back as an ordinary one-entry Mapping.
func LoadMsgPack(data []byte) (value.Value, error) {
	dec := msgpack.GetDecoder()
	defer msgpack.PutDecoder(dec)
	dec.Reset(bytes.NewReader(data))
	raw, err := dec.DecodeInterface()
	if err != nil {
		return nil, fmt.Errorf("interop: msgpack decode: %w", err)
	}
	return FromPlain(raw), nil
}

// DumpJSON renders v as JSON through the same intermediate representation.
func DumpJSON(v value.Value) ([]byte, error) {
	out, err := json.Marshal(ToPlain(v, make(map[value.Aggregate]bool)))
	if err != nil {
		return nil, fmt.Errorf("interop: json encode: %w", err)
	}
	return out, nil
}

// LoadJSON parses a JSON document produced by DumpJSON back into a
// value.Value tree.
func LoadJSON(data []byte) (value.Value, error) {
	var raw interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("interop: json decode: %w", err)
	}
	return FromPlain(raw), nil
}

// ToPlain walks v into a tree of maps, slices, and native scalars that
// both msgpack and encoding/json already know how to marshal. seen
// breaks reference cycles by emitting the substructure once and then a
// {"$cycle": true} marker map on every revisit, rather than recursing
// forever.
func ToPlain(v value.Value, seen map[value.Aggregate]bool) interface{} {
	switch t := v.(type) {
	case value.Nil:
		return nil
	case value.Bool:
		return bool(t)
	case value.Int:
		return int64(t)
	case value.Float:
		return float64(t)
	case value.String:
		return string(t)
	case *value.Sequence:
		if seen[t] {
			return map[string]interface{}{"$cycle": true}
		}
		seen[t] = true
		items := make([]interface{}, len(t.Items))
		for i, it := range t.Items {
			items[i] = ToPlain(it, seen)
		}
		return items
	case *value.Mapping:
		if seen[t] {
			return map[string]interface{}{"$cycle": true}
		}
		seen[t] = true
		out := make(map[string]interface{}, len(t.Pairs))
		for _, p := range t.Pairs {
			out[plainKey(p.Key)] = ToPlain(p.Val, seen)
		}
		return out
	case value.Vector2:
		return map[string]interface{}{"x": t.X, "y": t.Y}
	case value.Vector3:
		return map[string]interface{}{"x": t.X, "y": t.Y, "z": t.Z}
	case value.Color3:
		return map[string]interface{}{"r": t.R, "g": t.G, "b": t.B}
	case value.UDim2:
		return map[string]interface{}{"x_scale": t.XScale, "x_offset": t.XOffset, "y_scale": t.YScale, "y_offset": t.YOffset}
	case value.Rect:
		return map[string]interface{}{"min_x": t.MinX, "min_y": t.MinY, "max_x": t.MaxX, "max_y": t.MaxY}
	case value.CFrame:
		return map[string]interface{}{"position": ToPlain(t.Position, seen), "rotation": t.Rotation}
	case value.Enum:
		return map[string]interface{}{"type": string(t.Type), "name": string(t.Name)}
	case value.InstanceRef:
		return map[string]interface{}{"path": string(t.Path)}
	case value.DateTime:
		return map[string]interface{}{"milliseconds": t.Milliseconds}
	case value.BrickColor:
		return map[string]interface{}{"index": t.Index}
	case value.NumberSequence:
		return map[string]interface{}{"keypoints": t.Keypoints}
	case value.ColorSequence:
		return map[string]interface{}{"keypoints": t.Keypoints}
	case value.Placeholder:
		return map[string]interface{}{"$placeholder": t.Reason, "tag": t.Tag}
	default:
		return fmt.Sprintf("%v", v)
	}
}

func plainKey(k value.Value) string {
	switch t := k.(type) {
	case value.Int:
		return fmt.Sprintf("%d", int64(t))
	case value.String:
		return string(t)
	default:
		return fmt.Sprintf("%v", k)
	}
}

// FromPlain is the inverse of ToPlain for the subset that round-trips:
// nil, bool, numbers, strings, slices, and maps become the corresponding
// value.Value atoms and aggregates. Domain tuples are not reconstructed
// from their plain map form since msgpack/JSON erase which Go type
// produced a given map; a caller wanting a strict round trip should use
// Encode/Decode instead.
func FromPlain(raw interface{}) value.Value {
	switch t := raw.(type) {
	case nil:
		return value.Nil{}
	case bool:
		return value.Bool(t)
	case int64:
		return value.Int(t)
	case uint64:
		return value.Int(int64(t))
	case float64:
		return value.Float(t)
	case string:
		return value.String(t)
	case []byte:
		return value.String(t)
	case []interface{}:
		items := make([]value.Value, len(t))
		for i, it := range t {
			items[i] = FromPlain(it)
		}
		return value.NewSequence(items...)
	case map[string]interface{}:
		m := value.NewMapping()
		for k, v := range t {
			m.Set(value.String(k), FromPlain(v))
		}
		return m
	default:
		return value.String(fmt.Sprintf("%v", raw))
	}
}
