// Package wireval implements a self-describing binary codec for a small,
// closed value domain: nil, booleans, integers, floats, byte strings,
// ordered sequences, keyed mappings, and a set of fixed-shape
// geometry/animation tuples (vectors, colors, rectangles, coordinate
// frames, enums, instance references, timestamps, and keyframe
// sequences).
//
// Encode and Decode round-trip a value.Value tree to and from a
// portable byte format, preserving shared substructure and reference
// cycles via an identifier-based back-reference scheme. The format is
// versioned: every payload begins with a one-byte format version, and
// Decode rejects anything it does not recognise rather than
// misinterpreting it.
//
// Sub-packages expose the lower layers for callers who want them
// directly: wire provides the tag-level primitive and structural codec,
// refs provides the cyclic-reference tracker, and wireerr defines the
// single error type every fatal decode failure returns.
package wireval
