// Package wire implements the primitive and structural codec: the tag
// byte format described in spec §4 and §6. It knows nothing about
// reference tracking or recursion; that is package refs and the
// top-level driver's job. wire only frames and unframes single values.
package wire

// Tag identifies the shape of the value that follows in the stream.
type Tag byte

// Canonical tag constants, spec §6.1. Values are part of the wire
// format and must never be renumbered.
const (
	NIL                  Tag = 0
	BOOLEAN_FALSE        Tag = 1
	BOOLEAN_TRUE         Tag = 2
	NUMBER_INT           Tag = 3
	NUMBER_FLOAT         Tag = 4
	STRING_SHORT         Tag = 5
	STRING_LONG          Tag = 6
	TABLE_START          Tag = 7
	TABLE_END            Tag = 8
	ARRAY_START          Tag = 9
	ARRAY_END            Tag = 10
	KEY_VALUE_SEPARATOR  Tag = 11
	REFERENCE            Tag = 12
	VECTOR3              Tag = 13
	COLOR3               Tag = 14
	UDIM2                Tag = 15
	CFRAME               Tag = 16
	VECTOR2              Tag = 17
	RECT                 Tag = 18
	ENUM                 Tag = 19
	INSTANCE_REF         Tag = 20
	DATETIME             Tag = 21
	BRICKCOLOR           Tag = 22
	NUMBERSEQUENCE       Tag = 23
	COLORSEQUENCE        Tag = 24
)

// FormatVersion is prepended to every payload Encode produces, resolving
// spec §9's Open Question 2 (host-native float byte order is a
// portability hazard). A Decode that sees any other byte here fails
// immediately with a tag-mismatch error rather than misinterpreting the
// remaining bytes under the wrong byte order.
const FormatVersion byte = 1

// TODO: a reserved "skip-with-length" tag for forward-compatible unknown
// domain tuples (spec §9, Open Question 4) is not implemented; the tag
// space is closed and version-gated instead. Left as a named future
// extension point, not a guess at its wire shape.

func (t Tag) String() string {
	switch t {
	case NIL:
		return "NIL"
	case BOOLEAN_FALSE:
		return "BOOLEAN_FALSE"
	case BOOLEAN_TRUE:
		return "BOOLEAN_TRUE"
	case NUMBER_INT:
		return "NUMBER_INT"
	case NUMBER_FLOAT:
		return "NUMBER_FLOAT"
	case STRING_SHORT:
		return "STRING_SHORT"
	case STRING_LONG:
		return "STRING_LONG"
	case TABLE_START:
		return "TABLE_START"
	case TABLE_END:
		return "TABLE_END"
	case ARRAY_START:
		return "ARRAY_START"
	case ARRAY_END:
		return "ARRAY_END"
	case KEY_VALUE_SEPARATOR:
		return "KEY_VALUE_SEPARATOR"
	case REFERENCE:
		return "REFERENCE"
	case VECTOR3:
		return "VECTOR3"
	case COLOR3:
		return "COLOR3"
	case UDIM2:
		return "UDIM2"
	case CFRAME:
		return "CFRAME"
	case VECTOR2:
		return "VECTOR2"
	case RECT:
		return "RECT"
	case ENUM:
		return "ENUM"
	case INSTANCE_REF:
		return "INSTANCE_REF"
	case DATETIME:
		return "DATETIME"
	case BRICKCOLOR:
		return "BRICKCOLOR"
	case NUMBERSEQUENCE:
		return "NUMBERSEQUENCE"
	case COLORSEQUENCE:
		return "COLORSEQUENCE"
	default:
		return "UNKNOWN"
	}
}
