package value

// Vector2 is a pair of binary64 coordinates.
type Vector2 struct {
	X, Y float64
}

func (Vector2) Kind() Kind { return KindVector2 }
func (Vector2) isValue()   {}

// Vector3 is a triple of binary64 coordinates.
type Vector3 struct {
	X, Y, Z float64
}

func (Vector3) Kind() Kind { return KindVector3 }
func (Vector3) isValue()   {}

// Color3 is an RGB triple, each channel nominally in [0, 1].
type Color3 struct {
	R, G, B float64
}

func (Color3) Kind() Kind { return KindColor3 }
func (Color3) isValue()   {}

// UDim2 is an offset+scale pair for each axis, matching the wire format's
// "4-tuple (offset+scale pair)" (X.Scale, X.Offset, Y.Scale, Y.Offset).
type UDim2 struct {
	XScale, XOffset float64
	YScale, YOffset float64
}

func (UDim2) Kind() Kind { return KindUDim2 }
func (UDim2) isValue()   {}

// Rect is an axis-aligned rectangle, minX/minY/maxX/maxY.
type Rect struct {
	MinX, MinY, MaxX, MaxY float64
}

func (Rect) Kind() Kind { return KindRect }
func (Rect) isValue()   {}

// CFrame is a position plus a 3x3 row-major rotation matrix, the
// "12-tuple (position + 3x3 rotation)" of the data model.
type CFrame struct {
	Position Vector3
	Rotation [3][3]float64
}

func (CFrame) Kind() Kind { return KindCFrame }
func (CFrame) isValue()   {}

// Enum is an enumerated symbol: a type name and a member name.
type Enum struct {
	Type Name
	Name Name
}

func (Enum) Kind() Kind { return KindEnum }
func (Enum) isValue()   {}

// Name is a short byte string used for enum type/member names and
// similar identifiers, kept distinct from String so callers can tell at
// a glance which fields carry identifiers rather than opaque payloads.
type Name = []byte

// InstanceRef is an opaque handle path. Resolving it to a live runtime
// handle is explicitly out of scope (spec §1); the codec only carries the
// path bytes.
type InstanceRef struct {
	Path []byte
}

func (InstanceRef) Kind() Kind { return KindInstanceRef }
func (InstanceRef) isValue()   {}

// DateTime is a signed integer count of milliseconds since an epoch.
type DateTime struct {
	Milliseconds int64
}

func (DateTime) Kind() Kind { return KindDateTime }
func (DateTime) isValue()   {}

// BrickColor is a palette color index.
type BrickColor struct {
	Index int64
}

func (BrickColor) Kind() Kind { return KindBrickColor }
func (BrickColor) isValue()   {}

// NumberKeypoint is one (time, value, envelope) sample of a
// NumberSequence.
type NumberKeypoint struct {
	Time     float64
	Value    float64
	Envelope float64
}

// NumberSequence is an ordered list of number keyframes.
type NumberSequence struct {
	Keypoints []NumberKeypoint
}

func (NumberSequence) Kind() Kind { return KindNumberSequence }
func (NumberSequence) isValue()   {}

// ColorKeypoint is one (time, r, g, b) sample of a ColorSequence.
type ColorKeypoint struct {
	Time    float64
	R, G, B float64
}

// ColorSequence is an ordered list of color keyframes.
type ColorSequence struct {
	Keypoints []ColorKeypoint
}

func (ColorSequence) Kind() Kind { return KindColorSequence }
func (ColorSequence) isValue()   {}

// Placeholder is what Decode returns in place of a domain tuple whose
// fields could not be handed to a native constructor (spec §7, error
// kind 7: "Domain reconstruction failure"). It carries the tag that
// failed and its raw decoded fields so a caller can salvage the payload
// instead of losing the whole decode.
type Placeholder struct {
	Tag    byte
	Fields []float64
	Bytes  [][]byte
	Reason string
}

func (Placeholder) Kind() Kind { return KindPlaceholder }
func (Placeholder) isValue()   {}
