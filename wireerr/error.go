// Package wireerr defines the codec's single error type. Every fatal
// decode failure surfaces as one *Error, never wrapped by an enclosing
// frame; the innermost cursor offset is what a caller sees (spec §7:
// "Nested errors are not wrapped; the innermost cursor offset is
// preserved").
//
// This mirrors the teacher's encio.Error/encio.IOError split (a wrapped
// cause plus a message) merged with andreyvit-edb's DataError, which adds
// the byte offset that encio.Error lacks.
package wireerr

import "fmt"

// Kind classifies why a decode failed. Kinds 1-6 in spec §7 are always
// fatal; KindDomainReconstruction is recoverable and is reported by
// callers of this package as a value.Placeholder rather than an *Error,
// so it does not usually appear on a returned error, but the constant
// exists so recoverable sites can log or count it uniformly.
type Kind int

const (
	// KindTruncation: a read went past the end of the buffer.
	KindTruncation Kind = iota + 1
	// KindTagMismatch: an unknown or unexpected tag byte at the cursor.
	KindTagMismatch
	// KindSeparatorMissing: the KV_SEP byte was absent inside a mapping.
	KindSeparatorMissing
	// KindDanglingReference: a REFERENCE id has no registered aggregate.
	KindDanglingReference
	// KindDepthLimit: recursion exceeded the configured maximum depth.
	KindDepthLimit
	// KindSizeLimit: a declared length exceeded a configured bound.
	KindSizeLimit
	// KindDomainReconstruction: a domain tuple's fields were rejected by
	// its native constructor. Recoverable; see value.Placeholder.
	KindDomainReconstruction
)

func (k Kind) String() string {
	switch k {
	case KindTruncation:
		return "truncation"
	case KindTagMismatch:
		return "tag mismatch"
	case KindSeparatorMissing:
		return "separator missing"
	case KindDanglingReference:
		return "dangling reference"
	case KindDepthLimit:
		return "depth limit"
	case KindSizeLimit:
		return "size limit"
	case KindDomainReconstruction:
		return "domain reconstruction failure"
	default:
		return "unknown error kind"
	}
}

// Error is the single error type wireval.Decode (and, for the
// non-recoverable kinds, wireval.Encode) ever returns.
type Error struct {
	Kind Kind
	// Offset is the byte offset of the cursor when the error was
	// detected, relative to the start of the payload passed to Decode.
	Offset int
	// Frame names the enclosing frame kind when known, e.g. "mapping",
	// "sequence", "top-level".
	Frame string
	// Err is the wrapped cause, if any (e.g. a bounds-check error).
	Err error
	// Message is a short human-readable description.
	Message string
}

// New builds an Error. frame may be empty if the enclosing frame is not
// known at the call site.
func New(kind Kind, offset int, frame string, err error, format string, args ...any) *Error {
	return &Error{
		Kind:    kind,
		Offset:  offset,
		Frame:   frame,
		Err:     err,
		Message: fmt.Sprintf(format, args...),
	}
}

func (e *Error) Error() string {
	frame := e.Frame
	if frame == "" {
		frame = "top-level"
	}
	if e.Message != "" {
		return fmt.Sprintf("wireval: %s at offset %d (%s): %s", e.Kind, e.Offset, frame, e.Message)
	}
	return fmt.Sprintf("wireval: %s at offset %d (%s)", e.Kind, e.Offset, frame)
}

func (e *Error) Unwrap() error {
	return e.Err
}
