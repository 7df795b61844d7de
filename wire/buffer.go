package wire

import "github.com/wireval/wireval/wireerr"

// Buffer is a growable, append-only byte sink used by the encode side of
// the codec. It plays the role the teacher's gram.Gram plays for writes,
// but drops gram's io.Writer-oriented varint helpers: this format's
// integers and lengths are fixed-width and big-endian (spec §4.1, §6.3),
// not LEB128-style variable length.
type Buffer struct {
	buf []byte
}

// NewBuffer returns an empty Buffer ready to write to.
func NewBuffer() *Buffer {
	return &Buffer{buf: make([]byte, 0, 64)}
}

// WriteByte appends a single byte.
func (b *Buffer) WriteByte(c byte) {
	b.buf = append(b.buf, c)
}

// Write appends p in full.
func (b *Buffer) Write(p []byte) {
	b.buf = append(b.buf, p...)
}

// Bytes returns the accumulated buffer. The caller must not modify the
// returned slice's contents.
func (b *Buffer) Bytes() []byte {
	return b.buf
}

// Len returns the number of bytes written so far.
func (b *Buffer) Len() int {
	return len(b.buf)
}

// Cursor is a bounds-checked reader over a fixed byte slice, used by the
// decode side. Unlike gram.Gram, out-of-bounds reads never panic: spec §7
// requires truncation to surface as a reportable, fatal *wireerr.Error
// carrying the offset, since the input is untrusted wire data rather than
// a programmer error.
type Cursor struct {
	buf []byte
	off int
}

// NewCursor wraps buf for bounds-checked reading starting at offset 0.
func NewCursor(buf []byte) *Cursor {
	return &Cursor{buf: buf}
}

// Offset returns the cursor's current position.
func (c *Cursor) Offset() int {
	return c.off
}

// Remaining returns the number of unread bytes.
func (c *Cursor) Remaining() int {
	return len(c.buf) - c.off
}

// PeekByte returns the next byte without consuming it. ok is false at
// end of buffer.
func (c *Cursor) PeekByte() (b byte, ok bool) {
	if c.off >= len(c.buf) {
		return 0, false
	}
	return c.buf[c.off], true
}

// ReadByte consumes and returns one byte.
func (c *Cursor) ReadByte() (byte, error) {
	if c.off >= len(c.buf) {
		return 0, truncated(c.off, "", 1, 0)
	}
	b := c.buf[c.off]
	c.off++
	return b, nil
}

// ReadN consumes and returns the next n bytes. The returned slice aliases
// the cursor's backing array and must not be retained past the value's
// use if the caller later mutates the original payload.
func (c *Cursor) ReadN(n int) ([]byte, error) {
	if n < 0 {
		return nil, wireerr.New(wireerr.KindTruncation, c.off, "", nil, "negative read length %d", n)
	}
	if c.Remaining() < n {
		return nil, truncated(c.off, "", n, c.Remaining())
	}
	b := c.buf[c.off : c.off+n]
	c.off += n
	return b, nil
}

func truncated(offset int, frame string, want, have int) error {
	return wireerr.New(wireerr.KindTruncation, offset, frame, nil, "wanted %d bytes but only %d remain", want, have)
}

// WithFrame sets the enclosing frame kind on err in place (if it is a
// *wireerr.Error with no frame set yet) and returns err itself, so the
// outermost caller sees which structure was being decoded without the
// error itself being wrapped (spec §7: "Nested errors are not wrapped").
func WithFrame(err error, frame string) error {
	if err == nil {
		return nil
	}
	if we, ok := err.(*wireerr.Error); ok && we.Frame == "" {
		we.Frame = frame
	}
	return err
}
