package token

// Cursor is a read position over an input document together with the
// current nesting depth.  No operation reads past the end of the input.
type Cursor struct {
	d     []byte
	off   int
	depth int
	doc   *PosDoc
}

func NewCursor(d []byte) *Cursor {
	return &Cursor{d: d, doc: NewPosDoc(d)}
}

func (c *Cursor) Offset() int   { return c.off }
func (c *Cursor) Len() int      { return len(c.d) }
func (c *Cursor) Depth() int    { return c.depth }
func (c *Cursor) Doc() *PosDoc  { return c.doc }
func (c *Cursor) Bytes() []byte { return c.d[min(c.off, len(c.d)):] }

// CanRead reports whether n more bytes are available.
func (c *Cursor) CanRead(n int) bool {
	return c.off+n <= len(c.d)
}

// Peek returns the byte i positions ahead, or 0 if there is none.
func (c *Cursor) Peek(i int) byte {
	if i < 0 || !c.CanRead(i+1) {
		return 0
	}
	return c.d[c.off+i]
}

func (c *Cursor) Advance(n int) {
	c.off = min(c.off+n, len(c.d))
}

func (c *Cursor) HasPrefix(s string) bool {
	if !c.CanRead(len(s)) {
		return false
	}
	return string(c.d[c.off:c.off+len(s)]) == s
}

// SkipWhitespace advances past bytes <= 0x20 and reports whether any were
// skipped.  If skipping reaches the end of input the offset is left on the
// last byte.
func (c *Cursor) SkipWhitespace() bool {
	start := c.off
	for c.off < len(c.d) && c.d[c.off] <= ' ' {
		c.off++
	}
	if c.off == start {
		return false
	}
	if c.off == len(c.d) {
		c.off--
	}
	return true
}

// SkipBOM skips a UTF-8 byte order mark at the start of input.
func (c *Cursor) SkipBOM() {
	if c.off == 0 && c.HasPrefix("\xef\xbb\xbf") {
		c.off += 3
	}
}

// Done reports whether nothing but whitespace remains at the cursor.
func (c *Cursor) Done() bool {
	if !c.CanRead(1) {
		return true
	}
	if c.d[c.off] > ' ' {
		return false
	}
	for _, b := range c.d[c.off:] {
		if b > ' ' {
			return false
		}
	}
	return true
}

// Enter records entry into a nested collection.  It returns false if the
// depth is already at limit.
func (c *Cursor) Enter(limit int) bool {
	if c.depth >= limit {
		return false
	}
	c.depth++
	return true
}

func (c *Cursor) Leave() {
	c.depth--
}

// Pos returns the position at offset i.
func (c *Cursor) Pos(i int) *Pos {
	return c.doc.Pos(i)
}

// ErrAt wraps e as a ParseError at offset i.  Offsets at or beyond the end
// of input are reported as the last byte.
func (c *Cursor) ErrAt(e error, i int) *ParseError {
	i = max(0, min(i, len(c.d)-1))
	return NewParseError(e, c.doc.Pos(i))
}

// Err wraps e as a ParseError at the current offset.
func (c *Cursor) Err(e error) *ParseError {
	return c.ErrAt(e, c.off)
}
