package logfmt

// cursor walks a string byte by byte with bounded lookahead. The scanner
// only branches on ASCII bytes, so multi-byte UTF-8 sequences pass through
// unchanged.
type cursor struct {
	s   string
	pos int
}

func newCursor(s string) *cursor {
	return &cursor{s: s}
}

func (c *cursor) done() bool {
	return c.pos >= len(c.s)
}

// next consumes and returns the current byte.
func (c *cursor) next() (byte, bool) {
	if c.done() {
		return 0, false
	}
	b := c.s[c.pos]
	c.pos++
	return b, true
}

// peek returns the current byte without consuming it.
func (c *cursor) peek() (byte, bool) {
	return c.peekAt(0)
}

// peekAt returns the byte n positions past the current one.
func (c *cursor) peekAt(n int) (byte, bool) {
	i := c.pos + n
	if i < 0 || i >= len(c.s) {
		return 0, false
	}
	return c.s[i], true
}

func (c *cursor) skip(n int) {
	c.pos += n
	if c.pos > len(c.s) {
		c.pos = len(c.s)
	}
}

// rest consumes and returns everything not yet read.
func (c *cursor) rest() string {
	r := c.s[c.pos:]
	c.pos = len(c.s)
	return r
}
