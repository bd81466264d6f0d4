package reader

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import "fmt"

// Cursor is a read position within an immutable input buffer. The position
// only ever moves forward.
type Cursor struct {
	buf []byte
	pos int
}

// NewCursor creates a cursor positioned at the start of input.
func NewCursor(input string) *Cursor {
	return &Cursor{buf: []byte(input)}
}

// Empty is a predicate: has all of the input been consumed?
func (c *Cursor) Empty() bool {
	return c.pos >= len(c.buf)
}

// Peek returns the next unread byte. It returns 0 for an empty cursor.
func (c *Cursor) Peek() byte {
	if c.Empty() {
		return 0
	}
	return c.buf[c.pos]
}

// Advance consumes n bytes. It will not move past the end of the input.
func (c *Cursor) Advance(n int) {
	if n < 0 {
		return
	}
	c.pos += n
	if c.pos > len(c.buf) {
		c.pos = len(c.buf)
	}
}

// Offset returns the number of bytes consumed so far.
func (c *Cursor) Offset() int {
	return c.pos
}

// Len returns the number of unread bytes.
func (c *Cursor) Len() int {
	return len(c.buf) - c.pos
}

// Rest returns the unread suffix of the input.
func (c *Cursor) Rest() string {
	return string(c.buf[c.pos:])
}

func (c *Cursor) String() string {
	return fmt.Sprintf("@%d/%d", c.pos, len(c.buf))
}
